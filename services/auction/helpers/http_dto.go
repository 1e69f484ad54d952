package helpers

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"auction-office/internal/auctionerrors"
	model "auction-office/internal/models"
)

const dateLayout = "2006-01-02"

// Request/Response DTOs
type AuctionRequest struct {
	Name         string          `json:"name" binding:"required"`
	Code         string          `json:"code"`
	LocationKind string          `json:"location_kind" binding:"omitempty,oneof=physical online hybrid"`
	Address      string          `json:"address"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Status       string          `json:"status" binding:"omitempty,oneof=scheduled in_progress finished"`
	CostTotal    decimal.Decimal `json:"cost_total"`
	HistoryNotes string          `json:"history_notes"`
}

// ToModel converts the request into an auction record
func (r AuctionRequest) ToModel() (model.Auction, error) {
	a := model.Auction{
		Name:         r.Name,
		Code:         r.Code,
		LocationKind: r.LocationKind,
		Address:      r.Address,
		Status:       r.Status,
		CostTotal:    r.CostTotal,
		HistoryNotes: r.HistoryNotes,
	}
	var err error
	if a.StartDate, err = parseOptionalDate(r.StartDate); err != nil {
		return model.Auction{}, err
	}
	if a.EndDate, err = parseOptionalDate(r.EndDate); err != nil {
		return model.Auction{}, err
	}
	return a, nil
}

type MerchandiseRequest struct {
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity" binding:"omitempty,min=1"`
}

type PaymentPlanRequest struct {
	Kind               string `json:"kind" binding:"omitempty,oneof=lump_sum installments down_payment_installments"`
	DueDate            string `json:"due_date"`
	DownPaymentDueDate string `json:"down_payment_due_date"`
	InstallmentCount   int    `json:"installment_count" binding:"omitempty,min=1"`
	StartMonth         string `json:"start_month"`
	DueDayOfMonth      int    `json:"due_day_of_month" binding:"omitempty,min=1,max=31"`
}

// ToModel converts the request into a payment plan
func (r PaymentPlanRequest) ToModel() (model.PaymentPlan, error) {
	plan := model.PaymentPlan{
		Kind:             r.Kind,
		InstallmentCount: r.InstallmentCount,
		StartMonth:       r.StartMonth,
		DueDayOfMonth:    r.DueDayOfMonth,
	}
	if r.DueDate != "" {
		t, err := parseOptionalDate(r.DueDate)
		if err != nil {
			return model.PaymentPlan{}, err
		}
		plan.DueDate = &t
	}
	if r.DownPaymentDueDate != "" {
		t, err := parseOptionalDate(r.DownPaymentDueDate)
		if err != nil {
			return model.PaymentPlan{}, err
		}
		plan.DownPaymentDueDate = &t
	}
	return plan, nil
}

type LotRequest struct {
	Number      string               `json:"number" binding:"required"`
	Description string               `json:"description"`
	Merchandise []MerchandiseRequest `json:"merchandise"`
	Plan        PaymentPlanRequest   `json:"plan"`
	ImageURLs   []string             `json:"image_urls"`
}

// ToModel converts the request into a lot record
func (r LotRequest) ToModel() (model.Lot, error) {
	lot := model.Lot{
		Number:      r.Number,
		Description: r.Description,
		ImageURLs:   r.ImageURLs,
	}
	for _, m := range r.Merchandise {
		qty := m.Quantity
		if qty == 0 {
			qty = 1
		}
		lot.Merchandise = append(lot.Merchandise, model.Merchandise{
			Description: m.Description,
			Quantity:    qty,
		})
	}
	var err error
	if lot.Plan, err = r.Plan.ToModel(); err != nil {
		return model.Lot{}, err
	}
	return lot, nil
}

type BidderRequest struct {
	Name                string          `json:"name" binding:"required"`
	Document            string          `json:"document"`
	Address             string          `json:"address"`
	Email               string          `json:"email" binding:"omitempty,email"`
	Phone               string          `json:"phone"`
	TotalDue            decimal.Decimal `json:"total_due"`
	InstallmentsPaid    int             `json:"installments_paid" binding:"omitempty,min=0"`
	FullyPaid           bool            `json:"fully_paid"`
	LateInterestPercent decimal.Decimal `json:"late_interest_percent"`
	LateInterestMode    string          `json:"late_interest_mode" binding:"omitempty,oneof=simple compound"`
}

// ToModel converts the request into a bidder record bound to a lot
func (r BidderRequest) ToModel(lotID string) model.Bidder {
	mode := r.LateInterestMode
	if mode == "" {
		mode = model.InterestSimple
	}
	return model.Bidder{
		LotID:               lotID,
		Name:                r.Name,
		Document:            r.Document,
		Address:             r.Address,
		Email:               r.Email,
		Phone:               r.Phone,
		TotalDue:            r.TotalDue,
		InstallmentsPaid:    r.InstallmentsPaid,
		FullyPaid:           r.FullyPaid,
		LateInterestPercent: r.LateInterestPercent,
		LateInterestMode:    mode,
	}
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, auctionerrors.ErrInvalidInput)
	}
	return t, nil
}
