package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"auction-office/internal/auctionerrors"
	"auction-office/internal/models"
)

// downPaymentRatio is the fixed share of the total charged as the entry
// payment on down-payment plans.
var downPaymentRatio = decimal.New(5, -1) // 0.5

// SkipReason identifies why a bidder was omitted from a generated schedule
type SkipReason string

const (
	SkipLotMissing          SkipReason = "lot_missing"
	SkipPlanMissing         SkipReason = "plan_missing"
	SkipPlanIncomplete      SkipReason = "plan_incomplete"
	SkipBadStartMonth       SkipReason = "bad_start_month"
	SkipBadInstallmentCount SkipReason = "bad_installment_count"
	SkipUnknownPaymentKind  SkipReason = "unknown_payment_kind"
)

// Skip records one bidder omitted from the schedule and why. Skips never fail
// generation; a partially-configured lot must not block the rest of the
// dashboard.
type Skip struct {
	AuctionID string     `json:"auction_id"`
	LotID     string     `json:"lot_id"`
	BidderID  string     `json:"bidder_id"`
	Reason    SkipReason `json:"reason"`
	Err       error      `json:"-"`
}

// Generate derives the currently-outstanding invoices for the given auctions.
// It is a pure function of its inputs: no I/O, no clock reads, safe for
// concurrent callers.
//
// Per bidder it emits at most one invoice, the next unpaid obligation, never
// the full remaining schedule; the dashboard shows what is due now, not an
// amortization table. Archived auctions contribute nothing. The result is
// sorted by ascending due date.
func Generate(now time.Time, auctions []models.Auction) ([]models.Invoice, []Skip) {
	var invoices []models.Invoice
	var skips []Skip

	for _, auction := range auctions {
		if auction.Archived {
			continue
		}
		lots := make(map[string]models.Lot, len(auction.Lots))
		for _, lot := range auction.Lots {
			lots[lot.ID] = lot
		}
		for _, bidder := range auction.Bidders {
			lot, ok := lots[bidder.LotID]
			if !ok {
				skips = append(skips, Skip{
					AuctionID: auction.ID,
					LotID:     bidder.LotID,
					BidderID:  bidder.ID,
					Reason:    SkipLotMissing,
					Err:       auctionerrors.ErrLotNotFound,
				})
				continue
			}
			inv, skip := nextInvoice(now, auction, lot, bidder)
			if skip != nil {
				skips = append(skips, *skip)
				continue
			}
			if inv != nil {
				invoices = append(invoices, *inv)
			}
		}
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].DueDate.Before(invoices[j].DueDate)
	})
	return invoices, skips
}

// nextInvoice emits the single next obligation for a bidder, nil when the
// plan is settled, or a skip when the plan cannot be generated.
func nextInvoice(now time.Time, auction models.Auction, lot models.Lot, bidder models.Bidder) (*models.Invoice, *Skip) {
	plan := lot.Plan
	if plan.Kind == "" {
		return nil, newSkip(auction.ID, lot.ID, bidder.ID, SkipPlanMissing, auctionerrors.ErrPlanMissing)
	}

	switch plan.Kind {
	case models.PaymentLumpSum:
		if bidder.FullyPaid {
			return nil, nil
		}
		due, err := ResolveDueDate(plan, 0, now)
		if err != nil {
			return nil, skipFromErr(auction.ID, lot.ID, bidder.ID, err)
		}
		inv := buildInvoice(auction, lot, bidder, 1, 1, bidder.TotalDue, due, now)
		if plan.DueDate == nil {
			inv.Note = "due date missing; defaulted to generation day"
		}
		return &inv, nil

	case models.PaymentInstallments:
		count := plan.InstallmentCount
		if count <= 0 {
			return nil, newSkip(auction.ID, lot.ID, bidder.ID, SkipBadInstallmentCount, auctionerrors.ErrBadInstallmentCount)
		}
		if bidder.FullyPaid || bidder.InstallmentsPaid >= count {
			return nil, nil
		}
		idx := bidder.InstallmentsPaid
		due, err := ResolveDueDate(plan, idx, now)
		if err != nil {
			return nil, skipFromErr(auction.ID, lot.ID, bidder.ID, err)
		}
		net := bidder.TotalDue.Div(decimal.NewFromInt(int64(count))).Round(2)
		inv := buildInvoice(auction, lot, bidder, idx+1, count, net, due, now)
		return &inv, nil

	case models.PaymentDownPaymentInstallments:
		count := plan.InstallmentCount
		if count <= 0 {
			return nil, newSkip(auction.ID, lot.ID, bidder.ID, SkipBadInstallmentCount, auctionerrors.ErrBadInstallmentCount)
		}
		slots := count + 1 // the down payment occupies slot 0
		if bidder.FullyPaid || bidder.InstallmentsPaid >= slots {
			return nil, nil
		}
		idx := bidder.InstallmentsPaid
		due, err := ResolveDueDate(plan, idx, now)
		if err != nil {
			return nil, skipFromErr(auction.ID, lot.ID, bidder.ID, err)
		}
		down := bidder.TotalDue.Mul(downPaymentRatio).Round(2)
		net := down
		if idx > 0 {
			net = bidder.TotalDue.Sub(down).Div(decimal.NewFromInt(int64(count))).Round(2)
		}
		inv := buildInvoice(auction, lot, bidder, idx+1, slots, net, due, now)
		return &inv, nil

	default:
		return nil, newSkip(auction.ID, lot.ID, bidder.ID, SkipUnknownPaymentKind, auctionerrors.ErrUnknownPaymentKind)
	}
}

func buildInvoice(auction models.Auction, lot models.Lot, bidder models.Bidder, displayIndex, total int, net decimal.Decimal, due time.Time, now time.Time) models.Invoice {
	return models.Invoice{
		// the lot id keeps the composite unique when an auction sells
		// several lots under the same plan kind
		ID:               fmt.Sprintf("%s-%s-%s-%d", auction.ID, lot.ID, lot.Plan.Kind, displayIndex),
		AuctionID:        auction.ID,
		LotID:            lot.ID,
		BidderID:         bidder.PayerID(),
		BidderName:       bidder.Name,
		FaceValue:        bidder.TotalDue,
		NetValue:         net,
		DueDate:          due,
		InstallmentIndex: displayIndex,
		InstallmentTotal: total,
		Status:           Classify(now, due, false),
		Kind:             lot.Plan.Kind,
	}
}

func newSkip(auctionID, lotID, bidderID string, reason SkipReason, err error) *Skip {
	return &Skip{AuctionID: auctionID, LotID: lotID, BidderID: bidderID, Reason: reason, Err: err}
}

func skipFromErr(auctionID, lotID, bidderID string, err error) *Skip {
	reason := SkipPlanIncomplete
	switch {
	case errors.Is(err, auctionerrors.ErrBadStartMonth):
		reason = SkipBadStartMonth
	case errors.Is(err, auctionerrors.ErrUnknownPaymentKind):
		reason = SkipUnknownPaymentKind
	}
	return newSkip(auctionID, lotID, bidderID, reason, err)
}
