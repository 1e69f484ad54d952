package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Auction status values
const (
	AuctionStatusScheduled  = "scheduled"
	AuctionStatusInProgress = "in_progress"
	AuctionStatusFinished   = "finished"
)

// Auction location kinds
const (
	LocationPhysical = "physical"
	LocationOnline   = "online"
	LocationHybrid   = "hybrid"
)

// Payment plan kinds
const (
	PaymentLumpSum                 = "lump_sum"
	PaymentInstallments            = "installments"
	PaymentDownPaymentInstallments = "down_payment_installments"
)

// Late-interest compounding modes
const (
	InterestSimple   = "simple"
	InterestCompound = "compound"
)

// Auction represents a sellable auction event with its lots and winning bidders
type Auction struct {
	ID           string          `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Code         string          `gorm:"index" json:"code"`
	LocationKind string          `json:"location_kind"`
	Address      string          `json:"address"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Status       string          `gorm:"default:scheduled;index" json:"status"`
	Archived     bool            `gorm:"default:false;index" json:"archived"`
	CostTotal    decimal.Decimal `gorm:"type:decimal(15,2)" json:"cost_total"`
	HistoryNotes string          `gorm:"type:text" json:"history_notes"`
	Lots         []Lot           `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE" json:"lots"`
	Bidders      []Bidder        `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE" json:"bidders"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Lot represents a unit of sale within an auction
type Lot struct {
	ID          string        `gorm:"primaryKey" json:"id"`
	AuctionID   string        `gorm:"index;not null" json:"auction_id"`
	Number      string        `gorm:"not null" json:"number"`
	Description string        `gorm:"type:text" json:"description"`
	Archived    bool          `gorm:"default:false" json:"archived"`
	Merchandise []Merchandise `gorm:"foreignKey:LotID;constraint:OnDelete:CASCADE" json:"merchandise"`
	Plan        PaymentPlan   `gorm:"embedded;embeddedPrefix:plan_" json:"plan"`
	ImageURLs   []string      `gorm:"serializer:json" json:"image_urls,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Merchandise is a single item sold as part of a lot
type Merchandise struct {
	ID          string `gorm:"primaryKey" json:"id"`
	LotID       string `gorm:"index;not null" json:"lot_id"`
	Description string `gorm:"not null" json:"description"`
	Quantity    int    `gorm:"default:1" json:"quantity"`
}

// PaymentPlan is the payment-type configuration of a lot. Kind selects the
// variant; only the fields belonging to the active variant are meaningful.
type PaymentPlan struct {
	Kind               string     `json:"kind"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	DownPaymentDueDate *time.Time `json:"down_payment_due_date,omitempty"`
	InstallmentCount   int        `json:"installment_count,omitempty"`
	StartMonth         string     `json:"start_month,omitempty"` // YYYY-MM
	DueDayOfMonth      int        `json:"due_day_of_month,omitempty"`
}

// TotalSlots returns the number of payment slots in the plan. The down
// payment counts as its own slot.
func (p PaymentPlan) TotalSlots() int {
	switch p.Kind {
	case PaymentLumpSum:
		return 1
	case PaymentInstallments:
		return p.InstallmentCount
	case PaymentDownPaymentInstallments:
		return p.InstallmentCount + 1
	default:
		return 0
	}
}

// Bidder is the winning buyer of a lot together with their payment obligation
type Bidder struct {
	ID                  string           `gorm:"primaryKey" json:"id"`
	AuctionID           string           `gorm:"index;not null" json:"auction_id"`
	LotID               string           `gorm:"index;not null" json:"lot_id"`
	Name                string           `gorm:"not null" json:"name"`
	Document            string           `gorm:"index" json:"document"`
	Address             string           `json:"address"`
	Email               string           `json:"email"`
	Phone               string           `json:"phone"`
	TotalDue            decimal.Decimal  `gorm:"type:decimal(15,2)" json:"total_due"`
	InstallmentsPaid    int              `gorm:"default:0" json:"installments_paid"`
	FullyPaid           bool             `gorm:"default:false" json:"fully_paid"`
	LateInterestPercent decimal.Decimal  `gorm:"type:decimal(6,3)" json:"late_interest_percent"`
	LateInterestMode    string           `gorm:"default:simple" json:"late_interest_mode"`
	Documents           []BidderDocument `gorm:"foreignKey:BidderID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// BidderDocument is a file attached to a bidder record
type BidderDocument struct {
	ID       string `gorm:"primaryKey" json:"id"`
	BidderID string `gorm:"index;not null" json:"bidder_id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
}

// Document kinds derived from digit count
const (
	DocumentPerson  = "person"  // CPF, 11 digits
	DocumentCompany = "company" // CNPJ, 14 digits
	DocumentUnknown = "unknown"
)

// DocumentKind classifies the bidder document by its digit count:
// 11 digits is a person id (CPF), more than 11 a company id (CNPJ).
func (b Bidder) DocumentKind() string {
	digits := 0
	for _, r := range b.Document {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	switch {
	case digits == 11:
		return DocumentPerson
	case digits > 11:
		return DocumentCompany
	default:
		return DocumentUnknown
	}
}

// PayerID returns the bidder document, falling back to the record id when
// no document was captured.
func (b Bidder) PayerID() string {
	if b.Document != "" {
		return b.Document
	}
	return b.ID
}
