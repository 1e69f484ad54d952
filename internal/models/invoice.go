package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice status values
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
	InvoiceStatusOverdue = "overdue"
)

// Invoice is a derived view of one currently-outstanding payment obligation.
// Invoices are regenerated from auction data on every read and never stored.
type Invoice struct {
	ID               string          `json:"id"`
	AuctionID        string          `json:"auction_id"`
	LotID            string          `json:"lot_id"`
	BidderID         string          `json:"bidder_id"`
	BidderName       string          `json:"bidder_name"`
	FaceValue        decimal.Decimal `json:"face_value"`
	NetValue         decimal.Decimal `json:"net_value"`
	DueDate          time.Time       `json:"due_date"`
	InstallmentIndex int             `json:"installment_index"` // 1-based for display
	InstallmentTotal int             `json:"installment_total"`
	Status           string          `json:"status"`
	Kind             string          `json:"kind"`
	Archived         bool            `json:"archived"`
	Note             string          `json:"note,omitempty"`
}

// ArchivedInvoice marks a derived invoice id as hidden from the active views.
// Kept in the store so archival survives restarts.
type ArchivedInvoice struct {
	InvoiceID string    `gorm:"primaryKey" json:"invoice_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats summarizes a generated invoice set for the dashboard
type Stats struct {
	PendingCount     int             `json:"pending_count"`
	PaidCount        int             `json:"paid_count"`
	OverdueCount     int             `json:"overdue_count"`
	ArchivedCount    int             `json:"archived_count"`
	OutstandingTotal decimal.Decimal `json:"outstanding_total"`
	SettledTotal     decimal.Decimal `json:"settled_total"`
}
