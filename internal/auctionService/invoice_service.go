package auction

import (
	"fmt"

	"auction-office/internal/auctionerrors"
	"auction-office/internal/models"
	"auction-office/internal/schedule"
	"auction-office/utils"
)

// ListInvoices regenerates the outstanding-invoice view from the latest
// auction snapshot. Archived invoices are annotated and, unless asked for,
// filtered out. Skipped bidders are reported through the log, never as errors.
func (s *AuctionService) ListInvoices(includeArchived bool) ([]models.Invoice, error) {
	invoices, archived, err := s.generate()
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		invoices[i].Archived = archived[invoices[i].ID]
	}
	if includeArchived {
		return invoices, nil
	}
	return schedule.Filter(invoices, func(inv models.Invoice) bool {
		return !inv.Archived
	}), nil
}

// InvoiceStats aggregates the regenerated invoice view into dashboard numbers
func (s *AuctionService) InvoiceStats(includeArchived bool) (models.Stats, error) {
	invoices, archived, err := s.generate()
	if err != nil {
		return models.Stats{}, err
	}
	return schedule.Aggregate(invoices, archived, includeArchived), nil
}

// ArchiveInvoice hides a derived invoice id from the active views. The
// underlying bidder and lot records are left untouched.
func (s *AuctionService) ArchiveInvoice(invoiceID string) error {
	if invoiceID == "" {
		return fmt.Errorf("service: %w - empty invoice ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.store.ArchiveInvoice(invoiceID); err != nil {
		return fmt.Errorf("service: failed to archive invoice %s: %w", invoiceID, err)
	}
	return nil
}

// UnarchiveInvoice restores a hidden invoice id
func (s *AuctionService) UnarchiveInvoice(invoiceID string) error {
	if invoiceID == "" {
		return fmt.Errorf("service: %w - empty invoice ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.store.UnarchiveInvoice(invoiceID); err != nil {
		return fmt.Errorf("service: failed to unarchive invoice %s: %w", invoiceID, err)
	}
	return nil
}

// generate fetches the current snapshot and runs the schedule engine on it.
// Archived auctions are passed through; the engine excludes them itself.
func (s *AuctionService) generate() ([]models.Invoice, map[string]bool, error) {
	auctions, err := s.store.ListAuctions(true)
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to load auctions for schedule: %w", err)
	}
	archived, err := s.store.ArchivedInvoiceIDs()
	if err != nil {
		return nil, nil, fmt.Errorf("service: failed to load archived invoice ids: %w", err)
	}

	invoices, skips := schedule.Generate(s.now(), auctions)
	for _, skip := range skips {
		utils.Warn("schedule: bidder skipped", map[string]any{
			"auction_id": skip.AuctionID,
			"lot_id":     skip.LotID,
			"bidder_id":  skip.BidderID,
			"reason":     string(skip.Reason),
			"error":      errString(skip.Err),
		})
	}
	return invoices, archived, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
