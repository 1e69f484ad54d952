package auction

import (
	"fmt"
	"time"

	"auction-office/internal/auctionerrors"
	"auction-office/internal/models"
	"auction-office/internal/repository"
	"auction-office/utils"
)

// AuctionService defines the back-office business logic over the record store
type AuctionService struct {
	store repository.AuctionStore
	now   func() time.Time // swapped in tests for deterministic schedules
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(store repository.AuctionStore) *AuctionService {
	return &AuctionService{
		store: store,
		now:   time.Now,
	}
}

// CreateAuction validates and stores a new auction
func (s *AuctionService) CreateAuction(a models.Auction) (models.Auction, error) {
	if a.Name == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auction name", auctionerrors.ErrInvalidInput)
	}
	if a.ID == "" {
		a.ID = utils.GenerateID()
	}
	if a.Status == "" {
		a.Status = models.AuctionStatusScheduled
	}
	for i := range a.Lots {
		if a.Lots[i].ID == "" {
			a.Lots[i].ID = utils.GenerateID()
		}
		a.Lots[i].AuctionID = a.ID
	}
	if err := s.store.CreateAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %s: %w", a.ID, err)
	}
	return a, nil
}

// GetAuction returns one auction aggregate
func (s *AuctionService) GetAuction(id string) (models.Auction, error) {
	if id == "" {
		return models.Auction{}, fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	a, err := s.store.GetAuction(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", id, err)
	}
	return a, nil
}

// ListAuctions returns all auctions, optionally including archived ones
func (s *AuctionService) ListAuctions(includeArchived bool) ([]models.Auction, error) {
	auctions, err := s.store.ListAuctions(includeArchived)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}
	return auctions, nil
}

// UpdateAuction replaces the top-level fields of an auction, leaving its lots
// and bidders to their own sub-flows
func (s *AuctionService) UpdateAuction(a models.Auction) (models.Auction, error) {
	if a.ID == "" || a.Name == "" {
		return models.Auction{}, fmt.Errorf("service: %w - missing auction ID or name", auctionerrors.ErrInvalidInput)
	}
	current, err := s.store.GetAuction(a.ID)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to load auction %s: %w", a.ID, err)
	}
	a.Lots = current.Lots
	a.Bidders = current.Bidders
	// an edit never undoes a soft delete, and omitting the status keeps it
	a.Archived = current.Archived
	if a.Status == "" {
		a.Status = current.Status
	}
	if err := s.store.SaveAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to update auction %s: %w", a.ID, err)
	}
	return a, nil
}

// ArchiveAuction soft-deletes an auction; archived auctions stop contributing
// invoices to the schedule
func (s *AuctionService) ArchiveAuction(id string) error {
	a, err := s.GetAuction(id)
	if err != nil {
		return err
	}
	a.Archived = true
	if err := s.store.SaveAuction(a); err != nil {
		return fmt.Errorf("service: failed to archive auction %s: %w", id, err)
	}
	return nil
}

// DeleteAuction removes an auction permanently
func (s *AuctionService) DeleteAuction(id string) error {
	if id == "" {
		return fmt.Errorf("service: %w - empty auction ID", auctionerrors.ErrInvalidInput)
	}
	if err := s.store.DeleteAuction(id); err != nil {
		return fmt.Errorf("service: failed to delete auction %s: %w", id, err)
	}
	return nil
}

// AddLot appends a lot to an auction, enforcing auction-scoped number uniqueness
func (s *AuctionService) AddLot(auctionID string, lot models.Lot) (models.Lot, error) {
	if lot.Number == "" {
		return models.Lot{}, fmt.Errorf("service: %w - missing lot number", auctionerrors.ErrInvalidInput)
	}
	a, err := s.GetAuction(auctionID)
	if err != nil {
		return models.Lot{}, err
	}
	for _, existing := range a.Lots {
		if existing.Number == lot.Number {
			return models.Lot{}, fmt.Errorf("service: lot number %s: %w", lot.Number, auctionerrors.ErrDuplicateLot)
		}
	}
	if lot.ID == "" {
		lot.ID = utils.GenerateID()
	}
	lot.AuctionID = auctionID
	a.Lots = append(a.Lots, lot)
	if err := s.store.SaveAuction(a); err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to add lot to auction %s: %w", auctionID, err)
	}
	return lot, nil
}

// UpdateLot replaces a lot within its auction
func (s *AuctionService) UpdateLot(auctionID string, lot models.Lot) (models.Lot, error) {
	a, err := s.GetAuction(auctionID)
	if err != nil {
		return models.Lot{}, err
	}
	idx := -1
	for i, existing := range a.Lots {
		if existing.ID == lot.ID {
			idx = i
			continue
		}
		if existing.Number == lot.Number {
			return models.Lot{}, fmt.Errorf("service: lot number %s: %w", lot.Number, auctionerrors.ErrDuplicateLot)
		}
	}
	if idx < 0 {
		return models.Lot{}, fmt.Errorf("service: lot %s: %w", lot.ID, auctionerrors.ErrLotNotFound)
	}
	lot.AuctionID = auctionID
	a.Lots[idx] = lot
	if err := s.store.SaveAuction(a); err != nil {
		return models.Lot{}, fmt.Errorf("service: failed to update lot %s: %w", lot.ID, err)
	}
	return lot, nil
}

// ArchiveLot hides a lot from active listings without removing it
func (s *AuctionService) ArchiveLot(auctionID, lotID string) error {
	a, err := s.GetAuction(auctionID)
	if err != nil {
		return err
	}
	for i := range a.Lots {
		if a.Lots[i].ID == lotID {
			a.Lots[i].Archived = true
			if err := s.store.SaveAuction(a); err != nil {
				return fmt.Errorf("service: failed to archive lot %s: %w", lotID, err)
			}
			return nil
		}
	}
	return fmt.Errorf("service: lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
}

// AssignBidder creates or replaces the winning bidder bound to a lot. A lot
// with a bidder record displays as won.
func (s *AuctionService) AssignBidder(auctionID string, b models.Bidder) (models.Bidder, error) {
	if b.Name == "" || b.LotID == "" {
		return models.Bidder{}, fmt.Errorf("service: %w - missing bidder name or lot ID", auctionerrors.ErrInvalidInput)
	}
	a, err := s.GetAuction(auctionID)
	if err != nil {
		return models.Bidder{}, err
	}
	lotExists := false
	for _, lot := range a.Lots {
		if lot.ID == b.LotID {
			lotExists = true
			break
		}
	}
	if !lotExists {
		return models.Bidder{}, fmt.Errorf("service: lot %s: %w", b.LotID, auctionerrors.ErrLotNotFound)
	}

	b.AuctionID = auctionID
	replaced := false
	for i := range a.Bidders {
		if a.Bidders[i].LotID == b.LotID {
			if b.ID == "" {
				b.ID = a.Bidders[i].ID
			}
			a.Bidders[i] = b
			replaced = true
			break
		}
	}
	if !replaced {
		if b.ID == "" {
			b.ID = utils.GenerateID()
		}
		a.Bidders = append(a.Bidders, b)
	}
	if err := s.store.SaveAuction(a); err != nil {
		return models.Bidder{}, fmt.Errorf("service: failed to assign bidder to lot %s: %w", b.LotID, err)
	}
	return b, nil
}

// RecordPayment registers one paid slot for a bidder and flips the fully-paid
// flag once the plan's slot count is reached. The flag is only ever mutated
// here, never as a side effect of reading schedules.
func (s *AuctionService) RecordPayment(auctionID, bidderID string) (models.Bidder, error) {
	a, err := s.GetAuction(auctionID)
	if err != nil {
		return models.Bidder{}, err
	}
	idx := -1
	for i := range a.Bidders {
		if a.Bidders[i].ID == bidderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Bidder{}, fmt.Errorf("service: bidder %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}
	bidder := a.Bidders[idx]
	if bidder.FullyPaid {
		return models.Bidder{}, fmt.Errorf("service: bidder %s: %w", bidderID, auctionerrors.ErrAlreadySettled)
	}

	var plan models.PaymentPlan
	for _, lot := range a.Lots {
		if lot.ID == bidder.LotID {
			plan = lot.Plan
			break
		}
	}
	slots := plan.TotalSlots()
	if slots <= 0 {
		return models.Bidder{}, fmt.Errorf("service: bidder %s: %w", bidderID, auctionerrors.ErrPlanIncomplete)
	}

	bidder.InstallmentsPaid++
	if bidder.InstallmentsPaid >= slots {
		bidder.InstallmentsPaid = slots
		bidder.FullyPaid = true
	}
	a.Bidders[idx] = bidder
	if err := s.store.SaveAuction(a); err != nil {
		return models.Bidder{}, fmt.Errorf("service: failed to record payment for bidder %s: %w", bidderID, err)
	}
	return bidder, nil
}
