package repository

import (
	"fmt"
	"sync"
	"time"

	"auction-office/internal/auctionerrors"
	model "auction-office/internal/models"
)

// AuctionStore defines the record-store interface for the back office.
// Auctions are stored as whole aggregates (lots and bidders included);
// archived invoice ids are a separate persisted set so that hiding an
// invoice survives restarts.
type AuctionStore interface {
	CreateAuction(a model.Auction) error
	GetAuction(id string) (model.Auction, error)
	ListAuctions(includeArchived bool) ([]model.Auction, error)
	SaveAuction(a model.Auction) error
	DeleteAuction(id string) error
	ArchiveInvoice(invoiceID string) error
	UnarchiveInvoice(invoiceID string) error
	ArchivedInvoiceIDs() (map[string]bool, error)
}

// MemoryStore is a concurrency-safe in-memory implementation of AuctionStore
type MemoryStore struct {
	mu               sync.RWMutex
	auctions         map[string]model.Auction
	archivedInvoices map[string]bool
}

// NewMemoryStore creates a new in-memory store instance
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		auctions:         make(map[string]model.Auction),
		archivedInvoices: make(map[string]bool),
	}
}

// CreateAuction stores a new auction aggregate
func (s *MemoryStore) CreateAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[a.ID]; ok {
		return fmt.Errorf("create auction %s: %w", a.ID, auctionerrors.ErrInvalidInput)
	}
	s.auctions[a.ID] = cloneAuction(a)
	return nil
}

// GetAuction returns the auction aggregate with the given id
func (s *MemoryStore) GetAuction(id string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(a), nil
}

// ListAuctions returns all auctions, excluding archived ones unless asked
func (s *MemoryStore) ListAuctions(includeArchived bool) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if a.Archived && !includeArchived {
			continue
		}
		out = append(out, cloneAuction(a))
	}
	return out, nil
}

// SaveAuction replaces an existing auction aggregate
func (s *MemoryStore) SaveAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[a.ID]; !ok {
		return fmt.Errorf("save auction %s: %w", a.ID, auctionerrors.ErrAuctionNotFound)
	}
	s.auctions[a.ID] = cloneAuction(a)
	return nil
}

// DeleteAuction removes an auction aggregate entirely
func (s *MemoryStore) DeleteAuction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[id]; !ok {
		return fmt.Errorf("delete auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	delete(s.auctions, id)
	return nil
}

// ArchiveInvoice marks a derived invoice id as hidden
func (s *MemoryStore) ArchiveInvoice(invoiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archivedInvoices[invoiceID] = true
	return nil
}

// UnarchiveInvoice restores a hidden invoice id
func (s *MemoryStore) UnarchiveInvoice(invoiceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.archivedInvoices, invoiceID)
	return nil
}

// ArchivedInvoiceIDs returns the set of hidden invoice ids
func (s *MemoryStore) ArchivedInvoiceIDs() (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]bool, len(s.archivedInvoices))
	for id := range s.archivedInvoices {
		out[id] = true
	}
	return out, nil
}

// cloneAuction copies the aggregate so callers never share slices with the store
func cloneAuction(a model.Auction) model.Auction {
	out := a
	out.Lots = make([]model.Lot, len(a.Lots))
	for i, lot := range a.Lots {
		out.Lots[i] = lot
		out.Lots[i].Merchandise = append([]model.Merchandise(nil), lot.Merchandise...)
		out.Lots[i].ImageURLs = append([]string(nil), lot.ImageURLs...)
		out.Lots[i].Plan.DueDate = cloneDate(lot.Plan.DueDate)
		out.Lots[i].Plan.DownPaymentDueDate = cloneDate(lot.Plan.DownPaymentDueDate)
	}
	out.Bidders = make([]model.Bidder, len(a.Bidders))
	for i, b := range a.Bidders {
		out.Bidders[i] = b
		out.Bidders[i].Documents = append([]model.BidderDocument(nil), b.Documents...)
	}
	return out
}

func cloneDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := *t
	return &d
}
