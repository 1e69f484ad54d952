package repository

import (
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"auction-office/internal/auctionerrors"
	model "auction-office/internal/models"
)

// GormStore is the persistent AuctionStore backed by gorm and sqlite
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the database at dsn and migrates the schema
func NewGormStore(dsn string) (*GormStore, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", dsn, err)
	}

	toMigrate := []interface{}{
		&model.Auction{}, &model.Lot{}, &model.Merchandise{},
		&model.Bidder{}, &model.BidderDocument{}, &model.ArchivedInvoice{},
	}
	for _, m := range toMigrate {
		if err := db.AutoMigrate(m); err != nil {
			return nil, fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return &GormStore{db: db}, nil
}

// CreateAuction stores a new auction aggregate
func (s *GormStore) CreateAuction(a model.Auction) error {
	if err := s.db.Create(&a).Error; err != nil {
		return fmt.Errorf("create auction %s: %w", a.ID, err)
	}
	return nil
}

// GetAuction returns the auction aggregate with the given id
func (s *GormStore) GetAuction(id string) (model.Auction, error) {
	var a model.Auction
	err := s.preloaded().First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	if err != nil {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, err)
	}
	return a, nil
}

// ListAuctions returns all auctions, excluding archived ones unless asked
func (s *GormStore) ListAuctions(includeArchived bool) ([]model.Auction, error) {
	q := s.preloaded()
	if !includeArchived {
		q = q.Where("archived = ?", false)
	}
	var out []model.Auction
	if err := q.Order("start_date").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list auctions: %w", err)
	}
	return out, nil
}

// SaveAuction replaces an existing auction aggregate, associations included
func (s *GormStore) SaveAuction(a model.Auction) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Auction
		if err := tx.First(&existing, "id = ?", a.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return auctionerrors.ErrAuctionNotFound
			}
			return err
		}
		if err := deleteAssociations(tx, a.ID); err != nil {
			return err
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&a).Error
	})
	if err != nil {
		return fmt.Errorf("save auction %s: %w", a.ID, err)
	}
	return nil
}

// DeleteAuction removes an auction aggregate entirely
func (s *GormStore) DeleteAuction(id string) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteAssociations(tx, id); err != nil {
			return err
		}
		res := tx.Delete(&model.Auction{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return auctionerrors.ErrAuctionNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete auction %s: %w", id, err)
	}
	return nil
}

// ArchiveInvoice marks a derived invoice id as hidden
func (s *GormStore) ArchiveInvoice(invoiceID string) error {
	row := model.ArchivedInvoice{InvoiceID: invoiceID}
	if err := s.db.FirstOrCreate(&row, "invoice_id = ?", invoiceID).Error; err != nil {
		return fmt.Errorf("archive invoice %s: %w", invoiceID, err)
	}
	return nil
}

// UnarchiveInvoice restores a hidden invoice id
func (s *GormStore) UnarchiveInvoice(invoiceID string) error {
	if err := s.db.Delete(&model.ArchivedInvoice{}, "invoice_id = ?", invoiceID).Error; err != nil {
		return fmt.Errorf("unarchive invoice %s: %w", invoiceID, err)
	}
	return nil
}

// ArchivedInvoiceIDs returns the set of hidden invoice ids
func (s *GormStore) ArchivedInvoiceIDs() (map[string]bool, error) {
	var rows []model.ArchivedInvoice
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list archived invoices: %w", err)
	}
	out := make(map[string]bool, len(rows))
	for _, r := range rows {
		out[r.InvoiceID] = true
	}
	return out, nil
}

func (s *GormStore) preloaded() *gorm.DB {
	return s.db.
		Preload("Lots").
		Preload("Lots.Merchandise").
		Preload("Bidders").
		Preload("Bidders.Documents")
}

// deleteAssociations clears lots, merchandise, bidders and bidder documents
// belonging to an auction before a full aggregate rewrite or delete.
func deleteAssociations(tx *gorm.DB, auctionID string) error {
	lotIDs := tx.Model(&model.Lot{}).Select("id").Where("auction_id = ?", auctionID)
	if err := tx.Where("lot_id IN (?)", lotIDs).Delete(&model.Merchandise{}).Error; err != nil {
		return err
	}
	bidderIDs := tx.Model(&model.Bidder{}).Select("id").Where("auction_id = ?", auctionID)
	if err := tx.Where("bidder_id IN (?)", bidderIDs).Delete(&model.BidderDocument{}).Error; err != nil {
		return err
	}
	if err := tx.Where("auction_id = ?", auctionID).Delete(&model.Lot{}).Error; err != nil {
		return err
	}
	return tx.Where("auction_id = ?", auctionID).Delete(&model.Bidder{}).Error
}
