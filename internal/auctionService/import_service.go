package auction

import (
	"errors"
	"fmt"

	"auction-office/internal/auctionerrors"
	"auction-office/internal/legacy"
	"auction-office/utils"
)

// ImportLegacySnapshot loads a legacy back-office export. Auctions already
// present are overwritten in place; new ones are created. Returns the number
// of auctions imported.
func (s *AuctionService) ImportLegacySnapshot(data []byte) (int, error) {
	auctions, err := legacy.ParseSnapshot(data)
	if err != nil {
		return 0, fmt.Errorf("service: failed to parse legacy snapshot: %w", err)
	}
	imported := 0
	for _, a := range auctions {
		_, err := s.store.GetAuction(a.ID)
		switch {
		case err == nil:
			// re-import of a known id: replace the stored aggregate
			if err := s.store.SaveAuction(a); err != nil {
				return imported, fmt.Errorf("service: failed to re-import auction %s: %w", a.ID, err)
			}
		case errors.Is(err, auctionerrors.ErrAuctionNotFound):
			if err := s.store.CreateAuction(a); err != nil {
				return imported, fmt.Errorf("service: failed to import auction %s: %w", a.ID, err)
			}
		default:
			return imported, fmt.Errorf("service: failed to import auction %s: %w", a.ID, err)
		}
		imported++
	}
	utils.Info("legacy snapshot imported", map[string]any{
		"auctions": imported,
	})
	return imported, nil
}
