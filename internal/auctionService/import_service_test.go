package auction

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"auction-office/internal/auctionerrors"
	"auction-office/internal/models"
	"auction-office/internal/repository"
)

func TestAuctionService_ImportLegacySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockAuctionStore(ctrl)
	service := NewAuctionService(mockStore)

	t.Run("creates_each_auction", func(t *testing.T) {
		mockStore.EXPECT().GetAuction(gomock.Any()).Return(models.Auction{}, auctionerrors.ErrAuctionNotFound).Times(2)
		mockStore.EXPECT().CreateAuction(gomock.Any()).DoAndReturn(func(a models.Auction) error {
			require.Equal(t, "Leilão Um", a.Name)
			return nil
		})
		mockStore.EXPECT().CreateAuction(gomock.Any()).DoAndReturn(func(a models.Auction) error {
			require.Equal(t, "Leilão Dois", a.Name)
			return nil
		})

		imported, err := service.ImportLegacySnapshot([]byte(`{
			"leiloes": [
				{"nome": "Leilão Um"},
				{"nome": "Leilão Dois"}
			]
		}`))
		require.NoError(t, err)
		require.Equal(t, 2, imported)
	})

	t.Run("reimport_replaces_existing", func(t *testing.T) {
		mockStore.EXPECT().GetAuction("fixo").Return(models.Auction{ID: "fixo"}, nil)
		mockStore.EXPECT().SaveAuction(gomock.Any()).Return(nil)

		imported, err := service.ImportLegacySnapshot([]byte(`{"leiloes": [{"id": "fixo", "nome": "Repetido"}]}`))
		require.NoError(t, err)
		require.Equal(t, 1, imported)
	})

	t.Run("create_failure_is_not_retried_as_save", func(t *testing.T) {
		storeErr := errors.New("constraint violation")
		mockStore.EXPECT().GetAuction(gomock.Any()).Return(models.Auction{}, auctionerrors.ErrAuctionNotFound)
		mockStore.EXPECT().CreateAuction(gomock.Any()).Return(storeErr)

		imported, err := service.ImportLegacySnapshot([]byte(`{"leiloes": [{"nome": "Quebrado"}]}`))
		require.ErrorIs(t, err, storeErr)
		require.Equal(t, 0, imported)
	})

	t.Run("lookup_failure_aborts_import", func(t *testing.T) {
		storeErr := errors.New("db unreachable")
		mockStore.EXPECT().GetAuction(gomock.Any()).Return(models.Auction{}, storeErr)

		imported, err := service.ImportLegacySnapshot([]byte(`{"leiloes": [{"nome": "Inacessível"}]}`))
		require.ErrorIs(t, err, storeErr)
		require.Equal(t, 0, imported)
	})

	t.Run("malformed_snapshot", func(t *testing.T) {
		_, err := service.ImportLegacySnapshot([]byte(`{"leiloes": [`))
		require.ErrorIs(t, err, auctionerrors.ErrLegacySnapshotBad)
	})
}
