package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-office/internal/auctionerrors"
	model "auction-office/internal/models"
	"auction-office/services/auction/helpers"
)

// Test AddLotHandler
func TestAddLotHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/lots", handler.AddLotHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_lot_with_plan",
			requestBody: helpers.LotRequest{
				Number:      "7",
				Description: "Trator",
				Plan: helpers.PaymentPlanRequest{
					Kind:             "installments",
					InstallmentCount: 10,
					StartMonth:       "2024-04",
					DueDayOfMonth:    15,
				},
			},
			mockSetup: func() {
				mockService.EXPECT().
					AddLot("a1", gomock.Any()).
					DoAndReturn(func(auctionID string, lot model.Lot) (model.Lot, error) {
						require.Equal(t, "7", lot.Number)
						require.Equal(t, model.PaymentInstallments, lot.Plan.Kind)
						require.Equal(t, 10, lot.Plan.InstallmentCount)
						lot.ID = "lot-7"
						lot.AuctionID = auctionID
						return lot, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "lot added successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_number",
			requestBody:    helpers.LotRequest{Description: "sem número"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "duplicate_number",
			requestBody: helpers.LotRequest{Number: "1"},
			mockSetup: func() {
				mockService.EXPECT().
					AddLot("a1", gomock.Any()).
					Return(model.Lot{}, auctionerrors.ErrDuplicateLot)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "lot number already used in auction",
		},
		{
			name:        "auction_not_found",
			requestBody: helpers.LotRequest{Number: "1"},
			mockSetup: func() {
				mockService.EXPECT().
					AddLot("a1", gomock.Any()).
					Return(model.Lot{}, auctionerrors.ErrAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "auction not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/a1/lots", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test AssignBidderHandler
func TestAssignBidderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/auctions/:auction_id/lots/:lot_id/bidder", handler.AssignBidderHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_bidder_assigned",
			requestBody: helpers.BidderRequest{
				Name:     "Helena Dias",
				Document: "12345678901",
				TotalDue: decimal.NewFromInt(5000),
			},
			mockSetup: func() {
				mockService.EXPECT().
					AssignBidder("a1", gomock.Any()).
					DoAndReturn(func(auctionID string, b model.Bidder) (model.Bidder, error) {
						require.Equal(t, "lot1", b.LotID, "lot id comes from the route, not the body")
						require.Equal(t, model.InterestSimple, b.LateInterestMode, "interest mode defaults to simple")
						b.ID = "b1"
						b.AuctionID = auctionID
						return b, nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bidder assigned successfully",
		},
		{
			name:           "missing_name",
			requestBody:    helpers.BidderRequest{Document: "123"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "lot_not_found",
			requestBody: helpers.BidderRequest{Name: "Sem Lote"},
			mockSetup: func() {
				mockService.EXPECT().
					AssignBidder("a1", gomock.Any()).
					Return(model.Bidder{}, auctionerrors.ErrLotNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "lot not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/auctions/a1/lots/lot1/bidder", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test RecordPaymentHandler
func TestRecordPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auctions/:auction_id/bidders/:bidder_id/payments", handler.RecordPaymentHandler)

	tests := []struct {
		name           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "success_payment_recorded",
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("a1", "b1").
					Return(model.Bidder{ID: "b1", InstallmentsPaid: 4, FullyPaid: false}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "payment recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 4.0, data["installments_paid"])
				require.Equal(t, false, data["fully_paid"])
			},
		},
		{
			name: "already_settled",
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("a1", "b1").
					Return(model.Bidder{}, auctionerrors.ErrAlreadySettled)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "payment plan already settled",
		},
		{
			name: "bidder_not_found",
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("a1", "b1").
					Return(model.Bidder{}, auctionerrors.ErrBidderNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bidder not found",
		},
		{
			name: "plan_incomplete",
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("a1", "b1").
					Return(model.Bidder{}, auctionerrors.ErrPlanIncomplete)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "payment plan configuration incomplete",
		},
		{
			name: "service_generic_error",
			mockSetup: func() {
				mockService.EXPECT().
					RecordPayment("a1", "b1").
					Return(model.Bidder{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/auctions/a1/bidders/b1/payments", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err := json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}
