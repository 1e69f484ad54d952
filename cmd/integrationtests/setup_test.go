package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-office/internal/auctionService"
	model "auction-office/internal/models"
	"auction-office/internal/repository"
	"auction-office/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with the in-memory store for integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()
	service := auction.NewAuctionService(store)
	router := server.SetupRouter(service)
	return router
}

// SetupTestRouterWithAuctions initializes the router and seeds the store with auctions.
func SetupTestRouterWithAuctions(t *testing.T, auctions ...model.Auction) *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()

	for _, a := range auctions {
		if err := store.CreateAuction(a); err != nil {
			t.Fatalf("failed to seed auction %s: %v", a.ID, err)
		}
	}

	service := auction.NewAuctionService(store)
	router := server.SetupRouter(service)
	return router
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case []byte:
		reqBody = v
	case nil:
		reqBody = nil
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		if err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if w.Code == 201 {
			resp = resp["data"].(map[string]any)
		}
	}

	return resp, w
}
