package perftests

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	auction "auction-office/internal/auctionService"
	model "auction-office/internal/models"
	repository "auction-office/internal/repository"
	"auction-office/internal/schedule"
)

func seedAuctions(numAuctions, lotsPerAuction int) []model.Auction {
	auctions := make([]model.Auction, 0, numAuctions)
	for i := 0; i < numAuctions; i++ {
		a := model.Auction{
			ID:     fmt.Sprintf("auction_%d", i),
			Name:   fmt.Sprintf("Benchmark Auction %d", i),
			Status: model.AuctionStatusInProgress,
		}
		for j := 0; j < lotsPerAuction; j++ {
			lotID := fmt.Sprintf("auction_%d_lot_%d", i, j)
			a.Lots = append(a.Lots, model.Lot{
				ID:        lotID,
				AuctionID: a.ID,
				Number:    fmt.Sprintf("%d", j+1),
				Plan: model.PaymentPlan{
					Kind:             model.PaymentInstallments,
					InstallmentCount: 12,
					StartMonth:       "2024-01",
					DueDayOfMonth:    10,
				},
			})
			a.Bidders = append(a.Bidders, model.Bidder{
				ID:               lotID + "_bidder",
				AuctionID:        a.ID,
				LotID:            lotID,
				Name:             "Benchmark Bidder",
				TotalDue:         decimal.NewFromInt(12000),
				InstallmentsPaid: j % 12,
			})
		}
		auctions = append(auctions, a)
	}
	return auctions
}

// Benchmark 1: Generate - pure engine over a growing auction set
func Benchmark_Generate_Engine(b *testing.B) {
	sizes := []struct {
		name           string
		auctions, lots int
	}{
		{"Small_10x5", 10, 5},
		{"Medium_100x10", 100, 10},
		{"Large_500x20", 500, 20},
	}

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			auctions := seedAuctions(s.auctions, s.lots)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				invoices, _ := schedule.Generate(now, auctions)
				if len(invoices) == 0 {
					b.Fatal("expected invoices from seeded auctions")
				}
			}
		})
	}
}

// Benchmark 2: ListInvoices - full service path including the store snapshot
func Benchmark_ListInvoices_Service(b *testing.B) {
	store := repository.NewMemoryStore()
	for _, a := range seedAuctions(100, 10) {
		if err := store.CreateAuction(a); err != nil {
			b.Fatalf("failed to seed store: %v", err)
		}
	}
	svc := auction.NewAuctionService(store)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.ListInvoices(false); err != nil {
			b.Fatalf("failed to list invoices: %v", err)
		}
	}
}

// Benchmark 3: InvoiceStats - aggregation on top of generation
func Benchmark_InvoiceStats_Service(b *testing.B) {
	store := repository.NewMemoryStore()
	for _, a := range seedAuctions(100, 10) {
		if err := store.CreateAuction(a); err != nil {
			b.Fatalf("failed to seed store: %v", err)
		}
	}
	svc := auction.NewAuctionService(store)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.InvoiceStats(false); err != nil {
			b.Fatalf("failed to compute stats: %v", err)
		}
	}
}

// Benchmark 4: Concurrent reads against the shared store
func Benchmark_ListInvoices_Concurrent(b *testing.B) {
	store := repository.NewMemoryStore()
	for _, a := range seedAuctions(50, 10) {
		if err := store.CreateAuction(a); err != nil {
			b.Fatalf("failed to seed store: %v", err)
		}
	}
	svc := auction.NewAuctionService(store)

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.ListInvoices(false); err != nil {
				b.Fatalf("failed to list invoices: %v", err)
			}
		}
	})
}
