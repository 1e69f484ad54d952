package perftests

import (
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-office/internal/auctionService"
	repository "auction-office/internal/repository"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name           string
	NumAuctions    int
	LotsPerAuction int
	ReadRatio      int  // out of 10 operations
	Burst          bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	latencies atomic.Value // stores []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	v := om.latencies.Load()
	var l []time.Duration
	if v != nil {
		l = v.([]time.Duration)
	}
	l = append(l, d)
	om.latencies.Store(l)
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	v := om.latencies.Load()
	if v == nil {
		return
	}
	latencies := v.([]time.Duration)
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// setupService creates a seeded store and the auction service on top of it
func setupService(b *testing.B, numAuctions, lotsPerAuction int) *auction.AuctionService {
	store := repository.NewMemoryStore()
	for _, a := range seedAuctions(numAuctions, lotsPerAuction) {
		if err := store.CreateAuction(a); err != nil {
			b.Fatalf("failed to seed store: %v", err)
		}
	}
	return auction.NewAuctionService(store)
}

// Benchmark_Load_ScheduleEngine runs mixed read/write scenarios against the service
func Benchmark_Load_ScheduleEngine(b *testing.B) {
	scenarios := []LoadScenario{
		{"ReadHeavy-Dashboard", 100, 10, 9, false},
		{"Mixed-Workload", 100, 10, 5, false},
		{"WriteHeavy-Payments", 200, 5, 1, false},
		{"Peak-Burst", 50, 10, 7, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc := setupService(b, s.NumAuctions, s.LotsPerAuction)

	var totalOps, reads, payments, settledRejections int64
	metrics := &OperationMetrics{}

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			auctionIndex := rnd.Intn(s.NumAuctions)
			lotIndex := rnd.Intn(s.LotsPerAuction)
			opType := rnd.Intn(10)

			opStart := time.Now()
			if opType < s.ReadRatio {
				if _, err := svc.ListInvoices(false); err != nil {
					b.Logf("ignored read error: %v", err)
				}
				atomic.AddInt64(&reads, 1)
			} else {
				auctionID := fmt.Sprintf("auction_%d", auctionIndex)
				bidderID := fmt.Sprintf("auction_%d_lot_%d_bidder", auctionIndex, lotIndex)
				if _, err := svc.RecordPayment(auctionID, bidderID); err != nil {
					// settled plans reject further payments under sustained load
					atomic.AddInt64(&settledRejections, 1)
				} else {
					atomic.AddInt64(&payments, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Total Ops: %d | Payments: %d | Settled Rejections: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, totalOps, payments, settledRejections, reads, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
}
