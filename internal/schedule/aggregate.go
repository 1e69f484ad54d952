package schedule

import (
	"github.com/shopspring/decimal"

	"auction-office/internal/models"
)

// Aggregate summarizes generated invoices for the dashboard. Archived
// invoices are counted separately and contribute to the status counts and
// sums only when includeArchived is set.
func Aggregate(invoices []models.Invoice, archivedIDs map[string]bool, includeArchived bool) models.Stats {
	stats := models.Stats{
		OutstandingTotal: decimal.Zero,
		SettledTotal:     decimal.Zero,
	}
	for _, inv := range invoices {
		if archivedIDs[inv.ID] {
			stats.ArchivedCount++
			if !includeArchived {
				continue
			}
		}
		switch inv.Status {
		case models.InvoiceStatusPending:
			stats.PendingCount++
			stats.OutstandingTotal = stats.OutstandingTotal.Add(inv.NetValue)
		case models.InvoiceStatusOverdue:
			stats.OverdueCount++
			stats.OutstandingTotal = stats.OutstandingTotal.Add(inv.NetValue)
		case models.InvoiceStatusPaid:
			stats.PaidCount++
			stats.SettledTotal = stats.SettledTotal.Add(inv.NetValue)
		}
	}
	return stats
}

// Filter returns the invoices for which keep returns true, preserving order.
func Filter(invoices []models.Invoice, keep func(models.Invoice) bool) []models.Invoice {
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	return out
}
