package schedule

import (
	"time"

	"auction-office/internal/models"
)

// Classify returns the temporal status of an obligation. A paid obligation is
// always paid, even when its due date is still in the future. Unpaid
// obligations compare at calendar-day granularity: the invoice stays pending
// until the end of the due day (23:59:59.999 in the due date's location).
func Classify(now, dueDate time.Time, paid bool) string {
	if paid {
		return models.InvoiceStatusPaid
	}
	endOfDay := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(),
		23, 59, 59, int(999*time.Millisecond), dueDate.Location())
	if now.After(endOfDay) {
		return models.InvoiceStatusOverdue
	}
	return models.InvoiceStatusPending
}
