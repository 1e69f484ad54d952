package schedule

import (
	"fmt"
	"time"

	"auction-office/internal/auctionerrors"
	"auction-office/internal/models"
)

// ResolveDueDate computes the due date of the installment at installmentIndex
// (0-based) for the given payment plan.
//
// A lump-sum plan with no configured due date falls back to today's date; the
// generator reports that case through its skip diagnostics so the record can
// be fixed. A day-of-month that exceeds the target month's length rolls into
// the following month through time.Date normalization, which keeps the output
// identical to the legacy schedules.
func ResolveDueDate(plan models.PaymentPlan, installmentIndex int, now time.Time) (time.Time, error) {
	switch plan.Kind {
	case models.PaymentLumpSum:
		if plan.DueDate == nil {
			y, m, d := now.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
		}
		return *plan.DueDate, nil
	case models.PaymentInstallments:
		return installmentDate(plan, installmentIndex)
	case models.PaymentDownPaymentInstallments:
		if installmentIndex == 0 {
			if plan.DownPaymentDueDate == nil {
				return time.Time{}, auctionerrors.ErrPlanIncomplete
			}
			return *plan.DownPaymentDueDate, nil
		}
		return installmentDate(plan, installmentIndex-1)
	default:
		return time.Time{}, auctionerrors.ErrUnknownPaymentKind
	}
}

// installmentDate resolves the idx-th monthly installment from the plan's
// start month and due day.
func installmentDate(plan models.PaymentPlan, idx int) (time.Time, error) {
	if idx < 0 {
		return time.Time{}, auctionerrors.ErrInstallmentOutOfRange
	}
	if plan.StartMonth == "" || plan.DueDayOfMonth < 1 || plan.DueDayOfMonth > 31 {
		return time.Time{}, auctionerrors.ErrPlanIncomplete
	}
	start, err := time.Parse("2006-01", plan.StartMonth)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start month %q: %w", plan.StartMonth, auctionerrors.ErrBadStartMonth)
	}
	return time.Date(start.Year(), start.Month()+time.Month(idx), plan.DueDayOfMonth, 0, 0, 0, 0, time.Local), nil
}
