package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrLotNotFound     = errors.New("lot not found")
	ErrBidderNotFound  = errors.New("bidder not found")
	ErrDuplicateLot    = errors.New("lot number already used in auction")
)

// business logic errors
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrAlreadySettled    = errors.New("payment plan already settled")
	ErrLegacySnapshotBad = errors.New("legacy snapshot malformed")
)

// schedule engine errors: a plan with these problems is ungenerable and the
// bidder is skipped rather than failing the whole schedule
var (
	ErrPlanMissing           = errors.New("payment plan missing")
	ErrPlanIncomplete        = errors.New("payment plan configuration incomplete")
	ErrBadStartMonth         = errors.New("start month not in YYYY-MM form")
	ErrBadInstallmentCount   = errors.New("installment count must be positive")
	ErrUnknownPaymentKind    = errors.New("unknown payment plan kind")
	ErrInstallmentOutOfRange = errors.New("installment index out of range")
)
