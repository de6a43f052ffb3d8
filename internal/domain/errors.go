package domain

import (
	"errors"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")
	ErrForbidden         = errors.New("forbidden")

	ErrValidation        = errors.New("validation error")
	ErrRateUnavailable   = errors.New("rate unavailable")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrKYCRequired       = errors.New("kyc approval required")
	ErrAlreadyProcessed  = errors.New("already processed")

	// ErrTransient ошибка блокировки или коммита. Операцию можно безопасно повторить.
	ErrTransient = errors.New("transient store failure")

	ErrPendingWithdrawalExists = errors.New("pending withdrawal exists")
)
