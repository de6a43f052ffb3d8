package domain

import "fmt"

type WalletMode string

const (
	WalletModeReal WalletMode = "real"
	WalletModeDemo WalletMode = "demo"
)

// ParseWalletMode разбирает режим кошелька. Пустая строка трактуется как WalletModeReal.
func ParseWalletMode(s string) (WalletMode, error) {
	switch WalletMode(s) {
	case "", WalletModeReal:
		return WalletModeReal, nil
	case WalletModeDemo:
		return WalletModeDemo, nil
	default:
		return "", fmt.Errorf("%w: unknown wallet mode `%s`", ErrValidation, s)
	}
}

type TransactionType string

const (
	TransactionTypeBuy      TransactionType = "BUY"
	TransactionTypeSell     TransactionType = "SELL"
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

type StatusType string

const (
	StatusPending  StatusType = "pending"
	StatusApproved StatusType = "approved"
	StatusRejected StatusType = "rejected"
)

// ParseStatus разбирает фильтр статуса. Пустая строка означает "без фильтра".
func ParseStatus(s string) (StatusType, error) {
	switch StatusType(s) {
	case "", StatusPending, StatusApproved, StatusRejected:
		return StatusType(s), nil
	default:
		return "", fmt.Errorf("%w: unknown status `%s`", ErrValidation, s)
	}
}
