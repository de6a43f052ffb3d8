package repoargs

import (
	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateWallet struct {
	UserID      int64
	Mode        domain.WalletMode
	CashBalance decimal.Decimal
}

type CreateTransaction struct {
	WalletID        int64
	Type            domain.TransactionType
	CommodityAmount decimal.Decimal
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          domain.StatusType
	Remarks         string
	ProcessedBy     *int64
}

type CreateDeposit struct {
	UserID      int64
	Amount      decimal.Decimal
	ReferenceNo string
	Proof       string
}

type UpdateStatus struct {
	ID          int64
	Status      domain.StatusType
	ProcessedBy int64
}
