package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Username          string
	Email             string
	EncryptedPassword string
	IsStaff           bool
}

// Wallet кошелек пользователя. На каждого пользователя приходится ровно один кошелек каждого режима.
type Wallet struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	UserID           int64
	Mode             WalletMode
	CashBalance      decimal.Decimal
	CommodityBalance decimal.Decimal
}

// Transaction запись аудита по кошельку. Для BUY/SELL/DEPOSIT создается сразу в статусе approved,
// для WITHDRAW - в статусе pending.
type Transaction struct {
	ID              int64
	CreatedAt       time.Time
	WalletID        int64
	Type            TransactionType
	CommodityAmount decimal.Decimal
	UnitPrice       decimal.Decimal
	TotalAmount     decimal.Decimal
	Status          StatusType
	Remarks         string
	ProcessedBy     *int64
}

type BankDeposit struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      int64
	Amount      decimal.Decimal
	ReferenceNo string
	Proof       string
	Status      StatusType
	ProcessedBy *int64
}

// GoldRate котировка. Нулевое значение используется как признак отсутствия котировок.
type GoldRate struct {
	ID         int64
	BuyRate    decimal.Decimal
	SellRate   decimal.Decimal
	RecordedAt time.Time
}

// Tradable сообщает, можно ли торговать по котировке.
func (r GoldRate) Tradable() bool {
	return r.BuyRate.IsPositive() && r.SellRate.IsPositive()
}

type KYC struct {
	ID          int64
	UserID      int64
	FullName    string
	DateOfBirth time.Time
	NICNumber   string
	Address     string
	Phone       string
	Status      StatusType
	SubmittedAt time.Time
	UpdatedAt   time.Time
}

// Notification письмо пользователю. Доставка не гарантируется.
type Notification struct {
	To      string
	Subject string
	HTML    string
}
