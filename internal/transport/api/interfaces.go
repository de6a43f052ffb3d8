package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"iter"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/shopspring/decimal"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type WalletServicer interface {
	Overview(ctx context.Context, userID int64, mode domain.WalletMode) (*service.WalletOverview, error)
	Transactions(ctx context.Context, userID int64, mode domain.WalletMode) ([]domain.Transaction, error)
	Reconcile(ctx context.Context, walletID int64) (*service.Reconciliation, error)
}

type RateServicer interface {
	RecordRate(ctx context.Context, buyRate, sellRate decimal.Decimal) (*domain.GoldRate, error)
	CurrentRate(ctx context.Context) (domain.GoldRate, error)
	History(ctx context.Context, window time.Duration) iter.Seq2[domain.GoldRate, error]
}

type TradeServicer interface {
	Buy(ctx context.Context, args service.BuyArgs) (*service.TradeResult, error)
	Sell(ctx context.Context, args service.SellArgs) (*service.TradeResult, error)
}

type DepositServicer interface {
	Submit(ctx context.Context, args service.DepositArgs) (*domain.BankDeposit, error)
	My(ctx context.Context, userID int64) ([]domain.DepositView, error)
	List(ctx context.Context, args service.ListArgs) ([]domain.DepositView, error)
	Approve(ctx context.Context, depositID, staffID int64) (*domain.BankDeposit, error)
	Reject(ctx context.Context, depositID, staffID int64) (*domain.BankDeposit, error)
}

type WithdrawalServicer interface {
	Request(ctx context.Context, args service.WithdrawalArgs) (*domain.Transaction, error)
	Get(ctx context.Context, userID, txID int64) (*domain.WithdrawalView, error)
	My(ctx context.Context, userID int64) ([]domain.WithdrawalView, error)
	List(ctx context.Context, args service.ListArgs) ([]domain.WithdrawalView, error)
	Approve(ctx context.Context, txID, staffID int64) (*domain.Transaction, error)
	Reject(ctx context.Context, txID, staffID int64) (*domain.Transaction, error)
}

type KYCServicer interface {
	Submit(ctx context.Context, args service.KYCArgs) (*domain.KYC, error)
	Status(ctx context.Context, userID int64) (*domain.KYC, error)
	List(ctx context.Context, args service.ListArgs) ([]domain.KYCView, error)
	Approve(ctx context.Context, userID, staffID int64) (*domain.KYC, error)
	Reject(ctx context.Context, userID, staffID int64) (*domain.KYC, error)
}

type StaffServicer interface {
	PendingCounts(ctx context.Context) (*domain.PendingCounts, error)
}
