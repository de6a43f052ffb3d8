package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// Notifier принимает уведомления к отправке. Ошибки доставки вызывающему не возвращаются.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// RateCache кеш текущей котировки. Промах кеша возвращается как domain.ErrRecordNotFound.
type RateCache interface {
	Get(ctx context.Context) (*domain.GoldRate, error)
	Set(ctx context.Context, rate domain.GoldRate) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

type WalletRepository interface {
	Create(ctx context.Context, args repoargs.CreateWallet) (*domain.Wallet, error)
	GetOrCreate(ctx context.Context, userID int64, mode domain.WalletMode) (*domain.Wallet, error)
	FindByUserMode(ctx context.Context, userID int64, mode domain.WalletMode) (*domain.Wallet, error)
	LockByUserMode(ctx context.Context, userID int64, mode domain.WalletMode) (*domain.Wallet, error)
	LockByID(ctx context.Context, id int64) (*domain.Wallet, error)
	FindByID(ctx context.Context, id int64) (*domain.Wallet, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Wallet, error)
	UpdateBalances(ctx context.Context, id int64, cash, commodity decimal.Decimal) (*domain.Wallet, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error)
	LockWithdrawal(ctx context.Context, id int64) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateStatus, remarks string) (*domain.Transaction, error)
	HasPendingWithdrawal(ctx context.Context, walletID int64) (bool, error)
	GetByWalletID(ctx context.Context, walletID int64, limit uint) ([]domain.Transaction, error)
	ListWithdrawals(ctx context.Context, filter repoargs.ListFilter) ([]domain.WithdrawalView, error)
	FindWithdrawal(ctx context.Context, userID int64, id int64) (*domain.WithdrawalView, error)
	CountPendingWithdrawals(ctx context.Context) (int64, error)
}

type DepositRepository interface {
	Create(ctx context.Context, args repoargs.CreateDeposit) (*domain.BankDeposit, error)
	LockByID(ctx context.Context, id int64) (*domain.BankDeposit, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateStatus) (*domain.BankDeposit, error)
	List(ctx context.Context, filter repoargs.ListFilter) ([]domain.DepositView, error)
	CountPending(ctx context.Context) (int64, error)
}

type RateRepository interface {
	Create(ctx context.Context, buyRate, sellRate decimal.Decimal) (*domain.GoldRate, error)
	Latest(ctx context.Context) (*domain.GoldRate, error)
	Since(ctx context.Context, from time.Time) ([]domain.GoldRate, error)
}

type KYCRepository interface {
	Upsert(ctx context.Context, args repoargs.SubmitKYC) (*domain.KYC, error)
	FindByUserID(ctx context.Context, userID int64) (*domain.KYC, error)
	LockByUserID(ctx context.Context, userID int64) (*domain.KYC, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateStatus) (*domain.KYC, error)
	IsApproved(ctx context.Context, userID int64) (bool, error)
	List(ctx context.Context, filter repoargs.ListFilter) ([]domain.KYCView, error)
	CountPending(ctx context.Context) (int64, error)
}
