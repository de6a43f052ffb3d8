package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/shopspring/decimal"
)

// WithdrawalService заявки на вывод денег с реального кошелька. Деньги списываются только при одобрении.
type WithdrawalService struct {
	uow        uow.UOW
	txRepo     TransactionRepository
	kycRepo    KYCRepository
	walletRepo WalletRepository
	notifier   recipientNotifier
}

func NewWithdrawalService(u uow.UOW, notifier Notifier) (*WithdrawalService, error) {
	txRepo, err := repoFrom[TransactionRepository](u, repoargs.TransactionRepoName)
	if err != nil {
		return nil, err
	}
	kycRepo, err := repoFrom[KYCRepository](u, repoargs.KYCRepoName)
	if err != nil {
		return nil, err
	}
	walletRepo, err := repoFrom[WalletRepository](u, repoargs.WalletRepoName)
	if err != nil {
		return nil, err
	}
	recipients, err := newRecipientNotifier(u, notifier)
	if err != nil {
		return nil, err
	}
	return &WithdrawalService{
		uow:        u,
		txRepo:     txRepo,
		kycRepo:    kycRepo,
		walletRepo: walletRepo,
		notifier:   recipients,
	}, nil
}

type WithdrawalArgs struct {
	UserID        int64
	Amount        decimal.Decimal
	BankName      string
	AccountName   string
	AccountNumber string
	Branch        string
}

func (a WithdrawalArgs) validate() error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if err := domain.CheckScale(a.Amount, domain.CashPlaces, "amount"); err != nil {
		return err
	}
	for _, v := range []string{a.BankName, a.AccountName, a.AccountNumber, a.Branch} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: all bank details are required", domain.ErrValidation)
		}
	}
	return nil
}

// bankDetails реквизиты в формате "<банк> - <отделение> | <владелец> (<номер счета>)".
func (a WithdrawalArgs) bankDetails() string {
	return fmt.Sprintf("%s - %s | %s (%s)",
		strings.TrimSpace(a.BankName),
		strings.TrimSpace(a.Branch),
		strings.TrimSpace(a.AccountName),
		strings.TrimSpace(a.AccountNumber),
	)
}

// Request создает заявку на вывод в статусе pending.
//
// В одной транзакции блокирует реальный кошелек, проверяет отсутствие другой ожидающей заявки
// (domain.ErrPendingWithdrawalExists) и достаточность текущего баланса (domain.ErrInsufficientFunds).
// Ничего не списывается: баланс повторно проверяется при одобрении.
func (w *WithdrawalService) Request(ctx context.Context, args WithdrawalArgs) (*domain.Transaction, error) {
	if err := args.validate(); err != nil {
		return nil, fmt.Errorf("requesting withdrawal: %w", err)
	}
	if err := requireKYC(ctx, w.kycRepo, args.UserID); err != nil {
		return nil, normalizeErr("requesting withdrawal", err)
	}

	var res *domain.Transaction
	err := runScope(ctx, w.uow, "requesting withdrawal", func(c context.Context, tx uow.TX) error {
		wallet, err := lockWallet(c, tx, args.UserID, domain.WalletModeReal)
		if err != nil {
			return err
		}
		txs, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}

		pending, err := txs.HasPendingWithdrawal(c, wallet.ID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if pending {
			return domain.ErrPendingWithdrawalExists
		}
		if wallet.CashBalance.LessThan(args.Amount) {
			return fmt.Errorf("%w: cash balance %s, requested %s",
				domain.ErrInsufficientFunds, wallet.CashBalance, args.Amount)
		}

		res, err = txs.Create(c, repoargs.CreateTransaction{
			WalletID:    wallet.ID,
			Type:        domain.TransactionTypeWithdraw,
			TotalAmount: args.Amount,
			Status:      domain.StatusPending,
			Remarks:     args.bankDetails(),
		})
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return domain.ErrPendingWithdrawalExists
			}
			return err //nolint:wrapcheck
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	w.notifier.send(ctx, args.UserID, tplWithdrawalReceived, withdrawalNotificationData(res))
	return res, nil
}

// Approve одобряет заявку и списывает сумму с кошелька.
//
// Алгоритм работы:
//  1. Блокирует строку заявки, затем строку кошелька.
//  2. Для заявки не в статусе pending возвращает domain.ErrAlreadyProcessed.
//  3. Если денег на кошельке уже не хватает, возвращает domain.ErrInsufficientFunds. Заявка остается pending.
//  4. Списывает сумму и переводит заявку в approved.
func (w *WithdrawalService) Approve(ctx context.Context, txID, staffID int64) (*domain.Transaction, error) {
	var (
		res    *domain.Transaction
		userID int64
	)
	err := runScope(ctx, w.uow, "approving withdrawal", func(c context.Context, tx uow.TX) error {
		txs, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}
		withdrawal, err := lockPendingWithdrawal(c, txs, txID)
		if err != nil {
			return err
		}

		wallets, err := txRepo[WalletRepository](tx, repoargs.WalletRepoName)
		if err != nil {
			return err
		}
		wallet, err := wallets.LockByID(c, withdrawal.WalletID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		userID = wallet.UserID
		if _, err = wallet.DebitCash(withdrawal.TotalAmount); err != nil {
			return err
		}
		if _, err = wallets.UpdateBalances(c, wallet.ID, wallet.CashBalance, wallet.CommodityBalance); err != nil {
			return err //nolint:wrapcheck
		}

		res, err = txs.UpdateStatus(c, repoargs.UpdateStatus{
			ID:          withdrawal.ID,
			Status:      domain.StatusApproved,
			ProcessedBy: staffID,
		}, withdrawal.Remarks)
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err
	}
	w.notifier.send(ctx, userID, tplWithdrawalApproved, withdrawalNotificationData(res))
	return res, nil
}

// Reject отклоняет заявку. Кошелек не меняется.
func (w *WithdrawalService) Reject(ctx context.Context, txID, staffID int64) (*domain.Transaction, error) {
	var (
		res      *domain.Transaction
		walletID int64
	)
	err := runScope(ctx, w.uow, "rejecting withdrawal", func(c context.Context, tx uow.TX) error {
		txs, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}
		withdrawal, err := lockPendingWithdrawal(c, txs, txID)
		if err != nil {
			return err
		}
		walletID = withdrawal.WalletID
		res, err = txs.UpdateStatus(c, repoargs.UpdateStatus{
			ID:          withdrawal.ID,
			Status:      domain.StatusRejected,
			ProcessedBy: staffID,
		}, withdrawal.Remarks)
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err
	}
	// владелец кошелька нужен только для уведомления, поэтому читается после коммита.
	if wallet, findErr := w.walletRepo.FindByID(context.WithoutCancel(ctx), walletID); findErr == nil {
		w.notifier.send(ctx, wallet.UserID, tplWithdrawalRejected, withdrawalNotificationData(res))
	}
	return res, nil
}

// Get заявка пользователя по id. Чужие заявки возвращаются как domain.ErrRecordNotFound.
func (w *WithdrawalService) Get(ctx context.Context, userID, txID int64) (*domain.WithdrawalView, error) {
	view, err := w.txRepo.FindWithdrawal(ctx, userID, txID)
	if err != nil {
		return nil, normalizeErr("getting withdrawal", err)
	}
	return view, nil
}

func (w *WithdrawalService) My(ctx context.Context, userID int64) ([]domain.WithdrawalView, error) {
	views, err := w.txRepo.ListWithdrawals(ctx, repoargs.ListFilter{UserID: userID})
	if err != nil {
		return nil, normalizeErr("listing user withdrawals", err)
	}
	return views, nil
}

func (w *WithdrawalService) List(ctx context.Context, args ListArgs) ([]domain.WithdrawalView, error) {
	views, err := w.txRepo.ListWithdrawals(ctx, args.filter())
	if err != nil {
		return nil, normalizeErr("listing withdrawals", err)
	}
	return views, nil
}

func lockPendingWithdrawal(ctx context.Context, txs TransactionRepository, id int64) (*domain.Transaction, error) {
	withdrawal, err := txs.LockWithdrawal(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if withdrawal.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: withdrawal %d is %s", domain.ErrAlreadyProcessed, id, withdrawal.Status)
	}
	return withdrawal, nil
}

func withdrawalNotificationData(withdrawal *domain.Transaction) notificationData {
	return notificationData{
		Amount:    withdrawal.TotalAmount,
		Reference: withdrawal.Remarks,
		Date:      withdrawal.CreatedAt,
	}
}
