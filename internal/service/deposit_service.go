package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/shopspring/decimal"
)

// DepositService заявки на пополнение реального кошелька банковским переводом.
type DepositService struct {
	uow         uow.UOW
	depositRepo DepositRepository
	notifier    recipientNotifier
}

func NewDepositService(u uow.UOW, notifier Notifier) (*DepositService, error) {
	depositRepo, err := repoFrom[DepositRepository](u, repoargs.DepositRepoName)
	if err != nil {
		return nil, err
	}
	recipients, err := newRecipientNotifier(u, notifier)
	if err != nil {
		return nil, err
	}
	return &DepositService{uow: u, depositRepo: depositRepo, notifier: recipients}, nil
}

type DepositArgs struct {
	UserID      int64
	Amount      decimal.Decimal
	ReferenceNo string
	Proof       string
}

func (a DepositArgs) validate() error {
	if !a.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", domain.ErrValidation)
	}
	if err := domain.CheckScale(a.Amount, domain.CashPlaces, "amount"); err != nil {
		return err
	}
	if strings.TrimSpace(a.ReferenceNo) == "" || strings.TrimSpace(a.Proof) == "" {
		return fmt.Errorf("%w: reference number and proof are required", domain.ErrValidation)
	}
	return nil
}

// Submit создает заявку в статусе pending. Кошелек не меняется до одобрения.
func (d *DepositService) Submit(ctx context.Context, args DepositArgs) (*domain.BankDeposit, error) {
	if err := args.validate(); err != nil {
		return nil, fmt.Errorf("submitting deposit: %w", err)
	}
	deposit, err := d.depositRepo.Create(ctx, repoargs.CreateDeposit{
		UserID:      args.UserID,
		Amount:      args.Amount,
		ReferenceNo: strings.TrimSpace(args.ReferenceNo),
		Proof:       strings.TrimSpace(args.Proof),
	})
	if err != nil {
		return nil, normalizeErr("submitting deposit", err)
	}
	return deposit, nil
}

// Approve одобряет заявку и зачисляет сумму на реальный кошелек владельца.
//
// Алгоритм работы:
//  1. Блокирует строку заявки, затем строку кошелька. Порядок блокировок постоянный.
//  2. Для заявки не в статусе pending возвращает domain.ErrAlreadyProcessed, ничего не меняя.
//  3. Зачисляет сумму, пишет транзакцию DEPOSIT и переводит заявку в approved.
//  4. Уведомление уходит только после коммита.
func (d *DepositService) Approve(ctx context.Context, depositID, staffID int64) (*domain.BankDeposit, error) {
	var res *domain.BankDeposit
	err := runScope(ctx, d.uow, "approving deposit", func(c context.Context, tx uow.TX) error {
		deposits, err := txRepo[DepositRepository](tx, repoargs.DepositRepoName)
		if err != nil {
			return err
		}
		deposit, err := lockPendingDeposit(c, deposits, depositID)
		if err != nil {
			return err
		}

		wallet, err := lockWallet(c, tx, deposit.UserID, domain.WalletModeReal)
		if err != nil {
			return err
		}
		if _, err = wallet.CreditCash(deposit.Amount); err != nil {
			return err
		}

		wallets, err := txRepo[WalletRepository](tx, repoargs.WalletRepoName)
		if err != nil {
			return err
		}
		if _, err = wallets.UpdateBalances(c, wallet.ID, wallet.CashBalance, wallet.CommodityBalance); err != nil {
			return err //nolint:wrapcheck
		}

		txs, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}
		if _, err = txs.Create(c, repoargs.CreateTransaction{
			WalletID:    wallet.ID,
			Type:        domain.TransactionTypeDeposit,
			TotalAmount: deposit.Amount,
			Status:      domain.StatusApproved,
			Remarks:     "Bank deposit ref: " + deposit.ReferenceNo,
			ProcessedBy: &staffID,
		}); err != nil {
			return err //nolint:wrapcheck
		}

		res, err = deposits.UpdateStatus(c, repoargs.UpdateStatus{
			ID:          deposit.ID,
			Status:      domain.StatusApproved,
			ProcessedBy: staffID,
		})
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err
	}
	d.notify(ctx, res, tplDepositApproved)
	return res, nil
}

// Reject отклоняет заявку. Кошелек не меняется.
func (d *DepositService) Reject(ctx context.Context, depositID, staffID int64) (*domain.BankDeposit, error) {
	var res *domain.BankDeposit
	err := runScope(ctx, d.uow, "rejecting deposit", func(c context.Context, tx uow.TX) error {
		deposits, err := txRepo[DepositRepository](tx, repoargs.DepositRepoName)
		if err != nil {
			return err
		}
		deposit, err := lockPendingDeposit(c, deposits, depositID)
		if err != nil {
			return err
		}
		res, err = deposits.UpdateStatus(c, repoargs.UpdateStatus{
			ID:          deposit.ID,
			Status:      domain.StatusRejected,
			ProcessedBy: staffID,
		})
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err
	}
	d.notify(ctx, res, tplDepositRejected)
	return res, nil
}

// My заявки пользователя, новые сверху.
func (d *DepositService) My(ctx context.Context, userID int64) ([]domain.DepositView, error) {
	deposits, err := d.depositRepo.List(ctx, repoargs.ListFilter{UserID: userID})
	if err != nil {
		return nil, normalizeErr("listing user deposits", err)
	}
	return deposits, nil
}

type ListArgs struct {
	Status domain.StatusType
	Search string
	Limit  uint
}

func (a ListArgs) filter() repoargs.ListFilter {
	return repoargs.ListFilter{
		Status: string(a.Status),
		Search: strings.TrimSpace(a.Search),
		Limit:  a.Limit,
	}
}

// List заявки всех пользователей для персонала.
func (d *DepositService) List(ctx context.Context, args ListArgs) ([]domain.DepositView, error) {
	deposits, err := d.depositRepo.List(ctx, args.filter())
	if err != nil {
		return nil, normalizeErr("listing deposits", err)
	}
	return deposits, nil
}

func lockPendingDeposit(ctx context.Context, deposits DepositRepository, id int64) (*domain.BankDeposit, error) {
	deposit, err := deposits.LockByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	if deposit.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: deposit %d is %s", domain.ErrAlreadyProcessed, id, deposit.Status)
	}
	return deposit, nil
}

func (d *DepositService) notify(ctx context.Context, deposit *domain.BankDeposit, tpl string) {
	d.notifier.send(ctx, deposit.UserID, tpl, notificationData{
		Amount:    deposit.Amount,
		Reference: deposit.ReferenceNo,
		Date:      deposit.CreatedAt,
	})
}
