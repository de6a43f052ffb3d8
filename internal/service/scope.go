package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
)

// runScope выполняет fn в одной транзакции и приводит ошибку к таксономии домена. Сбой начала или коммита
// транзакции возвращается как domain.ErrTransient. Прочие ошибки хранилища повтором не лечатся
// и остаются без признака ErrTransient.
func runScope(ctx context.Context, u uow.UOW, op string, fn func(context.Context, uow.TX) error) error {
	return normalizeErr(op, u.Do(ctx, fn))
}

func normalizeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, uow.ErrTxFailed) && !errors.Is(err, domain.ErrTransient) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrTransient, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func repoFrom[T any](u uow.UOW, name repoargs.RepositoryName) (T, error) {
	return uow.GetRepositoryAs[T](u, uow.RepositoryName(name))
}

func txRepo[T any](tx uow.TX, name repoargs.RepositoryName) (T, error) {
	return uow.GetAs[T](tx, uow.RepositoryName(name))
}

// lockWallet создает кошелек при отсутствии и блокирует его строку до конца транзакции.
func lockWallet(ctx context.Context, tx uow.TX, userID int64, mode domain.WalletMode) (*domain.Wallet, error) {
	mode, err := domain.ParseWalletMode(string(mode))
	if err != nil {
		return nil, err
	}
	wallets, err := txRepo[WalletRepository](tx, repoargs.WalletRepoName)
	if err != nil {
		return nil, err
	}
	if _, err = wallets.GetOrCreate(ctx, userID, mode); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return wallets.LockByUserMode(ctx, userID, mode) //nolint:wrapcheck
}

// requireKYC возвращает domain.ErrKYCRequired, если анкета пользователя не одобрена.
func requireKYC(ctx context.Context, kycRepo KYCRepository, userID int64) error {
	approved, err := kycRepo.IsApproved(ctx, userID)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if !approved {
		return domain.ErrKYCRequired
	}
	return nil
}
