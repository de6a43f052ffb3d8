package service

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
)

type StaffService struct {
	depositRepo DepositRepository
	txRepo      TransactionRepository
	kycRepo     KYCRepository
}

func NewStaffService(u uow.UOW) (*StaffService, error) {
	depositRepo, err := repoFrom[DepositRepository](u, repoargs.DepositRepoName)
	if err != nil {
		return nil, err
	}
	txRepo, err := repoFrom[TransactionRepository](u, repoargs.TransactionRepoName)
	if err != nil {
		return nil, err
	}
	kycRepo, err := repoFrom[KYCRepository](u, repoargs.KYCRepoName)
	if err != nil {
		return nil, err
	}
	return &StaffService{depositRepo: depositRepo, txRepo: txRepo, kycRepo: kycRepo}, nil
}

// PendingCounts количество заявок, ожидающих решения персонала.
func (s *StaffService) PendingCounts(ctx context.Context) (*domain.PendingCounts, error) {
	var (
		res domain.PendingCounts
		err error
	)
	if res.Deposits, err = s.depositRepo.CountPending(ctx); err != nil {
		return nil, normalizeErr("pending counts", err)
	}
	if res.Withdrawals, err = s.txRepo.CountPendingWithdrawals(ctx); err != nil {
		return nil, normalizeErr("pending counts", err)
	}
	if res.KYC, err = s.kycRepo.CountPending(ctx); err != nil {
		return nil, normalizeErr("pending counts", err)
	}
	return &res, nil
}
