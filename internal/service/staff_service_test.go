package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type StaffServiceTestSuite struct {
	serviceSuite
	service *StaffService
}

func TestStaffServiceSuite(t *testing.T) {
	suite.Run(t, new(StaffServiceTestSuite))
}

func (s *StaffServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewStaffService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *StaffServiceTestSuite) TestPendingCounts() {
	s.deposits.EXPECT().CountPending(gomock.Any()).Return(int64(2), nil)
	s.txs.EXPECT().CountPendingWithdrawals(gomock.Any()).Return(int64(1), nil)
	s.kycs.EXPECT().CountPending(gomock.Any()).Return(int64(0), nil)

	counts, err := s.service.PendingCounts(s.T().Context())
	s.Require().NoError(err)
	s.Equal(domain.PendingCounts{Deposits: 2, Withdrawals: 1}, *counts)
}

func (s *StaffServiceTestSuite) TestNormalizeErr() {
	cases := []struct {
		name      string
		err       error
		transient bool
	}{
		{name: "nil", err: nil},
		{name: "domain error", err: domain.ErrInsufficientFunds},
		{name: "tx failure", err: errors.Join(uow.ErrTxFailed, domain.ErrValidation), transient: true},
		{name: "lock timeout", err: fmt.Errorf("[repository/wallet] %w: 55P03", domain.ErrTransient), transient: true},
		{name: "commit failure", err: fmt.Errorf("%w: commit: %w", uow.ErrTxFailed, errors.New("conn reset")), transient: true},
		{name: "driver error", err: errors.New("conn reset")},
		{name: "numeric overflow", err: fmt.Errorf("[repository/wallet] %w: 22003", domain.ErrValidation)},
		{name: "unknown store error", err: fmt.Errorf("[repository/wallet] %w: 23514", domain.ErrUnknown)},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := normalizeErr("op", t.err)
			if t.err == nil {
				s.NoError(err)
				return
			}
			s.Require().ErrorIs(err, t.err)
			s.Equal(t.transient, errors.Is(err, domain.ErrTransient))
		})
	}
}
