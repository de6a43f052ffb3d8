package service

import (
	"context"
	"testing"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type KYCServiceTestSuite struct {
	serviceSuite
	service *KYCService
	args    KYCArgs
}

func TestKYCServiceSuite(t *testing.T) {
	suite.Run(t, new(KYCServiceTestSuite))
}

func (s *KYCServiceTestSuite) SetupTest() {
	s.serviceSuite.SetupTest()

	var err error
	s.service, err = NewKYCService(s.mockUOW, s.notifier)
	s.Require().NoError(err)

	s.args = KYCArgs{
		UserID:      4,
		FullName:    "Nimal Perera",
		DateOfBirth: "1990-05-17",
		NICNumber:   "901370123V",
		Address:     "12 Galle Rd, Colombo",
		Phone:       "0771234567",
	}
}

func (s *KYCServiceTestSuite) TestSubmit() {
	s.kycs.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.SubmitKYC) (*domain.KYC, error) {
			s.Equal(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), args.DateOfBirth)
			return &domain.KYC{UserID: args.UserID, Status: domain.StatusPending}, nil
		})

	kyc, err := s.service.Submit(s.T().Context(), s.args)
	s.Require().NoError(err)
	s.Equal(domain.StatusPending, kyc.Status)
}

func (s *KYCServiceTestSuite) TestSubmit_Validation() {
	cases := []struct {
		name   string
		modify func(a *KYCArgs)
	}{
		{name: "missing name", modify: func(a *KYCArgs) { a.FullName = "" }},
		{name: "bad date", modify: func(a *KYCArgs) { a.DateOfBirth = "17/05/1990" }},
		{name: "future date", modify: func(a *KYCArgs) { a.DateOfBirth = time.Now().AddDate(1, 0, 0).Format("2006-01-02") }},
		{name: "phone letters", modify: func(a *KYCArgs) { a.Phone = "07712abc" }},
		{name: "phone too long", modify: func(a *KYCArgs) { a.Phone = "07712345678" }},
		{name: "nic too long", modify: func(a *KYCArgs) { a.NICNumber = "1234567890123" }},
	}
	s.kycs.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	for _, t := range cases {
		s.Run(t.name, func() {
			args := s.args
			t.modify(&args)
			_, err := s.service.Submit(s.T().Context(), args)
			s.Require().ErrorIs(err, domain.ErrValidation)
		})
	}
}

func (s *KYCServiceTestSuite) TestApprove() {
	s.kycs.EXPECT().LockByUserID(gomock.Any(), int64(4)).
		Return(&domain.KYC{UserID: 4, Status: domain.StatusPending}, nil)
	s.kycs.EXPECT().
		UpdateStatus(gomock.Any(), repoargs.UpdateStatus{ID: 4, Status: domain.StatusApproved, ProcessedBy: 99}).
		Return(&domain.KYC{UserID: 4, Status: domain.StatusApproved}, nil)
	s.expectUser(domain.User{ID: 4, Username: "nimal", Email: "n@example.com"})
	s.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, n domain.Notification) {
			s.Equal("KYC Approved", n.Subject)
			s.Contains(n.HTML, "nimal")
		})

	kyc, err := s.service.Approve(s.T().Context(), 4, 99)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, kyc.Status)
}

func (s *KYCServiceTestSuite) TestApprove_RecipientLookupFails() {
	s.kycs.EXPECT().LockByUserID(gomock.Any(), int64(4)).
		Return(&domain.KYC{UserID: 4, Status: domain.StatusPending}, nil)
	s.kycs.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
		Return(&domain.KYC{UserID: 4, Status: domain.StatusApproved}, nil)
	s.users.EXPECT().FindByID(gomock.Any(), int64(4)).Return(nil, domain.ErrRecordNotFound)
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	kyc, err := s.service.Approve(s.T().Context(), 4, 99)
	s.Require().NoError(err)
	s.Equal(domain.StatusApproved, kyc.Status)
}

// TestReject_AfterApprove отказ одобренной анкеты допустим, повторный отказ нет.
func (s *KYCServiceTestSuite) TestReject_AfterApprove() {
	s.kycs.EXPECT().LockByUserID(gomock.Any(), int64(4)).
		Return(&domain.KYC{UserID: 4, Status: domain.StatusApproved}, nil)
	s.kycs.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
		Return(&domain.KYC{UserID: 4, Status: domain.StatusRejected}, nil)
	s.expectUser(domain.User{ID: 4, Username: "nimal"})
	s.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	kyc, err := s.service.Reject(s.T().Context(), 4, 99)
	s.Require().NoError(err)
	s.Equal(domain.StatusRejected, kyc.Status)

	s.kycs.EXPECT().LockByUserID(gomock.Any(), int64(4)).
		Return(&domain.KYC{UserID: 4, Status: domain.StatusRejected}, nil)
	_, err = s.service.Reject(s.T().Context(), 4, 99)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)
}

func (s *KYCServiceTestSuite) TestStatus_NotSubmitted() {
	s.kycs.EXPECT().FindByUserID(gomock.Any(), int64(4)).Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.Status(s.T().Context(), 4)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}
