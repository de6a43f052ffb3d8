package app

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-gold/internal/config"
	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

// LedgerIntegrationTestSuite гоняет сервисы на реальной базе. Запускается только при заданной TEST_DATABASE_URI.
type LedgerIntegrationTestSuite struct {
	suite.Suite
	conn     *pgxpool.Pool
	services *service.AppServices
	staffID  int64
}

func TestLedgerIntegrationSuite(t *testing.T) {
	if os.Getenv("TEST_DATABASE_URI") == "" {
		t.Skip("TEST_DATABASE_URI is not set")
	}
	suite.Run(t, new(LedgerIntegrationTestSuite))
}

func (s *LedgerIntegrationTestSuite) SetupSuite() {
	l := logrus.New()
	l.SetOutput(io.Discard)

	conn, err := pgrepo.Connect(s.T().Context(), "../db/migrations", os.Getenv("TEST_DATABASE_URI"), l)
	s.Require().NoError(err)
	s.conn = conn

	unitOfWork, err := initUOW(conn, &config.Config{DBLockTimeout: 5 * time.Second})
	s.Require().NoError(err)

	s.services, err = service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:    []byte("integration"),
		Logger:       l,
		PasswordCost: bcrypt.MinCost,
	})
	s.Require().NoError(err)

	staff, _, err := s.services.UserService.Register(s.T().Context(), service.RegisterUserArgs{
		Username: "staff-" + uuid.NewString()[:8],
		Password: "secret1",
		IsStaff:  true,
	})
	s.Require().NoError(err)
	s.staffID = staff.ID
}

func (s *LedgerIntegrationTestSuite) TearDownSuite() {
	if s.conn != nil {
		s.conn.Close()
	}
}

// fundedUser регистрирует пользователя с одобренным KYC и пополненным на amount реальным кошельком.
func (s *LedgerIntegrationTestSuite) fundedUser(amount string) int64 {
	ctx := s.T().Context()
	user, _, err := s.services.UserService.Register(ctx, service.RegisterUserArgs{
		Username: gofakeit.Username() + "-" + uuid.NewString()[:8],
		Email:    gofakeit.Email(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	})
	s.Require().NoError(err)

	_, err = s.services.KYCService.Submit(ctx, service.KYCArgs{
		UserID:   user.ID,
		FullName: gofakeit.FirstName() + " " + gofakeit.LastName(),
		DateOfBirth: gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)).Format(time.DateOnly),
		NICNumber: gofakeit.Numerify("############"),
		Address:   gofakeit.Street() + ", " + gofakeit.City(),
		Phone:     gofakeit.Numerify("07########"),
	})
	s.Require().NoError(err)
	_, err = s.services.KYCService.Approve(ctx, user.ID, s.staffID)
	s.Require().NoError(err)

	deposit, err := s.services.DepositService.Submit(ctx, service.DepositArgs{
		UserID:      user.ID,
		Amount:      decimal.RequireFromString(amount),
		ReferenceNo: gofakeit.Regex("REF-[A-Z0-9]{8}"),
		Proof:       "slip.jpg",
	})
	s.Require().NoError(err)
	_, err = s.services.DepositService.Approve(ctx, deposit.ID, s.staffID)
	s.Require().NoError(err)
	return user.ID
}

func (s *LedgerIntegrationTestSuite) TestRegister_DemoOpeningBalance() {
	ctx := s.T().Context()
	user, _, err := s.services.UserService.Register(ctx, service.RegisterUserArgs{
		Username: "demo-" + uuid.NewString()[:8],
		Password: "secret1",
	})
	s.Require().NoError(err)

	overview, err := s.services.WalletService.Overview(ctx, user.ID, domain.WalletModeDemo)
	s.Require().NoError(err)
	s.True(overview.Real.CashBalance.IsZero())
	s.True(domain.DemoOpeningBalance.Equal(overview.Demo.CashBalance))

	rec, err := s.services.WalletService.Reconcile(ctx, overview.Demo.ID)
	s.Require().NoError(err)
	s.True(rec.Balanced())
}

func (s *LedgerIntegrationTestSuite) TestDepositApprovedOnce() {
	ctx := s.T().Context()
	userID := s.fundedUser("1000.00")

	deposit, err := s.services.DepositService.Submit(ctx, service.DepositArgs{
		UserID:      userID,
		Amount:      decimal.RequireFromString("250.00"),
		ReferenceNo: "REF-twice",
		Proof:       "slip.jpg",
	})
	s.Require().NoError(err)

	// два сотрудника одобряют одну заявку одновременно: зачисление должно пройти ровно один раз.
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		approved  int
		processed int
	)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, approveErr := s.services.DepositService.Approve(ctx, deposit.ID, s.staffID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case approveErr == nil:
				approved++
			case errors.Is(approveErr, domain.ErrAlreadyProcessed):
				processed++
			}
		}()
	}
	wg.Wait()
	s.Equal(1, approved)
	s.Equal(1, processed)

	overview, err := s.services.WalletService.Overview(ctx, userID, domain.WalletModeReal)
	s.Require().NoError(err)
	s.Equal("1250.00", overview.Real.CashBalance.StringFixed(domain.CashPlaces))
}

func (s *LedgerIntegrationTestSuite) TestConcurrentBuys() {
	ctx := s.T().Context()
	userID := s.fundedUser("1000.00")

	rate, err := s.services.RateService.RecordRate(ctx, decimal.RequireFromString("30.00"),
		decimal.RequireFromString("33.33"))
	s.Require().NoError(err)

	const attempts = 20
	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		succeeded    int
		insufficient int
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, buyErr := s.services.TradeService.Buy(ctx, service.BuyArgs{
				UserID: userID,
				Mode:   domain.WalletModeReal,
				Amount: decimal.RequireFromString("100.00"),
				Rate:   *rate,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case buyErr == nil:
				succeeded++
			case errors.Is(buyErr, domain.ErrInsufficientFunds):
				insufficient++
			default:
				s.Failf("unexpected buy error", "%v", buyErr)
			}
		}()
	}
	wg.Wait()

	s.Equal(10, succeeded)
	s.Equal(attempts-10, insufficient)

	overview, err := s.services.WalletService.Overview(ctx, userID, domain.WalletModeReal)
	s.Require().NoError(err)
	s.True(overview.Real.CashBalance.IsZero())
	s.Equal("30.0030", overview.Real.CommodityBalance.StringFixed(domain.CommodityPlaces))

	rec, err := s.services.WalletService.Reconcile(ctx, overview.Real.ID)
	s.Require().NoError(err)
	s.True(rec.Balanced(), "ledger %s/%s", rec.LedgerCash, rec.LedgerCommodity)
}

func (s *LedgerIntegrationTestSuite) TestWithdrawalLifecycle() {
	ctx := s.T().Context()
	userID := s.fundedUser("500.00")

	args := service.WithdrawalArgs{
		UserID:        userID,
		Amount:        decimal.RequireFromString("200.00"),
		BankName:      "BOC",
		AccountName:   "Nimal",
		AccountNumber: "0011223344",
		Branch:        "Kandy",
	}
	tx, err := s.services.WithdrawalService.Request(ctx, args)
	s.Require().NoError(err)

	_, err = s.services.WithdrawalService.Request(ctx, args)
	s.Require().ErrorIs(err, domain.ErrPendingWithdrawalExists)

	_, err = s.services.WithdrawalService.Approve(ctx, tx.ID, s.staffID)
	s.Require().NoError(err)
	_, err = s.services.WithdrawalService.Reject(ctx, tx.ID, s.staffID)
	s.Require().ErrorIs(err, domain.ErrAlreadyProcessed)

	overview, err := s.services.WalletService.Overview(ctx, userID, domain.WalletModeReal)
	s.Require().NoError(err)
	s.Equal("300.00", overview.Real.CashBalance.StringFixed(domain.CashPlaces))

	rec, err := s.services.WalletService.Reconcile(ctx, overview.Real.ID)
	s.Require().NoError(err)
	s.True(rec.Balanced())
}
