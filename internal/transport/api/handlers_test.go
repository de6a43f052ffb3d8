package api

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/fsdevblog/groph-gold/internal/service/tokens"
	"github.com/fsdevblog/groph-gold/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-gold/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

const (
	testUserID  int64 = 1
	testStaffID int64 = 99
)

type HandlersTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	router      *gin.Engine
	jwtSecret   []byte
	userToken   string
	staffToken  string
	users       *mocks.MockUserServicer
	wallets     *mocks.MockWalletServicer
	rates       *mocks.MockRateServicer
	trades      *mocks.MockTradeServicer
	deposits    *mocks.MockDepositServicer
	withdrawals *mocks.MockWithdrawalServicer
	kycs        *mocks.MockKYCServicer
	staff       *mocks.MockStaffServicer
}

func TestHandlersSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())

	s.users = mocks.NewMockUserServicer(s.ctrl)
	s.wallets = mocks.NewMockWalletServicer(s.ctrl)
	s.rates = mocks.NewMockRateServicer(s.ctrl)
	s.trades = mocks.NewMockTradeServicer(s.ctrl)
	s.deposits = mocks.NewMockDepositServicer(s.ctrl)
	s.withdrawals = mocks.NewMockWithdrawalServicer(s.ctrl)
	s.kycs = mocks.NewMockKYCServicer(s.ctrl)
	s.staff = mocks.NewMockStaffServicer(s.ctrl)

	s.jwtSecret = []byte("super secret key")
	var err error
	s.userToken, err = tokens.GenerateUserJWT(testUserID, false, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.staffToken, err = tokens.GenerateUserJWT(testStaffID, true, time.Hour, s.jwtSecret)
	s.Require().NoError(err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s.router, err = New(RouterArgs{
		Logger:            logger,
		UserService:       s.users,
		WalletService:     s.wallets,
		RateService:       s.rates,
		TradeService:      s.trades,
		DepositService:    s.deposits,
		WithdrawalService: s.withdrawals,
		KYCService:        s.kycs,
		StaffService:      s.staff,
		JWTSecretKey:      s.jwtSecret,
	})
	s.Require().NoError(err)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlersTestSuite) do(method, url string, body any, token string) *http.Response {
	args := testutils.RequestArgs{Router: s.router, Method: method, URL: RouteGroup + url}
	opts := []func(*testutils.RequestOptions){testutils.WithJSON()}
	if body != nil {
		args.Body = testutils.JSONBody(body)
	}
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}
	return testutils.MakeRequest(args, opts...)
}

func (s *HandlersTestSuite) errorText(resp *http.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	s.Require().NoError(testutils.DecodeJSON(resp, &body))
	return body.Error
}

func (s *HandlersTestSuite) rate() domain.GoldRate {
	return domain.GoldRate{ID: 1, BuyRate: decimal.RequireFromString("30.00"), SellRate: decimal.RequireFromString("33.33")}
}

func (s *HandlersTestSuite) TestAuthRequired() {
	resp := s.do(http.MethodGet, WalletRoute, nil, "")
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(http.MethodGet, WalletRoute, nil, "garbage")
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlersTestSuite) TestStaffRequired() {
	s.staff.EXPECT().PendingCounts(gomock.Any()).Return(&domain.PendingCounts{Deposits: 2, KYC: 1}, nil)

	resp := s.do(http.MethodGet, StaffGroup+StaffNotificationsRoute, nil, s.userToken)
	defer resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp = s.do(http.MethodGet, StaffGroup+StaffNotificationsRoute, nil, s.staffToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var counts PendingCountsResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &counts))
	s.Equal(int64(3), counts.Total)
}

func (s *HandlersTestSuite) TestRegister() {
	s.users.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{Username: "alice", Email: "a@example.com", Password: "secret1"}).
		Return(&domain.User{ID: 5, Username: "alice"}, "token", nil)
	s.users.EXPECT().
		Register(gomock.Any(), service.RegisterUserArgs{Username: "bob", Password: "secret1"}).
		Return(nil, "", domain.ErrDuplicateKey)

	resp := s.do(http.MethodPost, RegisterRoute,
		map[string]string{"username": "alice", "email": "a@example.com", "password": "secret1"}, "")
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("Bearer token", resp.Header.Get("Authorization"))

	resp = s.do(http.MethodPost, RegisterRoute, map[string]string{"username": "bob", "password": "secret1"}, "")
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("user with this username already exists", s.errorText(resp))

	resp = s.do(http.MethodPost, RegisterRoute, map[string]string{"username": "bob", "password": "123"}, "")
	defer resp.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	// авторизованный пользователь повторно зарегистрироваться не может.
	resp = s.do(http.MethodPost, RegisterRoute, map[string]string{"username": "bob", "password": "secret1"}, s.userToken)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlersTestSuite) TestLogin_InvalidCredentials() {
	s.users.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, "", domain.ErrPasswordMissMatch)

	resp := s.do(http.MethodPost, LoginRoute, map[string]string{"username": "alice", "password": "wrong"}, "")
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("invalid credentials", s.errorText(resp))
}

func (s *HandlersTestSuite) TestBuy() {
	s.rates.EXPECT().CurrentRate(gomock.Any()).Return(s.rate(), nil)
	s.trades.EXPECT().
		Buy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args service.BuyArgs) (*service.TradeResult, error) {
			s.Equal(testUserID, args.UserID)
			s.Equal(domain.WalletModeDemo, args.Mode)
			s.True(decimal.RequireFromString("100.00").Equal(args.Amount))
			s.Equal(s.rate(), args.Rate)
			return &service.TradeResult{
				Wallet: domain.Wallet{
					Mode:             domain.WalletModeDemo,
					CashBalance:      decimal.RequireFromString("499900"),
					CommodityBalance: decimal.RequireFromString("3.0003"),
				},
				Transaction: domain.Transaction{ID: 7, Type: domain.TransactionTypeBuy, Status: domain.StatusApproved},
			}, nil
		})

	resp := s.do(http.MethodPost, TradeBuyRoute+"?mode=demo", map[string]string{"amount": "100.00"}, s.userToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var res TradeResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &res))
	s.Equal("499900.00", res.Wallet.CashBalance)
	s.Equal("3.0003", res.Wallet.CommodityBalance)
	s.Equal("BUY", res.Transaction.Type)
}

func (s *HandlersTestSuite) TestTradeErrors() {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "insufficient", err: domain.ErrInsufficientFunds, wantStatus: http.StatusPaymentRequired,
			wantError: "insufficient funds"},
		{name: "kyc", err: domain.ErrKYCRequired, wantStatus: http.StatusForbidden, wantError: "kyc approval required"},
		{name: "no rate", err: domain.ErrRateUnavailable, wantStatus: http.StatusConflict, wantError: "rate unavailable"},
		{name: "validation", err: fmt.Errorf("sell: %w: gold amount must be greater than zero", domain.ErrValidation),
			wantStatus: http.StatusUnprocessableEntity, wantError: "gold amount must be greater than zero"},
		{name: "transient", err: fmt.Errorf("sell: %w: deadlock", domain.ErrTransient),
			wantStatus: http.StatusServiceUnavailable, wantError: "temporarily unavailable, please retry"},
		{name: "unknown store error", err: fmt.Errorf("sell: [repository/wallet] %w: 23514", domain.ErrUnknown),
			wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.rates.EXPECT().CurrentRate(gomock.Any()).Return(s.rate(), nil)
			s.trades.EXPECT().Sell(gomock.Any(), gomock.Any()).Return(nil, t.err)

			resp := s.do(http.MethodPost, TradeSellRoute, map[string]string{"grams": "1"}, s.userToken)
			s.Equal(t.wantStatus, resp.StatusCode)
			if t.wantStatus == http.StatusServiceUnavailable {
				s.Equal("1", resp.Header.Get("Retry-After"))
			} else {
				s.Empty(resp.Header.Get("Retry-After"))
			}
			s.Equal(t.wantError, s.errorText(resp))
		})
	}
}

func (s *HandlersTestSuite) TestTrade_BadMode() {
	resp := s.do(http.MethodPost, TradeBuyRoute+"?mode=paper", map[string]string{"amount": "1"}, s.userToken)
	defer resp.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *HandlersTestSuite) TestWalletModeHeader() {
	s.wallets.EXPECT().
		Transactions(gomock.Any(), testUserID, domain.WalletModeDemo).
		Return([]domain.Transaction{{ID: 1, TotalAmount: decimal.RequireFromString("500000")}}, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + WalletTransactionsRoute,
	}, testutils.WithBearer(s.userToken), testutils.WithHeader(WalletModeHeader, "demo"))
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var txs []TransactionResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &txs))
	s.Require().Len(txs, 1)
	s.Equal("500000.00", txs[0].TotalAmount)
}

func (s *HandlersTestSuite) TestDepositDecision() {
	s.deposits.EXPECT().Approve(gomock.Any(), int64(3), testStaffID).
		Return(&domain.BankDeposit{ID: 3, Status: domain.StatusApproved, Amount: decimal.RequireFromString("5000")}, nil)
	s.deposits.EXPECT().Reject(gomock.Any(), int64(3), testStaffID).
		Return(nil, fmt.Errorf("rejecting deposit: %w: deposit 3 is approved", domain.ErrAlreadyProcessed))

	resp := s.do(http.MethodPost, StaffGroup+"/deposits/3/approve", nil, s.staffToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var deposit DepositResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &deposit))
	s.Equal("approved", deposit.Status)
	s.Equal("5000.00", deposit.Amount)

	resp = s.do(http.MethodPost, StaffGroup+"/deposits/3/reject", nil, s.staffToken)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("already processed", s.errorText(resp))

	resp = s.do(http.MethodPost, StaffGroup+"/deposits/abc/approve", nil, s.staffToken)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlersTestSuite) TestStaffList_Filters() {
	s.withdrawals.EXPECT().
		List(gomock.Any(), service.ListArgs{Status: domain.StatusPending, Search: "ali", Limit: defaultStaffListLimit}).
		Return([]domain.WithdrawalView{{Transaction: domain.Transaction{ID: 4}, Username: "alice"}}, nil)

	resp := s.do(http.MethodGet, StaffGroup+StaffWithdrawalsRoute+"?status=pending&q=ali", nil, s.staffToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var list []WithdrawalResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &list))
	s.Require().Len(list, 1)
	s.Equal("alice", list[0].Username)

	resp = s.do(http.MethodGet, StaffGroup+StaffWithdrawalsRoute+"?status=lost", nil, s.staffToken)
	defer resp.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *HandlersTestSuite) TestWithdrawalCreate() {
	body := map[string]string{
		"amount":         "1000.00",
		"bank_name":      "BOC",
		"account_name":   "Bob",
		"account_number": "0011",
		"branch":         "Kandy",
	}
	s.withdrawals.EXPECT().Request(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPendingWithdrawalExists)

	resp := s.do(http.MethodPost, WithdrawalsRoute, body, s.userToken)
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("pending withdrawal exists", s.errorText(resp))

	body["account_number"] = "00-11"
	resp = s.do(http.MethodPost, WithdrawalsRoute, body, s.userToken)
	defer resp.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)
}

func (s *HandlersTestSuite) TestWithdrawalShow_Foreign() {
	s.withdrawals.EXPECT().Get(gomock.Any(), testUserID, int64(8)).Return(nil, domain.ErrRecordNotFound)

	resp := s.do(http.MethodGet, "/withdrawals/8", nil, s.userToken)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlersTestSuite) TestRates() {
	history := func(yield func(domain.GoldRate, error) bool) {
		for _, id := range []int64{1, 2} {
			if !yield(domain.GoldRate{ID: id, BuyRate: decimal.NewFromInt(30), SellRate: decimal.NewFromInt(31)}, nil) {
				return
			}
		}
	}
	s.rates.EXPECT().History(gomock.Any(), 7*24*time.Hour).Return(iter.Seq2[domain.GoldRate, error](history))
	s.rates.EXPECT().CurrentRate(gomock.Any()).Return(domain.GoldRate{}, nil)

	resp := s.do(http.MethodGet, RatesHistoryRoute+"?days=7", nil, "")
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var list []RateResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &list))
	s.Len(list, 2)
	s.Equal("31.00", list[1].SellRate)

	resp = s.do(http.MethodGet, RatesHistoryRoute+"?days=0", nil, "")
	defer resp.Body.Close()
	s.Equal(http.StatusUnprocessableEntity, resp.StatusCode)

	resp = s.do(http.MethodGet, RatesCurrentRoute, nil, "")
	defer resp.Body.Close()
	s.Equal(http.StatusNoContent, resp.StatusCode)
}

func (s *HandlersTestSuite) TestRecordRate_StaffOnly() {
	s.rates.EXPECT().
		RecordRate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, buy, sell decimal.Decimal) (*domain.GoldRate, error) {
			return &domain.GoldRate{ID: 2, BuyRate: buy, SellRate: sell}, nil
		})

	body := map[string]string{"buy_rate": "30.50", "sell_rate": "31.25"}
	resp := s.do(http.MethodPost, StaffGroup+StaffRatesRoute, body, s.userToken)
	defer resp.Body.Close()
	s.Equal(http.StatusForbidden, resp.StatusCode)

	resp = s.do(http.MethodPost, StaffGroup+StaffRatesRoute, body, s.staffToken)
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var rate RateResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &rate))
	s.Equal("30.50", rate.BuyRate)
}

func (s *HandlersTestSuite) TestKYC() {
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	s.kycs.EXPECT().
		Submit(gomock.Any(), service.KYCArgs{
			UserID:      testUserID,
			FullName:    "Nimal Perera",
			DateOfBirth: "1990-04-12",
			NICNumber:   "199010312345",
			Address:     "12 Temple Rd, Kandy",
			Phone:       "0771234567",
		}).
		Return(&domain.KYC{UserID: testUserID, DateOfBirth: dob, Status: domain.StatusPending}, nil)
	s.kycs.EXPECT().Approve(gomock.Any(), testUserID, testStaffID).
		Return(&domain.KYC{UserID: testUserID, DateOfBirth: dob, Status: domain.StatusApproved}, nil)
	s.kycs.EXPECT().Status(gomock.Any(), testStaffID).Return(nil, domain.ErrRecordNotFound)

	resp := s.do(http.MethodPost, KYCRoute, map[string]string{
		"full_name":     "Nimal Perera",
		"date_of_birth": "1990-04-12",
		"nic_number":    "199010312345",
		"address":       "12 Temple Rd, Kandy",
		"phone":         "0771234567",
	}, s.userToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	var kyc KYCResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &kyc))
	s.Equal("pending", kyc.Status)
	s.Equal("1990-04-12", kyc.DateOfBirth)

	resp = s.do(http.MethodPost, StaffGroup+"/kyc/1/approve", nil, s.staffToken)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NoError(testutils.DecodeJSON(resp, &kyc))
	s.Equal("approved", kyc.Status)

	resp = s.do(http.MethodGet, KYCRoute, nil, s.staffToken)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}
