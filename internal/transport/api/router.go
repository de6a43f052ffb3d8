package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-gold/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 5 * time.Second
)

const (
	RouteGroup              = "/api"
	RegisterRoute           = "/user/register"
	LoginRoute              = "/user/login"
	RatesCurrentRoute       = "/rates/current"
	RatesHistoryRoute       = "/rates/history"
	WalletRoute             = "/wallet"
	WalletTransactionsRoute = "/wallet/transactions"
	TradeBuyRoute           = "/trade/buy"
	TradeSellRoute          = "/trade/sell"
	DepositsRoute           = "/deposits"
	WithdrawalsRoute        = "/withdrawals"
	WithdrawalRoute         = "/withdrawals/:id"
	KYCRoute                = "/kyc"

	StaffGroup                  = "/staff"
	StaffRatesRoute             = "/rates"
	StaffDepositsRoute          = "/deposits"
	StaffDepositApproveRoute    = "/deposits/:id/approve"
	StaffDepositRejectRoute     = "/deposits/:id/reject"
	StaffWithdrawalsRoute       = "/withdrawals"
	StaffWithdrawalApproveRoute = "/withdrawals/:id/approve"
	StaffWithdrawalRejectRoute  = "/withdrawals/:id/reject"
	StaffKYCRoute               = "/kyc"
	StaffKYCApproveRoute        = "/kyc/:userID/approve"
	StaffKYCRejectRoute         = "/kyc/:userID/reject"
	StaffNotificationsRoute     = "/notifications"
	StaffReconcileRoute         = "/wallets/:id/reconcile"
)

type RouterArgs struct {
	Logger            *logrus.Logger
	UserService       UserServicer
	WalletService     WalletServicer
	RateService       RateServicer
	TradeService      TradeServicer
	DepositService    DepositServicer
	WithdrawalService WithdrawalServicer
	KYCService        KYCServicer
	StaffService      StaffServicer
	JWTSecretKey      []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	rateHandler := NewRateHandler(args.RateService)
	walletHandler := NewWalletHandler(args.WalletService, args.RateService)
	tradeHandler := NewTradeHandler(args.TradeService, args.RateService)
	depositHandler := NewDepositHandler(args.DepositService)
	withdrawalHandler := NewWithdrawalHandler(args.WithdrawalService)
	kycHandler := NewKYCHandler(args.KYCService)
	staffHandler := NewStaffHandler(args.StaffService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)
	api.GET(RatesCurrentRoute, rateHandler.Current)
	api.GET(RatesHistoryRoute, rateHandler.History)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(WalletRoute, walletHandler.Index)
	api.GET(WalletTransactionsRoute, walletHandler.Transactions)

	api.POST(TradeBuyRoute, tradeHandler.Buy)
	api.POST(TradeSellRoute, tradeHandler.Sell)

	api.POST(DepositsRoute, depositHandler.Create)
	api.GET(DepositsRoute, depositHandler.Index)

	api.POST(WithdrawalsRoute, withdrawalHandler.Create)
	api.GET(WithdrawalsRoute, withdrawalHandler.Index)
	api.GET(WithdrawalRoute, withdrawalHandler.Show)

	api.POST(KYCRoute, kycHandler.Submit)
	api.GET(KYCRoute, kycHandler.Show)

	staff := api.Group(StaffGroup, middlewares.StaffRequired())
	staff.POST(StaffRatesRoute, rateHandler.Record)

	staff.GET(StaffDepositsRoute, depositHandler.StaffIndex)
	staff.POST(StaffDepositApproveRoute, depositHandler.Approve)
	staff.POST(StaffDepositRejectRoute, depositHandler.Reject)

	staff.GET(StaffWithdrawalsRoute, withdrawalHandler.StaffIndex)
	staff.POST(StaffWithdrawalApproveRoute, withdrawalHandler.Approve)
	staff.POST(StaffWithdrawalRejectRoute, withdrawalHandler.Reject)

	staff.GET(StaffKYCRoute, kycHandler.StaffIndex)
	staff.POST(StaffKYCApproveRoute, kycHandler.Approve)
	staff.POST(StaffKYCRejectRoute, kycHandler.Reject)

	staff.GET(StaffNotificationsRoute, staffHandler.Notifications)
	staff.GET(StaffReconcileRoute, walletHandler.Reconcile)
	return r, nil
}
