package service

import (
	"fmt"

	"github.com/fsdevblog/groph-gold/internal/service/psswd"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService       *UserService
	WalletService     *WalletService
	TradeService      *TradeService
	DepositService    *DepositService
	WithdrawalService *WithdrawalService
	RateService       *RateService
	KYCService        *KYCService
	StaffService      *StaffService
}

type FactoryArgs struct {
	JWTSecret []byte
	Notifier  Notifier
	RateCache RateCache
	Logger    *logrus.Logger
	// PasswordCost стоимость bcrypt, 0 означает bcrypt.DefaultCost.
	PasswordCost int
}

func Factory(unitOfWork uow.UOW, args FactoryArgs) (*AppServices, error) {
	var (
		res AppServices
		err error
	)

	if res.UserService, err = NewUserService(unitOfWork, args.JWTSecret, psswd.New(args.PasswordCost)); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	if res.WalletService, err = NewWalletService(unitOfWork); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	if res.TradeService, err = NewTradeService(unitOfWork); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	if res.DepositService, err = NewDepositService(unitOfWork, args.Notifier); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	if res.WithdrawalService, err = NewWithdrawalService(unitOfWork, args.Notifier); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	if res.RateService, err = NewRateService(unitOfWork, args.RateCache, args.Logger); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	if res.KYCService, err = NewKYCService(unitOfWork, args.Notifier); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	if res.StaffService, err = NewStaffService(unitOfWork); err != nil {
		return nil, fmt.Errorf("service factory: %s", err.Error())
	}
	return &res, nil
}
