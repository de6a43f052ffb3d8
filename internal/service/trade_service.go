package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/shopspring/decimal"
)

// TradeService покупка и продажа золота по курсу, переданному вызывающей стороной.
type TradeService struct {
	uow     uow.UOW
	kycRepo KYCRepository
}

func NewTradeService(u uow.UOW) (*TradeService, error) {
	kycRepo, err := repoFrom[KYCRepository](u, repoargs.KYCRepoName)
	if err != nil {
		return nil, err
	}
	return &TradeService{uow: u, kycRepo: kycRepo}, nil
}

type BuyArgs struct {
	UserID int64
	Mode   domain.WalletMode
	Amount decimal.Decimal
	Rate   domain.GoldRate
}

type SellArgs struct {
	UserID int64
	Mode   domain.WalletMode
	Grams  decimal.Decimal
	Rate   domain.GoldRate
}

type TradeResult struct {
	Wallet      domain.Wallet
	Transaction domain.Transaction
}

// Buy покупает золото на сумму args.Amount по курсу продажи args.Rate.SellRate.
//
// Алгоритм работы:
//  1. Проверяет KYC пользователя, до обращения к кошельку.
//  2. Считает количество граммов с отсечением до 4 знаков.
//  3. В одной транзакции блокирует кошелек, списывает деньги, зачисляет золото и пишет транзакцию BUY.
func (t *TradeService) Buy(ctx context.Context, args BuyArgs) (*TradeResult, error) {
	if err := requireKYC(ctx, t.kycRepo, args.UserID); err != nil {
		return nil, normalizeErr("buy", err)
	}
	qty, err := domain.BuyQuantity(args.Amount, args.Rate.SellRate)
	if err != nil {
		return nil, fmt.Errorf("buy: %w", err)
	}

	var res TradeResult
	txErr := runScope(ctx, t.uow, "buy", func(c context.Context, tx uow.TX) error {
		wallet, lockErr := lockWallet(c, tx, args.UserID, args.Mode)
		if lockErr != nil {
			return lockErr
		}
		if _, debitErr := wallet.DebitCash(args.Amount); debitErr != nil {
			return debitErr
		}
		if _, creditErr := wallet.CreditCommodity(qty); creditErr != nil {
			return creditErr
		}
		return t.commit(c, tx, wallet, repoargs.CreateTransaction{
			WalletID:        wallet.ID,
			Type:            domain.TransactionTypeBuy,
			CommodityAmount: qty,
			UnitPrice:       args.Rate.SellRate,
			TotalAmount:     args.Amount,
			Status:          domain.StatusApproved,
		}, &res)
	})
	if txErr != nil {
		return nil, txErr
	}
	return &res, nil
}

// Sell продает args.Grams золота по курсу покупки args.Rate.BuyRate. Выручка отсекается до копеек.
func (t *TradeService) Sell(ctx context.Context, args SellArgs) (*TradeResult, error) {
	if err := requireKYC(ctx, t.kycRepo, args.UserID); err != nil {
		return nil, normalizeErr("sell", err)
	}
	total, err := domain.SellTotal(args.Grams, args.Rate.BuyRate)
	if err != nil {
		return nil, fmt.Errorf("sell: %w", err)
	}

	var res TradeResult
	txErr := runScope(ctx, t.uow, "sell", func(c context.Context, tx uow.TX) error {
		wallet, lockErr := lockWallet(c, tx, args.UserID, args.Mode)
		if lockErr != nil {
			return lockErr
		}
		if _, debitErr := wallet.DebitCommodity(args.Grams); debitErr != nil {
			return debitErr
		}
		if _, creditErr := wallet.CreditCash(total); creditErr != nil {
			return creditErr
		}
		return t.commit(c, tx, wallet, repoargs.CreateTransaction{
			WalletID:        wallet.ID,
			Type:            domain.TransactionTypeSell,
			CommodityAmount: args.Grams,
			UnitPrice:       args.Rate.BuyRate,
			TotalAmount:     total,
			Status:          domain.StatusApproved,
		}, &res)
	})
	if txErr != nil {
		return nil, txErr
	}
	return &res, nil
}

// commit записывает новые балансы заблокированного кошелька и транзакцию сделки.
func (t *TradeService) commit(
	ctx context.Context,
	tx uow.TX,
	wallet *domain.Wallet,
	record repoargs.CreateTransaction,
	res *TradeResult,
) error {
	wallets, err := txRepo[WalletRepository](tx, repoargs.WalletRepoName)
	if err != nil {
		return err
	}
	txs, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
	if err != nil {
		return err
	}

	updated, err := wallets.UpdateBalances(ctx, wallet.ID, wallet.CashBalance, wallet.CommodityBalance)
	if err != nil {
		return err //nolint:wrapcheck
	}
	created, err := txs.Create(ctx, record)
	if err != nil {
		return err //nolint:wrapcheck
	}
	res.Wallet = *updated
	res.Transaction = *created
	return nil
}
