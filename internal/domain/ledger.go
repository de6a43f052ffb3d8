package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// CashPlaces точность денежного баланса.
	CashPlaces int32 = 2
	// CommodityPlaces точность баланса золота в граммах.
	CommodityPlaces int32 = 4
	// storedPrecision число значащих цифр в колонках сумм и балансов (NUMERIC(14, places)).
	storedPrecision int32 = 14
)

// DemoOpeningBalance стартовый баланс демо-кошелька при регистрации.
var DemoOpeningBalance = decimal.RequireFromString("500000.00")

// CheckScale проверяет, что у d не больше places знаков после запятой и что d помещается
// в колонку NUMERIC(14, places).
func CheckScale(d decimal.Decimal, places int32, field string) error {
	if !d.Equal(d.Truncate(places)) {
		return fmt.Errorf("%w: %s allows at most %d decimal places", ErrValidation, field, places)
	}
	if limit := decimal.New(1, storedPrecision-places); d.Abs().GreaterThanOrEqual(limit) {
		return fmt.Errorf("%w: %s must be less than %s", ErrValidation, field, limit)
	}
	return nil
}

// BuyQuantity количество граммов, которое можно купить на amount по курсу sellRate.
// Округление всегда к нулю, чтобы не начислить больше золота, чем оплачено.
func BuyQuantity(amount, sellRate decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if err := CheckScale(amount, CashPlaces, "amount"); err != nil {
		return decimal.Zero, err
	}
	if !sellRate.IsPositive() {
		return decimal.Zero, ErrRateUnavailable
	}
	// QuoRem дает точное частное, отсеченное на заданном знаке. Div округляет, поэтому не подходит.
	q, _ := amount.QuoRem(sellRate, CommodityPlaces)
	return q, nil
}

// SellTotal сумма к выплате за grams по курсу buyRate, отсеченная до копеек.
func SellTotal(grams, buyRate decimal.Decimal) (decimal.Decimal, error) {
	if !grams.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: gold amount must be greater than zero", ErrValidation)
	}
	if err := CheckScale(grams, CommodityPlaces, "grams"); err != nil {
		return decimal.Zero, err
	}
	if !buyRate.IsPositive() {
		return decimal.Zero, ErrRateUnavailable
	}
	return grams.Mul(buyRate).Truncate(CashPlaces), nil
}

// DebitCash списывает amount с денежного баланса. Кошелек должен быть заблокирован вызывающей стороной.
func (w *Wallet) DebitCash(amount decimal.Decimal) (decimal.Decimal, error) {
	next, err := debit(w.CashBalance, amount, "cash")
	if err != nil {
		return w.CashBalance, err
	}
	w.CashBalance = next
	return next, nil
}

func (w *Wallet) CreditCash(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return w.CashBalance, fmt.Errorf("%w: negative credit", ErrValidation)
	}
	next := w.CashBalance.Add(amount)
	if err := CheckScale(next, CashPlaces, "cash balance"); err != nil {
		return w.CashBalance, err
	}
	w.CashBalance = next
	return next, nil
}

func (w *Wallet) DebitCommodity(amount decimal.Decimal) (decimal.Decimal, error) {
	next, err := debit(w.CommodityBalance, amount, "gold")
	if err != nil {
		return w.CommodityBalance, err
	}
	w.CommodityBalance = next
	return next, nil
}

func (w *Wallet) CreditCommodity(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return w.CommodityBalance, fmt.Errorf("%w: negative credit", ErrValidation)
	}
	next := w.CommodityBalance.Add(amount)
	if err := CheckScale(next, CommodityPlaces, "gold balance"); err != nil {
		return w.CommodityBalance, err
	}
	w.CommodityBalance = next
	return next, nil
}

func debit(balance, amount decimal.Decimal, what string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return balance, fmt.Errorf("%w: negative debit", ErrValidation)
	}
	if balance.LessThan(amount) {
		return balance, fmt.Errorf("%w: %s balance %s, required %s", ErrInsufficientFunds, what, balance, amount)
	}
	return balance.Sub(amount), nil
}

// Effect изменение балансов, которое вносит транзакция. Учитываются только approved транзакции.
func (t Transaction) Effect() (cash, commodity decimal.Decimal) {
	if t.Status != StatusApproved {
		return decimal.Zero, decimal.Zero
	}
	switch t.Type {
	case TransactionTypeBuy:
		return t.TotalAmount.Neg(), t.CommodityAmount
	case TransactionTypeSell:
		return t.TotalAmount, t.CommodityAmount.Neg()
	case TransactionTypeDeposit:
		return t.TotalAmount, decimal.Zero
	case TransactionTypeWithdraw:
		return t.TotalAmount.Neg(), decimal.Zero
	default:
		return decimal.Zero, decimal.Zero
	}
}
