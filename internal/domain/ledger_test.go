package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerTestSuite struct {
	suite.Suite
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (s *LedgerTestSuite) TestBuyQuantity() {
	cases := []struct {
		name    string
		amount  string
		rate    string
		want    string
		wantErr error
	}{
		{name: "truncates instead of rounding", amount: "100.00", rate: "33.33", want: "3.0003"},
		{name: "never rounds up", amount: "2", rate: "3", want: "0.6666"},
		{name: "exact", amount: "25000", rate: "25000", want: "1"},
		{name: "zero amount", amount: "0", rate: "10", wantErr: ErrValidation},
		{name: "negative amount", amount: "-1", rate: "10", wantErr: ErrValidation},
		{name: "no rate", amount: "10", rate: "0", wantErr: ErrRateUnavailable},
		{name: "sub-cent amount", amount: "10.001", rate: "10", wantErr: ErrValidation},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			got, err := BuyQuantity(dec(t.amount), dec(t.rate))
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Truef(dec(t.want).Equal(got), "want %s, got %s", t.want, got)
			// оплаченное золото не может стоить больше внесенной суммы.
			s.True(got.Mul(dec(t.rate)).LessThanOrEqual(dec(t.amount)))
		})
	}
}

func (s *LedgerTestSuite) TestSellTotal() {
	cases := []struct {
		name    string
		grams   string
		rate    string
		want    string
		wantErr error
	}{
		{name: "truncates cents", grams: "1.2345", rate: "21000.99", want: "25925.72"},
		{name: "small amount", grams: "0.0001", rate: "99.99", want: "0.00"},
		{name: "zero grams", grams: "0", rate: "10", wantErr: ErrValidation},
		{name: "no rate", grams: "1", rate: "0", wantErr: ErrRateUnavailable},
		{name: "too precise", grams: "0.00001", rate: "10", wantErr: ErrValidation},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			got, err := SellTotal(dec(t.grams), dec(t.rate))
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Truef(dec(t.want).Equal(got), "want %s, got %s", t.want, got)
		})
	}
}

func (s *LedgerTestSuite) TestWalletDebitCredit() {
	w := Wallet{CashBalance: dec("100.00"), CommodityBalance: dec("1.5000")}

	balance, err := w.DebitCash(dec("40.00"))
	s.Require().NoError(err)
	s.True(dec("60.00").Equal(balance))

	_, err = w.DebitCash(dec("60.01"))
	s.Require().ErrorIs(err, ErrInsufficientFunds)
	// баланс после отказа не меняется.
	s.True(dec("60.00").Equal(w.CashBalance))

	_, err = w.CreditCash(dec("-1"))
	s.Require().ErrorIs(err, ErrValidation)

	balance, err = w.DebitCommodity(dec("1.5"))
	s.Require().NoError(err)
	s.True(balance.IsZero())

	_, err = w.DebitCommodity(dec("0.0001"))
	s.Require().ErrorIs(err, ErrInsufficientFunds)

	balance, err = w.CreditCommodity(dec("0.25"))
	s.Require().NoError(err)
	s.True(dec("0.25").Equal(balance))
}

func (s *LedgerTestSuite) TestCheckScale() {
	cases := []struct {
		name   string
		value  string
		places int32
		ok     bool
	}{
		{name: "cash max", value: "999999999999.99", places: CashPlaces, ok: true},
		{name: "cash overflow", value: "1000000000000.00", places: CashPlaces},
		{name: "cash far overflow", value: "10000000000000.00", places: CashPlaces},
		{name: "negative overflow", value: "-1000000000000", places: CashPlaces},
		{name: "cash precision", value: "0.001", places: CashPlaces},
		{name: "gold max", value: "9999999999.9999", places: CommodityPlaces, ok: true},
		{name: "gold overflow", value: "10000000000", places: CommodityPlaces},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := CheckScale(dec(t.value), t.places, "amount")
			if t.ok {
				s.NoError(err)
				return
			}
			s.Require().ErrorIs(err, ErrValidation)
		})
	}
}

func (s *LedgerTestSuite) TestWalletCredit_Overflow() {
	w := Wallet{CashBalance: dec("999999999000.00"), CommodityBalance: dec("9999999999.0000")}

	_, err := w.CreditCash(dec("1000.00"))
	s.Require().ErrorIs(err, ErrValidation)
	s.True(dec("999999999000.00").Equal(w.CashBalance))

	balance, err := w.CreditCash(dec("999.99"))
	s.Require().NoError(err)
	s.True(dec("999999999999.99").Equal(balance))

	_, err = w.CreditCommodity(dec("1"))
	s.Require().ErrorIs(err, ErrValidation)
	s.True(dec("9999999999.0000").Equal(w.CommodityBalance))
}

func (s *LedgerTestSuite) TestTransactionEffect() {
	txs := []Transaction{
		{Type: TransactionTypeDeposit, TotalAmount: dec("1000"), Status: StatusApproved},
		{Type: TransactionTypeBuy, TotalAmount: dec("100"), CommodityAmount: dec("3.0003"), Status: StatusApproved},
		{Type: TransactionTypeSell, TotalAmount: dec("33.33"), CommodityAmount: dec("1"), Status: StatusApproved},
		{Type: TransactionTypeWithdraw, TotalAmount: dec("500"), Status: StatusApproved},
		{Type: TransactionTypeWithdraw, TotalAmount: dec("400"), Status: StatusPending},
		{Type: TransactionTypeWithdraw, TotalAmount: dec("300"), Status: StatusRejected},
	}
	cash, gold := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		c, g := tx.Effect()
		cash = cash.Add(c)
		gold = gold.Add(g)
	}
	s.True(dec("433.33").Equal(cash), cash.String())
	s.True(dec("2.0003").Equal(gold), gold.String())
}

func (s *LedgerTestSuite) TestParseWalletMode() {
	mode, err := ParseWalletMode("")
	s.Require().NoError(err)
	s.Equal(WalletModeReal, mode)

	mode, err = ParseWalletMode("demo")
	s.Require().NoError(err)
	s.Equal(WalletModeDemo, mode)

	_, err = ParseWalletMode("paper")
	s.Require().ErrorIs(err, ErrValidation)
}
