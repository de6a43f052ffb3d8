package api

import (
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/shopspring/decimal"
)

// Денежные значения отдаются строками с фиксированной точностью.
func money(d decimal.Decimal) string {
	return d.StringFixed(domain.CashPlaces)
}

func grams(d decimal.Decimal) string {
	return d.StringFixed(domain.CommodityPlaces)
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsStaff   bool      `json:"is_staff"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}

type WalletResponse struct {
	ID               int64  `json:"id"`
	Mode             string `json:"mode"`
	CashBalance      string `json:"cash_balance"`
	CommodityBalance string `json:"commodity_balance"`
}

func newWalletResponse(w domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:               w.ID,
		Mode:             string(w.Mode),
		CashBalance:      money(w.CashBalance),
		CommodityBalance: grams(w.CommodityBalance),
	}
}

type TransactionResponse struct {
	ID              int64     `json:"id"`
	WalletID        int64     `json:"wallet_id"`
	Type            string    `json:"type"`
	CommodityAmount string    `json:"commodity_amount"`
	UnitPrice       string    `json:"unit_price"`
	TotalAmount     string    `json:"total_amount"`
	Status          string    `json:"status"`
	Remarks         string    `json:"remarks,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func newTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              t.ID,
		WalletID:        t.WalletID,
		Type:            string(t.Type),
		CommodityAmount: grams(t.CommodityAmount),
		UnitPrice:       money(t.UnitPrice),
		TotalAmount:     money(t.TotalAmount),
		Status:          string(t.Status),
		Remarks:         t.Remarks,
		CreatedAt:       t.CreatedAt,
	}
}

func newTransactionsResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		res[i] = newTransactionResponse(t)
	}
	return res
}

type RateResponse struct {
	ID         int64     `json:"id"`
	BuyRate    string    `json:"buy_rate"`
	SellRate   string    `json:"sell_rate"`
	RecordedAt time.Time `json:"recorded_at"`
}

func newRateResponse(r domain.GoldRate) RateResponse {
	return RateResponse{
		ID:         r.ID,
		BuyRate:    money(r.BuyRate),
		SellRate:   money(r.SellRate),
		RecordedAt: r.RecordedAt,
	}
}

type DepositResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	Amount      string    `json:"amount"`
	ReferenceNo string    `json:"reference_no"`
	Proof       string    `json:"proof"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func newDepositResponse(d domain.BankDeposit, username string) DepositResponse {
	return DepositResponse{
		ID:          d.ID,
		UserID:      d.UserID,
		Username:    username,
		Amount:      money(d.Amount),
		ReferenceNo: d.ReferenceNo,
		Proof:       d.Proof,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

type WithdrawalResponse struct {
	TransactionResponse
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

func newWithdrawalResponse(v domain.WithdrawalView) WithdrawalResponse {
	return WithdrawalResponse{
		TransactionResponse: newTransactionResponse(v.Transaction),
		UserID:              v.UserID,
		Username:            v.Username,
	}
}

type KYCResponse struct {
	UserID      int64     `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	FullName    string    `json:"full_name"`
	DateOfBirth string    `json:"date_of_birth"`
	NICNumber   string    `json:"nic_number"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func newKYCResponse(k domain.KYC, username string) KYCResponse {
	return KYCResponse{
		UserID:      k.UserID,
		Username:    username,
		FullName:    k.FullName,
		DateOfBirth: k.DateOfBirth.Format(time.DateOnly),
		NICNumber:   k.NICNumber,
		Address:     k.Address,
		Phone:       k.Phone,
		Status:      string(k.Status),
		SubmittedAt: k.SubmittedAt,
	}
}
