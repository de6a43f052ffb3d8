package domain

// DepositView заявка на пополнение вместе с данными владельца для списков персонала.
type DepositView struct {
	BankDeposit
	Username string
	Email    string
}

// WithdrawalView заявка на вывод (транзакция WITHDRAW) вместе с данными владельца кошелька.
type WithdrawalView struct {
	Transaction
	UserID   int64
	Username string
	Email    string
}

// KYCView анкета KYC вместе с данными пользователя.
type KYCView struct {
	KYC
	Username string
	Email    string
}

// PendingCounts количество заявок, ожидающих решения персонала.
type PendingCounts struct {
	Deposits    int64
	Withdrawals int64
	KYC         int64
}
