package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	WalletRepoName      RepositoryName = "wallet"
	TransactionRepoName RepositoryName = "transaction"
	DepositRepoName     RepositoryName = "bank_deposit"
	RateRepoName        RepositoryName = "gold_rate"
	KYCRepoName         RepositoryName = "kyc"
)

// ListFilter фильтр списков заявок. Нулевые значения полей означают "без фильтра".
type ListFilter struct {
	UserID int64
	Status string
	Search string
	Limit  uint
}
