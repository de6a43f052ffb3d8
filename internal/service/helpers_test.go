package service

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/internal/service/mocks"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-gold/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// serviceSuite общая обвязка тестов сервисов: uow с транзакцией, отдающей моки репозиториев.
type serviceSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockUOW  *uowmocks.MockUOW
	mockTX   *uowmocks.MockTX
	users    *mocks.MockUserRepository
	wallets  *mocks.MockWalletRepository
	txs      *mocks.MockTransactionRepository
	deposits *mocks.MockDepositRepository
	rates    *mocks.MockRateRepository
	kycs     *mocks.MockKYCRepository
	notifier *mocks.MockNotifier
}

func (s *serviceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.ctrl)
	s.mockTX = uowmocks.NewMockTX(s.ctrl)
	s.users = mocks.NewMockUserRepository(s.ctrl)
	s.wallets = mocks.NewMockWalletRepository(s.ctrl)
	s.txs = mocks.NewMockTransactionRepository(s.ctrl)
	s.deposits = mocks.NewMockDepositRepository(s.ctrl)
	s.rates = mocks.NewMockRateRepository(s.ctrl)
	s.kycs = mocks.NewMockKYCRepository(s.ctrl)
	s.notifier = mocks.NewMockNotifier(s.ctrl)

	repos := map[repoargs.RepositoryName]uow.Repository{
		repoargs.UserRepoName:        s.users,
		repoargs.WalletRepoName:      s.wallets,
		repoargs.TransactionRepoName: s.txs,
		repoargs.DepositRepoName:     s.deposits,
		repoargs.RateRepoName:        s.rates,
		repoargs.KYCRepoName:         s.kycs,
	}
	for name, repo := range repos {
		// репозитории вне транзакции, запрашиваются при инициализации сервисов.
		s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
		// те же моки внутри транзакции.
		s.mockTX.EXPECT().Get(uow.RepositoryName(name)).Return(repo, nil).AnyTimes()
	}

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()
}

func (s *serviceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// expectKYC настраивает ответ проверки KYC для пользователя.
func (s *serviceSuite) expectKYC(userID int64, approved bool) {
	s.kycs.EXPECT().IsApproved(gomock.Any(), userID).Return(approved, nil)
}

// expectWalletLock настраивает ленивое создание и блокировку кошелька.
func (s *serviceSuite) expectWalletLock(wallet domain.Wallet) {
	s.wallets.EXPECT().GetOrCreate(gomock.Any(), wallet.UserID, wallet.Mode).Return(&wallet, nil)
	s.wallets.EXPECT().LockByUserMode(gomock.Any(), wallet.UserID, wallet.Mode).Return(&wallet, nil)
}

func (s *serviceSuite) expectUser(user domain.User) {
	s.users.EXPECT().FindByID(gomock.Any(), user.ID).Return(&user, nil)
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

type decimalMatcher struct {
	want decimal.Decimal
}

// decEq сравнивает decimal по значению, без учета экспоненты.
func decEq(v string) gomock.Matcher {
	return decimalMatcher{want: dec(v)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "decimal equal to " + m.want.String()
}
