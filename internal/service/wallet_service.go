package service

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/shopspring/decimal"
)

const overviewTransactionsLimit uint = 5

type WalletService struct {
	uow        uow.UOW
	walletRepo WalletRepository
	txRepo     TransactionRepository
}

func NewWalletService(u uow.UOW) (*WalletService, error) {
	walletRepo, err := repoFrom[WalletRepository](u, repoargs.WalletRepoName)
	if err != nil {
		return nil, err
	}
	txRepo, err := repoFrom[TransactionRepository](u, repoargs.TransactionRepoName)
	if err != nil {
		return nil, err
	}
	return &WalletService{
		uow:        u,
		walletRepo: walletRepo,
		txRepo:     txRepo,
	}, nil
}

// GetOrCreate возвращает кошелек пользователя указанного режима, создавая пустой при первом обращении.
func (w *WalletService) GetOrCreate(ctx context.Context, userID int64, mode domain.WalletMode) (*domain.Wallet, error) {
	wallet, err := w.walletRepo.GetOrCreate(ctx, userID, mode)
	if err != nil {
		return nil, normalizeErr("get or create wallet", err)
	}
	return wallet, nil
}

type WalletOverview struct {
	Mode             domain.WalletMode
	Real             domain.Wallet
	Demo             domain.Wallet
	RealTransactions []domain.Transaction
	DemoTransactions []domain.Transaction
}

// Selected кошелек выбранного режима.
func (o *WalletOverview) Selected() domain.Wallet {
	if o.Mode == domain.WalletModeDemo {
		return o.Demo
	}
	return o.Real
}

// Overview собирает данные для дашборда: оба кошелька пользователя и последние транзакции по каждому.
func (w *WalletService) Overview(ctx context.Context, userID int64, mode domain.WalletMode) (*WalletOverview, error) {
	realWallet, err := w.GetOrCreate(ctx, userID, domain.WalletModeReal)
	if err != nil {
		return nil, err
	}
	demoWallet, err := w.GetOrCreate(ctx, userID, domain.WalletModeDemo)
	if err != nil {
		return nil, err
	}

	realTxs, err := w.txRepo.GetByWalletID(ctx, realWallet.ID, overviewTransactionsLimit)
	if err != nil {
		return nil, normalizeErr("wallet overview", err)
	}
	demoTxs, err := w.txRepo.GetByWalletID(ctx, demoWallet.ID, overviewTransactionsLimit)
	if err != nil {
		return nil, normalizeErr("wallet overview", err)
	}

	return &WalletOverview{
		Mode:             mode,
		Real:             *realWallet,
		Demo:             *demoWallet,
		RealTransactions: realTxs,
		DemoTransactions: demoTxs,
	}, nil
}

// Transactions возвращает всю историю кошелька, новые сверху.
func (w *WalletService) Transactions(
	ctx context.Context,
	userID int64,
	mode domain.WalletMode,
) ([]domain.Transaction, error) {
	wallet, err := w.GetOrCreate(ctx, userID, mode)
	if err != nil {
		return nil, err
	}
	txs, err := w.txRepo.GetByWalletID(ctx, wallet.ID, 0)
	if err != nil {
		return nil, normalizeErr("wallet transactions", err)
	}
	return txs, nil
}

type Reconciliation struct {
	Wallet          domain.Wallet
	LedgerCash      decimal.Decimal
	LedgerCommodity decimal.Decimal
}

// Balanced сообщает, совпадают ли балансы кошелька с суммой одобренных транзакций.
func (r *Reconciliation) Balanced() bool {
	return r.Wallet.CashBalance.Equal(r.LedgerCash) && r.Wallet.CommodityBalance.Equal(r.LedgerCommodity)
}

// Reconcile пересчитывает балансы кошелька по журналу транзакций. Кошелек блокируется на время пересчета,
// чтобы сравнение шло с согласованным состоянием.
func (w *WalletService) Reconcile(ctx context.Context, walletID int64) (*Reconciliation, error) {
	var res Reconciliation
	err := runScope(ctx, w.uow, "reconcile wallet", func(c context.Context, tx uow.TX) error {
		wallets, err := txRepo[WalletRepository](tx, repoargs.WalletRepoName)
		if err != nil {
			return err
		}
		txs, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
		if err != nil {
			return err
		}

		wallet, err := wallets.LockByID(c, walletID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		history, err := txs.GetByWalletID(c, walletID, 0)
		if err != nil {
			return err //nolint:wrapcheck
		}

		res = Reconciliation{Wallet: *wallet, LedgerCash: decimal.Zero, LedgerCommodity: decimal.Zero}
		for _, t := range history {
			cash, commodity := t.Effect()
			res.LedgerCash = res.LedgerCash.Add(cash)
			res.LedgerCommodity = res.LedgerCommodity.Add(commodity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}
