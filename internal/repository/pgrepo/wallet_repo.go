package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const walletColumns = `id, created_at, updated_at, user_id, mode, cash_balance, commodity_balance`

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

// Create создает кошелек. Повторный кошелек того же режима у пользователя вернет domain.ErrDuplicateKey.
func (w *WalletRepository) Create(ctx context.Context, args repoargs.CreateWallet) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx,
		`INSERT INTO wallets (user_id, mode, cash_balance) VALUES ($1, $2, $3) RETURNING `+walletColumns,
		args.UserID, string(args.Mode), args.CashBalance,
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "creating %s wallet for user %d", args.Mode, args.UserID)
	}
	return wallet, nil
}

// GetOrCreate возвращает кошелек пользователя указанного режима, создавая пустой при отсутствии.
// Параллельные вызовы не создают дубликатов: конфликт по (user_id, mode) игнорируется.
func (w *WalletRepository) GetOrCreate(
	ctx context.Context,
	userID int64,
	mode domain.WalletMode,
) (*domain.Wallet, error) {
	if _, err := w.conn.Exec(ctx,
		`INSERT INTO wallets (user_id, mode) VALUES ($1, $2) ON CONFLICT (user_id, mode) DO NOTHING`,
		userID, string(mode),
	); err != nil {
		return nil, convertErr(err, "ensuring %s wallet for user %d", mode, userID)
	}
	return w.FindByUserMode(ctx, userID, mode)
}

func (w *WalletRepository) FindByUserMode(
	ctx context.Context,
	userID int64,
	mode domain.WalletMode,
) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 AND mode = $2`,
		userID, string(mode),
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "finding %s wallet for user %d", mode, userID)
	}
	return wallet, nil
}

// LockByUserMode читает кошелек с блокировкой строки до конца транзакции. Вызывать только внутри uow.Do.
func (w *WalletRepository) LockByUserMode(
	ctx context.Context,
	userID int64,
	mode domain.WalletMode,
) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 AND mode = $2 FOR UPDATE`,
		userID, string(mode),
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "locking %s wallet for user %d", mode, userID)
	}
	return wallet, nil
}

// LockByID читает кошелек по id с блокировкой строки до конца транзакции.
func (w *WalletRepository) LockByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = $1 FOR UPDATE`, id)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "locking wallet %d", id)
	}
	return wallet, nil
}

func (w *WalletRepository) FindByID(ctx context.Context, id int64) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id = $1`, id)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "finding wallet %d", id)
	}
	return wallet, nil
}

// GetByUserID возвращает все кошельки пользователя: сначала реальный, затем демо.
func (w *WalletRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Wallet, error) {
	rows, err := w.conn.Query(ctx,
		`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1 ORDER BY mode DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting wallets by userID %d", userID)
	}
	wallets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Wallet, error) {
		m, scanErr := scanWallet(row)
		if scanErr != nil {
			return domain.Wallet{}, scanErr
		}
		return *m, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning wallets of user %d", userID)
	}
	return wallets, nil
}

// UpdateBalances записывает новые балансы кошелька. Строка должна быть заблокирована в текущей транзакции.
func (w *WalletRepository) UpdateBalances(
	ctx context.Context,
	id int64,
	cash, commodity decimal.Decimal,
) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx,
		`UPDATE wallets SET cash_balance = $2, commodity_balance = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING `+walletColumns,
		id, cash, commodity,
	)
	wallet, err := scanWallet(row)
	if err != nil {
		return nil, convertErr(err, "updating balances of wallet %d", id)
	}
	return wallet, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var (
		m    domain.Wallet
		mode string
	)
	if err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
		&mode,
		&m.CashBalance,
		&m.CommodityBalance,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.Mode = domain.WalletMode(mode)
	return &m, nil
}
