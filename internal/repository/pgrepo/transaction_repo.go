package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const transactionColumns = `t.id, t.created_at, t.wallet_id, t.type, t.commodity_amount, t.unit_price,
	t.total_amount, t.status, t.remarks, t.processed_by`

type TransactionRepository struct {
	conn uow.DBTX
}

func NewTransactionRepository(conn uow.DBTX) *TransactionRepository {
	return &TransactionRepository{conn: conn}
}

// Create добавляет запись в журнал транзакций. Вторая ожидающая заявка на вывод по тому же кошельку
// нарушает уникальный индекс и возвращается как domain.ErrDuplicateKey.
func (r *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO transactions AS t
			(wallet_id, type, commodity_amount, unit_price, total_amount, status, remarks, processed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+transactionColumns,
		args.WalletID,
		string(args.Type),
		args.CommodityAmount,
		args.UnitPrice,
		args.TotalAmount,
		string(args.Status),
		args.Remarks,
		args.ProcessedBy,
	)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating %s transaction for wallet %d", args.Type, args.WalletID)
	}
	return tx, nil
}

// LockWithdrawal читает заявку на вывод с блокировкой строки. Транзакции других типов не находятся.
func (r *TransactionRepository) LockWithdrawal(ctx context.Context, id int64) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions t WHERE t.id = $1 AND t.type = $2 FOR UPDATE`,
		id, string(domain.TransactionTypeWithdraw),
	)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "locking withdrawal %d", id)
	}
	return tx, nil
}

func (r *TransactionRepository) UpdateStatus(
	ctx context.Context,
	args repoargs.UpdateStatus,
	remarks string,
) (*domain.Transaction, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE transactions AS t SET status = $2, processed_by = $3, remarks = $4
		WHERE t.id = $1
		RETURNING `+transactionColumns,
		args.ID, string(args.Status), args.ProcessedBy, remarks,
	)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating status of transaction %d", args.ID)
	}
	return tx, nil
}

func (r *TransactionRepository) HasPendingWithdrawal(ctx context.Context, walletID int64) (bool, error) {
	var exists bool
	err := r.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM transactions WHERE wallet_id = $1 AND type = $2 AND status = $3)`,
		walletID, string(domain.TransactionTypeWithdraw), string(domain.StatusPending),
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking pending withdrawal of wallet %d", walletID)
	}
	return exists, nil
}

// GetByWalletID Возвращает транзакции кошелька, отсортированные по дате создания по убыванию.
// limit == 0 означает "без ограничения".
func (r *TransactionRepository) GetByWalletID(
	ctx context.Context,
	walletID int64,
	limit uint,
) ([]domain.Transaction, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions t
		WHERE t.wallet_id = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT NULLIF($2::bigint, 0)`,
		walletID, int64(limit),
	)
	if err != nil {
		return nil, convertErr(err, "getting transactions by walletID %d", walletID)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		m, scanErr := scanTransaction(row)
		if scanErr != nil {
			return domain.Transaction{}, scanErr
		}
		return *m, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning transactions of wallet %d", walletID)
	}
	return txs, nil
}

// ListWithdrawals возвращает заявки на вывод вместе с владельцем кошелька.
func (r *TransactionRepository) ListWithdrawals(
	ctx context.Context,
	filter repoargs.ListFilter,
) ([]domain.WithdrawalView, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+transactionColumns+`, u.id, u.username, u.email
		FROM transactions t
			JOIN wallets w ON w.id = t.wallet_id
			JOIN users u ON u.id = w.user_id
		WHERE t.type = $1
			AND ($2::bigint = 0 OR u.id = $2)
			AND ($3::text = '' OR t.status = $3)
			AND ($4::text = '' OR u.username ILIKE '%' || $4 || '%')
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT NULLIF($5::bigint, 0)`,
		string(domain.TransactionTypeWithdraw), filter.UserID, filter.Status, filter.Search, int64(filter.Limit),
	)
	if err != nil {
		return nil, convertErr(err, "listing withdrawals")
	}
	views, err := pgx.CollectRows(rows, scanWithdrawalView)
	if err != nil {
		return nil, convertErr(err, "scanning withdrawals")
	}
	return views, nil
}

// FindWithdrawal ищет заявку на вывод пользователя userID. Чужие заявки не находятся.
func (r *TransactionRepository) FindWithdrawal(
	ctx context.Context,
	userID int64,
	id int64,
) (*domain.WithdrawalView, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+transactionColumns+`, u.id, u.username, u.email
		FROM transactions t
			JOIN wallets w ON w.id = t.wallet_id
			JOIN users u ON u.id = w.user_id
		WHERE t.id = $1 AND t.type = $2 AND u.id = $3`,
		id, string(domain.TransactionTypeWithdraw), userID,
	)
	if err != nil {
		return nil, convertErr(err, "finding withdrawal %d", id)
	}
	view, err := pgx.CollectExactlyOneRow(rows, scanWithdrawalView)
	if err != nil {
		return nil, convertErr(err, "finding withdrawal %d", id)
	}
	return &view, nil
}

func (r *TransactionRepository) CountPendingWithdrawals(ctx context.Context) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE type = $1 AND status = $2`,
		string(domain.TransactionTypeWithdraw), string(domain.StatusPending),
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting pending withdrawals")
	}
	return count, nil
}

func transactionScanTargets(m *domain.Transaction, txType, status *string) []any {
	return []any{
		&m.ID,
		&m.CreatedAt,
		&m.WalletID,
		txType,
		&m.CommodityAmount,
		&m.UnitPrice,
		&m.TotalAmount,
		status,
		&m.Remarks,
		&m.ProcessedBy,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		m              domain.Transaction
		txType, status string
	)
	if err := row.Scan(transactionScanTargets(&m, &txType, &status)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.Type = domain.TransactionType(txType)
	m.Status = domain.StatusType(status)
	return &m, nil
}

func scanWithdrawalView(row pgx.CollectableRow) (domain.WithdrawalView, error) {
	var (
		v              domain.WithdrawalView
		txType, status string
	)
	targets := append(transactionScanTargets(&v.Transaction, &txType, &status), &v.UserID, &v.Username, &v.Email)
	if err := row.Scan(targets...); err != nil {
		return v, err //nolint:wrapcheck
	}
	v.Type = domain.TransactionType(txType)
	v.Status = domain.StatusType(status)
	return v, nil
}
