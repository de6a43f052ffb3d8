package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const depositColumns = `d.id, d.created_at, d.updated_at, d.user_id, d.amount, d.reference_no, d.proof,
	d.status, d.processed_by`

type DepositRepository struct {
	conn uow.DBTX
}

func NewDepositRepository(conn uow.DBTX) *DepositRepository {
	return &DepositRepository{conn: conn}
}

func (r *DepositRepository) Create(ctx context.Context, args repoargs.CreateDeposit) (*domain.BankDeposit, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO bank_deposits AS d (user_id, amount, reference_no, proof)
		VALUES ($1, $2, $3, $4)
		RETURNING `+depositColumns,
		args.UserID, args.Amount, args.ReferenceNo, args.Proof,
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "creating deposit for user %d", args.UserID)
	}
	return deposit, nil
}

// LockByID читает заявку на пополнение с блокировкой строки до конца транзакции.
func (r *DepositRepository) LockByID(ctx context.Context, id int64) (*domain.BankDeposit, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+depositColumns+` FROM bank_deposits d WHERE d.id = $1 FOR UPDATE`, id)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "locking deposit %d", id)
	}
	return deposit, nil
}

func (r *DepositRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateStatus) (*domain.BankDeposit, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE bank_deposits AS d SET status = $2, processed_by = $3, updated_at = NOW()
		WHERE d.id = $1
		RETURNING `+depositColumns,
		args.ID, string(args.Status), args.ProcessedBy,
	)
	deposit, err := scanDeposit(row)
	if err != nil {
		return nil, convertErr(err, "updating status of deposit %d", args.ID)
	}
	return deposit, nil
}

// List возвращает заявки на пополнение вместе с владельцем, новые сверху.
func (r *DepositRepository) List(ctx context.Context, filter repoargs.ListFilter) ([]domain.DepositView, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+depositColumns+`, u.username, u.email
		FROM bank_deposits d
			JOIN users u ON u.id = d.user_id
		WHERE ($1::bigint = 0 OR d.user_id = $1)
			AND ($2::text = '' OR d.status = $2)
			AND ($3::text = '' OR u.username ILIKE '%' || $3 || '%')
		ORDER BY d.created_at DESC, d.id DESC
		LIMIT NULLIF($4::bigint, 0)`,
		filter.UserID, filter.Status, filter.Search, int64(filter.Limit),
	)
	if err != nil {
		return nil, convertErr(err, "listing deposits")
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DepositView, error) {
		var (
			v      domain.DepositView
			status string
		)
		targets := append(depositScanTargets(&v.BankDeposit, &status), &v.Username, &v.Email)
		if scanErr := row.Scan(targets...); scanErr != nil {
			return v, scanErr //nolint:wrapcheck
		}
		v.Status = domain.StatusType(status)
		return v, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning deposits")
	}
	return views, nil
}

func (r *DepositRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM bank_deposits WHERE status = $1`, string(domain.StatusPending),
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting pending deposits")
	}
	return count, nil
}

func depositScanTargets(m *domain.BankDeposit, status *string) []any {
	return []any{
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
		&m.Amount,
		&m.ReferenceNo,
		&m.Proof,
		status,
		&m.ProcessedBy,
	}
}

func scanDeposit(row pgx.Row) (*domain.BankDeposit, error) {
	var (
		m      domain.BankDeposit
		status string
	)
	if err := row.Scan(depositScanTargets(&m, &status)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.Status = domain.StatusType(status)
	return &m, nil
}
