package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const kycColumns = `k.id, k.user_id, k.full_name, k.date_of_birth, k.nic_number, k.address, k.phone, k.status,
	k.submitted_at, k.updated_at`

type KYCRepository struct {
	conn uow.DBTX
}

func NewKYCRepository(conn uow.DBTX) *KYCRepository {
	return &KYCRepository{conn: conn}
}

// Upsert сохраняет анкету пользователя. Повторная подача перезаписывает данные и возвращает статус в pending.
func (r *KYCRepository) Upsert(ctx context.Context, args repoargs.SubmitKYC) (*domain.KYC, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO kyc AS k (user_id, full_name, date_of_birth, nic_number, address, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			date_of_birth = EXCLUDED.date_of_birth,
			nic_number = EXCLUDED.nic_number,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			status = 'pending',
			submitted_at = NOW(),
			updated_at = NOW()
		RETURNING `+kycColumns,
		args.UserID, args.FullName, args.DateOfBirth, args.NICNumber, args.Address, args.Phone,
	)
	kyc, err := scanKYC(row)
	if err != nil {
		return nil, convertErr(err, "submitting kyc for user %d", args.UserID)
	}
	return kyc, nil
}

func (r *KYCRepository) FindByUserID(ctx context.Context, userID int64) (*domain.KYC, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+kycColumns+` FROM kyc k WHERE k.user_id = $1`, userID)
	kyc, err := scanKYC(row)
	if err != nil {
		return nil, convertErr(err, "finding kyc of user %d", userID)
	}
	return kyc, nil
}

func (r *KYCRepository) LockByUserID(ctx context.Context, userID int64) (*domain.KYC, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+kycColumns+` FROM kyc k WHERE k.user_id = $1 FOR UPDATE`, userID)
	kyc, err := scanKYC(row)
	if err != nil {
		return nil, convertErr(err, "locking kyc of user %d", userID)
	}
	return kyc, nil
}

// UpdateStatus меняет статус анкеты. args.ID - id пользователя, владельца анкеты.
func (r *KYCRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateStatus) (*domain.KYC, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE kyc AS k SET status = $2, updated_at = NOW() WHERE k.user_id = $1 RETURNING `+kycColumns,
		args.ID, string(args.Status),
	)
	kyc, err := scanKYC(row)
	if err != nil {
		return nil, convertErr(err, "updating kyc status of user %d", args.ID)
	}
	return kyc, nil
}

// IsApproved сообщает, одобрена ли анкета пользователя. Отсутствие анкеты - это false без ошибки.
func (r *KYCRepository) IsApproved(ctx context.Context, userID int64) (bool, error) {
	var approved bool
	if err := r.conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM kyc WHERE user_id = $1 AND status = $2)`,
		userID, string(domain.StatusApproved),
	).Scan(&approved); err != nil {
		return false, convertErr(err, "checking kyc of user %d", userID)
	}
	return approved, nil
}

func (r *KYCRepository) List(ctx context.Context, filter repoargs.ListFilter) ([]domain.KYCView, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+kycColumns+`, u.username, u.email
		FROM kyc k
			JOIN users u ON u.id = k.user_id
		WHERE ($1::text = '' OR k.status = $1)
			AND ($2::text = '' OR u.username ILIKE '%' || $2 || '%' OR k.full_name ILIKE '%' || $2 || '%')
		ORDER BY k.submitted_at DESC, k.id DESC
		LIMIT NULLIF($3::bigint, 0)`,
		filter.Status, filter.Search, int64(filter.Limit),
	)
	if err != nil {
		return nil, convertErr(err, "listing kyc")
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.KYCView, error) {
		var (
			v      domain.KYCView
			status string
		)
		targets := append(kycScanTargets(&v.KYC, &status), &v.Username, &v.Email)
		if scanErr := row.Scan(targets...); scanErr != nil {
			return v, scanErr //nolint:wrapcheck
		}
		v.Status = domain.StatusType(status)
		return v, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning kyc")
	}
	return views, nil
}

func (r *KYCRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM kyc WHERE status = $1`, string(domain.StatusPending),
	).Scan(&count); err != nil {
		return 0, convertErr(err, "counting pending kyc")
	}
	return count, nil
}

func kycScanTargets(m *domain.KYC, status *string) []any {
	return []any{
		&m.ID,
		&m.UserID,
		&m.FullName,
		&m.DateOfBirth,
		&m.NICNumber,
		&m.Address,
		&m.Phone,
		status,
		&m.SubmittedAt,
		&m.UpdatedAt,
	}
}

func scanKYC(row pgx.Row) (*domain.KYC, error) {
	var (
		m      domain.KYC
		status string
	)
	if err := row.Scan(kycScanTargets(&m, &status)...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	m.Status = domain.StatusType(status)
	return &m, nil
}
