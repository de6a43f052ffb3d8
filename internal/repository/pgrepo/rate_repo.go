package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const rateColumns = `id, buy_rate, sell_rate, recorded_at`

type RateRepository struct {
	conn uow.DBTX
}

func NewRateRepository(conn uow.DBTX) *RateRepository {
	return &RateRepository{conn: conn}
}

func (r *RateRepository) Create(ctx context.Context, buyRate, sellRate decimal.Decimal) (*domain.GoldRate, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO gold_rates (buy_rate, sell_rate) VALUES ($1, $2) RETURNING `+rateColumns,
		buyRate, sellRate,
	)
	rate, err := scanRate(row)
	if err != nil {
		return nil, convertErr(err, "recording rate")
	}
	return rate, nil
}

// Latest возвращает последнюю котировку или domain.ErrRecordNotFound, если котировок еще нет.
func (r *RateRepository) Latest(ctx context.Context) (*domain.GoldRate, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+rateColumns+` FROM gold_rates ORDER BY recorded_at DESC, id DESC LIMIT 1`)
	rate, err := scanRate(row)
	if err != nil {
		return nil, convertErr(err, "getting latest rate")
	}
	return rate, nil
}

// Since возвращает котировки начиная с from в хронологическом порядке.
func (r *RateRepository) Since(ctx context.Context, from time.Time) ([]domain.GoldRate, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+rateColumns+` FROM gold_rates WHERE recorded_at >= $1 ORDER BY recorded_at, id`,
		from,
	)
	if err != nil {
		return nil, convertErr(err, "getting rates since %s", from.Format(time.RFC3339))
	}
	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.GoldRate, error) {
		m, scanErr := scanRate(row)
		if scanErr != nil {
			return domain.GoldRate{}, scanErr
		}
		return *m, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning rates")
	}
	return rates, nil
}

func scanRate(row pgx.Row) (*domain.GoldRate, error) {
	var m domain.GoldRate
	if err := row.Scan(&m.ID, &m.BuyRate, &m.SellRate, &m.RecordedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
