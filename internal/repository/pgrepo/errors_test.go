package pgrepo

import (
	"errors"
	"testing"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

type ConvertErrTestSuite struct {
	suite.Suite
}

func TestConvertErrSuite(t *testing.T) {
	suite.Run(t, new(ConvertErrTestSuite))
}

func (s *ConvertErrTestSuite) TestConvertErr() {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: domain.ErrRecordNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: domain.ErrDuplicateKey},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: domain.ErrTransient},
		{name: "serialization", err: &pgconn.PgError{Code: "40001"}, want: domain.ErrTransient},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, want: domain.ErrTransient},
		{name: "check", err: &pgconn.PgError{Code: "23514"}, want: domain.ErrUnknown},
		{name: "numeric overflow", err: &pgconn.PgError{Code: "22003"}, want: domain.ErrValidation},
		{name: "other pg error", err: &pgconn.PgError{Code: "42601"}, want: domain.ErrUnknown},
		{name: "plain error", err: errors.New("boom"), want: domain.ErrUnknown},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			err := convertErr(t.err, "wallet %d", 1)
			s.Require().ErrorIs(err, t.want)
			s.Contains(err.Error(), "[repository/wallet 1]")
		})
	}
	s.NoError(convertErr(nil, "nothing"))
}
