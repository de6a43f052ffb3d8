package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode      = "23505"
	numericOutOfRangeCode    = "22003"
	serializationFailureCode = "40001"
	deadlockDetectedCode     = "40P01"
	lockNotAvailableCode     = "55P03"
)

// convertErr преобразует ошибку к стандартному виду для слоя репозитория.
// Добавляет форматированное сообщение контекста, тип бизнес-ошибки и оригинальное сообщение.
// Особенности:
//   - Для ошибок отсутствия данных (pgx.ErrNoRows) возвращает ErrRecordNotFound из domain.
//   - Дубликаты ключей (uniqueViolationCode) возвращаются как ErrDuplicateKey из domain.
//   - Выход числа за точность колонки (numericOutOfRangeCode) возвращается как ErrValidation.
//   - Дедлоки, конфликты сериализации и таймауты блокировок возвращаются как ErrTransient.
//   - Все остальные ошибки возвращаются как ErrUnknown с оригинальным сообщением.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	var pgErr *pgconn.PgError
	errType := domain.ErrUnknown

	if errors.As(err, &pgErr) {
		switch {
		case isUniqueViolationErr(pgErr):
			errType = domain.ErrDuplicateKey
		case pgErr.Code == numericOutOfRangeCode:
			errType = domain.ErrValidation
		case isTransientErr(pgErr):
			errType = domain.ErrTransient
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}

func isUniqueViolationErr(err *pgconn.PgError) bool {
	return err.Code == uniqueViolationCode
}

func isTransientErr(err *pgconn.PgError) bool {
	switch err.Code {
	case serializationFailureCode, deadlockDetectedCode, lockNotAvailableCode:
		return true
	default:
		return false
	}
}
