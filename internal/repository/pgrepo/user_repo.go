package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, created_at, updated_at, username, email, encrypted_password, is_staff`

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// CreateUser создает юзера в базе данных. В случае конфликта юзернейма возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.conn.QueryRow(ctx,
		`INSERT INTO users (username, email, encrypted_password, is_staff)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns,
		user.Username, user.Email, user.Password, user.IsStaff,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return dbUser, nil
}

// FindUserByUsername ищет юзера по его юзернейму. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by username %s", username)
	}
	return dbUser, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m domain.User
	if err := row.Scan(
		&m.ID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Username,
		&m.Email,
		&m.EncryptedPassword,
		&m.IsStaff,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &m, nil
}
