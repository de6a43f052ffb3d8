package psswd

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Hasher хэширует пароли bcrypt с заданной стоимостью.
type Hasher struct {
	cost int
}

// New создает Hasher. Стоимость вне допустимого диапазона bcrypt заменяется на bcrypt.DefaultCost.
func New(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// HashPassword пароли длиннее 72 байт bcrypt не принимает, для них возвращается domain.ErrValidation.
func (h Hasher) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("hashing password: %w: password is longer than 72 bytes", domain.ErrValidation)
		}
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (h Hasher) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
