package psswd

import (
	"strings"
	"testing"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := New(bcrypt.MinCost)

	hash, err := h.HashPassword("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, h.ComparePassword("secret1", hash))
	assert.False(t, h.ComparePassword("secret2", hash))
}

func TestHasher_TooLong(t *testing.T) {
	_, err := New(bcrypt.MinCost).HashPassword(strings.Repeat("a", 73))
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestNew_DefaultCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, New(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, New(bcrypt.MaxCost+1).cost)
}
