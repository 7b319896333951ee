package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passbook-dev/passbook/internal/account"
	"github.com/passbook-dev/passbook/internal/model"
)

func TestSaveLoad(t *testing.T) {
	s := New()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	a := account.New("ACC1", "Ada", model.TypeSavings, nil)
	require.NoError(t, a.Deposit(decimal.NewFromInt(10)))
	require.NoError(t, s.Save(map[string]*account.Account{"ACC1": a}))

	got, err = s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got["ACC1"].Balance().Equal(decimal.NewFromInt(10)))
}

func TestLoadDoesNotAliasStore(t *testing.T) {
	s := New()
	a := account.New("ACC1", "Ada", model.TypeSavings, nil)
	require.NoError(t, a.Deposit(decimal.NewFromInt(10)))
	require.NoError(t, s.Save(map[string]*account.Account{"ACC1": a}))

	first, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, first["ACC1"].Deposit(decimal.NewFromInt(90)))

	second, err := s.Load()
	require.NoError(t, err)
	assert.True(t, second["ACC1"].Balance().Equal(decimal.NewFromInt(10)),
		"mutating a loaded copy must not leak into the store")
}
