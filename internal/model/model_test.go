package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountTypeValid(t *testing.T) {
	assert.True(t, TypeSavings.Valid())
	assert.True(t, TypeCurrent.Valid())
	assert.False(t, AccountType("checking").Valid())
	assert.False(t, AccountType("").Valid())
}

func TestTxKind(t *testing.T) {
	tests := []struct {
		kind     TxKind
		inbound  bool
		transfer bool
	}{
		{KindDeposit, true, false},
		{KindWithdrawal, false, false},
		{KindTransferIn, true, true},
		{KindTransferOut, false, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.inbound, tt.kind.Inbound(), "%s.Inbound()", tt.kind)
		assert.Equal(t, tt.transfer, tt.kind.Transfer(), "%s.Transfer()", tt.kind)
	}
}
