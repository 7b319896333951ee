package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerify(t *testing.T) {
	hash, err := Hash("hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, Verify(hash, "hunter2"))
	assert.False(t, Verify(hash, "wrong"))
	assert.False(t, Verify(hash, ""))
}

func TestEmptySecret(t *testing.T) {
	hash, err := Hash("")
	require.NoError(t, err)
	assert.Nil(t, hash)

	// No credential set: anything verifies.
	assert.True(t, Verify(nil, ""))
	assert.True(t, Verify(nil, "anything"))
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := Hash("same")
	require.NoError(t, err)
	h2, err := Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify(h1, "same"))
	assert.True(t, Verify(h2, "same"))
}
