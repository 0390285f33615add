package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprintCard(t *testing.T) {
	key := []byte("ledger-key")

	a, err := FingerprintCard(key, "4242 4242 4242 4242")
	require.NoError(t, err)
	b, err := FingerprintCard(key, "4242424242424242")
	require.NoError(t, err)
	c, err := FingerprintCard([]byte("other-key"), "4242424242424242")
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFingerprintCard_EmptyKey(t *testing.T) {
	for _, key := range [][]byte{nil, {}} {
		fp, err := FingerprintCard(key, "4242424242424242")
		assert.ErrorIs(t, err, ErrEmptyFingerprintKey)
		assert.Empty(t, fp)
	}
}

func TestFingerprintCard_KeyTooLong(t *testing.T) {
	_, err := FingerprintCard(make([]byte, 65), "4242")
	assert.Error(t, err)
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "************4242", MaskCardNumber("4242-4242-4242-4242"))
	assert.Equal(t, "****", MaskCardNumber("1234"))
	assert.Equal(t, "", MaskCardNumber(""))
}
