package bip44path

import (
	"testing"

	"github.com/keytree/hdkeygen/bip32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFormat(t *testing.T) {
	assert.Equal(t, "m/44'/0'/0'/0/0", Path(0, 0, 0, 0))
	assert.Equal(t, "m/44'/60'/1'/1/5", Path(60, 1, 1, 5))
}

func TestDeriveMatchesManualPath(t *testing.T) {
	seed := []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	master, err := bip32.MasterFromSeed(seed)
	require.NoError(t, err)

	viaHelper, err := Derive(master, 0, 0, 0, 0)
	require.NoError(t, err)

	viaManual, err := bip32.DerivePath(master, Path(0, 0, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, viaManual.PrivateKey, viaHelper.PrivateKey)
}
