package bip32

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToXPRVStringStartsWithXprv(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := MasterFromSeed(seed)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(master.ToXPRVString(), "xprv"))
}

func TestSerializeIs78Bytes(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := MasterFromSeed(seed)
	require.NoError(t, err)
	assert.Len(t, master.serialize(), 78)
}

func TestToXPRVStringDeterministic(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := MasterFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, master.ToXPRVString(), master.ToXPRVString())
}

func TestToXPRVStringMasterKeyTestVector(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := MasterFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi", master.ToXPRVString())
}
