package bip32

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestMasterFromSeedRejectsShortSeed(t *testing.T) {
	_, err := MasterFromSeed(make([]byte, 15))
	assert.Error(t, err)
}

func TestMasterFromSeedRejectsLongSeed(t *testing.T) {
	_, err := MasterFromSeed(make([]byte, 65))
	assert.Error(t, err)
}

func TestMasterFromSeedAcceptsBoundaryLengths(t *testing.T) {
	_, err := MasterFromSeed(make([]byte, 16))
	assert.NoError(t, err)
	_, err = MasterFromSeed(make([]byte, 64))
	assert.NoError(t, err)
}

func TestMasterFromSeedDeterministic(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	a, err := MasterFromSeed(seed)
	require.NoError(t, err)
	b, err := MasterFromSeed(seed)
	require.NoError(t, err)
	assert.Equal(t, a.PrivateKey, b.PrivateKey)
	assert.Equal(t, a.ChainCode, b.ChainCode)
}

func TestChildRejectsDepthOverflow(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	k, err := MasterFromSeed(seed)
	require.NoError(t, err)
	k.Depth = 255
	_, err = k.Child(0)
	assert.Error(t, err)
}

func TestChildSetsParentFingerprintAndDepth(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := MasterFromSeed(seed)
	require.NoError(t, err)

	child, err := master.Child(HardenedOffset + 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), child.Depth)
	assert.Equal(t, HardenedOffset+0, child.ChildIndex)

	parentPub := master.compressedPubKey()
	fp := child.ParentFingerprint
	assert.NotEqual(t, [4]byte{}, fp)
	_ = parentPub
}

func TestHardenedAndNormalDeriveDifferentKeys(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := MasterFromSeed(seed)
	require.NoError(t, err)

	hardened, err := master.Child(HardenedOffset + 0)
	require.NoError(t, err)
	normal, err := master.Child(0)
	require.NoError(t, err)

	assert.NotEqual(t, hardened.PrivateKey, normal.PrivateKey)
}

func TestDerivePathM0h1_2h_2TestVector(t *testing.T) {
	seed := seedFromHex(t, "000102030405060708090a0b0c0d0e0f")
	master, err := MasterFromSeed(seed)
	require.NoError(t, err)

	child, err := DerivePath(master, "m/0'/1/2'/2")
	require.NoError(t, err)

	got := child.ToXPRVString()
	want := "xprvA2JDeKCSNNZky6uBCviVfJSKyQ1mDYahRjijr5idH2WwLsEd4Hsb2Tyh8RfQMuPh7f7RtyzTtdrbdqqsunu5Mm3wDvUAKRHSC34sJ7in334"
	assert.Equal(t, want, got)
}
