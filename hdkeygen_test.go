package hdkeygen

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndMnemonicToXPRV(t *testing.T) {
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	require.NoError(t, ValidateMnemonic(phrase))

	seed := MnemonicToSeed(phrase, "")
	master, err := MasterKeyFromSeed(seed[:])
	require.NoError(t, err)

	child, err := DerivePath(master, "m/44'/0'/0'/0/0")
	require.NoError(t, err)

	xprv := ToXPRVString(child)
	assert.True(t, strings.HasPrefix(xprv, "xprv"))
}

func TestEndToEndBIP32TestVector1(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := MasterKeyFromSeed(seed)
	require.NoError(t, err)

	child, err := DerivePath(master, "m/0'/1/2'/2")
	require.NoError(t, err)

	assert.Equal(t, "xprvA2JDeKCSNNZky6uBCviVfJSKyQ1mDYahRjijr5idH2WwLsEd4Hsb2Tyh8RfQMuPh7f7RtyzTtdrbdqqsunu5Mm3wDvUAKRHSC34sJ7in334", ToXPRVString(child))
}

func TestEndToEndDeriveBIP44Path(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	master, err := MasterKeyFromSeed(seed)
	require.NoError(t, err)

	child, err := DeriveBIP44Path(master, 0, 0, 0, 0)
	require.NoError(t, err)

	viaManual, err := DerivePath(master, "m/44'/0'/0'/0/0")
	require.NoError(t, err)

	assert.Equal(t, viaManual.PrivateKey, child.PrivateKey)
}

func TestGenerateMnemonicProducesValidPhrase(t *testing.T) {
	phrase, err := GenerateMnemonic(24)
	require.NoError(t, err)
	assert.NoError(t, ValidateMnemonic(phrase))
}

func TestValidateMnemonicRejectsChecksumMismatch(t *testing.T) {
	phrase := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	assert.Error(t, ValidateMnemonic(phrase))
}

func TestMasterKeyFromSeedRejectsShortSeed(t *testing.T) {
	_, err := MasterKeyFromSeed(make([]byte, 8))
	assert.Error(t, err)
}
