package hexutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWordCount(t *testing.T) {
	for _, n := range []int{12, 15, 18, 21, 24} {
		assert.NoError(t, ValidateWordCount(n))
	}
	for _, n := range []int{0, 11, 13, 25, -1} {
		assert.Error(t, ValidateWordCount(n))
	}
}

func TestValidateDerivationPathFormat(t *testing.T) {
	assert.NoError(t, ValidateDerivationPathFormat("m"))
	assert.NoError(t, ValidateDerivationPathFormat("m/44'/0'/0'/0/0"))
	assert.Error(t, ValidateDerivationPathFormat(""))
	assert.Error(t, ValidateDerivationPathFormat("M/44'/0'"))
	assert.Error(t, ValidateDerivationPathFormat("44'/0'"))
}

func TestBytesToHex(t *testing.T) {
	assert.Equal(t, "", BytesToHex(nil))
	assert.Equal(t, "00ff7f", BytesToHex([]byte{0x00, 0xff, 0x7f}))
}

func TestHexToBytesRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xff, 0x7f, 0xa5}
	got, err := HexToBytes(BytesToHex(data))
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestHexToBytesAcceptsPrefix(t *testing.T) {
	got, err := HexToBytes("0x00ff")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff}, got)
}

func TestHexToBytesRejectsOddLength(t *testing.T) {
	_, err := HexToBytes("abc")
	assert.Error(t, err)
}

func TestHexToBytesRejectsBadDigit(t *testing.T) {
	_, err := HexToBytes("zz")
	assert.Error(t, err)
}
