package hdkeyerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageFormat(t *testing.T) {
	err := New(InvalidMnemonic, "checksum mismatch")
	assert.Equal(t, "invalid mnemonic: checksum mismatch", err.Error())
}

func TestErrorMessageWithoutMsg(t *testing.T) {
	err := New(InvalidWordCount, "")
	assert.Equal(t, "invalid word count", err.Error())
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := New(InvalidMnemonic, "checksum mismatch")
	assert.True(t, errors.Is(err, ErrInvalidMnemonic))
	assert.False(t, errors.Is(err, ErrInvalidWordCount))
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("underlying failure")
	err := Wrap(KeyGenerationError, "derivation failed", cause)
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, ErrKeyGeneration))
}

func TestKindStringUnknown(t *testing.T) {
	assert.Equal(t, "unknown error", Kind(999).String())
}
