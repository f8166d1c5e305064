// Package hdkeyerr defines the error taxonomy shared by the bip39, bip32 and
// hdkeygen packages. Every failure the core can produce maps to exactly one
// Kind; callers distinguish cases with errors.Is against the Kind sentinels
// below rather than string-matching messages.
package hdkeyerr

import "fmt"

// Kind enumerates the ways a core operation can fail.
type Kind int

const (
	_ Kind = iota
	InvalidWordCount
	InvalidWord
	InvalidMnemonic
	InvalidSeedLength
	InvalidDerivationPath
	KeyGenerationError
	EncodingError
)

func (k Kind) String() string {
	switch k {
	case InvalidWordCount:
		return "invalid word count"
	case InvalidWord:
		return "invalid word"
	case InvalidMnemonic:
		return "invalid mnemonic"
	case InvalidSeedLength:
		return "invalid seed length"
	case InvalidDerivationPath:
		return "invalid derivation path"
	case KeyGenerationError:
		return "key generation error"
	case EncodingError:
		return "encoding error"
	default:
		return "unknown error"
	}
}

// Error is the single error type returned across the core. Kind identifies
// the BIP32/BIP39 error taxonomy entry; Msg carries the detail; Wrapped
// carries an underlying cause when one exists (e.g. a failed entropy read).
type Error struct {
	Kind    Kind
	Msg     string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, hdkeyerr.New(hdkeyerr.InvalidMnemonic, "")) or more
// conveniently use the Err* sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an *Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap constructs an *Error that wraps an underlying cause.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Wrapped: cause}
}

// sentinel values usable with errors.Is(err, hdkeyerr.ErrInvalidMnemonic) etc.
var (
	ErrInvalidWordCount      = New(InvalidWordCount, "")
	ErrInvalidWord           = New(InvalidWord, "")
	ErrInvalidMnemonic       = New(InvalidMnemonic, "")
	ErrInvalidSeedLength     = New(InvalidSeedLength, "")
	ErrInvalidDerivationPath = New(InvalidDerivationPath, "")
	ErrKeyGeneration         = New(KeyGenerationError, "")
	ErrEncoding              = New(EncodingError, "")
)
