// Package hexutil provides small surface-level validation and encoding
// helpers: hex<->bytes conversion, mnemonic word-count checking, and a
// stricter derivation-path sanity check meant for early CLI feedback rather
// than full parsing (bip32.ParsePath is authoritative).
package hexutil

import (
	"strings"

	"github.com/keytree/hdkeygen/hdkeyerr"
)

// validWordCounts are the only mnemonic lengths BIP39 defines.
var validWordCounts = map[int]bool{12: true, 15: true, 18: true, 21: true, 24: true}

// ValidateWordCount reports whether n is one of {12, 15, 18, 21, 24}.
func ValidateWordCount(n int) error {
	if !validWordCounts[n] {
		return hdkeyerr.New(hdkeyerr.InvalidWordCount, "word count must be one of 12, 15, 18, 21, 24")
	}
	return nil
}

// ValidateDerivationPathFormat is a stricter, surface-level check than
// bip32.ParsePath: it only confirms the path is non-empty and begins with a
// lowercase 'm', meant as early CLI feedback. Use bip32.ParsePath for the
// authoritative parse (it also accepts 'M').
func ValidateDerivationPathFormat(path string) error {
	if path == "" || path[0] != 'm' {
		return hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "path must start with 'm'")
	}
	return nil
}

const hexDigits = "0123456789abcdef"

// BytesToHex renders b as lowercase hex with no prefix, two characters per
// byte.
func BytesToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hexDigits[c>>4]
		out[i*2+1] = hexDigits[c&0x0f]
	}
	return string(out)
}

// HexToBytes parses a hex string, trimming an optional "0x"/"0X" prefix. It
// rejects odd-length input and non-hex digits.
func HexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 != 0 {
		return nil, hdkeyerr.New(hdkeyerr.EncodingError, "hex string must have even length")
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, ok := hexVal(s[i*2])
		if !ok {
			return nil, hdkeyerr.New(hdkeyerr.EncodingError, "invalid hex digit")
		}
		lo, ok := hexVal(s[i*2+1])
		if !ok {
			return nil, hdkeyerr.New(hdkeyerr.EncodingError, "invalid hex digit")
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
