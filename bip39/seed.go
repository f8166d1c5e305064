package bip39

import (
	"strings"

	"github.com/keytree/hdkeygen/primitives"
)

const (
	pbkdf2Iterations = 2048
	seedLen          = 64
)

// MnemonicToSeed stretches a mnemonic phrase and an optional passphrase into
// a 64-byte seed via PBKDF2-HMAC-SHA-512, exactly per BIP39: password is the
// trimmed mnemonic's UTF-8 bytes, salt is "mnemonic" followed by the
// passphrase's UTF-8 bytes, 2048 fixed iterations. This is defined for any
// byte string; the mnemonic need not pass ValidateMnemonic first.
func MnemonicToSeed(mnemonic, passphrase string) [64]byte {
	password := []byte(strings.TrimSpace(mnemonic))
	salt := append([]byte("mnemonic"), []byte(passphrase)...)

	derived := primitives.PBKDF2HMACSHA512(password, salt, pbkdf2Iterations, seedLen)
	var seed [64]byte
	copy(seed[:], derived)
	return seed
}
