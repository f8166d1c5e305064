// Package hdkeygen is the library surface: the top-level entry points
// composed from the bip39 and bip32 packages. Everything here is a thin,
// pure wrapper. The hard engineering lives in bip39 (entropy<->mnemonic,
// seed stretching) and bip32 (the extended-key tree and Base58Check
// serialization).
package hdkeygen

import (
	"io"

	"github.com/keytree/hdkeygen/bip32"
	"github.com/keytree/hdkeygen/bip39"
	"github.com/keytree/hdkeygen/bip44path"
)

// ExtendedKey re-exports bip32.ExtendedKey so callers need only import this
// package for the common path.
type ExtendedKey = bip32.ExtendedKey

// GenerateMnemonic draws fresh CSPRNG entropy for the requested word count
// (one of 12, 15, 18, 21, 24) and returns the resulting mnemonic phrase.
func GenerateMnemonic(wordCount int) (string, error) {
	return bip39.GenerateMnemonic(wordCount, nil)
}

// GenerateMnemonicFrom is GenerateMnemonic with an injectable entropy
// source, for deterministic tests.
func GenerateMnemonicFrom(wordCount int, rng io.Reader) (string, error) {
	return bip39.GenerateMnemonic(wordCount, rng)
}

// ValidateMnemonic reports whether phrase is a structurally valid BIP39
// mnemonic: correct word count, every word in the canonical list, checksum
// intact.
func ValidateMnemonic(phrase string) error {
	return bip39.ValidateMnemonic(phrase)
}

// MnemonicToSeed stretches (phrase, passphrase) into the 64-byte BIP39 seed.
func MnemonicToSeed(phrase, passphrase string) [64]byte {
	return bip39.MnemonicToSeed(phrase, passphrase)
}

// MasterKeyFromSeed derives the BIP32 master extended key from a seed.
func MasterKeyFromSeed(seed []byte) (*ExtendedKey, error) {
	return bip32.MasterFromSeed(seed)
}

// DerivePath parses path and folds child derivation over ext, left to right.
func DerivePath(ext *ExtendedKey, path string) (*ExtendedKey, error) {
	return bip32.DerivePath(ext, path)
}

// ToXPRVString serializes ext as a Base58Check-encoded xprv string.
func ToXPRVString(ext *ExtendedKey) string {
	return ext.ToXPRVString()
}

// DeriveBIP44Path derives m/44'/coin'/account'/chain/address from root, a
// convenience over DerivePath for the common BIP44 account-discovery shape.
func DeriveBIP44Path(root *ExtendedKey, coin, account, chain, address uint32) (*ExtendedKey, error) {
	return bip44path.Derive(root, coin, account, chain, address)
}
