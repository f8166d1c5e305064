package bip39

import (
	"crypto/rand"
	"io"
	"strings"

	"github.com/keytree/hdkeygen/hdkeyerr"
	"github.com/keytree/hdkeygen/hexutil"
	"github.com/keytree/hdkeygen/primitives"
)

// entropyBitsForWords maps a valid mnemonic word count to its entropy size
// in bits, per the BIP39 word-count table.
var entropyBitsForWords = map[int]int{
	12: 128,
	15: 160,
	18: 192,
	21: 224,
	24: 256,
}

// ValidWordCounts are the only mnemonic lengths this codec accepts.
var ValidWordCounts = [5]int{12, 15, 18, 21, 24}

// EntropyToMnemonic encodes entropy into a space-separated mnemonic phrase.
// entropy must be 16, 20, 24, 28, or 32 bytes (128/160/192/224/256 bits);
// any other length is rejected.
func EntropyToMnemonic(entropy []byte) (string, error) {
	bits := len(entropy) * 8
	if _, ok := wordsForEntropyBits(bits); !ok {
		return "", hdkeyerr.New(hdkeyerr.EncodingError, "entropy length must be 16, 20, 24, 28, or 32 bytes")
	}

	checksum := primitives.SHA256(entropy)
	checksumBits := bits / 32

	entropyBits := bytesToBits(entropy)
	csBits := bytesToBits(checksum[:])[:checksumBits]

	allBits := append(entropyBits, csBits...)
	indices := bitsToWordIndices(allBits)

	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = wordAt(idx)
	}
	return strings.Join(words, " "), nil
}

// MnemonicToEntropy decodes a mnemonic phrase back to its entropy, verifying
// the embedded checksum. The phrase is trimmed and split on whitespace runs
// before validation.
func MnemonicToEntropy(mnemonic string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	wordCount := len(words)
	if err := hexutil.ValidateWordCount(wordCount); err != nil {
		return nil, err
	}

	indices := make([]uint16, wordCount)
	for i, w := range words {
		idx, ok := indexOf(w)
		if !ok {
			return nil, hdkeyerr.New(hdkeyerr.InvalidMnemonic, "word not in wordlist: "+w)
		}
		indices[i] = idx
	}

	allBits := wordIndicesToBits(indices)
	totalBits := len(allBits)
	checksumBits := totalBits / 33
	entropyBitCount := totalBits - checksumBits

	entropy := bitsToBytes(allBits[:entropyBitCount])

	expected := primitives.SHA256(entropy)
	expectedBits := bytesToBits(expected[:])[:checksumBits]
	actualBits := allBits[entropyBitCount:]

	for i := range expectedBits {
		if expectedBits[i] != actualBits[i] {
			return nil, hdkeyerr.New(hdkeyerr.InvalidMnemonic, "checksum mismatch")
		}
	}

	return entropy, nil
}

// ValidateMnemonic reports whether mnemonic is structurally valid: correct
// word count, every word in the canonical list, and checksum intact.
func ValidateMnemonic(mnemonic string) error {
	_, err := MnemonicToEntropy(mnemonic)
	return err
}

// GenerateMnemonic draws fresh entropy for the requested word count from
// rng (normally crypto/rand.Reader) and encodes it as a mnemonic. Passing a
// nil rng defaults to crypto/rand.Reader; tests may substitute a
// deterministic io.Reader stub.
func GenerateMnemonic(wordCount int, rng io.Reader) (string, error) {
	if err := hexutil.ValidateWordCount(wordCount); err != nil {
		return "", err
	}
	if rng == nil {
		rng = rand.Reader
	}

	entropyBytes := entropyBitsForWords[wordCount] / 8
	entropy := make([]byte, entropyBytes)
	if _, err := io.ReadFull(rng, entropy); err != nil {
		return "", hdkeyerr.Wrap(hdkeyerr.KeyGenerationError, "reading entropy", err)
	}

	return EntropyToMnemonic(entropy)
}

func wordsForEntropyBits(bits int) (int, bool) {
	for words, b := range entropyBitsForWords {
		if b == bits {
			return words, true
		}
	}
	return 0, false
}
