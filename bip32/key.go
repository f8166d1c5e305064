// Package bip32 implements the BIP32 extended-key tree: master key
// generation from a seed, hardened and non-hardened child derivation,
// derivation-path parsing, and Base58Check xprv serialization, all on the
// secp256k1 curve.
package bip32

import (
	"encoding/binary"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/keytree/hdkeygen/hdkeyerr"
	"github.com/keytree/hdkeygen/primitives"
)

// HardenedOffset is the child-index threshold (2^31) at and above which
// derivation is hardened.
const HardenedOffset uint32 = 0x80000000

var masterHMACKey = []byte("Bitcoin seed")

// ExtendedKey is an immutable BIP32 extended private key. Values are
// produced by MasterFromSeed or Child and consumed by value. There are no
// parent back-references, only the 4-byte ParentFingerprint summary.
type ExtendedKey struct {
	PrivateKey        [32]byte
	ChainCode         [32]byte
	Depth             uint8
	ParentFingerprint [4]byte
	ChildIndex        uint32
}

// MasterFromSeed derives the master extended key from a BIP39 seed (or any
// 16-64 byte value). Seeds outside that range are rejected, as is the
// vanishingly unlikely case that HMAC output is not a valid secp256k1 scalar.
func MasterFromSeed(seed []byte) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, hdkeyerr.New(hdkeyerr.InvalidSeedLength, "seed must be 16-64 bytes")
	}

	i := primitives.HMACSHA512(masterHMACKey, seed)
	il, ir := i[:32], i[32:]

	if err := validateScalar(il); err != nil {
		return nil, err
	}

	key := &ExtendedKey{Depth: 0, ChildIndex: 0}
	copy(key.PrivateKey[:], il)
	copy(key.ChainCode[:], ir)
	return key, nil
}

// Child derives the child extended key at the given index. index >=
// HardenedOffset selects hardened derivation (uses the parent private key
// in the HMAC input); below that, normal derivation requires the parent's
// compressed public key.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	if k.Depth == 255 {
		return nil, hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "depth overflow")
	}

	hardened := index >= HardenedOffset

	var data [37]byte
	if hardened {
		// data = 0x00 || private_key || ser32(index)
		copy(data[1:33], k.PrivateKey[:])
	} else {
		// data = serP(pubkey) || ser32(index)
		pub := k.compressedPubKey()
		copy(data[0:33], pub[:])
	}
	binary.BigEndian.PutUint32(data[33:], index)

	i := primitives.HMACSHA512(k.ChainCode[:], data[:])
	il, ir := i[:32], i[32:]

	childScalar, err := addModN(il, k.PrivateKey[:])
	if err != nil {
		return nil, err
	}

	parentPub := k.compressedPubKey()
	fingerprint := primitives.Hash160(parentPub[:])

	child := &ExtendedKey{
		Depth:      k.Depth + 1,
		ChildIndex: index,
	}
	copy(child.PrivateKey[:], childScalar[:])
	copy(child.ChainCode[:], ir)
	copy(child.ParentFingerprint[:], fingerprint[:4])
	return child, nil
}

// compressedPubKey returns this key's 33-byte compressed secp256k1 public
// key, derived by scalar multiplication with the generator point.
func (k *ExtendedKey) compressedPubKey() [33]byte {
	return primitives.CompressedPubKey(k.PrivateKey[:])
}

// validateScalar rejects an all-zero scalar or one that is >= the curve
// order n, per BIP32's private-key validity rule.
func validateScalar(b []byte) error {
	var s secp256k1.ModNScalar
	overflow := s.SetByteSlice(b)
	if overflow {
		return hdkeyerr.New(hdkeyerr.KeyGenerationError, "derived scalar exceeds curve order")
	}
	if s.IsZero() {
		return hdkeyerr.New(hdkeyerr.KeyGenerationError, "derived scalar is zero")
	}
	return nil
}

// addModN computes (il + parent) mod n, rejecting il >= n (overflow) or a
// zero sum, per BIP32's child key derivation function. The curve order
// arithmetic is delegated to secp256k1.ModNScalar rather than math/big:
// its SetByteSlice overflow flag already implements the n-reduction check.
func addModN(il, parent []byte) ([32]byte, error) {
	var ilScalar, parentScalar secp256k1.ModNScalar

	if overflow := ilScalar.SetByteSlice(il); overflow {
		return [32]byte{}, hdkeyerr.New(hdkeyerr.KeyGenerationError, "derived scalar exceeds curve order")
	}
	parentScalar.SetByteSlice(parent)

	ilScalar.Add(&parentScalar)
	if ilScalar.IsZero() {
		return [32]byte{}, hdkeyerr.New(hdkeyerr.KeyGenerationError, "child scalar is zero")
	}

	return *ilScalar.Bytes(), nil
}
