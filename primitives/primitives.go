// Package primitives is the crypto façade the rest of the core builds on:
// SHA-256, SHA-512, HMAC-SHA-512, RIPEMD-160, PBKDF2-HMAC-SHA-512, and
// secp256k1 scalar-to-compressed-point. Every function here is pure and
// stateless; none carry side-channel guarantees beyond what the underlying
// library provides.
package primitives

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // required for BIP32 Hash160, not used for signing
)

// SHA256 returns the 32-byte SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA512 returns the 64-byte SHA-512 digest of data.
func SHA512(data []byte) [64]byte {
	return sha512.Sum512(data)
}

// HMACSHA512 returns the 64-byte HMAC-SHA-512 of data under key.
func HMACSHA512(key, data []byte) [64]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data) //nolint:errcheck // hash.Hash.Write never errors
	var out [64]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// RIPEMD160 returns the 20-byte RIPEMD-160 digest of data.
func RIPEMD160(data []byte) [20]byte {
	h := ripemd160.New()
	h.Write(data) //nolint:errcheck // hash.Hash.Write never errors
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Hash160 is RIPEMD160(SHA256(data)), the fingerprint source BIP32 uses.
func Hash160(data []byte) [20]byte {
	sh := SHA256(data)
	return RIPEMD160(sh[:])
}

// PBKDF2HMACSHA512 stretches password+salt into outLen bytes using
// HMAC-SHA-512 as the pseudorandom function, for the given iteration count.
func PBKDF2HMACSHA512(password, salt []byte, iterations, outLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, outLen, sha512.New)
}

// CompressedPubKey returns the 33-byte compressed secp256k1 public key
// (0x02/0x03 prefix by y-parity) for a 32-byte scalar. The caller is
// responsible for having already validated the scalar is a nonzero value
// less than the curve order; this function does not re-derive that check.
func CompressedPubKey(scalar32 []byte) [33]byte {
	priv := secp256k1.PrivKeyFromBytes(scalar32)
	defer priv.Zero()
	var out [33]byte
	copy(out[:], priv.PubKey().SerializeCompressed())
	return out
}
