package primitives

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256KnownVector(t *testing.T) {
	got := SHA256([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", hex.EncodeToString(got[:]))
}

func TestHash160IsRipemdOfSha256(t *testing.T) {
	data := []byte("hello world")
	sh := SHA256(data)
	want := RIPEMD160(sh[:])
	got := Hash160(data)
	assert.Equal(t, want, got)
}

func TestHMACSHA512Deterministic(t *testing.T) {
	a := HMACSHA512([]byte("key"), []byte("data"))
	b := HMACSHA512([]byte("key"), []byte("data"))
	assert.Equal(t, a, b)
}

func TestHMACSHA512KeySensitive(t *testing.T) {
	a := HMACSHA512([]byte("key1"), []byte("data"))
	b := HMACSHA512([]byte("key2"), []byte("data"))
	assert.NotEqual(t, a, b)
}

func TestPBKDF2HMACSHA512OutputLength(t *testing.T) {
	out := PBKDF2HMACSHA512([]byte("password"), []byte("salt"), 2048, 64)
	assert.Len(t, out, 64)
}

func TestCompressedPubKeyLengthAndPrefix(t *testing.T) {
	scalar := make([]byte, 32)
	scalar[31] = 1
	pub := CompressedPubKey(scalar)
	assert.Len(t, pub, 33)
	assert.Contains(t, []byte{0x02, 0x03}, pub[0])
}
