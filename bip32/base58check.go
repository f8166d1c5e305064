package bip32

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/keytree/hdkeygen/primitives"
)

// mainnetPrivateVersion is the four-byte xprv version prefix for Bitcoin
// mainnet private extended keys. No other version-byte variant is produced
// by this package.
var mainnetPrivateVersion = [4]byte{0x04, 0x88, 0xAD, 0xE4}

// ToXPRVString serializes k as a Base58Check-encoded xprv string: version ||
// depth || parent_fingerprint || child_index || chain_code || 0x00 ||
// private_key, 78 bytes, followed by a 4-byte double-SHA-256 checksum.
func (k *ExtendedKey) ToXPRVString() string {
	payload := k.serialize()

	check := primitives.SHA256(payload)
	check = primitives.SHA256(check[:])
	full := append(payload, check[:4]...)

	return base58.Encode(full)
}

// serialize builds the 78-byte unchecked xprv payload: version, depth,
// parent fingerprint, child index, chain code, and the zero-padded
// private key.
func (k *ExtendedKey) serialize() []byte {
	buf := make([]byte, 0, 78)
	buf = append(buf, mainnetPrivateVersion[:]...)
	buf = append(buf, k.Depth)
	buf = append(buf, k.ParentFingerprint[:]...)

	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], k.ChildIndex)
	buf = append(buf, idx[:]...)

	buf = append(buf, k.ChainCode[:]...)
	buf = append(buf, 0x00)
	buf = append(buf, k.PrivateKey[:]...)
	return buf
}
