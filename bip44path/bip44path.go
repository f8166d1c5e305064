// Package bip44path builds BIP44 derivation paths
// (m/44'/coin'/account'/chain/address) and drives bip32.DerivePath with
// them. It is a convenience on top of bip32's general path derivation, not
// a new derivation algorithm.
package bip44path

import (
	"fmt"

	"github.com/keytree/hdkeygen/bip32"
)

// Purpose is the BIP43/BIP44 purpose constant (44').
const Purpose uint32 = 44

// Path returns the BIP44 path string "m/44'/coin'/account'/chain/address".
// coin and account are hardened per BIP44; chain and address are not.
func Path(coin, account, chain, address uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d", Purpose, coin, account, chain, address)
}

// Derive derives the key at Path(coin, account, chain, address) from root.
func Derive(root *bip32.ExtendedKey, coin, account, chain, address uint32) (*bip32.ExtendedKey, error) {
	return bip32.DerivePath(root, Path(coin, account, chain, address))
}
