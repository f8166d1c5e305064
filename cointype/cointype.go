// Package cointype provides registered cryptocurrency coin-type constants
// as defined by SLIP-0044, for use as the coin' level of a BIP44 derivation
// path. These select which index a path visits; they never change which
// xprv version bytes bip32 emits. This library only ever serializes
// Bitcoin-mainnet extended private keys.
//
// https://github.com/satoshilabs/slips/blob/master/slip-0044.md
package cointype

const (
	Bitcoin  = 0
	Litecoin = 2
	Dogecoin = 3
	Ethereum = 60
	Tron     = 195
)
