package bip32

import (
	"strconv"
	"strings"

	"github.com/keytree/hdkeygen/hdkeyerr"
)

// DerivationPath is a parsed sequence of BIP32 child indices, in order from
// the key that follows the master down to the leaf. Hardened indices
// already carry HardenedOffset added in.
type DerivationPath []uint32

// ParsePath parses a path string like "m/44'/0'/0'/0/0" (or "m", "m/", "M")
// into a DerivationPath. Hardening is marked with a trailing "'" or "h". An
// index must be less than 2^31 before the hardened offset is applied;
// exceeding that, or any malformed segment, is InvalidDerivationPath.
func ParsePath(s string) (DerivationPath, error) {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != 'm' && s[0] != 'M') {
		return nil, hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "path must start with 'm' or 'M'")
	}

	rest := s[1:]
	if rest == "" {
		return DerivationPath{}, nil
	}
	if rest[0] != '/' {
		return nil, hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "expected '/' after 'm'")
	}
	rest = rest[1:]
	if rest == "" {
		return DerivationPath{}, nil
	}

	segments := strings.Split(rest, "/")
	path := make(DerivationPath, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return nil, hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "empty path segment")
		}

		hardened := false
		numPart := seg
		switch seg[len(seg)-1] {
		case '\'', 'h', 'H':
			hardened = true
			numPart = seg[:len(seg)-1]
		}
		if numPart == "" {
			return nil, hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "missing index in segment: "+seg)
		}

		idx, err := strconv.ParseUint(numPart, 10, 32)
		if err != nil {
			return nil, hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "invalid index: "+numPart)
		}
		if idx >= uint64(HardenedOffset) {
			return nil, hdkeyerr.New(hdkeyerr.InvalidDerivationPath, "index must be less than 2^31: "+numPart)
		}

		final := uint32(idx)
		if hardened {
			final += HardenedOffset
		}
		path = append(path, final)
	}

	return path, nil
}

// DerivePath parses path and folds Child left-to-right over root, returning
// root itself unchanged when path is just "m".
func DerivePath(root *ExtendedKey, path string) (*ExtendedKey, error) {
	parsed, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	current := root
	for _, index := range parsed {
		var err error
		current, err = current.Child(index)
		if err != nil {
			return nil, err
		}
	}
	return current, nil
}
