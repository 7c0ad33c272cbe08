package derivation

import (
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/tyler-smith/go-bip32"
)

// Seed length bounds accepted by BIP-32
const (
	MinSeedLen = 16
	MaxSeedLen = 64
)

// Secp256k1 derives a 32-byte secp256k1 private scalar from a seed following BIP-32.
// Caller must zero the returned slice after use.
func Secp256k1(seed []byte, path Path) ([]byte, error) {
	if len(seed) < MinSeedLen || len(seed) > MaxSeedLen {
		return nil, model.Errorf(model.KindInvalidSeedLength,
			"seed must be %d..%d bytes, got %d", MinSeedLen, MaxSeedLen, len(seed))
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, model.WrapError(model.KindInvalidKey, "master key", err)
	}
	for _, seg := range path {
		child, err := key.NewChildKey(seg.Value())
		clear(key.Key)
		if err != nil {
			return nil, model.WrapError(model.KindUnsupportedDerivation, "child key "+path.String(), err)
		}
		key = child
	}

	out := make([]byte, 32)
	copy(out, key.Key)
	clear(key.Key)
	return out, nil
}
