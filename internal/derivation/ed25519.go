package derivation

import (
	"crypto/ed25519"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/anyproto/go-slip10"
)

// Ed25519 derives an ed25519 private key from a seed following SLIP-10.
// Only hardened segments are allowed on this curve.
func Ed25519(seed []byte, path Path) (ed25519.PrivateKey, error) {
	if !path.Hardened() {
		return nil, model.Errorf(model.KindUnsupportedDerivation,
			"ed25519 supports hardened derivation only, got %s", path)
	}
	node, err := slip10.DeriveForPath(path.String(), seed)
	if err != nil {
		return nil, model.WrapError(model.KindUnsupportedDerivation, "slip-10 derivation failed", err)
	}
	_, priv := node.Keypair()
	return priv, nil
}
