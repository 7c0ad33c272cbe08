package bitcoin

import (
	"github.com/AlexZinkM/chainkit/internal/derivation"
	"github.com/AlexZinkM/chainkit/internal/model"
	"github.com/AlexZinkM/chainkit/internal/secp"

	"github.com/btcsuite/btcd/btcec/v2"
)

// DeriveKey walks path with BIP-32
func (s *Strategy) DeriveKey(seed []byte, path derivation.Path) (*model.ChainPrivateKey, error) {
	priv, err := secp.Derive(seed, path)
	if err != nil {
		return nil, err
	}
	return privateKey(priv), nil
}

// DeriveFromData uses data as a BIP-32 seed on the default path
func (s *Strategy) DeriveFromData(data []byte) (*model.ChainPrivateKey, error) {
	priv, err := secp.DeriveFromData(secp.CoinBitcoin, data)
	if err != nil {
		return nil, err
	}
	return privateKey(priv), nil
}

// RawPrivateKey accepts a 32-byte hex scalar or a WIF key.
// The address is always derived from the compressed public key.
func (s *Strategy) RawPrivateKey(key string) (*model.ChainPrivateKey, error) {
	priv, err := secp.ParseHexOrWIF(key)
	if err != nil {
		return nil, err
	}
	return privateKey(priv), nil
}

// IsValid reports whether address is a mainnet P2PKH, P2SH or segwit address
func (s *Strategy) IsValid(address string) bool {
	_, err := decodeAddress(address)
	return err == nil
}

// WIF returns the compressed wallet import format of a hex or WIF key
func WIF(key string) (string, error) {
	priv, err := secp.ParseHexOrWIF(key)
	if err != nil {
		return "", err
	}
	return secp.WIF(priv), nil
}

func privateKey(priv *btcec.PrivateKey) *model.ChainPrivateKey {
	return &model.ChainPrivateKey{
		Contents:  "0x" + secp.Hex(priv),
		PublicKey: publicKey(priv.PubKey()),
	}
}

// signingKey decodes a signer and checks that its declared address, if any, is its P2PKH address
func signingKey(k model.ChainPrivateKey) (*btcec.PrivateKey, error) {
	priv, err := secp.ParseHexOrWIF(k.Contents)
	if err != nil {
		return nil, err
	}
	if k.PublicKey.Contents != "" && k.PublicKey.Contents != Address(priv.PubKey()) {
		return nil, model.NewError(model.KindInvalidKey, "signer key does not match its address")
	}
	return priv, nil
}
