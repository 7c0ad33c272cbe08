package ethereum

import (
	"crypto/ecdsa"

	"github.com/AlexZinkM/chainkit/internal/derivation"
	"github.com/AlexZinkM/chainkit/internal/model"
	"github.com/AlexZinkM/chainkit/internal/secp"

	"github.com/btcsuite/btcd/btcec/v2"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
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
	priv, err := secp.DeriveFromData(secp.CoinEthereum, data)
	if err != nil {
		return nil, err
	}
	return privateKey(priv), nil
}

// RawPrivateKey accepts a 32-byte hex scalar
func (s *Strategy) RawPrivateKey(key string) (*model.ChainPrivateKey, error) {
	priv, err := secp.ParseHex(key)
	if err != nil {
		return nil, err
	}
	return privateKey(priv), nil
}

// IsValid reports whether address is a 0x address with a valid or absent checksum
func (s *Strategy) IsValid(address string) bool {
	_, err := parseAddress(address)
	return err == nil
}

// Address returns the checksummed address of pub
func Address(pub *btcec.PublicKey) string {
	return crypto.PubkeyToAddress(*pub.ToECDSA()).Hex()
}

func privateKey(priv *btcec.PrivateKey) *model.ChainPrivateKey {
	return &model.ChainPrivateKey{
		Contents:  "0x" + secp.Hex(priv),
		PublicKey: model.ChainPublicKey{Contents: Address(priv.PubKey()), Chain: model.ChainEthereum},
	}
}

// signingKey decodes a signer and checks that its declared address, if any, matches the key
func signingKey(k model.ChainPrivateKey) (*ecdsa.PrivateKey, gethcommon.Address, error) {
	priv, err := secp.ParseHex(k.Contents)
	if err != nil {
		return nil, gethcommon.Address{}, err
	}
	key, err := crypto.ToECDSA(priv.Serialize())
	if err != nil {
		return nil, gethcommon.Address{}, model.WrapError(model.KindInvalidKey, "invalid secp256k1 key", err)
	}
	addr := crypto.PubkeyToAddress(key.PublicKey)
	if k.PublicKey.Contents != "" {
		declared, err := parseAddress(k.PublicKey.Contents)
		if err != nil {
			return nil, gethcommon.Address{}, err
		}
		if declared != addr {
			return nil, gethcommon.Address{}, model.NewError(model.KindInvalidKey, "signer key does not match its address")
		}
	}
	return key, addr, nil
}
