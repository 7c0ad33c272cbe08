package solana

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/derivation"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

const maxDataLen = 1024

// probe is signed and verified to reject keypairs whose halves do not match
var probe = []byte{0, 1, 2, 3, 4, 5, 6, 7}

// DeriveKey walks path with SLIP-10 and returns the base58 keypair
func (s *Strategy) DeriveKey(seed []byte, path derivation.Path) (*model.ChainPrivateKey, error) {
	priv, err := derivation.Ed25519(seed, path)
	if err != nil {
		return nil, err
	}
	defer clear(priv)
	return privateKey(solana.PrivateKey(priv)), nil
}

// DeriveFromData uses sha256(data) as the ed25519 seed
func (s *Strategy) DeriveFromData(data []byte) (*model.ChainPrivateKey, error) {
	if len(data) == 0 || len(data) > maxDataLen {
		return nil, model.Errorf(model.KindInvalidSeedLength, "data must be 1..%d bytes, got %d", maxDataLen, len(data))
	}
	seed := sha256.Sum256(data)
	defer clear(seed[:])

	priv := ed25519.NewKeyFromSeed(seed[:])
	defer clear(priv)
	return privateKey(solana.PrivateKey(priv)), nil
}

// RawPrivateKey accepts a 64-byte keypair as a [n,n,...] byte array, base58 or hex
func (s *Strategy) RawPrivateKey(key string) (*model.ChainPrivateKey, error) {
	key = strings.TrimSpace(key)

	// Try each encoding in turn, first valid keypair wins
	var candidates [][]byte
	if b, ok := common.ParseByteArray(key); ok {
		candidates = append(candidates, b)
	}
	if b, err := base58.Decode(key); err == nil {
		candidates = append(candidates, b)
	}
	if b, err := hex.DecodeString(common.TrimHexPrefix(key)); err == nil {
		candidates = append(candidates, b)
	}
	defer func() {
		for _, c := range candidates {
			clear(c)
		}
	}()

	for _, c := range candidates {
		if priv, err := keypairFromBytes(c); err == nil {
			return privateKey(priv), nil
		}
	}
	return nil, model.NewError(model.KindInvalidKey, "not a valid solana keypair")
}

// IsValid reports whether address is a base58 32-byte public key
func (s *Strategy) IsValid(address string) bool {
	_, err := solana.PublicKeyFromBase58(address)
	return err == nil
}

// VerifyMessage checks a base64 ed25519 signature produced by SignMessage
func VerifyMessage(address string, message []byte, signature string) (bool, error) {
	pub, err := parsePublicKey(address)
	if err != nil {
		return false, err
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false, model.NewError(model.KindMalformedTransaction, "signature must be 64 bytes of base64")
	}
	return ed25519.Verify(pub[:], message, sig), nil
}

// VerifyMessage checks a SignMessage signature over base64 message bytes
func (s *Strategy) VerifyMessage(address, message, signature string) (bool, error) {
	raw, err := decodeBase64(message)
	if err != nil {
		return false, err
	}
	return VerifyMessage(address, raw, signature)
}

// keypair decodes a signer's base58 keypair.
// Caller must clear the returned key after use.
func keypair(k model.ChainPrivateKey) (solana.PrivateKey, error) {
	b, err := base58.Decode(k.Contents)
	if err != nil {
		return nil, model.WrapError(model.KindInvalidKey, "signer key is not base58", err)
	}
	priv, err := keypairFromBytes(b)
	if err != nil {
		clear(b)
		return nil, err
	}
	return priv, nil
}

// keypairFromBytes checks that b is a 64-byte secret||public keypair whose halves match
func keypairFromBytes(b []byte) (solana.PrivateKey, error) {
	if len(b) != ed25519.PrivateKeySize {
		return nil, model.Errorf(model.KindInvalidKey, "keypair must be %d bytes, got %d", ed25519.PrivateKeySize, len(b))
	}
	sig := ed25519.Sign(ed25519.PrivateKey(b), probe)
	if !ed25519.Verify(ed25519.PublicKey(b[32:]), probe, sig) {
		return nil, model.NewError(model.KindInvalidKey, "keypair public half does not match secret")
	}
	return solana.PrivateKey(b), nil
}

func privateKey(priv solana.PrivateKey) *model.ChainPrivateKey {
	pub := solana.PublicKeyFromBytes(priv[32:])
	return &model.ChainPrivateKey{
		Contents:  priv.String(),
		PublicKey: publicKey(pub),
	}
}

func parsePublicKey(address string) (solana.PublicKey, error) {
	pub, err := solana.PublicKeyFromBase58(strings.TrimSpace(address))
	if err != nil {
		return solana.PublicKey{}, model.WrapError(model.KindInvalidAddress, "invalid solana address", err)
	}
	return pub, nil
}
