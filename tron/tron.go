// Package tron implements the secp256k1 Tron strategy: keys, base58check addresses
// and TIP-191 message signing.
package tron

import (
	"bytes"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/derivation"
	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"
	"github.com/AlexZinkM/chainkit/internal/secp"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/sirupsen/logrus"
)

// AddressVersion prefixes every mainnet account address
const AddressVersion byte = 0x41

const messagePrefix = "\x19TRON Signed Message:\n"

// Strategy is the Tron chain strategy. It holds no per-call state.
type Strategy struct {
	log *logrus.Entry
}

// New creates the Tron strategy. A nil log uses the process logger.
func New(log *logrus.Entry) *Strategy {
	if log == nil {
		log = logging.Component("tron")
	}
	return &Strategy{log: log}
}

func (s *Strategy) Chain() model.Chain {
	return model.ChainTron
}

func (s *Strategy) Curve() model.Curve {
	return model.CurveSecp256k1
}

// Template returns the BIP-44 template for coin type 195
func (s *Strategy) Template(pathType model.DerivationPathType) (string, error) {
	return secp.Template(secp.CoinTron, pathType)
}

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
	priv, err := secp.DeriveFromData(secp.CoinTron, data)
	if err != nil {
		return nil, err
	}
	return privateKey(priv), nil
}

// RawPrivateKey accepts a 32-byte hex scalar or a WIF key
func (s *Strategy) RawPrivateKey(key string) (*model.ChainPrivateKey, error) {
	priv, err := secp.ParseHexOrWIF(key)
	if err != nil {
		return nil, err
	}
	return privateKey(priv), nil
}

// IsValid reports whether address is a base58check T-address
func (s *Strategy) IsValid(address string) bool {
	_, err := parseAddress(address)
	return err == nil
}

// Address returns the base58check address of pub
func Address(pub *btcec.PublicKey) string {
	return base58.CheckEncode(secp.KeccakAddress(pub), AddressVersion)
}

// SignMessage signs message with the TRON Signed Message prefix and returns a 0x hex
// r||s||v signature with v in {27,28}. A 0x-prefixed message is taken as hex bytes.
func (s *Strategy) SignMessage(message string, signers []model.ChainPrivateKey) (string, error) {
	switch len(signers) {
	case 0:
		return "", model.NewError(model.KindEmptySignerSet, "no signers")
	case 1:
	default:
		return "", model.Errorf(model.KindMultipleSigners, "expected one signer, got %d", len(signers))
	}
	priv, err := signingKey(signers[0])
	if err != nil {
		return "", err
	}
	sig := secp.Sign(priv, MessageHash(common.MessageBytes(message)))
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig), nil
}

// RecoverMessageSigner returns the address that produced a SignMessage signature
func RecoverMessageSigner(message []byte, signature string) (string, error) {
	sig, err := hex.DecodeString(common.TrimHexPrefix(strings.TrimSpace(signature)))
	if err != nil {
		return "", model.WrapError(model.KindMalformedTransaction, "signature is not hex", err)
	}
	pub, err := secp.Recover(MessageHash(message), sig)
	if err != nil {
		return "", err
	}
	return Address(pub), nil
}

// VerifyMessage checks a SignMessage signature against a base58 address
func (s *Strategy) VerifyMessage(address, message, signature string) (bool, error) {
	if _, err := parseAddress(address); err != nil {
		return false, err
	}
	signer, err := RecoverMessageSigner(common.MessageBytes(message), signature)
	if err != nil {
		return false, err
	}
	return signer == strings.TrimSpace(address), nil
}

// MessageHash is keccak("\x19TRON Signed Message:\n" + len(message) + message)
func MessageHash(message []byte) []byte {
	return secp.Keccak256([]byte(messagePrefix+strconv.Itoa(len(message))), message)
}

func parseAddress(address string) ([]byte, error) {
	payload, version, err := base58.CheckDecode(strings.TrimSpace(address))
	if err != nil {
		return nil, model.WrapError(model.KindInvalidAddress, "invalid tron address", err)
	}
	if version != AddressVersion || len(payload) != 20 {
		return nil, model.NewError(model.KindInvalidAddress, "not a tron account address")
	}
	return payload, nil
}

func privateKey(priv *btcec.PrivateKey) *model.ChainPrivateKey {
	return &model.ChainPrivateKey{
		Contents:  "0x" + secp.Hex(priv),
		PublicKey: model.ChainPublicKey{Contents: Address(priv.PubKey()), Chain: model.ChainTron},
	}
}

func signingKey(k model.ChainPrivateKey) (*btcec.PrivateKey, error) {
	priv, err := secp.ParseHexOrWIF(k.Contents)
	if err != nil {
		return nil, err
	}
	if k.PublicKey.Contents == "" {
		return priv, nil
	}
	declared, err := parseAddress(k.PublicKey.Contents)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(declared, secp.KeccakAddress(priv.PubKey())) {
		return nil, model.NewError(model.KindInvalidKey, "signer key does not match its address")
	}
	return priv, nil
}
