package bitcoin

import (
	"bytes"
	"encoding/base64"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

const (
	messageMagic = "Bitcoin Signed Message:\n"
	compactLen   = 65
)

// SignMessage signs message as a Bitcoin Signed Message and returns the base64
// 65-byte compact signature for the compressed public key
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
	sig := ecdsa.SignCompact(priv, MessageHash([]byte(message)), true)
	return base64.StdEncoding.EncodeToString(sig), nil
}

// VerifyMessage checks a SignMessage signature over the message text
func (s *Strategy) VerifyMessage(address, message, signature string) (bool, error) {
	return VerifyMessage(address, []byte(message), signature)
}

// VerifyMessage checks a base64 compact signature against a P2PKH or P2WPKH address
func VerifyMessage(address string, message []byte, signature string) (bool, error) {
	decoded, err := decodeAddress(address)
	if err != nil {
		return false, err
	}
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil || len(sig) != compactLen {
		return false, model.NewError(model.KindMalformedTransaction, "signature must be 65 bytes of base64")
	}
	pub, compressed, err := ecdsa.RecoverCompact(sig, MessageHash(message))
	if err != nil {
		return false, nil
	}

	switch decoded.(type) {
	case *btcutil.AddressPubKeyHash:
		return bytes.Equal(decoded.ScriptAddress(), btcutil.Hash160(serialize(pub, compressed))), nil
	case *btcutil.AddressWitnessPubKeyHash:
		return compressed && SegwitAddress(pub) == decoded.EncodeAddress(), nil
	}
	return false, model.NewError(model.KindInvalidAddress, "messages can only be verified against key hash addresses")
}

// MessageHash is the double SHA-256 of the varint-prefixed magic and message
func MessageHash(message []byte) []byte {
	var buf bytes.Buffer
	// writes to a bytes.Buffer do not fail
	_ = wire.WriteVarString(&buf, 0, messageMagic)
	_ = wire.WriteVarBytes(&buf, 0, message)
	return chainhash.DoubleHashB(buf.Bytes())
}

func serialize(pub *btcec.PublicKey, compressed bool) []byte {
	if compressed {
		return pub.SerializeCompressed()
	}
	return pub.SerializeUncompressed()
}
