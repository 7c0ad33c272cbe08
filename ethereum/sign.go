package ethereum

import (
	"bytes"
	"crypto/ecdsa"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/ethereum/go-ethereum/accounts"
	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/sirupsen/logrus"
)

// SignTransaction signs a hex legacy, EIP-2930 or EIP-1559 transaction with its single sender.
// An already signed transaction must have been signed by the same key. params is not used.
func (s *Strategy) SignTransaction(tx string, signers []model.ChainPrivateKey, _ *model.TransactionParameters) (*model.ChainTransaction, error) {
	key, addr, err := singleSigner(signers)
	if err != nil {
		return nil, err
	}
	decoded, err := parseHexTransaction(tx)
	if err != nil {
		return nil, err
	}
	if decoded.signed() {
		sender, err := decoded.sender()
		if err != nil {
			return nil, err
		}
		if sender != addr {
			return nil, model.Errorf(model.KindSignerNotFound, "transaction was signed by %s", sender.Hex())
		}
	}

	if err := decoded.sign(key); err != nil {
		return nil, err
	}
	encoded, err := decoded.hex()
	if err != nil {
		return nil, err
	}
	sig := encodeHex(withLegacyV(decoded.signature()))
	s.log.WithFields(logrus.Fields{"version": decoded.version(), "nonce": decoded.inner.Nonce()}).Debug("signed transaction")

	signer := publicKey(addr)
	result := &model.ChainTransaction{
		Tx:            encoded,
		Signers:       []model.ChainPublicKey{signer},
		Accounts:      []model.ChainPublicKey{signer},
		FullSignature: sig,
		Signatures:    []string{sig},
	}
	if to := decoded.inner.To(); to != nil {
		result.Accounts = append(result.Accounts, publicKey(*to))
		result.InstructionPrograms = []string{to.Hex()}
	}
	return result, nil
}

// SignMessage signs message with EIP-191 personal_sign. A 0x-prefixed message is
// taken as hex bytes, anything else as UTF-8 text.
func (s *Strategy) SignMessage(message string, signers []model.ChainPrivateKey) (string, error) {
	key, _, err := singleSigner(signers)
	if err != nil {
		return "", err
	}
	sig, err := crypto.Sign(PersonalHash(common.MessageBytes(message)), key)
	if err != nil {
		return "", model.WrapError(model.KindInvalidKey, "cannot sign message", err)
	}
	return encodeHex(withLegacyV(sig)), nil
}

// RecoverMessageSigner returns the checksummed address that produced a personal_sign signature
func RecoverMessageSigner(message []byte, signature string) (string, error) {
	sig, err := decodeHex(signature)
	if err != nil {
		return "", err
	}
	normalized, err := recoveryID(sig)
	if err != nil {
		return "", err
	}
	addr, err := recoverAddress(PersonalHash(message), normalized)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}

// VerifyMessage checks a SignMessage signature. A signature that recovers to another
// address is reported as false, a malformed one as an error.
func (s *Strategy) VerifyMessage(address, message, signature string) (bool, error) {
	if !s.IsValid(address) {
		return false, model.Errorf(model.KindInvalidAddress, "invalid ethereum address %q", address)
	}
	signer, err := RecoverMessageSigner(common.MessageBytes(message), signature)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(signer, strings.TrimSpace(address)), nil
}

// PersonalHash is keccak("\x19Ethereum Signed Message:\n" + len(message) + message)
func PersonalHash(message []byte) []byte {
	return accounts.TextHash(message)
}

// singleSigner enforces exactly one signer and decodes its key
func singleSigner(signers []model.ChainPrivateKey) (*ecdsa.PrivateKey, gethcommon.Address, error) {
	switch len(signers) {
	case 0:
		return nil, gethcommon.Address{}, model.NewError(model.KindEmptySignerSet, "no signers")
	case 1:
		return signingKey(signers[0])
	}
	return nil, gethcommon.Address{}, model.Errorf(model.KindMultipleSigners, "expected one signer, got %d", len(signers))
}

// recoveryID returns a copy of a 65-byte r||s||v signature with v as the recovery id
func recoveryID(sig []byte) ([]byte, error) {
	if len(sig) != crypto.SignatureLength {
		return nil, model.Errorf(model.KindMalformedTransaction, "signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	out := bytes.Clone(sig)
	if out[64] >= 27 {
		out[64] -= 27
	}
	return out, nil
}

func recoverAddress(hash, sig []byte) (gethcommon.Address, error) {
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return gethcommon.Address{}, model.WrapError(model.KindMalformedTransaction, "cannot recover signer", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// withLegacyV returns a copy of an r||s||recid signature with v = 27 + recid
func withLegacyV(sig []byte) []byte {
	out := bytes.Clone(sig)
	out[64] += 27
	return out
}
