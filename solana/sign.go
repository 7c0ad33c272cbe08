package solana

import (
	"encoding/base64"

	"github.com/AlexZinkM/chainkit/internal/model"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"
)

// placeholderSignature is what some dapps put in unsigned slots instead of zeros
var placeholderSignature = func() (s solana.Signature) {
	for i := range s {
		s[i] = 1
	}
	return s
}()

// SignTransaction signs a base64 legacy or v0 transaction.
//
// When signers cover every required signer the optional slippage and compute-budget
// changes are applied, the blockhash is replaced while nothing is signed yet and every
// slot is signed. Otherwise the original bytes are partially signed: only empty slots
// belonging to a given signer are filled.
func (s *Strategy) SignTransaction(tx string, signers []model.ChainPrivateKey, params *model.TransactionParameters) (*model.ChainTransaction, error) {
	if len(signers) == 0 {
		return nil, model.NewError(model.KindEmptySignerSet, "no signers")
	}
	if params == nil {
		return nil, model.NewError(model.KindMissingParameters, "no parameters were provided")
	}
	raw, err := decodeBase64(tx)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeTransaction(raw)
	if err != nil {
		return nil, err
	}
	switch params.TransactionType {
	case "", model.TransactionVersioned:
	case model.TransactionLegacy:
		if decoded.Message.IsVersioned() {
			return nil, model.NewError(model.KindMalformedTransaction, "versioned transaction passed as legacy")
		}
	default:
		return nil, model.Errorf(model.KindUnsupportedParameter, "unknown transaction type %q", params.TransactionType)
	}

	keys := make(map[solana.PublicKey]solana.PrivateKey, len(signers))
	defer func() {
		for _, k := range keys {
			clear(k)
		}
	}()
	for _, signer := range signers {
		priv, err := keypair(signer)
		if err != nil {
			return nil, err
		}
		keys[priv.PublicKey()] = priv
	}

	var blockhash *solana.Hash
	if params.ExternalAddress != nil && params.ExternalAddress.RecentBlockhash != "" {
		h, err := recentBlockhash(params)
		if err != nil {
			return nil, err
		}
		blockhash = &h
	}

	msg := &decoded.Message
	required := int(msg.Header.NumRequiredSignatures)
	log := s.log.WithFields(logrus.Fields{"signers": len(signers), "required": required})

	switch {
	case len(signers) > required:
		return nil, model.Errorf(model.KindMultipleSigners, "%d signers for %d required signatures", len(signers), required)
	case len(signers) < required:
		log.Debug("partially signing transaction")
		if err := partialSign(decoded, keys); err != nil {
			return nil, err
		}
	default:
		for _, key := range msg.AccountKeys[:required] {
			if _, ok := keys[key]; !ok {
				return nil, model.Errorf(model.KindSignerNotFound, "no key for required signer %s", key)
			}
		}
		adjust(decoded, params, blockhash, log)
		if _, err := decoded.Sign(func(key solana.PublicKey) *solana.PrivateKey {
			if priv, ok := keys[key]; ok {
				return &priv
			}
			return nil
		}); err != nil {
			return nil, model.WrapError(model.KindMalformedTransaction, "sign transaction", err)
		}
	}

	encoded, err := encodeTransaction(decoded)
	if err != nil {
		return nil, err
	}
	return chainTransaction(encoded, signers, decoded), nil
}

// adjust applies the best-effort message changes of a fully signed transaction
func adjust(tx *solana.Transaction, params *model.TransactionParameters, blockhash *solana.Hash, log *logrus.Entry) {
	msg := &tx.Message
	if params.SwapSlippageBps != nil {
		if err := setSwapSlippage(msg, *params.SwapSlippageBps); err != nil {
			log.WithError(err).Debug("slippage not applied")
		}
	}
	if params.ComputeBudgetUnitLimit != nil {
		if err := prependInstruction(msg, computeUnitLimit(*params.ComputeBudgetUnitLimit)); err != nil {
			log.WithError(err).Debug("compute unit limit not applied")
		}
	}
	if params.ComputeBudgetUnitPrice != nil {
		if err := prependInstruction(msg, computeUnitPrice(*params.ComputeBudgetUnitPrice)); err != nil {
			log.WithError(err).Debug("compute unit price not applied")
		}
	}
	if blockhash != nil && unsigned(tx) {
		msg.RecentBlockhash = *blockhash
	}
}

// unsigned reports whether every slot is zero or the 0x01 placeholder
func unsigned(tx *solana.Transaction) bool {
	for _, sig := range tx.Signatures {
		if !sig.IsZero() && sig != placeholderSignature {
			return false
		}
	}
	return true
}

func partialSign(tx *solana.Transaction, keys map[solana.PublicKey]solana.PrivateKey) error {
	content, err := messageBytes(&tx.Message)
	if err != nil {
		return err
	}
	required := int(tx.Message.Header.NumRequiredSignatures)
	matched := 0
	for i, key := range tx.Message.AccountKeys {
		priv, ok := keys[key]
		if !ok || i >= required || i >= len(tx.Signatures) {
			continue
		}
		matched++
		if !tx.Signatures[i].IsZero() {
			continue
		}
		sig, err := priv.Sign(content)
		if err != nil {
			return model.WrapError(model.KindInvalidKey, "sign message", err)
		}
		tx.Signatures[i] = sig
	}
	if matched < len(keys) {
		return model.Errorf(model.KindSignerNotFound, "%d of %d signers are not required signers", len(keys)-matched, len(keys))
	}
	return nil
}

func chainTransaction(encoded string, signers []model.ChainPrivateKey, tx *solana.Transaction) *model.ChainTransaction {
	out := &model.ChainTransaction{Tx: encoded}
	for _, signer := range signers {
		out.Signers = append(out.Signers, signer.PublicKey)
	}
	for _, key := range tx.Message.AccountKeys {
		out.Accounts = append(out.Accounts, publicKey(key))
	}
	if len(tx.Signatures) > 0 {
		all := make([]byte, 0, len(tx.Signatures)*solana.SignatureLength)
		for _, sig := range tx.Signatures {
			all = append(all, sig[:]...)
			out.Signatures = append(out.Signatures, sig.String())
		}
		out.FullSignature = base58.Encode(all)
	}
	for _, ix := range tx.Message.Instructions {
		out.InstructionPrograms = append(out.InstructionPrograms, tx.Message.AccountKeys[ix.ProgramIDIndex].String())
	}
	return out
}

// SignMessage signs arbitrary base64 bytes with exactly one signer and returns the
// base64 ed25519 signature. Transactions and messages are refused.
func (s *Strategy) SignMessage(message string, signers []model.ChainPrivateKey) (string, error) {
	switch {
	case len(signers) == 0:
		return "", model.NewError(model.KindEmptySignerSet, "no signers")
	case len(signers) > 1:
		return "", model.NewError(model.KindMultipleSigners, "solana messages take exactly one signer")
	}
	raw, err := decodeBase64(message)
	if err != nil {
		return "", err
	}
	if looksLikeTransaction(raw) {
		return "", model.NewError(model.KindMalformedTransaction, "solana transactions cannot be signed as messages")
	}

	priv, err := keypair(signers[0])
	if err != nil {
		return "", err
	}
	defer clear(priv)
	sig, err := priv.Sign(raw)
	if err != nil {
		return "", model.WrapError(model.KindInvalidKey, "sign message", err)
	}
	return base64.StdEncoding.EncodeToString(sig[:]), nil
}

// looksLikeTransaction reports whether raw starts with a decodable transaction or message.
// Trailing bytes are tolerated here.
func looksLikeTransaction(raw []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	var tx solana.Transaction
	if tx.UnmarshalWithDecoder(bin.NewBinDecoder(raw)) == nil {
		return true
	}
	var msg solana.Message
	return msg.UnmarshalWithDecoder(bin.NewBinDecoder(raw)) == nil
}
