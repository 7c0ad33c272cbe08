package solana

import (
	"bytes"
	"encoding/base64"
	"strconv"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/model"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

const (
	versionLegacy = "legacy"
	versionV0     = "v0"
)

// decodeTransaction decodes the wire format strictly: no trailing bytes, one signature
// per required signer, every index inside the account table and a canonical encoding.
func decodeTransaction(raw []byte) (*solana.Transaction, error) {
	var tx solana.Transaction
	decoder := bin.NewBinDecoder(raw)
	if err := tx.UnmarshalWithDecoder(decoder); err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "decode transaction", err)
	}
	if decoder.Remaining() != 0 {
		return nil, model.Errorf(model.KindMalformedTransaction, "%d trailing bytes after transaction", decoder.Remaining())
	}
	if len(tx.Signatures) != int(tx.Message.Header.NumRequiredSignatures) {
		return nil, model.Errorf(model.KindMalformedTransaction, "%d signatures for %d required signers",
			len(tx.Signatures), tx.Message.Header.NumRequiredSignatures)
	}
	if err := checkMessage(&tx.Message); err != nil {
		return nil, err
	}
	if canonical, err := tx.MarshalBinary(); err != nil || !bytes.Equal(canonical, raw) {
		return nil, model.NewError(model.KindMalformedTransaction, "transaction is not canonically encoded")
	}
	return &tx, nil
}

// decodeMessage decodes a bare legacy or v0 message
func decodeMessage(raw []byte) (*solana.Message, error) {
	var msg solana.Message
	decoder := bin.NewBinDecoder(raw)
	if err := msg.UnmarshalWithDecoder(decoder); err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "decode message", err)
	}
	if decoder.Remaining() != 0 {
		return nil, model.Errorf(model.KindMalformedTransaction, "%d trailing bytes after message", decoder.Remaining())
	}
	if err := checkMessage(&msg); err != nil {
		return nil, err
	}
	if canonical, err := msg.MarshalBinary(); err != nil || !bytes.Equal(canonical, raw) {
		return nil, model.NewError(model.KindMalformedTransaction, "message is not canonically encoded")
	}
	return &msg, nil
}

func checkMessage(msg *solana.Message) error {
	static := len(msg.AccountKeys)
	if static < int(msg.Header.NumRequiredSignatures) {
		return model.Errorf(model.KindMalformedTransaction, "%d account keys for %d required signers",
			static, msg.Header.NumRequiredSignatures)
	}
	total := static + msg.AddressTableLookups.NumLookups()
	for i, ix := range msg.Instructions {
		if int(ix.ProgramIDIndex) >= static {
			return model.Errorf(model.KindMalformedTransaction, "instruction %d program index %d out of range", i, ix.ProgramIDIndex)
		}
		for _, acc := range ix.Accounts {
			if int(acc) >= total {
				return model.Errorf(model.KindMalformedTransaction, "instruction %d account index %d out of range", i, acc)
			}
		}
	}
	return nil
}

func decodeBase64(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "invalid base64", err)
	}
	return raw, nil
}

func encodeTransaction(tx *solana.Transaction) (string, error) {
	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", model.WrapError(model.KindMalformedTransaction, "encode transaction", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func messageBytes(msg *solana.Message) ([]byte, error) {
	raw, err := msg.MarshalBinary()
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "encode message", err)
	}
	return raw, nil
}

// ParseTransaction decodes a base64 legacy or v0 transaction
func (s *Strategy) ParseTransaction(tx string) (*model.ParsedTransaction, error) {
	raw, err := decodeBase64(tx)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeTransaction(raw)
	if err != nil {
		return nil, err
	}
	msg := &decoded.Message
	msgBytes, err := messageBytes(msg)
	if err != nil {
		return nil, err
	}

	parsed := &model.ParsedTransaction{
		Chain:           model.ChainSolana,
		Version:         versionLegacy,
		Accounts:        msg.AccountKeys.ToBase58(),
		RecentBlockhash: msg.RecentBlockhash.String(),
		Fee: map[string]string{
			"signatureFee": common.LamportsToSOL(uint64(msg.Header.NumRequiredSignatures) * lamportsPerSignature),
		},
		Message: base64.StdEncoding.EncodeToString(msgBytes),
		Raw:     raw,
	}
	if msg.IsVersioned() {
		parsed.Version = versionV0
	}

	for i, sig := range decoded.Signatures {
		signer := msg.AccountKeys[i].String()
		parsed.Signers = append(parsed.Signers, signer)
		parsed.Signatures = append(parsed.Signatures, model.ParsedSignature{
			Signer:    signer,
			Signature: sig.String(),
			Signed:    !sig.IsZero(),
		})
	}

	for _, ix := range msg.Instructions {
		parsedIx := model.ParsedInstruction{
			Program: msg.AccountKeys[ix.ProgramIDIndex].String(),
			Data:    ix.Data.String(),
		}
		for _, acc := range ix.Accounts {
			parsedIx.Accounts = append(parsedIx.Accounts, accountName(msg, acc))
		}
		parsed.Instructions = append(parsed.Instructions, parsedIx)
	}
	return parsed, nil
}

// accountName resolves a static key, lookup-table accounts are shown as table#index
func accountName(msg *solana.Message, index uint16) string {
	if int(index) < len(msg.AccountKeys) {
		return msg.AccountKeys[index].String()
	}
	i := int(index) - len(msg.AccountKeys)
	for _, pass := range []bool{true, false} {
		for _, lookup := range msg.AddressTableLookups {
			indexes := lookup.ReadonlyIndexes
			if pass {
				indexes = lookup.WritableIndexes
			}
			if i < len(indexes) {
				return lookup.AccountKey.String() + "#" + strconv.Itoa(int(indexes[i]))
			}
			i -= len(indexes)
		}
	}
	return ""
}

// Serialize returns the exact bytes a transaction was parsed from
func (s *Strategy) Serialize(parsed *model.ParsedTransaction) (string, error) {
	if parsed == nil || len(parsed.Raw) == 0 {
		return "", model.NewError(model.KindMalformedTransaction, "parsed transaction has no raw bytes")
	}
	return base64.StdEncoding.EncodeToString(parsed.Raw), nil
}

// GetMessage returns the base64 message bytes of a transaction
func (s *Strategy) GetMessage(tx string) (string, error) {
	raw, err := decodeBase64(tx)
	if err != nil {
		return "", err
	}
	decoded, err := decodeTransaction(raw)
	if err != nil {
		return "", err
	}
	msgBytes, err := messageBytes(&decoded.Message)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(msgBytes), nil
}

// GetTransaction wraps a base64 message into an unsigned transaction
func (s *Strategy) GetTransaction(message string) (string, error) {
	raw, err := decodeBase64(message)
	if err != nil {
		return "", err
	}
	msg, err := decodeMessage(raw)
	if err != nil {
		return "", err
	}
	return encodeTransaction(unsignedTransaction(msg))
}

// AppendSignature places a base58 signature into the slot of signer.
// Only that slot changes.
func (s *Strategy) AppendSignature(signer model.ChainPublicKey, signature string, tx string) (string, error) {
	raw, err := decodeBase64(tx)
	if err != nil {
		return "", err
	}
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return "", model.WrapError(model.KindMalformedTransaction, "invalid signature", err)
	}
	pub, err := parsePublicKey(signer.Contents)
	if err != nil {
		return "", err
	}
	decoded, err := decodeTransaction(raw)
	if err != nil {
		return "", err
	}

	// Find position of signer in account keys
	pos := signerIndex(&decoded.Message, pub)
	if pos < 0 {
		return "", model.Errorf(model.KindSignerNotFound, "%s is not a signer of the transaction", pub)
	}
	decoded.Signatures[pos] = sig
	return encodeTransaction(decoded)
}

// signerIndex returns the signature slot of key, or -1
func signerIndex(msg *solana.Message, key solana.PublicKey) int {
	for i := 0; i < int(msg.Header.NumRequiredSignatures); i++ {
		if msg.AccountKeys[i] == key {
			return i
		}
	}
	return -1
}
