package solana

import (
	"bytes"
	"sort"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
)

type keyMeta struct {
	signer   bool
	writable bool
}

// compileMessage builds a legacy message with the standard key order:
// the payer first, then writable signers, readonly signers, writable and readonly
// non-signers, each group ordered by key bytes.
func compileMessage(payer solana.PublicKey, instructions []solana.Instruction, blockhash solana.Hash) (*solana.Message, error) {
	metas := map[solana.PublicKey]*keyMeta{payer: {signer: true, writable: true}}
	entry := func(key solana.PublicKey) *keyMeta {
		m, ok := metas[key]
		if !ok {
			m = &keyMeta{}
			metas[key] = m
		}
		return m
	}
	for _, ix := range instructions {
		entry(ix.ProgramID())
		for _, acc := range ix.Accounts() {
			m := entry(acc.PublicKey)
			m.signer = m.signer || acc.IsSigner
			m.writable = m.writable || acc.IsWritable
		}
	}

	var groups [4]solana.PublicKeySlice
	for key, m := range metas {
		if key == payer {
			continue
		}
		switch {
		case m.signer && m.writable:
			groups[0] = append(groups[0], key)
		case m.signer:
			groups[1] = append(groups[1], key)
		case m.writable:
			groups[2] = append(groups[2], key)
		default:
			groups[3] = append(groups[3], key)
		}
	}

	keys := solana.PublicKeySlice{payer}
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool { return bytes.Compare(g[i][:], g[j][:]) < 0 })
		keys = append(keys, g...)
	}
	if len(keys) > 256 {
		return nil, model.Errorf(model.KindMalformedTransaction, "too many accounts: %d", len(keys))
	}

	index := make(map[solana.PublicKey]uint16, len(keys))
	for i, k := range keys {
		index[k] = uint16(i)
	}

	msg := &solana.Message{
		AccountKeys: keys,
		Header: solana.MessageHeader{
			NumRequiredSignatures:       uint8(1 + len(groups[0]) + len(groups[1])),
			NumReadonlySignedAccounts:   uint8(len(groups[1])),
			NumReadonlyUnsignedAccounts: uint8(len(groups[3])),
		},
		RecentBlockhash: blockhash,
	}
	for _, ix := range instructions {
		data, err := ix.Data()
		if err != nil {
			return nil, model.WrapError(model.KindMalformedTransaction, "instruction data", err)
		}
		accounts := make([]uint16, 0, len(ix.Accounts()))
		for _, acc := range ix.Accounts() {
			accounts = append(accounts, index[acc.PublicKey])
		}
		msg.Instructions = append(msg.Instructions, solana.CompiledInstruction{
			ProgramIDIndex: index[ix.ProgramID()],
			Accounts:       accounts,
			Data:           data,
		})
	}
	return msg, nil
}

// unsignedTransaction wraps msg with default signatures for every required signer
func unsignedTransaction(msg *solana.Message) *solana.Transaction {
	return &solana.Transaction{
		Signatures: make([]solana.Signature, msg.Header.NumRequiredSignatures),
		Message:    *msg,
	}
}
