package solana

import (
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
	computebudget "github.com/gagliardetto/solana-go/programs/compute-budget"
)

func computeUnitLimit(units uint32) solana.Instruction {
	return computebudget.NewSetComputeUnitLimitInstruction(units).Build()
}

func computeUnitPrice(microLamports uint64) solana.Instruction {
	return computebudget.NewSetComputeUnitPriceInstruction(microLamports).Build()
}

// budgetInstructions returns the limit and price instructions requested by params, in that order
func budgetInstructions(params *model.TransactionParameters) []solana.Instruction {
	var out []solana.Instruction
	if params.ComputeBudgetUnitLimit != nil {
		out = append(out, computeUnitLimit(*params.ComputeBudgetUnitLimit))
	}
	if params.ComputeBudgetUnitPrice != nil {
		out = append(out, computeUnitPrice(*params.ComputeBudgetUnitPrice))
	}
	return out
}

// prependInstruction inserts ix as the first instruction of a compiled message.
// ix must not reference any account.
func prependInstruction(msg *solana.Message, ix solana.Instruction) error {
	if len(ix.Accounts()) != 0 {
		return model.NewError(model.KindMalformedTransaction, "prepended instruction must not take accounts")
	}
	data, err := ix.Data()
	if err != nil {
		return model.WrapError(model.KindMalformedTransaction, "instruction data", err)
	}

	programIndex, err := programKeyIndex(msg, ix.ProgramID())
	if err != nil {
		return err
	}

	compiled := solana.CompiledInstruction{
		ProgramIDIndex: uint16(programIndex),
		Accounts:       []uint16{},
		Data:           data,
	}
	msg.Instructions = append([]solana.CompiledInstruction{compiled}, msg.Instructions...)
	return nil
}

// programKeyIndex returns the static index of programID. A missing key is appended as a
// readonly non-signer and lookup-table account indexes are shifted past it.
func programKeyIndex(msg *solana.Message, programID solana.PublicKey) (int, error) {
	for i, key := range msg.AccountKeys {
		if key == programID {
			return i, nil
		}
	}
	static := len(msg.AccountKeys)
	if static+msg.AddressTableLookups.NumLookups() >= 256 {
		return 0, model.NewError(model.KindMalformedTransaction, "account table is full")
	}
	for i := range msg.Instructions {
		for j, acc := range msg.Instructions[i].Accounts {
			if int(acc) >= static {
				msg.Instructions[i].Accounts[j] = acc + 1
			}
		}
	}
	msg.AccountKeys = append(msg.AccountKeys, programID)
	msg.Header.NumReadonlyUnsignedAccounts++
	return static, nil
}
