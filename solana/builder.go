package solana

import (
	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/sirupsen/logrus"
)

// Create, not CreateIdempotent, of the associated token program
var createAssociatedData = []byte{0}

// SendTransaction builds an unsigned SOL transfer paid by sender.
// amount is decimal SOL.
func (s *Strategy) SendTransaction(sender, receiver model.ChainPublicKey, amount string, params *model.TransactionParameters) (string, error) {
	if params == nil {
		params = &model.TransactionParameters{}
	}
	from, err := parsePublicKey(sender.Contents)
	if err != nil {
		return "", err
	}
	to, err := parsePublicKey(receiver.Contents)
	if err != nil {
		return "", err
	}
	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return "", model.WrapError(model.KindInvalidAmount, "invalid SOL amount", err)
	}
	references, err := parseReferences(params.References)
	if err != nil {
		return "", err
	}
	blockhash, err := recentBlockhash(params)
	if err != nil {
		return "", err
	}

	instructions := budgetInstructions(params)
	if params.Memo != "" {
		instructions = append(instructions, memoInstruction(params.Memo, from))
	}
	transfer, err := retarget(system.ProgramID,
		append(solana.AccountMetaSlice{solana.Meta(from).WRITE().SIGNER(), solana.Meta(to).WRITE()}, references...),
		system.NewTransferInstruction(lamports, from, to).Build())
	if err != nil {
		return "", err
	}
	instructions = append(instructions, transfer)

	s.log.WithField("instructions", len(instructions)).Debug("built SOL transfer")
	return buildUnsigned(from, instructions, blockhash)
}

// TokenTransaction builds an unsigned TransferChecked from owner's associated token account.
// A wallet destination gets its associated token account created in the same transaction.
func (s *Strategy) TokenTransaction(destination model.TokenDestination, owner, mint model.ChainPublicKey,
	kind model.TransactionKind, params *model.TransactionParameters) (string, error) {
	if params == nil {
		params = &model.TransactionParameters{}
	}
	if kind.Token == nil {
		return "", model.NewError(model.KindUnsupportedToken, "only fungible token transfers are supported on solana")
	}

	programID := TokenProgramID
	if params.OwnerProgram != "" {
		var err error
		if programID, err = allowedProgram(params.OwnerProgram); err != nil {
			return "", err
		}
	}
	var decimals uint8
	if params.Decimals != nil {
		decimals = *params.Decimals
	}

	ownerKey, err := parsePublicKey(owner.Contents)
	if err != nil {
		return "", err
	}
	mintKey, err := solana.PublicKeyFromBase58(mint.Contents)
	if err != nil {
		return "", model.WrapError(model.KindUnsupportedToken, "token mint is not a solana address", err)
	}
	amount, err := common.ParseBaseUnits(kind.Token.Amount)
	if err != nil {
		return "", model.WrapError(model.KindInvalidAmount, "invalid token amount", err)
	}
	references, err := parseReferences(params.References)
	if err != nil {
		return "", err
	}
	blockhash, err := recentBlockhash(params)
	if err != nil {
		return "", err
	}
	source, err := associatedTokenAddress(ownerKey, programID, mintKey)
	if err != nil {
		return "", err
	}

	instructions := budgetInstructions(params)

	var target solana.PublicKey
	switch {
	case destination.Account != "" && destination.Wallet == nil:
		if target, err = parsePublicKey(destination.Account); err != nil {
			return "", err
		}
	case destination.Wallet != nil && destination.Account == "":
		wallet, err := parsePublicKey(destination.Wallet.Contents)
		if err != nil {
			return "", err
		}
		if target, err = associatedTokenAddress(wallet, programID, mintKey); err != nil {
			return "", err
		}
		instructions = append(instructions, solana.NewInstruction(AssociatedTokenProgramID, solana.AccountMetaSlice{
			solana.Meta(ownerKey).WRITE().SIGNER(),
			solana.Meta(target).WRITE(),
			solana.Meta(wallet),
			solana.Meta(mintKey),
			solana.Meta(solana.SystemProgramID),
			solana.Meta(programID),
		}, createAssociatedData))
	default:
		return "", model.NewError(model.KindMissingParameters, "destination needs exactly one of account or wallet")
	}

	if params.Memo != "" {
		instructions = append(instructions, memoInstruction(params.Memo, ownerKey))
	}

	// Owner is listed as authority and again as its own signer
	transfer, err := retarget(programID, append(solana.AccountMetaSlice{
		solana.Meta(source).WRITE(),
		solana.Meta(mintKey),
		solana.Meta(target).WRITE(),
		solana.Meta(ownerKey),
		solana.Meta(ownerKey).SIGNER(),
	}, references...), token.NewTransferCheckedInstruction(amount, decimals, source, mintKey, target, ownerKey, nil).Build())
	if err != nil {
		return "", err
	}
	instructions = append(instructions, transfer)

	if kind.Token.CloseAccount {
		closeIx, err := retarget(programID, solana.AccountMetaSlice{
			solana.Meta(source).WRITE(),
			solana.Meta(ownerKey).WRITE(),
			solana.Meta(ownerKey).SIGNER(),
		}, token.NewCloseAccountInstruction(source, ownerKey, ownerKey, nil).Build())
		if err != nil {
			return "", err
		}
		instructions = append(instructions, closeIx)
	}

	s.log.WithFields(logrus.Fields{
		"instructions": len(instructions),
		"program":      programID.String(),
	}).Debug("built token transfer")
	return buildUnsigned(ownerKey, instructions, blockhash)
}

// retarget keeps the encoded data of ix but replaces its program and account list
func retarget(programID solana.PublicKey, accounts solana.AccountMetaSlice, ix solana.Instruction) (solana.Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "instruction data", err)
	}
	return solana.NewInstruction(programID, accounts, data), nil
}

// memoInstruction writes the raw memo bytes, signed by signer
func memoInstruction(memo string, signer solana.PublicKey) solana.Instruction {
	return solana.NewInstruction(MemoProgramID, solana.AccountMetaSlice{solana.Meta(signer).SIGNER()}, []byte(memo))
}

func parseReferences(refs []string) (solana.AccountMetaSlice, error) {
	out := make(solana.AccountMetaSlice, 0, len(refs))
	for _, ref := range refs {
		key, err := parsePublicKey(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, solana.Meta(key))
	}
	return out, nil
}

// recentBlockhash reads the external blockhash, the zero hash when none is given
func recentBlockhash(params *model.TransactionParameters) (solana.Hash, error) {
	if params.ExternalAddress == nil || params.ExternalAddress.RecentBlockhash == "" {
		return solana.Hash{}, nil
	}
	hash, err := solana.HashFromBase58(params.ExternalAddress.RecentBlockhash)
	if err != nil {
		return solana.Hash{}, model.WrapError(model.KindMalformedTransaction, "invalid recent blockhash", err)
	}
	return hash, nil
}

func buildUnsigned(payer solana.PublicKey, instructions []solana.Instruction, blockhash solana.Hash) (string, error) {
	msg, err := compileMessage(payer, instructions, blockhash)
	if err != nil {
		return "", err
	}
	return encodeTransaction(unsignedTransaction(msg))
}
