package solana

import (
	"strconv"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
)

// Override names accepted by ModifyTransaction, applied in this order
const (
	OverrideSwapSlippageBps  = "swap_slippage_bps"
	OverrideComputeUnitLimit = "compute_unit_limit"
	OverrideComputeUnitPrice = "compute_unit_price"
	OverrideMemo             = "memo"
	OverrideRecentBlockhash  = "recent_blockhash"
)

var overrideOrder = []string{
	OverrideSwapSlippageBps,
	OverrideComputeUnitLimit,
	OverrideComputeUnitPrice,
	OverrideMemo,
	OverrideRecentBlockhash,
}

// ModifyTransaction rewrites the message of tx with the named overrides in params.
// The result carries no signatures since the signed bytes changed. owner must be one
// of the transaction's signers and is the signer of an added memo.
func (s *Strategy) ModifyTransaction(tx string, owner model.ChainPrivateKey, params *model.TransactionParameters) (string, error) {
	if params == nil {
		return "", model.NewError(model.KindMissingParameters, "no parameters were provided")
	}
	known := make(map[string]bool, len(overrideOrder))
	for _, name := range overrideOrder {
		known[name] = true
	}
	for name := range params.Overrides {
		if !known[name] {
			return "", model.Errorf(model.KindUnsupportedParameter, "unknown override %q", name)
		}
	}

	raw, err := decodeBase64(tx)
	if err != nil {
		return "", err
	}
	decoded, err := decodeTransaction(raw)
	if err != nil {
		return "", err
	}
	ownerKey, err := ownerPublicKey(owner)
	if err != nil {
		return "", err
	}
	ownerIndex := signerIndex(&decoded.Message, ownerKey)
	if ownerIndex < 0 {
		return "", model.Errorf(model.KindSignerNotFound, "%s is not a signer of the transaction", ownerKey)
	}

	msg := &decoded.Message
	for _, name := range overrideOrder {
		value, ok := params.Overrides[name]
		if !ok {
			continue
		}
		if err := applyOverride(msg, name, value, ownerKey); err != nil {
			return "", err
		}
	}

	for i := range decoded.Signatures {
		decoded.Signatures[i] = solana.Signature{}
	}
	s.log.WithField("overrides", len(params.Overrides)).Debug("modified transaction")
	return encodeTransaction(decoded)
}

func applyOverride(msg *solana.Message, name, value string, owner solana.PublicKey) error {
	switch name {
	case OverrideSwapSlippageBps:
		bps, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return model.WrapError(model.KindUnsupportedParameter, "invalid "+name, err)
		}
		return setSwapSlippage(msg, uint16(bps))
	case OverrideComputeUnitLimit:
		units, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return model.WrapError(model.KindUnsupportedParameter, "invalid "+name, err)
		}
		return prependInstruction(msg, computeUnitLimit(uint32(units)))
	case OverrideComputeUnitPrice:
		price, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return model.WrapError(model.KindUnsupportedParameter, "invalid "+name, err)
		}
		return prependInstruction(msg, computeUnitPrice(price))
	case OverrideMemo:
		programIndex, err := programKeyIndex(msg, MemoProgramID)
		if err != nil {
			return err
		}
		msg.Instructions = append(msg.Instructions, solana.CompiledInstruction{
			ProgramIDIndex: uint16(programIndex),
			Accounts:       []uint16{uint16(signerIndex(msg, owner))},
			Data:           []byte(value),
		})
		return nil
	case OverrideRecentBlockhash:
		hash, err := solana.HashFromBase58(value)
		if err != nil {
			return model.WrapError(model.KindMalformedTransaction, "invalid recent blockhash", err)
		}
		msg.RecentBlockhash = hash
		return nil
	}
	return model.Errorf(model.KindUnsupportedParameter, "unknown override %q", name)
}

// ownerPublicKey takes the public key of owner, falling back to the keypair's public half
func ownerPublicKey(owner model.ChainPrivateKey) (solana.PublicKey, error) {
	if owner.PublicKey.Contents != "" {
		return parsePublicKey(owner.PublicKey.Contents)
	}
	priv, err := keypair(owner)
	if err != nil {
		return solana.PublicKey{}, err
	}
	defer clear(priv)
	return priv.PublicKey(), nil
}
