package ethereum

import (
	"math/big"
	"strconv"

	"github.com/AlexZinkM/chainkit/internal/model"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Override names accepted by ModifyTransaction, applied in this order
const (
	OverrideChainID              = "chain_id"
	OverrideNonce                = "nonce"
	OverrideGasLimit             = "gas_limit"
	OverrideGasPrice             = "gas_price"
	OverrideMaxFeePerGas         = "max_fee_per_gas"
	OverrideMaxPriorityFeePerGas = "max_priority_fee_per_gas"
)

var overrideOrder = []string{
	OverrideChainID,
	OverrideNonce,
	OverrideGasLimit,
	OverrideGasPrice,
	OverrideMaxFeePerGas,
	OverrideMaxPriorityFeePerGas,
}

func parseHexTransaction(tx string) (*transaction, error) {
	raw, err := decodeHex(tx)
	if err != nil {
		return nil, err
	}
	return decodeTransaction(raw)
}

// ParseTransaction decodes a hex legacy, EIP-2930 or EIP-1559 transaction
func (s *Strategy) ParseTransaction(tx string) (*model.ParsedTransaction, error) {
	raw, err := decodeHex(tx)
	if err != nil {
		return nil, err
	}
	decoded, err := decodeTransaction(raw)
	if err != nil {
		return nil, err
	}
	payload, err := decoded.signingPayload()
	if err != nil {
		return nil, err
	}

	inner := decoded.inner
	nonce := inner.Nonce()
	parsed := &model.ParsedTransaction{
		Chain:      model.ChainEthereum,
		Version:    decoded.version(),
		Signers:    []string{},
		ChainID:    decoded.chainID.String(),
		Nonce:      &nonce,
		Value:      inner.Value().String(),
		Fee:        map[string]string{"gasLimit": strconv.FormatUint(inner.Gas(), 10)},
		Message:    encodeHex(payload),
		Signatures: []model.ParsedSignature{{Signed: decoded.signed()}},
		Raw:        raw,
	}
	if inner.Type() == DynamicFeeTxType {
		parsed.Fee["maxFeePerGas"] = inner.GasFeeCap().String()
		parsed.Fee["maxPriorityFeePerGas"] = inner.GasTipCap().String()
	} else {
		parsed.Fee["gasPrice"] = inner.GasPrice().String()
	}

	call := model.ParsedInstruction{Data: encodeHex(inner.Data())}
	if to := inner.To(); to != nil {
		parsed.To = to.Hex()
		parsed.Accounts = []string{parsed.To}
		call.Program = parsed.To
	}
	for _, tuple := range inner.AccessList() {
		parsed.Accounts = append(parsed.Accounts, tuple.Address.Hex())
	}
	parsed.Instructions = []model.ParsedInstruction{call}

	if decoded.signed() {
		sender, err := decoded.sender()
		if err != nil {
			return nil, err
		}
		parsed.Signers = []string{sender.Hex()}
		parsed.Signatures[0].Signer = parsed.Signers[0]
		parsed.Signatures[0].Signature = encodeHex(withLegacyV(decoded.signature()))
	}
	return parsed, nil
}

// Serialize returns the bytes the transaction was parsed from
func (s *Strategy) Serialize(parsed *model.ParsedTransaction) (string, error) {
	if parsed == nil || len(parsed.Raw) == 0 {
		return "", model.NewError(model.KindMalformedTransaction, "parsed transaction holds no bytes")
	}
	return encodeHex(parsed.Raw), nil
}

// GetMessage returns the hex signing payload whose keccak hash is signed
func (s *Strategy) GetMessage(tx string) (string, error) {
	decoded, err := parseHexTransaction(tx)
	if err != nil {
		return "", err
	}
	payload, err := decoded.signingPayload()
	if err != nil {
		return "", err
	}
	return encodeHex(payload), nil
}

// AppendSignature attaches a 65-byte r||s||v hex signature made by signer.
// v may be the recovery id or 27/28.
func (s *Strategy) AppendSignature(signer model.ChainPublicKey, signature string, tx string) (string, error) {
	decoded, err := parseHexTransaction(tx)
	if err != nil {
		return "", err
	}
	addr, err := parseAddress(signer.Contents)
	if err != nil {
		return "", err
	}
	sig, err := decodeHex(signature)
	if err != nil {
		return "", err
	}
	normalized, err := recoveryID(sig)
	if err != nil {
		return "", err
	}
	r, sv := new(big.Int).SetBytes(normalized[:32]), new(big.Int).SetBytes(normalized[32:64])
	if !crypto.ValidateSignatureValues(normalized[64], r, sv, true) {
		return "", model.NewError(model.KindMalformedTransaction, "signature values are out of range or s is not canonical")
	}
	recovered, err := recoverAddress(decoded.signingHash(), normalized)
	if err != nil {
		return "", err
	}
	if recovered != addr {
		return "", model.Errorf(model.KindSignerNotFound, "signature was not made by %s", signer.Contents)
	}
	if err := decoded.setSignature(normalized); err != nil {
		return "", err
	}
	return decoded.hex()
}

// ModifyTransaction applies the named overrides in params and returns the unsigned result.
// A signed transaction must have been signed by owner.
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

	decoded, err := parseHexTransaction(tx)
	if err != nil {
		return "", err
	}
	ownerAddr, err := ownerAddress(owner)
	if err != nil {
		return "", err
	}
	if decoded.signed() {
		sender, err := decoded.sender()
		if err != nil {
			return "", err
		}
		if sender != ownerAddr {
			return "", model.Errorf(model.KindSignerNotFound, "%s did not sign the transaction", ownerAddr.Hex())
		}
	}

	e := decoded.envelope()
	for _, name := range overrideOrder {
		value, ok := params.Overrides[name]
		if !ok {
			continue
		}
		if err := applyOverride(e, name, value); err != nil {
			return "", err
		}
	}
	s.log.WithField("overrides", len(params.Overrides)).Debug("modified transaction")
	// a legacy transaction without a chain id goes back to its six-field form
	return e.transaction(e.txType == LegacyTxType && e.chainID.Sign() == 0).hex()
}

func applyOverride(e *envelope, name, value string) error {
	dynamic := e.txType == DynamicFeeTxType
	switch name {
	case OverrideNonce, OverrideGasLimit:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return model.WrapError(model.KindUnsupportedParameter, name+" must be an unsigned integer", err)
		}
		if name == OverrideNonce {
			e.nonce = n
		} else {
			e.gas = n
		}
		return nil
	}

	n, err := parseUint256(name, value)
	if err != nil {
		return err
	}
	switch name {
	case OverrideChainID:
		if n.Sign() == 0 {
			return model.NewError(model.KindUnsupportedParameter, "chain_id must be positive")
		}
		e.chainID = n
	case OverrideGasPrice:
		if dynamic {
			return model.NewError(model.KindUnsupportedParameter, "gas_price does not apply to eip1559 transactions")
		}
		e.gasPrice = n
	case OverrideMaxFeePerGas, OverrideMaxPriorityFeePerGas:
		if !dynamic {
			return model.Errorf(model.KindUnsupportedParameter, "%s only applies to eip1559 transactions", name)
		}
		if name == OverrideMaxFeePerGas {
			e.feeCap = n
		} else {
			e.tipCap = n
		}
	}
	return nil
}

// parseUint256 reads a decimal or 0x hex quantity
func parseUint256(name, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 0)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return nil, model.Errorf(model.KindUnsupportedParameter, "%s must be an unsigned 256-bit integer, got %q", name, value)
	}
	return n, nil
}

func ownerAddress(owner model.ChainPrivateKey) (gethcommon.Address, error) {
	if owner.PublicKey.Contents != "" {
		return parseAddress(owner.PublicKey.Contents)
	}
	if owner.Contents == "" {
		return gethcommon.Address{}, model.NewError(model.KindInvalidKey, "owner has neither an address nor a key")
	}
	_, addr, err := signingKey(owner)
	return addr, err
}
