package ethereum

import (
	"encoding/json"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const domainType = "EIP712Domain"

func typedDataError(format string, args ...any) error {
	return model.Errorf(model.KindMalformedTransaction, "typed data: "+format, args...)
}

// ParseTypedData decodes an eth_signTypedData_v4 payload. A missing EIP712Domain
// type is derived from the domain members that are set.
func ParseTypedData(payload string) (*apitypes.TypedData, error) {
	var td apitypes.TypedData
	if err := json.Unmarshal([]byte(payload), &td); err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "typed data is not valid json", err)
	}
	if td.PrimaryType == "" {
		return nil, typedDataError("primaryType is missing")
	}
	if td.Types == nil {
		td.Types = apitypes.Types{}
	}
	if _, ok := td.Types[domainType]; !ok {
		td.Types[domainType] = domainFields(td.Domain)
	}
	if _, ok := td.Types[td.PrimaryType]; !ok {
		return nil, typedDataError("primary type %q is not defined", td.PrimaryType)
	}
	return &td, nil
}

// domainFields lists the members of domain that are set, in their canonical order
func domainFields(domain apitypes.TypedDataDomain) []apitypes.Type {
	var fields []apitypes.Type
	if domain.Name != "" {
		fields = append(fields, apitypes.Type{Name: "name", Type: "string"})
	}
	if domain.Version != "" {
		fields = append(fields, apitypes.Type{Name: "version", Type: "string"})
	}
	if domain.ChainId != nil {
		fields = append(fields, apitypes.Type{Name: "chainId", Type: "uint256"})
	}
	if domain.VerifyingContract != "" {
		fields = append(fields, apitypes.Type{Name: "verifyingContract", Type: "address"})
	}
	if domain.Salt != "" {
		fields = append(fields, apitypes.Type{Name: "salt", Type: "bytes32"})
	}
	return fields
}

// TypedDataHash is keccak("\x19\x01" || domainSeparator || hashStruct(message))
func TypedDataHash(td *apitypes.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(*td)
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "typed data cannot be encoded", err)
	}
	return hash, nil
}

// SignTypedData signs an EIP-712 payload with a single signer and returns 0x r||s||v, v in {27,28}
func (s *Strategy) SignTypedData(typedData string, signers []model.ChainPrivateKey) (string, error) {
	key, _, err := singleSigner(signers)
	if err != nil {
		return "", err
	}
	td, err := ParseTypedData(typedData)
	if err != nil {
		return "", err
	}
	hash, err := TypedDataHash(td)
	if err != nil {
		return "", err
	}
	sig, err := crypto.Sign(hash, key)
	if err != nil {
		return "", model.WrapError(model.KindInvalidKey, "cannot sign typed data", err)
	}
	s.log.WithField("primaryType", td.PrimaryType).Debug("signed typed data")
	return encodeHex(withLegacyV(sig)), nil
}

// RecoverTypedDataSigner returns the checksummed address that signed typedData
func RecoverTypedDataSigner(typedData string, signature string) (string, error) {
	td, err := ParseTypedData(typedData)
	if err != nil {
		return "", err
	}
	hash, err := TypedDataHash(td)
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
	addr, err := recoverAddress(hash, normalized)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}
