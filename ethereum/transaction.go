package ethereum

import (
	"bytes"
	"crypto/ecdsa"
	"math/big"

	"github.com/AlexZinkM/chainkit/internal/model"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// Transaction envelope types
const (
	LegacyTxType     = types.LegacyTxType
	AccessListTxType = types.AccessListTxType
	DynamicFeeTxType = types.DynamicFeeTxType
)

const (
	bareLegacyFields = 6
	legacyFields     = 9
)

// transaction is a decoded legacy, EIP-2930 or EIP-1559 transaction.
//
// An unsigned legacy transaction carries r = s = 0 and its chain id in v, the
// EIP-155 signing form. bare marks an unsigned pre-EIP-155 transaction sent as its
// six signed fields only; it signs without a chain id.
type transaction struct {
	inner   *types.Transaction
	chainID *big.Int
	bare    bool
}

// bareLegacy is the list layout of an unsigned pre-EIP-155 transaction
type bareLegacy struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	To       *gethcommon.Address `rlp:"nil"`
	Value    *big.Int
	Data     []byte
}

// envelope is the editable content of an unsigned transaction
type envelope struct {
	txType     uint8
	chainID    *big.Int
	nonce      uint64
	gasPrice   *big.Int
	tipCap     *big.Int
	feeCap     *big.Int
	gas        uint64
	to         *gethcommon.Address
	value      *big.Int
	data       []byte
	accessList types.AccessList
}

// decodeTransaction parses raw and rejects anything that does not re-encode to the same bytes
func decodeTransaction(raw []byte) (*transaction, error) {
	if len(raw) == 0 {
		return nil, model.NewError(model.KindMalformedTransaction, "empty transaction")
	}
	var (
		tx  *transaction
		err error
	)
	if raw[0] >= 0xc0 {
		tx, err = decodeLegacy(raw)
	} else {
		tx, err = decodeTyped(raw)
	}
	if err != nil {
		return nil, err
	}
	encoded, err := tx.encode()
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(encoded, raw) {
		return nil, model.NewError(model.KindMalformedTransaction, "transaction is not canonically encoded")
	}
	return tx, nil
}

func decodeLegacy(raw []byte) (*transaction, error) {
	var fields []rlp.RawValue
	if err := rlp.DecodeBytes(raw, &fields); err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "invalid legacy transaction", err)
	}
	switch len(fields) {
	case bareLegacyFields:
		var b bareLegacy
		if err := rlp.DecodeBytes(raw, &b); err != nil {
			return nil, model.WrapError(model.KindMalformedTransaction, "invalid legacy transaction", err)
		}
		e := &envelope{
			txType:   LegacyTxType,
			chainID:  new(big.Int),
			nonce:    b.Nonce,
			gasPrice: b.GasPrice,
			gas:      b.Gas,
			to:       b.To,
			value:    b.Value,
			data:     b.Data,
		}
		return e.transaction(true), nil
	case legacyFields:
	default:
		return nil, model.Errorf(model.KindMalformedTransaction, "legacy transaction has %d fields, expected %d or %d",
			len(fields), bareLegacyFields, legacyFields)
	}

	inner := new(types.Transaction)
	if err := inner.UnmarshalBinary(raw); err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "invalid legacy transaction", err)
	}
	tx := &transaction{inner: inner}
	v, r, s := inner.RawSignatureValues()
	switch {
	case r.Sign() == 0 && s.Sign() == 0:
		tx.chainID = new(big.Int).Set(v)
	case v.IsUint64() && (v.Uint64() == 27 || v.Uint64() == 28):
		tx.chainID = new(big.Int)
	case v.Cmp(big.NewInt(35)) >= 0:
		tx.chainID = inner.ChainId()
	default:
		return nil, model.Errorf(model.KindMalformedTransaction, "invalid signature v value %s", v)
	}
	return tx, nil
}

func decodeTyped(raw []byte) (*transaction, error) {
	switch raw[0] {
	case AccessListTxType, DynamicFeeTxType:
	default:
		return nil, model.Errorf(model.KindMalformedTransaction, "unsupported transaction type 0x%x", raw[0])
	}
	inner := new(types.Transaction)
	if err := inner.UnmarshalBinary(raw); err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "invalid typed transaction", err)
	}
	if v, _, _ := inner.RawSignatureValues(); v.Cmp(big.NewInt(1)) > 0 {
		return nil, model.Errorf(model.KindMalformedTransaction, "y parity must be 0 or 1, got %s", v)
	}
	return &transaction{inner: inner, chainID: inner.ChainId()}, nil
}

// transaction builds the unsigned transaction. Legacy transactions carry the chain id in v
// unless bare.
func (e *envelope) transaction(bare bool) *transaction {
	var data types.TxData
	switch e.txType {
	case AccessListTxType:
		data = &types.AccessListTx{
			ChainID: e.chainID, Nonce: e.nonce, GasPrice: e.gasPrice, Gas: e.gas,
			To: e.to, Value: e.value, Data: e.data, AccessList: e.accessList,
		}
	case DynamicFeeTxType:
		data = &types.DynamicFeeTx{
			ChainID: e.chainID, Nonce: e.nonce, GasTipCap: e.tipCap, GasFeeCap: e.feeCap, Gas: e.gas,
			To: e.to, Value: e.value, Data: e.data, AccessList: e.accessList,
		}
	default:
		legacy := &types.LegacyTx{
			Nonce: e.nonce, GasPrice: e.gasPrice, Gas: e.gas,
			To: e.to, Value: e.value, Data: e.data,
		}
		if !bare {
			legacy.V = e.chainID
		}
		data = legacy
	}
	return &transaction{inner: types.NewTx(data), chainID: new(big.Int).Set(e.chainID), bare: bare}
}

// envelope copies the unsigned content out of tx
func (tx *transaction) envelope() *envelope {
	t := tx.inner
	return &envelope{
		txType:     t.Type(),
		chainID:    new(big.Int).Set(tx.chainID),
		nonce:      t.Nonce(),
		gasPrice:   t.GasPrice(),
		tipCap:     t.GasTipCap(),
		feeCap:     t.GasFeeCap(),
		gas:        t.Gas(),
		to:         t.To(),
		value:      t.Value(),
		data:       t.Data(),
		accessList: t.AccessList(),
	}
}

func (tx *transaction) version() string {
	switch tx.inner.Type() {
	case AccessListTxType:
		return "eip2930"
	case DynamicFeeTxType:
		return "eip1559"
	}
	return "legacy"
}

func (tx *transaction) signed() bool {
	_, r, s := tx.inner.RawSignatureValues()
	return r.Sign() != 0 || s.Sign() != 0
}

// signer selects the signing scheme for the envelope and chain id
func (tx *transaction) signer() types.Signer {
	if tx.inner.Type() != LegacyTxType {
		return types.LatestSignerForChainID(tx.chainID)
	}
	if tx.chainID.Sign() == 0 {
		return types.HomesteadSigner{}
	}
	return types.NewEIP155Signer(tx.chainID)
}

func (tx *transaction) bareFields() *bareLegacy {
	t := tx.inner
	return &bareLegacy{Nonce: t.Nonce(), GasPrice: t.GasPrice(), Gas: t.Gas(), To: t.To(), Value: t.Value(), Data: t.Data()}
}

func (tx *transaction) encode() ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if tx.bare && !tx.signed() {
		b, err = rlp.EncodeToBytes(tx.bareFields())
	} else {
		b, err = tx.inner.MarshalBinary()
	}
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "cannot encode transaction", err)
	}
	return b, nil
}

func (tx *transaction) hex() (string, error) {
	b, err := tx.encode()
	if err != nil {
		return "", err
	}
	return encodeHex(b), nil
}

// signingPayload is the preimage of signingHash
func (tx *transaction) signingPayload() ([]byte, error) {
	t := tx.inner
	var (
		b   []byte
		err error
	)
	switch t.Type() {
	case AccessListTxType:
		b, err = rlp.EncodeToBytes([]any{tx.chainID, t.Nonce(), t.GasPrice(), t.Gas(), t.To(), t.Value(), t.Data(), t.AccessList()})
		b = append([]byte{t.Type()}, b...)
	case DynamicFeeTxType:
		b, err = rlp.EncodeToBytes([]any{tx.chainID, t.Nonce(), t.GasTipCap(), t.GasFeeCap(), t.Gas(), t.To(), t.Value(), t.Data(), t.AccessList()})
		b = append([]byte{t.Type()}, b...)
	default:
		if tx.chainID.Sign() == 0 {
			b, err = rlp.EncodeToBytes(tx.bareFields())
		} else {
			b, err = rlp.EncodeToBytes([]any{t.Nonce(), t.GasPrice(), t.Gas(), t.To(), t.Value(), t.Data(), tx.chainID, uint(0), uint(0)})
		}
	}
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "cannot encode signing payload", err)
	}
	return b, nil
}

func (tx *transaction) signingHash() []byte {
	return tx.signer().Hash(tx.inner).Bytes()
}

func (tx *transaction) sign(key *ecdsa.PrivateKey) error {
	signed, err := types.SignTx(tx.inner, tx.signer(), key)
	if err != nil {
		return model.WrapError(model.KindInvalidKey, "cannot sign transaction", err)
	}
	tx.inner = signed
	return nil
}

// setSignature attaches a 65-byte r||s||recid signature
func (tx *transaction) setSignature(sig []byte) error {
	if len(sig) != crypto.SignatureLength {
		return model.Errorf(model.KindMalformedTransaction, "signature must be %d bytes", crypto.SignatureLength)
	}
	signed, err := tx.inner.WithSignature(tx.signer(), sig)
	if err != nil {
		return model.WrapError(model.KindMalformedTransaction, "cannot attach signature", err)
	}
	tx.inner = signed
	return nil
}

// signature returns r||s||recid of a signed transaction whose sender recovered
func (tx *transaction) signature() []byte {
	v, r, s := tx.inner.RawSignatureValues()
	sig := make([]byte, crypto.SignatureLength)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:64])

	recID := new(big.Int).Set(v)
	if tx.inner.Type() == LegacyTxType {
		if tx.chainID.Sign() == 0 {
			recID.Sub(recID, big.NewInt(27))
		} else {
			offset := new(big.Int).Lsh(tx.chainID, 1)
			recID.Sub(recID, offset.Add(offset, big.NewInt(35)))
		}
	}
	sig[64] = byte(recID.Uint64())
	return sig
}

func (tx *transaction) sender() (gethcommon.Address, error) {
	addr, err := types.Sender(tx.signer(), tx.inner)
	if err != nil {
		return gethcommon.Address{}, model.WrapError(model.KindMalformedTransaction, "cannot recover the transaction signer", err)
	}
	return addr, nil
}
