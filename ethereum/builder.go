package ethereum

import (
	"math/big"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/ethereum/go-ethereum/accounts/abi"
	gethcommon "github.com/ethereum/go-ethereum/common"
)

// Default gas limits when params carry none
const (
	TransferGas = 21_000
	TokenGas    = 100_000
)

// Token contract interfaces, one method each
const (
	erc20JSON = `[{"type":"function","name":"transfer","stateMutability":"nonpayable",
		"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]}]`
	erc721JSON = `[{"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable",
		"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],
		"outputs":[]}]`
	erc1155JSON = `[{"type":"function","name":"safeTransferFrom","stateMutability":"nonpayable",
		"inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"id","type":"uint256"},
			{"name":"value","type":"uint256"},{"name":"data","type":"bytes"}],
		"outputs":[]}]`
)

var (
	erc20ABI   = mustParseABI(erc20JSON)
	erc721ABI  = mustParseABI(erc721JSON)
	erc1155ABI = mustParseABI(erc1155JSON)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(err)
	}
	return parsed
}

// SendTransaction builds an unsigned EIP-1559 transfer of amount ether.
// params must carry the chain id and the max fee per gas.
func (s *Strategy) SendTransaction(sender, receiver model.ChainPublicKey, amount string, params *model.TransactionParameters) (string, error) {
	if _, err := parseAddress(sender.Contents); err != nil {
		return "", err
	}
	to, err := parseAddress(receiver.Contents)
	if err != nil {
		return "", err
	}
	value, err := common.EtherToWei(amount)
	if err != nil {
		return "", model.WrapError(model.KindInvalidAmount, "invalid ether amount", err)
	}
	var data []byte
	if params != nil && params.Data != "" {
		if data, err = decodeHex(params.Data); err != nil {
			return "", model.WrapError(model.KindUnsupportedParameter, "data must be hex", err)
		}
	}
	tx, err := dynamicFeeTransaction(params, to, value, data, TransferGas)
	if err != nil {
		return "", err
	}
	s.log.WithField("value", value.String()).Debug("built transfer")
	return tx.hex()
}

// TokenTransaction builds an unsigned call on the token contract.
// Fungible amounts are base units of an ERC-20. An NFT moves with ERC-721
// safeTransferFrom, or with ERC-1155 when more than one unit is sent.
func (s *Strategy) TokenTransaction(destination model.TokenDestination, owner, token model.ChainPublicKey,
	kind model.TransactionKind, params *model.TransactionParameters) (string, error) {
	recipient, err := destinationAddress(destination)
	if err != nil {
		return "", err
	}
	from, err := parseAddress(owner.Contents)
	if err != nil {
		return "", err
	}
	contract, err := parseAddress(token.Contents)
	if err != nil {
		return "", model.WrapError(model.KindUnsupportedToken, "token is not a contract address", err)
	}

	var data []byte
	switch {
	case kind.Token != nil && kind.NFT != nil, kind.Token == nil && kind.NFT == nil:
		return "", model.NewError(model.KindMissingParameters, "exactly one of token or nft must be set")
	case kind.Token != nil:
		if kind.Token.CloseAccount {
			return "", model.NewError(model.KindUnsupportedParameter, "token accounts cannot be closed on ethereum")
		}
		amount, parseErr := common.ParseBigBaseUnits(kind.Token.Amount)
		if parseErr != nil || amount.BitLen() > 256 {
			return "", model.WrapError(model.KindInvalidAmount, "invalid token amount", parseErr)
		}
		data, err = erc20ABI.Pack("transfer", recipient, amount)
	default:
		if kind.NFT.ID == "" {
			return "", model.NewError(model.KindMissingParameters, "nft id is required")
		}
		id, parseErr := common.ParseBigBaseUnits(kind.NFT.ID)
		if parseErr != nil || id.BitLen() > 256 {
			return "", model.WrapError(model.KindInvalidAmount, "invalid nft id", parseErr)
		}
		if kind.NFT.Amount <= 1 {
			data, err = erc721ABI.Pack("safeTransferFrom", from, recipient, id)
		} else {
			amount := new(big.Int).SetUint64(kind.NFT.Amount)
			data, err = erc1155ABI.Pack("safeTransferFrom", from, recipient, id, amount, []byte{})
		}
	}
	if err != nil {
		return "", model.WrapError(model.KindInvalidAmount, "cannot encode token call", err)
	}

	tx, err := dynamicFeeTransaction(params, contract, new(big.Int), data, TokenGas)
	if err != nil {
		return "", err
	}
	s.log.WithField("token", contract.Hex()).Debug("built token call")
	return tx.hex()
}

func destinationAddress(destination model.TokenDestination) (gethcommon.Address, error) {
	switch {
	case destination.Wallet != nil && destination.Account != "":
		return gethcommon.Address{}, model.NewError(model.KindMissingParameters, "destination must be either a wallet or an account")
	case destination.Wallet != nil:
		return parseAddress(destination.Wallet.Contents)
	case destination.Account != "":
		return parseAddress(destination.Account)
	}
	return gethcommon.Address{}, model.NewError(model.KindMissingParameters, "no destination")
}

func dynamicFeeTransaction(params *model.TransactionParameters, to gethcommon.Address, value *big.Int, data []byte, defaultGas uint64) (*transaction, error) {
	if params == nil {
		return nil, model.NewError(model.KindMissingParameters, "no parameters were provided")
	}
	if params.ChainID == "" {
		return nil, model.NewError(model.KindMissingParameters, "chain id is required")
	}
	if params.MaxFeePerGas == "" {
		return nil, model.NewError(model.KindMissingParameters, "max fee per gas is required")
	}
	chainID, err := parseUint256("chainId", params.ChainID)
	if err != nil {
		return nil, err
	}
	if chainID.Sign() == 0 {
		return nil, model.NewError(model.KindUnsupportedParameter, "chain id must be positive")
	}
	feeCap, err := parseUint256("maxFeePerGas", params.MaxFeePerGas)
	if err != nil {
		return nil, err
	}
	tipCap := new(big.Int)
	if params.MaxPriorityFeePerGas != "" {
		if tipCap, err = parseUint256("maxPriorityFeePerGas", params.MaxPriorityFeePerGas); err != nil {
			return nil, err
		}
	}
	if tipCap.Cmp(feeCap) > 0 {
		return nil, model.NewError(model.KindUnsupportedParameter, "max priority fee exceeds max fee")
	}

	e := &envelope{
		txType:  DynamicFeeTxType,
		chainID: chainID,
		tipCap:  tipCap,
		feeCap:  feeCap,
		gas:     defaultGas,
		to:      &to,
		value:   value,
		data:    data,
	}
	if params.Nonce != nil {
		e.nonce = *params.Nonce
	}
	if params.GasLimit != nil {
		e.gas = *params.GasLimit
	}
	return e.transaction(false), nil
}
