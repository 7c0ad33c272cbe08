package solana

import (
	"encoding/base64"
	"encoding/binary"
	"testing"

	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solanaKey(address string) model.ChainPublicKey {
	return model.ChainPublicKey{Contents: address, Chain: model.ChainSolana}
}

func withBlockhash(hash string) *model.TransactionParameters {
	return &model.TransactionParameters{
		TransactionType: model.TransactionLegacy,
		ExternalAddress: &model.ExternalAddress{RecentBlockhash: hash},
	}
}

func decodeTestTx(t *testing.T, tx string) *solana.Transaction {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(tx)
	require.NoError(t, err)
	decoded, err := decodeTransaction(raw)
	require.NoError(t, err)
	return decoded
}

func programOf(msg *solana.Message, i int) solana.PublicKey {
	return msg.AccountKeys[msg.Instructions[i].ProgramIDIndex]
}

func TestSendTransaction(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"smallest amount", "0.000000001", solTransferSmallest},
		{"non smallest amount", "0.000001001", solTransferNonSmallest},
		{"one SOL", "1", solTransferOne},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := testStrategy.SendTransaction(solanaKey(elegantAddress), solanaKey(coffeeAddress), tt.amount, withBlockhash(solTransferBlockhash))
			require.NoError(t, err)
			assert.Equal(t, tt.want, tx)
		})
	}
}

func TestSendTransactionInstructions(t *testing.T) {
	limit := uint32(200_000)
	price := uint64(5_000)
	params := withBlockhash(solTransferBlockhash)
	params.ComputeBudgetUnitLimit = &limit
	params.ComputeBudgetUnitPrice = &price
	params.Memo = "order 42"
	params.References = []string{skiAddress}

	tx, err := testStrategy.SendTransaction(solanaKey(elegantAddress), solanaKey(coffeeAddress), "0.5", params)
	require.NoError(t, err)

	decoded := decodeTestTx(t, tx)
	msg := &decoded.Message
	require.Len(t, msg.Instructions, 4)
	assert.Equal(t, ComputeBudgetProgramID, programOf(msg, 0))
	assert.Equal(t, ComputeBudgetProgramID, programOf(msg, 1))
	assert.Equal(t, MemoProgramID, programOf(msg, 2))
	assert.Equal(t, solana.SystemProgramID, programOf(msg, 3))

	assert.Equal(t, []byte{2, 0x40, 0x0d, 0x03, 0x00}, []byte(msg.Instructions[0].Data))
	assert.Equal(t, byte(3), msg.Instructions[1].Data[0])
	assert.Equal(t, price, binary.LittleEndian.Uint64(msg.Instructions[1].Data[1:]))
	assert.Equal(t, "order 42", string(msg.Instructions[2].Data))

	transfer := msg.Instructions[3]
	require.Len(t, transfer.Accounts, 3)
	assert.Equal(t, elegantAddress, msg.AccountKeys[transfer.Accounts[0]].String())
	assert.Equal(t, coffeeAddress, msg.AccountKeys[transfer.Accounts[1]].String())
	assert.Equal(t, skiAddress, msg.AccountKeys[transfer.Accounts[2]].String())
	assert.Equal(t, uint64(500_000_000), binary.LittleEndian.Uint64(transfer.Data[4:]))

	// only the payer signs, the reference stays readonly
	assert.Equal(t, uint8(1), msg.Header.NumRequiredSignatures)
	assert.False(t, msg.IsWritableStatic(solana.MustPublicKeyFromBase58(skiAddress)))
}

func TestSendTransactionErrors(t *testing.T) {
	tests := []struct {
		name     string
		sender   string
		receiver string
		amount   string
		params   *model.TransactionParameters
		kind     model.Kind
	}{
		{"bad sender", "sender", coffeeAddress, "1", nil, model.KindInvalidAddress},
		{"bad receiver", elegantAddress, "receiver", "1", nil, model.KindInvalidAddress},
		{"bad amount", elegantAddress, coffeeAddress, "one", nil, model.KindInvalidAmount},
		{"too many decimals", elegantAddress, coffeeAddress, "0.0000000001", nil, model.KindInvalidAmount},
		{"bad blockhash", elegantAddress, coffeeAddress, "1", withBlockhash("blockhash"), model.KindMalformedTransaction},
		{"bad reference", elegantAddress, coffeeAddress, "1", &model.TransactionParameters{References: []string{"ref"}}, model.KindInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testStrategy.SendTransaction(solanaKey(tt.sender), solanaKey(tt.receiver), tt.amount, tt.params)
			assert.Equal(t, tt.kind, model.KindOf(err))
		})
	}
}

func tokenParams(hash string) *model.TransactionParameters {
	params := withBlockhash(hash)
	decimals := uint8(0)
	params.Decimals = &decimals
	return params
}

func TestTokenTransactionWalletDestination(t *testing.T) {
	wallet := solanaKey(elegantAddress)
	tx, err := testStrategy.TokenTransaction(
		model.TokenDestination{Wallet: &wallet},
		solanaKey(coffeeAddress),
		solanaKey(tokenMint),
		model.TransactionKind{Token: &model.TokenTransfer{Amount: "1"}},
		tokenParams(tokenWalletBlockhash),
	)
	require.NoError(t, err)
	assert.Equal(t, tokenWalletTx, tx)
}

func TestTokenTransactionAccountDestination(t *testing.T) {
	tx, err := testStrategy.TokenTransaction(
		model.TokenDestination{Account: tokenAccountDestination},
		solanaKey(coffeeAddress),
		solanaKey(tokenMint),
		model.TransactionKind{Token: &model.TokenTransfer{Amount: "1"}},
		tokenParams(tokenAccountBlockhash),
	)
	require.NoError(t, err)
	assert.Equal(t, tokenAccountTx, tx)
}

func TestTokenTransactionMemoAndClose(t *testing.T) {
	wallet := solanaKey(elegantAddress)
	params := tokenParams(tokenWalletBlockhash)
	params.Memo = "invoice"
	params.OwnerProgram = Token2022ProgramID.String()
	decimals := uint8(6)
	params.Decimals = &decimals

	tx, err := testStrategy.TokenTransaction(
		model.TokenDestination{Wallet: &wallet},
		solanaKey(coffeeAddress),
		solanaKey(tokenMint),
		model.TransactionKind{Token: &model.TokenTransfer{Amount: "2500000", CloseAccount: true}},
		params,
	)
	require.NoError(t, err)

	msg := &decodeTestTx(t, tx).Message
	require.Len(t, msg.Instructions, 4)
	assert.Equal(t, AssociatedTokenProgramID, programOf(msg, 0))
	assert.Equal(t, MemoProgramID, programOf(msg, 1))
	assert.Equal(t, Token2022ProgramID, programOf(msg, 2))
	assert.Equal(t, Token2022ProgramID, programOf(msg, 3))

	transfer := msg.Instructions[2].Data
	require.Len(t, transfer, 10)
	assert.Equal(t, byte(12), transfer[0])
	assert.Equal(t, uint64(2_500_000), binary.LittleEndian.Uint64(transfer[1:9]))
	assert.Equal(t, byte(6), transfer[9])
	assert.Equal(t, []byte{9}, []byte(msg.Instructions[3].Data))

	source, err := testStrategy.AssociatedTokenAddress(coffeeAddress, Token2022ProgramID.String(), tokenMint)
	require.NoError(t, err)
	assert.Equal(t, source, msg.AccountKeys[msg.Instructions[3].Accounts[0]].String())
}

func TestTokenTransactionErrors(t *testing.T) {
	wallet := solanaKey(elegantAddress)
	fungible := model.TransactionKind{Token: &model.TokenTransfer{Amount: "1"}}
	tests := []struct {
		name        string
		destination model.TokenDestination
		mint        string
		kind        model.TransactionKind
		params      *model.TransactionParameters
		want        model.Kind
	}{
		{"nft", model.TokenDestination{Wallet: &wallet}, tokenMint, model.TransactionKind{NFT: &model.NFTTransfer{Amount: 1}}, nil, model.KindUnsupportedToken},
		{"mint is not an address", model.TokenDestination{Wallet: &wallet}, "mint", fungible, nil, model.KindUnsupportedToken},
		{"unsupported program", model.TokenDestination{Wallet: &wallet}, tokenMint, fungible, &model.TransactionParameters{OwnerProgram: MemoProgramID.String()}, model.KindUnsupportedToken},
		{"bad amount", model.TokenDestination{Wallet: &wallet}, tokenMint, model.TransactionKind{Token: &model.TokenTransfer{Amount: "1.5"}}, nil, model.KindInvalidAmount},
		{"no destination", model.TokenDestination{}, tokenMint, fungible, nil, model.KindMissingParameters},
		{"both destinations", model.TokenDestination{Account: tokenAccountDestination, Wallet: &wallet}, tokenMint, fungible, nil, model.KindMissingParameters},
		{"bad account", model.TokenDestination{Account: "account"}, tokenMint, fungible, nil, model.KindInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testStrategy.TokenTransaction(tt.destination, solanaKey(coffeeAddress), solanaKey(tt.mint), tt.kind, tt.params)
			assert.Equal(t, tt.want, model.KindOf(err))
		})
	}
}
