package model

// SolanaTransactionType selects the wire layout used when decoding a Solana transaction
type SolanaTransactionType string

const (
	TransactionLegacy    SolanaTransactionType = "legacy"
	TransactionVersioned SolanaTransactionType = "versioned"
)

// ExternalAddress carries values fetched from outside the engine
type ExternalAddress struct {
	RecentBlockhash string `json:"recentBlockhash"`
}

// TransactionParameters holds the per-chain knobs for building and signing.
// Fields that do not apply to the selected chain are ignored.
type TransactionParameters struct {
	// Solana
	ExternalAddress        *ExternalAddress      `json:"externalAddress,omitempty"`
	TransactionType        SolanaTransactionType `json:"transactionType,omitempty"`
	OwnerProgram           string                `json:"ownerProgram,omitempty"`
	Decimals               *uint8                `json:"decimals,omitempty"`
	Memo                   string                `json:"memo,omitempty"`
	References             []string              `json:"references,omitempty"`
	SwapSlippageBps        *uint16               `json:"swapSlippageBps,omitempty"`
	ComputeBudgetUnitPrice *uint64               `json:"computeBudgetUnitPrice,omitempty"`
	ComputeBudgetUnitLimit *uint32               `json:"computeBudgetUnitLimit,omitempty"`

	// Ethereum
	ChainID              string  `json:"chainId,omitempty"`
	Nonce                *uint64 `json:"nonce,omitempty"`
	GasLimit             *uint64 `json:"gasLimit,omitempty"`
	GasPrice             string  `json:"gasPrice,omitempty"`
	MaxFeePerGas         string  `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string  `json:"maxPriorityFeePerGas,omitempty"`
	Data                 string  `json:"data,omitempty"`

	// Overrides are applied by name in ModifyTransaction
	Overrides map[string]string `json:"overrides,omitempty"`
}

// TokenTransfer moves Amount base units of a fungible token
type TokenTransfer struct {
	Amount       string `json:"amount"`
	CloseAccount bool   `json:"closeAccount,omitempty"`
}

// NFTTransfer moves a non-fungible token
type NFTTransfer struct {
	Amount uint64 `json:"amount"`
	ID     string `json:"id,omitempty"`
}

// TransactionKind selects what a token transaction does. Exactly one field is set.
type TransactionKind struct {
	Token *TokenTransfer `json:"token,omitempty"`
	NFT   *NFTTransfer   `json:"nft,omitempty"`
}

// TokenDestination is either an existing token account or a wallet whose
// associated token account is created by the transaction. Exactly one field is set.
type TokenDestination struct {
	Account string          `json:"account,omitempty"`
	Wallet  *ChainPublicKey `json:"wallet,omitempty"`
}

// ChainTransaction is the result of signing
type ChainTransaction struct {
	Tx                  string           `json:"tx"`
	Signers             []ChainPublicKey `json:"signers"`
	Accounts            []ChainPublicKey `json:"accounts"`
	FullSignature       string           `json:"fullSignature,omitempty"`
	Signatures          []string         `json:"signatures,omitempty"`
	InstructionPrograms []string         `json:"instructionPrograms,omitempty"`
}

// SignaturePayload records who signed which bytes
type SignaturePayload struct {
	Signer    string `json:"signer"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// ParsedSignature is a signature slot of a parsed transaction
type ParsedSignature struct {
	Signer    string `json:"signer"`
	Signature string `json:"signature,omitempty"`
	Signed    bool   `json:"signed"`
}

// ParsedInstruction is a single instruction or call of a parsed transaction
type ParsedInstruction struct {
	Program  string   `json:"program"`
	Accounts []string `json:"accounts,omitempty"`
	Data     string   `json:"data"`
}

// ParsedTransaction is the chain-neutral view of a transaction.
// Raw holds the exact input bytes and is what Serialize returns.
type ParsedTransaction struct {
	Chain           Chain               `json:"chain"`
	Version         string              `json:"version"`
	Signers         []string            `json:"signers"`
	Accounts        []string            `json:"accounts,omitempty"`
	Signatures      []ParsedSignature   `json:"signatures"`
	Instructions    []ParsedInstruction `json:"instructions"`
	RecentBlockhash string              `json:"recentBlockhash,omitempty"`
	ChainID         string              `json:"chainId,omitempty"`
	Nonce           *uint64             `json:"nonce,omitempty"`
	To              string              `json:"to,omitempty"`
	Value           string              `json:"value,omitempty"`
	Fee             map[string]string   `json:"fee,omitempty"`
	Message         string              `json:"message"`
	Raw             []byte              `json:"-"`
}
