// Package chainkit is a chain-agnostic wallet engine. An Engine dispatches every operation to the
// strategy registered for the requested chain and runs CPU-bound work on bounded workers that
// give up as soon as the caller's context is done.
package chainkit

import (
	"context"

	"github.com/AlexZinkM/chainkit/internal/derivation"
	"github.com/AlexZinkM/chainkit/internal/model"
)

// Keys is implemented by every chain strategy
type Keys interface {
	Chain() model.Chain
	Curve() model.Curve
	// Template returns the path template for pathType, with {i} standing for the index
	Template(pathType model.DerivationPathType) (string, error)
	DeriveKey(seed []byte, path derivation.Path) (*model.ChainPrivateKey, error)
	DeriveFromData(data []byte) (*model.ChainPrivateKey, error)
	RawPrivateKey(key string) (*model.ChainPrivateKey, error)
	IsValid(address string) bool
}

// MessageSigner signs free-form messages
type MessageSigner interface {
	SignMessage(message string, signers []model.ChainPrivateKey) (string, error)
}

// MessageVerifier checks a SignMessage signature against an address.
// message takes the same text form SignMessage accepts.
type MessageVerifier interface {
	VerifyMessage(address, message, signature string) (bool, error)
}

// TypedDataSigner signs structured payloads reduced to a typed digest
type TypedDataSigner interface {
	SignTypedData(typedData string, signers []model.ChainPrivateKey) (string, error)
}

// TransactionCodec reads, rewrites and signs serialized transactions
type TransactionCodec interface {
	ParseTransaction(tx string) (*model.ParsedTransaction, error)
	Serialize(parsed *model.ParsedTransaction) (string, error)
	GetMessage(tx string) (string, error)
	SignTransaction(tx string, signers []model.ChainPrivateKey, params *model.TransactionParameters) (*model.ChainTransaction, error)
	AppendSignature(signer model.ChainPublicKey, signature string, tx string) (string, error)
	ModifyTransaction(tx string, owner model.ChainPrivateKey, params *model.TransactionParameters) (string, error)
}

// TransactionBuilder builds unsigned transfers
type TransactionBuilder interface {
	SendTransaction(sender, receiver model.ChainPublicKey, amount string, params *model.TransactionParameters) (string, error)
	TokenTransaction(destination model.TokenDestination, owner, token model.ChainPublicKey,
		kind model.TransactionKind, params *model.TransactionParameters) (string, error)
}

// AddressDeriver computes program-derived and associated token addresses
type AddressDeriver interface {
	ProgramAddress(seeds []string, program string) (string, error)
	AssociatedTokenAddress(wallet, ownerProgram, mint string) (string, error)
}

// MessageWrapper turns a bare message into an unsigned transaction
type MessageWrapper interface {
	GetTransaction(message string) (string, error)
}

// Submitter hands a signed transaction to the network and returns its identifier
type Submitter interface {
	Chain() model.Chain
	Submit(ctx context.Context, signedTx string) (string, error)
}
