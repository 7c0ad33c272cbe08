package model

// MnemonicRequest represents request for POST /v1/mnemonic
type MnemonicRequest struct {
	Length int `json:"length" example:"12"`
}

// DeriveRequest represents request for POST /v1/derive
type DeriveRequest struct {
	Chain      Chain         `json:"chain" example:"solana"`
	Mnemonic   MnemonicWords `json:"mnemonic"`
	Passphrase string        `json:"passphrase,omitempty"`
	Derivation Derivation    `json:"derivation"`
}

// DeriveResponse represents response for POST /v1/derive
type DeriveResponse struct {
	Keys []DerivedPrivateKey `json:"keys"`
}

// DeriveFromDataRequest represents request for POST /v1/derive/data
type DeriveFromDataRequest struct {
	Chain Chain  `json:"chain" example:"solana"`
	Data  []byte `json:"data" swaggertype:"string" format:"base64"`
}

// RawKeyRequest represents request for POST /v1/keys/raw and /v1/keys/parse.
// Chain is ignored by /v1/keys/parse.
type RawKeyRequest struct {
	Chain Chain  `json:"chain,omitempty" example:"ethereum"`
	Key   string `json:"key"`
}

// AddressRequest represents request for POST /v1/address/validate.
// Without a chain the address is matched against every registered chain.
type AddressRequest struct {
	Chain   Chain  `json:"chain,omitempty"`
	Address string `json:"address"`
}

// AddressValidation represents response for POST /v1/address/validate
type AddressValidation struct {
	Valid bool  `json:"valid"`
	Chain Chain `json:"chain,omitempty"`
}

// ProgramAddressRequest represents request for POST /v1/address/program
type ProgramAddressRequest struct {
	Chain   Chain    `json:"chain" example:"solana"`
	Seeds   []string `json:"seeds"`
	Program string   `json:"program"`
}

// AssociatedAddressRequest represents request for POST /v1/address/associated
type AssociatedAddressRequest struct {
	Chain        Chain  `json:"chain" example:"solana"`
	Wallet       string `json:"wallet"`
	OwnerProgram string `json:"ownerProgram"`
	Mint         string `json:"mint"`
}

// AddressResponse carries a single derived address
type AddressResponse struct {
	Address string `json:"address"`
}

// SendRequest represents request for POST /v1/tx/send
type SendRequest struct {
	Chain    Chain                  `json:"chain" example:"solana"`
	Sender   ChainPublicKey         `json:"sender"`
	Receiver ChainPublicKey         `json:"receiver"`
	Amount   string                 `json:"amount" example:"0.5"`
	Params   *TransactionParameters `json:"params,omitempty"`
}

// TokenRequest represents request for POST /v1/tx/token
type TokenRequest struct {
	Chain       Chain                  `json:"chain" example:"solana"`
	Destination TokenDestination       `json:"destination"`
	Owner       ChainPublicKey         `json:"owner"`
	Token       ChainPublicKey         `json:"token"`
	Kind        TransactionKind        `json:"kind"`
	Params      *TransactionParameters `json:"params,omitempty"`
}

// TransactionRequest carries an encoded transaction for parse, message and submit
type TransactionRequest struct {
	Chain Chain  `json:"chain" example:"solana"`
	Tx    string `json:"tx"`
}

// WrapMessageRequest represents request for POST /v1/tx/wrap
type WrapMessageRequest struct {
	Chain   Chain  `json:"chain" example:"solana"`
	Message string `json:"message"`
}

// ModifyRequest represents request for POST /v1/tx/modify
type ModifyRequest struct {
	Chain  Chain                  `json:"chain" example:"solana"`
	Tx     string                 `json:"tx"`
	Owner  ChainPrivateKey        `json:"owner"`
	Params *TransactionParameters `json:"params,omitempty"`
}

// SignTransactionRequest represents request for POST /v1/tx/sign
type SignTransactionRequest struct {
	Chain   Chain                  `json:"chain" example:"solana"`
	Tx      string                 `json:"tx"`
	Signers []ChainPrivateKey      `json:"signers"`
	Params  *TransactionParameters `json:"params,omitempty"`
}

// AppendSignatureRequest represents request for POST /v1/tx/append-signature
type AppendSignatureRequest struct {
	Chain     Chain          `json:"chain" example:"solana"`
	Signer    ChainPublicKey `json:"signer"`
	Signature string         `json:"signature"`
	Tx        string         `json:"tx"`
}

// TransactionResponse carries an encoded transaction
type TransactionResponse struct {
	Tx string `json:"tx"`
}

// MessageResponse represents response for POST /v1/tx/message
type MessageResponse struct {
	Message string `json:"message"`
}

// SubmitResponse represents response for POST /v1/tx/submit
type SubmitResponse struct {
	TxID string `json:"txId"`
}

// SignMessageRequest represents request for POST /v1/message/sign
type SignMessageRequest struct {
	Chain   Chain             `json:"chain" example:"ethereum"`
	Message string            `json:"message"`
	Signers []ChainPrivateKey `json:"signers"`
}

// SignTypedDataRequest represents request for POST /v1/typed-data/sign
type SignTypedDataRequest struct {
	Chain     Chain             `json:"chain" example:"ethereum"`
	TypedData string            `json:"typedData"`
	Signers   []ChainPrivateKey `json:"signers"`
}

// VerifyMessageRequest represents request for POST /v1/message/verify
type VerifyMessageRequest struct {
	Chain     Chain  `json:"chain" example:"ethereum"`
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// VerificationResponse reports the outcome of a signature check
type VerificationResponse struct {
	Valid bool `json:"valid"`
}

// SignatureResponse carries a signature in the chain's text encoding
type SignatureResponse struct {
	Signature string `json:"signature"`
}

// EncryptRequest represents request for POST /v1/cipher/encrypt
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Password  string `json:"password"`
}

// EncryptResponse represents response for POST /v1/cipher/encrypt
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptRequest represents request for POST /v1/cipher/decrypt
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Password   string `json:"password"`
}

// DecryptResponse represents response for POST /v1/cipher/decrypt
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}
