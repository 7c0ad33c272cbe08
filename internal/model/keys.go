package model

import "strings"

// MnemonicWords is an ordered list of mnemonic words
type MnemonicWords struct {
	Words []string `json:"words"`
}

// Joined returns the words separated by single spaces
func (m MnemonicWords) Joined() string {
	return strings.Join(m.Words, " ")
}

// MnemonicFromString splits a phrase on whitespace
func MnemonicFromString(phrase string) MnemonicWords {
	return MnemonicWords{Words: strings.Fields(phrase)}
}

// DerivationPathType selects one of the per-chain path templates
type DerivationPathType string

const (
	PathBip44Root   DerivationPathType = "bip44Root"
	PathBip44       DerivationPathType = "bip44"
	PathBip44Change DerivationPathType = "bip44Change"
	PathDeprecated  DerivationPathType = "deprecated"
)

// Derivation describes which keys to derive.
// Custom, when set, is an absolute path derived verbatim as a single key.
type Derivation struct {
	Start  uint32             `json:"start"`
	Count  uint32             `json:"count"`
	Path   DerivationPathType `json:"path,omitempty"`
	Custom string             `json:"custom,omitempty"`
}

// ChainPublicKey is an address or public key tagged with its chain
type ChainPublicKey struct {
	Contents string `json:"contents"`
	Chain    Chain  `json:"chain"`
}

// ChainPrivateKey is private key material in the chain's canonical text encoding.
// Solana: base58 of the 64-byte keypair. secp256k1 chains: hex of the 32-byte scalar.
type ChainPrivateKey struct {
	Contents  string         `json:"contents"`
	PublicKey ChainPublicKey `json:"publicKey"`
}

// DerivedPrivateKey is a private key together with the path it was derived from
type DerivedPrivateKey struct {
	Contents  string             `json:"contents"`
	PublicKey ChainPublicKey     `json:"publicKey"`
	Index     uint32             `json:"index"`
	Path      string             `json:"path,omitempty"`
	PathType  DerivationPathType `json:"pathType,omitempty"`
}

// PrivateKey returns the key without derivation metadata
func (d DerivedPrivateKey) PrivateKey() ChainPrivateKey {
	return ChainPrivateKey{Contents: d.Contents, PublicKey: d.PublicKey}
}
