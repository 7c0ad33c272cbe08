package model

import "strings"

// Chain identifies a supported blockchain
type Chain string

const (
	ChainSolana   Chain = "solana"
	ChainEthereum Chain = "ethereum"
	ChainBitcoin  Chain = "bitcoin"
	ChainTron     Chain = "tron"
)

// Curve is the signature curve used by a chain
type Curve string

const (
	CurveEd25519   Curve = "ed25519"
	CurveSecp256k1 Curve = "secp256k1"
)

// ParseChain maps a chain identifier to a Chain.
// Matching is case-insensitive; a few common tickers are accepted as aliases.
func ParseChain(s string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solana", "sol":
		return ChainSolana, nil
	case "ethereum", "eth":
		return ChainEthereum, nil
	case "bitcoin", "btc":
		return ChainBitcoin, nil
	case "tron", "trx":
		return ChainTron, nil
	}
	return "", Errorf(KindUnsupportedChain, "unsupported chain %q", s)
}
