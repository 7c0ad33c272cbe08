// Package bitcoin implements the secp256k1 Bitcoin strategy: keys, WIF, P2PKH addresses,
// address validation for base58 and segwit forms, and Bitcoin Signed Message.
package bitcoin

import (
	"strings"

	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"
	"github.com/AlexZinkM/chainkit/internal/secp"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/sirupsen/logrus"
)

// params selects mainnet address and key encodings
var params = &chaincfg.MainNetParams

// Strategy is the Bitcoin chain strategy. It holds no per-call state.
type Strategy struct {
	log *logrus.Entry
}

// New creates the Bitcoin strategy. A nil log uses the process logger.
func New(log *logrus.Entry) *Strategy {
	if log == nil {
		log = logging.Component("bitcoin")
	}
	return &Strategy{log: log}
}

func (s *Strategy) Chain() model.Chain {
	return model.ChainBitcoin
}

func (s *Strategy) Curve() model.Curve {
	return model.CurveSecp256k1
}

// Template returns the BIP-44 template for coin type 0
func (s *Strategy) Template(pathType model.DerivationPathType) (string, error) {
	return secp.Template(secp.CoinBitcoin, pathType)
}

// Address returns the P2PKH address of the compressed public key
func Address(pub *btcec.PublicKey) string {
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), params)
	if err != nil {
		return ""
	}
	return addr.EncodeAddress()
}

// SegwitAddress returns the P2WPKH address of the compressed public key
func SegwitAddress(pub *btcec.PublicKey) string {
	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), params)
	if err != nil {
		return ""
	}
	return addr.EncodeAddress()
}

// decodeAddress parses a mainnet P2PKH, P2SH, P2WPKH, P2WSH or P2TR address
func decodeAddress(address string) (btcutil.Address, error) {
	address = strings.TrimSpace(address)
	decoded, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, model.WrapError(model.KindInvalidAddress, "invalid bitcoin address", err)
	}
	switch decoded.(type) {
	case *btcutil.AddressPubKeyHash, *btcutil.AddressScriptHash,
		*btcutil.AddressWitnessPubKeyHash, *btcutil.AddressWitnessScriptHash, *btcutil.AddressTaproot:
	default:
		return nil, model.Errorf(model.KindInvalidAddress, "unsupported address type %T", decoded)
	}
	if !decoded.IsForNet(params) {
		return nil, model.Errorf(model.KindInvalidAddress, "%s is not a mainnet address", address)
	}
	// a witness program of another version decodes as a known type but encodes differently
	if !strings.EqualFold(decoded.EncodeAddress(), address) {
		return nil, model.Errorf(model.KindInvalidAddress, "unsupported witness program in %s", address)
	}
	return decoded, nil
}

func publicKey(pub *btcec.PublicKey) model.ChainPublicKey {
	return model.ChainPublicKey{Contents: Address(pub), Chain: model.ChainBitcoin}
}
