// Package ethereum implements the secp256k1 Ethereum strategy: keys and EIP-55 addresses,
// legacy, EIP-2930 and EIP-1559 transactions, personal_sign and EIP-712 typed data.
package ethereum

import (
	"regexp"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"
	"github.com/AlexZinkM/chainkit/internal/secp"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
)

// AddressLen is the byte length of an account address
const AddressLen = gethcommon.AddressLength

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// Strategy is the Ethereum chain strategy. It holds no per-call state.
type Strategy struct {
	log *logrus.Entry
}

// New creates the Ethereum strategy. A nil log uses the process logger.
func New(log *logrus.Entry) *Strategy {
	if log == nil {
		log = logging.Component("ethereum")
	}
	return &Strategy{log: log}
}

func (s *Strategy) Chain() model.Chain {
	return model.ChainEthereum
}

func (s *Strategy) Curve() model.Curve {
	return model.CurveSecp256k1
}

// Template returns the BIP-44 template for coin type 60
func (s *Strategy) Template(pathType model.DerivationPathType) (string, error) {
	return secp.Template(secp.CoinEthereum, pathType)
}

// ChecksumAddress formats a 20-byte address with the EIP-55 mixed-case checksum
func ChecksumAddress(addr []byte) string {
	return gethcommon.BytesToAddress(addr).Hex()
}

// parseAddress decodes a 0x address. All-lower and all-upper hex are accepted as is,
// mixed case must carry a valid checksum.
func parseAddress(address string) (gethcommon.Address, error) {
	address = strings.TrimSpace(address)
	if !addressPattern.MatchString(address) {
		return gethcommon.Address{}, model.Errorf(model.KindInvalidAddress, "invalid ethereum address %q", address)
	}
	addr := gethcommon.HexToAddress(address)
	body := address[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex() != address {
		return gethcommon.Address{}, model.Errorf(model.KindInvalidAddress, "bad checksum in address %q", address)
	}
	return addr, nil
}

func publicKey(addr gethcommon.Address) model.ChainPublicKey {
	return model.ChainPublicKey{Contents: addr.Hex(), Chain: model.ChainEthereum}
}

// decodeHex accepts hex with an optional 0x prefix
func decodeHex(s string) ([]byte, error) {
	b, err := hexutil.Decode("0x" + common.TrimHexPrefix(strings.TrimSpace(s)))
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "input is not hex", err)
	}
	return b, nil
}

func encodeHex(b []byte) string {
	return hexutil.Encode(b)
}
