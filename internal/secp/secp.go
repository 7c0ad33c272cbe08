// Package secp holds the secp256k1 key handling shared by the ethereum, bitcoin and tron strategies.
package secp

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/common"
	"github.com/AlexZinkM/chainkit/internal/derivation"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"golang.org/x/crypto/sha3"
)

// Coin types registered in SLIP-44
const (
	CoinBitcoin  uint32 = 0
	CoinEthereum uint32 = 60
	CoinTron     uint32 = 195
)

// SignatureLen is the r||s||v layout returned by Sign
const SignatureLen = 65

// Template returns the BIP-44 path template of pathType for coin
func Template(coin uint32, pathType model.DerivationPathType) (string, error) {
	c := strconv.FormatUint(uint64(coin), 10)
	switch pathType {
	case model.PathBip44Root:
		return "m/44'/" + c + "'/0'/0/0", nil
	case model.PathBip44:
		return "m/44'/" + c + "'/{i}'/0/0", nil
	case model.PathBip44Change, "":
		return "m/44'/" + c + "'/0'/0/{i}", nil
	}
	return "", model.Errorf(model.KindUnsupportedDerivation, "path type %q is not available for coin %d", pathType, coin)
}

// Derive walks path from seed with BIP-32
func Derive(seed []byte, path derivation.Path) (*btcec.PrivateKey, error) {
	scalar, err := derivation.Secp256k1(seed, path)
	if err != nil {
		return nil, err
	}
	defer clear(scalar)
	return PrivateKey(scalar)
}

// DeriveFromData treats data as a BIP-32 seed and walks the default path at index 0
func DeriveFromData(coin uint32, data []byte) (*btcec.PrivateKey, error) {
	tmpl, _ := Template(coin, model.PathBip44Change)
	path, err := derivation.ParsePath(derivation.Expand(tmpl, 0))
	if err != nil {
		return nil, err
	}
	return Derive(data, path)
}

// PrivateKey checks 0 < k < n and returns the key
func PrivateKey(b []byte) (*btcec.PrivateKey, error) {
	if len(b) != 32 {
		return nil, model.Errorf(model.KindInvalidKey, "private key must be 32 bytes, got %d", len(b))
	}
	var k btcec.ModNScalar
	if overflow := k.SetByteSlice(b); overflow || k.IsZero() {
		k.Zero()
		return nil, model.NewError(model.KindInvalidKey, "private key is outside the curve order")
	}
	return btcec.PrivKeyFromScalar(&k), nil
}

// ParseHex decodes a 32-byte hex scalar, 0x prefix optional
func ParseHex(key string) (*btcec.PrivateKey, error) {
	b, err := hex.DecodeString(common.TrimHexPrefix(strings.TrimSpace(key)))
	if err != nil {
		return nil, model.WrapError(model.KindInvalidKey, "private key is not hex", err)
	}
	defer clear(b)
	return PrivateKey(b)
}

// ParseWIF decodes a mainnet wallet import format key, compressed or not
func ParseWIF(key string) (*btcec.PrivateKey, error) {
	wif, err := btcutil.DecodeWIF(strings.TrimSpace(key))
	if err != nil {
		return nil, model.WrapError(model.KindInvalidKey, "private key is not a WIF key", err)
	}
	if !wif.IsForNet(&chaincfg.MainNetParams) {
		return nil, model.NewError(model.KindInvalidKey, "WIF key is not for mainnet")
	}
	scalar := wif.PrivKey.Serialize()
	defer clear(scalar)
	return PrivateKey(scalar)
}

// WIF returns the compressed mainnet wallet import format of priv
func WIF(priv *btcec.PrivateKey) string {
	wif, err := btcutil.NewWIF(priv, &chaincfg.MainNetParams, true)
	if err != nil {
		return ""
	}
	return wif.String()
}

// ParseHexOrWIF accepts either a hex scalar or a WIF key
func ParseHexOrWIF(key string) (*btcec.PrivateKey, error) {
	priv, err := ParseHex(key)
	if err == nil {
		return priv, nil
	}
	if wif, wifErr := ParseWIF(key); wifErr == nil {
		return wif, nil
	}
	return nil, err
}

// Hex encodes the private scalar
func Hex(priv *btcec.PrivateKey) string {
	b := priv.Serialize()
	defer clear(b)
	return hex.EncodeToString(b)
}

// Sign returns the recoverable signature of hash as r||s||v with v in {0,1}
func Sign(priv *btcec.PrivateKey, hash []byte) []byte {
	compact := ecdsa.SignCompact(priv, hash, false)
	out := make([]byte, SignatureLen)
	copy(out, compact[1:])
	out[64] = compact[0] - 27
	return out
}

// Recover returns the public key that produced an r||s||v signature over hash.
// v may be 0/1 or 27/28.
func Recover(hash, sig []byte) (*btcec.PublicKey, error) {
	if len(sig) != SignatureLen {
		return nil, model.Errorf(model.KindMalformedTransaction, "signature must be %d bytes, got %d", SignatureLen, len(sig))
	}
	v := sig[64]
	if v >= 27 {
		v -= 27
	}
	if v > 1 {
		return nil, model.Errorf(model.KindMalformedTransaction, "invalid recovery id %d", sig[64])
	}
	compact := make([]byte, SignatureLen)
	compact[0] = 27 + v
	copy(compact[1:], sig[:64])
	pub, _, err := ecdsa.RecoverCompact(compact, hash)
	if err != nil {
		return nil, model.WrapError(model.KindMalformedTransaction, "recover public key", err)
	}
	return pub, nil
}

// Keccak256 hashes the concatenation of data
func Keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// KeccakAddress is the last 20 bytes of keccak(uncompressed public key without the 0x04 prefix)
func KeccakAddress(pub *btcec.PublicKey) []byte {
	return Keccak256(pub.SerializeUncompressed()[1:])[12:]
}
