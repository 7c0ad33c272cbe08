package common

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	SOLDecimals   = 9  // SOL has 9 decimals (lamports)
	EtherDecimals = 18 // ETH has 18 decimals (wei)
)

// LamportsToSOL converts lamports to SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return formatWithDecimals(new(big.Int).SetUint64(lamports), SOLDecimals)
}

// SOLToLamports converts SOL string to lamports without float precision loss
func SOLToLamports(sol string) (uint64, error) {
	v, err := parseWithDecimals(sol, SOLDecimals)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("amount %q overflows u64", sol)
	}
	return v.Uint64(), nil
}

// EtherToWei converts an ether string to wei
func EtherToWei(eth string) (*big.Int, error) {
	return parseWithDecimals(eth, EtherDecimals)
}

// ParseBaseUnits parses a non-negative integer amount already expressed in base units
func ParseBaseUnits(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer amount %q: %w", s, err)
	}
	return n, nil
}

// ParseBigBaseUnits parses a non-negative integer amount of arbitrary size
func ParseBigBaseUnits(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok || n.Sign() < 0 {
		return nil, fmt.Errorf("invalid integer amount %q", s)
	}
	return n, nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value *big.Int, decimals int) string {
	s := value.String()

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// parseWithDecimals converts decimal string to integer by removing decimal point.
// Fractions finer than decimals are rejected rather than truncated.
// Example: parseWithDecimals("0.024981836", 9) = 24981836
func parseWithDecimals(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return nil, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" {
		whole = "0"
	}

	if len(frac) > decimals {
		if strings.Trim(frac[decimals:], "0") != "" {
			return nil, fmt.Errorf("amount %q has more than %d decimals", s, decimals)
		}
		frac = frac[:decimals]
	}
	frac += strings.Repeat("0", decimals-len(frac))

	// Combine and parse
	combined := whole + frac
	for _, c := range combined {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("invalid decimal %q", s)
		}
	}
	n, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal %q", s)
	}
	return n, nil
}

// ParseByteArray parses the "[1,2,3]" notation used by CLI key exports.
// Returns false if s is not in that notation.
func ParseByteArray(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, false
	}
	inner := strings.TrimSpace(s[1 : len(s)-1])
	if inner == "" {
		return []byte{}, true
	}
	out := make([]byte, 0, 64)
	for _, part := range strings.Split(inner, ",") {
		n, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, false
		}
		out = append(out, byte(n))
	}
	return out, true
}

// ToBase64 encodes with standard padding
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromBase64 decodes standard base64
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
}

// TrimHexPrefix strips an optional 0x or 0X prefix
func TrimHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// MessageBytes decodes a 0x-prefixed hex message, anything else is taken as UTF-8 text
func MessageBytes(message string) []byte {
	if trimmed := TrimHexPrefix(message); len(trimmed) != len(message) {
		if b, err := hex.DecodeString(trimmed); err == nil {
			return b
		}
	}
	return []byte(message)
}
