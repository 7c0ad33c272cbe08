// Package derivation walks hierarchical key paths for ed25519 (SLIP-10) and secp256k1 (BIP-32).
package derivation

import (
	"strconv"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/model"
)

// HardenedOffset is added to an index to mark it hardened
const HardenedOffset uint32 = 0x80000000

// Segment is one level of a derivation path
type Segment struct {
	Index    uint32
	Hardened bool
}

// Value returns the index as used in CKD, with the hardened bit applied
func (s Segment) Value() uint32 {
	if s.Hardened {
		return s.Index | HardenedOffset
	}
	return s.Index
}

// Path is an absolute derivation path below the master key
type Path []Segment

// ParsePath parses paths like m/44'/501'/0'/0'. Both ' and h mark hardened segments.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) == 0 || (parts[0] != "m" && parts[0] != "M") {
		return nil, model.Errorf(model.KindUnsupportedDerivation, "path %q must start with m", s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, p := range parts[1:] {
		seg := Segment{}
		if strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h") || strings.HasSuffix(p, "H") {
			seg.Hardened = true
			p = p[:len(p)-1]
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || uint32(n) >= HardenedOffset {
			return nil, model.Errorf(model.KindUnsupportedDerivation, "invalid path segment %q in %q", p, s)
		}
		seg.Index = uint32(n)
		path = append(path, seg)
	}
	return path, nil
}

// MustParsePath is ParsePath for compile-time constants
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Hardened reports whether every segment is hardened
func (p Path) Hardened() bool {
	for _, s := range p {
		if !s.Hardened {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, s := range p {
		b.WriteByte('/')
		b.WriteString(strconv.FormatUint(uint64(s.Index), 10))
		if s.Hardened {
			b.WriteByte('\'')
		}
	}
	return b.String()
}

// Expand substitutes {i} in a path template with index
func Expand(template string, index uint32) string {
	return strings.ReplaceAll(template, "{i}", strconv.FormatUint(uint64(index), 10))
}
