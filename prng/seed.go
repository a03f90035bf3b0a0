package prng

import "math/big"

// commaByte separates the encoded seed from the counter's zero-byte padding,
// per the wire encoding in spec §6.
const commaByte = 0x2C

type seedKind int

const (
	seedKindNone seedKind = iota
	seedKindInt
	seedKindString
	seedKindBytes
)

// Seed is an opaque hashable base seed. It accepts, at minimum, an
// arbitrary-precision integer and an arbitrary-length byte string (which
// subsumes ordinary Go strings). The zero Seed is the unseeded value.
type Seed struct {
	kind seedKind
	i    *big.Int
	s    string
	b    []byte
}

// SeedFromInt64 builds a Seed from a native integer.
func SeedFromInt64(v int64) Seed {
	return Seed{kind: seedKindInt, i: big.NewInt(v)}
}

// SeedFromBigInt builds a Seed from an arbitrary-precision integer. v is
// copied; the caller may continue to mutate their own copy.
func SeedFromBigInt(v *big.Int) Seed {
	return Seed{kind: seedKindInt, i: new(big.Int).Set(v)}
}

// SeedFromString builds a Seed from its UTF-8 bytes.
func SeedFromString(v string) Seed {
	return Seed{kind: seedKindString, s: v}
}

// SeedFromBytes builds a Seed from a verbatim byte string. v is copied.
func SeedFromBytes(v []byte) Seed {
	cp := make([]byte, len(v))
	copy(cp, v)
	return Seed{kind: seedKindBytes, b: cp}
}

// String renders the seed the way it is displayed in getstate()/repr():
// the decimal integer, the literal string, or the bytes interpreted as
// text.
func (s Seed) String() string {
	switch s.kind {
	case seedKindInt:
		return s.i.String()
	case seedKindString:
		return s.s
	case seedKindBytes:
		return string(s.b)
	default:
		return "<unseeded>"
	}
}

// encode returns encode(seed) as defined in spec §6, without the trailing
// comma: the decimal form for an integer seed, the UTF-8 bytes for a
// string seed, or the verbatim bytes for a byte-string seed.
func (s Seed) encode() []byte {
	switch s.kind {
	case seedKindInt:
		return []byte(s.i.String())
	case seedKindString:
		return []byte(s.s)
	case seedKindBytes:
		return append([]byte(nil), s.b...)
	default:
		return nil
	}
}
