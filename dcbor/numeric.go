package dcbor

import (
	"math"

	"github.com/x448/float16"
)

// headWidth is the number of bytes the initial byte plus its argument field
// occupies for a given unsigned argument, always the minimal legal width.
func headWidth(arg uint64) int {
	switch {
	case arg < 24:
		return 1
	case arg <= math.MaxUint8:
		return 2
	case arg <= math.MaxUint16:
		return 3
	case arg <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// appendHead writes the initial byte and argument for (mt, arg) using the
// minimal encoding of §4.1. This is the only way the encoder ever writes a
// head, so encoder output cannot help but be canonical.
func appendHead(buf []byte, mt MajorType, arg uint64) []byte {
	switch {
	case arg < 24:
		return append(buf, encodeInitialByte(mt, byte(arg)))
	case arg <= math.MaxUint8:
		return append(buf, encodeInitialByte(mt, ai8Bit), byte(arg))
	case arg <= math.MaxUint16:
		buf = append(buf, encodeInitialByte(mt, ai16Bit))
		return append(buf, byte(arg>>8), byte(arg))
	case arg <= math.MaxUint32:
		buf = append(buf, encodeInitialByte(mt, ai32Bit))
		return append(buf, byte(arg>>24), byte(arg>>16), byte(arg>>8), byte(arg))
	default:
		buf = append(buf, encodeInitialByte(mt, ai64Bit))
		return append(buf,
			byte(arg>>56), byte(arg>>48), byte(arg>>40), byte(arg>>32),
			byte(arg>>24), byte(arg>>16), byte(arg>>8), byte(arg))
	}
}

// decodeHead parses the initial byte and argument at data[0:], enforcing
// that the argument used the minimal width (NonCanonicalNumeric otherwise)
// and rejecting reserved/indefinite additional-info values
// (UnsupportedHeaderValue). It returns the major type, the argument, and the
// number of bytes consumed.
func decodeHead(data []byte, offset int) (MajorType, uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, 0, newErr(ErrUnderrun, offset, "expected initial byte")
	}
	mt, ai := decodeInitialByte(data[0])

	switch {
	case ai < ai8Bit:
		return mt, uint64(ai), 1, nil

	case ai == ai8Bit:
		if len(data) < 2 {
			return 0, 0, 0, newErr(ErrUnderrun, offset, "truncated 1-byte argument")
		}
		v := uint64(data[1])
		if v < 24 {
			return 0, 0, 0, newErr(ErrNonCanonicalNumeric, offset, "1-byte argument could fit in the initial byte")
		}
		return mt, v, 2, nil

	case ai == ai16Bit:
		if len(data) < 3 {
			return 0, 0, 0, newErr(ErrUnderrun, offset, "truncated 2-byte argument")
		}
		v := uint64(data[1])<<8 | uint64(data[2])
		if v <= math.MaxUint8 {
			return 0, 0, 0, newErr(ErrNonCanonicalNumeric, offset, "2-byte argument could fit in 1 byte")
		}
		return mt, v, 3, nil

	case ai == ai32Bit:
		if len(data) < 5 {
			return 0, 0, 0, newErr(ErrUnderrun, offset, "truncated 4-byte argument")
		}
		v := uint64(data[1])<<24 | uint64(data[2])<<16 | uint64(data[3])<<8 | uint64(data[4])
		if v <= math.MaxUint16 {
			return 0, 0, 0, newErr(ErrNonCanonicalNumeric, offset, "4-byte argument could fit in 2 bytes")
		}
		return mt, v, 5, nil

	case ai == ai64Bit:
		if len(data) < 9 {
			return 0, 0, 0, newErr(ErrUnderrun, offset, "truncated 8-byte argument")
		}
		var v uint64
		for i := 1; i <= 8; i++ {
			v = v<<8 | uint64(data[i])
		}
		if v <= math.MaxUint32 {
			return 0, 0, 0, newErr(ErrNonCanonicalNumeric, offset, "8-byte argument could fit in 4 bytes")
		}
		return mt, v, 9, nil

	case ai >= aiReservedLo && ai <= aiReservedHi:
		return 0, 0, 0, &Error{Kind: ErrUnsupportedHeaderValue, Offset: offset, Message: "reserved additional-info value", Extra: data[0]}

	default: // aiIndefinite
		return 0, 0, 0, &Error{Kind: ErrUnsupportedHeaderValue, Offset: offset, Message: "indefinite-length items are not canonical", Extra: data[0]}
	}
}

// canonicalFloat implements the cascade of §4.1: integer folding, then NaN,
// then infinities, then the narrowest of f16/f32/f64 that roundtrips exactly.
func canonicalFloat(f float64) Value {
	if isExactInteger63to64(f) {
		return intFromExactFloat(f)
	}

	if math.IsNaN(f) {
		return Value{kind: KindSimple, simple: SimpleKindFloat16, floatBits: 0x7e00}
	}

	if math.IsInf(f, 0) {
		bits := uint16(0x7c00)
		if math.Signbit(f) {
			bits = 0xfc00
		}
		return Value{kind: KindSimple, simple: SimpleKindFloat16, floatBits: uint64(bits)}
	}

	f32 := float32(f)
	if float64(f32) == f {
		h := float16.Fromfloat32(f32)
		if float64(h.Float32()) == f {
			return Value{kind: KindSimple, simple: SimpleKindFloat16, floatBits: uint64(h.Bits())}
		}
		return Value{kind: KindSimple, simple: SimpleKindFloat32, floatBits: uint64(math.Float32bits(f32))}
	}

	return Value{kind: KindSimple, simple: SimpleKindFloat64, floatBits: math.Float64bits(f)}
}

// isExactInteger63to64 reports whether f is a finite value exactly equal to
// an integer in [-2^63, 2^64), the range §3.1 requires to be folded into
// Unsigned/Negative rather than emitted as a float.
func isExactInteger63to64(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	if f != math.Trunc(f) {
		return false
	}
	return f >= -9223372036854775808.0 && f < 18446744073709551616.0
}

func intFromExactFloat(f float64) Value {
	if f == 0 {
		return Uint(0) // +0.0 and -0.0 both canonicalise to Unsigned(0)
	}
	if f >= 0 {
		return Uint(uint64(f))
	}
	// f is a negative integer in [-2^63, 0); abs(f)-1 fits in uint64.
	mag := -f
	return NegativeRaw(uint64(mag) - 1)
}

// floatValue reconstructs the f64 value a canonical float Value represents.
func floatValue(v Value) float64 {
	switch v.simple {
	case SimpleKindFloat16:
		return float64(float16.Frombits(uint16(v.floatBits)).Float32())
	case SimpleKindFloat32:
		return float64(math.Float32frombits(uint32(v.floatBits)))
	case SimpleKindFloat64:
		return math.Float64frombits(v.floatBits)
	default:
		return 0
	}
}

// decodeCanonicalFloat validates that the f64 value carried by a float head
// of the given width is not reducible to a shorter canonical form, per the
// "decoder must reject whatever a shorter form would also represent"
// requirement of §4.1 and §9.
func decodeCanonicalFloat(width int, bits uint64) (Value, error) {
	switch width {
	case 2:
		h := float16.Frombits(uint16(bits))
		if h.IsNaN() {
			if uint16(bits) != 0x7e00 {
				return Value{}, newErr(ErrNonCanonicalNumeric, -1, "non-canonical NaN bit pattern")
			}
			return Value{kind: KindSimple, simple: SimpleKindFloat16, floatBits: bits}, nil
		}
		f := float64(h.Float32())
		if isExactInteger63to64(f) {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "float value is an exact integer and must be encoded as one")
		}
		return Value{kind: KindSimple, simple: SimpleKindFloat16, floatBits: bits}, nil

	case 4:
		f32 := math.Float32frombits(uint32(bits))
		f := float64(f32)
		if math.IsNaN(f) {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "NaN must be encoded at float16 width")
		}
		if isExactInteger63to64(f) {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "float value is an exact integer and must be encoded as one")
		}
		if math.IsInf(f, 0) {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "infinity must be encoded at float16 width")
		}
		h := float16.Fromfloat32(f32)
		if float64(h.Float32()) == f {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "float32 value is exactly representable as float16")
		}
		return Value{kind: KindSimple, simple: SimpleKindFloat32, floatBits: bits}, nil

	case 8:
		f := math.Float64frombits(bits)
		if math.IsNaN(f) {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "NaN must be encoded at float16 width")
		}
		if isExactInteger63to64(f) {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "float value is an exact integer and must be encoded as one")
		}
		if math.IsInf(f, 0) {
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "infinity must be encoded at float16 width")
		}
		f32 := float32(f)
		if float64(f32) == f {
			h := float16.Fromfloat32(f32)
			if float64(h.Float32()) == f {
				return Value{}, newErr(ErrNonCanonicalNumeric, -1, "float64 value is exactly representable as float16")
			}
			return Value{}, newErr(ErrNonCanonicalNumeric, -1, "float64 value is exactly representable as float32")
		}
		return Value{kind: KindSimple, simple: SimpleKindFloat64, floatBits: bits}, nil

	default:
		return Value{}, newErr(ErrInvalidSimpleValue, -1, "unknown float width")
	}
}
