package dcbor

// Kind discriminates the cases of the CBOR value model (§3.1).
type Kind int

const (
	KindUnsigned Kind = iota
	KindNegative
	KindBytes
	KindText
	KindArray
	KindMap
	KindTagged
	KindSimple
)

func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "Unsigned"
	case KindNegative:
		return "Negative"
	case KindBytes:
		return "Bytes"
	case KindText:
		return "Text"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindTagged:
		return "Tagged"
	case KindSimple:
		return "Simple"
	default:
		return "Unknown"
	}
}

// SimpleKind discriminates the major-type-7 cases that are not a tag payload:
// the two booleans, null, and the three float widths.
type SimpleKind int

const (
	SimpleKindFalse SimpleKind = iota
	SimpleKindTrue
	SimpleKindNull
	SimpleKindFloat16
	SimpleKindFloat32
	SimpleKindFloat64
)

// Tagged is the payload of a KindTagged value: a non-negative tag number
// labelling an inner value.
type Tagged struct {
	Tag     uint64
	Content Value
}

// Value is the in-memory discriminated representation of a CBOR value.
// A Value built through the constructors in this file (Uint, Int, Bytes,
// Text, Array, MapValue, Tag, Bool, Null, Float) always satisfies the §3.1
// invariants for its Kind: a Negative value always denotes an integer below
// zero (payload 0 is -1), text is NFC-normalised, and floats are
// pre-canonicalised to the narrowest
// exact representation. Decode produces the same guarantee by construction,
// since it rejects any input that isn't already canonical.
//
// Unsigned values in [0, 2^64-1] and Negative values with Payload n
// represent -1-n, so the pair spans the full [-2^64, 2^64-1] integer range
// required by §3.1 without needing an arbitrary-precision type.
type Value struct {
	kind Kind

	// KindUnsigned / KindNegative: the unsigned magnitude. For Negative,
	// the abstract integer is -1-u.
	u uint64

	bytes []byte
	text  string

	array []Value
	m     *Map

	tagged *Tagged

	simple    SimpleKind
	floatBits uint64 // raw IEEE-754 bits at the canonical width
}

// Kind returns the discriminant of v.
func (v Value) Kind() Kind { return v.kind }

// Uint constructs an Unsigned value.
func Uint(n uint64) Value {
	return Value{kind: KindUnsigned, u: n}
}

// Int constructs the canonical Unsigned/Negative representation of a signed
// 64-bit integer.
func Int(n int64) Value {
	if n >= 0 {
		return Uint(uint64(n))
	}
	return Value{kind: KindNegative, u: uint64(-1 - n)}
}

// NegativeRaw constructs a Negative value directly from its CBOR payload
// (the abstract value is -1-payload). Every uint64 payload is valid:
// payload 0 is -1, the same value Int(-1) produces.
func NegativeRaw(payload uint64) Value {
	return Value{kind: KindNegative, u: payload}
}

// Bytes constructs a Bytes value.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, bytes: cp}
}

// Text constructs a Text value, normalising s to NFC. Use ValidatedText if
// the input must be rejected rather than normalised.
func Text(s string) Value {
	return Value{kind: KindText, text: NormalizeNFC(s)}
}

// Array constructs an Array value from already-canonical elements.
func Array(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindArray, array: cp}
}

// MapValue wraps a *Map as a Value.
func MapValue(m *Map) Value {
	return Value{kind: KindMap, m: m}
}

// Tag constructs a Tagged value.
func Tag(tag uint64, content Value) Value {
	return Value{kind: KindTagged, tagged: &Tagged{Tag: tag, Content: content}}
}

// Bool constructs a simple true/false value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindSimple, simple: SimpleKindTrue}
	}
	return Value{kind: KindSimple, simple: SimpleKindFalse}
}

// Null constructs the simple null value.
func Null() Value {
	return Value{kind: KindSimple, simple: SimpleKindNull}
}

// Float constructs the canonical representation of f: an exact integer in
// [-2^63, 2^64) becomes Unsigned/Negative; otherwise the cascade of §4.1
// picks the narrowest float width that roundtrips exactly.
func Float(f float64) Value {
	return canonicalFloat(f)
}

// IsSimple reports whether v is a KindSimple value and, if so, its SimpleKind.
func (v Value) IsSimple() (SimpleKind, bool) {
	if v.kind != KindSimple {
		return 0, false
	}
	return v.simple, true
}

// IsFloat reports whether v is a float simple value.
func (v Value) IsFloat() bool {
	if v.kind != KindSimple {
		return false
	}
	switch v.simple {
	case SimpleKindFloat16, SimpleKindFloat32, SimpleKindFloat64:
		return true
	default:
		return false
	}
}

// Equal reports whether a and b are the same abstract CBOR value. Because
// every Value a constructor or the decoder produces is already canonical,
// structural equality of the Value tree is equivalent to byte-equality of
// their encodings.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindUnsigned, KindNegative:
		return a.u == b.u
	case KindBytes:
		return string(a.bytes) == string(b.bytes)
	case KindText:
		return a.text == b.text
	case KindArray:
		if len(a.array) != len(b.array) {
			return false
		}
		for i := range a.array {
			if !Equal(a.array[i], b.array[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return a.m.equal(b.m)
	case KindTagged:
		return a.tagged.Tag == b.tagged.Tag && Equal(a.tagged.Content, b.tagged.Content)
	case KindSimple:
		return a.simple == b.simple && a.floatBits == b.floatBits
	default:
		return false
	}
}
