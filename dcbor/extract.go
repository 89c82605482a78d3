package dcbor

import "math"

// Extraction helpers implement the WrongType / WrongTag / OutOfRange errors
// of §7 for callers pulling typed data out of a decoded Value.

// Int64 extracts a signed 64-bit integer, failing with OutOfRange if the
// abstract value doesn't fit.
func (v Value) Int64() (int64, error) {
	switch v.kind {
	case KindUnsigned:
		if v.u > math.MaxInt64 {
			return 0, newErr(ErrOutOfRange, -1, "unsigned value exceeds int64")
		}
		return int64(v.u), nil
	case KindNegative:
		if v.u > math.MaxInt64 {
			return 0, newErr(ErrOutOfRange, -1, "negative value exceeds int64")
		}
		return -1 - int64(v.u), nil
	default:
		return 0, newErr(ErrWrongType, -1, "expected an integer, got "+v.kind.String())
	}
}

// Uint64 extracts an unsigned 64-bit integer.
func (v Value) Uint64() (uint64, error) {
	if v.kind != KindUnsigned {
		return 0, newErr(ErrWrongType, -1, "expected an unsigned integer, got "+v.kind.String())
	}
	return v.u, nil
}

// BytesValue extracts a byte string.
func (v Value) BytesValue() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, newErr(ErrWrongType, -1, "expected bytes, got "+v.kind.String())
	}
	out := make([]byte, len(v.bytes))
	copy(out, v.bytes)
	return out, nil
}

// TextValue extracts a text string.
func (v Value) TextValue() (string, error) {
	if v.kind != KindText {
		return "", newErr(ErrWrongType, -1, "expected text, got "+v.kind.String())
	}
	return v.text, nil
}

// ArrayValue extracts an array's elements.
func (v Value) ArrayValue() ([]Value, error) {
	if v.kind != KindArray {
		return nil, newErr(ErrWrongType, -1, "expected an array, got "+v.kind.String())
	}
	out := make([]Value, len(v.array))
	copy(out, v.array)
	return out, nil
}

// AsMap extracts the underlying *Map.
func (v Value) AsMap() (*Map, error) {
	if v.kind != KindMap {
		return nil, newErr(ErrWrongType, -1, "expected a map, got "+v.kind.String())
	}
	return v.m, nil
}

// TaggedValue extracts the (tag, content) pair.
func (v Value) TaggedValue() (uint64, Value, error) {
	if v.kind != KindTagged {
		return 0, Value{}, newErr(ErrWrongType, -1, "expected a tagged value, got "+v.kind.String())
	}
	return v.tagged.Tag, v.tagged.Content, nil
}

// ExpectTag extracts the content of a Tagged value, failing with WrongTag if
// the tag number doesn't match expected.
func (v Value) ExpectTag(expected uint64) (Value, error) {
	tag, content, err := v.TaggedValue()
	if err != nil {
		return Value{}, err
	}
	if tag != expected {
		return Value{}, wrongTagErr(-1, expected, tag)
	}
	return content, nil
}

// BoolValue extracts a boolean simple value.
func (v Value) BoolValue() (bool, error) {
	if v.kind != KindSimple {
		return false, newErr(ErrWrongType, -1, "expected a boolean, got "+v.kind.String())
	}
	switch v.simple {
	case SimpleKindTrue:
		return true, nil
	case SimpleKindFalse:
		return false, nil
	default:
		return false, newErr(ErrWrongType, -1, "expected a boolean")
	}
}

// IsNull reports whether v is the simple null value.
func (v Value) IsNull() bool {
	return v.kind == KindSimple && v.simple == SimpleKindNull
}

// FloatValue extracts a float simple value as a float64. Integers that
// canonicalised into Unsigned/Negative also satisfy this, returning their
// numeric value, to mirror how "float 42.0" and "int 42" are the same
// abstract number post-canonicalisation.
func (v Value) FloatValue() (float64, error) {
	switch v.kind {
	case KindUnsigned:
		return float64(v.u), nil
	case KindNegative:
		return -1 - float64(v.u), nil
	case KindSimple:
		if v.IsFloat() {
			return floatValue(v), nil
		}
	}
	return 0, newErr(ErrWrongType, -1, "expected a number, got "+v.kind.String())
}
