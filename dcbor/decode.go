package dcbor

import "fmt"

// maxDepth bounds recursion in decode to protect against pathological
// input; it is generous enough never to matter for real envelopes.
const maxDepth = 512

// Decode parses data into a single canonical CBOR value, asserting that the
// entire input was consumed (§4.5). The decoder is single-pass and rejects
// any input that is not already in canonical form, returning one of the
// ErrorKind values as the failure taxonomy.
func Decode(data []byte) (Value, error) {
	v, n, err := decodeValue(data, 0, 0)
	if err != nil {
		return Value{}, err
	}
	if n != len(data) {
		return Value{}, &Error{
			Kind:    ErrUnusedData,
			Offset:  n,
			Message: fmt.Sprintf("%d trailing byte(s)", len(data)-n),
			Extra:   len(data) - n,
		}
	}
	return v, nil
}

// decodeValue parses one data item starting at data[0] (offset is only used
// for error reporting against the original buffer) and returns it along
// with the number of bytes consumed from data.
func decodeValue(data []byte, offset, depth int) (Value, int, error) {
	if depth > maxDepth {
		return Value{}, 0, newErr(ErrCustom, offset, "maximum recursion depth exceeded")
	}
	if len(data) == 0 {
		return Value{}, 0, newErr(ErrUnderrun, offset, "expected a data item")
	}

	if mt, _ := decodeInitialByte(data[0]); mt == MajorSimple {
		return decodeSimple(data, offset)
	}

	majorType, arg, n, err := decodeHead(data, offset)
	if err != nil {
		return Value{}, 0, err
	}

	switch majorType {
	case MajorUnsigned:
		return Uint(arg), n, nil

	case MajorNegative:
		return NegativeRaw(arg), n, nil

	case MajorBytes:
		end := n + int(arg)
		if end < n || end > len(data) {
			return Value{}, 0, newErr(ErrUnderrun, offset+n, "truncated byte string")
		}
		return Bytes(data[n:end]), end, nil

	case MajorText:
		end := n + int(arg)
		if end < n || end > len(data) {
			return Value{}, 0, newErr(ErrUnderrun, offset+n, "truncated text string")
		}
		s, verr := ValidateNFC(data[n:end])
		if verr != nil {
			if e, ok := verr.(*Error); ok {
				e.Offset = offset + n
			}
			return Value{}, 0, verr
		}
		return Value{kind: KindText, text: s}, end, nil

	case MajorArray:
		// arg is attacker-controlled and can be near math.MaxUint64; cap the
		// pre-allocation at the number of bytes actually remaining, since
		// every array element consumes at least one byte.
		prealloc := arg
		if remaining := uint64(len(data) - n); prealloc > remaining {
			prealloc = remaining
		}
		items := make([]Value, 0, prealloc)
		pos := n
		for i := uint64(0); i < arg; i++ {
			item, consumed, ierr := decodeValue(data[pos:], offset+pos, depth+1)
			if ierr != nil {
				return Value{}, 0, ierr
			}
			items = append(items, item)
			pos += consumed
		}
		return Value{kind: KindArray, array: items}, pos, nil

	case MajorMap:
		m := NewMap()
		pos := n
		var prevKey []byte
		for i := uint64(0); i < arg; i++ {
			keyStart := pos
			key, kn, kerr := decodeValue(data[pos:], offset+pos, depth+1)
			if kerr != nil {
				return Value{}, 0, kerr
			}
			keyBytes := data[keyStart : keyStart+kn]
			pos += kn

			if prevKey != nil {
				switch compareBytes(keyBytes, prevKey) {
				case 0:
					return Value{}, 0, newErr(ErrDuplicateMapKey, offset+keyStart, "")
				case -1:
					return Value{}, 0, newErr(ErrMisorderedMapKey, offset+keyStart, "")
				}
			}
			prevKey = keyBytes

			val, vn, verr := decodeValue(data[pos:], offset+pos, depth+1)
			if verr != nil {
				return Value{}, 0, verr
			}
			pos += vn

			m.appendRaw(key, val, keyBytes)
		}
		return MapValue(m), pos, nil

	case MajorTag:
		content, cn, cerr := decodeValue(data[n:], offset+n, depth+1)
		if cerr != nil {
			return Value{}, 0, cerr
		}
		return Tag(arg, content), n + cn, nil

	default:
		return Value{}, 0, newErr(ErrInvalidString, offset, "unreachable major type")
	}
}

func compareBytes(a, b []byte) int {
	la, lb := len(a), len(b)
	n := la
	if lb < n {
		n = lb
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	default:
		return 0
	}
}

// decodeSimple parses a major-type-7 item: the three booleans-and-null
// simple values, or one of the three canonical float widths. Every other
// additional-info value under major type 7 is invalid in canonical dCBOR,
// including the one-byte simple-value extension (ai==24) and "undefined"
// (ai==23): §4.5 allows only {20,21,22} plus the float heads.
func decodeSimple(data []byte, offset int) (Value, int, error) {
	_, ai := decodeInitialByte(data[0])

	switch {
	case ai == byte(SimpleFalse):
		return Value{kind: KindSimple, simple: SimpleKindFalse}, 1, nil
	case ai == byte(SimpleTrue):
		return Value{kind: KindSimple, simple: SimpleKindTrue}, 1, nil
	case ai == byte(SimpleNull):
		return Value{kind: KindSimple, simple: SimpleKindNull}, 1, nil

	case ai == ai16Bit:
		if len(data) < 3 {
			return Value{}, 0, newErr(ErrUnderrun, offset, "truncated float16")
		}
		bits := uint64(data[1])<<8 | uint64(data[2])
		v, err := decodeCanonicalFloat(2, bits)
		if err != nil {
			setOffset(err, offset)
			return Value{}, 0, err
		}
		return v, 3, nil

	case ai == ai32Bit:
		if len(data) < 5 {
			return Value{}, 0, newErr(ErrUnderrun, offset, "truncated float32")
		}
		var bits uint64
		for i := 1; i <= 4; i++ {
			bits = bits<<8 | uint64(data[i])
		}
		v, err := decodeCanonicalFloat(4, bits)
		if err != nil {
			setOffset(err, offset)
			return Value{}, 0, err
		}
		return v, 5, nil

	case ai == ai64Bit:
		if len(data) < 9 {
			return Value{}, 0, newErr(ErrUnderrun, offset, "truncated float64")
		}
		var bits uint64
		for i := 1; i <= 8; i++ {
			bits = bits<<8 | uint64(data[i])
		}
		v, err := decodeCanonicalFloat(8, bits)
		if err != nil {
			setOffset(err, offset)
			return Value{}, 0, err
		}
		return v, 9, nil

	case ai >= aiReservedLo && ai <= aiReservedHi:
		return Value{}, 0, &Error{Kind: ErrUnsupportedHeaderValue, Offset: offset, Message: "reserved additional-info value", Extra: data[0]}

	case ai == aiIndefinite:
		return Value{}, 0, &Error{Kind: ErrUnsupportedHeaderValue, Offset: offset, Message: "indefinite-length items are not canonical", Extra: data[0]}

	default:
		return Value{}, 0, newErr(ErrInvalidSimpleValue, offset, fmt.Sprintf("simple code %d is not canonical", ai))
	}
}

func setOffset(err error, offset int) {
	if e, ok := err.(*Error); ok {
		e.Offset = offset
	}
}
