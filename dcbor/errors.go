package dcbor

import "fmt"

// ErrorKind classifies the ways a canonical CBOR operation can fail, per the
// error taxonomy. It is comparable so callers can switch on it directly.
type ErrorKind int

const (
	// ErrUnderrun means the input ended before an expected item completed.
	ErrUnderrun ErrorKind = iota
	// ErrUnsupportedHeaderValue means a reserved or indefinite-length initial byte was seen.
	ErrUnsupportedHeaderValue
	// ErrNonCanonicalNumeric means a head argument, or a float encoding, was wider than the minimum.
	ErrNonCanonicalNumeric
	// ErrInvalidSimpleValue means a simple code outside {20,21,22} (and the float heads) was seen.
	ErrInvalidSimpleValue
	// ErrInvalidString means a text string's bytes are not valid UTF-8.
	ErrInvalidString
	// ErrNonCanonicalString means the text is valid UTF-8 but not already NFC.
	ErrNonCanonicalString
	// ErrUnusedData means decoding succeeded but bytes remained after the root value.
	ErrUnusedData
	// ErrMisorderedMapKey means a map key's encoding did not strictly exceed its predecessor's.
	ErrMisorderedMapKey
	// ErrDuplicateMapKey means two map keys encoded to equal bytes.
	ErrDuplicateMapKey
	// ErrMissingMapKey means extraction requested a key absent from the map.
	ErrMissingMapKey
	// ErrOutOfRange means an integer did not fit the requested destination type.
	ErrOutOfRange
	// ErrWrongType means extraction expected a different CBOR major type.
	ErrWrongType
	// ErrWrongTag means extraction expected a specific tag number.
	ErrWrongTag
	// ErrNotWrapped means an unwrap was requested on a non-Wrapped envelope.
	ErrNotWrapped
	// ErrNotAssertion means an assertion operation was given a non-Assertion envelope.
	ErrNotAssertion
	// ErrAmbiguousType means a shape query matched more than one alternative.
	ErrAmbiguousType
	// ErrInvalidType means a value's shape doesn't match what the operation requires.
	ErrInvalidType
	// ErrCustom is an escape hatch for higher layers to surface their own message.
	ErrCustom
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnderrun:
		return "Underrun"
	case ErrUnsupportedHeaderValue:
		return "UnsupportedHeaderValue"
	case ErrNonCanonicalNumeric:
		return "NonCanonicalNumeric"
	case ErrInvalidSimpleValue:
		return "InvalidSimpleValue"
	case ErrInvalidString:
		return "InvalidString"
	case ErrNonCanonicalString:
		return "NonCanonicalString"
	case ErrUnusedData:
		return "UnusedData"
	case ErrMisorderedMapKey:
		return "MisorderedMapKey"
	case ErrDuplicateMapKey:
		return "DuplicateMapKey"
	case ErrMissingMapKey:
		return "MissingMapKey"
	case ErrOutOfRange:
		return "OutOfRange"
	case ErrWrongType:
		return "WrongType"
	case ErrWrongTag:
		return "WrongTag"
	case ErrNotWrapped:
		return "NotWrapped"
	case ErrNotAssertion:
		return "NotAssertion"
	case ErrAmbiguousType:
		return "AmbiguousType"
	case ErrInvalidType:
		return "InvalidType"
	case ErrCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Error is the tagged-sum error type every dCBOR and envelope operation
// surfaces. Offset is the byte position of the failure when known (decode
// errors); it is -1 when not applicable.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Message string

	// Extra holds kind-specific detail: the raw byte for
	// ErrUnsupportedHeaderValue, or the expected/actual tag pair for
	// ErrWrongTag ([2]uint64).
	Extra interface{}
}

func (e *Error) Error() string {
	if e.Message != "" {
		if e.Offset >= 0 {
			return fmt.Sprintf("dcbor: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
		}
		return fmt.Sprintf("dcbor: %s: %s", e.Kind, e.Message)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("dcbor: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("dcbor: %s", e.Kind)
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, &dcbor.Error{Kind: dcbor.ErrWrongType}) matches by kind
// alone, ignoring Offset, Message and Extra.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newErr(kind ErrorKind, offset int, msg string) *Error {
	return &Error{Kind: kind, Offset: offset, Message: msg}
}

// wrongTagErr constructs an ErrWrongTag error carrying the expected and actual
// tag numbers, as required by §7.
func wrongTagErr(offset int, expected, actual uint64) *Error {
	return &Error{
		Kind:    ErrWrongTag,
		Offset:  offset,
		Message: fmt.Sprintf("expected tag %d, got %d", expected, actual),
		Extra:   [2]uint64{expected, actual},
	}
}

// Kind is a convenience accessor used by callers that only have an `error`
// in hand and want to discriminate by kind without a type assertion.
func Kind(err error) (ErrorKind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
