// Package dcbor implements deterministic CBOR (dCBOR): a canonical binary
// encoding over the CBOR data model of RFC 8949, in which every abstract
// value has exactly one valid byte representation and decoding rejects any
// input that is not already in that canonical form.
package dcbor

// MajorType represents the CBOR major type (3-bit value in the initial byte).
type MajorType byte

const (
	// MajorUnsigned is an unsigned integer (major type 0).
	MajorUnsigned MajorType = 0
	// MajorNegative is a negative integer (major type 1).
	MajorNegative MajorType = 1
	// MajorBytes is a byte string (major type 2).
	MajorBytes MajorType = 2
	// MajorText is a UTF-8 text string (major type 3).
	MajorText MajorType = 3
	// MajorArray is an array of data items (major type 4).
	MajorArray MajorType = 4
	// MajorMap is a map of key/value pairs (major type 5).
	MajorMap MajorType = 5
	// MajorTag is a tagged data item (major type 6).
	MajorTag MajorType = 6
	// MajorSimple carries simple values and floats (major type 7).
	MajorSimple MajorType = 7
)

// String returns the name of the major type.
func (mt MajorType) String() string {
	switch mt {
	case MajorUnsigned:
		return "Unsigned"
	case MajorNegative:
		return "Negative"
	case MajorBytes:
		return "Bytes"
	case MajorText:
		return "Text"
	case MajorArray:
		return "Array"
	case MajorMap:
		return "Map"
	case MajorTag:
		return "Tag"
	case MajorSimple:
		return "Simple"
	default:
		return "Unknown"
	}
}

// Additional-info values for the argument-width cascade of §4.1. Canonical
// encoding always picks the narrowest of these that holds the argument.
const (
	ai8Bit       byte = 24
	ai16Bit      byte = 25
	ai32Bit      byte = 26
	ai64Bit      byte = 27
	aiReservedLo byte = 28
	aiReservedHi byte = 30
	aiIndefinite byte = 31
)

// SimpleCode identifies the simple values a canonical encoding allows under
// major type 7 outside of the float heads: false, true and null. Any other
// additional-info value that isn't a recognised float head is InvalidSimpleValue.
type SimpleCode byte

const (
	SimpleFalse SimpleCode = 20
	SimpleTrue  SimpleCode = 21
	SimpleNull  SimpleCode = 22
)

// Well-known tag numbers the core itself interprets. The envelope wire
// mapping (tag 200 and friends) is owned by the envelope package.
const (
	TagEncodedCBOR       uint64 = 24
	TagSelfDescribedCBOR uint64 = 55799
)

// breakByte would terminate an indefinite-length item; dCBOR never emits or
// accepts one (UnsupportedHeaderValue), but decode must recognise it to
// produce the right error instead of misreading it as a head.
const breakByte byte = 0xff

func encodeInitialByte(mt MajorType, ai byte) byte {
	return byte(mt)<<5 | (ai & 0x1f)
}

func decodeInitialByte(b byte) (MajorType, byte) {
	return MajorType(b >> 5), b & 0x1f
}
