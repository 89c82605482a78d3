package dcbor

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// HexDump renders data as a multi-line annotated hex dump (§4.8): one line
// per CBOR head or scalar payload, each followed by a tree-indented
// description naming the major type, its argument, and — for tagged values
// — the tag's registered name. It is purely diagnostic; unlike Decode it is
// not meant to be the conformance gate. It is built on the same
// canonical-head and float parsing, so non-minimal heads, reserved or
// indefinite-length heads, invalid simple values and reducible floats are
// reported as errors; text strings are not checked for UTF-8 or NFC, map
// key order is not checked, and several top-level items in data are each
// annotated in turn rather than reported as unused data.
func HexDump(data []byte, reg *Registry) (string, error) {
	reg = registryOrDefault(reg)
	var lines []string
	pos := 0
	for pos < len(data) {
		consumed, err := annotate(data, pos, 0, reg, &lines)
		if err != nil {
			return "", err
		}
		pos += consumed
	}
	return strings.Join(lines, "\n"), nil
}

func annotateLine(data []byte, start, end, depth int, desc string, lines *[]string) {
	indent := strings.Repeat("  ", depth)
	*lines = append(*lines, fmt.Sprintf("%s  # %s%s", hex.EncodeToString(data[start:end]), indent, desc))
}

// annotate parses one item at data[offset:], appending its line(s) to
// *lines, and returns the number of bytes consumed.
func annotate(data []byte, offset, depth int, reg *Registry, lines *[]string) (int, error) {
	if offset >= len(data) {
		return 0, newErr(ErrUnderrun, offset, "expected a data item")
	}

	mt, _ := decodeInitialByte(data[offset])
	if mt == MajorSimple {
		v, n, err := decodeSimple(data[offset:], offset)
		if err != nil {
			return 0, err
		}
		annotateLine(data, offset, offset+n, depth, describeSimple(v), lines)
		return n, nil
	}

	majorType, arg, n, err := decodeHead(data[offset:], offset)
	if err != nil {
		return 0, err
	}

	switch majorType {
	case MajorUnsigned:
		annotateLine(data, offset, offset+n, depth, fmt.Sprintf("unsigned(%d)", arg), lines)
		return n, nil

	case MajorNegative:
		annotateLine(data, offset, offset+n, depth, fmt.Sprintf("negative(-%d)", arg+1), lines)
		return n, nil

	case MajorBytes:
		end := n + int(arg)
		if end < n || end > len(data)-offset {
			return 0, newErr(ErrUnderrun, offset+n, "truncated byte string")
		}
		annotateLine(data, offset, offset+end, depth, fmt.Sprintf("bytes(%d)", arg), lines)
		return end, nil

	case MajorText:
		end := n + int(arg)
		if end < n || end > len(data)-offset {
			return 0, newErr(ErrUnderrun, offset+n, "truncated text string")
		}
		annotateLine(data, offset, offset+end, depth, fmt.Sprintf("text(%d)", arg), lines)
		return end, nil

	case MajorArray:
		annotateLine(data, offset, offset+n, depth, fmt.Sprintf("array(%d)", arg), lines)
		pos := offset + n
		for i := uint64(0); i < arg; i++ {
			consumed, cerr := annotate(data, pos, depth+1, reg, lines)
			if cerr != nil {
				return 0, cerr
			}
			pos += consumed
		}
		return pos - offset, nil

	case MajorMap:
		annotateLine(data, offset, offset+n, depth, fmt.Sprintf("map(%d)", arg), lines)
		pos := offset + n
		for i := uint64(0); i < arg; i++ {
			kc, kerr := annotate(data, pos, depth+1, reg, lines)
			if kerr != nil {
				return 0, kerr
			}
			pos += kc
			vc, verr := annotate(data, pos, depth+1, reg, lines)
			if verr != nil {
				return 0, verr
			}
			pos += vc
		}
		return pos - offset, nil

	case MajorTag:
		annotateLine(data, offset, offset+n, depth, fmt.Sprintf("tag(%s)", reg.Name(arg)), lines)
		consumed, cerr := annotate(data, offset+n, depth+1, reg, lines)
		if cerr != nil {
			return 0, cerr
		}
		return n + consumed, nil

	default:
		return 0, newErr(ErrInvalidString, offset, "unreachable major type")
	}
}

func describeSimple(v Value) string {
	switch v.simple {
	case SimpleKindFalse:
		return "false"
	case SimpleKindTrue:
		return "true"
	case SimpleKindNull:
		return "null"
	case SimpleKindFloat16:
		return "float16"
	case SimpleKindFloat32:
		return "float32"
	case SimpleKindFloat64:
		return "float64"
	default:
		return "simple"
	}
}
