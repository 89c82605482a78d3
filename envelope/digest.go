package envelope

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/dcbor-go/dcbor/dcbor"
)

// Size is the byte length of a Digest: SHA-256 throughout.
const Size = sha256.Size

// Digest is the 32-byte SHA-256 output that identifies an envelope or a CBOR
// value by content. Digests compare and sort as big-endian integers, which
// is equivalent to lexicographic byte comparison.
type Digest [Size]byte

// String renders d as lowercase hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Bytes returns a copy of d's 32 bytes.
func (d Digest) Bytes() []byte {
	out := make([]byte, Size)
	copy(out, d[:])
	return out
}

// Compare orders digests as big-endian integers (§4.10's sort_asc).
func (d Digest) Compare(o Digest) int {
	return bytes.Compare(d[:], o[:])
}

// ParseDigest parses a 64-character hex string into a Digest.
func ParseDigest(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, newErr(dcbor.ErrInvalidType, "invalid digest hex: "+err.Error())
	}
	if len(b) != Size {
		return Digest{}, newErr(dcbor.ErrInvalidType, fmt.Sprintf("digest must be %d bytes, got %d", Size, len(b)))
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

// FromBytes wraps an arbitrary byte slice as its SHA-256 digest.
func FromBytes(b []byte) Digest {
	return sha256.Sum256(b)
}

// digestOfCBOR hashes the canonical encoding of v — the building block every
// case formula in §4.10 composes.
func digestOfCBOR(v dcbor.Value) Digest {
	return sha256.Sum256(dcbor.Encode(v))
}

// sortAscending sorts digests as big-endian integers, deduplicating equal
// entries — the "Duplicate assertion digests are deduplicated" rule of
// §4.10, so adding the same assertion twice never changes a Node's digest.
func sortAscending(digests []Digest) []Digest {
	cp := make([]Digest, len(digests))
	copy(cp, digests)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Compare(cp[j]) < 0 })

	out := cp[:0]
	for i, d := range cp {
		if i == 0 || d.Compare(out[len(out)-1]) != 0 {
			out = append(out, d)
		}
	}
	return out
}
