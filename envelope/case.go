package envelope

import "github.com/dcbor-go/dcbor/dcbor"

// Case discriminates the shapes an Envelope can take (§3.2).
type Case int

const (
	CaseLeaf Case = iota
	CaseWrapped
	CaseAssertion
	CaseNode
	CaseElided
	CaseEncrypted
	CaseCompressed
)

func (c Case) String() string {
	switch c {
	case CaseLeaf:
		return "Leaf"
	case CaseWrapped:
		return "Wrapped"
	case CaseAssertion:
		return "Assertion"
	case CaseNode:
		return "Node"
	case CaseElided:
		return "Elided"
	case CaseEncrypted:
		return "Encrypted"
	case CaseCompressed:
		return "Compressed"
	default:
		return "Unknown"
	}
}

// assertionPair holds the predicate/object envelopes of an Assertion case.
type assertionPair struct {
	predicate *Envelope
	object    *Envelope
}

// nodeBody holds the subject and assertion set of a Node case. Assertions
// are kept in the order they were added; newNode sorts their digests before
// hashing, so two Nodes built through different AddAssertion call orders
// have identical digests even though their assertion order differs.
type nodeBody struct {
	subject    *Envelope
	assertions []*Envelope
}

// opaqueBlob holds the payload of the Encrypted/Compressed extension cases:
// an opaque transport blob alongside the digest it stands in for (§6.2).
type opaqueBlob struct {
	digest  Digest
	payload dcbor.Value
}

// Envelope is an immutable, content-addressed node in a Merkle-DAG-shaped
// data structure (§3.2). Every Envelope caches its own digest at
// construction time, computed once per the formulas of §4.10; all
// operations in this package return new Envelopes built from existing ones,
// never mutate in place, so subtrees are always safe to share.
type Envelope struct {
	kind Case

	leaf    dcbor.Value // CaseLeaf
	wrapped *Envelope   // CaseWrapped
	assert  assertionPair
	node    nodeBody
	elided  Digest // CaseElided
	opaque  opaqueBlob

	digest Digest
}

// Digest returns e's content digest.
func (e *Envelope) Digest() Digest { return e.digest }

// Case returns e's discriminant.
func (e *Envelope) Case() Case { return e.kind }

// Equal reports whether a and b have the same digest — the definition of
// envelope equality in §4.10.
func Equal(a, b *Envelope) bool {
	return a.digest.Compare(b.digest) == 0
}

func newLeaf(v dcbor.Value) *Envelope {
	return &Envelope{kind: CaseLeaf, leaf: v, digest: digestOfCBOR(dcbor.Tag(dcbor.TagEncodedCBOR, v))}
}

func newWrapped(inner *Envelope) *Envelope {
	return &Envelope{kind: CaseWrapped, wrapped: inner, digest: FromBytes(inner.digest[:])}
}

func newAssertion(predicate, object *Envelope) *Envelope {
	h := concatDigests(predicate.digest, object.digest)
	return &Envelope{
		kind:   CaseAssertion,
		assert: assertionPair{predicate: predicate, object: object},
		digest: h,
	}
}

func newNode(subject *Envelope, assertions []*Envelope) *Envelope {
	digests := make([]Digest, len(assertions))
	for i, a := range assertions {
		digests[i] = a.digest
	}
	sorted := sortAscending(digests)

	var buf []byte
	buf = append(buf, subject.digest[:]...)
	for _, d := range sorted {
		buf = append(buf, d[:]...)
	}

	return &Envelope{
		kind:   CaseNode,
		node:   nodeBody{subject: subject, assertions: assertions},
		digest: FromBytes(buf),
	}
}

func newElided(d Digest) *Envelope {
	return &Envelope{kind: CaseElided, elided: d, digest: d}
}

func concatDigests(a, b Digest) Digest {
	var buf [2 * Size]byte
	copy(buf[:Size], a[:])
	copy(buf[Size:], b[:])
	return FromBytes(buf[:])
}
