package envelope

import "github.com/dcbor-go/dcbor/dcbor"

// Wire tag numbers for the envelope-to-CBOR mapping (§6.2). These are
// nominal placeholders per the spec; what matters is that they are applied
// consistently and that the Assertion case always takes the
// tag-221-wraps-Map(1) shape below, never a fused tag/map short-cut — see
// the "CborMap parsing issue" note resolved by EncodeEnvelope/DecodeEnvelope.
const (
	TagEnvelope   uint64 = 200
	TagWrapped    uint64 = 224
	TagAssertion  uint64 = 221
	TagNode       uint64 = 217
	TagElided     uint64 = 203
	TagEncrypted  uint64 = 204
	TagCompressed uint64 = 205
)

// EncodeEnvelope renders e as its tag-200 CBOR representation (§6.2).
func EncodeEnvelope(e *Envelope) dcbor.Value {
	return dcbor.Tag(TagEnvelope, encodeCase(e))
}

// Encode is the byte-producing convenience wrapper over EncodeEnvelope.
func Encode(e *Envelope) []byte {
	return dcbor.Encode(EncodeEnvelope(e))
}

func encodeCase(e *Envelope) dcbor.Value {
	switch e.kind {
	case CaseLeaf:
		return dcbor.Tag(dcbor.TagEncodedCBOR, e.leaf)

	case CaseWrapped:
		return dcbor.Tag(TagWrapped, EncodeEnvelope(e.wrapped))

	case CaseAssertion:
		// Every assertion is unambiguously tag 221 wrapping a 1-entry map;
		// there is no tag/map-fusing short-cut that could leave a decoder
		// guessing whether the wrapped value is the map itself or a
		// further-tagged indirection.
		m := dcbor.NewMap()
		_ = m.Set(EncodeEnvelope(e.assert.predicate), EncodeEnvelope(e.assert.object))
		return dcbor.Tag(TagAssertion, dcbor.MapValue(m))

	case CaseNode:
		assertions := make([]dcbor.Value, len(e.node.assertions))
		for i, a := range e.node.assertions {
			assertions[i] = EncodeEnvelope(a)
		}
		pair := dcbor.Array([]dcbor.Value{EncodeEnvelope(e.node.subject), dcbor.Array(assertions)})
		return dcbor.Tag(TagNode, pair)

	case CaseElided:
		return dcbor.Tag(TagElided, dcbor.Bytes(e.elided[:]))

	case CaseEncrypted:
		return dcbor.Tag(TagEncrypted, encodeOpaque(e.opaque))

	case CaseCompressed:
		return dcbor.Tag(TagCompressed, encodeOpaque(e.opaque))

	default:
		panic("envelope: unreachable case in encodeCase")
	}
}

func encodeOpaque(o opaqueBlob) dcbor.Value {
	return dcbor.Array([]dcbor.Value{dcbor.Bytes(o.digest[:]), o.payload})
}

// DecodeEnvelope parses data as a tag-200 envelope (§6.2), recomputing the
// digest of every Leaf, Wrapped, Assertion and Node from its content as it
// reconstructs the tree, so no digest for those cases is read from the
// wire. The digests carried by Elided, Encrypted and Compressed cases are
// taken as given.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	v, err := dcbor.Decode(data)
	if err != nil {
		return nil, err
	}
	content, err := v.ExpectTag(TagEnvelope)
	if err != nil {
		return nil, err
	}
	return decodeCase(content)
}

func decodeCase(v dcbor.Value) (*Envelope, error) {
	tag, content, err := v.TaggedValue()
	if err != nil {
		return nil, err
	}

	switch tag {
	case dcbor.TagEncodedCBOR:
		return newLeaf(content), nil

	case TagWrapped:
		inner, err := decodeInnerEnvelope(content)
		if err != nil {
			return nil, err
		}
		return newWrapped(inner), nil

	case TagAssertion:
		m, err := content.AsMap()
		if err != nil {
			return nil, err
		}
		if m.Len() != 1 {
			return nil, newErr(dcbor.ErrInvalidType, "assertion map must have exactly one entry")
		}
		entry := m.Entries()[0]
		predicate, err := decodeInnerEnvelope(entry.Key)
		if err != nil {
			return nil, err
		}
		object, err := decodeInnerEnvelope(entry.Value)
		if err != nil {
			return nil, err
		}
		return newAssertion(predicate, object), nil

	case TagNode:
		items, err := content.ArrayValue()
		if err != nil {
			return nil, err
		}
		if len(items) != 2 {
			return nil, newErr(dcbor.ErrInvalidType, "node array must have exactly two elements")
		}
		subject, err := decodeInnerEnvelope(items[0])
		if err != nil {
			return nil, err
		}
		assertionValues, err := items[1].ArrayValue()
		if err != nil {
			return nil, err
		}
		assertions := make([]*Envelope, len(assertionValues))
		for i, av := range assertionValues {
			a, err := decodeInnerEnvelope(av)
			if err != nil {
				return nil, err
			}
			if a.kind != CaseAssertion && a.kind != CaseElided {
				return nil, newErr(dcbor.ErrNotAssertion, "node assertion slot holds neither an Assertion nor an Elided envelope")
			}
			assertions[i] = a
		}
		return newNode(subject, assertions), nil

	case TagElided:
		b, err := content.BytesValue()
		if err != nil {
			return nil, err
		}
		if len(b) != Size {
			return nil, newErr(dcbor.ErrInvalidType, "elided digest must be 32 bytes")
		}
		var d Digest
		copy(d[:], b)
		return newElided(d), nil

	case TagEncrypted:
		o, err := decodeOpaque(content)
		if err != nil {
			return nil, err
		}
		return &Envelope{kind: CaseEncrypted, opaque: o, digest: o.digest}, nil

	case TagCompressed:
		o, err := decodeOpaque(content)
		if err != nil {
			return nil, err
		}
		return &Envelope{kind: CaseCompressed, opaque: o, digest: o.digest}, nil

	default:
		return nil, newErr(dcbor.ErrWrongTag, "unrecognised envelope case tag")
	}
}

// decodeInnerEnvelope decodes a nested tag-200 envelope value that appears
// as a map key, array element, or tagged content elsewhere in the wire
// structure.
func decodeInnerEnvelope(v dcbor.Value) (*Envelope, error) {
	content, err := v.ExpectTag(TagEnvelope)
	if err != nil {
		return nil, err
	}
	return decodeCase(content)
}

func decodeOpaque(v dcbor.Value) (opaqueBlob, error) {
	items, err := v.ArrayValue()
	if err != nil {
		return opaqueBlob{}, err
	}
	if len(items) != 2 {
		return opaqueBlob{}, newErr(dcbor.ErrInvalidType, "opaque blob must have exactly two elements")
	}
	b, err := items[0].BytesValue()
	if err != nil {
		return opaqueBlob{}, err
	}
	if len(b) != Size {
		return opaqueBlob{}, newErr(dcbor.ErrInvalidType, "opaque blob digest must be 32 bytes")
	}
	var d Digest
	copy(d[:], b)
	return opaqueBlob{digest: d, payload: items[1]}, nil
}
