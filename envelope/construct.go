package envelope

import "github.com/dcbor-go/dcbor/dcbor"

// Leaf wraps a CBOR value v into a Leaf envelope (§4.11).
func Leaf(v dcbor.Value) *Envelope {
	return newLeaf(v)
}

// Wrap yields Wrapped(e), hiding e's internal structure behind a single
// digest hop while still letting unwrap recover it.
func Wrap(e *Envelope) *Envelope {
	return newWrapped(e)
}

// Unwrap succeeds iff e is Wrapped(inner), returning inner; otherwise it
// reports NotWrapped.
func Unwrap(e *Envelope) (*Envelope, error) {
	if e.kind != CaseWrapped {
		return nil, newErr(dcbor.ErrNotWrapped, "envelope is not Wrapped, got "+e.kind.String())
	}
	return e.wrapped, nil
}

// Assertion constructs an Assertion envelope pairing predicate and object.
func Assertion(predicate, object *Envelope) *Envelope {
	return newAssertion(predicate, object)
}

// AddAssertion attaches a to e (§4.11). Leaf/Wrapped/Assertion/Elided
// ("subject-only") envelopes become a fresh Node with a as its sole
// assertion; an existing Node gains a merged into its assertion set by
// digest, so re-adding an assertion already present returns e itself,
// unchanged.
func AddAssertion(e, a *Envelope) (*Envelope, error) {
	if a.kind != CaseAssertion {
		return nil, newErr(dcbor.ErrNotAssertion, "AddAssertion requires an Assertion envelope, got "+a.kind.String())
	}

	if e.kind != CaseNode {
		return newNode(e, []*Envelope{a}), nil
	}

	for _, existing := range e.node.assertions {
		if existing.digest.Compare(a.digest) == 0 {
			return e, nil
		}
	}
	merged := make([]*Envelope, len(e.node.assertions)+1)
	copy(merged, e.node.assertions)
	merged[len(e.node.assertions)] = a
	return newNode(e.node.subject, merged), nil
}

// Subject returns e for non-Node cases, and the subject of a Node.
func Subject(e *Envelope) *Envelope {
	if e.kind == CaseNode {
		return e.node.subject
	}
	return e
}

// Assertions returns the assertion sequence of a Node, or nil otherwise.
func Assertions(e *Envelope) []*Envelope {
	if e.kind != CaseNode {
		return nil
	}
	out := make([]*Envelope, len(e.node.assertions))
	copy(out, e.node.assertions)
	return out
}

// AssertionsWithPredicate filters e's assertions to those whose predicate
// has pred's digest. Elided assertion slots cannot match: their predicate is
// no longer present to compare.
func AssertionsWithPredicate(e, pred *Envelope) []*Envelope {
	var out []*Envelope
	for _, a := range Assertions(e) {
		if a.kind != CaseAssertion {
			continue
		}
		if a.assert.predicate.digest.Compare(pred.digest) == 0 {
			out = append(out, a)
		}
	}
	return out
}

// ObjectForPredicate returns the object of the unique assertion on e whose
// predicate has pred's digest, failing if there are zero or multiple
// matches.
func ObjectForPredicate(e, pred *Envelope) (*Envelope, error) {
	matches := AssertionsWithPredicate(e, pred)
	switch len(matches) {
	case 0:
		return nil, newErr(dcbor.ErrMissingMapKey, "no assertion found for predicate "+pred.digest.String())
	case 1:
		return matches[0].assert.object, nil
	default:
		return nil, newErr(dcbor.ErrAmbiguousType, "multiple assertions found for predicate "+pred.digest.String())
	}
}
