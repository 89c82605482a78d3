package envelope

import (
	"fmt"

	"github.com/dcbor-go/dcbor/dcbor"
)

// Elide replaces e wholesale with Elided(e.digest) (§4.12). Because
// digest(Elided d) == d, this never changes what an ancestor's own digest
// computes to.
func Elide(e *Envelope) *Envelope {
	return newElided(e.digest)
}

// digestSet is a small membership helper over Digest built once per
// elide/reveal call rather than re-scanning a slice per lookup.
type digestSet map[Digest]struct{}

func newDigestSet(digests []Digest) digestSet {
	s := make(digestSet, len(digests))
	for _, d := range digests {
		s[d] = struct{}{}
	}
	return s
}

func (s digestSet) has(d Digest) bool {
	_, ok := s[d]
	return ok
}

// ElideRemoving walks e, replacing any subtree whose digest is in targets
// with Elided, leaving everything else intact (§4.12). An Assertion whose
// own digest matches is elided whole; a match on only its predicate or
// object elides just that side.
func ElideRemoving(e *Envelope, targets []Digest) *Envelope {
	return elideRemoving(e, newDigestSet(targets))
}

func elideRemoving(e *Envelope, targets digestSet) *Envelope {
	if targets.has(e.digest) {
		return newElided(e.digest)
	}

	switch e.kind {
	case CaseWrapped:
		return newWrapped(elideRemoving(e.wrapped, targets))
	case CaseAssertion:
		pred := elideRemoving(e.assert.predicate, targets)
		obj := elideRemoving(e.assert.object, targets)
		if pred == e.assert.predicate && obj == e.assert.object {
			return e
		}
		return newAssertion(pred, obj)
	case CaseNode:
		subject := elideRemoving(e.node.subject, targets)
		assertions := make([]*Envelope, len(e.node.assertions))
		changed := subject != e.node.subject
		for i, a := range e.node.assertions {
			assertions[i] = elideRemoving(a, targets)
			if assertions[i] != a {
				changed = true
			}
		}
		if !changed {
			return e
		}
		return newNode(subject, assertions)
	default:
		return e
	}
}

// ElideRevealing is the dual of ElideRemoving: a subtree is kept intact iff
// its own digest or some descendant's digest is in reveal; otherwise it is
// replaced by Elided. The root is always revealed.
func ElideRevealing(e *Envelope, reveal []Digest) *Envelope {
	s := newDigestSet(reveal)
	s[e.digest] = struct{}{}
	kept, _ := elideRevealing(e, s)
	return kept
}

// elideRevealing returns the possibly-elided envelope and whether e itself
// or any of its descendants matched reveal, which callers use to decide if a
// parent must stay unelided regardless of the parent's own match.
func elideRevealing(e *Envelope, reveal digestSet) (*Envelope, bool) {
	selfRevealed := reveal.has(e.digest)

	switch e.kind {
	case CaseWrapped:
		inner, innerRevealed := elideRevealing(e.wrapped, reveal)
		if !selfRevealed && !innerRevealed {
			return newElided(e.digest), false
		}
		return newWrapped(inner), selfRevealed || innerRevealed
	case CaseAssertion:
		pred, predRevealed := elideRevealing(e.assert.predicate, reveal)
		obj, objRevealed := elideRevealing(e.assert.object, reveal)
		if !selfRevealed && !predRevealed && !objRevealed {
			return newElided(e.digest), false
		}
		return newAssertion(pred, obj), selfRevealed || predRevealed || objRevealed
	case CaseNode:
		subject, subjectRevealed := elideRevealing(e.node.subject, reveal)
		assertions := make([]*Envelope, len(e.node.assertions))
		anyRevealed := selfRevealed || subjectRevealed
		for i, a := range e.node.assertions {
			var rev bool
			assertions[i], rev = elideRevealing(a, reveal)
			anyRevealed = anyRevealed || rev
		}
		if !anyRevealed {
			return newElided(e.digest), false
		}
		return newNode(subject, assertions), anyRevealed
	default:
		if !selfRevealed {
			return newElided(e.digest), false
		}
		return e, true
	}
}

// Unelide replaces every Elided(d) in e with a subtree of source whose
// digest equals d, found by searching source (§4.12). It fails if source
// contains no subtree with a digest some Elided node in e needs.
func Unelide(e, source *Envelope) (*Envelope, error) {
	return WalkUnelide(e, []*Envelope{source})
}

// WalkUnelide is like Unelide but takes an arbitrary number of candidate
// sources; each Elided(d) is replaced by the first source containing a
// subtree whose digest equals d.
func WalkUnelide(e *Envelope, sources []*Envelope) (*Envelope, error) {
	if e.kind == CaseElided {
		for _, src := range sources {
			if found := findByDigest(src, e.elided); found != nil {
				return found, nil
			}
		}
		return nil, newErr(dcbor.ErrCustom, "no source contains digest "+e.elided.String())
	}

	var result *Envelope
	switch e.kind {
	case CaseWrapped:
		inner, err := WalkUnelide(e.wrapped, sources)
		if err != nil {
			return nil, err
		}
		result = newWrapped(inner)
	case CaseAssertion:
		pred, err := WalkUnelide(e.assert.predicate, sources)
		if err != nil {
			return nil, err
		}
		obj, err := WalkUnelide(e.assert.object, sources)
		if err != nil {
			return nil, err
		}
		result = newAssertion(pred, obj)
	case CaseNode:
		subject, err := WalkUnelide(e.node.subject, sources)
		if err != nil {
			return nil, err
		}
		assertions := make([]*Envelope, len(e.node.assertions))
		for i, a := range e.node.assertions {
			var err error
			assertions[i], err = WalkUnelide(a, sources)
			if err != nil {
				return nil, err
			}
		}
		result = newNode(subject, assertions)
	default:
		return e, nil
	}

	if result.digest.Compare(e.digest) != 0 {
		return nil, newErr(dcbor.ErrCustom, fmt.Sprintf("unelide produced digest %s, expected %s", result.digest, e.digest))
	}
	return result, nil
}

// findByDigest searches e's subtree for an envelope whose digest equals d.
func findByDigest(e *Envelope, d Digest) *Envelope {
	var found *Envelope
	Walk(e, nil, func(node *Envelope, depth int, edge EdgeKind, state interface{}) (interface{}, bool) {
		if found != nil {
			return state, true
		}
		if node.digest.Compare(d) == 0 {
			found = node
			return state, true
		}
		return state, false
	})
	return found
}
