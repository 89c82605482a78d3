package envelope

// Proof is a digest-preserving partial elision of an envelope: it carries
// the same root digest as the original but may have had non-target
// subtrees replaced by Elided (§4.13).
type Proof struct {
	Envelope *Envelope
}

// ancestorPath records, for one subtree found during a traversal, the
// digests from the root down to (and including) that subtree.
type ancestorPath []Digest

// ProofContainsSet builds a Proof that e contains a subtree with each
// digest in targets, revealing only what's necessary to demonstrate that
// and eliding everything else. It returns ok=false if any target digest
// has no corresponding subtree in e.
func ProofContainsSet(e *Envelope, targets []Digest) (Proof, bool) {
	paths := collectAncestorPaths(e)

	reveal := make(digestSet)
	for _, t := range targets {
		path, found := paths[t]
		if !found {
			return Proof{}, false
		}
		for _, d := range path {
			reveal[d] = struct{}{}
		}
	}

	revealList := make([]Digest, 0, len(reveal))
	for d := range reveal {
		revealList = append(revealList, d)
	}

	revealed := ElideRevealing(e, revealList)
	minimal := ElideRemoving(revealed, targets)
	return Proof{Envelope: minimal}, true
}

// ProofContains is the single-target convenience wrapper over
// ProofContainsSet.
func ProofContains(e *Envelope, target Digest) (Proof, bool) {
	return ProofContainsSet(e, []Digest{target})
}

// ConfirmContainsSet verifies a Proof against the digest the verifier
// already trusts for the original envelope: P's own digest must match
// rootDigest, and every target digest must appear somewhere within P. The
// verifier never needs the original envelope e, only its digest.
func ConfirmContainsSet(rootDigest Digest, targets []Digest, p Proof) bool {
	if p.Envelope == nil || p.Envelope.digest.Compare(rootDigest) != 0 {
		return false
	}
	present := collectAllDigests(p.Envelope)
	for _, t := range targets {
		if !present.has(t) {
			return false
		}
	}
	return true
}

// ConfirmContains is the single-target convenience wrapper over
// ConfirmContainsSet.
func ConfirmContains(rootDigest Digest, target Digest, p Proof) bool {
	return ConfirmContainsSet(rootDigest, []Digest{target}, p)
}

// collectAncestorPaths maps every digest reachable in e to the sequence of
// ancestor digests (root-first, inclusive) leading to it.
func collectAncestorPaths(e *Envelope) map[Digest]ancestorPath {
	paths := make(map[Digest]ancestorPath)
	var walk func(node *Envelope, path ancestorPath)
	walk = func(node *Envelope, path ancestorPath) {
		here := append(append(ancestorPath{}, path...), node.digest)
		if _, seen := paths[node.digest]; !seen {
			paths[node.digest] = here
		}

		switch node.kind {
		case CaseWrapped:
			walk(node.wrapped, here)
		case CaseAssertion:
			walk(node.assert.predicate, here)
			walk(node.assert.object, here)
		case CaseNode:
			walk(node.node.subject, here)
			for _, a := range node.node.assertions {
				walk(a, here)
			}
		}
	}
	walk(e, nil)
	return paths
}

// collectAllDigests returns the set of every digest reachable in e,
// including digests left behind by Elided placeholders.
func collectAllDigests(e *Envelope) digestSet {
	set := make(digestSet)
	Walk(e, nil, func(node *Envelope, depth int, edge EdgeKind, state interface{}) (interface{}, bool) {
		set[node.digest] = struct{}{}
		return state, false
	})
	return set
}
