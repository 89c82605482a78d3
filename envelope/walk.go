package envelope

// EdgeKind names the relationship between an envelope and the child an
// envelope-aware walk is about to visit (§4.9, specialised to envelope
// shape rather than bare CBOR structure).
type EdgeKind int

const (
	EdgeRoot EdgeKind = iota
	EdgeSubject
	EdgeAssertion
	EdgePredicate
	EdgeObject
	EdgeContent
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeRoot:
		return "root"
	case EdgeSubject:
		return "subj"
	case EdgeAssertion:
		return "assertion"
	case EdgePredicate:
		return "pred"
	case EdgeObject:
		return "obj"
	case EdgeContent:
		return "cont"
	default:
		return "unknown"
	}
}

// Visitor is called once per envelope node a Walk visits. It returns the
// state threaded to subsequent calls and whether to skip descending into
// this node's children.
type Visitor func(e *Envelope, depth int, edge EdgeKind, state interface{}) (newState interface{}, stopDescent bool)

// Walk performs a single-threaded, cooperative depth-first traversal of e
// (§4.9), visiting Node subjects before assertions, and each assertion's
// predicate before its object.
func Walk(e *Envelope, state interface{}, visit Visitor) interface{} {
	state, _ = walkEnvelope(e, 0, EdgeRoot, state, visit)
	return state
}

func walkEnvelope(e *Envelope, depth int, edge EdgeKind, state interface{}, visit Visitor) (interface{}, bool) {
	state, stop := visit(e, depth, edge, state)
	if stop {
		return state, false
	}

	switch e.kind {
	case CaseWrapped:
		state, _ = walkEnvelope(e.wrapped, depth+1, EdgeContent, state, visit)
	case CaseAssertion:
		state, _ = walkEnvelope(e.assert.predicate, depth+1, EdgePredicate, state, visit)
		state, _ = walkEnvelope(e.assert.object, depth+1, EdgeObject, state, visit)
	case CaseNode:
		state, _ = walkEnvelope(e.node.subject, depth+1, EdgeSubject, state, visit)
		for _, a := range e.node.assertions {
			state, _ = walkEnvelope(a, depth+1, EdgeAssertion, state, visit)
		}
	}

	return state, false
}
