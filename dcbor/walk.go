package dcbor

// EdgeKind identifies the edge taken from a parent element to a child during
// a walk (§4.9).
type EdgeKind int

const (
	EdgeNone EdgeKind = iota
	EdgeArrayElement
	EdgeMapKeyValue
	EdgeMapKey
	EdgeMapValue
	EdgeTaggedContent
)

// Edge describes the incoming edge for one walk step. Index is only
// meaningful for EdgeArrayElement.
type Edge struct {
	Kind  EdgeKind
	Index int
}

// Element is one unit the walker yields: either a bare value, or a map
// entry's (key, value) pair emitted once before the walker descends into
// the key and then the value individually.
type Element struct {
	Single *Value
	Key    *Value
	KeyVal *Value // the value half of a KeyValue element
}

// IsKeyValue reports whether this element is a map-entry pair rather than a
// single value.
func (e Element) IsKeyValue() bool { return e.Key != nil }

// Visitor is called once per element the walker visits. It returns the new
// state to thread to subsequent calls and whether the walker should skip
// descending into this element's children (siblings are still visited).
type Visitor func(elem Element, depth int, edge Edge, state interface{}) (newState interface{}, stopDescent bool)

// Walk performs a single-threaded, cooperative depth-first traversal of v,
// starting with state as the initial state (§4.9). There is no way for a
// visitor to abort the whole walk from a single return; to do that it must
// fold a "stop" flag into its own state and return stopDescent on every
// subsequent call.
func Walk(v Value, state interface{}, visit Visitor) interface{} {
	state, _ = walkValue(v, 0, Edge{Kind: EdgeNone}, state, visit)
	return state
}

func walkValue(v Value, depth int, edge Edge, state interface{}, visit Visitor) (interface{}, bool) {
	elem := Element{Single: &v}
	newState, stop := visit(elem, depth, edge, state)
	state = newState
	if stop {
		return state, false
	}

	switch v.kind {
	case KindArray:
		for i, item := range v.array {
			state, _ = walkValue(item, depth+1, Edge{Kind: EdgeArrayElement, Index: i}, state, visit)
		}
	case KindMap:
		for _, e := range v.m.Entries() {
			key, val := e.Key, e.Value
			kvElem := Element{Key: &key, KeyVal: &val}
			state, stop = visit(kvElem, depth+1, Edge{Kind: EdgeMapKeyValue}, state)
			if stop {
				continue
			}
			state, _ = walkValue(key, depth+2, Edge{Kind: EdgeMapKey}, state, visit)
			state, _ = walkValue(val, depth+2, Edge{Kind: EdgeMapValue}, state, visit)
		}
	case KindTagged:
		state, _ = walkValue(v.tagged.Content, depth+1, Edge{Kind: EdgeTaggedContent}, state, visit)
	}

	return state, false
}
