package dcbor

import "testing"

func TestWalkCountsElements(t *testing.T) {
	v := Array([]Value{Uint(1), Text("a"), Array([]Value{Uint(2)})})
	count := Walk(v, 0, func(elem Element, depth int, edge Edge, state interface{}) (interface{}, bool) {
		return state.(int) + 1, false
	})
	// root array, 1, "a", nested array, 2 = 5 elements.
	if count.(int) != 5 {
		t.Fatalf("Walk count = %d, want 5", count)
	}
}

func TestWalkStopDescent(t *testing.T) {
	v := Array([]Value{Array([]Value{Uint(1), Uint(2)}), Uint(3)})
	var visited []Kind
	Walk(v, nil, func(elem Element, depth int, edge Edge, state interface{}) (interface{}, bool) {
		if elem.Single != nil {
			visited = append(visited, elem.Single.Kind())
			// skip descending into the first nested array
			if elem.Single.Kind() == KindArray && depth == 1 {
				return state, true
			}
		}
		return state, false
	})
	// expect: root array, inner array (stopped), 3 -- not 1 and 2.
	if len(visited) != 3 {
		t.Fatalf("visited = %v, want 3 elements", visited)
	}
	if visited[2] != KindUnsigned {
		t.Fatalf("the sibling scalar after the stopped subtree must still be visited, got %v", visited)
	}
}

func TestWalkMapEmitsKeyValueThenKeyAndValue(t *testing.T) {
	m := NewMap()
	m.Set(Uint(1), Text("one"))
	v := MapValue(m)

	var edges []EdgeKind
	Walk(v, nil, func(elem Element, depth int, edge Edge, state interface{}) (interface{}, bool) {
		edges = append(edges, edge.Kind)
		return state, false
	})
	// root (EdgeNone), map-entry pair (EdgeMapKeyValue), key (EdgeMapKey), value (EdgeMapValue)
	want := []EdgeKind{EdgeNone, EdgeMapKeyValue, EdgeMapKey, EdgeMapValue}
	if len(edges) != len(want) {
		t.Fatalf("edges = %v, want %v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Fatalf("edges[%d] = %v, want %v", i, edges[i], want[i])
		}
	}
}

func TestWalkTaggedDescendsIntoContent(t *testing.T) {
	v := Tag(5, Uint(9))
	var kinds []Kind
	Walk(v, nil, func(elem Element, depth int, edge Edge, state interface{}) (interface{}, bool) {
		if elem.Single != nil {
			kinds = append(kinds, elem.Single.Kind())
		}
		return state, false
	})
	if len(kinds) != 2 || kinds[0] != KindTagged || kinds[1] != KindUnsigned {
		t.Fatalf("kinds = %v, want [Tagged Unsigned]", kinds)
	}
}
