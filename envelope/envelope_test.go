package envelope

import (
	"testing"

	"github.com/dcbor-go/dcbor/dcbor"
)

func mustNewAssertion(t *testing.T, pred, obj dcbor.Value) *Envelope {
	t.Helper()
	return Assertion(Leaf(pred), Leaf(obj))
}

func TestLeafDigestIsDeterministic(t *testing.T) {
	a := Leaf(dcbor.Text("hello"))
	b := Leaf(dcbor.Text("hello"))
	if !Equal(a, b) {
		t.Fatalf("two leaves of the same value must have equal digests")
	}

	c := Leaf(dcbor.Text("world"))
	if Equal(a, c) {
		t.Fatalf("leaves of different values must have different digests")
	}
}

func TestAddAssertionCreatesNode(t *testing.T) {
	subject := Leaf(dcbor.Text("Alice"))
	knows := mustNewAssertion(t, dcbor.Text("knows"), dcbor.Text("Bob"))

	node, err := AddAssertion(subject, knows)
	if err != nil {
		t.Fatalf("AddAssertion: %v", err)
	}
	if node.Case() != CaseNode {
		t.Fatalf("Case() = %v, want Node", node.Case())
	}
	if !Equal(Subject(node), subject) {
		t.Fatalf("Subject(node) should equal the original subject")
	}
	if len(Assertions(node)) != 1 {
		t.Fatalf("Assertions(node) = %d, want 1", len(Assertions(node)))
	}
}

func TestAddAssertionRejectsNonAssertion(t *testing.T) {
	subject := Leaf(dcbor.Text("Alice"))
	_, err := AddAssertion(subject, Leaf(dcbor.Text("not an assertion")))
	if err == nil {
		t.Fatalf("expected NotAssertion error")
	}
	if kind, _ := dcbor.Kind(err); kind != dcbor.ErrNotAssertion {
		t.Fatalf("got kind %v, want NotAssertion", kind)
	}
}

func TestAddAssertionIsIdempotentAtDigestLevel(t *testing.T) {
	subject := Leaf(dcbor.Text("Alice"))
	knows := mustNewAssertion(t, dcbor.Text("knows"), dcbor.Text("Bob"))

	once, err := AddAssertion(subject, knows)
	if err != nil {
		t.Fatalf("AddAssertion: %v", err)
	}
	twice, err := AddAssertion(once, knows)
	if err != nil {
		t.Fatalf("AddAssertion (second): %v", err)
	}
	if !Equal(once, twice) {
		t.Fatalf("adding the same assertion twice must not change the digest")
	}
}

func TestNodeAssertionOrderDoesNotAffectDigest(t *testing.T) {
	subject := Leaf(dcbor.Text("Alice"))
	a1 := mustNewAssertion(t, dcbor.Text("knows"), dcbor.Text("Bob"))
	a2 := mustNewAssertion(t, dcbor.Text("knows"), dcbor.Text("Carol"))

	n1, _ := AddAssertion(subject, a1)
	n1, _ = AddAssertion(n1, a2)

	n2, _ := AddAssertion(subject, a2)
	n2, _ = AddAssertion(n2, a1)

	if !Equal(n1, n2) {
		t.Fatalf("insertion order must not affect a Node's digest")
	}
}

func TestObjectForPredicate(t *testing.T) {
	subject := Leaf(dcbor.Text("Alice"))
	knowsPred := Leaf(dcbor.Text("knows"))
	knows := Assertion(knowsPred, Leaf(dcbor.Text("Bob")))
	node, _ := AddAssertion(subject, knows)

	obj, err := ObjectForPredicate(node, knowsPred)
	if err != nil {
		t.Fatalf("ObjectForPredicate: %v", err)
	}
	s, _ := obj.leaf.TextValue()
	if s != "Bob" {
		t.Fatalf("object = %q, want Bob", s)
	}

	missingPred := Leaf(dcbor.Text("age"))
	if _, err := ObjectForPredicate(node, missingPred); err == nil {
		t.Fatalf("expected MissingMapKey error for absent predicate")
	}
}

func TestWrapUnwrap(t *testing.T) {
	inner := Leaf(dcbor.Uint(7))
	wrapped := Wrap(inner)
	if wrapped.Case() != CaseWrapped {
		t.Fatalf("Case() = %v, want Wrapped", wrapped.Case())
	}

	unwrapped, err := Unwrap(wrapped)
	if err != nil {
		t.Fatalf("Unwrap: %v", err)
	}
	if !Equal(unwrapped, inner) {
		t.Fatalf("Unwrap(Wrap(e)) must equal e")
	}

	if _, err := Unwrap(inner); err == nil {
		t.Fatalf("expected NotWrapped error unwrapping a non-Wrapped envelope")
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	subject := Leaf(dcbor.Text("Alice"))
	knows := mustNewAssertion(t, dcbor.Text("knows"), dcbor.Text("Bob"))
	node, _ := AddAssertion(subject, knows)

	encoded := Encode(node)
	decoded, err := DecodeEnvelope(encoded)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if !Equal(decoded, node) {
		t.Fatalf("decoded envelope digest mismatch")
	}
	if decoded.digest.Compare(node.digest) != 0 {
		t.Fatalf("re-digesting after a roundtrip must reproduce the same digest")
	}
}
