package envelope

import (
	"testing"

	"github.com/dcbor-go/dcbor/dcbor"
)

func TestProofContainsSetAndConfirm(t *testing.T) {
	e := buildSample(t)
	age := AssertionsWithPredicate(e, Leaf(dcbor.Text("age")))
	if len(age) != 1 {
		t.Fatalf("expected exactly one age assertion, got %d", len(age))
	}
	target := age[0].assert.object.digest

	proof, ok := ProofContainsSet(e, []Digest{target})
	if !ok {
		t.Fatalf("ProofContainsSet failed to build a proof")
	}
	if proof.Envelope.digest.Compare(e.digest) != 0 {
		t.Fatalf("proof must preserve the root digest")
	}

	if !ConfirmContainsSet(e.digest, []Digest{target}, proof) {
		t.Fatalf("ConfirmContainsSet should succeed for a target the proof covers")
	}
}

func TestProofContainsSetFailsForAbsentTarget(t *testing.T) {
	e := buildSample(t)
	bogus := FromBytes([]byte("not in the tree"))
	_, ok := ProofContainsSet(e, []Digest{bogus})
	if ok {
		t.Fatalf("ProofContainsSet should fail when a target has no matching subtree")
	}
}

func TestConfirmContainsSetRejectsWrongRoot(t *testing.T) {
	e := buildSample(t)
	subject := Subject(e)
	proof, ok := ProofContainsSet(e, []Digest{subject.digest})
	if !ok {
		t.Fatalf("ProofContainsSet failed")
	}

	other := Leaf(dcbor.Text("different root"))
	if ConfirmContainsSet(other.digest, []Digest{subject.digest}, proof) {
		t.Fatalf("ConfirmContainsSet must fail against the wrong root digest")
	}
}

func TestProofMinimisesUnrelatedContent(t *testing.T) {
	e := buildSample(t)
	subject := Subject(e)
	proof, ok := ProofContainsSet(e, []Digest{subject.digest})
	if !ok {
		t.Fatalf("ProofContainsSet failed")
	}
	for _, a := range Assertions(proof.Envelope) {
		if a.Case() != CaseElided {
			t.Fatalf("assertions uninvolved in the target set should be elided in the proof")
		}
	}
}
