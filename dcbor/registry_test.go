package dcbor

import "testing"

func TestRegistryInsertAndName(t *testing.T) {
	r := NewRegistry()
	r.Insert(42, "answer")
	if got := r.Name(42); got != "answer" {
		t.Fatalf("Name(42) = %q, want answer", got)
	}
	if got := r.Name(999); got != "999" {
		t.Fatalf("Name(999) = %q, want decimal fallback", got)
	}

	tag, ok := r.ByName("answer")
	if !ok || tag != 42 {
		t.Fatalf("ByName(answer) = %d, %v", tag, ok)
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	r.Insert(1, "one")
	r.Remove(1)
	if got := r.Name(1); got != "1" {
		t.Fatalf("Name(1) after Remove = %q, want decimal fallback", got)
	}
	if _, ok := r.ByName("one"); ok {
		t.Fatalf("ByName(one) still found after Remove")
	}
}

func TestRegistrySummarizer(t *testing.T) {
	r := NewRegistry()
	r.Insert(7, "seven")
	r.SetSummarizer(7, func(content Value, reg *Registry) string {
		return "custom"
	})
	fn, ok := r.SummarizerFor(7)
	if !ok {
		t.Fatalf("SummarizerFor(7) not found")
	}
	if got := fn(Uint(1), r); got != "custom" {
		t.Fatalf("summarizer returned %q", got)
	}

	if _, ok := r.SummarizerFor(8); ok {
		t.Fatalf("SummarizerFor(8) unexpectedly found")
	}
}

func TestRegistryOverwrite(t *testing.T) {
	r := NewRegistry()
	r.Insert(1, "a")
	r.Insert(1, "b")
	if got := r.Name(1); got != "b" {
		t.Fatalf("Name(1) = %q, want b", got)
	}
	if _, ok := r.ByName("a"); ok {
		t.Fatalf("stale name 'a' still resolves")
	}
}
