package envelope

import "testing"

func TestSortAscendingDeduplicates(t *testing.T) {
	a := FromBytes([]byte("a"))
	b := FromBytes([]byte("b"))
	c := FromBytes([]byte("c"))

	got := sortAscending([]Digest{b, a, c, a, b})
	if len(got) != 3 {
		t.Fatalf("sortAscending dedup = %d entries, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Compare(got[i]) >= 0 {
			t.Fatalf("sortAscending did not produce strictly ascending order: %v", got)
		}
	}
}

func TestParseDigestRoundtrip(t *testing.T) {
	d := FromBytes([]byte("hello"))
	parsed, err := ParseDigest(d.String())
	if err != nil {
		t.Fatalf("ParseDigest: %v", err)
	}
	if parsed.Compare(d) != 0 {
		t.Fatalf("ParseDigest(d.String()) != d")
	}
}

func TestParseDigestRejectsWrongLength(t *testing.T) {
	if _, err := ParseDigest("ab"); err == nil {
		t.Fatalf("expected an error for a too-short digest")
	}
}
