package dcbor

import "testing"

func TestHeadWidthThresholds(t *testing.T) {
	cases := []struct {
		arg  uint64
		want int
	}{
		{0, 1}, {23, 1}, {24, 2}, {255, 2}, {256, 3}, {65535, 3},
		{65536, 5}, {4294967295, 5}, {4294967296, 9},
	}
	for _, c := range cases {
		if got := headWidth(c.arg); got != c.want {
			t.Fatalf("headWidth(%d) = %d, want %d", c.arg, got, c.want)
		}
	}
}

func TestCanonicalFloatFoldsIntegers(t *testing.T) {
	v := canonicalFloat(42.0)
	if v.Kind() != KindUnsigned {
		t.Fatalf("canonicalFloat(42.0).Kind() = %v, want Unsigned", v.Kind())
	}
	v = canonicalFloat(-5.0)
	if v.Kind() != KindNegative {
		t.Fatalf("canonicalFloat(-5.0).Kind() = %v, want Negative", v.Kind())
	}
	v = canonicalFloat(-0.0)
	if v.Kind() != KindUnsigned {
		t.Fatalf("canonicalFloat(-0.0) should fold to Unsigned(0), got %v", v.Kind())
	}
}

func TestCanonicalFloatPicksNarrowestWidth(t *testing.T) {
	v := canonicalFloat(1.5)
	kind, ok := v.IsSimple()
	if !ok || kind != SimpleKindFloat16 {
		t.Fatalf("canonicalFloat(1.5) should be float16, got %v", kind)
	}

	v = canonicalFloat(1.2)
	kind, ok = v.IsSimple()
	if !ok || kind != SimpleKindFloat64 {
		t.Fatalf("canonicalFloat(1.2) should need float64, got %v", kind)
	}
}

func TestDecodeCanonicalFloatRejectsReducible(t *testing.T) {
	// 1.0 encoded at float64 width is reducible to an integer.
	bits := uint64(0x3ff0000000000000)
	_, err := decodeCanonicalFloat(8, bits)
	if err == nil {
		t.Fatalf("expected rejection of reducible float64 value")
	}
	if kind, _ := Kind(err); kind != ErrNonCanonicalNumeric {
		t.Fatalf("got kind %v, want NonCanonicalNumeric", kind)
	}
}

func TestDecodeCanonicalFloatAcceptsGenuineWidth(t *testing.T) {
	bits := uint64(0x3ff3333333333333) // 1.2, needs float64
	v, err := decodeCanonicalFloat(8, bits)
	if err != nil {
		t.Fatalf("decodeCanonicalFloat: %v", err)
	}
	if f := floatValue(v); f != 1.2 {
		t.Fatalf("floatValue = %v, want 1.2", f)
	}
}
