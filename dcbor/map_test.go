package dcbor

import "testing"

func TestMapOrderingAndLookup(t *testing.T) {
	m := NewMap()
	must := func(k, v Value) {
		t.Helper()
		if err := m.Set(k, v); err != nil {
			t.Fatalf("Set(%#v): %v", k, err)
		}
	}
	must(Text("b"), Uint(2))
	must(Text("a"), Uint(1))
	must(Uint(1), Uint(100))

	entries := m.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3", len(entries))
	}
	// unsigned 1 encodes as a single byte 0x01, which sorts before any
	// 2-byte text-string encoding, so it must come first.
	if entries[0].Key.Kind() != KindUnsigned {
		t.Fatalf("entries[0] = %#v, want the unsigned key first", entries[0])
	}

	val, ok := m.Get(Text("a"))
	if !ok {
		t.Fatalf("Get(a) not found")
	}
	if n, _ := val.Uint64(); n != 1 {
		t.Fatalf("Get(a) = %d, want 1", n)
	}
}

func TestMapDuplicateKeyRejected(t *testing.T) {
	m := NewMap()
	if err := m.Set(Uint(1), Uint(1)); err != nil {
		t.Fatalf("first Set: %v", err)
	}
	err := m.Set(Uint(1), Uint(2))
	if err == nil {
		t.Fatalf("expected DuplicateMapKey error")
	}
	if kind, _ := Kind(err); kind != ErrDuplicateMapKey {
		t.Fatalf("got kind %v, want DuplicateMapKey", kind)
	}
}

func TestMapEqual(t *testing.T) {
	a := NewMap()
	a.Set(Uint(1), Text("x"))
	b := NewMap()
	b.Set(Uint(1), Text("x"))
	if !Equal(MapValue(a), MapValue(b)) {
		t.Fatalf("equal maps compared unequal")
	}

	c := NewMap()
	c.Set(Uint(1), Text("y"))
	if Equal(MapValue(a), MapValue(c)) {
		t.Fatalf("unequal maps compared equal")
	}
}

func TestEmptyMapRoundtrip(t *testing.T) {
	m := NewMap()
	enc := Encode(MapValue(m))
	if len(enc) != 1 || enc[0] != 0xa0 {
		t.Fatalf("Encode(empty map) = %x, want a0", enc)
	}
	dec, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.Kind() != KindMap || dec.m.Len() != 0 {
		t.Fatalf("decoded empty map mismatch")
	}
}
