package dcbor

import "bytes"

// mapEntry pairs a key with its canonical encoded form and its value. The
// encoded form is what determines ordering (§4.3) and is computed once, at
// insertion time, since Encode cannot fail on an already-valid Value.
type mapEntry struct {
	key    Value
	keyEnc []byte
	value  Value
}

// Map is a key-ordered CBOR map container. Its iteration order is always the
// ascending lexicographic order of each key's canonical encoding (§4.3);
// there is no way to observe or construct any other order, so a Map built
// through Set is always in canonical form.
type Map struct {
	entries []mapEntry
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Set inserts the entry for key, maintaining ascending key-encoding order.
// It reports ErrDuplicateMapKey if an entry for an equal key already exists.
func (m *Map) Set(key, value Value) error {
	enc := Encode(key)
	idx, found := m.search(enc)
	if found {
		return newErr(ErrDuplicateMapKey, -1, "map already contains this key")
	}
	entry := mapEntry{key: key, keyEnc: enc, value: value}
	m.entries = append(m.entries, mapEntry{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = entry
	return nil
}

// search returns the insertion index for enc and whether an equal key
// already exists at that index.
func (m *Map) search(enc []byte) (int, bool) {
	lo, hi := 0, len(m.entries)
	for lo < hi {
		mid := (lo + hi) / 2
		if bytes.Compare(m.entries[mid].keyEnc, enc) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(m.entries) && bytes.Equal(m.entries[lo].keyEnc, enc) {
		return lo, true
	}
	return lo, false
}

// Get looks up the value for key.
func (m *Map) Get(key Value) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	enc := Encode(key)
	idx, found := m.search(enc)
	if !found {
		return Value{}, false
	}
	return m.entries[idx].value, true
}

// MapEntry is a read-only (key, value) pair in canonical iteration order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Entries returns the map's entries in canonical ascending-key order.
func (m *Map) Entries() []MapEntry {
	if m == nil {
		return nil
	}
	out := make([]MapEntry, len(m.entries))
	for i, e := range m.entries {
		out[i] = MapEntry{Key: e.key, Value: e.value}
	}
	return out
}

func (m *Map) equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i := range m.entries {
		if !bytes.Equal(m.entries[i].keyEnc, o.entries[i].keyEnc) {
			return false
		}
		if !Equal(m.entries[i].value, o.entries[i].value) {
			return false
		}
	}
	return true
}

// appendRaw inserts a decoded (key, value, keyEnc) triple at the end without
// re-sorting. Used only by the decoder, which has already verified strict
// ascending order as it parsed; see the MajorMap case of decodeValue in
// decode.go.
func (m *Map) appendRaw(key, value Value, keyEnc []byte) {
	m.entries = append(m.entries, mapEntry{key: key, keyEnc: keyEnc, value: value})
}
