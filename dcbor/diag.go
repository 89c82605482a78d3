package dcbor

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// DiagMode selects between the two diagnostic rendering layouts of §4.7.
type DiagMode int

const (
	// DiagFlat renders the whole value on one line.
	DiagFlat DiagMode = iota
	// DiagPretty renders one entry per line with two-space indentation.
	DiagPretty
)

// Diagnostic renders v as RFC 8949 §8 diagnostic notation, resolving tag
// names and custom summarisers against reg (or DefaultRegistry if nil). The
// output is deterministic but is not required to round-trip through a
// parser.
func Diagnostic(v Value, mode DiagMode, reg *Registry) string {
	reg = registryOrDefault(reg)
	var b strings.Builder
	writeDiag(&b, v, mode, reg, 0)
	return b.String()
}

func writeDiag(b *strings.Builder, v Value, mode DiagMode, reg *Registry, depth int) {
	switch v.kind {
	case KindUnsigned:
		b.WriteString(strconv.FormatUint(v.u, 10))
	case KindNegative:
		b.WriteString("-")
		b.WriteString(strconv.FormatUint(v.u+1, 10))
	case KindBytes:
		b.WriteString("h'")
		b.WriteString(hex.EncodeToString(v.bytes))
		b.WriteString("'")
	case KindText:
		b.WriteString(strconv.Quote(v.text))
	case KindArray:
		writeDiagArray(b, v.array, mode, reg, depth)
	case KindMap:
		writeDiagMap(b, v.m, mode, reg, depth)
	case KindTagged:
		if fn, ok := reg.SummarizerFor(v.tagged.Tag); ok {
			b.WriteString(reg.Name(v.tagged.Tag))
			b.WriteString("(")
			b.WriteString(fn(v.tagged.Content, reg))
			b.WriteString(")")
			return
		}
		b.WriteString(reg.Name(v.tagged.Tag))
		b.WriteString("(")
		writeDiag(b, v.tagged.Content, mode, reg, depth)
		b.WriteString(")")
	case KindSimple:
		writeDiagSimple(b, v)
	}
}

func writeDiagSimple(b *strings.Builder, v Value) {
	switch v.simple {
	case SimpleKindFalse:
		b.WriteString("false")
	case SimpleKindTrue:
		b.WriteString("true")
	case SimpleKindNull:
		b.WriteString("null")
	case SimpleKindFloat16, SimpleKindFloat32, SimpleKindFloat64:
		f := floatValue(v)
		switch {
		case math.IsNaN(f):
			b.WriteString("NaN")
		case math.IsInf(f, 1):
			b.WriteString("Infinity")
		case math.IsInf(f, -1):
			b.WriteString("-Infinity")
		default:
			b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
	}
}

func writeDiagArray(b *strings.Builder, items []Value, mode DiagMode, reg *Registry, depth int) {
	if len(items) == 0 {
		b.WriteString("[]")
		return
	}
	if mode == DiagFlat {
		b.WriteString("[")
		for i, item := range items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiag(b, item, mode, reg, depth)
		}
		b.WriteString("]")
		return
	}

	b.WriteString("[\n")
	indent := strings.Repeat("  ", depth+1)
	for _, item := range items {
		b.WriteString(indent)
		writeDiag(b, item, mode, reg, depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("]")
}

func writeDiagMap(b *strings.Builder, m *Map, mode DiagMode, reg *Registry, depth int) {
	entries := m.Entries()
	if len(entries) == 0 {
		b.WriteString("{}")
		return
	}
	if mode == DiagFlat {
		b.WriteString("{")
		for i, e := range entries {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiag(b, e.Key, mode, reg, depth)
			b.WriteString(": ")
			writeDiag(b, e.Value, mode, reg, depth)
		}
		b.WriteString("}")
		return
	}

	b.WriteString("{\n")
	indent := strings.Repeat("  ", depth+1)
	for _, e := range entries {
		b.WriteString(indent)
		writeDiag(b, e.Key, mode, reg, depth+1)
		b.WriteString(": ")
		writeDiag(b, e.Value, mode, reg, depth+1)
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("}")
}
