package envelope

import (
	"fmt"
	"strings"

	"github.com/dcbor-go/dcbor/dcbor"
)

// Diagnostic renders e as RFC 8949-flavoured diagnostic notation (§4.7,
// §6.3) by lowering it to its tag-200 CBOR form and delegating to the core
// printer.
func Diagnostic(e *Envelope, mode dcbor.DiagMode, reg *dcbor.Registry) string {
	return dcbor.Diagnostic(EncodeEnvelope(e), mode, reg)
}

// digestPrefixLen is how many hex characters of a digest the tree renderer
// shows per line (§6.3: "~7 chars").
const digestPrefixLen = 7

// Tree renders e as a multi-line tree: one line per envelope node, each
// showing a short digest prefix, the incoming edge label, and a short
// description of the node (§6.3).
func Tree(e *Envelope) string {
	var b strings.Builder
	Walk(e, nil, func(node *Envelope, depth int, edge EdgeKind, state interface{}) (interface{}, bool) {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(node.digest.String()[:digestPrefixLen])
		b.WriteString(" ")
		if edge != EdgeRoot {
			b.WriteString(edge.String())
			b.WriteString(" ")
		}
		b.WriteString(describeNode(node))
		b.WriteString("\n")
		return state, false
	})
	return b.String()
}

func describeNode(e *Envelope) string {
	switch e.kind {
	case CaseLeaf:
		return "LEAF " + dcbor.Diagnostic(e.leaf, dcbor.DiagFlat, nil)
	case CaseWrapped:
		return "WRAPPED"
	case CaseAssertion:
		return "ASSERTION"
	case CaseNode:
		return fmt.Sprintf("NODE (%d assertions)", len(e.node.assertions))
	case CaseElided:
		return "ELIDED"
	case CaseEncrypted:
		return "ENCRYPTED"
	case CaseCompressed:
		return "COMPRESSED"
	default:
		return "?"
	}
}
