package envelope

import (
	"strings"
	"testing"

	"github.com/dcbor-go/dcbor/dcbor"
)

func TestDiagnosticRendersLeaf(t *testing.T) {
	e := Leaf(dcbor.Text("hello"))
	got := Diagnostic(e, dcbor.DiagFlat, nil)
	if !strings.Contains(got, `"hello"`) {
		t.Fatalf("Diagnostic(leaf) = %q, missing quoted content", got)
	}
}

func TestTreeRendersNodeWithEdgeLabels(t *testing.T) {
	e := buildSample(t)
	out := Tree(e)

	for _, want := range []string{"subj", "assertion", "NODE"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Tree(e) = %q, missing %q", out, want)
		}
	}
}

func TestTreeIndentsByDepth(t *testing.T) {
	e := buildSample(t)
	lines := strings.Split(strings.TrimRight(Tree(e), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected multiple tree lines, got %d", len(lines))
	}
	if strings.HasPrefix(lines[0], " ") {
		t.Fatalf("root line should not be indented: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Fatalf("child line should be indented: %q", lines[1])
	}
}
