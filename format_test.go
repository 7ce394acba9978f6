package spfgraph

import (
	"context"
	"strings"
	"testing"

	"github.com/synqronlabs/spfgraph/dns"
)

// TestDigraphEndToEnd resolves a small include chain through the mock
// resolver and checks the rendered digraph text.
func TestDigraphEndToEnd(t *testing.T) {
	mock := dns.MockResolver{
		TXT: map[string][]string{
			"example.com.":           {"v=spf1 include:_spf.google.com ~all"},
			"_spf.google.com.":       {"v=spf1 include:_netblocks.google.com ~all"},
			"_netblocks.google.com.": {"v=spf1 ip4:192.0.2.0/24 ~all"},
		},
	}

	tree := NewTreeBuilder(mock, testLogger(t)).Build(context.Background(), "example.com")

	var buf strings.Builder
	if err := Digraph(&buf, tree); err != nil {
		t.Fatalf("Digraph failed: %v", err)
	}
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "digraph G {" {
		t.Errorf("first line = %q, want %q", lines[0], "digraph G {")
	}
	if lines[len(lines)-1] != "}" {
		t.Errorf("last line = %q, want %q", lines[len(lines)-1], "}")
	}

	for _, edge := range []string{
		`    "example.com" -> "_spf.google.com"`,
		`    "_spf.google.com" -> "_netblocks.google.com"`,
	} {
		if !strings.Contains(out, edge+"\n") {
			t.Errorf("missing edge line %q in output:\n%s", edge, out)
		}
	}
	if len(lines) != 4 {
		t.Errorf("expected 4 lines (header, 2 edges, footer), got %d:\n%s", len(lines), out)
	}
}

func TestDigraphBranchingEdges(t *testing.T) {
	// Same leaf name under two parents stays two distinct edges; each literal
	// edge line appears exactly once.
	root := NewNode("root")
	root.AddChild("x").AddChild("leaf")
	root.AddChild("y").AddChild("leaf")
	tree := NewTree(root)

	var buf strings.Builder
	if err := Digraph(&buf, tree); err != nil {
		t.Fatalf("Digraph failed: %v", err)
	}

	out := buf.String()
	for _, edge := range []string{
		`"x" -> "leaf"`,
		`"y" -> "leaf"`,
		`"root" -> "x"`,
		`"root" -> "y"`,
	} {
		if got := strings.Count(out, edge); got != 1 {
			t.Errorf("edge %s appears %d times, want 1", edge, got)
		}
	}
}

func TestDigraphLeafOnly(t *testing.T) {
	tree := NewTree(NewNode("example.com"))

	var buf strings.Builder
	if err := Digraph(&buf, tree); err != nil {
		t.Fatalf("Digraph failed: %v", err)
	}

	want := "digraph G {\n}\n"
	if buf.String() != want {
		t.Errorf("Digraph output = %q, want %q", buf.String(), want)
	}
}
