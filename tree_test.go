package spfgraph

import (
	"slices"
	"testing"
)

// chainTree builds a -> b -> c.
func chainTree() *Tree {
	root := NewNode("a")
	root.AddChild("b").AddChild("c")
	return NewTree(root)
}

func TestBigramsCompleteness(t *testing.T) {
	tree := chainTree()

	type edge struct{ parent, child string }
	got := make(map[edge]struct{})
	for parent, child := range tree.Bigrams() {
		got[edge{parent, child}] = struct{}{}
	}

	want := map[edge]struct{}{
		{"a", "b"}: {},
		{"b", "c"}: {},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d distinct edges, want %d", len(got), len(want))
	}
	for e := range want {
		if _, ok := got[e]; !ok {
			t.Errorf("missing edge %v", e)
		}
	}
}

func TestBigramsPostOrder(t *testing.T) {
	tree := chainTree()

	var order [][2]string
	for parent, child := range tree.Bigrams() {
		order = append(order, [2]string{parent, child})
	}

	// Subtree edges come before the edge to the parent.
	want := [][2]string{{"b", "c"}, {"a", "b"}}
	if !slices.Equal(order, want) {
		t.Errorf("Bigrams() order = %v, want %v", order, want)
	}
}

func TestBigramsRestartable(t *testing.T) {
	tree := chainTree()
	seq := tree.Bigrams()

	for run := range 2 {
		var count int
		for range seq {
			count++
		}
		if count != 2 {
			t.Errorf("run %d: got %d edges, want 2", run, count)
		}
	}
}

func TestBigramsEarlyStop(t *testing.T) {
	tree := chainTree()

	var count int
	for range tree.Bigrams() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected a single edge before break, got %d", count)
	}
}

func TestNodesPreOrder(t *testing.T) {
	root := NewNode("a")
	root.AddChild("b").AddChild("c")
	root.AddChild("d")
	tree := NewTree(root)

	var names []string
	for n := range tree.Nodes() {
		names = append(names, n.Name())
	}

	want := []string{"a", "b", "c", "d"}
	if !slices.Equal(names, want) {
		t.Errorf("Nodes() = %v, want %v", names, want)
	}
}

func TestNodesNameGuard(t *testing.T) {
	// Two distinct nodes with the same name; enumeration is keyed on name
	// and must yield it once.
	root := NewNode("root")
	root.AddChild("x").AddChild("shared")
	root.AddChild("y").AddChild("shared")
	tree := NewTree(root)

	counts := make(map[string]int)
	for n := range tree.Nodes() {
		counts[n.Name()]++
	}

	for name, c := range counts {
		if c != 1 {
			t.Errorf("node %q yielded %d times", name, c)
		}
	}
	if len(counts) != 4 {
		t.Errorf("got %d distinct names, want 4", len(counts))
	}
}

func TestRecords(t *testing.T) {
	tree := chainTree()

	got := tree.Records()
	want := []NodeRecord{
		{Name: "a", Children: []string{"b"}},
		{Name: "b", Children: []string{"c"}},
		{Name: "c", Children: []string{}},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("record %d: name = %q, want %q", i, got[i].Name, want[i].Name)
		}
		if !slices.Equal(got[i].Children, want[i].Children) {
			t.Errorf("record %d: children = %v, want %v", i, got[i].Children, want[i].Children)
		}
	}
}
