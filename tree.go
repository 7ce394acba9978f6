package spfgraph

import "iter"

// Tree is the result of resolving a domain's SPF include graph. It owns a
// single root node and every node beneath it.
type Tree struct {
	head *Node
}

// NewTree creates a tree rooted at head.
func NewTree(head *Node) *Tree {
	return &Tree{head: head}
}

// Head returns the root node.
func (t *Tree) Head() *Node {
	return t.head
}

// Bigrams yields every parent/child edge in the tree as a (parent name,
// child name) pair. Edges of a subtree are yielded before the edge linking
// it to its parent. Each call starts a fresh traversal; repeated edges from
// distinct branches are not deduplicated here.
func (t *Tree) Bigrams() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		bigrams(t.head, yield)
	}
}

func bigrams(n *Node, yield func(string, string) bool) bool {
	for _, child := range n.Children() {
		if !bigrams(child, yield) {
			return false
		}
		if !yield(n.Name(), child.Name()) {
			return false
		}
	}
	return true
}

// Nodes yields every node reachable from the root in pre-order. A visited
// set keyed on node name guards against name cycles, so each name is
// yielded at most once.
func (t *Tree) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		visited := make(map[string]struct{})
		eachNode(t.head, visited, yield)
	}
}

func eachNode(n *Node, visited map[string]struct{}, yield func(*Node) bool) bool {
	if _, ok := visited[n.Name()]; ok {
		return true
	}
	visited[n.Name()] = struct{}{}

	if !yield(n) {
		return false
	}
	for _, child := range n.Children() {
		if !eachNode(child, visited, yield) {
			return false
		}
	}
	return true
}

// Records returns one {name, children} record per node from Nodes().
func (t *Tree) Records() []NodeRecord {
	var records []NodeRecord
	for n := range t.Nodes() {
		records = append(records, NodeRecord{
			Name:     n.Name(),
			Children: n.ChildNames(),
		})
	}
	return records
}

// String renders the whole tree via the root node.
func (t *Tree) String() string {
	return t.head.String()
}
