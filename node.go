package spfgraph

import (
	"fmt"
	"strings"
)

// Node is one visited domain in the resolution tree. Children are kept in
// discovery order and indexed by name so a repeated include under the same
// parent resolves to the existing child.
type Node struct {
	name     string
	children []*Node
	byName   map[string]*Node
}

// NewNode creates a node with no children.
func NewNode(name string) *Node {
	return &Node{
		name:   name,
		byName: make(map[string]*Node),
	}
}

// Name returns the domain name this node represents.
func (n *Node) Name() string {
	return n.name
}

// AddChild appends a new child node for name and returns it. If a child with
// that name already exists, the existing node is returned unchanged.
func (n *Node) AddChild(name string) *Node {
	if child, ok := n.byName[name]; ok {
		return child
	}
	child := NewNode(name)
	n.children = append(n.children, child)
	n.byName[name] = child
	return child
}

// Children returns the node's children in discovery order.
// The returned slice is shared; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildNames returns the names of the node's children in discovery order.
func (n *Node) ChildNames() []string {
	names := make([]string, len(n.children))
	for i, c := range n.children {
		names[i] = c.name
	}
	return names
}

// String renders the node and its subtree as "name -> (child, child)".
func (n *Node) String() string {
	if len(n.children) == 0 {
		return fmt.Sprintf("%s -> ()", n.name)
	}
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s -> (%s)", n.name, strings.Join(parts, ", "))
}
