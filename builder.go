package spfgraph

import (
	"context"
	"iter"
	"log/slog"

	"github.com/synqronlabs/spfgraph/dns"
)

// TreeBuilder assembles the walker's event stream into a Tree.
type TreeBuilder struct {
	walker *Walker
	logger *slog.Logger
}

// NewTreeBuilder creates a builder that walks domains with the given
// resolver. A nil logger falls back to slog.Default().
func NewTreeBuilder(resolver dns.Resolver, logger *slog.Logger) *TreeBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &TreeBuilder{
		walker: NewWalker(resolver, logger),
		logger: logger,
	}
}

// Build resolves domain's SPF include graph and returns the resulting tree.
// The root domain is always entered, so the tree is never nil; lookup
// failures only prune branches.
//
// Each call runs a fresh walk with its own stack and visited set. The
// builder holds no state between calls and may be reused sequentially.
func (b *TreeBuilder) Build(ctx context.Context, domain string) *Tree {
	return b.assemble(b.walker.Walk(ctx, domain))
}

// assemble folds an enter/exit event stream into a tree using a node stack.
// Enter pushes (the root node when the stack is empty, otherwise a child of
// the current top); exit pops, and popping the last node materializes the
// tree. A child name repeated under one parent reuses the existing node; the
// same name under two parents yields two distinct nodes.
func (b *TreeBuilder) assemble(events iter.Seq[Event]) *Tree {
	var (
		stack []*Node
		tree  *Tree
	)

	for ev := range events {
		b.logger.Debug("walk event",
			slog.String("type", ev.Type.String()),
			slog.String("domain", ev.Domain))

		switch ev.Type {
		case EventEnter:
			var node *Node
			if len(stack) > 0 {
				node = stack[len(stack)-1].AddChild(ev.Domain)
			} else {
				node = NewNode(ev.Domain)
			}
			stack = append(stack, node)
		case EventExit:
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				tree = NewTree(node)
			}
		}
	}

	return tree
}
