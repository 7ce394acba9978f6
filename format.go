package spfgraph

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tinylib/msgp/msgp"
)

// Digraph writes the tree's edges as Graphviz digraph text. Edges are
// deduplicated with set semantics; each distinct edge appears once, in
// first-seen traversal order.
func Digraph(w io.Writer, t *Tree) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}

	type edge struct{ parent, child string }
	seen := make(map[edge]struct{})
	for parent, child := range t.Bigrams() {
		e := edge{parent, child}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		if _, err := fmt.Fprintf(w, "    %q -> %q\n", parent, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

// JSON writes the tree's node records as a JSON array.
func JSON(w io.Writer, t *Tree) error {
	return json.NewEncoder(w).Encode(t.Records())
}

// MessagePack writes the tree's node records as a MessagePack array.
func MessagePack(w io.Writer, t *Tree) error {
	mw := msgp.NewWriter(w)
	if err := t.EncodeMsg(mw); err != nil {
		return err
	}
	return mw.Flush()
}
