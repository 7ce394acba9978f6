// Spfgraph resolves the transitive include: graph of a domain's SPF record.
//
// SPF (RFC 7208) policies are published as DNS TXT records and may delegate
// to other domains with include: mechanisms. Spfgraph walks those includes
// depth-first and builds a tree of every domain consulted, which can then be
// rendered as a Graphviz digraph, JSON, or MessagePack.
//
// # Basic Usage
//
//	resolver := dns.NewResolver(dns.ResolverConfig{
//	    Nameservers: []string{"8.8.8.8:53"},
//	})
//
//	builder := spfgraph.NewTreeBuilder(resolver, nil)
//	tree := builder.Build(ctx, "example.com")
//
//	spfgraph.Digraph(os.Stdout, tree)
//
// # Event Stream
//
// The underlying walk is exposed directly as a lazy sequence of enter/exit
// events, one matched pair per domain:
//
//	walker := spfgraph.NewWalker(resolver, logger)
//	for ev := range walker.Walk(ctx, "example.com") {
//	    fmt.Println(ev.Type, ev.Domain)
//	}
//
// Events form a valid parenthesization: every included domain's events are
// fully nested between its parent's enter and exit. A domain already entered
// during the walk produces no events at all, which keeps cyclic include
// graphs finite.
//
// # Tree Queries
//
// The built Tree supports edge extraction and node enumeration:
//
//	for parent, child := range tree.Bigrams() {
//	    fmt.Printf("%s -> %s\n", parent, child)
//	}
//
//	for node := range tree.Nodes() {
//	    fmt.Println(node.Name(), node.ChildNames())
//	}
//
// # Failure Model
//
// DNS failures never abort a walk. A domain whose lookup fails is logged and
// treated as having no SPF record; the worst case is an incomplete but
// structurally valid tree.
package spfgraph
