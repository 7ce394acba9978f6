package spfgraph

import (
	"context"
	"iter"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/synqronlabs/spfgraph/dns"
)

const (
	spfPrefix     = "v=spf1"
	includePrefix = "include:"
)

// EventType distinguishes the two walk event kinds.
type EventType int

const (
	// EventEnter marks the start of a domain's recursive processing.
	EventEnter EventType = iota
	// EventExit marks the end, after all of the domain's includes.
	EventExit
)

// String returns "enter" or "exit".
func (e EventType) String() string {
	switch e {
	case EventEnter:
		return "enter"
	case EventExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is one step of the depth-first SPF include walk.
type Event struct {
	Type   EventType
	Domain string
}

// Walker resolves a domain's SPF record and its transitive include: targets,
// producing a depth-first stream of enter/exit events.
type Walker struct {
	resolver dns.Resolver
	logger   *slog.Logger
}

// NewWalker creates a walker using the given resolver.
// A nil logger falls back to slog.Default().
func NewWalker(resolver dns.Resolver, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{
		resolver: resolver,
		logger:   logger,
	}
}

// Walk returns a lazy sequence of enter/exit events for domain and every
// domain reachable through include: mechanisms, in depth-first order. Each
// included domain's events are fully nested between its parent's enter and
// exit. A domain already entered during this walk is skipped entirely, so
// cyclic include graphs terminate.
//
// Every call starts a fresh walk with its own visited set. DNS failures are
// logged and absorbed: a domain whose lookup fails contributes no includes.
func (w *Walker) Walk(ctx context.Context, domain string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		logger := w.logger.With(slog.String("walk_id", ulid.Make().String()))
		visited := make(map[string]struct{})
		w.walk(ctx, logger, domain, visited, yield)
	}
}

// walk emits the event pair for one domain, recursing into its includes
// between the two. Returns false once the consumer stops the iteration.
func (w *Walker) walk(ctx context.Context, logger *slog.Logger, domain string, visited map[string]struct{}, yield func(Event) bool) bool {
	if _, ok := visited[domain]; ok {
		return true
	}
	visited[domain] = struct{}{}

	if !yield(Event{Type: EventEnter, Domain: domain}) {
		return false
	}

	for _, include := range w.includes(ctx, logger, domain) {
		if !w.walk(ctx, logger, include, visited, yield) {
			return false
		}
	}

	return yield(Event{Type: EventExit, Domain: domain})
}

// includes fetches the domain's SPF record and returns its include: targets
// in record order. Lookup failures are absorbed: the domain is treated as
// having no SPF record.
func (w *Walker) includes(ctx context.Context, logger *slog.Logger, domain string) []string {
	result, err := w.resolver.LookupTXT(ctx, domain)
	if err != nil {
		logger.Warn("TXT lookup failed",
			slog.String("domain", domain),
			slog.Any("error", err))
		return nil
	}

	var includes []string
	for _, term := range strings.Fields(spfRecord(result.Records)) {
		if name, ok := strings.CutPrefix(term, includePrefix); ok {
			includes = append(includes, name)
		}
	}
	return includes
}

// spfRecord returns the first TXT record carrying an SPF policy, or "".
// Surrounding quotes are stripped; some resolvers keep them in the
// presentation form.
func spfRecord(records []string) string {
	for _, r := range records {
		if text := strings.Trim(r, `"`); strings.HasPrefix(text, spfPrefix) {
			return text
		}
	}
	return ""
}
