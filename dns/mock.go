package dns

import (
	"context"
	"slices"
)

// MockResolver is a Resolver used for testing.
// Set DNS records in TXT, which maps FQDNs (with trailing dot) to values.
type MockResolver struct {
	TXT map[string][]string

	// Fail contains domains whose lookup returns a temporary error (SERVFAIL).
	// Names are FQDNs with trailing dot, e.g. "example.com."
	Fail []string

	// AllAuthentic sets the default value for Authentic in responses.
	// Overridden by the Authentic and Inauthentic lists.
	AllAuthentic bool

	// Authentic contains FQDNs whose responses will have Authentic=true.
	Authentic []string

	// Inauthentic contains FQDNs whose responses will have Authentic=false.
	Inauthentic []string
}

var _ Resolver = MockResolver{}

// ensureFQDN ensures the name ends with a dot.
func ensureFQDN(name string) string {
	if len(name) == 0 || name[len(name)-1] != '.' {
		return name + "."
	}
	return name
}

// LookupTXT returns TXT records for the given domain.
func (r MockResolver) LookupTXT(ctx context.Context, name string) (Result[string], error) {
	fqdn := ensureFQDN(name)

	result := Result[string]{Authentic: r.AllAuthentic}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if slices.Contains(r.Fail, fqdn) {
		return result, ErrDNSServFail
	}

	if slices.Contains(r.Authentic, fqdn) {
		result.Authentic = true
	}
	if slices.Contains(r.Inauthentic, fqdn) {
		result.Authentic = false
	}

	records, ok := r.TXT[fqdn]
	if !ok || len(records) == 0 {
		return result, ErrDNSNotFound
	}

	result.Records = records
	return result, nil
}
