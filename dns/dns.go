// Package dns provides the TXT lookup capability consumed by spfgraph.
//
// The package exposes a small Resolver interface and two implementations:
// DNSResolver, built on github.com/miekg/dns with configurable nameservers,
// retries and optional DNSSEC validation, and StdResolver, a thin wrapper
// around the standard library resolver. MockResolver serves tests.
//
// Retry and timeout policy lives here; callers treat a lookup as a single
// blocking operation that either returns records or fails.
package dns

import (
	"context"
	"errors"
)

// DNS lookup errors.
var (
	ErrDNSNotFound = errors.New("dns: no such record (NXDOMAIN)")
	ErrDNSTimeout  = errors.New("dns: query timed out")
	ErrDNSServFail = errors.New("dns: server failure (SERVFAIL)")
	ErrDNSRefused  = errors.New("dns: query refused")
	ErrDNSBogus    = errors.New("dns: DNSSEC validation failed")
)

// Result contains the records returned by a lookup along with the
// DNSSEC validation status of the response.
type Result[T any] struct {
	// Records holds the answer section payloads.
	Records []T

	// Authentic indicates the response was DNSSEC-validated.
	// Always false for resolvers without DNSSEC support.
	Authentic bool
}

// Resolver is the DNS capability required by the SPF include walk.
// Implementations own their retry and timeout policy.
type Resolver interface {
	// LookupTXT retrieves TXT records for the given domain.
	LookupTXT(ctx context.Context, name string) (Result[string], error)
}

// IsNotFound reports whether the error indicates the record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrDNSNotFound)
}

// IsTimeout reports whether the error indicates a query timeout.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrDNSTimeout)
}

// IsServFail reports whether the error indicates an upstream server failure.
func IsServFail(err error) bool {
	return errors.Is(err, ErrDNSServFail)
}

// IsTemporary reports whether the error is worth retrying later.
func IsTemporary(err error) bool {
	return errors.Is(err, ErrDNSTimeout) || errors.Is(err, ErrDNSServFail) || errors.Is(err, ErrDNSRefused)
}
