package spfgraph

import (
	"io"
	"log/slog"
	"testing"
)

// testLogger returns a logger that discards output. Walk and build paths log
// at debug and warn levels; tests only care about the produced structures.
func testLogger(t *testing.T) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
