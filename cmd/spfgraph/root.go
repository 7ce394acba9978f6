package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/publicsuffix"

	"github.com/synqronlabs/spfgraph"
)

var rootCmd = &cobra.Command{
	Use:   "spfgraph <domain>",
	Short: "Graph a domain's transitive SPF include: lookups",
	Long: `Spfgraph resolves a domain's SPF TXT record, follows every include:
mechanism recursively, and prints the resulting lookup tree as Graphviz
digraph text, JSON, or MessagePack.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("format", "f", defaultFormat(), "Output format: digraph, json, or msgpack")
	rootCmd.Flags().Bool("debug", defaultDebug(), "Trace walk events and DNS lookup failures")
	rootCmd.Flags().StringP("config", "c", "", "YAML resolver configuration file")
	rootCmd.Flags().StringArray("nameserver", nil, "DNS server to query (host:port, repeatable)")
	rootCmd.Flags().Duration("timeout", 0, "Timeout per DNS query")
	rootCmd.Flags().Int("retries", 0, "Retries for failed DNS queries")
	rootCmd.Flags().Bool("dnssec", false, "Request DNSSEC validation")
	rootCmd.Flags().Bool("std", false, "Use the standard library resolver")
}

// defaultFormat honors the FORMAT environment variable.
func defaultFormat() string {
	if f := os.Getenv("FORMAT"); f != "" {
		return f
	}
	return "digraph"
}

// defaultDebug honors the DEBUG environment variable.
// Unset, "0" and "false" mean off; anything else means on.
func defaultDebug() bool {
	switch strings.ToLower(os.Getenv("DEBUG")) {
	case "", "0", "false":
		return false
	}
	return true
}

func run(cmd *cobra.Command, args []string) error {
	domain := strings.ToLower(strings.TrimSuffix(args[0], "."))

	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "digraph", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format %q (want digraph, json, or msgpack)", format)
	}

	if suffix, _ := publicsuffix.PublicSuffix(domain); suffix == domain {
		return fmt.Errorf("%q is a public suffix, not a registrable domain", domain)
	}
	if registrable, err := publicsuffix.EffectiveTLDPlusOne(domain); err == nil {
		logger.Debug("resolving",
			slog.String("domain", domain),
			slog.String("registrable", registrable))
	}

	resolver, err := buildResolver(cmd)
	if err != nil {
		return err
	}

	tree := spfgraph.NewTreeBuilder(resolver, logger).Build(cmd.Context(), domain)

	switch format {
	case "json":
		return spfgraph.JSON(os.Stdout, tree)
	case "msgpack":
		return spfgraph.MessagePack(os.Stdout, tree)
	default:
		return spfgraph.Digraph(os.Stdout, tree)
	}
}
