package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/synqronlabs/spfgraph/dns"
)

// fileConfig is the YAML shape accepted by --config.
//
//	nameservers:
//	  - 8.8.8.8:53
//	timeout: 5s
//	retries: 2
//	dnssec: true
type fileConfig struct {
	Nameservers []string `yaml:"nameservers"`
	Timeout     string   `yaml:"timeout"`
	Retries     int      `yaml:"retries"`
	DNSSEC      bool     `yaml:"dnssec"`
}

func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// resolverConfig converts the file values, parsing the timeout string.
func (c fileConfig) resolverConfig() (dns.ResolverConfig, error) {
	cfg := dns.ResolverConfig{
		Nameservers: c.Nameservers,
		Retries:     c.Retries,
		DNSSEC:      c.DNSSEC,
	}
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("parse config timeout: %w", err)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

// buildResolver assembles the DNS resolver from the config file and flags.
// Flags override file values.
func buildResolver(cmd *cobra.Command) (dns.Resolver, error) {
	if std, _ := cmd.Flags().GetBool("std"); std {
		return dns.NewStdResolver(), nil
	}

	var cfg dns.ResolverConfig

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		fc, err := loadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg, err = fc.resolverConfig()
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("nameserver") {
		cfg.Nameservers, _ = cmd.Flags().GetStringArray("nameserver")
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}
	if cmd.Flags().Changed("retries") {
		cfg.Retries, _ = cmd.Flags().GetInt("retries")
	}
	if cmd.Flags().Changed("dnssec") {
		cfg.DNSSEC, _ = cmd.Flags().GetBool("dnssec")
	}

	for i, server := range cfg.Nameservers {
		if !strings.Contains(server, ":") {
			cfg.Nameservers[i] = server + ":53"
		}
	}

	return dns.NewResolver(cfg), nil
}
