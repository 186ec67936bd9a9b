// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

var (
	cfgPath     string
	extraLists  []string
	skipDefault bool
	quiet       bool
	verbose     bool
	timeoutFlag time.Duration
	xlsxPath    string

	// anyListed drives the exit status: set when any target turns out
	// to be on any list.
	anyListed bool
)

var rootCmd = &cobra.Command{
	Use:   "rblcheck [flags] address-or-domain...",
	Short: "Check addresses and domains against DNS blocklists",
	Long: `rblcheck looks up IP addresses and domain names on DNS-based
blocklists (DNSBL/RBL). Lookups go through the host's systemd-resolved
service over the system bus, so they follow whatever upstream servers,
split-DNS routing, and DNSSEC settings the host is configured with.

Each target is encoded into the reversed-label form the blocklist
expects (RFC 5782) and resolved against every configured zone. An
answer means the target is listed; NXDOMAIN means it is not.

Note that many blocklists refuse queries arriving via large public
resolvers, so results depend on resolved's upstream configuration.`,
	Example: `  rblcheck 192.0.2.1
  rblcheck -q 2001:db8::1 example.com
  rblcheck -l b.barracudacentral.org --no-defaults 192.0.2.1
  rblcheck --xlsx report.xlsx $(cat targets.txt)`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	RunE:          runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"config file (default is "+defaultConfigPath()+")")
	rootCmd.PersistentFlags().StringSliceVarP(&extraLists, "list", "l", nil,
		"additional blocklist zone to check (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&skipDefault, "no-defaults", false,
		"do not check the built-in blocklist zones")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"print positive results only")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"print constructed query names and raw resolver replies")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0,
		"per-lookup resolver timeout (default 30s)")
	rootCmd.Flags().StringVar(&xlsxPath, "xlsx", "",
		"also write the results to an XLSX report at this path")
	rootCmd.MarkFlagsMutuallyExclusive("quiet", "verbose")
}

func outputLevel() rblcheck.Output {
	switch {
	case quiet:
		return rblcheck.Quiet
	case verbose:
		return rblcheck.Verbose
	default:
		return rblcheck.Normal
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	queries := make([]rblcheck.Query, 0, len(args))
	for _, arg := range args {
		q, err := rblcheck.ParseQuery(arg)
		if err != nil {
			return err
		}
		queries = append(queries, q)
	}

	timeout, err := cfg.lookupTimeout(timeoutFlag)
	if err != nil {
		return err
	}

	opts := []rblcheck.Option{
		rblcheck.WithLists(cfg.zones(extraLists, skipDefault)),
		rblcheck.WithOutput(outputLevel()),
	}
	if timeout > 0 {
		opts = append(opts, rblcheck.WithTimeout(timeout))
	}
	c := rblcheck.New(opts...)

	results, err := c.Check(cmd.Context(), queries...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range results {
		switch {
		case m.Found:
			anyListed = true
			fmt.Fprintf(out, "%s listed by %s\n", m.Name, m.List)
		case outputLevel() != rblcheck.Quiet:
			fmt.Fprintf(out, "%s not listed by %s\n", m.Name, m.List)
		}
	}

	if xlsxPath != "" {
		if err := writeReport(xlsxPath, results); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return nil
}
