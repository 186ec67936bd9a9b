// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

var statusServer string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Probe the configured blocklist zones for their RFC 5782 test entry",
	Long: `status resolves the mandatory DNSBL test entry (127.0.0.2) on each
configured zone with a direct DNS query and reports whether the zone
answers, how quickly, and whether the entry is present. Zones that
answer but do not list the test entry are likely dead or parked, and
their membership answers should not be trusted.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusServer, "server", "",
		"DNS server to probe through (default 127.0.0.53:53, resolved's stub)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	opts := []rblcheck.Option{
		rblcheck.WithLists(cfg.zones(extraLists, skipDefault)),
	}
	if statusServer != "" {
		opts = append(opts, rblcheck.WithStatusServer(statusServer))
	}
	c := rblcheck.New(opts...)

	statuses, err := c.Status(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range statuses {
		switch {
		case !s.Online:
			fmt.Fprintf(out, "%-26s OFFLINE", s.List)
			if s.Error != nil {
				fmt.Fprintf(out, " (%v)", s.Error)
			}
			fmt.Fprintln(out)
		case !s.TestEntryListed:
			fmt.Fprintf(out, "%-26s ONLINE (%dms), test entry missing\n", s.List, s.LatencyMs)
		default:
			fmt.Fprintf(out, "%-26s ONLINE (%dms)\n", s.List, s.LatencyMs)
		}
	}
	return nil
}
