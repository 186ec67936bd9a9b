// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package rblcheck checks whether IP addresses and domain names are
// listed on DNS-based blocklists (DNSBL/RBL).
//
// Instead of sending raw DNS packets, lookups go through the host's
// resolver service: systemd-resolved, reached over the local system
// bus via its [org.freedesktop.resolve1] ResolveHostname method. The
// package encodes each target into the reversed-label form required by
// DNSBL convention ([RFC 5782]), appends the blocklist zone, asks
// resolved for the resulting name, and classifies the outcome:
//
//   - an answer with address records means the target is listed
//   - an empty answer or NXDOMAIN means it is not
//   - anything else is a real failure and is reported as one
//
// # System Requirement
//
// This package requires a running systemd-resolved reachable on the
// system bus, which in practice means a Linux host with systemd. It
// deliberately does not fall back to raw DNS for lookups: resolved
// already knows the right upstream servers, split-DNS routing, and
// DNSSEC posture for the host. Note that many DNSBLs refuse queries
// arriving through large public resolvers (Google, Cloudflare, Quad9),
// so results depend on what resolved is configured to forward to.
//
// # Query Encoding
//
// Targets encode per RFC 5782:
//
//	192.0.2.1    -> 1.2.0.192.
//	2001:db8::1  -> 1.0.0.0. ... .8.b.d.0.1.0.0.2.  (32 reversed nibbles)
//	example.com  -> example.com.                    (no reversal)
//
// The encoded fragment plus the zone plus a root dot is what gets
// resolved, e.g. "1.2.0.192.zen.spamhaus.org.".
//
// # Quick Start
//
//	c := rblcheck.New()
//
//	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
//	defer cancel()
//
//	q, err := rblcheck.ParseQuery("192.0.2.1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := c.Check(ctx, q)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, m := range results {
//	    if m.Found {
//	        fmt.Printf("%s listed by %s\n", m.Name, m.List)
//	    }
//	}
//
// # Batch Semantics
//
// [Checker.Check] takes the cross product of queries and configured
// zones, query-major: the first query is resolved against every zone
// before the second query starts. Lookups run sequentially and the
// batch is fail-fast — the first lookup that fails with anything other
// than NXDOMAIN aborts the whole batch, and already-computed
// memberships are discarded rather than returned as a partial success.
// NXDOMAIN is never a failure; it is the normal "not listed" answer.
//
// # Configuration
//
// Use functional options to customize the checker:
//
//	c := rblcheck.New(
//	    // Replace the default zones.
//	    rblcheck.WithLists([]string{"zen.spamhaus.org", "bl.spamcop.net"}),
//
//	    // Shorter resolver round trips (default: 30s).
//	    rblcheck.WithTimeout(10 * time.Second),
//
//	    // Print query names and raw replies as lookups run.
//	    rblcheck.WithOutput(rblcheck.Verbose),
//	)
//
// Available options:
//
//   - [WithLists]        — Replace the blocklist zones (default: zen.spamhaus.org, bl.spamcop.net, dnsbl.sorbs.net)
//   - [WithTimeout]      — Per-lookup resolver timeout (default: 30s)
//   - [WithOutput]       — Diagnostic verbosity: Quiet, Normal, Verbose
//   - [WithDiagWriter]   — Where Verbose diagnostics go (default: stdout)
//   - [WithResolver]     — Substitute the resolver implementation (tests, other backends)
//   - [WithStatusServer] — DNS server for Status probes (default: 127.0.0.53:53)
//   - [WithDNSClient]    — Custom client for Status probes (TCP, TLS, dialers)
//   - [Checker.SetLists] — Hot-reload: add zones at runtime safely
//
// # API
//
// Core methods on [Checker]:
//
//	// Check targets against every configured zone.
//	results, err := c.Check(ctx, q1, q2)
//
//	// Check one (zone, target) pair.
//	m, err := c.Lookup(ctx, "zen.spamhaus.org", q)
//
//	// Probe zone health via the RFC 5782 test entry.
//	statuses, err := c.Status(ctx)
//
//	// Inspect and adjust the configured zones.
//	zones := c.Lists()
//	c.SetLists("b.barracudacentral.org")
//	c.DeleteLists("dnsbl.sorbs.net")
//
// # Errors
//
// Sentinel errors for use with [errors.Is]:
//
//	var (
//	    ErrNotFound      // NXDOMAIN: target not listed (absorbed by Lookup)
//	    ErrUnknown       // Failure with no structured error information
//	    ErrNoLists       // No blocklist zones configured
//	    ErrInvalidDomain // Domain name failed validation
//	)
//
// Every other resolver failure surfaces as a [*TransportError] carrying
// the service-reported error name and description verbatim, for
// matching with [errors.As]. [ClassifyResolveError] exposes the mapping
// directly; it is a pure function of the error name string.
//
// # Zone Health
//
// RFC 5782 requires every IPv4 DNSBL to list 127.0.0.2 as a test
// entry. [Checker.Status] resolves 2.0.0.127.<zone>. through a plain
// DNS probe and reports whether each zone is answering and whether the
// test entry is present — a quick way to spot dead or parked zones
// before trusting their answers.
//
// # Examples
//
// Runnable examples are available in the examples/ directory:
//
//   - examples/basic     — Check addresses and domains with default zones
//   - examples/custom    — Custom zones, timeout, and verbose diagnostics
//   - examples/hotreload — Adjust the zone list on a live checker
//   - examples/status    — Probe zone health and latency
//
// [org.freedesktop.resolve1]: https://www.freedesktop.org/software/systemd/man/org.freedesktop.resolve1.html
// [RFC 5782]: https://www.rfc-editor.org/rfc/rfc5782
package rblcheck
