// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/miekg/dns"
)

// Default configuration values.
const (
	// defaultStatusServer is systemd-resolved's DNS stub listener,
	// used for RFC 5782 health probes.
	defaultStatusServer = "127.0.0.53:53"

	defaultStatusTimeout = 5 * time.Second
)

// defaultLists are the blocklist zones checked when the caller does not
// configure any of its own.
var defaultLists = []string{
	"zen.spamhaus.org",
	"bl.spamcop.net",
	"dnsbl.sorbs.net",
}

// DefaultLists returns the blocklist zones a [Checker] uses when none
// are configured.
func DefaultLists() []string {
	lists := make([]string, len(defaultLists))
	copy(lists, defaultLists)
	return lists
}

// Checker looks up targets on DNSBL zones by resolving reversed-label
// query names through the host's resolver service.
type Checker struct {
	mu           sync.RWMutex
	lists        []string
	resolver     HostnameResolver
	timeout      time.Duration
	output       Output
	diag         io.Writer
	statusServer string
	dnsClient    *dns.Client
}

// New creates a new [Checker] with the default blocklist zones.
// Use functional options to customize behavior.
//
//	// Default configuration:
//	c := rblcheck.New()
//
//	// Custom configuration:
//	c := rblcheck.New(
//	    rblcheck.WithLists([]string{"zen.spamhaus.org"}),
//	    rblcheck.WithOutput(rblcheck.Verbose),
//	)
func New(opts ...Option) *Checker {
	c := &Checker{
		lists:        make([]string, len(defaultLists)),
		timeout:      defaultTimeout,
		output:       Normal,
		diag:         os.Stdout,
		statusServer: defaultStatusServer,
	}
	copy(c.lists, defaultLists)

	for _, opt := range opts {
		opt(c)
	}

	// Default to the system-bus resolved client if not set by WithResolver.
	if c.resolver == nil {
		c.resolver = resolvedClient{timeout: c.timeout}
	}

	// Shared DNS client for health probes, if not set by WithDNSClient.
	if c.dnsClient == nil {
		c.dnsClient = &dns.Client{
			Timeout: defaultStatusTimeout,
			Net:     "udp",
		}
	}

	return c
}

// Lookup checks a single target against a single blocklist zone.
//
// The query name is the target's reversed-label fragment followed by
// the zone and a trailing root dot, e.g. "2.0.0.127.zen.spamhaus.org.".
// A reply with at least one address record means the target is listed;
// an empty reply or NXDOMAIN means it is not. Any other resolver
// failure is returned as an error, classified per
// [ClassifyResolveError].
func (c *Checker) Lookup(ctx context.Context, list string, query Query) (Membership, error) {
	if c.output == Verbose {
		fmt.Fprintf(c.diag, "List: %q, Query: %q\n", list, query)
	}

	name := query.Encode() + list + "."

	if c.output == Verbose {
		fmt.Fprintf(c.diag, "Querying: %s\n", name)
	}

	reply, err := c.resolver.ResolveHostname(ctx, name)

	if c.output == Verbose {
		fmt.Fprintf(c.diag, "Result: %+v, error: %v\n", reply, err)
	}

	if err != nil {
		classified := ClassifyResolveError(err)
		if errors.Is(classified, ErrNotFound) {
			// NXDOMAIN: the query name has no record, so the target is
			// simply not listed.
			return Membership{Name: query.String(), List: list, Found: false}, nil
		}
		return Membership{}, classified
	}

	return Membership{
		Name:  query.String(),
		List:  list,
		Found: len(reply.Addresses) > 0,
	}, nil
}

// Check resolves every query against every configured blocklist zone
// and returns one [Membership] per (query, list) pair, in query-major
// order: the first query against every list, then the second, and so
// on. Lookups run sequentially.
//
// Evaluation is eager and fail-fast: the first lookup that fails with
// anything other than NXDOMAIN aborts the batch, and Check returns that
// error alone. Memberships computed before the failure are discarded,
// not returned alongside it.
func (c *Checker) Check(ctx context.Context, queries ...Query) ([]Membership, error) {
	lists := c.Lists()
	if len(lists) == 0 {
		return nil, ErrNoLists
	}

	results := make([]Membership, 0, len(queries)*len(lists))
	for _, query := range queries {
		for _, list := range lists {
			m, err := c.Lookup(ctx, list, query)
			if err != nil {
				return nil, err
			}
			results = append(results, m)
		}
	}
	return results, nil
}

// Lists returns a copy of the currently configured blocklist zones.
func (c *Checker) Lists() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	lists := make([]string, len(c.lists))
	copy(lists, c.lists)
	return lists
}

// SetLists adds blocklist zones to a running [Checker]. It is safe to
// call concurrently with [Checker.Check], [Checker.Lookup], and
// [Checker.Status].
//
// Zones already configured are left in place; new ones are appended in
// the order given. The change takes effect for batches that start after
// this call returns — an in-flight batch uses its own snapshot of the
// zone list.
//
// Passing zero zones is a no-op.
func (c *Checker) SetLists(lists ...string) {
	if len(lists) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, list := range lists {
		present := false
		for _, l := range c.lists {
			if l == list {
				present = true
				break
			}
		}
		if !present {
			c.lists = append(c.lists, list)
		}
	}
}

// DeleteLists removes one or more zones from the checker's active
// configuration at runtime. It is concurrency-safe.
//
// Passing zero zones or zones that are not configured is a no-op.
func (c *Checker) DeleteLists(lists ...string) {
	if len(lists) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	toDelete := make(map[string]struct{}, len(lists))
	for _, list := range lists {
		toDelete[list] = struct{}{}
	}

	var kept []string
	for _, l := range c.lists {
		if _, deleteMe := toDelete[l]; !deleteMe {
			kept = append(kept, l)
		}
	}
	c.lists = kept
}
