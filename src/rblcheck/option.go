// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck

import (
	"io"
	"time"

	"github.com/miekg/dns"
)

// Option is a functional option for configuring a [Checker].
type Option func(*Checker)

// WithLists replaces all configured blocklist zones.
// This overrides the default zones.
func WithLists(lists []string) Option {
	return func(c *Checker) {
		c.lists = lists
	}
}

// WithTimeout sets the timeout for each resolver round trip.
// The default is 30 seconds.
//
// This option has no effect if a custom resolver is set via
// [WithResolver], as the custom resolver manages its own deadlines.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithOutput sets the diagnostic verbosity. The default is [Normal].
// Verbosity affects only what gets printed, never results.
func WithOutput(o Output) Option {
	return func(c *Checker) {
		c.output = o
	}
}

// WithDiagWriter redirects diagnostic output. The default is stdout.
//
// Passing nil is a no-op.
func WithDiagWriter(w io.Writer) Option {
	return func(c *Checker) {
		if w != nil {
			c.diag = w
		}
	}
}

// WithResolver substitutes the hostname resolver implementation. By
// default lookups go to systemd-resolved over the system bus; supply
// your own [HostnameResolver] to route them elsewhere, or to fake the
// resolver in tests.
//
// Passing nil is a no-op and the system-bus client will be used.
func WithResolver(r HostnameResolver) Option {
	return func(c *Checker) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithStatusServer sets the DNS server [Checker.Status] probes
// through, in host or host:port form. The default is 127.0.0.53:53,
// systemd-resolved's local stub listener.
func WithStatusServer(addr string) Option {
	return func(c *Checker) {
		if addr != "" {
			c.statusServer = addr
		}
	}
}

// WithDNSClient sets a custom [dns.Client] for [Checker.Status]
// probes. This allows full control over the probe transport, including
// TCP (Net: "tcp") or DNS-over-TLS (Net: "tcp-tls" with TLSConfig).
// The core lookup path never uses this client; lookups always go
// through the [HostnameResolver].
//
// Passing nil is a no-op and the default UDP client will be used.
func WithDNSClient(client *dns.Client) Option {
	return func(c *Checker) {
		if client != nil {
			c.dnsClient = client
		}
	}
}
