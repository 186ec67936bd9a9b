// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck

// Membership records the outcome of checking a single target against a
// single blocklist zone. It is created once per (query, list) pair and
// never mutated afterwards.
type Membership struct {
	// Name is the textual rendering of the queried target: an address
	// in its standard notation, or the normalized domain string.
	Name string

	// List is the blocklist zone the target was checked against.
	List string

	// Found indicates the target is present on the list.
	Found bool
}

// ListStatus reports the health of a single blocklist zone, as probed
// via its RFC 5782 test entry.
type ListStatus struct {
	// List is the blocklist zone that was probed.
	List string

	// Online indicates the zone answered the probe at all.
	Online bool

	// TestEntryListed indicates the zone lists 127.0.0.2, the test
	// entry every IPv4 DNSBL is required to carry. A zone that answers
	// but omits it is likely dead or parked.
	TestEntryListed bool

	// LatencyMs is the probe round-trip time in milliseconds.
	// Only meaningful when Online is true.
	LatencyMs int64

	// Error is non-nil if the probe failed.
	Error error
}

// Output selects how much diagnostic detail lookups print. It affects
// printing only, never control flow or results.
type Output int

const (
	// Quiet suppresses everything but positive results.
	Quiet Output = iota

	// Normal prints one line per membership.
	Normal

	// Verbose additionally prints the constructed query names and raw
	// resolver replies as lookups run.
	Verbose
)

// String returns the lowercase name of the output level.
func (o Output) String() string {
	switch o {
	case Quiet:
		return "quiet"
	case Normal:
		return "normal"
	case Verbose:
		return "verbose"
	default:
		return "unknown"
	}
}
