// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// rfc5782TestFragment is the reversed form of 127.0.0.2, the entry
// every IPv4 DNSBL is required to list (RFC 5782, section 5).
const rfc5782TestFragment = "2.0.0.127."

// Status probes every configured blocklist zone for its RFC 5782 test
// entry and reports, per zone, whether it answered, how quickly, and
// whether the test entry is listed. A zone that answers but does not
// list 127.0.0.2 is likely dead or parked and its memberships should
// not be trusted.
//
// Probes are plain DNS queries to the configured stub resolver, not
// resolver-service calls: the point is to exercise the zone itself,
// end to end.
func (c *Checker) Status(ctx context.Context) ([]ListStatus, error) {
	lists := c.Lists()
	if len(lists) == 0 {
		return nil, ErrNoLists
	}

	statuses := make([]ListStatus, len(lists))
	for i, list := range lists {
		statuses[i] = c.probeList(ctx, list)
	}
	return statuses, nil
}

// probeList queries one zone for its test entry and measures latency.
func (c *Checker) probeList(ctx context.Context, list string) ListStatus {
	name := rfc5782TestFragment + list + "."

	start := time.Now()
	resp, err := queryZone(ctx, c.dnsClient, name, c.statusServer)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return ListStatus{
			List:   list,
			Online: false,
			Error:  err,
		}
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
		return ListStatus{
			List:            list,
			Online:          true,
			TestEntryListed: len(resp.Answer) > 0,
			LatencyMs:       latency,
		}
	case dns.RcodeNameError:
		// The zone answered, but the mandatory test entry is missing.
		return ListStatus{
			List:      list,
			Online:    true,
			LatencyMs: latency,
		}
	default:
		return ListStatus{
			List:      list,
			Online:    false,
			LatencyMs: latency,
			Error:     fmt.Errorf("unexpected response code: %d", resp.Rcode),
		}
	}
}

// queryZone sends a single A query for name to the specified server.
// It respects context cancellation and the client's timeout.
func queryZone(ctx context.Context, client *dns.Client, name, server string) (*dns.Msg, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeA)
	msg.RecursionDesired = true

	// Ensure server has port.
	if !strings.Contains(server, ":") {
		server = server + ":53"
	}

	resp, _, err := client.ExchangeContext(ctx, msg, server)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
