// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

// nxdomainErrorName is the error name systemd-resolved reports when a
// lookup ends in NXDOMAIN. resolved names DNS failures under the
// org.freedesktop.resolve1.DnsError namespace, with the response code
// as the suffix; NXDOMAIN is the only code treated specially here.
const nxdomainErrorName = "org.freedesktop.resolve1.DnsError.NXDOMAIN"

// Sentinel errors for the rblcheck package.
var (
	// ErrNotFound reports that the resolver answered NXDOMAIN for a
	// constructed query name, meaning the target is not on the list.
	// [Checker.Lookup] absorbs it into a Found=false membership; callers
	// only see it when using [ClassifyResolveError] directly.
	ErrNotFound = errors.New("rblcheck: name not found")

	// ErrUnknown is returned when a lookup fails without any structured
	// error information to classify.
	ErrUnknown = errors.New("rblcheck: unknown resolver failure")

	// ErrNoLists is returned when no blocklist zones are configured.
	ErrNoLists = errors.New("rblcheck: no blocklists configured")

	// ErrInvalidDomain is returned when a domain name fails validation.
	ErrInvalidDomain = errors.New("rblcheck: invalid domain name")
)

// TransportError is any named resolver or bus failure other than
// NXDOMAIN: connection refused, service unavailable, malformed request,
// an internal resolver fault, and so on. Name and Description carry the
// service-reported values verbatim. A TransportError is fatal for the
// batch that hit it.
type TransportError struct {
	// Name is the structured error identifier reported by the service,
	// e.g. "org.freedesktop.DBus.Error.ServiceUnknown".
	Name string

	// Description is the service's human-readable message.
	Description string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("rblcheck: resolver reported %s: %s", e.Name, e.Description)
}

// ClassifyResolveError maps a raw resolver error onto the package
// taxonomy: an NXDOMAIN-named error becomes [ErrNotFound], any other
// named error becomes a [*TransportError], and anything carrying no
// structured name is wrapped in [ErrUnknown]. Classification depends
// only on the error identifier string, never on resolver state.
//
// A nil error classifies as nil.
func ClassifyResolveError(err error) error {
	if err == nil {
		return nil
	}
	var busErr dbus.Error
	if errors.As(err, &busErr) {
		return classifyNamed(busErr.Name, busErrorDescription(busErr))
	}
	return fmt.Errorf("%w: %v", ErrUnknown, err)
}

func classifyNamed(name, description string) error {
	if strings.HasPrefix(name, nxdomainErrorName) {
		return fmt.Errorf("%w: %s", ErrNotFound, description)
	}
	return &TransportError{Name: name, Description: description}
}

// busErrorDescription extracts the human-readable message from a D-Bus
// error body, which carries it as the first string member.
func busErrorDescription(err dbus.Error) string {
	if len(err.Body) > 0 {
		if s, ok := err.Body[0].(string); ok {
			return s
		}
	}
	return ""
}
