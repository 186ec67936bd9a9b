// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck

import (
	"context"
	"syscall"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	resolvedBusName       = "org.freedesktop.resolve1"
	resolvedObjectPath    = "/org/freedesktop/resolve1"
	resolveHostnameMethod = "org.freedesktop.resolve1.Manager.ResolveHostname"
)

// defaultTimeout bounds a single round trip to the resolver service.
const defaultTimeout = 30 * time.Second

// ResolvedAddress is one address record from a resolver reply, matching
// the a(iiay) member of the ResolveHostname return signature.
type ResolvedAddress struct {
	// IfIndex is the scope: the index of the interface the address is
	// reachable on, or 0 when unscoped.
	IfIndex int32

	// Family is the address family (AF_INET or AF_INET6).
	Family int32

	// Address is the raw address, 4 or 16 bytes in network order.
	Address []byte
}

// ResolveReply is the full reply to a hostname resolution call.
type ResolveReply struct {
	Addresses []ResolvedAddress
	Canonical string
	Flags     uint64
}

// HostnameResolver resolves a fully qualified name into address
// records. The production implementation talks to systemd-resolved
// over the system bus; tests substitute their own via [WithResolver].
type HostnameResolver interface {
	ResolveHostname(ctx context.Context, name string) (ResolveReply, error)
}

// resolvedClient is the systemd-resolved implementation of
// [HostnameResolver]. Each call opens its own bus connection and closes
// it before returning: queries are independent and stateless, so no
// connection is held between them.
type resolvedClient struct {
	timeout time.Duration
}

// ResolveHostname calls org.freedesktop.resolve1.Manager.ResolveHostname
// with ifindex 0 (any interface), family AF_INET, and no flags. Errors
// come back as dbus named errors and are classified by the caller.
func (r resolvedClient) ResolveHostname(ctx context.Context, name string) (ResolveReply, error) {
	timeout := r.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return ResolveReply{}, err
	}
	defer conn.Close()

	var reply ResolveReply
	obj := conn.Object(resolvedBusName, dbus.ObjectPath(resolvedObjectPath))
	err = obj.CallWithContext(ctx, resolveHostnameMethod, 0,
		int32(0), name, int32(syscall.AF_INET), uint64(0),
	).Store(&reply.Addresses, &reply.Canonical, &reply.Flags)
	if err != nil {
		return ResolveReply{}, err
	}
	return reply, nil
}
