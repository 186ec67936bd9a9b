// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck_test

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

func TestClassifyNXDOMAIN(t *testing.T) {
	err := rblcheck.ClassifyResolveError(dbus.Error{
		Name: "org.freedesktop.resolve1.DnsError.NXDOMAIN",
		Body: []interface{}{"'example.invalid' not found"},
	})
	assert.ErrorIs(t, err, rblcheck.ErrNotFound)
}

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name    string
		errName string
	}{
		{"service unknown", "org.freedesktop.DBus.Error.ServiceUnknown"},
		{"no reply", "org.freedesktop.DBus.Error.NoReply"},
		{"other dns error", "org.freedesktop.resolve1.DnsError.SERVFAIL"},
		{"resolved internal", "org.freedesktop.resolve1.NoNameServers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rblcheck.ClassifyResolveError(dbus.Error{
				Name: tt.errName,
				Body: []interface{}{"something broke"},
			})

			var transport *rblcheck.TransportError
			require.ErrorAs(t, err, &transport)
			assert.Equal(t, tt.errName, transport.Name)
			assert.Equal(t, "something broke", transport.Description)
			assert.NotErrorIs(t, err, rblcheck.ErrNotFound)
		})
	}
}

func TestClassifyUnstructured(t *testing.T) {
	err := rblcheck.ClassifyResolveError(errors.New("socket closed"))
	assert.ErrorIs(t, err, rblcheck.ErrUnknown)
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, rblcheck.ClassifyResolveError(nil))
}

func TestClassifyEmptyBody(t *testing.T) {
	err := rblcheck.ClassifyResolveError(dbus.Error{
		Name: "org.freedesktop.DBus.Error.Disconnected",
	})

	var transport *rblcheck.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Empty(t, transport.Description)
}

func TestTransportErrorMessage(t *testing.T) {
	err := &rblcheck.TransportError{
		Name:        "org.freedesktop.DBus.Error.ServiceUnknown",
		Description: "no such service",
	}
	assert.Contains(t, err.Error(), "org.freedesktop.DBus.Error.ServiceUnknown")
	assert.Contains(t, err.Error(), "no such service")
}
