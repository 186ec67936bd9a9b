// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rblcheck_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{"valid .com", "example.com", true},
		{"valid .co.uk", "example.co.uk", true},
		{"valid subdomain", "sub.example.com", true},
		{"valid hyphen", "my-site.example.com", true},
		{"valid short label", "a.com", true},
		{"invalid empty", "", false},
		{"invalid single label", "localhost", false},
		{"invalid starts with hyphen", "-example.com", false},
		{"invalid ends with hyphen", "example-.com", false},
		{"invalid special chars", "exam!ple.com", false},
		{"invalid spaces", "example .com", false},
		{"invalid single char TLD", "example.c", false},
		{"invalid TLD with digits", "example.c0m", false},
		{"invalid TLD with hyphen", "example.c-m", false},
		{"invalid label too long", "example." + strings.Repeat("a", 64) + ".com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rblcheck.IsValidDomain(tt.domain), "IsValidDomain(%q)", tt.domain)
		})
	}
}
