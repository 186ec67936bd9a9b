// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	results := []rblcheck.Membership{
		{Name: "192.0.2.1", List: "zen.spamhaus.org", Found: true},
		{Name: "example.com", List: "zen.spamhaus.org", Found: false},
	}
	require.NoError(t, writeReport(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Target", "List", "Listed"}, rows[0])
	assert.Equal(t, "192.0.2.1", rows[1][0])
	assert.Equal(t, "TRUE", rows[1][2])
	assert.Equal(t, "example.com", rows[2][0])
	assert.Equal(t, "FALSE", rows[2][2])
}

func TestWriteReportEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, writeReport(path, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(reportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
