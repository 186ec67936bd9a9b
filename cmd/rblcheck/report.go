// Copyright (c) 2026 Andrew Aylett All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"github.com/xuri/excelize/v2"

	"github.com/andrewaylett/rblcheck/src/rblcheck"
)

const reportSheet = "Memberships"

// writeReport writes one row per membership to an XLSX workbook at
// path, overwriting any existing file.
func writeReport(path string, results []rblcheck.Membership) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(reportSheet, "A1",
		&[]interface{}{"Target", "List", "Listed"}); err != nil {
		return err
	}

	for i, m := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportSheet, cell,
			&[]interface{}{m.Name, m.List, m.Found}); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
