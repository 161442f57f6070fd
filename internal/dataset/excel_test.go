// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook creates an xlsx fixture with the given sheet content.
func writeWorkbook(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	require.NoError(t, file.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	require.NoError(t, file.SaveAs(path))
}

func TestReadWorkbook(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "parts.xlsx")
	writeWorkbook(t, path, "Part Sets", [][]interface{}{
		{"New Side Part", "Old Side Part", "Phase"},
		{"N100", "O100", "one"},
		{"N200", "O200"},
	})

	t.Run("reads the named sheet applying column renames", func(t *testing.T) {
		t.Parallel()

		ds, err := ReadWorkbook(path, "Part Sets", map[string]string{
			"New Side Part": "New_Side",
			"Old Side Part": "Old_Side",
		})
		require.NoError(t, err)

		assert.Equal(t, "parts.xlsx", ds.Source)
		assert.Equal(t, []string{"New_Side", "Old_Side", "Phase"}, ds.Columns)
		assert.Equal(t, [][]string{
			{"N100", "O100", "one"},
			{"N200", "O200", ""}, // short row padded to the header width
		}, ds.Rows)
	})

	t.Run("defaults to the first sheet", func(t *testing.T) {
		t.Parallel()

		ds, err := ReadWorkbook(path, "", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"New Side Part", "Old Side Part", "Phase"}, ds.Columns)
		assert.Len(t, ds.Rows, 2)
	})

	t.Run("missing file returns an error", func(t *testing.T) {
		t.Parallel()

		_, err := ReadWorkbook(filepath.Join(tempDir, "missing.xlsx"), "", nil)
		assert.ErrorContains(t, err, "opening workbook")
	})

	t.Run("missing sheet returns an error", func(t *testing.T) {
		t.Parallel()

		_, err := ReadWorkbook(path, "Nope", nil)
		assert.ErrorContains(t, err, "reading sheet")
	})
}
