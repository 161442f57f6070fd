// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package dataset

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads a sheet of the xlsx file at path into a Dataset.
// When sheet is empty the first sheet of the workbook is used. The first row
// becomes the column schema after applying the renames map; data rows shorter
// than the header are padded with empty cells and trailing cells beyond the
// header width are dropped.
func ReadWorkbook(path, sheet string, renames map[string]string) (*Dataset, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %q: %w", path, err)
	}
	defer file.Close()

	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %q: %w", sheet, path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q in %q", ErrEmptySheet, sheet, path)
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		if renamed, ok := renames[name]; ok {
			name = renamed
		}
		columns[i] = name
	}

	dataset := &Dataset{
		Source:  filepath.Base(path),
		Columns: columns,
		Rows:    make([][]string, 0, len(rows)-1),
	}

	for _, row := range rows[1:] {
		normalized := make([]string, len(columns))
		copy(normalized, row)
		dataset.Rows = append(dataset.Rows, normalized)
	}

	return dataset, nil
}
