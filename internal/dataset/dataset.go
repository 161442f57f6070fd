// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package dataset

import (
	"fmt"
	"slices"
)

// Dataset is an in-memory table with a fixed column schema.
// Source names the file it was read from and is used only for error messages.
type Dataset struct {
	Source  string
	Columns []string
	Rows    [][]string
}

// Concat merges the given datasets preserving their order: the rows of the
// first dataset come first, then the rows of the second, and so on.
// The columns of the first dataset define the schema; any dataset that
// disagrees aborts the merge with a *SchemaMismatchError.
func Concat(datasets ...*Dataset) (*Dataset, error) {
	if len(datasets) == 0 {
		return &Dataset{}, nil
	}

	merged := &Dataset{
		Columns: slices.Clone(datasets[0].Columns),
	}

	for _, ds := range datasets {
		if !slices.Equal(merged.Columns, ds.Columns) {
			return nil, &SchemaMismatchError{
				Source:   ds.Source,
				Expected: merged.Columns,
				Found:    ds.Columns,
			}
		}

		merged.Rows = append(merged.Rows, ds.Rows...)
	}

	return merged, nil
}

// Dedupe removes rows sharing the same value in column, keeping the last
// occurrence of every key. The surviving rows keep their relative order.
func (d *Dataset) Dedupe(column string) error {
	columnIndex := slices.Index(d.Columns, column)
	if columnIndex < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}

	lastIndexByKey := make(map[string]int, len(d.Rows))
	for i, row := range d.Rows {
		lastIndexByKey[row[columnIndex]] = i
	}

	kept := make([][]string, 0, len(lastIndexByKey))
	for i, row := range d.Rows {
		if lastIndexByKey[row[columnIndex]] == i {
			kept = append(kept, row)
		}
	}

	d.Rows = kept
	return nil
}
