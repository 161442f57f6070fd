// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExport reports failures while writing chunk files.
	ErrExport = errors.New("chunk export")
	// ErrEmptySheet reports a workbook sheet without a header row.
	ErrEmptySheet = errors.New("empty sheet")
	// ErrUnknownColumn reports an operation on a column missing from the schema.
	ErrUnknownColumn = errors.New("unknown column")
)

// Ensure SchemaMismatchError implements the error interface.
var _ error = &SchemaMismatchError{}

// SchemaMismatchError reports a source file whose columns disagree with the
// schema of the files merged before it.
type SchemaMismatchError struct {
	Source   string
	Expected []string
	Found    []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch in %q: expected columns [%s], found [%s]",
		e.Source,
		strings.Join(e.Expected, ", "),
		strings.Join(e.Found, ", "),
	)
}
