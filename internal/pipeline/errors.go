// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import "errors"

var (
	// ErrNoInputFiles reports a consolidation run without any spreadsheet to read.
	ErrNoInputFiles = errors.New("no input files found")
)
