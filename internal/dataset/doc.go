// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package dataset provides the tabular structure shared by the consolidation
// pipeline, the Excel reader that produces it and the chunked CSV exporter
// that writes it back to disk.
package dataset
