// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"

	"github.com/mia-platform/scop/internal/dataset"
	"github.com/mia-platform/scop/internal/warehouse"
)

var _ Sink = &TableSink{}

// TableSink writes the consolidated dataset into a warehouse table with a
// single bulk load.
type TableSink struct {
	Loader warehouse.Loader
	Table  string
}

// Write implements Sink.
func (s *TableSink) Write(ctx context.Context, ds *dataset.Dataset) error {
	return s.Loader.LoadDataset(ctx, s.Table, ds)
}
