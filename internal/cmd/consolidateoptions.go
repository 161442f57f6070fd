// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/mia-platform/scop/internal/dataset"
	"github.com/mia-platform/scop/internal/pipeline"
	"github.com/mia-platform/scop/internal/warehouse"
)

// consolidateOptions configures a run of the spreadsheet consolidation
// pipeline.
type consolidateOptions struct {
	inputDir     string
	sheet        string
	renames      map[string]string
	dedupeColumn string
	table        string
	exportDir    string
	chunkSize    int
	baseName     string
	compress     bool
	out          io.Writer

	lock sync.Mutex
}

// validate checks the configured values and reports invalid setups.
func (o *consolidateOptions) validate() error {
	if (o.table == "") == (o.exportDir == "") {
		return errInvalidSink
	}

	if o.exportDir != "" && o.chunkSize <= 0 {
		return fmt.Errorf("%w: %d", errInvalidChunkSize, o.chunkSize)
	}

	return nil
}

// execute runs the consolidation pipeline towards the configured sink.
func (o *consolidateOptions) execute(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()

	var sink pipeline.Sink
	if o.table != "" {
		client, err := warehouse.NewClient()
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck // nothing to do with a failed close at exit

		sink = &pipeline.TableSink{Loader: client, Table: o.table}
	} else {
		sink = &dataset.ChunkWriter{
			Dir:      o.exportDir,
			BaseName: o.baseName,
			Size:     o.chunkSize,
			Compress: o.compress,
		}
	}

	consolidate := &pipeline.Consolidate{
		InputDir:     o.inputDir,
		Sheet:        o.sheet,
		Renames:      o.renames,
		DedupeColumn: o.dedupeColumn,
		Sink:         sink,
	}

	report, err := consolidate.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(o.out, "consolidated %d files into %d rows in %s\n",
		report.Files, report.Rows, report.Elapsed.Round(reportElapsedPrecision))
	return nil
}
