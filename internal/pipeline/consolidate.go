// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mia-platform/scop/internal/dataset"
	"github.com/mia-platform/scop/internal/logger"
)

const (
	consolidateLoggerName = "scop:pipeline:consolidate"
)

// Sink receives the consolidated dataset. The whole write succeeds or fails;
// no partial-success semantics are provided.
type Sink interface {
	Write(ctx context.Context, ds *dataset.Dataset) error
}

// Consolidate is the spreadsheet consolidation pipeline.
type Consolidate struct {
	InputDir     string
	Sheet        string
	Renames      map[string]string
	DedupeColumn string
	Sink         Sink
}

// ConsolidateReport summarizes a consolidation run.
type ConsolidateReport struct {
	RunID   string
	Files   int
	Rows    int
	Elapsed time.Duration
}

// Run reads every xlsx file of the input directory in name order, merges
// them under a common column schema and writes the result through the sink.
// Any failure aborts the run.
func (c *Consolidate) Run(ctx context.Context) (*ConsolidateReport, error) {
	start := time.Now()
	report := &ConsolidateReport{
		RunID: uuid.NewString(),
	}

	log := logger.FromContext(ctx).WithName(consolidateLoggerName)

	files, err := filepath.Glob(filepath.Join(c.InputDir, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInputFiles, c.InputDir)
	}

	sort.Strings(files)
	report.Files = len(files)
	log.Debug("starting consolidation run", "runId", report.RunID, "files", len(files))

	datasets := make([]*dataset.Dataset, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		log.Debug("reading spreadsheet", "runId", report.RunID, "file", file)
		ds, err := dataset.ReadWorkbook(file, c.Sheet, c.Renames)
		if err != nil {
			return nil, err
		}

		datasets = append(datasets, ds)
	}

	merged, err := dataset.Concat(datasets...)
	if err != nil {
		return nil, err
	}

	if c.DedupeColumn != "" {
		before := len(merged.Rows)
		if err := merged.Dedupe(c.DedupeColumn); err != nil {
			return nil, err
		}
		log.Debug("duplicate rows removed", "runId", report.RunID,
			"column", c.DedupeColumn, "removed", before-len(merged.Rows))
	}

	report.Rows = len(merged.Rows)
	if err := c.Sink.Write(ctx, merged); err != nil {
		return nil, err
	}

	report.Elapsed = time.Since(start)
	log.Info("consolidation run completed", "runId", report.RunID, "files", report.Files,
		"rows", report.Rows, "elapsed", report.Elapsed.String())

	return report, nil
}
