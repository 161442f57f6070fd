// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/DataDog/zstd"
)

// ChunkWriter exports a dataset as a sequence of CSV files holding at most
// Size rows each, named `<BaseName>_<n>.csv` under Dir. With Compress set
// every file is zstd compressed and gains a `.zst` suffix.
type ChunkWriter struct {
	Dir      string
	BaseName string
	Size     int
	Compress bool
}

// Write implements the consolidation sink over the local filesystem.
// Every chunk file carries the dataset header; all chunks hold exactly Size
// rows except possibly the last one.
func (w *ChunkWriter) Write(ctx context.Context, ds *Dataset) error {
	if w.Size <= 0 {
		return fmt.Errorf("%w: invalid chunk size %d", ErrExport, w.Size)
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s", ErrExport, err.Error())
	}

	for index, start := 0, 0; start < len(ds.Rows); index, start = index+1, start+w.Size {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %s", ErrExport, err.Error())
		}

		end := min(start+w.Size, len(ds.Rows))
		if err := w.writeChunk(index, ds.Columns, ds.Rows[start:end]); err != nil {
			return fmt.Errorf("%w: %s", ErrExport, err.Error())
		}
	}

	return nil
}

// ChunkName returns the file name of the chunk at index.
func (w *ChunkWriter) ChunkName(index int) string {
	name := fmt.Sprintf("%s_%d.csv", w.BaseName, index)
	if w.Compress {
		name += ".zst"
	}

	return name
}

// writeChunk writes a single chunk file with its header row.
func (w *ChunkWriter) writeChunk(index int, columns []string, rows [][]string) error {
	file, err := os.Create(filepath.Join(w.Dir, w.ChunkName(index)))
	if err != nil {
		return err
	}
	defer file.Close()

	var target io.Writer = file
	var compressor io.WriteCloser
	if w.Compress {
		compressor = zstd.NewWriterLevel(file, zstd.DefaultCompression)
		target = compressor
	}

	csvWriter := csv.NewWriter(target)
	if err := csvWriter.Write(columns); err != nil {
		return err
	}

	if err := csvWriter.WriteAll(rows); err != nil {
		return err
	}

	if compressor != nil {
		if err := compressor.Close(); err != nil {
			return err
		}
	}

	return file.Close()
}
