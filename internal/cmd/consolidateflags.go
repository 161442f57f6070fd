// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/scop/internal/config"
)

const (
	inputFlagName  = "input"
	inputFlagShort = "i"
	inputFlagUsage = "Path to the directory containing the xlsx files to merge"

	sheetFlagName  = "sheet"
	sheetFlagUsage = "Name of the worksheet to read from every file. Defaults to the first sheet"

	columnsFlagName  = "columns"
	columnsFlagUsage = "Path to a file containing column rename rules applied before merging"

	dedupeColumnFlagName  = "dedupe-column"
	dedupeColumnFlagUsage = "If set, removes rows sharing a value in this column, keeping the last one"

	tableFlagName  = "table"
	tableFlagUsage = "Name of the warehouse table to load the merged dataset into"

	exportDirFlagName  = "export-dir"
	exportDirFlagUsage = "Path of the directory where the CSV chunk files are written"

	chunkSizeFlagName  = "chunk-size"
	chunkSizeFlagUsage = "Maximum number of rows per exported CSV file"
	defaultChunkSize   = 100

	baseNameFlagName  = "base-name"
	baseNameFlagUsage = "Base name of the exported CSV files"
	defaultBaseName   = "consolidated"

	compressFlagName  = "compress"
	compressFlagUsage = "If set, compresses every exported CSV file with zstd"
	defaultCompress   = false
)

// consolidateFlags collects the CLI options of the consolidate command.
type consolidateFlags struct {
	inputDir     string
	sheet        string
	columnsPath  string
	dedupeColumn string
	table        string
	exportDir    string
	chunkSize    int
	baseName     string
	compress     bool
}

// addFlags registers the CLI flags on cmd.
func (f *consolidateFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.inputDir, inputFlagName, inputFlagShort, "", inputFlagUsage)
	cmd.Flags().StringVar(&f.sheet, sheetFlagName, "", sheetFlagUsage)
	cmd.Flags().StringVar(&f.columnsPath, columnsFlagName, "", columnsFlagUsage)
	cmd.Flags().StringVar(&f.dedupeColumn, dedupeColumnFlagName, "", dedupeColumnFlagUsage)
	cmd.Flags().StringVar(&f.table, tableFlagName, "", tableFlagUsage)
	cmd.Flags().StringVar(&f.exportDir, exportDirFlagName, "", exportDirFlagUsage)
	cmd.Flags().IntVar(&f.chunkSize, chunkSizeFlagName, defaultChunkSize, chunkSizeFlagUsage)
	cmd.Flags().StringVar(&f.baseName, baseNameFlagName, defaultBaseName, baseNameFlagUsage)
	cmd.Flags().BoolVar(&f.compress, compressFlagName, defaultCompress, compressFlagUsage)

	_ = cmd.MarkFlagRequired(inputFlagName) // do not check error, the flag is registered above
	cmd.MarkFlagsMutuallyExclusive(tableFlagName, exportDirFlagName)
}

// toOptions builds a consolidateOptions instance from the parsed flags.
func (f *consolidateFlags) toOptions(cmd *cobra.Command) (*consolidateOptions, error) {
	var renames map[string]string
	if f.columnsPath != "" {
		mapping, err := config.NewColumnMappingFromPath(f.columnsPath)
		if err != nil {
			return nil, err
		}

		renames = mapping.Renames
	}

	return &consolidateOptions{
		inputDir:     f.inputDir,
		sheet:        f.sheet,
		renames:      renames,
		dedupeColumn: f.dedupeColumn,
		table:        f.table,
		exportDir:    f.exportDir,
		chunkSize:    f.chunkSize,
		baseName:     f.baseName,
		compress:     f.compress,
		out:          cmd.OutOrStdout(),
	}, nil
}
