// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColumnMapping holds the column normalization applied to every spreadsheet
// before consolidation.
type ColumnMapping struct {
	// Renames maps spreadsheet column headers to their normalized names.
	Renames map[string]string `yaml:"renames"`
}

// NewColumnMappingFromPath parses the column mapping configuration at path.
func NewColumnMappingFromPath(path string) (*ColumnMapping, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	mapping := new(ColumnMapping)
	if err := decoder.Decode(mapping); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParsing, path, err)
	}

	return mapping, nil
}
