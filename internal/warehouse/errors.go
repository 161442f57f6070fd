// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package warehouse

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection reports failures establishing or validating the warehouse connection.
	ErrConnection = errors.New("warehouse connection")
	// ErrQuery reports failures executing the compliance query.
	ErrQuery = errors.New("warehouse query")
	// ErrWrite reports failures bulk-loading a dataset into a table.
	ErrWrite = errors.New("warehouse write")

	// ErrMissingEnvVariable reports missing mandatory environment variables.
	ErrMissingEnvVariable = errors.New("missing environment variable")
	// ErrInvalidEnvVariable reports malformed environment variable values.
	ErrInvalidEnvVariable = errors.New("invalid environment value")
)

// wrapError wraps err with the given sentinel unless it already carries one
// of the package sentinels.
func wrapError(sentinel, err error) error {
	if err == nil {
		return nil
	}

	for _, known := range []error{ErrConnection, ErrQuery, ErrWrite} {
		if errors.Is(err, known) {
			return err
		}
	}

	return fmt.Errorf("%w: %s", sentinel, err.Error())
}
