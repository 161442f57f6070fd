// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

// reportElapsedPrecision is the rounding applied to the elapsed time printed
// at the end of a run.
const reportElapsedPrecision = time.Millisecond

var (
	errInvalidSink       = errors.New("exactly one of --table or --export-dir must be set")
	errInvalidChunkSize  = errors.New("chunk size must be a positive number of rows")
	errMissingAttachment = errors.New("attachment file not found")
)

// handleError will do custom print error handling based on the type of error received.
// it will return nil if the command must return 0 exit code, otherwise it will return
// the original error.
func handleError(cmd *cobra.Command, err error) error {
	switch {
	case errors.Is(err, errInvalidSink), errors.Is(err, errInvalidChunkSize):
		cmd.PrintErrln(err)
		_ = cmd.Usage() // do not check error as we cannot do much about it
		return err
	default:
		cmd.PrintErrln(err)
		return err
	}
}
