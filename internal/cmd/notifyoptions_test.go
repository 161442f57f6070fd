// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyOptionsValidate(t *testing.T) {
	t.Parallel()

	existingAttachment := filepath.Join(t.TempDir(), "guidelines.pdf")
	require.NoError(t, os.WriteFile(existingAttachment, []byte("%PDF-1.4"), 0o600))

	testCases := map[string]struct {
		options       *notifyOptions
		expectedError error
	}{
		"no attachment is valid": {
			options: &notifyOptions{},
		},
		"existing attachment is valid": {
			options: &notifyOptions{
				attachment: existingAttachment,
			},
		},
		"missing attachment returns error": {
			options: &notifyOptions{
				attachment: filepath.Join("testdata", "missing.pdf"),
			},
			expectedError: errMissingAttachment,
		},
	}

	for testName, test := range testCases {
		t.Run(testName, func(t *testing.T) {
			t.Parallel()

			err := test.options.validate()
			assert.ErrorIs(t, err, test.expectedError)
		})
	}
}
