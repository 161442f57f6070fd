// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPSender(t *testing.T) {
	testCases := map[string]struct {
		environment   map[string]string
		expectedError error
	}{
		"valid configuration": {
			environment: map[string]string{
				"SMTP_HOST": "smtp.corp.example",
				"SMTP_FROM": "compliance@corp.example",
			},
		},
		"missing host": {
			environment: map[string]string{
				"SMTP_FROM": "compliance@corp.example",
			},
			expectedError: ErrMissingEnvVariable,
		},
		"missing from address": {
			environment: map[string]string{
				"SMTP_HOST": "smtp.corp.example",
			},
			expectedError: ErrMissingEnvVariable,
		},
	}

	for name, test := range testCases {
		t.Run(name, func(t *testing.T) {
			for key, value := range test.environment {
				t.Setenv(key, value)
			}

			sender, err := NewSMTPSender()
			if test.expectedError != nil {
				assert.ErrorIs(t, err, test.expectedError)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, sender)
		})
	}
}

func TestSMTPSendWithoutRecipients(t *testing.T) {
	t.Parallel()

	sender := &smtpSender{smtpConfig: smtpConfig{
		Host: "smtp.corp.example",
		Port: 587,
		From: "compliance@corp.example",
	}}

	err := sender.Send(t.Context(), &Message{Subject: "no recipients"})
	assert.ErrorIs(t, err, ErrSend)
}
