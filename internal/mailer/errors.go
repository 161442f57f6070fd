// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mailer

import "errors"

var (
	// ErrSend reports failures delivering a message.
	ErrSend = errors.New("mail send")
	// ErrTemplate reports failures parsing or rendering the message templates.
	ErrTemplate = errors.New("mail template")
	// ErrMissingEnvVariable reports missing mandatory environment variables.
	ErrMissingEnvVariable = errors.New("missing environment variable")
)
