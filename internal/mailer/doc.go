// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package mailer renders the vendor notification messages and delivers them
// through a Sender implementation. The SMTP sender talks to a real transport
// configured from environment variables; the writer sender prints the
// rendered messages to an io.Writer for dry runs.
package mailer
