// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mailer

import (
	"context"

	"github.com/mia-platform/scop/internal/supplier"
)

// Sender delivers a rendered notification message. One call sends one email.
type Sender interface {
	Send(ctx context.Context, message *Message) error
}

// Message is a fully rendered notification ready for delivery.
// To holds the vendor contacts and Cc the internal CS team.
type Message struct {
	Subject     string
	Body        string
	To          []supplier.Contact
	Cc          []supplier.Contact
	Attachments []string
}
