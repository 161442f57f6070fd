// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mia-platform/scop/internal/supplier"
)

var _ Sender = &writerSender{}

// writerSender prints the rendered messages to the given io.Writer instead
// of delivering them. It is primarily useful for dry runs, or for tweaking
// and adjusting the notification templates before sending real emails.
type writerSender struct {
	writer io.Writer

	lock sync.Mutex
}

// NewWriterSender returns a Sender that writes every message to w.
func NewWriterSender(w io.Writer) Sender {
	return &writerSender{
		writer: w,
	}
}

func (s *writerSender) Send(_ context.Context, message *Message) error {
	builder := new(strings.Builder)

	builder.WriteString("Send message:\n")
	builder.WriteString("\tTo: " + formatContacts(message.To) + "\n")
	builder.WriteString("\tCc: " + formatContacts(message.Cc) + "\n")
	builder.WriteString("\tSubject: " + message.Subject + "\n")
	builder.WriteString("\tAttachments: " + strings.Join(message.Attachments, "; ") + "\n")
	builder.WriteString("\tBody:\n" + message.Body + "\n")
	builder.WriteString("\n")

	s.lock.Lock()
	defer s.lock.Unlock()
	fmt.Fprint(s.writer, builder.String())
	return nil
}

// formatContacts renders the contacts as a semicolon separated address list.
func formatContacts(contacts []supplier.Contact) string {
	formatted := make([]string, len(contacts))
	for i, contact := range contacts {
		if contact.Name == "" {
			formatted[i] = contact.Email
			continue
		}
		formatted[i] = fmt.Sprintf("%q <%s>", contact.Name, contact.Email)
	}

	return strings.Join(formatted, "; ")
}
