// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mailer

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/mia-platform/scop/internal/supplier"
)

// Template holds the parsed subject and body templates of the notification.
// Both render against a supplier.Vendor; the body is HTML.
type Template struct {
	subject *texttemplate.Template
	body    *htmltemplate.Template
}

// ParseTemplates parses the subject and body template strings.
func ParseTemplates(subject, body string) (*Template, error) {
	subjectTemplate, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %s", ErrTemplate, err.Error())
	}

	bodyTemplate, err := htmltemplate.New("body").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: body: %s", ErrTemplate, err.Error())
	}

	return &Template{
		subject: subjectTemplate,
		body:    bodyTemplate,
	}, nil
}

// Compose renders the templates for vendor and assembles the message with
// the vendor contacts as recipients and the CS team in carbon copy.
func (t *Template) Compose(vendor supplier.Vendor, attachments ...string) (*Message, error) {
	subject := new(strings.Builder)
	if err := t.subject.Execute(subject, vendor); err != nil {
		return nil, fmt.Errorf("%w: subject: %s", ErrTemplate, err.Error())
	}

	body := new(strings.Builder)
	if err := t.body.Execute(body, vendor); err != nil {
		return nil, fmt.Errorf("%w: body: %s", ErrTemplate, err.Error())
	}

	return &Message{
		Subject:     subject.String(),
		Body:        body.String(),
		To:          vendor.Contacts,
		Cc:          vendor.CSTeam,
		Attachments: attachments,
	}, nil
}
