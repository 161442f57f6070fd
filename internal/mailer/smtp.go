// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package mailer

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/wneessen/go-mail"
)

var _ Sender = &smtpSender{}

// smtpConfig holds all the configuration needed to reach the SMTP transport.
type smtpConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
}

// validate checks that the mandatory transport settings are present.
func (c smtpConfig) validate() error {
	switch {
	case len(c.Host) == 0:
		return fmt.Errorf("%w: SMTP_HOST", ErrMissingEnvVariable)
	case len(c.From) == 0:
		return fmt.Errorf("%w: SMTP_FROM", ErrMissingEnvVariable)
	}

	return nil
}

// smtpSender implements Sender over an SMTP connection.
type smtpSender struct {
	smtpConfig
}

// NewSMTPSender creates a new SMTP backed Sender reading the needed
// configuration from the env variables.
func NewSMTPSender() (Sender, error) {
	config, err := env.ParseAs[smtpConfig]()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSend, err.Error())
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &smtpSender{smtpConfig: config}, nil
}

// Send implements Sender. A new connection is dialed per message; the
// pipelines send few messages per run and a failed send must not affect the
// messages already delivered.
func (s *smtpSender) Send(ctx context.Context, message *Message) error {
	if len(message.To) == 0 {
		return fmt.Errorf("%w: message without recipients", ErrSend)
	}

	msg := mail.NewMsg()
	if err := msg.From(s.From); err != nil {
		return fmt.Errorf("%w: %s", ErrSend, err.Error())
	}

	for _, contact := range message.To {
		if err := msg.AddToFormat(contact.Name, contact.Email); err != nil {
			return fmt.Errorf("%w: recipient %q: %s", ErrSend, contact.Email, err.Error())
		}
	}

	for _, contact := range message.Cc {
		if err := msg.AddCcFormat(contact.Name, contact.Email); err != nil {
			return fmt.Errorf("%w: carbon copy %q: %s", ErrSend, contact.Email, err.Error())
		}
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.Body)
	for _, attachment := range message.Attachments {
		msg.AttachFile(attachment)
	}

	client, err := s.client()
	if err != nil {
		return fmt.Errorf("%w: %s", ErrSend, err.Error())
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s", ErrSend, err.Error())
	}

	return nil
}

// client builds the SMTP client from the parsed configuration.
func (s *smtpSender) client() (*mail.Client, error) {
	options := []mail.Option{
		mail.WithPort(s.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}

	if s.Username != "" {
		options = append(options,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Username),
			mail.WithPassword(s.Password),
		)
	}

	return mail.NewClient(s.Host, options...)
}
