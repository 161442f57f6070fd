// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mia-platform/scop/internal/mailer"
	"github.com/mia-platform/scop/internal/supplier"
)

// fakeQuerier returns canned contact rows for the notify pipeline tests.
type fakeQuerier struct {
	rows []supplier.ContactRow
	err  error

	receivedStatuses []string
}

func (q *fakeQuerier) NonCompliantContacts(_ context.Context, statuses []string) ([]supplier.ContactRow, error) {
	q.receivedStatuses = statuses
	return q.rows, q.err
}

// fakeSender records every sent message and can fail on chosen subjects.
type fakeSender struct {
	failingSubjects map[string]error

	messages []*mailer.Message
}

func (s *fakeSender) Send(_ context.Context, message *mailer.Message) error {
	if err, ok := s.failingSubjects[message.Subject]; ok {
		return err
	}

	s.messages = append(s.messages, message)
	return nil
}

func notifyTemplate(t *testing.T) *mailer.Template {
	t.Helper()

	template, err := mailer.ParseTemplates("notice {{ .Code }}", "<p>{{ .Name }}</p>")
	require.NoError(t, err)
	return template
}

func TestNotifyRun(t *testing.T) {
	t.Parallel()

	rows := []supplier.ContactRow{
		{VendorCode: "10001AA", VendorName: "Acme Parts", Status: "NON-COMPLIANT", ContactKind: supplier.ContactKindVendor, ContactName: "Rossi, Mario", Email: "mario.rossi@acme.example"},
		{VendorCode: "10001AA", VendorName: "Acme Parts", Status: "NON-COMPLIANT", ContactKind: supplier.ContactKindVendor, ContactName: "Verdi, Luca", Email: "luca.verdi@acme.example"},
		{VendorCode: "10001AA", VendorName: "Acme Parts", Status: "NON-COMPLIANT", ContactKind: supplier.ContactKindCS, ContactName: "Hall, Dana", Email: "dana.hall@corp.example"},
	}

	querier := &fakeQuerier{rows: rows}
	sender := &fakeSender{}
	notify := &Notify{
		Querier:    querier,
		Sender:     sender,
		Template:   notifyTemplate(t),
		Statuses:   []string{"NON-COMPLIANT"},
		Attachment: "guidelines.pdf",
	}

	report, err := notify.Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"NON-COMPLIANT"}, querier.receivedStatuses)
	assert.Equal(t, 1, report.Vendors)
	assert.Equal(t, 1, report.Sent)
	assert.Zero(t, report.Skipped)
	assert.Zero(t, report.Failed)
	assert.NotEmpty(t, report.RunID)
	assert.Positive(t, report.Elapsed)

	// one email with two To recipients, one Cc and the standard attachment
	require.Len(t, sender.messages, 1)
	message := sender.messages[0]
	assert.Equal(t, "notice 10001AA", message.Subject)
	assert.Len(t, message.To, 2)
	assert.Len(t, message.Cc, 1)
	assert.Equal(t, []string{"guidelines.pdf"}, message.Attachments)
}

func TestNotifyRunSendFailureDoesNotStopTheRun(t *testing.T) {
	t.Parallel()

	rows := []supplier.ContactRow{
		{VendorCode: "10001AA", VendorName: "Acme Parts", ContactKind: supplier.ContactKindVendor, Email: "one@acme.example"},
		{VendorCode: "20002BB", VendorName: "Blue Forge", ContactKind: supplier.ContactKindVendor, Email: "two@blueforge.example"},
	}

	sender := &fakeSender{
		failingSubjects: map[string]error{
			"notice 10001AA": mailer.ErrSend,
		},
	}
	notify := &Notify{
		Querier:  &fakeQuerier{rows: rows},
		Sender:   sender,
		Template: notifyTemplate(t),
		Statuses: []string{"NON-COMPLIANT"},
	}

	report, err := notify.Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Vendors)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, "notice 20002BB", sender.messages[0].Subject)
}

func TestNotifyRunSkipsAlreadyContactedVendors(t *testing.T) {
	t.Parallel()

	rows := []supplier.ContactRow{
		{VendorCode: "10001AA", VendorName: "Acme Parts", ContactKind: supplier.ContactKindVendor, Email: "shared@acme.example"},
		{VendorCode: "10001AA02", VendorName: "Acme Parts West", ContactKind: supplier.ContactKindVendor, Email: "shared@acme.example"},
	}

	sender := &fakeSender{}
	notify := &Notify{
		Querier:  &fakeQuerier{rows: rows},
		Sender:   sender,
		Template: notifyTemplate(t),
		Statuses: []string{"NON-COMPLIANT"},
	}

	report, err := notify.Run(t.Context())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, "notice 10001AA", sender.messages[0].Subject)
}

func TestNotifyRunSkipsVendorsWithoutContacts(t *testing.T) {
	t.Parallel()

	rows := []supplier.ContactRow{
		{VendorCode: "10001AA", VendorName: "Acme Parts", ContactKind: supplier.ContactKindCS, Email: "dana.hall@corp.example"},
	}

	sender := &fakeSender{}
	notify := &Notify{
		Querier:  &fakeQuerier{rows: rows},
		Sender:   sender,
		Template: notifyTemplate(t),
		Statuses: []string{"NON-COMPLIANT"},
	}

	report, err := notify.Run(t.Context())
	require.NoError(t, err)

	assert.Zero(t, report.Sent)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, sender.messages)
}

func TestNotifyRunQueryErrorAbortsTheRun(t *testing.T) {
	t.Parallel()

	queryErr := errors.New("boom")
	notify := &Notify{
		Querier:  &fakeQuerier{err: queryErr},
		Sender:   &fakeSender{},
		Template: notifyTemplate(t),
		Statuses: []string{"NON-COMPLIANT"},
	}

	_, err := notify.Run(t.Context())
	assert.ErrorIs(t, err, queryErr)
}
