// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mia-platform/scop/internal/logger"
	"github.com/mia-platform/scop/internal/mailer"
	"github.com/mia-platform/scop/internal/supplier"
	"github.com/mia-platform/scop/internal/warehouse"
)

const (
	notifyLoggerName = "scop:pipeline:notify"
)

// Notify is the vendor compliance notification pipeline.
type Notify struct {
	Querier    warehouse.Querier
	Sender     mailer.Sender
	Template   *mailer.Template
	Statuses   []string
	Attachment string
}

// NotifyReport summarizes a notify run.
type NotifyReport struct {
	RunID   string
	Vendors int
	Sent    int
	Skipped int
	Failed  int
	Elapsed time.Duration
}

// Run queries the non-compliant vendors, builds their records and sends one
// notification per vendor. A failed send is reported and skipped; the
// messages already delivered stand. The returned report carries the total
// elapsed wall-clock time of the run.
func (n *Notify) Run(ctx context.Context) (*NotifyReport, error) {
	start := time.Now()
	report := &NotifyReport{
		RunID: uuid.NewString(),
	}

	log := logger.FromContext(ctx).WithName(notifyLoggerName)
	log.Debug("starting notification run", "runId", report.RunID, "statuses", n.Statuses)

	rows, err := n.Querier.NonCompliantContacts(ctx, n.Statuses)
	if err != nil {
		return nil, err
	}

	vendors := supplier.Build(rows)
	report.Vendors = len(vendors)
	log.Debug("vendor records built", "runId", report.RunID, "vendors", len(vendors), "rows", len(rows))

	contacted := make(map[string]struct{})
	for _, vendor := range vendors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if len(vendor.Contacts) == 0 {
			log.Warn("vendor without contacts, skipping", "runId", report.RunID, "vendor", vendor.Code)
			report.Skipped++
			continue
		}

		if alreadyContacted(contacted, vendor.Contacts) {
			log.Info("vendor contacts already notified in this run, skipping", "runId", report.RunID, "vendor", vendor.Code)
			report.Skipped++
			continue
		}

		message, err := n.Template.Compose(vendor, n.attachments()...)
		if err != nil {
			log.Error("error composing notification", "runId", report.RunID, "vendor", vendor.Code, "error", err)
			report.Failed++
			continue
		}

		if err := n.Sender.Send(ctx, message); err != nil {
			log.Error("error sending notification", "runId", report.RunID, "vendor", vendor.Code, "error", err)
			report.Failed++
			continue
		}

		for _, contact := range vendor.Contacts {
			contacted[contact.Email] = struct{}{}
		}

		report.Sent++
		log.Debug("notification sent", "runId", report.RunID, "vendor", vendor.Code,
			"recipients", len(vendor.Contacts), "carbonCopies", len(vendor.CSTeam))
	}

	report.Elapsed = time.Since(start)
	log.Info("notification run completed", "runId", report.RunID, "vendors", report.Vendors,
		"sent", report.Sent, "skipped", report.Skipped, "failed", report.Failed, "elapsed", report.Elapsed.String())

	return report, nil
}

// attachments returns the configured attachment as a slice, empty when unset.
func (n *Notify) attachments() []string {
	if n.Attachment == "" {
		return nil
	}

	return []string{n.Attachment}
}

// alreadyContacted reports whether every contact was already a recipient of
// a message sent during this run.
func alreadyContacted(contacted map[string]struct{}, contacts []supplier.Contact) bool {
	for _, contact := range contacts {
		if _, ok := contacted[contact.Email]; !ok {
			return false
		}
	}

	return true
}
