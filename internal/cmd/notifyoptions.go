// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mia-platform/scop/internal/mailer"
	"github.com/mia-platform/scop/internal/pipeline"
	"github.com/mia-platform/scop/internal/schedule"
	"github.com/mia-platform/scop/internal/warehouse"
)

// notifyOptions configures a run of the compliance notification pipeline.
type notifyOptions struct {
	client     *warehouse.Client
	sender     mailer.Sender
	template   *mailer.Template
	statuses   []string
	attachment string
	cronSpec   string
	out        io.Writer

	lock sync.Mutex
}

// validate checks the configured values and reports invalid setups.
func (o *notifyOptions) validate() error {
	if o.attachment != "" {
		if _, err := os.Stat(o.attachment); err != nil {
			return fmt.Errorf("%w: %s", errMissingAttachment, o.attachment)
		}
	}

	return nil
}

// execute runs the notification pipeline, once or on the configured cron
// schedule.
func (o *notifyOptions) execute(ctx context.Context) error {
	if !o.lock.TryLock() {
		return nil
	}
	defer o.lock.Unlock()
	defer o.client.Close() //nolint:errcheck // nothing to do with a failed close at exit

	notify := &pipeline.Notify{
		Querier:    o.client,
		Sender:     o.sender,
		Template:   o.template,
		Statuses:   o.statuses,
		Attachment: o.attachment,
	}

	job := func(ctx context.Context) error {
		report, err := notify.Run(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(o.out, "notified %d of %d vendors (skipped %d, failed %d) in %s\n",
			report.Sent, report.Vendors, report.Skipped, report.Failed, report.Elapsed.Round(reportElapsedPrecision))
		return nil
	}

	if o.cronSpec == "" {
		return job(ctx)
	}

	if err := job(ctx); err != nil {
		return err
	}

	return schedule.Run(ctx, o.cronSpec, job)
}
