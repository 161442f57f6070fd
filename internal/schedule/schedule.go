// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

// Package schedule re-runs a pipeline on a cron schedule until the context
// is cancelled. Firings are strictly sequential: a job never overlaps the
// previous one.
package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/mia-platform/scop/internal/logger"
)

const (
	loggerName = "scop:schedule"
)

var (
	// ErrInvalidSpec reports a cron expression that cannot be parsed.
	ErrInvalidSpec = errors.New("invalid cron expression")
)

// Run executes job on the schedule described by spec (standard five-field
// cron format, or descriptors like @daily) until ctx is cancelled. Job
// errors are logged and do not stop subsequent firings.
func Run(ctx context.Context, spec string, job func(context.Context) error) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidSpec, spec, err.Error())
	}

	log := logger.FromContext(ctx).WithName(loggerName)

	runner := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := runner.AddFunc(spec, func() {
		if err := job(ctx); err != nil {
			log.Error("scheduled run failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidSpec, spec, err.Error())
	}

	log.Info("scheduler started", "spec", spec)
	runner.Start()

	<-ctx.Done()
	log.Debug("scheduler stopping", "error", ctx.Err())

	// wait for an in-flight job before returning
	<-runner.Stop().Done()
	return nil
}
