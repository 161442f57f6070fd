// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mia-platform/scop/internal/config"
	"github.com/mia-platform/scop/internal/mailer"
	"github.com/mia-platform/scop/internal/warehouse"
)

const (
	configFlagName  = "config"
	configFlagShort = "c"
	configFlagUsage = "Path to the notification configuration file"

	dryRunFlagName  = "dry-run"
	dryRunFlagUsage = "If set, writes the rendered emails to stdout instead of sending them"
	defaultDryRun   = false

	cronFlagName  = "cron"
	cronFlagUsage = "If set, re-runs the notifications on the given cron schedule until interrupted"
)

// notifyFlags collects the CLI options of the notify command.
type notifyFlags struct {
	configPath string
	dryRun     bool
	cronSpec   string
}

// addFlags registers the CLI flags on cmd.
func (f *notifyFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, configFlagName, configFlagShort, "", configFlagUsage)
	cmd.Flags().BoolVar(&f.dryRun, dryRunFlagName, defaultDryRun, dryRunFlagUsage)
	cmd.Flags().StringVar(&f.cronSpec, cronFlagName, "", cronFlagUsage)

	_ = cmd.MarkFlagRequired(configFlagName) // do not check error, the flag is registered above
}

// toOptions builds a notifyOptions instance from the parsed flags.
func (f *notifyFlags) toOptions(cmd *cobra.Command) (*notifyOptions, error) {
	notifyConfig, err := config.NewNotifyConfigFromPath(f.configPath)
	if err != nil {
		return nil, err
	}

	template, err := mailer.ParseTemplates(notifyConfig.Subject, notifyConfig.Body)
	if err != nil {
		return nil, err
	}

	var sender mailer.Sender
	if f.dryRun {
		sender = mailer.NewWriterSender(cmd.OutOrStdout())
	} else {
		var err error
		sender, err = mailer.NewSMTPSender()
		if err != nil {
			return nil, err
		}
	}

	client, err := warehouse.NewClient()
	if err != nil {
		return nil, err
	}

	return &notifyOptions{
		client:     client,
		sender:     sender,
		template:   template,
		statuses:   notifyConfig.Statuses,
		attachment: notifyConfig.Attachment,
		cronSpec:   f.cronSpec,
		out:        cmd.OutOrStdout(),
	}, nil
}
