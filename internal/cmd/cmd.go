// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package cmd

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

const (
	notifyCmdUsage = "notify"
	notifyCmdShort = "send compliance notifications to the non compliant vendors"
	notifyCmdLong  = `Send compliance notifications to the non compliant vendors.
	The command queries the warehouse for the contacts of every vendor whose
	compliance status falls in the configured set, builds one vendor record per
	vendor code and sends a templated email to its contacts, with the customer
	service team in carbon copy.

	The warehouse and SMTP connections are configured through environment
	variables, the statuses and the email templates through the configuration
	file.`

	notifyCmdExample = `# Send the notifications described by notify.yaml
	scop notify --config notify.yaml

	# Render the emails to stdout instead of sending them
	scop notify --config notify.yaml --dry-run

	# Re-run the notifications every weekday at 8 AM
	scop notify --config notify.yaml --cron "0 8 * * 1-5"`

	consolidateCmdUsage = "consolidate"
	consolidateCmdShort = "merge a directory of spreadsheets into a single dataset"
	consolidateCmdLong  = `Merge a directory of spreadsheets into a single dataset.
	Every xlsx file of the input directory is read in name order and
	concatenated under the column schema of the first file; a file with a
	different schema aborts the run.

	The merged dataset is written to exactly one sink: a warehouse table loaded
	in a single transaction, or a directory of fixed size CSV chunk files.`

	consolidateCmdExample = `# Load the merged spreadsheets into a warehouse table
	scop consolidate --input ./reports --table db.schema.part_consolidation

	# Export the merged spreadsheets as compressed CSV files of 100 rows
	scop consolidate --input ./reports --export-dir ./out --compress`
)

// NotifyCmd returns the Cobra command that runs the compliance notification
// pipeline.
func NotifyCmd() *cobra.Command {
	flags := &notifyFlags{}
	cmd := &cobra.Command{
		Use:     notifyCmdUsage,
		Short:   heredoc.Doc(notifyCmdShort),
		Long:    heredoc.Doc(notifyCmdLong),
		Example: heredoc.Doc(notifyCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}

// ConsolidateCmd returns the Cobra command that runs the spreadsheet
// consolidation pipeline.
func ConsolidateCmd() *cobra.Command {
	flags := &consolidateFlags{}
	cmd := &cobra.Command{
		Use:     consolidateCmdUsage,
		Short:   heredoc.Doc(consolidateCmdShort),
		Long:    heredoc.Doc(consolidateCmdLong),
		Example: heredoc.Doc(consolidateCmdExample),

		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := flags.toOptions(cmd)
			if err != nil {
				return handleError(cmd, err)
			}

			if err := opts.validate(); err != nil {
				return handleError(cmd, err)
			}

			if err := opts.execute(cmd.Context()); err != nil {
				return handleError(cmd, err)
			}

			return nil
		},
	}

	flags.addFlags(cmd)
	return cmd
}
