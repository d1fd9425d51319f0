package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/compass/internal/report"
	"github.com/nao1215/compass/internal/workbook"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <answers-file>",
		Short: "Print a summary of an answers file",
		Long: `Summary prints idea totals, the Founder Fit score and label, checklist
progress and the number of answered questions of a YAML or JSON answers file.

Examples:
  # Scores and progress
  compass summary answers.yaml

  # Also list questions that are still unanswered
  compass summary --show-empty answers.yaml

  # Print the answers themselves
  compass summary -v answers.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runSummaryCmd,
	}

	cmd.Flags().BoolP("show-empty", "e", false,
		"List unanswered questions")

	return cmd
}

// runSummaryCmd executes the summary command.
func runSummaryCmd(cmd *cobra.Command, args []string) error {
	showEmpty, err := cmd.Flags().GetBool("show-empty")
	if err != nil {
		return err
	}

	answers, err := workbook.LoadFile(args[0])
	if err != nil {
		return err
	}

	w := report.NewSimpleWriter(cmd.OutOrStdout(),
		report.WithShowEmpty(showEmpty),
		report.WithVerbose(getVerboseFlag(cmd)),
	)
	if _, err := w.Write(answers); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
