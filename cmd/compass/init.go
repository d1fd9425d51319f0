package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/answers.yaml
var answersTemplate embed.FS

// answersFileName is the default answers file name.
const answersFileName = "answers.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty answers file",
		Long: `Init creates an empty answers file in the current directory.

The generated file contains every workbook field with an empty answer,
zero scores and an unchecked checklist, with the questions as comments.
Fill it in and render it with "compass export".

Examples:
  # Create answers.yaml in current directory
  compass init

  # Create the answers file at a specific path
  compass init -o workbook/answers.yaml

  # Force overwrite existing file
  compass init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", answersFileName,
		"Output file path for the answers file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing answers file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("answers file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := answersTemplate.ReadFile("templates/answers.yaml")
	if err != nil {
		return fmt.Errorf("failed to read answers template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Answers are personal, so only the owner may read them.
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write answers file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created answers file: %s\n", outputPath)
	fmt.Fprintln(out, "\nFill in your answers, then run:")
	fmt.Fprintf(out, "  compass summary %s\n", outputPath)
	fmt.Fprintf(out, "  compass export %s\n", outputPath)

	return nil
}
