package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/compass/internal/config"
	"github.com/nao1215/compass/internal/export"
	"github.com/nao1215/compass/internal/model"
	"github.com/nao1215/compass/internal/report"
	"github.com/nao1215/compass/internal/workbook"
)

// stdoutPath selects standard output for --output.
const stdoutPath = "-"

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <answers-file>",
		Short: "Render an answers file as a report",
		Long: `Export renders a YAML or JSON answers file as a report.

The default report is the printable HTML document also offered by the web
workbook: open it in a browser and use Print → Save as PDF. It is saved as
Founders_Compass_Part2_Responses.html in your download directory unless
--output is given.

Examples:
  # Printable HTML in the download directory
  compass export answers.yaml

  # Markdown to a specific file
  compass export --markdown -o notes/compass.md answers.yaml

  # JSON with derived totals to standard output
  compass export --json -o - answers.json

  # HTML, Markdown and JSON side by side in the download directory
  compass export --html --markdown --json answers.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runExportCmd,
	}

	cmd.Flags().Bool("html", false,
		"Output the printable HTML report (default when no format is given)")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report")
	cmd.Flags().StringP("output", "o", "",
		`Write report to specified file path, or "-" for standard output`)

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildExportConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)

	answers, err := workbook.LoadFile(args[0])
	if err != nil {
		return err
	}

	reports, err := renderReports(cfg, answers)
	if err != nil {
		return err
	}

	if cfg.ReportFile == stdoutPath {
		_, err := io.Copy(cmd.OutOrStdout(), &reports[0].doc)
		return err
	}

	for _, r := range reports {
		dir, name := cfg.OutputDir, r.name
		if cfg.ReportFile != "" {
			dir, name = filepath.Split(cfg.ReportFile)
			if dir == "" {
				dir = "."
			}
		}
		path, err := export.SaveFile(dir, name, r.doc.String())
		if err != nil {
			return err
		}
		logger.Debug("report exported", slog.String("file", path), slog.Int("bytes", r.doc.Len()))
		fmt.Fprintf(cmd.OutOrStdout(), "Saved report: %s\n", path)
	}
	return nil
}

// buildExportConfig applies export flags on top of the loaded configuration.
func buildExportConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	if cfg.HTMLReport, err = cmd.Flags().GetBool("html"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}

	// HTML is the report of record; it is written when nothing else is asked for.
	if !cfg.JSONReport && !cfg.MarkdownReport {
		cfg.HTMLReport = true
	}
	return cfg, nil
}

// renderedReport is one rendered document and its default file name.
type renderedReport struct {
	name string
	doc  bytes.Buffer
}

// renderReports renders answers once per selected format, HTML first.
// All formats are rendered before anything is saved, so an answers file
// that fails to render leaves no partial set of reports behind.
func renderReports(cfg *config.Config, answers *model.WorkbookAnswers) ([]*renderedReport, error) {
	var (
		reports []*renderedReport
		writers []report.Writer
	)
	add := func(name string, newWriter func(w io.Writer) report.Writer) {
		r := &renderedReport{name: name}
		reports = append(reports, r)
		writers = append(writers, newWriter(&r.doc))
	}

	if cfg.HTMLReport {
		add(export.FileName, func(w io.Writer) report.Writer { return report.NewHTMLWriter(w) })
	}
	if cfg.MarkdownReport {
		add(export.MarkdownFileName, func(w io.Writer) report.Writer { return report.NewMarkdownWriter(w) })
	}
	if cfg.JSONReport {
		add(export.JSONFileName, func(w io.Writer) report.Writer {
			return report.NewJSONWriter(w, report.WithPrettyPrint())
		})
	}

	if _, err := report.NewMultiWriter(writers...).Write(answers); err != nil {
		return nil, err
	}
	return reports, nil
}
