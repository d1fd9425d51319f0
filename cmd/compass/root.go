package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/compass/internal/config"
	compasslog "github.com/nao1215/compass/internal/log"
)

// NewRootCmd creates the root command for compass.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compass",
		Short: "Founder's Compass workbook and report generator",
		Long: `compass is the Founder's Compass Part 2 workbook: ten guided sections that take
a founder from idea to validation.

Run "compass serve" to fill in the workbook in your browser and download your
responses as a printable HTML report. Answers are kept in memory only.

Answers can also be kept in a YAML or JSON file and rendered with
"compass export" or summarised with "compass summary".`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .compass in current directory, XDG config dir or home)")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewSummaryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// loadConfig builds a Config from defaults and the configuration file.
// If the user named a config file that does not exist, it is an error;
// otherwise a missing file leaves the defaults in place.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var path string
	if f := cmd.Flags().Lookup("config"); f != nil {
		path = f.Value.String()
	}
	cfg.ConfigFilePath = path

	found := config.FindConfigFile(path)
	if found == "" {
		if path != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, path)
		}
		return cfg, nil
	}

	cf, err := config.LoadConfigFile(found)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s", err, found)
		}
		return nil, fmt.Errorf("failed to load config file %s: %w", found, err)
	}
	cf.Apply(cfg)
	return cfg, nil
}

// setupLogger creates the CLI logger: Debug when verbose, otherwise Warn.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	return compasslog.NewLogger(w, verbose)
}
