package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/nao1215/compass/internal/model"
)

// Version information set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

const unknown = "unknown"

// versionInfo describes the running binary.
type versionInfo struct {
	Version   string
	Commit    string
	Date      string
	Dirty     bool
	GoVersion string
	Module    string
}

// readVersionInfo combines ldflags with the build info embedded by the
// Go toolchain. ldflags win when set.
func readVersionInfo() versionInfo {
	bi, _ := debug.ReadBuildInfo()
	return versionInfoFrom(bi)
}

// versionInfoFrom builds a versionInfo from bi, which may be nil.
func versionInfoFrom(bi *debug.BuildInfo) versionInfo {
	v := versionInfo{
		Version:   "(devel)",
		Commit:    unknown,
		Date:      unknown,
		GoVersion: runtime.Version(),
		Module:    "github.com/nao1215/compass",
	}
	if bi != nil {
		if bi.Main.Path != "" {
			v.Module = bi.Main.Path
		}
		if bi.Main.Version != "" {
			v.Version = bi.Main.Version
		}
		if bi.GoVersion != "" {
			v.GoVersion = bi.GoVersion
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				v.Commit = s.Value[:min(len(s.Value), 7)]
			case "vcs.time":
				v.Date = s.Value
			case "vcs.modified":
				v.Dirty = s.Value == "true"
			}
		}
	}

	if version != "" {
		v.Version = version
	}
	if commit != "" {
		v.Commit, v.Dirty = commit, false
	}
	if date != "" {
		v.Date = date
	}
	return v
}

// getVersion returns the version reported by --version.
func getVersion() string {
	return readVersionInfo().Version
}

func (v versionInfo) write(w io.Writer) {
	rev := v.Commit
	if v.Dirty {
		rev += " (modified)"
	}
	fmt.Fprintf(w, "compass version %s\n", v.Version)
	fmt.Fprintf(w, "  commit:   %s\n", rev)
	fmt.Fprintf(w, "  built:    %s\n", v.Date)
	fmt.Fprintf(w, "  go:       %s %s/%s\n", v.GoVersion, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "  module:   %s\n", v.Module)
	fmt.Fprintf(w, "  workbook: Part 2, %d sections\n", len(model.Sections))
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the version, commit, build date and Go toolchain of compass,
and the edition of the workbook it serves.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return err
			}
			info := readVersionInfo()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), info.Version)
				return nil
			}
			info.write(cmd.OutOrStdout())
			return nil
		},
	}
	cmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return cmd
}
