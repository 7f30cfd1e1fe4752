// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"modgraph-cli/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug output (embedding probes, skipped archives)
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// outputPath is the DOT output file; empty falls back to the config default
	outputPath string

	// rootCmd is the base command; modgraph has a single operation, so
	// the scan lives directly on the root.
	rootCmd = &cobra.Command{
		Use:   "modgraph <folder>",
		Short: "Generate a dependency graph for a folder of mods",
		Long: TitleStyle.Render("modgraph") + SubtitleStyle.Render(" - mod dependency graph generator") + `

modgraph scans a folder of packaged mod archives, reads each mod's
manifest (Fabric fabric.mod.json, modern Forge META-INF/mods.toml, or
legacy Forge mcmod.info), resolves declared dependencies against the
installed set - including dependencies shaded inside another archive -
and writes a Graphviz DOT graph with missing dependencies highlighted.

` + SubtitleStyle.Render("Examples:") + `
  modgraph ./mods                 Write the graph to mods.dot
  modgraph ./mods -o graph.dot    Choose the output file
  modgraph ./mods -v              Show embedding probes and skipped jars`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], outputPath)
		},
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <platform config dir>/modgraph/config.toml)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output DOT file (default from config, mods.dot)")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig applies the global flags before any command runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
