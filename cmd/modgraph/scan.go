// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"modgraph-cli/internal/config"
	"modgraph-cli/internal/graph"
	"modgraph-cli/internal/registry"
	"modgraph-cli/internal/shading"

	"github.com/charmbracelet/log"
)

// runScan is the body of the root command: scan the folder, classify
// every dependency edge, write the DOT file, and print a summary. Missing
// dependencies are reported, not errors; the run only fails when the
// folder cannot be listed or the output cannot be written.
func runScan(folder, output string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if output == "" {
		output = cfg.Output
	}

	excl := registry.DefaultExclusions().With(cfg.Ignore...)

	log.Info("scanning mod folder", "folder", folder)
	mods, err := registry.Scan(folder, excl)
	if err != nil {
		return err
	}

	g := graph.Build(mods, shading.Embedded)
	printSummary(g)

	if err := graph.ExportDOT(output, g); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(SuccessStyle.Render("DOT file written to: ") + output)
	return nil
}

// printSummary lists every included mod with its classified dependency
// edges, then the distinct missing identifiers.
func printSummary(g *graph.Graph) {
	edgesByMod := make(map[string][]graph.Edge, len(g.Mods))
	for _, e := range g.Edges {
		edgesByMod[e.From] = append(edgesByMod[e.From], e)
	}

	fmt.Println()
	fmt.Println(TitleStyle.Render("Included mods:"))
	for _, mod := range g.Mods {
		fmt.Printf("  %s %s\n", mod.Name, SubtitleStyle.Render("("+mod.ID+")"))
		for _, e := range edgesByMod[mod.ID] {
			line := fmt.Sprintf("      -> %s (required=%t)", e.To, e.Required)
			switch e.Status {
			case graph.StatusMissingRequired:
				line = ErrorStyle.Render(line + "  [missing]")
			case graph.StatusMissingOptional:
				line = WarningStyle.Render(line + "  [missing]")
			}
			fmt.Println(line)
		}
	}

	if len(g.MissingRequired) > 0 {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render(
			"Missing required: "+strings.Join(g.MissingRequired, ", ")))
	}
	if len(g.MissingOptional) > 0 {
		fmt.Fprintln(os.Stderr, WarningStyle.Render(
			"Missing optional: "+strings.Join(g.MissingOptional, ", ")))
	}
}
