// SPDX-License-Identifier: MPL-2.0

package graph

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

const (
	colorMissingRequired = "red"
	colorMissingOptional = "yellow"
)

// WriteDOT renders the graph as a Graphviz DOT document: one boxed node
// per installed mod, one placeholder node per distinct missing
// dependency, and one edge per dependency relation colored by status.
func WriteDOT(w io.Writer, g *Graph) error {
	var b strings.Builder
	b.WriteString("digraph mods {\n")
	b.WriteString("    rankdir=\"LR\";\n")
	b.WriteString("    node [shape=box, style=filled, fillcolor=\"white\"];\n")

	for _, mod := range g.Mods {
		fmt.Fprintf(&b, "    %s [label=%s, fillcolor=\"white\"];\n",
			dotQuote(mod.ID), dotQuote(mod.Name+`\n(`+mod.ID+`)`))
	}

	for _, e := range g.Edges {
		switch e.Status {
		case StatusMissingRequired:
			fmt.Fprintf(&b, "    %s -> %s [color=%q];\n",
				dotQuote(e.From), dotQuote(e.To), colorMissingRequired)
		case StatusMissingOptional:
			fmt.Fprintf(&b, "    %s -> %s [color=%q];\n",
				dotQuote(e.From), dotQuote(e.To), colorMissingOptional)
		default:
			fmt.Fprintf(&b, "    %s -> %s;\n", dotQuote(e.From), dotQuote(e.To))
		}
	}

	for _, dep := range g.MissingRequired {
		fmt.Fprintf(&b, "    %s [label=%s, fillcolor=%q, fontcolor=\"white\"];\n",
			dotQuote(dep), dotQuote(dep+`\n(MISSING REQUIRED)`), colorMissingRequired)
	}
	for _, dep := range g.MissingOptional {
		// Required classification takes visual precedence when the same
		// identifier was classified both ways.
		if slices.Contains(g.MissingRequired, dep) {
			continue
		}
		fmt.Fprintf(&b, "    %s [label=%s, fillcolor=%q, fontcolor=\"black\"];\n",
			dotQuote(dep), dotQuote(dep+`\n(optional missing)`), colorMissingOptional)
	}

	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// ExportDOT writes the DOT document to path, creating or truncating it.
func ExportDOT(path string, g *Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return WriteDOT(f, g)
}

// dotQuote wraps s in double quotes, escaping embedded quotes. Label
// strings already contain DOT escape sequences like \n, so backslashes
// pass through untouched.
func dotQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
