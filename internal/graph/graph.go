// SPDX-License-Identifier: MPL-2.0

// Package graph classifies every declared dependency of the installed mod
// set and renders the result as a Graphviz DOT document. Nodes are the
// installed mods plus one placeholder per distinct unresolved dependency;
// edges are colored by resolution status.
package graph

import (
	"maps"
	"slices"

	"github.com/charmbracelet/log"

	"modgraph-cli/internal/manifest"
	"modgraph-cli/internal/registry"
)

// EdgeStatus classifies a dependency edge.
type EdgeStatus int

const (
	// StatusSatisfied means the dependency is installed or bundled
	// inside an installed archive.
	StatusSatisfied EdgeStatus = iota
	// StatusMissingRequired means a hard dependency could not be
	// resolved.
	StatusMissingRequired
	// StatusMissingOptional means a soft dependency could not be
	// resolved.
	StatusMissingOptional
)

// String returns a human-readable status name.
func (s EdgeStatus) String() string {
	switch s {
	case StatusSatisfied:
		return "satisfied"
	case StatusMissingRequired:
		return "missing required"
	case StatusMissingOptional:
		return "missing optional"
	default:
		return "unknown"
	}
}

type (
	// Edge is one classified dependency relation.
	Edge struct {
		From     string
		To       string
		Required bool
		Status   EdgeStatus
	}

	// Graph is the derived dependency graph, constructed fresh each run
	// and never mutated afterwards.
	Graph struct {
		// Mods holds the installed descriptors sorted by identifier.
		Mods []*manifest.Descriptor
		// Edges holds every dependency relation, grouped by declaring
		// mod in sorted order.
		Edges []Edge
		// MissingRequired and MissingOptional are the distinct
		// unresolved identifiers, sorted. One placeholder node is
		// emitted per identifier; an identifier present in both sets
		// renders with missing-required precedence.
		MissingRequired []string
		MissingOptional []string
	}
)

// EmbedProbe reports whether depID is bundled inside the archive at
// archivePath. The production probe is shading.Embedded; tests inject
// fakes so the builder needs no archive fixtures.
type EmbedProbe func(archivePath, depID string) bool

// Build classifies every dependency edge of the registry. A dependency is
// satisfied when it is itself registered, or when the probe finds it
// bundled inside any registered mod's archive (checked in sorted-ID order,
// first success wins). Everything else is missing, split by the declared
// required flag.
func Build(reg registry.Registry, probe EmbedProbe) *Graph {
	g := &Graph{}
	ids := reg.SortedIDs()
	for _, id := range ids {
		g.Mods = append(g.Mods, reg[id])
	}

	missingRequired := make(map[string]struct{})
	missingOptional := make(map[string]struct{})

	for _, id := range ids {
		mod := reg[id]
		for _, dep := range slices.Sorted(maps.Keys(mod.Depends)) {
			edge := Edge{
				From:     id,
				To:       dep,
				Required: mod.Depends[dep].Required,
				Status:   StatusSatisfied,
			}

			_, installed := reg[dep]
			if !installed && !embeddedAnywhere(reg, ids, id, dep, probe) {
				if edge.Required {
					edge.Status = StatusMissingRequired
					missingRequired[dep] = struct{}{}
				} else {
					edge.Status = StatusMissingOptional
					missingOptional[dep] = struct{}{}
				}
			}

			g.Edges = append(g.Edges, edge)
		}
	}

	g.MissingRequired = slices.Sorted(maps.Keys(missingRequired))
	g.MissingOptional = slices.Sorted(maps.Keys(missingOptional))
	return g
}

// embeddedAnywhere probes every registered archive for a bundled copy of
// dep, short-circuiting on the first hit.
func embeddedAnywhere(reg registry.Registry, ids []string, from, dep string, probe EmbedProbe) bool {
	if probe == nil {
		return false
	}
	log.Debug("probing for shaded dependency", "dep", dep, "declared_by", from)
	for _, id := range ids {
		if probe(reg[id].Path, dep) {
			log.Debug("dependency is shaded", "dep", dep, "inside", id)
			return true
		}
	}
	return false
}
