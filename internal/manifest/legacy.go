// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"

	"modgraph-cli/internal/jar"
)

// LegacyManifestPath is the fixed location of a legacy Forge mod manifest.
const LegacyManifestPath = "mcmod.info"

// legacyModEntry is one element of the mcmod.info JSON list. Both
// dependency lists declare hard dependencies.
type legacyModEntry struct {
	ModID        string   `json:"modid"`
	Name         string   `json:"name"`
	Dependencies []string `json:"dependencies"`
	RequiredMods []string `json:"requiredMods"`
}

func parseLegacy(a *jar.Archive) *Descriptor {
	raw, err := a.ReadEntry(LegacyManifestPath)
	if err != nil {
		return nil
	}
	var entries []legacyModEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	if len(entries) == 0 {
		return nil
	}

	// Only the first list element counts.
	entry := entries[0]
	name := entry.Name
	if name == "" {
		name = entry.ModID
	}
	d := &Descriptor{
		ID:      entry.ModID,
		Name:    name,
		Depends: make(map[string]Dependency),
		Path:    a.Path(),
	}
	for _, dep := range entry.Dependencies {
		d.Depends[dep] = Dependency{Required: true}
	}
	for _, dep := range entry.RequiredMods {
		d.Depends[dep] = Dependency{Required: true}
	}

	return d
}
