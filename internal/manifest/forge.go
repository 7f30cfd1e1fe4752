// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	toml "github.com/pelletier/go-toml/v2"

	"modgraph-cli/internal/jar"
)

// ForgeManifestPath is the fixed location of a modern Forge mod manifest.
const ForgeManifestPath = "META-INF/mods.toml"

type (
	forgeManifest struct {
		Mods []forgeModEntry `toml:"mods"`
		// Dependencies is keyed by the declaring mod's own identifier.
		Dependencies map[string][]forgeDependency `toml:"dependencies"`
	}

	forgeModEntry struct {
		ModID       string `toml:"modId"`
		DisplayName string `toml:"displayName"`
	}

	forgeDependency struct {
		ModID     string `toml:"modId"`
		Mandatory bool   `toml:"mandatory"`
	}
)

func parseForge(a *jar.Archive) *Descriptor {
	raw, err := a.ReadEntry(ForgeManifestPath)
	if err != nil {
		return nil
	}
	var fm forgeManifest
	if err := toml.Unmarshal(raw, &fm); err != nil {
		return nil
	}
	if len(fm.Mods) == 0 {
		return nil
	}

	// Only the first [[mods]] entry counts; additional entries in the
	// same archive are ignored.
	entry := fm.Mods[0]
	name := entry.DisplayName
	if name == "" {
		name = entry.ModID
	}
	d := &Descriptor{
		ID:      entry.ModID,
		Name:    name,
		Depends: make(map[string]Dependency),
		Path:    a.Path(),
	}
	for _, dep := range fm.Dependencies[entry.ModID] {
		if dep.ModID == "" {
			continue
		}
		d.Depends[dep.ModID] = Dependency{Required: dep.Mandatory}
	}

	return d
}
