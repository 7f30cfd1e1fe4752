// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"encoding/json"

	"modgraph-cli/internal/jar"
)

// FabricManifestPath is the fixed location of a Fabric mod manifest.
const FabricManifestPath = "fabric.mod.json"

type (
	// fabricManifest mirrors the fields of fabric.mod.json this tool
	// reads. Dependency map values are version ranges (string or list);
	// only the keys matter here, so they stay raw.
	fabricManifest struct {
		ID         string                     `json:"id"`
		Name       string                     `json:"name"`
		Depends    map[string]json.RawMessage `json:"depends"`
		Recommends map[string]json.RawMessage `json:"recommends"`
		Suggests   map[string]json.RawMessage `json:"suggests"`
		Jars       []fabricNestedJar          `json:"jars"`
	}

	// fabricNestedJar is one entry of the manifest's "jars" list, which
	// declares sub-archives bundled inside the mod.
	fabricNestedJar struct {
		ID string `json:"id"`
	}
)

func parseFabric(a *jar.Archive) *Descriptor {
	fm, err := readFabric(a)
	if err != nil {
		return nil
	}

	name := fm.Name
	if name == "" {
		name = fm.ID
	}
	d := &Descriptor{
		ID:      fm.ID,
		Name:    name,
		Depends: make(map[string]Dependency),
		Path:    a.Path(),
	}

	// Hard dependencies first, then the soft categories; a later
	// category overwrites an earlier declaration of the same identifier.
	for dep := range fm.Depends {
		d.Depends[dep] = Dependency{Required: true}
	}
	for dep := range fm.Recommends {
		d.Depends[dep] = Dependency{Required: false}
	}
	for dep := range fm.Suggests {
		d.Depends[dep] = Dependency{Required: false}
	}

	return d
}

// FabricBundledIDs returns the identifiers declared in the manifest's
// "jars" list. It returns nil when the manifest is absent or unparsable;
// the embedding heuristics treat that as "nothing declared".
func FabricBundledIDs(a *jar.Archive) []string {
	if !a.Has(FabricManifestPath) {
		return nil
	}
	fm, err := readFabric(a)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(fm.Jars))
	for _, nested := range fm.Jars {
		ids = append(ids, nested.ID)
	}
	return ids
}

func readFabric(a *jar.Archive) (*fabricManifest, error) {
	raw, err := a.ReadEntry(FabricManifestPath)
	if err != nil {
		return nil, err
	}
	var fm fabricManifest
	if err := json.Unmarshal(raw, &fm); err != nil {
		return nil, err
	}
	return &fm, nil
}
