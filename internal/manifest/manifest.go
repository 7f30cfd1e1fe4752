// SPDX-License-Identifier: MPL-2.0

// Package manifest normalizes the three mod metadata formats into a single
// descriptor shape: Fabric's fabric.mod.json, modern Forge's
// META-INF/mods.toml, and legacy Forge's mcmod.info.
package manifest

import (
	"modgraph-cli/internal/jar"
)

type (
	// Dependency carries the per-dependency metadata a manifest declares.
	Dependency struct {
		// Required is true when the declaring mod cannot function
		// without the dependency.
		Required bool
	}

	// Descriptor is the normalized result of manifest extraction.
	Descriptor struct {
		// ID is the stable identifier declared by the archive's own
		// metadata. A descriptor with an empty ID never enters the
		// registry.
		ID string
		// Name is the display name, falling back to ID when the
		// manifest declares none.
		Name string
		// Depends maps dependency identifiers to their metadata. Keys
		// are unique; a later declaration of the same identifier
		// overwrites an earlier one.
		Depends map[string]Dependency
		// Path is the on-disk archive this descriptor came from. Empty
		// for descriptors extracted from nested in-memory payloads,
		// which are only used for identity comparison.
		Path string
	}
)

// Extract returns the normalized descriptor for an opened archive, or nil
// when no recognized manifest is present or the present one fails to
// parse. Detection order is fixed and first-match-wins: Fabric, then
// modern Forge, then legacy Forge. The first manifest path found decides
// the schema; a parse failure inside that schema yields nil without
// consulting later schemas.
func Extract(a *jar.Archive) *Descriptor {
	switch {
	case a.Has(FabricManifestPath):
		return parseFabric(a)
	case a.Has(ForgeManifestPath):
		return parseForge(a)
	case a.Has(LegacyManifestPath):
		return parseLegacy(a)
	}
	return nil
}
