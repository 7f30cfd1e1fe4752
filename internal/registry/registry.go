// SPDX-License-Identifier: MPL-2.0

// Package registry builds the canonical in-memory set of installed mods
// from a folder of jar archives.
package registry

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"modgraph-cli/internal/jar"
	"modgraph-cli/internal/manifest"
)

// Registry maps mod identifiers to their descriptors. It is built once per
// run and read-only afterwards; the registry exclusively owns the
// descriptors it holds.
type Registry map[string]*manifest.Descriptor

// Scan enumerates every jar file directly inside folder (non-recursive)
// and returns the recognized mods keyed by identifier. Archives that
// cannot be read, carry no recognized manifest, declare no identifier, or
// declare an excluded identifier are skipped; dependencies on excluded
// identifiers are dropped from the surviving descriptors. A later archive
// declaring an already-registered identifier silently replaces the
// earlier entry. The only error condition is the folder itself being
// unlistable.
func Scan(folder string, excl ExclusionSet) (Registry, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read mod folder: %w", err)
	}

	mods := make(Registry)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".jar" {
			continue
		}
		path := filepath.Join(folder, entry.Name())

		a, err := jar.Open(path)
		if err != nil {
			log.Debug("skipping unreadable archive", "path", path, "err", err)
			continue
		}
		d := manifest.Extract(a)
		if d == nil || d.ID == "" {
			log.Debug("skipping archive without usable manifest", "path", path)
			continue
		}
		if excl.Contains(d.ID) {
			log.Debug("skipping excluded mod", "id", d.ID)
			continue
		}

		for dep := range d.Depends {
			if excl.Contains(dep) {
				delete(d.Depends, dep)
			}
		}

		if prev, ok := mods[d.ID]; ok {
			log.Debug("duplicate mod id, later archive wins",
				"id", d.ID, "replaced", prev.Path, "kept", path)
		}
		mods[d.ID] = d
	}

	return mods, nil
}

// SortedIDs returns the registered identifiers in sorted order. The graph
// build phase iterates (and probes) in this order so output is
// deterministic across runs.
func (r Registry) SortedIDs() []string {
	return slices.Sorted(maps.Keys(r))
}
