// SPDX-License-Identifier: MPL-2.0

// Package shading detects dependencies bundled ("shaded") inside another
// mod archive. Declared dependency lists do not distinguish
// bundled-and-satisfied from truly missing, so presence has to be inferred
// from the archive's actual contents. Four bundling conventions are
// checked in order, cheapest and most specific first; a false positive is
// accepted as the lesser risk versus flagging a satisfied dependency as
// missing.
package shading

import (
	"strings"

	"modgraph-cli/internal/jar"
	"modgraph-cli/internal/manifest"
)

// nestedJarPrefixes are the well-known directories mod loaders use for
// bundled sub-archives.
var nestedJarPrefixes = []string{
	"META-INF/jars/",
	"META-INF/jarjar/",
}

// classPathRoots are the top-level folders a shaded dependency's compiled
// classes commonly land under, either bare or below a reverse-domain root.
var classPathRoots = []string{"", "com/", "net/", "io/"}

// Embedded reports whether the dependency identified by depID is bundled
// inside the archive at path. It never fails: an unreadable archive or a
// bad nested payload counts as "not embedded" for that probe.
func Embedded(path, depID string) bool {
	a, err := jar.Open(path)
	if err != nil {
		return false
	}
	return archiveEmbeds(a, strings.ToLower(depID))
}

// archiveEmbeds runs the heuristics against an already-opened archive.
// dep must be lowercase.
func archiveEmbeds(a *jar.Archive, dep string) bool {
	return hasNestedJar(a, dep) ||
		hasNamespaceDir(a, dep) ||
		hasClassPackage(a, dep) ||
		declaresBundledID(a, dep)
}

// hasNestedJar extracts every jar under the bundled-library prefixes and
// compares its own declared identifier to the dependency.
func hasNestedJar(a *jar.Archive, dep string) bool {
	for _, name := range a.Names() {
		if !strings.HasSuffix(name, ".jar") || !hasAnyPrefix(name, nestedJarPrefixes) {
			continue
		}
		raw, err := a.ReadEntry(name)
		if err != nil {
			continue
		}
		nested, err := jar.FromBytes(raw)
		if err != nil {
			continue
		}
		d := manifest.Extract(nested)
		if d != nil && d.ID != "" && strings.ToLower(d.ID) == dep {
			return true
		}
	}
	return false
}

// hasNamespaceDir checks for an asset or data namespace folder named
// exactly after the dependency.
func hasNamespaceDir(a *jar.Archive, dep string) bool {
	namespaces := []string{"assets/" + dep + "/", "data/" + dep + "/"}
	for _, name := range a.Names() {
		if hasAnyPrefix(name, namespaces) {
			return true
		}
	}
	return false
}

// hasClassPackage checks for compiled classes under a package folder named
// after the dependency.
func hasClassPackage(a *jar.Archive, dep string) bool {
	prefixes := make([]string, 0, len(classPathRoots))
	for _, root := range classPathRoots {
		prefixes = append(prefixes, root+dep+"/")
	}
	for _, name := range a.Names() {
		lower := strings.ToLower(name)
		if strings.HasSuffix(lower, ".class") && hasAnyPrefix(lower, prefixes) {
			return true
		}
	}
	return false
}

// declaresBundledID matches the dependency against the identifiers the
// archive's Fabric manifest declares in its "jars" list. The match is a
// substring check: bundled ids often carry group or version decorations.
func declaresBundledID(a *jar.Archive, dep string) bool {
	for _, id := range manifest.FabricBundledIDs(a) {
		if strings.Contains(strings.ToLower(id), dep) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}
