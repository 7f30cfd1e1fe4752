// SPDX-License-Identifier: MPL-2.0

package manifest_test

import (
	"testing"

	"modgraph-cli/internal/jar"
	"modgraph-cli/internal/manifest"
	"modgraph-cli/internal/testutil"
)

func extractFromEntries(t *testing.T, entries map[string]string) *manifest.Descriptor {
	t.Helper()
	a, err := jar.FromBytes(testutil.JarBytes(t, entries))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	return manifest.Extract(a)
}

func TestExtractFabric(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"fabric.mod.json": `{
			"id": "examplemod",
			"name": "Example Mod",
			"depends": {"somelib": ">=1.0"},
			"recommends": {"niftylib": "*"},
			"suggests": {"extras": "*"}
		}`,
	})
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.ID != "examplemod" {
		t.Errorf("ID = %q, want %q", d.ID, "examplemod")
	}
	if d.Name != "Example Mod" {
		t.Errorf("Name = %q, want %q", d.Name, "Example Mod")
	}
	if len(d.Depends) != 3 {
		t.Fatalf("len(Depends) = %d, want 3", len(d.Depends))
	}
	if !d.Depends["somelib"].Required {
		t.Error("depends entry somelib: Required = false, want true")
	}
	if d.Depends["niftylib"].Required {
		t.Error("recommends entry niftylib: Required = true, want false")
	}
	if d.Depends["extras"].Required {
		t.Error("suggests entry extras: Required = true, want false")
	}
}

func TestExtractFabricNameFallsBackToID(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"fabric.mod.json": `{"id": "unnamed"}`,
	})
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.Name != "unnamed" {
		t.Errorf("Name = %q, want fallback to id %q", d.Name, "unnamed")
	}
}

func TestExtractFabricSoftCategoryOverwritesHard(t *testing.T) {
	t.Parallel()

	// The same identifier declared in depends and suggests: the later
	// category wins on key collision.
	d := extractFromEntries(t, map[string]string{
		"fabric.mod.json": `{
			"id": "examplemod",
			"depends": {"dual": "*"},
			"suggests": {"dual": "*"}
		}`,
	})
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.Depends["dual"].Required {
		t.Error("dual: Required = true, want false (suggests overwrites depends)")
	}
}

func TestExtractForge(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"META-INF/mods.toml": `
[[mods]]
modId = "ironworks"
displayName = "Ironworks"

[[dependencies.ironworks]]
modId = "forgelib"
mandatory = true

[[dependencies.ironworks]]
modId = "decor"
`,
	})
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.ID != "ironworks" {
		t.Errorf("ID = %q, want %q", d.ID, "ironworks")
	}
	if d.Name != "Ironworks" {
		t.Errorf("Name = %q, want %q", d.Name, "Ironworks")
	}
	if !d.Depends["forgelib"].Required {
		t.Error("forgelib: Required = false, want true (mandatory)")
	}
	if d.Depends["decor"].Required {
		t.Error("decor: Required = true, want false (mandatory defaults to false)")
	}
}

func TestExtractForgeFirstModEntryOnly(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"META-INF/mods.toml": `
[[mods]]
modId = "first"

[[mods]]
modId = "second"

[[dependencies.second]]
modId = "ignored"
mandatory = true
`,
	})
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.ID != "first" {
		t.Errorf("ID = %q, want %q (first entry only)", d.ID, "first")
	}
	if d.Name != "first" {
		t.Errorf("Name = %q, want fallback to id %q", d.Name, "first")
	}
	if len(d.Depends) != 0 {
		t.Errorf("len(Depends) = %d, want 0 (dependencies of other entries ignored)", len(d.Depends))
	}
}

func TestExtractForgeEmptyModsList(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"META-INF/mods.toml": `mods = []`,
	})
	if d != nil {
		t.Errorf("Extract() = %+v, want nil for empty mods list", d)
	}
}

func TestExtractLegacy(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"mcmod.info": `[{
			"modid": "oldmod",
			"name": "Old Mod",
			"dependencies": ["liba"],
			"requiredMods": ["libb"]
		}]`,
	})
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.ID != "oldmod" {
		t.Errorf("ID = %q, want %q", d.ID, "oldmod")
	}
	if d.Name != "Old Mod" {
		t.Errorf("Name = %q, want %q", d.Name, "Old Mod")
	}
	for _, dep := range []string{"liba", "libb"} {
		meta, ok := d.Depends[dep]
		if !ok {
			t.Fatalf("Depends missing %q", dep)
		}
		if !meta.Required {
			t.Errorf("%s: Required = false, want true (legacy deps are all hard)", dep)
		}
	}
}

func TestExtractLegacyFirstElementOnly(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"mcmod.info": `[{"modid": "one"}, {"modid": "two"}]`,
	})
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.ID != "one" {
		t.Errorf("ID = %q, want %q", d.ID, "one")
	}
}

func TestExtractNoManifest(t *testing.T) {
	t.Parallel()

	d := extractFromEntries(t, map[string]string{
		"assets/whatever/texture.png": "png",
	})
	if d != nil {
		t.Errorf("Extract() = %+v, want nil when no manifest path exists", d)
	}
}

func TestExtractMalformedManifests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries map[string]string
	}{
		{"fabric bad json", map[string]string{"fabric.mod.json": `{"id": `}},
		{"forge bad toml", map[string]string{"META-INF/mods.toml": `[[mods`}},
		{"legacy bad json", map[string]string{"mcmod.info": `{"modid": "notalist"}`}},
		{"legacy empty list", map[string]string{"mcmod.info": `[]`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if d := extractFromEntries(t, tt.entries); d != nil {
				t.Errorf("Extract() = %+v, want nil", d)
			}
		})
	}
}

func TestExtractDetectionOrderIsCoupledToParsing(t *testing.T) {
	t.Parallel()

	// A broken Fabric manifest must not fall through to the valid Forge
	// one: the first manifest path present decides the schema.
	d := extractFromEntries(t, map[string]string{
		"fabric.mod.json": `{broken`,
		"META-INF/mods.toml": `
[[mods]]
modId = "fallbackmod"
`,
	})
	if d != nil {
		t.Errorf("Extract() = %+v, want nil (no fallthrough past a detected schema)", d)
	}
}

func TestExtractSetsSourcePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := testutil.WriteJar(t, dir, "mod.jar", map[string]string{
		"fabric.mod.json": `{"id": "examplemod"}`,
	})
	a, err := jar.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	d := manifest.Extract(a)
	if d == nil {
		t.Fatal("Extract() = nil, want descriptor")
	}
	if d.Path != path {
		t.Errorf("Path = %q, want %q", d.Path, path)
	}
}

func TestFabricBundledIDs(t *testing.T) {
	t.Parallel()

	a, err := jar.FromBytes(testutil.JarBytes(t, map[string]string{
		"fabric.mod.json": `{
			"id": "examplemod",
			"jars": [{"id": "shadedlib-1.2.3"}, {"id": "other"}]
		}`,
	}))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	ids := manifest.FabricBundledIDs(a)
	if len(ids) != 2 || ids[0] != "shadedlib-1.2.3" || ids[1] != "other" {
		t.Errorf("FabricBundledIDs() = %v, want [shadedlib-1.2.3 other]", ids)
	}

	empty, err := jar.FromBytes(testutil.JarBytes(t, map[string]string{"mcmod.info": `[]`}))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if ids := manifest.FabricBundledIDs(empty); ids != nil {
		t.Errorf("FabricBundledIDs() = %v, want nil without a Fabric manifest", ids)
	}
}
