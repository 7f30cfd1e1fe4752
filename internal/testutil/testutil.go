// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for building synthetic mod
// archive fixtures in tests, reducing boilerplate and ensuring consistent
// error handling.
package testutil

import (
	"archive/zip"
	"bytes"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// JarBytes builds a ZIP archive in memory from entry name to contents.
// Entries are written in sorted name order for deterministic fixtures.
// The test fails immediately if archive construction fails.
func JarBytes(t testing.TB, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(entries[name])); err != nil {
			t.Fatalf("failed to write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finalize zip: %v", err)
	}
	return buf.Bytes()
}

// WriteJar writes a jar built from entries into dir under the given file
// name and returns its full path.
func WriteJar(t testing.TB, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, JarBytes(t, entries), 0o644); err != nil {
		t.Fatalf("failed to write jar %s: %v", path, err)
	}
	return path
}

// WriteFile writes raw contents into dir under the given file name and
// returns its full path. Used for corrupt-archive fixtures.
func WriteFile(t testing.TB, dir, name string, contents []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
