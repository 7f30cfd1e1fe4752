// SPDX-License-Identifier: MPL-2.0

// Package jar provides read-only access to packaged mod archives (jar
// files, which are ZIP containers). Archives are decoded fully from an
// in-memory copy: mod jars are small, and the resolution phase reopens
// archives per probe rather than holding handles across phases.
package jar

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Archive is an immutable view of an opened mod archive: its entry
// listing, per-entry byte access, and the disk path it came from.
type Archive struct {
	// path is the on-disk location; empty for archives decoded from a
	// nested in-memory payload.
	path string
	// names preserves the archive's own entry order.
	names   []string
	entries map[string]*zip.File
}

// Open reads and decodes the archive at path. Corrupt or non-ZIP files
// return an error; callers in the scan and probe paths treat that error
// as absence rather than propagating it.
func Open(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}
	a, err := FromBytes(data)
	if err != nil {
		return nil, err
	}
	a.path = path
	return a, nil
}

// FromBytes decodes an archive from a raw byte payload, typically a jar
// nested inside another archive.
func FromBytes(data []byte) (*Archive, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("not a valid archive: %w", err)
	}
	a := &Archive{entries: make(map[string]*zip.File, len(r.File))}
	for _, f := range r.File {
		if _, ok := a.entries[f.Name]; !ok {
			a.names = append(a.names, f.Name)
		}
		a.entries[f.Name] = f
	}
	return a, nil
}

// Path returns the on-disk location of the archive, or "" for archives
// decoded from in-memory bytes.
func (a *Archive) Path() string {
	return a.path
}

// Names returns the entry names in archive order. The returned slice is
// shared; callers must not mutate it.
func (a *Archive) Names() []string {
	return a.names
}

// Has reports whether the archive contains an entry with the given name.
func (a *Archive) Has(name string) bool {
	_, ok := a.entries[name]
	return ok
}

// ReadEntry returns the decompressed contents of the named entry.
func (a *Archive) ReadEntry(name string) (data []byte, err error) {
	f, ok := a.entries[name]
	if !ok {
		return nil, fmt.Errorf("no such entry: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open entry %s: %w", name, err)
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	data, err = io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %s: %w", name, err)
	}
	return data, nil
}
