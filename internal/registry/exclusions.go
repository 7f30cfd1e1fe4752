// SPDX-License-Identifier: MPL-2.0

package registry

import "strings"

// ExclusionSet holds lowercase mod identifiers that must never appear in
// the registry or as dependency edges. It is passed explicitly into the
// scan so tests can run with custom sets.
type ExclusionSet map[string]struct{}

// defaultExcluded lists the platform/loader-internal identifiers that are
// installed machinery rather than user-relevant mods.
var defaultExcluded = []string{
	"minecraft",
	"forge",
	"neoforge",
	"fabricloader",
	"fabric-loader",
	"fabric",
	"fabric-api",
	"fabric_api",
	"fabric-resource-loader-v0",
	"fabric-screen-api-v1",
	"fabric-networking-api-v1",
	"fabric-lifecycle-events-v1",
	"fabric-renderer-api-v1",
	"fabric-registry-sync-v0",
	"fabric-api-base",
	"fabric-events-interaction-v0",
	"fabric-permissions-api-v0",
	"fabric-command-api-v2",
	"fabric-kotlin",
	"java",
}

// NewExclusionSet builds a set from the given identifiers, lowercasing
// each. Empty identifiers are dropped.
func NewExclusionSet(ids ...string) ExclusionSet {
	s := make(ExclusionSet, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		s[strings.ToLower(id)] = struct{}{}
	}
	return s
}

// DefaultExclusions returns the built-in platform/loader exclusion set.
func DefaultExclusions() ExclusionSet {
	return NewExclusionSet(defaultExcluded...)
}

// Contains reports whether id is excluded. Comparison is case-insensitive;
// an empty id is never considered excluded.
func (s ExclusionSet) Contains(id string) bool {
	if id == "" {
		return false
	}
	_, ok := s[strings.ToLower(id)]
	return ok
}

// With returns a copy of the set extended with the given identifiers.
// The receiver is left untouched.
func (s ExclusionSet) With(ids ...string) ExclusionSet {
	extended := make(ExclusionSet, len(s)+len(ids))
	for id := range s {
		extended[id] = struct{}{}
	}
	for _, id := range ids {
		if id == "" {
			continue
		}
		extended[strings.ToLower(id)] = struct{}{}
	}
	return extended
}
