package search

import (
	"sort"

	"github.com/oe-forge/bbgrep/pkg/metadata"
)

// Indices are the per-filename inversions of the provider's runtime maps.
// They are rebuilt once per search and never mutated afterward.
type Indices struct {
	packages  map[string][]string // filename -> runtime package names
	rprovides map[string][]string // filename -> runtime provide names
	dynamic   map[string][]string // filename -> dynamic package patterns
}

// BuildIndices inverts the provider's forward runtime maps into
// per-filename lookups.
func BuildIndices(p metadata.Provider) *Indices {
	return &Indices{
		packages:  invert(p.Packages()),
		rprovides: invert(p.Rproviders()),
		dynamic:   invert(p.PackagesDynamic()),
	}
}

// invert turns name->filenames into filename->names. Source keys are walked
// in sorted order so the per-filename lists are deterministic; duplicate
// names reaching the same filename are kept as-is.
func invert(forward map[string][]string) map[string][]string {
	keys := make([]string, 0, len(forward))
	for k := range forward {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string][]string, len(forward))
	for _, k := range keys {
		for _, fn := range forward[k] {
			out[fn] = append(out[fn], k)
		}
	}
	return out
}
