package search

import (
	"github.com/oe-forge/bbgrep/pkg/metadata"
	"github.com/oe-forge/bbgrep/pkg/pattern"
)

// Result is everything reported for one filename. When NameMatched is set
// the recipe name is printed standalone; otherwise Recipe becomes a header
// over the Provides and Packages sections.
type Result struct {
	File        string   `json:"file" yaml:"file"`
	Recipe      string   `json:"recipe" yaml:"recipe"`
	NameMatched bool     `json:"nameMatched" yaml:"nameMatched"`
	Provides    []string `json:"provides,omitempty" yaml:"provides,omitempty"`
	Packages    []string `json:"packages,omitempty" yaml:"packages,omitempty"`
}

// Options control which namespaces are searched and whether matching
// short-circuits after the first tier that produces output.
type Options struct {
	// RecipesOnly restricts the search to recipe names and provides.
	RecipesOnly bool
	// PackagesOnly restricts the search to the runtime tiers.
	PackagesOnly bool
	// All disables every short circuit: all tiers are evaluated and
	// reported for each filename.
	All bool
	// Scope restricts the filename set to a resolved target scope.
	Scope string
}

// evaluate runs the cascading match for one filename and returns what it
// reports, or nil when nothing matched.
//
// The recipe name and provides are one tier, the runtime maps the other.
// Within the runtime tier there is a strict fallback: packages first, then
// runtime provides, then dynamic package patterns; a lower level is only
// consulted when everything above it came up empty. Options.All keeps every
// level on regardless of earlier matches.
//
// Provides are evaluated even when the name already matched, so a provides
// section can trail a standalone name line. The runtime tier, however, is
// skipped as soon as the name or a provide matched (unless All is set).
func evaluate(fn string, m pattern.Matcher, meta metadata.Provider, idx *Indices, opts Options) *Result {
	res := &Result{File: fn, Recipe: meta.RecipeName(fn)}

	if !opts.PackagesOnly {
		res.NameMatched = m.Matches(res.Recipe)
		res.Provides = matchAll(m, meta.Provides(fn))
	}

	decided := res.NameMatched || len(res.Provides) > 0
	if !opts.RecipesOnly && (opts.All || !decided) {
		runtime := matchAll(m, idx.packages[fn])
		if len(runtime) == 0 || opts.All {
			runtime = append(runtime, matchAll(m, idx.rprovides[fn])...)
		}
		if len(runtime) == 0 || opts.All {
			runtime = append(runtime, matchAll(m, idx.dynamic[fn])...)
		}
		res.Packages = runtime
	}

	if !res.NameMatched && len(res.Provides) == 0 && len(res.Packages) == 0 {
		return nil
	}
	return res
}

func matchAll(m pattern.Matcher, candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if m.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
