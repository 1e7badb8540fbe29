package search

import (
	"fmt"

	"github.com/oe-forge/bbgrep/pkg/metadata"
)

// fakeProvider is an in-memory metadata.Provider for tests.
type fakeProvider struct {
	names     map[string]string
	provides  map[string][]string
	packages  map[string][]string
	rprovides map[string][]string
	dynamic   map[string][]string
	preferred []string
	scopes    map[string][]string
}

func (f *fakeProvider) RecipeName(fn string) string { return f.names[fn] }

func (f *fakeProvider) Provides(fn string) []string { return f.provides[fn] }

func (f *fakeProvider) Rproviders() map[string][]string { return f.rprovides }

func (f *fakeProvider) Packages() map[string][]string { return f.packages }

func (f *fakeProvider) PackagesDynamic() map[string][]string { return f.dynamic }

func (f *fakeProvider) PreferredFilenames() []string { return f.preferred }

func (f *fakeProvider) ResolveScope(target string) ([]string, error) {
	fns, ok := f.scopes[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", metadata.ErrUnknownScope, target)
	}
	return fns, nil
}
