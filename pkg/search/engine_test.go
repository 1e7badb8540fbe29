package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oe-forge/bbgrep/pkg/metadata"
	"github.com/oe-forge/bbgrep/pkg/pattern"
)

func TestSearchResolverOrderPreserved(t *testing.T) {
	meta := &fakeProvider{
		names: map[string]string{
			"/meta/zsh_5.9.bb":     "zsh",
			"/meta/bash_5.2.bb":    "bash",
			"/meta/dash_0.5.bb":    "dash",
			"/meta/gettext_0.2.bb": "gettext",
		},
		// resolver order is not alphabetical on purpose
		preferred: []string{"/meta/zsh_5.9.bb", "/meta/bash_5.2.bb", "/meta/dash_0.5.bb", "/meta/gettext_0.2.bb"},
	}

	m, err := pattern.Compile(pattern.ModeSubstring, "sh", pattern.Options{})
	require.NoError(t, err)

	results, err := New(meta, nil).Search(context.Background(), m, Options{})
	require.NoError(t, err)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Recipe)
	}
	assert.Equal(t, []string{"zsh", "bash", "dash"}, names)
}

func TestSearchDeduplicatesRuntimeMatches(t *testing.T) {
	const fn = "/meta/libfoo_1.0.bb"
	meta := &fakeProvider{
		names:     map[string]string{fn: "libfoo-src"},
		packages:  map[string][]string{"libfoo": {fn}},
		rprovides: map[string][]string{"libfoo": {fn}},
		preferred: []string{fn},
	}

	m, err := pattern.Compile(pattern.ModeExact, "libfoo", pattern.Options{})
	require.NoError(t, err)

	// All keeps both runtime tiers on; the same name matches in each
	results, err := New(meta, nil).Search(context.Background(), m, Options{All: true, PackagesOnly: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []string{"libfoo"}, results[0].Packages)
}

func TestSearchScope(t *testing.T) {
	meta := cascadeProvider()
	meta.scopes = map[string][]string{
		"core-image-minimal": {busyboxFn, glibcFn},
	}

	m, err := pattern.Compile(pattern.ModeSubstring, "dash", pattern.Options{})
	require.NoError(t, err)

	// dash matches, but it is outside the scope
	results, err := New(meta, nil).Search(context.Background(), m, Options{Scope: "core-image-minimal"})
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = New(meta, nil).Search(context.Background(), m, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "dash", results[0].Recipe)
}

func TestSearchUnknownScope(t *testing.T) {
	meta := cascadeProvider()
	meta.scopes = map[string][]string{}

	m, err := pattern.Compile(pattern.ModeSubstring, "busybox", pattern.Options{})
	require.NoError(t, err)

	_, err = New(meta, nil).Search(context.Background(), m, Options{Scope: "no-such-target"})
	assert.ErrorIs(t, err, metadata.ErrUnknownScope)
}

func TestSearchEndToEnd(t *testing.T) {
	meta := cascadeProvider()

	m, err := pattern.Compile(pattern.ModeSubstring, "busybox", pattern.Options{})
	require.NoError(t, err)

	results, err := New(meta, nil).Search(context.Background(), m, Options{})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, busyboxFn, r.File)
	assert.Equal(t, "busybox", r.Recipe)
	assert.True(t, r.NameMatched)
	assert.Equal(t, []string{"busybox"}, r.Provides)
	assert.Empty(t, r.Packages)
}

func TestSearchCanceledContext(t *testing.T) {
	meta := cascadeProvider()

	m, err := pattern.Compile(pattern.ModeSubstring, "busybox", pattern.Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = New(meta, nil).Search(ctx, m, Options{})
	assert.ErrorIs(t, err, context.Canceled)
}
