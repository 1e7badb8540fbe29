package metadata

import "errors"

var (
	// ErrUnavailable indicates the metadata cache could not be prepared.
	// It is fatal: the search never starts without metadata and nothing in
	// this tool retries the load.
	ErrUnavailable = errors.New("metadata cache unavailable")

	// ErrUnknownScope indicates a scope target that resolves to no recipe.
	ErrUnknownScope = errors.New("unknown scope target")
)

// Provider exposes read-only access to the build system's recipe and
// package metadata. The search core only consumes these accessors; cache
// construction and scope resolution belong to the implementation.
//
// Returned maps and slices must be treated as read-only.
type Provider interface {
	// RecipeName returns the recipe name for a filename, or "" when the
	// filename is unknown. Each filename has exactly one recipe name.
	RecipeName(fn string) string

	// Provides returns the build-time artifact names declared by a filename.
	Provides(fn string) []string

	// Rproviders maps runtime-provide name to the filenames producing it.
	Rproviders() map[string][]string

	// Packages maps runtime package name to the filenames producing it.
	Packages() map[string][]string

	// PackagesDynamic maps dynamic package-name pattern to the filenames
	// producing packages under that pattern.
	PackagesDynamic() map[string][]string

	// PreferredFilenames returns the preferred filename per recipe name, in
	// resolver order. This is the filename set a scope-less search walks.
	PreferredFilenames() []string

	// ResolveScope restricts the preferred filenames to the transitive
	// dependency closure of the named target, preserving resolver order.
	ResolveScope(target string) ([]string, error)
}
