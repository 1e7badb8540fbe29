// Package search implements the cascading metadata search.
//
// A search walks the resolver-ordered set of preferred recipe filenames and
// reports, per filename, which namespaces matched the pattern: the recipe
// name, its build-time provides, and a three-level runtime fallback over
// packages, runtime provides, and dynamic package patterns. By default each
// filename stops reporting at the first tier that matches; the All option
// turns every tier on. Runtime matches are deduplicated with first-seen
// order preserved.
package search
