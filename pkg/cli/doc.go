// Package cli implements the bbgrep command-line interface.
//
// # Overview
//
// bbgrep searches a build system's recipe/package metadata cache for names
// matching a pattern, reporting per recipe the recipe name, matching
// build-time provides, and matching runtime packages, runtime provides, and
// dynamic package patterns.
//
//	bbgrep [flags] PATTERN
//
// # Flags
//
//	-i, --ignore-case  case-insensitive matching
//	-W, --word         word-boundary anchoring (regex/wildcard modes only)
//	-S, --scope        restrict to the dependency scope of a target
//	                   (env: BB_RECIPE_SCOPE)
//	-a, --all          report every namespace, disable short circuits
//	-s, --substring    substring matching (default)
//	-e, --exact        exact matching
//	-r, --regex        regular expression matching
//	-w, --wildcard     anchored shell wildcard matching
//	-R, --recipes      recipe names and provides only
//	-P, --packages     runtime packages only
//	-c, --cache        path to the metadata cache file (env: BBGREP_CACHE)
//	-o, --output       output file path (default: stdout)
//	-t, --format       output format: text, json, yaml (default: text)
//	    --log-level    log level (env: LOG_LEVEL)
//
// The match modes are mutually exclusive, as are --recipes and --packages.
//
// # Exit Codes
//
//	0  success
//	2  usage error (invalid flag combination, detected before matching)
//	1  any other failure (pattern compile error, metadata unavailable)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/pattern - pattern compilation
//   - pkg/metadata - metadata cache loading and scope resolution
//   - pkg/search - cascading match evaluation
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/oe-forge/bbgrep/pkg/cli.version=1.0.0'"
package cli
