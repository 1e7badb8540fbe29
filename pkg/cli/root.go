package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/oe-forge/bbgrep/pkg/logging"
	"github.com/oe-forge/bbgrep/pkg/metadata"
	"github.com/oe-forge/bbgrep/pkg/pattern"
	"github.com/oe-forge/bbgrep/pkg/search"
	"github.com/oe-forge/bbgrep/pkg/serializer"
)

const name = "bbgrep"

// usageExitCode is returned for invalid flag combinations, before any
// matching work begins.
const usageExitCode = 2

// overridden during build with ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Run executes the bbgrep command line. Usage errors exit with code 2
// through the cli exit handling; all other failures are returned.
func Run(ctx context.Context, args []string) error {
	return rootCmd().Run(ctx, args)
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		EnableShellCompletion: true,
		ArgsUsage:             "PATTERN",
		Usage:                 "Search build metadata for recipes, provides, and packages matching a pattern",
		Description: `Search the build system's recipe and package metadata for names matching
PATTERN, and report per recipe: the recipe name, matching build-time
provides, and matching runtime packages, runtime provides, and dynamic
package patterns.

By default each recipe stops reporting at the first namespace that matches
(name/provides first, then packages, then runtime provides, then dynamic
patterns). Use --all to report every namespace.

# Match Modes

Exactly one of --substring (default), --exact, --regex, or --wildcard.
Wildcard patterns are anchored: "busybox*" matches "busybox-mdev" but not
"my-busybox". --word is only valid with --regex or --wildcard.

# Examples

Substring search across all recipes:
  bbgrep --cache bb-cache.yaml busybox

Anchored wildcard, case-insensitive:
  bbgrep -c bb-cache.yaml -w -i 'libgl*'

Regex with word boundaries, runtime packages only:
  bbgrep -c bb-cache.yaml -r -W -P 'lib(ssl|crypto)'

Restrict to the dependency scope of an image target:
  bbgrep -c bb-cache.yaml -S core-image-minimal gdb

Report every namespace as JSON:
  bbgrep -c bb-cache.yaml -a -t json busybox`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "ignore-case",
				Aliases: []string{"i"},
				Usage:   "case-insensitive matching",
			},
			&cli.BoolFlag{
				Name:    "word",
				Aliases: []string{"W"},
				Usage:   "match on word boundaries (regex and wildcard modes only)",
			},
			&cli.StringFlag{
				Name:    "scope",
				Aliases: []string{"S"},
				Sources: cli.EnvVars("BB_RECIPE_SCOPE"),
				Usage:   "restrict the search to the dependency scope of the named target",
			},
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "report every matching namespace instead of stopping at the first",
			},
			&cli.BoolFlag{
				Name:    "substring",
				Aliases: []string{"s"},
				Usage:   "substring matching (default)",
			},
			&cli.BoolFlag{
				Name:    "exact",
				Aliases: []string{"e"},
				Usage:   "exact matching",
			},
			&cli.BoolFlag{
				Name:    "regex",
				Aliases: []string{"r"},
				Usage:   "regular expression matching",
			},
			&cli.BoolFlag{
				Name:    "wildcard",
				Aliases: []string{"w"},
				Usage:   "shell wildcard matching, anchored at the start of the name",
			},
			&cli.BoolFlag{
				Name:    "recipes",
				Aliases: []string{"R"},
				Usage:   "search recipe names and build-time provides only",
			},
			&cli.BoolFlag{
				Name:    "packages",
				Aliases: []string{"P"},
				Usage:   "search runtime packages only",
			},
			&cli.StringFlag{
				Name:     "cache",
				Aliases:  []string{"c"},
				Required: true,
				Sources:  cli.EnvVars("BBGREP_CACHE"),
				Usage:    "path to the metadata cache file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatText),
				Usage: fmt.Sprintf("output format (supported values: %s)",
					strings.Join(serializer.SupportedFormats(), ", ")),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "log level (debug, info, warn, error)",
			},
		},
		Action: runSearch,
	}
}

func runSearch(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))

	opts, err := parseSearchOptions(cmd)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", name, err), usageExitCode)
	}

	m, err := pattern.Compile(opts.mode, opts.pattern, pattern.Options{
		IgnoreCase:   opts.ignoreCase,
		WordBoundary: opts.word,
	})
	if err != nil {
		// parseSearchOptions already rejects the word-boundary combination,
		// but the compiler owns that contract too.
		if errors.Is(err, pattern.ErrWordBoundary) {
			return cli.Exit(fmt.Sprintf("%s: %v", name, err), usageExitCode)
		}
		return fmt.Errorf("compiling pattern: %w", err)
	}

	meta, err := metadata.Load(opts.cachePath)
	if err != nil {
		return fmt.Errorf("preparing metadata: %w", err)
	}

	log := slog.Default().With("run", uuid.NewString())
	engine := search.New(meta, log)
	results, err := engine.Search(ctx, m, search.Options{
		RecipesOnly:  opts.recipes,
		PackagesOnly: opts.packages,
		All:          opts.all,
		Scope:        opts.scope,
	})
	if err != nil {
		return err
	}

	log.Debug("search complete",
		"pattern", opts.pattern,
		"mode", string(opts.mode),
		"results", len(results))

	w := serializer.NewFileWriterOrStdout(opts.format, opts.output)
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output writer", "error", err)
		}
	}()

	return w.Serialize(ctx, results)
}
