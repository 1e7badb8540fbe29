package cli

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/oe-forge/bbgrep/pkg/pattern"
	"github.com/oe-forge/bbgrep/pkg/serializer"
)

// searchOptions holds parsed and validated options for a search run.
type searchOptions struct {
	pattern    string
	mode       pattern.Mode
	ignoreCase bool
	word       bool
	scope      string
	all        bool
	recipes    bool
	packages   bool
	cachePath  string
	output     string
	format     serializer.Format
}

// parseSearchOptions validates the command line before any matching work
// begins. Every error it returns is a usage error.
func parseSearchOptions(cmd *cli.Command) (*searchOptions, error) {
	opts := &searchOptions{
		ignoreCase: cmd.Bool("ignore-case"),
		word:       cmd.Bool("word"),
		scope:      cmd.String("scope"),
		all:        cmd.Bool("all"),
		recipes:    cmd.Bool("recipes"),
		packages:   cmd.Bool("packages"),
		cachePath:  cmd.String("cache"),
		output:     cmd.String("output"),
	}

	if cmd.Args().Len() != 1 {
		return nil, errors.New("exactly one PATTERN argument is required")
	}
	opts.pattern = cmd.Args().First()

	opts.mode = pattern.ModeSubstring
	selected := 0
	for _, m := range []struct {
		flag string
		mode pattern.Mode
	}{
		{"substring", pattern.ModeSubstring},
		{"exact", pattern.ModeExact},
		{"regex", pattern.ModeRegex},
		{"wildcard", pattern.ModeWildcard},
	} {
		if cmd.Bool(m.flag) {
			selected++
			opts.mode = m.mode
		}
	}
	if selected > 1 {
		return nil, errors.New("match modes --substring, --exact, --regex, and --wildcard are mutually exclusive")
	}

	if opts.recipes && opts.packages {
		return nil, errors.New("--recipes and --packages are mutually exclusive")
	}

	if opts.word && opts.mode != pattern.ModeRegex && opts.mode != pattern.ModeWildcard {
		return nil, pattern.ErrWordBoundary
	}

	opts.format = serializer.Format(cmd.String("format"))
	if opts.format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q (supported values: %v)",
			opts.format, serializer.SupportedFormats())
	}

	return opts, nil
}
