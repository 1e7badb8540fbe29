package pattern

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/zyedidia/glob"
	"golang.org/x/text/cases"
)

// Mode selects how the search pattern is compared against candidate names.
type Mode string

const (
	// ModeSubstring matches when the pattern appears anywhere in the candidate.
	ModeSubstring Mode = "substring"
	// ModeExact matches when the pattern equals the whole candidate.
	ModeExact Mode = "exact"
	// ModeRegex treats the pattern as a regular expression.
	ModeRegex Mode = "regex"
	// ModeWildcard treats the pattern as a shell glob, anchored at the start
	// of the candidate.
	ModeWildcard Mode = "wildcard"
)

// IsValid reports whether the mode is one of the supported match modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModeSubstring, ModeExact, ModeRegex, ModeWildcard:
		return true
	default:
		return false
	}
}

// SupportedModes returns the list of all supported match modes.
func SupportedModes() []string {
	return []string{
		string(ModeSubstring),
		string(ModeExact),
		string(ModeRegex),
		string(ModeWildcard),
	}
}

// Options modify how a compiled matcher compares candidates.
type Options struct {
	// IgnoreCase enables case-insensitive comparison.
	IgnoreCase bool
	// WordBoundary anchors the pattern on word boundaries. Only valid with
	// ModeRegex and ModeWildcard.
	WordBoundary bool
}

// ErrWordBoundary indicates a flag combination the user must fix: word
// boundary anchoring makes no sense for plain string comparison.
var ErrWordBoundary = errors.New("word-boundary matching requires regex or wildcard mode")

// CompileError wraps a malformed regex or glob pattern failure.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Matcher is a compiled search pattern. Implementations are immutable and
// safe for concurrent use.
type Matcher interface {
	// Matches reports whether the candidate satisfies the pattern.
	Matches(candidate string) bool
}

// Compile builds a Matcher for the given mode, pattern, and options.
//
// Wildcard patterns are translated into an anchored regular expression and
// evaluated through the regex path, so IgnoreCase and WordBoundary compose
// the same way for both modes.
func Compile(mode Mode, raw string, opts Options) (Matcher, error) {
	switch mode {
	case ModeSubstring, ModeExact:
		if opts.WordBoundary {
			return nil, ErrWordBoundary
		}
		p := raw
		if opts.IgnoreCase {
			p = cases.Fold().String(p)
		}
		return &literalMatcher{pattern: p, exact: mode == ModeExact, fold: opts.IgnoreCase}, nil
	case ModeRegex:
		return compileRegex(raw, raw, opts)
	case ModeWildcard:
		g, err := glob.Compile(raw)
		if err != nil {
			return nil, &CompileError{Pattern: raw, Err: err}
		}
		return compileRegex(g.String(), raw, opts)
	default:
		return nil, fmt.Errorf("unsupported match mode: %q", mode)
	}
}

// compileRegex compiles expr with the option wrapping applied, reporting
// failures against the pattern the user originally typed.
func compileRegex(expr, raw string, opts Options) (Matcher, error) {
	if opts.WordBoundary {
		expr = `\b` + expr + `\b`
	}
	if opts.IgnoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &CompileError{Pattern: raw, Err: err}
	}
	return &regexMatcher{re: re}, nil
}

type literalMatcher struct {
	pattern string // already case-folded when fold is set
	exact   bool
	fold    bool
}

func (m *literalMatcher) Matches(candidate string) bool {
	if m.fold {
		// cases.Caser carries internal state, so a fresh one is used per
		// call to keep the matcher reentrant.
		candidate = cases.Fold().String(candidate)
	}
	if m.exact {
		return candidate == m.pattern
	}
	return strings.Contains(candidate, m.pattern)
}

type regexMatcher struct {
	re *regexp.Regexp
}

func (m *regexMatcher) Matches(candidate string) bool {
	return m.re.MatchString(candidate)
}
