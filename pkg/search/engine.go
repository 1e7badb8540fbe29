package search

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/oe-forge/bbgrep/pkg/metadata"
	"github.com/oe-forge/bbgrep/pkg/pattern"
)

// Engine drives pattern matching over the provider's preferred filenames.
type Engine struct {
	meta metadata.Provider
	log  *slog.Logger
}

// New creates an Engine over the given metadata provider. A nil logger
// falls back to slog.Default.
func New(meta metadata.Provider, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{meta: meta, log: log}
}

// Search evaluates the matcher against every filename in resolver order and
// returns one Result per filename that produced output.
//
// Matching is pure per filename, so filenames are evaluated concurrently;
// results are placed by index, which keeps the resolver order intact in the
// returned slice. Runtime package lists are deduplicated before return.
func (e *Engine) Search(ctx context.Context, m pattern.Matcher, opts Options) ([]Result, error) {
	var (
		filenames []string
		err       error
	)
	if opts.Scope != "" {
		filenames, err = e.meta.ResolveScope(opts.Scope)
		if err != nil {
			return nil, err
		}
	} else {
		filenames = e.meta.PreferredFilenames()
	}

	idx := BuildIndices(e.meta)
	e.log.Debug("searching metadata",
		"filenames", len(filenames),
		"scope", opts.Scope,
		"all", opts.All)

	buffered := make([]*Result, len(filenames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, fn := range filenames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			buffered[i] = evaluate(fn, m, e.meta, idx, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(filenames))
	for _, r := range buffered {
		if r == nil {
			continue
		}
		if len(r.Packages) > 0 {
			r.Packages = Dedupe(r.Packages)
		}
		results = append(results, *r)
	}
	return results, nil
}
