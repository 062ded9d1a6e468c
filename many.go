package acsearch

import (
	"context"
	"fmt"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

const maxWorkers = 16

// SearchMany searches a batch of texts concurrently. The result holds the
// matches of texts[i] at index i.
//
// workers limits the number of goroutines scanning at the same time; a value
// <= 0 selects GOMAXPROCS (at most 16). All texts are validated before any
// scanning starts: the first text which is not valid UTF-8 aborts the call
// with ErrInvalidInput. Cancelling ctx aborts the call with ctx.Err().
func (a *Automaton[V]) SearchMany(ctx context.Context, texts []string, workers int) ([][]Match[V], error) {
	for i, text := range texts {
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("text #%d: %w: text is not valid UTF-8", i, ErrInvalidInput)
		}
	}
	results := make([][]Match[V], len(texts))
	if len(texts) == 0 {
		return results, nil
	}
	if workers <= 0 {
		workers = min(runtime.GOMAXPROCS(0), maxWorkers)
	}
	workers = min(workers, len(texts))
	tracer().Debugf("searching %d texts with %d workers", len(texts), workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, text := range texts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			it := a.newIterator(&stringSource{text: text})
			var matches []Match[V]
			for m := range it.All() {
				matches = append(matches, m)
			}
			results[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
