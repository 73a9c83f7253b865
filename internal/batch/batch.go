// Package batch generates move lists for many positions concurrently.
package batch

import (
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/b-paul/chess-engine/internal/board"
	"github.com/b-paul/chess-engine/internal/store"
)

// Result is the outcome for one input FEN. Err is set instead of the move
// lists when the FEN is malformed or the position is unusable.
type Result struct {
	Index  int
	FEN    string
	Hash   uint64
	Quiet  []string
	Noisy  []string
	Cached bool
	Err    error
}

// Option configures Run.
type Option func(*runner)

// WithWorkers sets the number of positions generated at once.
func WithWorkers(n int) Option {
	return func(r *runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithStore serves repeated positions from s and records new ones in it.
func WithStore(s *store.Store) Option {
	return func(r *runner) {
		r.cache = s
	}
}

// WithLogger logs one line per position to l.
func WithLogger(l *log.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

type runner struct {
	workers int
	cache   *store.Store
	logger  *log.Logger
}

// Run generates quiet and noisy moves for every FEN and returns the results in
// input order. A malformed FEN only fails its own Result; a cache failure or
// cancelled ctx stops the batch and is returned.
func Run(ctx context.Context, fens []string, opts ...Option) ([]Result, error) {
	r := &runner{
		workers: runtime.GOMAXPROCS(0),
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}

	results := make([]Result, len(fens))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, fen := range fens {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.generate(fen)
			if err != nil {
				return err
			}
			res.Index = i
			results[i] = res
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

// generate handles one FEN. Only cache errors are returned; input errors are
// reported in the Result.
func (r *runner) generate(fen string) (Result, error) {
	res := Result{FEN: fen}
	start := time.Now()

	pos, err := board.ParseFEN(fen)
	if err != nil {
		res.Err = err
		r.logger.Printf("skip %q: %v", fen, err)
		return res, nil
	}
	if err := pos.Validate(); err != nil {
		res.Err = fmt.Errorf("%q: %w", fen, err)
		r.logger.Printf("skip %q: %v", fen, err)
		return res, nil
	}
	res.Hash = pos.Hash()

	if r.cache != nil {
		rec, ok, err := r.cache.Get(res.Hash)
		if err != nil {
			return res, err
		}
		if ok {
			res.Quiet, res.Noisy, res.Cached = rec.Quiet, rec.Noisy, true
			r.logger.Printf("%016x cached: %d quiet, %d noisy", res.Hash, len(res.Quiet), len(res.Noisy))
			return res, nil
		}
	}

	rec := store.NewRecord(pos)
	res.Quiet, res.Noisy = rec.Quiet, rec.Noisy
	if r.cache != nil {
		if err := r.cache.Put(res.Hash, rec); err != nil {
			return res, err
		}
	}
	r.logger.Printf("%016x generated in %v: %d quiet, %d noisy", res.Hash, time.Since(start), len(res.Quiet), len(res.Noisy))
	return res, nil
}
