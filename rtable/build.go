package rtable

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/creachadair/rainbow/chain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// A Builder constructs the chains of a rainbow table.
type Builder struct {
	// Params are the parameters of the table to build (required).
	Params chain.Params

	// Workers bounds the number of chains computed concurrently.
	// If zero, runtime.NumCPU() is used.
	Workers int

	// Logger, if set, receives progress messages at debug level.
	Logger *logrus.Logger
}

// Sample selects n distinct positions of the word list uniformly at random
// from rng, and returns the words at those positions.  It reports an error
// wrapping chain.ErrConfig if n < 1 or n exceeds the size of the word list.
func (b Builder) Sample(n int, rng *rand.Rand) ([]string, error) {
	sp := b.Params.Space
	if n < 1 || n > sp.Len() {
		return nil, fmt.Errorf("%w: cannot sample %d chains from %d words", chain.ErrConfig, n, sp.Len())
	}

	// A partial Fisher-Yates shuffle over positions, tracking only the
	// positions that have been displaced so that large word lists are not
	// copied.
	moved := make(map[int]int)
	at := func(i int) int {
		if v, ok := moved[i]; ok {
			return v
		}
		return i
	}
	out := make([]string, n)
	for i := range n {
		j := i + rng.IntN(sp.Len()-i)
		vi, vj := at(i), at(j)
		moved[j] = vi
		out[i] = sp.At(vj)
	}
	return out, nil
}

// Build computes the chain for each of the given start words, and returns
// the resulting records in the same order as starts.  Build stops early and
// reports an error if ctx ends before all chains are complete.
func (b Builder) Build(ctx context.Context, starts []string) ([]Record, error) {
	if _, err := chain.New(b.Params.Space, b.Params.Length); err != nil {
		return nil, err
	}
	log := b.logger()
	log.Debugf("Building %d chains of length %d", len(starts), b.Params.Length)

	out := make([]Record, len(starts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers())
	for i, s := range starts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Record{Start: s, End: b.Params.Walk(s)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("build chains: %w", err)
	}
	log.Debugf("Built %d chains", len(out))
	return out, nil
}

// Generate samples n start words using rng and builds their chains.
func (b Builder) Generate(ctx context.Context, n int, rng *rand.Rand) ([]Record, error) {
	starts, err := b.Sample(n, rng)
	if err != nil {
		return nil, err
	}
	return b.Build(ctx, starts)
}

func (b Builder) workers() int {
	if b.Workers > 0 {
		return b.Workers
	}
	return runtime.NumCPU()
}

func (b Builder) logger() *logrus.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return defaultLogger
}

// defaultLogger is used when no logger is configured.
var defaultLogger = func() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return log
}()
