// Package crack recovers plaintexts for SHA-256 digests by searching a
// rainbow table.
//
// Each target digest is processed in two phases.  First, for every chain
// position i from k-1 down to 0, the target is reduced at position i and, if
// the result is the end word of any chain in the table, the start words of
// those chains become candidates.  Note that only one reduction is applied per
// position rather than a full walk to the end of the chain, so a target whose
// chain would only be found by walking forward is not collected.
//
// Second, each candidate chain is re-walked from its start and every digest
// computed along the way is compared to the target.  When they are equal, the
// word produced by reducing that digest is recorded as the result.  The
// [Policy] selects which of several matches is reported.
package crack

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/creachadair/rainbow/chain"
	"github.com/creachadair/rainbow/rtable"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Policy determines which result is reported when more than one step of the
// candidate chains matches a target digest.
type Policy int

const (
	// LastMatch reports the last match found, scanning candidates in the
	// order they were collected and steps in chain order.
	LastMatch Policy = iota

	// FirstMatch reports the first match found, in the same scan order.
	FirstMatch
)

func (p Policy) String() string {
	switch p {
	case LastMatch:
		return "last-match"
	case FirstMatch:
		return "first-match"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Unresolved is the printed form of a digest that could not be cracked.
const Unresolved = "<unresolved>"

// An Outcome is the result of cracking one target digest.
type Outcome struct {
	Digest    string // the target digest, as given
	Plaintext string // the recovered word, if Resolved
	Resolved  bool   // whether a match was found
}

// String renders o as "digest<TAB>plaintext", using Unresolved if o was not
// resolved.
func (o Outcome) String() string {
	if !o.Resolved {
		return o.Digest + "\t" + Unresolved
	}
	return o.Digest + "\t" + o.Plaintext
}

// Options are optional settings for a Cracker. A nil *Options provides
// default values as described.
type Options struct {
	// Policy selects among multiple matches (default LastMatch).
	Policy Policy

	// Workers bounds the number of targets processed concurrently by CrackAll.
	// If zero, runtime.NumCPU() is used.
	Workers int

	// Normalize, if true, trims whitespace from target digests and converts
	// them to lower case before searching.  Otherwise targets are compared
	// byte-for-byte with computed lowercase hex digests.
	Normalize bool

	// Logger, if set, receives diagnostics. Per-target details are logged at
	// debug level.
	Logger *logrus.Logger
}

func (o *Options) policy() Policy {
	if o == nil {
		return LastMatch
	}
	return o.Policy
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

func (o *Options) normalize() bool { return o != nil && o.Normalize }

func (o *Options) logger() *logrus.Logger {
	if o == nil || o.Logger == nil {
		return defaultLogger
	}
	return o.Logger
}

// defaultLogger is used when no logger is configured.
var defaultLogger = func() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return log
}()

// A Cracker searches a rainbow table for the plaintexts of target digests.
// A Cracker is safe for concurrent use by multiple goroutines.
type Cracker struct {
	params    chain.Params
	index     *rtable.Index
	policy    Policy
	workers   int
	normalize bool
	log       *logrus.Logger
}

// New constructs a Cracker over the given table index. The params must be the
// same as those used to build the table.
func New(p chain.Params, idx *rtable.Index, opts *Options) (*Cracker, error) {
	if _, err := chain.New(p.Space, p.Length); err != nil {
		return nil, err
	}
	if idx == nil {
		return nil, errors.New("no table index provided")
	}
	return &Cracker{
		params:    p,
		index:     idx,
		policy:    opts.policy(),
		workers:   opts.workers(),
		normalize: opts.normalize(),
		log:       opts.logger(),
	}, nil
}

// Candidates returns the start words of all chains that may contain target,
// in collection order.  A start word may be reported more than once.
func (c *Cracker) Candidates(target string) ([]string, error) {
	var out []string
	for i := c.params.Length - 1; i >= 0; i-- {
		m, err := c.params.Reduce(target, i)
		if err != nil {
			return nil, err
		}
		out = append(out, c.index.Starts(m)...)
	}
	return out, nil
}

// Verify re-walks the chain of each start word in order and reports the word
// produced at a step whose digest equals target, chosen by the policy of c.
// It reports false if no step of any chain matched.
func (c *Cracker) Verify(target string, starts []string) (string, bool) {
	var guess string
	var found bool
	for _, s := range starts {
		m := chain.Digest(s)
		for j := range c.params.Length {
			h := chain.Digest(m)
			m, _ = c.params.Reduce(h, j) // h is always valid hex
			if h != target {
				continue
			}
			guess, found = m, true
			if c.policy == FirstMatch {
				return guess, true
			}
		}
	}
	return guess, found
}

// Crack processes a single target digest.  It reports an error only if ctx
// ends before the target is complete; a target that cannot be searched, or
// that does not match, is reported as an unresolved Outcome.
func (c *Cracker) Crack(ctx context.Context, target string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	out := Outcome{Digest: target}
	if c.normalize {
		target = strings.ToLower(strings.TrimSpace(target))
	}

	starts, err := c.Candidates(target)
	if err != nil {
		c.log.Warnf("Skipping target %q: %v", out.Digest, err)
		return out, nil
	}
	c.log.Debugf("Target %q: %d candidate chains", out.Digest, len(starts))

	// Verify candidates one at a time so a long list can be interrupted.
	var found bool
	for i := range starts {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if m, ok := c.Verify(target, starts[i:i+1]); ok {
			out.Plaintext, found = m, true
			if c.policy == FirstMatch {
				break
			}
		}
	}
	out.Resolved = found
	return out, nil
}

// CrackAll processes each of the target digests, and returns their outcomes
// in the same order as targets.  Targets are processed concurrently.
func (c *Cracker) CrackAll(ctx context.Context, targets []string) ([]Outcome, error) {
	out := make([]Outcome, len(targets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, t := range targets {
		g.Go(func() error {
			o, err := c.Crack(ctx, t)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("crack digests: %w", err)
	}
	var n int
	for _, o := range out {
		if o.Resolved {
			n++
		}
	}
	c.log.Debugf("Resolved %d of %d digests", n, len(out))
	return out, nil
}
