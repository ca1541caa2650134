package cmdcrack

import (
	"bufio"
	"fmt"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/value"
	"github.com/creachadair/rainbow/cmd/rainbow/config"
	"github.com/creachadair/rainbow/crack"
	"github.com/creachadair/rainbow/rtable"
)

var Command = &command.C{
	Name: "crack",
	Help: `Recover plaintexts for SHA-256 digests using a rainbow table.

Each digest in the --digests file is searched for in the table, and
the result is printed to stdout as "digest<TAB>plaintext", in input
order. A digest that could not be recovered is reported as
"<unresolved>".

When several chain steps match a digest, the last match is reported
by default. Use --first-match to report the first one instead.`,
	SetFlags: command.Flags(flax.MustBind, &crackFlags),
	Run:      command.Adapt(runCrack),
}

var crackFlags struct {
	Digests    string `flag:"digests,default=$RAINBOW_DIGESTS,Digest list path (default hashes.txt)"`
	Strict     bool   `flag:"strict,Reject tables containing malformed records"`
	FirstMatch bool   `flag:"first-match,Report the first matching plaintext rather than the last"`
	Normalize  bool   `flag:"normalize,Trim and lowercase digests before matching"`
}

// runCrack implements the "crack" subcommand.
func runCrack(env *command.Env) error {
	set := config.Get(env)
	if crackFlags.Digests != "" {
		set.DigestsPath = crackFlags.Digests
	}

	p, err := config.LoadParams(env)
	if err != nil {
		return err
	}
	targets, err := config.LoadDigests(env)
	if err != nil {
		return err
	}
	recs, err := config.LoadTable(env, crackFlags.Strict)
	if err != nil {
		return err
	}

	c, err := crack.New(p, rtable.NewIndex(recs), &crack.Options{
		Policy:    value.Cond(crackFlags.FirstMatch, crack.FirstMatch, crack.LastMatch),
		Workers:   set.Workers,
		Normalize: crackFlags.Normalize,
		Logger:    set.Logger,
	})
	if err != nil {
		return err
	}
	out, err := c.CrackAll(env.Context(), targets)
	if err != nil {
		return err
	}

	var n int
	w := bufio.NewWriter(os.Stdout)
	for _, o := range out {
		fmt.Fprintln(w, o)
		if o.Resolved {
			n++
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(env, "Cracked %d of %d digests\n", n, len(out))
	return nil
}
