package cmdinfo

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/mapset"
	"github.com/creachadair/rainbow/cmd/rainbow/config"
	"github.com/creachadair/rainbow/rtable"
	"github.com/creachadair/rainbow/wordhash"
)

var Command = &command.C{
	Name: "info",
	Help: `Print statistics about a rainbow table and its word list.

The fingerprints are human-readable checksums. The word list
fingerprint covers the words and the chain length, so two runs that
report the same fingerprint agree on the parameters of the table.`,
	SetFlags: command.Flags(flax.MustBind, &infoFlags),
	Run:      command.Adapt(runInfo),
}

var infoFlags struct {
	Strict bool `flag:"strict,Reject tables containing malformed records"`
}

// runInfo implements the "info" subcommand.
func runInfo(env *command.Env) error {
	p, err := config.LoadParams(env)
	if err != nil {
		return err
	}
	recs, err := config.LoadTable(env, infoFlags.Strict)
	if err != nil {
		return err
	}
	idx := rtable.NewIndex(recs)

	// Chains whose words are not in the word list were probably built from a
	// different list.
	words := p.Space.Words()
	known := mapset.New(words...)
	var foreign int
	for _, r := range idx.Records() {
		if !known.Has(r.Start) || !known.Has(r.End) {
			foreign++
		}
	}

	var tableParts []string
	for _, r := range idx.Records() {
		tableParts = append(tableParts, r.Start, r.End)
	}

	tw := tabwriter.NewWriter(os.Stdout, 4, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "words\t%d\n", p.Space.Len())
	fmt.Fprintf(tw, "chain length\t%d\n", p.Length)
	fmt.Fprintf(tw, "records\t%d\n", len(recs))
	fmt.Fprintf(tw, "chains\t%d\n", idx.Len())
	fmt.Fprintf(tw, "distinct ends\t%d\n", len(idx.Ends()))
	fmt.Fprintf(tw, "merged ends\t%d\n", idx.Merges())
	fmt.Fprintf(tw, "foreign chains\t%d\n", foreign)
	fmt.Fprintf(tw, "word list fingerprint\t%s\n", wordhash.Strings(append(words, "k="+strconv.Itoa(p.Length))...))
	fmt.Fprintf(tw, "table fingerprint\t%s\n", wordhash.Strings(tableParts...))
	return tw.Flush()
}
