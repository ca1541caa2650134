package cmdgen

import (
	"math/rand/v2"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/rainbow/cmd/rainbow/config"
	"github.com/creachadair/rainbow/rtable"
)

var Command = &command.C{
	Name: "generate",
	Help: `Generate a rainbow table.

Start words for --chains chains are sampled without replacement from
the word list, and each chain is walked for -k steps. The resulting
table is written to the --table path, replacing any existing file.

Use --seed to make the choice of start words reproducible.`,
	SetFlags: command.Flags(flax.MustBind, &genFlags),
	Run:      command.Adapt(runGenerate),
}

var genFlags struct {
	Chains int    `flag:"chains,Number of chains to generate (required)"`
	Seed   uint64 `flag:"seed,Random seed for choosing start words (0 means random)"`
}

// runGenerate implements the "generate" subcommand.
func runGenerate(env *command.Env) error {
	if genFlags.Chains <= 0 {
		return env.Usagef("--chains must be positive")
	}
	set := config.Get(env)
	p, err := config.LoadParams(env)
	if err != nil {
		return err
	}

	seed := genFlags.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	set.Logger.Debugf("Sampling start words with seed %d", seed)

	b := rtable.Builder{Params: p, Workers: set.Workers, Logger: set.Logger}
	recs, err := b.Generate(env.Context(), genFlags.Chains, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return err
	}
	return config.SaveTable(env, recs)
}
