// Program rainbow builds rainbow tables over a word list and uses them to
// recover plaintexts for SHA-256 digests.
package main

import (
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/rainbow/cmd/rainbow/config"

	"github.com/creachadair/rainbow/cmd/rainbow/internal/cmdcrack"
	"github.com/creachadair/rainbow/cmd/rainbow/internal/cmdgen"
	"github.com/creachadair/rainbow/cmd/rainbow/internal/cmdinfo"
)

func main() {
	command.RunOrFail(newRoot().NewEnv(nil).MergeFlags(true), os.Args[1:])
}

func newRoot() *command.C {
	var flags struct {
		Config  string `flag:"config,default=$RAINBOW_CONFIG,Settings file path (YAML, optional)"`
		Words   string `flag:"words,default=$RAINBOW_WORDS,Word list path (default rockyou.txt)"`
		Table   string `flag:"table,default=$RAINBOW_TABLE,Rainbow table path (default rainbowtable.txt)"`
		Length  int    `flag:"k,Chain length (required)"`
		Workers int    `flag:"workers,Number of concurrent workers (default: number of CPUs)"`
		Verbose bool   `flag:"v,Enable verbose logging"`
	}
	return &command.C{
		Name:  command.ProgramName(),
		Usage: "<mode> [options]",
		Help: `Build and search rainbow tables for SHA-256 digests.

A rainbow table is a list of hash chains over a word list. Each chain
starts from a word, and alternately hashes and reduces it back into
the word list k times. Only the first and last words of each chain
are stored.

Use "generate" to build a table and "crack" to search it. The same
word list and chain length (-k) must be used for both.`,

		SetFlags: command.Flags(flax.MustBind, &flags),

		Init: func(env *command.Env) error {
			set := new(config.Settings)
			if flags.Config != "" {
				if err := set.Load(flags.Config); err != nil {
					return err
				}
			}
			set.Merge(config.Settings{
				WordsPath: flags.Words,
				TablePath: flags.Table,
				Length:    flags.Length,
				Workers:   flags.Workers,
				Verbose:   flags.Verbose,
			})
			set.SetDefaults()
			env.Config = set
			return nil
		},

		Run: func(env *command.Env) error {
			if len(env.Args) == 0 {
				return env.Usagef("a mode is required (generate or crack)")
			}
			return env.Usagef("invalid mode %q", env.Args[0])
		},

		Commands: []*command.C{
			cmdgen.Command,
			cmdcrack.Command,
			cmdinfo.Command,
			command.HelpCommand([]command.HelpTopic{{
				Name: "formats",
				Help: `Formats of the files read and written by rainbow.

The word list has one candidate word per line. Surrounding whitespace
is removed and invalid UTF-8 is dropped. Blank lines count as words.

The digest file has one hex-encoded SHA-256 digest per line. Digests
are matched exactly against lowercase hex unless --normalize is set.

The table has one chain per line, as "start<TAB>end". Lines without
exactly two fields are skipped, or rejected with --strict.`,
			}, {
				Name: "settings",
				Help: `Syntax of the settings file.

The settings file (--config or $RAINBOW_CONFIG) is YAML, for example:

  words: /usr/share/wordlists/rockyou.txt
  table: rockyou-k1000.txt
  digests: hashes.txt
  k: 1000
  workers: 8

Flags given on the command line take precedence over the file.`,
			}}),
			command.VersionCommand(),
		},
	}
}
