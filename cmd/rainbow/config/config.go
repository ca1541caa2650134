// Package config contains shared configuration settings for rainbow
// subcommands.
package config

import (
	"cmp"
	"errors"
	"fmt"
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/rainbow/chain"
	"github.com/creachadair/rainbow/rtable"
	"github.com/creachadair/rainbow/rtlib"
	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v3"
)

// Default file paths, used when neither a flag nor the settings file
// specifies a value.
const (
	DefaultWords   = "rockyou.txt"
	DefaultDigests = "hashes.txt"
	DefaultTable   = "rainbowtable.txt"
)

// Settings are shared settings used by rainbow subcommands.
type Settings struct {
	WordsPath   string `yaml:"words,omitempty"`
	TablePath   string `yaml:"table,omitempty"`
	DigestsPath string `yaml:"digests,omitempty"`
	Length      int    `yaml:"k,omitempty"`
	Workers     int    `yaml:"workers,omitempty"`
	Verbose     bool   `yaml:"verbose,omitempty"`

	Logger *logrus.Logger `yaml:"-"`
}

// Load reads a YAML settings file from path into s, replacing the fields that
// the file defines.
func (s *Settings) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse settings %q: %w", path, err)
	}
	return nil
}

// Merge updates s with each non-zero field of o.
func (s *Settings) Merge(o Settings) {
	s.WordsPath = cmp.Or(o.WordsPath, s.WordsPath)
	s.TablePath = cmp.Or(o.TablePath, s.TablePath)
	s.DigestsPath = cmp.Or(o.DigestsPath, s.DigestsPath)
	s.Length = cmp.Or(o.Length, s.Length)
	s.Workers = cmp.Or(o.Workers, s.Workers)
	s.Verbose = s.Verbose || o.Verbose
}

// SetDefaults fills in default paths for any that are unset, and creates a
// logger if none is set.
func (s *Settings) SetDefaults() {
	s.WordsPath = cmp.Or(s.WordsPath, DefaultWords)
	s.TablePath = cmp.Or(s.TablePath, DefaultTable)
	s.DigestsPath = cmp.Or(s.DigestsPath, DefaultDigests)
	if s.Logger == nil {
		s.Logger = logrus.New()
		s.Logger.SetOutput(os.Stderr)
		s.Logger.SetLevel(logrus.WarnLevel)
	}
	if s.Verbose {
		s.Logger.SetLevel(logrus.DebugLevel)
	}
}

// Get returns the settings associated with env.
func Get(env *command.Env) *Settings { return env.Config.(*Settings) }

// LoadParams loads the word list and combines it with the chain length to
// produce table parameters.
func LoadParams(env *command.Env) (chain.Params, error) {
	set := Get(env)
	if set.Length == 0 {
		return chain.Params{}, errors.New("no chain length specified (provide -k or set k in the settings file)")
	}
	sp, err := rtlib.LoadWords(set.WordsPath)
	if err != nil {
		return chain.Params{}, err
	}
	fmt.Fprintf(env, "Loaded %d words from %s\n", sp.Len(), set.WordsPath)
	return chain.New(sp, set.Length)
}

// LoadDigests loads the target digests named by the settings.
func LoadDigests(env *command.Env) ([]string, error) {
	set := Get(env)
	ds, err := rtlib.LoadDigests(set.DigestsPath)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(env, "Loaded %d SHA-256 digests from %s\n", len(ds), set.DigestsPath)
	return ds, nil
}

// LoadTable loads the rainbow table named by the settings.
func LoadTable(env *command.Env, strict bool) ([]rtable.Record, error) {
	set := Get(env)
	recs, err := rtlib.LoadTable(set.TablePath, strict)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(env, "Loaded %d chains from %s\n", len(recs), set.TablePath)
	return recs, nil
}

// SaveTable writes recs to the rainbow table named by the settings.
func SaveTable(env *command.Env, recs []rtable.Record) error {
	set := Get(env)
	if err := rtlib.SaveTable(set.TablePath, recs); err != nil {
		return fmt.Errorf("save table: %w", err)
	}
	fmt.Fprintf(env, "Wrote %d chains to %s\n", len(recs), set.TablePath)
	return nil
}
