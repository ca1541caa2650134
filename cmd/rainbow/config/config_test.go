package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/creachadair/rainbow/cmd/rainbow/config"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
)

func TestSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	const input = `# Test settings
words: /data/words.txt
k: 1000
workers: 3
`
	if err := os.WriteFile(path, []byte(input), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var set config.Settings
	if err := set.Load(path); err != nil {
		t.Fatalf("Load: unexpected error: %v", err)
	}

	// Flags override the file where they are set.
	set.Merge(config.Settings{TablePath: "my.table", Length: 50, Verbose: true})
	set.SetDefaults()

	want := config.Settings{
		WordsPath:   "/data/words.txt",
		TablePath:   "my.table",
		DigestsPath: config.DefaultDigests,
		Length:      50,
		Workers:     3,
		Verbose:     true,
	}
	opt := cmpopts.IgnoreFields(config.Settings{}, "Logger")
	if diff := gocmp.Diff(set, want, opt); diff != "" {
		t.Errorf("Settings (-got, +want):\n%s", diff)
	}
	if set.Logger == nil {
		t.Fatal("SetDefaults did not create a logger")
	} else if lvl := set.Logger.GetLevel(); lvl != logrus.DebugLevel {
		t.Errorf("Logger level: got %v, want %v", lvl, logrus.DebugLevel)
	}
}

func TestSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	var set config.Settings
	if err := set.Load(filepath.Join(dir, "nonesuch.yaml")); err == nil {
		t.Error("Load missing file: got nil, want error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("k: [not a number\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := set.Load(bad); err == nil {
		t.Error("Load malformed file: got nil, want error")
	}
}
