// Package rtlib is a support library for the rainbow tool.  It reads and
// writes the word list, digest list, and table files.
package rtlib

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/mds/mstr"
	"github.com/creachadair/mds/slice"
	"github.com/creachadair/rainbow/chain"
	"github.com/creachadair/rainbow/rtable"
)

// ReadWords reads a word list from r, one word per line.  Surrounding
// whitespace is removed from each word, and byte sequences that are not valid
// UTF-8 are dropped.  Blank lines are kept as empty words, so that positions
// in the list do not depend on the content of the lines.
func ReadWords(r io.Reader) (*chain.Space, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return chain.NewSpace(lines)
}

// LoadWords reads a word list from the file at path.
func LoadWords(path string) (*chain.Space, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	sp, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return sp, nil
}

// ReadDigests reads target digests from r, one per line.  Surrounding
// whitespace is removed and blank lines are skipped. The digests are not
// otherwise checked.
func ReadDigests(r io.Reader) ([]string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read digests: %w", err)
	}
	return slice.Partition(lines, func(s string) bool { return s != "" }), nil
}

// LoadDigests reads target digests from the file at path.
func LoadDigests(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open digests: %w", err)
	}
	defer f.Close()
	return ReadDigests(f)
}

// LoadTable reads the records of a rainbow table from the file at path.
// If strict is true, a malformed record is reported as an error; otherwise
// malformed records are skipped.
func LoadTable(path string, strict bool) ([]rtable.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()
	recs, err := rtable.Read(f, strict)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", path, err)
	}
	return recs, nil
}

// SaveTable writes recs to a table file at path.  The file is replaced
// atomically, so a failed write does not leave a partial table.
func SaveTable(path string, recs []rtable.Record) error {
	return atomicfile.Tx(path, 0644, func(w io.Writer) error {
		return rtable.Write(w, recs)
	})
}

func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := mstr.Lines(strings.ToValidUTF8(string(data), ""))
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}
