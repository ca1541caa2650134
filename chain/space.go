package chain

import (
	"fmt"
	"slices"
)

// A Space is an immutable ordered list of candidate words.
// A nil *Space is valid and empty.
type Space struct {
	words []string
}

// NewSpace constructs a Space from a copy of words. It reports an error
// wrapping ErrConfig if words is empty.
func NewSpace(words []string) (*Space, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: empty word list", ErrConfig)
	}
	return &Space{words: slices.Clone(words)}, nil
}

// Len reports the number of words in s.
func (s *Space) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// At returns the word at offset i of s, 0 ≤ i < s.Len().
func (s *Space) At(i int) string { return s.words[i] }

// Words returns a copy of the words in s.
func (s *Space) Words() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.words)
}
