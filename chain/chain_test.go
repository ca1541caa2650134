package chain_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/creachadair/rainbow/chain"
)

func mustSpace(t *testing.T, words ...string) *chain.Space {
	t.Helper()
	sp, err := chain.NewSpace(words)
	if err != nil {
		t.Fatalf("NewSpace: unexpected error: %v", err)
	}
	return sp
}

func mustParams(t *testing.T, sp *chain.Space, k int) chain.Params {
	t.Helper()
	p, err := chain.New(sp, k)
	if err != nil {
		t.Fatalf("New: unexpected error: %v", err)
	}
	return p
}

func TestDigest(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, tc := range tests {
		if got := chain.Digest(tc.input); got != tc.want {
			t.Errorf("Digest(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestConfigErrors(t *testing.T) {
	if sp, err := chain.NewSpace(nil); !errors.Is(err, chain.ErrConfig) {
		t.Errorf("NewSpace(nil): got (%v, %v), want %v", sp, err, chain.ErrConfig)
	}
	sp := mustSpace(t, "a")
	for _, k := range []int{0, -1} {
		if _, err := chain.New(sp, k); !errors.Is(err, chain.ErrConfig) {
			t.Errorf("New(k=%d): got %v, want %v", k, err, chain.ErrConfig)
		}
	}
	if _, err := chain.New(nil, 3); !errors.Is(err, chain.ErrConfig) {
		t.Errorf("New(nil space): got %v, want %v", err, chain.ErrConfig)
	}
	var zero chain.Params
	if _, err := zero.Reduce(chain.Digest("x"), 0); !errors.Is(err, chain.ErrConfig) {
		t.Errorf("Reduce on zero Params: got %v, want %v", err, chain.ErrConfig)
	}
}

func TestReduce(t *testing.T) {
	// The digest of "abc" ends in 0x...ad, so its value is 13 mod 16 and odd.
	abc := chain.Digest("abc")

	hex16 := mustSpace(t, "0", "1", "2", "3", "4", "5", "6", "7",
		"8", "9", "a", "b", "c", "d", "e", "f")
	two := mustSpace(t, "even", "odd")
	tests := []struct {
		space *chain.Space
		h     string
		i     int
		want  string
	}{
		{two, abc, 0, "odd"},
		{two, abc, 1, "even"},
		{two, abc, 2, "odd"},
		{hex16, abc, 0, "d"},
		{hex16, abc, 2, "f"},
		{hex16, abc, 3, "0"},
		{hex16, "ff", 1, "0"},
		{hex16, "FF", 0, "f"},
		{hex16, "0", 7, "7"},
	}
	for _, tc := range tests {
		p := mustParams(t, tc.space, 4)
		got, err := p.Reduce(tc.h, tc.i)
		if err != nil {
			t.Errorf("Reduce(%q, %d): unexpected error: %v", tc.h, tc.i, err)
		} else if got != tc.want {
			t.Errorf("Reduce(%q, %d): got %q, want %q", tc.h, tc.i, got, tc.want)
		}
	}
}

func TestReduceInvalid(t *testing.T) {
	p := mustParams(t, mustSpace(t, "a", "b"), 1)
	for _, h := range []string{"", "xyz", "-1f", "12 34"} {
		if got, err := p.Reduce(h, 0); !errors.Is(err, chain.ErrDigest) {
			t.Errorf("Reduce(%q): got (%q, %v), want %v", h, got, err, chain.ErrDigest)
		}
	}
}

func TestReduceInSpace(t *testing.T) {
	words := []string{"apple", "pear", "plum", "quince", "fig", "apple"}
	p := mustParams(t, mustSpace(t, words...), 7)
	for n := range 50 {
		h := chain.Digest(fmt.Sprint(n))
		for i := range p.Length {
			got, err := p.Reduce(h, i)
			if err != nil {
				t.Fatalf("Reduce(%q, %d): unexpected error: %v", h, i, err)
			}
			if !slices.Contains(words, got) {
				t.Errorf("Reduce(%q, %d) = %q, not in the word list", h, i, got)
			}
			if again, _ := p.Reduce(h, i); again != got {
				t.Errorf("Reduce(%q, %d) is not stable: %q, then %q", h, i, got, again)
			}
		}
	}
}

func TestWalk(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo"}
	sp := mustSpace(t, words...)
	for _, k := range []int{1, 2, 5, 17} {
		p := mustParams(t, sp, k)
		for _, start := range words {
			// Compute the expected chain by hand from the exported pieces.
			m := start
			for i := range k {
				var err error
				m, err = p.Reduce(chain.Digest(m), i)
				if err != nil {
					t.Fatalf("Reduce: unexpected error: %v", err)
				}
			}
			if got := p.Walk(start); got != m {
				t.Errorf("Walk(%q, k=%d): got %q, want %q", start, k, got, m)
			}
			if again := p.Walk(start); again != m {
				t.Errorf("Walk(%q, k=%d) is not stable: got %q, want %q", start, k, again, m)
			}
		}
	}
}

func TestSpace(t *testing.T) {
	in := []string{"x", "y", "z"}
	sp := mustSpace(t, in...)
	in[0] = "changed"
	if got := sp.At(0); got != "x" {
		t.Errorf("At(0) after mutating input: got %q, want %q", got, "x")
	}
	w := sp.Words()
	w[1] = "changed"
	if got := sp.At(1); got != "y" {
		t.Errorf("At(1) after mutating Words: got %q, want %q", got, "y")
	}
	var nilSpace *chain.Space
	if n := nilSpace.Len(); n != 0 {
		t.Errorf("nil Len: got %d, want 0", n)
	}
}
