// Package chain implements the hash chain arithmetic used to build and search
// a rainbow table over a fixed word list.
//
// A chain of length k starting at word m0 is computed by alternately applying
// the digest function H and a position-dependent reduction R:
//
//	m[i+1] = R(H(m[i]), i)   for i in 0..k-1
//
// The reduction R(h, i) interprets the hex digest h as a non-negative integer
// v and selects the word at position (v + i) mod N of the word list.  Adding
// the chain position gives every column of the table its own reduction, so
// that two chains only merge if they collide at the same position.
package chain

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	sha256 "github.com/minio/sha256-simd"
)

// ErrConfig is reported for invalid table parameters, such as an empty word
// list or a chain length less than 1.
var ErrConfig = errors.New("invalid configuration")

// ErrDigest is reported by Reduce when its input is not a hexadecimal digest.
var ErrDigest = errors.New("invalid digest")

// Digest returns the SHA-256 digest of m as a lowercase hex string.
func Digest(m string) string {
	sum := sha256.Sum256([]byte(m))
	return hex.EncodeToString(sum[:])
}

// Params are the fixed parameters shared by every chain of a table.
// The zero value is not valid; use New.
type Params struct {
	Space  *Space // the candidate words
	Length int    // the number of steps per chain (k)
}

// New returns Params for chains of length k over sp. It reports an error
// wrapping ErrConfig if sp is empty or k < 1.
func New(sp *Space, k int) (Params, error) {
	if sp.Len() == 0 {
		return Params{}, fmt.Errorf("%w: empty word list", ErrConfig)
	} else if k < 1 {
		return Params{}, fmt.Errorf("%w: chain length %d < 1", ErrConfig, k)
	}
	return Params{Space: sp, Length: k}, nil
}

// Reduce maps the hex digest h at chain position i to a word of the space.
func (p Params) Reduce(h string, i int) (string, error) {
	if p.Space.Len() == 0 {
		return "", fmt.Errorf("%w: empty word list", ErrConfig)
	}
	v, ok := new(big.Int).SetString(h, 16)
	if !ok || v.Sign() < 0 {
		return "", fmt.Errorf("%w: %q", ErrDigest, h)
	}
	return p.Space.At(p.index(v, i)), nil
}

// index computes (v + i) mod N.
func (p Params) index(v *big.Int, i int) int {
	v.Add(v, big.NewInt(int64(i)))
	return int(v.Mod(v, big.NewInt(int64(p.Space.Len()))).Int64())
}

// reduceSum is Reduce for a raw digest, skipping the hex round trip.
func (p Params) reduceSum(sum []byte, i int) string {
	return p.Space.At(p.index(new(big.Int).SetBytes(sum), i))
}

// Walk computes the end word of the chain beginning at start.
func (p Params) Walk(start string) string {
	m := start
	for i := range p.Length {
		sum := sha256.Sum256([]byte(m))
		m = p.reduceSum(sum[:], i)
	}
	return m
}
