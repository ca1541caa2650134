package rtable

// An Index is a read-only lookup structure over the records of a table.
// It maps each start word to its end word, and each end word to the start
// words of all chains that end there.
type Index struct {
	starts []string          // distinct start words, in order of first appearance
	fwd    map[string]string // start → end
	rev    Multimap[string, string]
}

// NewIndex constructs an index over recs.  If a start word occurs more than
// once, the last record for it wins but it keeps the position of its first
// appearance.  The reverse mapping lists start words in that same order.
func NewIndex(recs []Record) *Index {
	idx := &Index{fwd: make(map[string]string, len(recs))}
	for _, r := range recs {
		if _, ok := idx.fwd[r.Start]; !ok {
			idx.starts = append(idx.starts, r.Start)
		}
		idx.fwd[r.Start] = r.End
	}
	for _, s := range idx.starts {
		idx.rev.Add(idx.fwd[s], s)
	}
	return idx
}

// Len reports the number of distinct chains in the index.
func (x *Index) Len() int { return len(x.starts) }

// Lookup reports the end word of the chain beginning at start, and whether
// there is such a chain.
func (x *Index) Lookup(start string) (string, bool) {
	end, ok := x.fwd[start]
	return end, ok
}

// Starts returns the start words of all chains ending at end, in table order.
// The caller must not modify the result.
func (x *Index) Starts(end string) []string { return x.rev.Get(end) }

// HasEnd reports whether any chain ends at end.
func (x *Index) HasEnd(end string) bool { return x.rev.Has(end) }

// Ends returns the distinct end words of the index in table order.
func (x *Index) Ends() []string { return x.rev.Keys() }

// Records returns the distinct chains of the index in table order.
func (x *Index) Records() []Record {
	out := make([]Record, len(x.starts))
	for i, s := range x.starts {
		out[i] = Record{Start: s, End: x.fwd[s]}
	}
	return out
}

// Merges reports the number of end words reached by more than one chain.
func (x *Index) Merges() int {
	var n int
	for _, end := range x.rev.Keys() {
		if len(x.rev.Get(end)) > 1 {
			n++
		}
	}
	return n
}
