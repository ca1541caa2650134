package rtable

// A Multimap associates each key with an ordered list of values.  Keys and
// the values of each key are reported in insertion order.  The zero value is
// ready for use.
type Multimap[K comparable, V any] struct {
	keys []K
	vals map[K][]V
}

// Add appends v to the values of key.
func (m *Multimap[K, V]) Add(key K, v V) {
	if m.vals == nil {
		m.vals = make(map[K][]V)
	}
	old, ok := m.vals[key]
	if !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = append(old, v)
}

// Get returns the values of key in insertion order, or nil if key is not
// present. The caller must not modify the result.
func (m *Multimap[K, V]) Get(key K) []V { return m.vals[key] }

// Has reports whether key has at least one value.
func (m *Multimap[K, V]) Has(key K) bool {
	_, ok := m.vals[key]
	return ok
}

// Len reports the number of distinct keys in m.
func (m *Multimap[K, V]) Len() int { return len(m.keys) }

// Keys returns the keys of m in order of first insertion. The caller must not
// modify the result.
func (m *Multimap[K, V]) Keys() []K { return m.keys }
