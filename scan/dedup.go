// Insertion-ordered dedup set.
// Listings are reported once each, in document order, keyed by identifier
// (falling back to the resolved URL for tiles without one).
package scan

// dedup is an insertion-ordered set.
type dedup struct {
	keys []string
	seen map[string]bool
}

func newDedup() *dedup {
	return &dedup{seen: map[string]bool{}}
}

// Add records key and reports whether it was new.
func (d *dedup) Add(key string) bool {
	if d.seen[key] {
		return false
	}
	d.seen[key] = true
	d.keys = append(d.keys, key)
	return true
}
