// Package fieldset tracks the set of terminal field paths a buffer sequence
// covers, so construction and SetBuffers can detect duplicates or missing
// fields in O(1) per path instead of comparing every pair of paths.
//
// Adapted from the teacher module's internal/collision.Tracker, which
// tracked metric-name hash collisions; here the same hash-keyed-set shape
// tracks prototype field paths instead of metric names.
package fieldset

import (
	"fmt"

	"github.com/brineflow/cvector/errs"
	"github.com/brineflow/cvector/internal/hash"
)

// Tracker records which field paths have been seen while validating a
// buffer sequence against a prototype.
type Tracker struct {
	seen map[uint64]string
}

// NewTracker creates an empty path tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]string)}
}

// Add records path, returning ErrBuffersNotCompatible if the same path (or
// a colliding hash with a different path, treated the same way since the
// writer must not silently conflate two distinct fields) was already added.
func (t *Tracker) Add(path string) error {
	h := hash.Path(path)
	if existing, ok := t.seen[h]; ok {
		return fmt.Errorf("%w: duplicate field path %q", errs.ErrBuffersNotCompatible, existing)
	}
	t.seen[h] = path

	return nil
}

// Count returns the number of distinct paths tracked so far.
func (t *Tracker) Count() int {
	return len(t.seen)
}

// Reset clears the tracker for reuse.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
}
