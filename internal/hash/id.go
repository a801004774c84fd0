// Package hash provides the hashing primitive used to key field paths by a
// fixed-size integer instead of comparing strings pairwise.
package hash

import "github.com/cespare/xxhash/v2"

// Path computes the xxHash64 of a prototype field path, used by
// internal/fieldset to detect duplicate or missing terminal fields in
// O(1) per lookup instead of O(n) string comparisons.
func Path(path string) uint64 {
	return xxhash.Sum64String(path)
}
