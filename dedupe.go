package probset

import "slices"

// Dedupe returns records with content duplicates removed.
// Two records are duplicates when they are equal ignoring the source
// field. The first occurrence is kept together with its source, and the
// relative order of kept records is preserved.
func Dedupe(records []Record) []Record {
	out := make([]Record, 0, len(records))

	// Track kept records by content hash; buckets are confirmed with
	// ContentEqual so a collision never drops a distinct record.
	seen := make(map[uint64][]int)

	for _, r := range records {
		h := r.ContentHash()
		if slices.ContainsFunc(seen[h], func(i int) bool {
			return out[i].ContentEqual(r)
		}) {
			continue
		}
		seen[h] = append(seen[h], len(out))
		out = append(out, r)
	}

	return out
}
