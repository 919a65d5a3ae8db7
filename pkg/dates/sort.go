package dates

import (
	"slices"
	"time"
)

// Dated is anything carrying a "happened" timestamp string.
type Dated interface {
	HappenedAt() string
}

type sortKey struct {
	at    time.Time
	valid bool
}

// SortByDateDescending returns a new slice with items ordered newest first.
// The sort is stable: items with equal instants keep their input order.
// Items whose date cannot be parsed go after all valid dates, in input order.
// The input slice is never modified.
func SortByDateDescending[T Dated](items []T) []T {
	type keyed struct {
		item T
		key  sortKey
	}

	entries := make([]keyed, len(items))
	for i, item := range items {
		at, err := ParseHappened(item.HappenedAt())
		entries[i] = keyed{item: item, key: sortKey{at: at, valid: err == nil}}
	}

	slices.SortStableFunc(entries, func(a, b keyed) int {
		return compareDescending(a.key, b.key)
	})

	sorted := make([]T, len(entries))
	for i, e := range entries {
		sorted[i] = e.item
	}
	return sorted
}

func compareDescending(a, b sortKey) int {
	switch {
	case a.valid && !b.valid:
		return -1
	case !a.valid && b.valid:
		return 1
	case !a.valid && !b.valid:
		return 0
	}
	return b.at.Compare(a.at)
}
