package query

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownField is returned when sorting by a field the items do not expose
var ErrUnknownField = errors.New("unknown sort field")

// Recency tiers derived from relative-time labels
const (
	TierHours = iota
	TierDays
	TierWeeks
	TierOther
)

// RecencyRank maps a relative-time label to a coarse tier by literal substring.
// "Yesterday" contains "day" and ranks TierDays; "Just now" falls through to TierOther.
func RecencyRank(label string) int {
	switch {
	case strings.Contains(label, "hour"):
		return TierHours
	case strings.Contains(label, "day"):
		return TierDays
	case strings.Contains(label, "week"):
		return TierWeeks
	default:
		return TierOther
	}
}

// Recent is an item carrying a relative-time label
type Recent interface {
	RecencyLabel() string
}

// SortByRecency orders items by recency tier. Ties keep their input order.
func SortByRecency[T Recent](items []T) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(RecencyRank(a.RecencyLabel()), RecencyRank(b.RecencyLabel()))
	})
	return out
}

// Latest returns the n most recent items
func Latest[T Recent](items []T, n int) []T {
	sorted := SortByRecency(items)
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Direction is a sort direction
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns the short name of the direction
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// ParseDirection parses "asc" or "desc"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("invalid sort direction %q", s)
}

// Ranked is an item exposing numeric fields such as accessCount or progress
type Ranked interface {
	NumericField(name string) (int, bool)
}

// SortByField orders items by a numeric field. Ties keep their input order.
func SortByField[T Ranked](items []T, field string, dir Direction) ([]T, error) {
	for _, item := range items {
		if _, ok := item.NumericField(field); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		av, _ := a.NumericField(field)
		bv, _ := b.NumericField(field)
		if dir == Descending {
			return cmp.Compare(bv, av)
		}
		return cmp.Compare(av, bv)
	})
	return out, nil
}

// Named is an item with a display name
type Named interface {
	DisplayName() string
}

// SortByName orders items by case-folded name. Ties keep their input order.
func SortByName[T Named](items []T, dir Direction) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		c := strings.Compare(fold(a.DisplayName()), fold(b.DisplayName()))
		if dir == Descending {
			return -c
		}
		return c
	})
	return out
}
