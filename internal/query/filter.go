// Package query filters and orders in-memory item snapshots.
// Functions here never modify their input.
package query

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dori/weezy/internal/model"
)

// All is the sentinel that disables a status or source filter
const All = "all"

// Searchable is an item the filter engine can match
type Searchable interface {
	// SearchText returns the fields concatenated for free-text search
	SearchText() []string
	StatusKey() string
	SourceKey() string
}

// Options holds the predicates of one filter pass. Active predicates are ANDed.
type Options struct {
	Query  string
	Status string
	Source string
}

// Active returns true if any predicate would exclude something
func (o Options) Active() bool {
	return strings.TrimSpace(o.Query) != "" || enabled(o.Status) || enabled(o.Source)
}

// String describes the active predicates for status lines
func (o Options) String() string {
	var parts []string
	if enabled(o.Status) {
		parts = append(parts, fmt.Sprintf("Status: %s", o.Status))
	}
	if enabled(o.Source) {
		parts = append(parts, fmt.Sprintf("Source: %s", o.Source))
	}
	if q := strings.TrimSpace(o.Query); q != "" {
		parts = append(parts, fmt.Sprintf("Text: %s", q))
	}
	if len(parts) == 0 {
		return "No filters"
	}
	return "Filters: " + strings.Join(parts, " | ")
}

func enabled(predicate string) bool {
	return predicate != "" && predicate != All
}

// fold lower-cases with Unicode case folding
func fold(s string) string {
	return cases.Fold().String(s)
}

// Matches reports whether a single item passes every active predicate
func Matches[T Searchable](item T, opts Options) bool {
	return newMatcher(opts).match(item)
}

// Filter returns the items passing every active predicate, in input order.
// The result is always a fresh slice, empty rather than nil.
func Filter[T Searchable](items []T, opts Options) []T {
	m := newMatcher(opts)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if m.match(item) {
			out = append(out, item)
		}
	}
	return out
}

type matcher struct {
	query  string
	status string
	source string
}

func newMatcher(opts Options) matcher {
	var m matcher
	if strings.TrimSpace(opts.Query) != "" {
		m.query = fold(opts.Query)
	}
	if enabled(opts.Status) {
		m.status = opts.Status
	}
	if enabled(opts.Source) {
		m.source = opts.Source
	}
	return m
}

func (m matcher) match(item Searchable) bool {
	if m.status != "" && item.StatusKey() != m.status {
		return false
	}
	if m.source != "" && item.SourceKey() != m.source {
		return false
	}
	if m.query == "" {
		return true
	}
	haystack := fold(strings.Join(item.SearchText(), " "))
	return strings.Contains(haystack, m.query)
}

// GroupByStatus buckets tasks into board columns, keeping input order in each column
func GroupByStatus(tasks []model.Task) map[model.Status][]model.Task {
	columns := make(map[model.Status][]model.Task, len(model.Statuses))
	for _, s := range model.Statuses {
		columns[s] = []model.Task{}
	}
	for _, t := range tasks {
		columns[t.Status] = append(columns[t.Status], t)
	}
	return columns
}
