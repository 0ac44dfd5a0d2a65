// Package store holds in-memory collections with an immutable update discipline.
// Every mutation returns a new Collection; the receiver is never modified.
package store

import (
	"slices"

	"github.com/google/uuid"
)

// Entity is a record with a stable id
type Entity[T any] interface {
	EntityID() string
	WithID(id string) T
}

// IDFunc generates ids for records added without one
type IDFunc func() string

// NewID returns a time-ordered UUIDv7, falling back to a random v4
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Collection is an ordered, immutable set of entities keyed by id
type Collection[T Entity[T]] struct {
	items []T
	newID IDFunc
}

// Option configures a collection
type Option func(*options)

type options struct {
	newID IDFunc
}

// WithIDFunc overrides id generation
func WithIDFunc(fn IDFunc) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// New creates a collection from an initial fixture set.
// Items without an id are assigned one; later duplicates of an id are dropped.
func New[T Entity[T]](items []T, opts ...Option) Collection[T] {
	o := options{newID: NewID}
	for _, opt := range opts {
		opt(&o)
	}

	c := Collection[T]{newID: o.newID}
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.EntityID() == "" {
			item = item.WithID(c.newID())
		}
		if seen[item.EntityID()] {
			continue
		}
		seen[item.EntityID()] = true
		c.items = append(c.items, item)
	}
	return c
}

// List returns the items in insertion order
func (c Collection[T]) List() []T {
	return slices.Clone(c.items)
}

// Len returns the number of items
func (c Collection[T]) Len() int {
	return len(c.items)
}

// Get returns the item with the given id
func (c Collection[T]) Get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Contains returns true if an item with the id exists
func (c Collection[T]) Contains(id string) bool {
	return c.index(id) >= 0
}

// Add appends an item, assigning an id if it has none.
// An item whose id already exists replaces nothing and is ignored.
func (c Collection[T]) Add(item T) Collection[T] {
	if item.EntityID() == "" {
		item = item.WithID(c.idFunc()())
	}
	if c.Contains(item.EntityID()) {
		return c
	}
	out := c.with(len(c.items) + 1)
	out.items = append(out.items, c.items...)
	out.items = append(out.items, item)
	return out
}

// Update replaces the item with fn(item). Unknown ids are a no-op.
// The id is kept even if fn changes it.
func (c Collection[T]) Update(id string, fn func(T) T) Collection[T] {
	i := c.index(id)
	if i < 0 {
		return c
	}
	out := c.with(len(c.items))
	out.items = append(out.items, c.items...)
	out.items[i] = fn(c.items[i]).WithID(id)
	return out
}

// Remove drops the item with the given id. Unknown ids are a no-op.
func (c Collection[T]) Remove(id string) Collection[T] {
	i := c.index(id)
	if i < 0 {
		return c
	}
	out := c.with(len(c.items) - 1)
	out.items = append(out.items, c.items[:i]...)
	out.items = append(out.items, c.items[i+1:]...)
	return out
}

func (c Collection[T]) index(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.EntityID() == id
	})
}

func (c Collection[T]) idFunc() IDFunc {
	if c.newID == nil {
		return NewID
	}
	return c.newID
}

func (c Collection[T]) with(capacity int) Collection[T] {
	return Collection[T]{
		items: make([]T, 0, capacity),
		newID: c.newID,
	}
}
