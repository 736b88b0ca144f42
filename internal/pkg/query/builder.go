package query

import (
	"slices"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Builder selects, orders and truncates an in-memory slice of records.
// Builders are immutable: every method returns a new Builder, and the source
// slice is never reordered.
type Builder[T any] struct {
	source       []T
	whereClauses []Condition[T]
	orderBy      func(a, b T) int
	orderByDir   Direction
	limitVal     int
}

// From creates a new Builder over records.
func From[T any](records []T) *Builder[T] {
	return &Builder[T]{
		source:       records,
		whereClauses: []Condition[T]{},
	}
}

// Where adds a condition.
// Multiple calls are combined with AND logic.
func (b *Builder[T]) Where(condition Condition[T]) *Builder[T] {
	newBuilder := b.clone()
	newBuilder.whereClauses = append(newBuilder.whereClauses, condition)
	return newBuilder
}

// OrderBy sorts the result with cmp. The sort is stable, so records that
// compare equal keep their source order in both directions.
func (b *Builder[T]) OrderBy(cmp func(a, b T) int, direction Direction) *Builder[T] {
	newBuilder := b.clone()
	newBuilder.orderBy = cmp
	newBuilder.orderByDir = direction
	return newBuilder
}

// Limit sets the maximum number of records to return. Zero means no limit.
func (b *Builder[T]) Limit(limit int) *Builder[T] {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// All evaluates the query. The result is a fresh slice.
func (b *Builder[T]) All() []T {
	out := make([]T, 0, len(b.source))
	for _, rec := range b.source {
		if b.matches(rec) {
			out = append(out, rec)
		}
	}

	if b.orderBy != nil {
		cmp := b.orderBy
		if b.orderByDir == Desc {
			cmp = func(x, y T) int { return b.orderBy(y, x) }
		}
		slices.SortStableFunc(out, cmp)
	}

	if b.limitVal > 0 && b.limitVal < len(out) {
		out = out[:b.limitVal]
	}

	return out
}

func (b *Builder[T]) matches(rec T) bool {
	for _, cond := range b.whereClauses {
		if !cond(rec) {
			return false
		}
	}
	return true
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder[T]) clone() *Builder[T] {
	newBuilder := &Builder[T]{
		source:       b.source,
		whereClauses: make([]Condition[T], len(b.whereClauses)),
		orderBy:      b.orderBy,
		orderByDir:   b.orderByDir,
		limitVal:     b.limitVal,
	}
	copy(newBuilder.whereClauses, b.whereClauses)
	return newBuilder
}
