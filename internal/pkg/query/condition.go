package query

import "time"

// Condition is a predicate over a record.
type Condition[T any] func(rec T) bool

// Eq matches records whose field equals value.
// Example: Eq(func(s Sale) string { return s.CustomerID }, "doe")
func Eq[T any, V comparable](field func(T) V, value V) Condition[T] {
	return func(rec T) bool {
		return field(rec) == value
	}
}

// Between matches records whose time field lies in [start, end], both ends
// inclusive.
func Between[T any](field func(T) time.Time, start, end time.Time) Condition[T] {
	return func(rec T) bool {
		ts := field(rec)
		return !ts.Before(start) && !ts.After(end)
	}
}

// IsNotNull matches records whose pointer field is set.
func IsNotNull[T any, V any](field func(T) *V) Condition[T] {
	return func(rec T) bool {
		return field(rec) != nil
	}
}
