package x11

import (
	"iter"
	"unsafe"
)

// Cursor is a forward position in a list carried by a protocol reply
// (screens of a setup, depths of a screen, visuals of a depth). It yields
// elements by address into the reply, never copies. A cursor is a value:
// keeping the one returned by Begin restarts the walk.
type Cursor[T any] struct {
	list []T
	pos  int
}

// Begin returns a cursor on the first element of list.
func Begin[T any](list []T) Cursor[T] {
	return Cursor[T]{list: list}
}

// End returns the past-the-end cursor of list.
func End[T any](list []T) Cursor[T] {
	return Cursor[T]{list: list, pos: len(list)}
}

// Valid reports whether the cursor addresses an element.
func (c Cursor[T]) Valid() bool {
	return c.pos < len(c.list)
}

// Get returns the element under the cursor. It panics past the end.
func (c Cursor[T]) Get() *T {
	return &c.list[c.pos]
}

// Next returns the cursor advanced by one element. The end cursor stays put.
func (c Cursor[T]) Next() Cursor[T] {
	if c.Valid() {
		c.pos++
	}
	return c
}

// Remaining is the number of elements left, including the current one.
func (c Cursor[T]) Remaining() int {
	return len(c.list) - c.pos
}

// Equal reports whether both cursors address the same position of the same
// underlying list.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return unsafe.SliceData(c.list) == unsafe.SliceData(other.list) &&
		len(c.list) == len(other.list) &&
		c.pos == other.pos
}

// Each walks list front to back, yielding each element by address.
func Each[T any](list []T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for c := Begin(list); c.Valid(); c = c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}
