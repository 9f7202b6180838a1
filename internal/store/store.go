package store

import "iter"

// initialCapacity is the number of slots a fresh Store allocates
const initialCapacity = 1

// Store is an append-only sequence backed by a single contiguous allocation.
// Capacity starts at one slot and doubles whenever an append would exceed it.
// A Store is not safe for concurrent use.
type Store[T any] struct {
	count   int
	entries []T
}

// New creates an empty Store with room for one entry
func New[T any]() *Store[T] {
	return &Store[T]{
		entries: make([]T, initialCapacity),
	}
}

// Append hands out the next slot at the end of the sequence. The slot is
// zeroed and must be initialized by the caller right away; the returned
// pointer is only valid until the next call to Append.
func (s *Store[T]) Append() *T {
	if s.count == len(s.entries) {
		s.grow()
	}

	slot := &s.entries[s.count]
	s.count++
	return slot
}

// grow reallocates to double capacity and copies every live entry across
func (s *Store[T]) grow() {
	newCap := len(s.entries) * 2
	if newCap == 0 {
		newCap = initialCapacity
	}

	entries := make([]T, newCap)
	copy(entries, s.entries[:s.count])
	s.entries = entries
}

// Len returns the number of live entries
func (s *Store[T]) Len() int {
	return s.count
}

// Cap returns the number of allocated slots
func (s *Store[T]) Cap() int {
	return len(s.entries)
}

// At returns a copy of the entry at index i. It panics if i is out of range.
func (s *Store[T]) At(i int) T {
	return s.entries[:s.count][i]
}

// All iterates over the live entries in insertion order
func (s *Store[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.entries[i]) {
				return
			}
		}
	}
}

// Release drops the backing storage. The Store is empty with zero capacity
// afterwards; a later Append allocates again.
func (s *Store[T]) Release() {
	clear(s.entries)
	s.entries = nil
	s.count = 0
}
