package internal

import (
	"iter"
	"strings"
)

// Entry is one keyed element of a HashVec. Index is the insertion
// index and never changes for the lifetime of the table.
type Entry[T any] struct {
	Key   string
	Index int
	Value T
}

// HashVec is an ordered keyed container: a map for lookups over a
// vector that preserves insertion order.
type HashVec[T any] struct {
	fold    bool
	index   map[string]int
	entries []*Entry[T]
}

// NewHashVec creates an empty HashVec.
func NewHashVec[T any]() *HashVec[T] {
	return &HashVec[T]{index: make(map[string]int)}
}

// NewFoldedHashVec creates an empty HashVec with case-insensitive keys.
// Entries keep the spelling of the key they were first inserted with.
func NewFoldedHashVec[T any]() *HashVec[T] {
	hv := NewHashVec[T]()
	hv.fold = true
	return hv
}

func (hv *HashVec[T]) folded(key string) string {
	if hv.fold {
		return strings.ToLower(key)
	}
	return key
}

// Put inserts value under key, or overwrites the value of an existing
// entry. The affected entry is returned.
func (hv *HashVec[T]) Put(key string, value T) *Entry[T] {
	if n, ok := hv.index[hv.folded(key)]; ok {
		hv.entries[n].Value = value
		return hv.entries[n]
	}
	entry := &Entry[T]{Key: key, Index: len(hv.entries), Value: value}
	hv.index[hv.folded(key)] = entry.Index
	hv.entries = append(hv.entries, entry)
	return entry
}

// Get returns the entry stored under key.
func (hv *HashVec[T]) Get(key string) (entry *Entry[T], ok bool) {
	n, ok := hv.index[hv.folded(key)]
	if !ok {
		return nil, false
	}
	return hv.entries[n], true
}

// Has reports whether key is present.
func (hv *HashVec[T]) Has(key string) bool {
	_, ok := hv.index[hv.folded(key)]
	return ok
}

// At returns the entry at insertion index n.
func (hv *HashVec[T]) At(n int) *Entry[T] {
	return hv.entries[n]
}

// Len returns the number of entries.
func (hv *HashVec[T]) Len() int {
	return len(hv.entries)
}

// All iterates the entries in insertion order.
func (hv *HashVec[T]) All() iter.Seq[*Entry[T]] {
	return func(yield func(*Entry[T]) bool) {
		for _, entry := range hv.entries {
			if !yield(entry) {
				return
			}
		}
	}
}

// Keys iterates the keys in insertion order.
func (hv *HashVec[T]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, entry := range hv.entries {
			if !yield(entry.Key) {
				return
			}
		}
	}
}
