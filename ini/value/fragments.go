package value

import (
	"bytes"
	"iter"
)

// Fragments is an ordered, append-only store of physical line fragments of a
// folded value. Zero value is ready to use.
type Fragments struct {
	parts [][]byte
}

// NewFragments creates an empty fragment store.
func NewFragments() *Fragments {
	return &Fragments{}
}

// Append adds a fragment to the store. The bytes are copied, caller may
// reuse the slice. Note that copying keeps empty fragments distinct from
// missing ones: an appended empty fragment is stored and counted.
func (f *Fragments) Append(frag []byte) {
	f.parts = append(f.parts, bytes.Clone(frag))
}

// push adds a fragment the store takes ownership of.
func (f *Fragments) push(frag []byte) {
	f.parts = append(f.parts, frag)
}

// Get returns i-th fragment or nil when i is past the end. Returned slice
// must not be modified.
func (f *Fragments) Get(i int) []byte {
	if i < 0 || i >= len(f.parts) {
		return nil
	}
	return f.parts[i]
}

// Len returns number of stored fragments.
func (f *Fragments) Len() int {
	return len(f.parts)
}

// Reset discards all stored fragments. The store can be reused afterwards.
func (f *Fragments) Reset() {
	f.parts = f.parts[:0]
}

// All returns an iterator over fragments in insertion order.
func (f *Fragments) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for _, p := range f.parts {
			if !yield(p) {
				return
			}
		}
	}
}
