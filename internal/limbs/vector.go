/*
Package limbs provides the growable word storage used by bigint.Int.

A Vector holds up to SmallCap limbs inline and moves to a heap buffer once
it grows past that. Heap buffers are reference counted: Share hands out a
cheap copy that points at the same buffer, and every write path clones the
buffer first if anyone else may still be looking at it.

A Vector copied with plain assignment also shares its heap buffer but does
not bump the count. Code that intends to write to a copy must obtain it
through Share.
*/
package limbs

import (
	"fmt"
	"sync/atomic"
)

// SmallCap is the number of limbs stored inline before spilling to the heap.
// Four limbs cover every int64/uint64 value plus room for a carry.
const SmallCap = 4

type buffer struct {
	refs  int32
	words []uint32
}

type Vector struct {
	n     int
	small [SmallCap]uint32
	heap  *buffer
}

// FromWords copies ws into a new Vector.
func FromWords(ws ...uint32) Vector {
	var v Vector
	v.reserve(len(ws))
	for _, w := range ws {
		v.Append(w)
	}
	return v
}

func (v *Vector) Len() int { return v.n }

// Inline reports whether the limbs are held in the small buffer.
func (v *Vector) Inline() bool { return v.heap == nil }

// At returns limb i. It panics if i is out of range.
func (v *Vector) At(i int) uint32 {
	if i < 0 || i >= v.n {
		panic(fmt.Errorf("limbs: index %d out of range [0:%d]", i, v.n))
	}
	if v.heap == nil {
		return v.small[i]
	}
	return v.heap.words[i]
}

// Back returns the most significant stored limb. It panics if v is empty.
func (v *Vector) Back() uint32 { return v.At(v.n - 1) }

// Set overwrites limb i. It panics if i is out of range.
func (v *Vector) Set(i int, w uint32) {
	if i < 0 || i >= v.n {
		panic(fmt.Errorf("limbs: index %d out of range [0:%d]", i, v.n))
	}
	if v.heap == nil {
		v.small[i] = w
		return
	}
	v.ensureUnique()
	v.heap.words[i] = w
}

func (v *Vector) Append(w uint32) {
	v.reserve(v.n + 1)
	if v.heap == nil {
		v.small[v.n] = w
	} else {
		v.heap.words[v.n] = w
	}
	v.n++
}

// Truncate drops limbs from the back so that at most n remain.
func (v *Vector) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < v.n {
		v.n = n
	}
}

// Resize sets the length to n. New limbs are set to fill.
func (v *Vector) Resize(n int, fill uint32) {
	if n <= v.n {
		v.Truncate(n)
		return
	}
	v.reserve(n)
	for v.n < n {
		if v.heap == nil {
			v.small[v.n] = fill
		} else {
			v.heap.words[v.n] = fill
		}
		v.n++
	}
}

// InsertFront inserts n copies of w below the current least significant limb.
func (v *Vector) InsertFront(n int, w uint32) {
	if n <= 0 {
		return
	}
	old := v.n
	v.reserve(old + n)
	for i := old - 1; i >= 0; i-- {
		v.put(i+n, v.get(i))
	}
	for i := 0; i < n; i++ {
		v.put(i, w)
	}
	v.n = old + n
}

// DropFront removes the n least significant limbs.
func (v *Vector) DropFront(n int) {
	if n <= 0 {
		return
	}
	if n >= v.n {
		v.n = 0
		return
	}
	if v.heap != nil {
		v.ensureUnique()
	}
	for i := n; i < v.n; i++ {
		v.put(i-n, v.get(i))
	}
	v.n -= n
}

// Share returns a copy of v that shares its heap buffer until either side
// writes.
func (v *Vector) Share() Vector {
	if v.heap != nil {
		atomic.AddInt32(&v.heap.refs, 1)
	}
	return *v
}

func (v *Vector) Swap(o *Vector) { *v, *o = *o, *v }

// Words copies the limbs out, least significant first.
func (v *Vector) Words() []uint32 {
	out := make([]uint32, v.n)
	for i := range out {
		out[i] = v.get(i)
	}
	return out
}

// Shared reports whether another Vector may be reading v's heap buffer.
func (v *Vector) Shared() bool {
	return v.heap != nil && atomic.LoadInt32(&v.heap.refs) > 1
}

func (v *Vector) String() string {
	return fmt.Sprintf("%08x", v.Words())
}

func (v *Vector) get(i int) uint32 {
	if v.heap == nil {
		return v.small[i]
	}
	return v.heap.words[i]
}

// put writes without bounds or ownership checks; callers have already made
// v unique and large enough.
func (v *Vector) put(i int, w uint32) {
	if v.heap == nil {
		v.small[i] = w
	} else {
		v.heap.words[i] = w
	}
}

// ensureUnique gives v a private copy of its heap buffer if the buffer may
// be visible through another Vector.
func (v *Vector) ensureUnique() {
	if v.heap == nil || atomic.LoadInt32(&v.heap.refs) <= 1 {
		return
	}
	words := make([]uint32, len(v.heap.words))
	copy(words, v.heap.words[:v.n])
	atomic.AddInt32(&v.heap.refs, -1)
	v.heap = &buffer{refs: 1, words: words}
}

// reserve makes room for n limbs and leaves v unique.
func (v *Vector) reserve(n int) {
	if v.heap == nil {
		if n <= SmallCap {
			return
		}
		words := make([]uint32, grow(n))
		copy(words, v.small[:v.n])
		v.heap = &buffer{refs: 1, words: words}
		return
	}

	v.ensureUnique()
	if n <= len(v.heap.words) {
		return
	}
	words := make([]uint32, grow(n))
	copy(words, v.heap.words[:v.n])
	v.heap.words = words
}

func grow(n int) int {
	c := SmallCap * 2
	for c < n {
		c *= 2
	}
	return c
}
