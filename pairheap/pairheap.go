package pairheap

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mikeydub/go-pairheap/env"
)

const defaultCapacity = 10

// EnvDefaultCapacity overrides the capacity used by New when set to a positive integer.
const EnvDefaultCapacity = "PAIRHEAP_DEFAULT_CAPACITY"

func init() {
	env.RegisterValidation(EnvDefaultCapacity, "omitempty,numeric")
}

// Pair is a single heap entry: an element tagged with the priority that orders it.
// Elements are not required to be unique.
type Pair struct {
	Element  int
	Priority int
}

// Heap is a fixed-capacity binary min-heap of (element, priority) pairs stored
// in array form: the pair at index i has children at 2i+1 and 2i+2, and the
// pair with the minimum priority is always at index 0. Capacity is set at
// construction and never grows; a full heap rejects inserts with
// ErrCapacityExceeded rather than reallocating.
//
// A Heap is not safe for concurrent use. Callers sharing one across goroutines
// must serialize every call with their own lock.
type Heap struct {
	pairs []Pair // live entries occupy [0, len); cap is fixed at construction
}

// New returns an empty heap with the default capacity. The default is 10
// unless PAIRHEAP_DEFAULT_CAPACITY is set to a positive integer.
func New() *Heap {
	c, ok := env.GetIntIfExists(EnvDefaultCapacity)
	if !ok || c <= 0 {
		c = defaultCapacity
	}
	return &Heap{pairs: make([]Pair, 0, c)}
}

// NewWithCapacity returns an empty heap that can hold up to capacity pairs.
func NewWithCapacity(capacity int) (*Heap, error) {
	if capacity < 0 {
		return nil, ErrInvalidArgument{Reason: fmt.Sprintf("capacity must be non-negative, got %d", capacity)}
	}
	return &Heap{pairs: make([]Pair, 0, capacity)}, nil
}

// FromArrays builds a heap from the first count entries of two parallel
// slices, pairing elements[i] with priorities[i]. The result has capacity
// count + spareCapacity, reserved up front so the insertion loop cannot run
// out of room. Cost is O(count log count); Merge is the cheaper path when the
// inputs are already heaps.
func FromArrays(priorities, elements []int, count, spareCapacity int) (*Heap, error) {
	if count < 0 {
		return nil, ErrInvalidArgument{Reason: fmt.Sprintf("count must be non-negative, got %d", count)}
	}
	if spareCapacity < 0 {
		return nil, ErrInvalidArgument{Reason: fmt.Sprintf("spare capacity must be non-negative, got %d", spareCapacity)}
	}
	if len(priorities) < count {
		return nil, ErrInvalidArgument{Reason: fmt.Sprintf("need %d priorities, got %d", count, len(priorities))}
	}
	if len(elements) < count {
		return nil, ErrInvalidArgument{Reason: fmt.Sprintf("need %d elements, got %d", count, len(elements))}
	}

	h := &Heap{pairs: make([]Pair, 0, count+spareCapacity)}
	for i := 0; i < count; i++ {
		if err := h.Insert(elements[i], priorities[i]); err != nil {
			return nil, errors.Wrapf(err, "inserting pair %d of %d", i, count)
		}
	}
	return h, nil
}

// Merge builds a new heap holding every pair from a and b, with capacity
// a.Size() + b.Size() + spareCapacity. Both sources are read-only inputs and
// are left untouched; their contents are copied into fresh storage and
// heap-ordered with a single O(n) heapify pass instead of n inserts.
func Merge(a, b *Heap, spareCapacity int) (*Heap, error) {
	if a == nil || b == nil {
		return nil, ErrInvalidArgument{Reason: "merge source heaps must be non-nil"}
	}
	if spareCapacity < 0 {
		return nil, ErrInvalidArgument{Reason: fmt.Sprintf("spare capacity must be non-negative, got %d", spareCapacity)}
	}

	size := a.Size() + b.Size()
	pairs := make([]Pair, size, size+spareCapacity)
	n := copy(pairs, a.pairs)
	copy(pairs[n:], b.pairs)

	h := &Heap{pairs: pairs}
	h.heapify()
	return h, nil
}

// IsEmpty reports whether the heap holds no pairs.
func (h *Heap) IsEmpty() bool {
	return len(h.pairs) == 0
}

// Size returns the number of pairs currently held.
func (h *Heap) Size() int {
	return len(h.pairs)
}

// Capacity returns the maximum number of pairs the heap can hold.
func (h *Heap) Capacity() int {
	return cap(h.pairs)
}

// PeekMin returns the element paired with the minimum priority without
// removing it.
func (h *Heap) PeekMin() (int, error) {
	if h.IsEmpty() {
		return 0, ErrEmptyHeap{Op: "PeekMin"}
	}
	return h.pairs[0].Element, nil
}

// PeekMinPriority returns the minimum priority currently held without
// removing anything.
func (h *Heap) PeekMinPriority() (int, error) {
	if h.IsEmpty() {
		return 0, ErrEmptyHeap{Op: "PeekMinPriority"}
	}
	return h.pairs[0].Priority, nil
}

// Insert adds the pair (element, priority) to the heap, restoring the heap
// ordering in O(log n). A pair inserted with a priority equal to its parent's
// stays below it; ties never displace the existing occupant.
func (h *Heap) Insert(element, priority int) error {
	if len(h.pairs) == cap(h.pairs) {
		return ErrCapacityExceeded{Capacity: cap(h.pairs)}
	}
	h.pairs = append(h.pairs, Pair{Element: element, Priority: priority})
	h.trickleUp(len(h.pairs) - 1)
	return nil
}

// ExtractMin removes the pair with the minimum priority and returns its
// element. Use ExtractMinPair to also observe the priority.
func (h *Heap) ExtractMin() (int, error) {
	min, err := h.ExtractMinPair()
	if err != nil {
		return 0, err
	}
	return min.Element, nil
}

// ExtractMinPair removes and returns the pair with the minimum priority.
func (h *Heap) ExtractMinPair() (Pair, error) {
	if h.IsEmpty() {
		return Pair{}, ErrEmptyHeap{Op: "ExtractMin"}
	}
	min := h.pairs[0]
	last := len(h.pairs) - 1
	h.pairs[0] = h.pairs[last]
	h.pairs = h.pairs[:last]
	h.trickleDown(0)
	return min, nil
}

// Contents returns a copy of the live pairs in raw array order. The slice is
// a snapshot; mutating it does not affect the heap.
func (h *Heap) Contents() []Pair {
	out := make([]Pair, len(h.pairs))
	copy(out, h.pairs)
	return out
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return (i * 2) + 1 }
func right(i int) int  { return (i * 2) + 2 }

func (h *Heap) swap(i, j int) {
	h.pairs[i], h.pairs[j] = h.pairs[j], h.pairs[i]
}

// trickleUp restores the ordering invariant after a new leaf lands at index i,
// swapping it toward the root while its parent's priority is strictly greater.
func (h *Heap) trickleUp(i int) {
	for i > 0 {
		p := parent(i)
		if h.pairs[i].Priority >= h.pairs[p].Priority {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// trickleDown restores the ordering invariant for the subtree rooted at i,
// assuming both child subtrees are already heaps.
func (h *Heap) trickleDown(i int) {
	n := len(h.pairs)
	for {
		l, r := left(i), right(i)
		if l >= n {
			return
		}
		if r >= n {
			// A node with only a left child is on the last internal level of a
			// complete tree, so that child is a leaf: one swap finishes the repair.
			if h.pairs[i].Priority > h.pairs[l].Priority {
				h.swap(i, l)
			}
			return
		}
		if h.pairs[i].Priority <= h.pairs[l].Priority && h.pairs[i].Priority <= h.pairs[r].Priority {
			return
		}
		// Descend toward the smaller child; the left child wins ties.
		c := l
		if h.pairs[r].Priority < h.pairs[l].Priority {
			c = r
		}
		h.swap(i, c)
		i = c
	}
}

// heapify establishes the ordering invariant over the whole array in O(n) by
// running trickleDown on every internal node, bottom-up. Leaves already
// satisfy the invariant trivially.
func (h *Heap) heapify() {
	for i := len(h.pairs)/2 - 1; i >= 0; i-- {
		h.trickleDown(i)
	}
}
