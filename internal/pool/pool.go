// Package pool implements fixed-capacity slot storage for short-lived entities.
//
// A Pool never grows. Allocation takes the first empty slot in index order;
// when every slot is taken the new value is dropped without error. Freed
// slots become available to the next allocation.
package pool

import "iter"

// Pool is a fixed-capacity array of optional values.
type Pool[T any] struct {
	slots   []T
	live    []bool
	count   int
	release func(*T)
}

// New creates an empty pool with the given capacity. If release is non-nil it
// is called exactly once for every value that leaves the pool: when its slot
// is freed, or immediately when an allocation is dropped because the pool is
// full.
func New[T any](capacity int, release func(*T)) *Pool[T] {
	return &Pool[T]{
		slots:   make([]T, capacity),
		live:    make([]bool, capacity),
		release: release,
	}
}

// Cap returns the number of slots.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Len returns the number of occupied slots.
func (p *Pool[T]) Len() int {
	return p.count
}

// HasFree reports whether an allocation would succeed.
func (p *Pool[T]) HasFree() bool {
	return p.count < len(p.slots)
}

// Allocate stores v in the first free slot and returns its index.
// If the pool is full, v is released and dropped and ok is false.
func (p *Pool[T]) Allocate(v T) (index int, ok bool) {
	for i, used := range p.live {
		if used {
			continue
		}
		p.slots[i] = v
		p.live[i] = true
		p.count++
		return i, true
	}

	if p.release != nil {
		p.release(&v)
	}
	return -1, false
}

// Get returns a pointer to the value in slot i, or nil if the slot is empty
// or out of range.
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.slots) || !p.live[i] {
		return nil
	}
	return &p.slots[i]
}

// Free clears slot i. Freeing an empty slot is a no-op.
func (p *Pool[T]) Free(i int) {
	if i < 0 || i >= len(p.slots) || !p.live[i] {
		return
	}
	if p.release != nil {
		p.release(&p.slots[i])
	}
	var zero T
	p.slots[i] = zero
	p.live[i] = false
	p.count--
}

// Clear frees every occupied slot.
func (p *Pool[T]) Clear() {
	for i := range p.slots {
		p.Free(i)
	}
}

// All yields the occupied slots in index order. The sequence is lazy and may
// be ranged over any number of times. Slots may be freed or allocated while
// iterating; each slot's occupancy is checked when the iteration reaches it.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.slots {
			if !p.live[i] {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}
