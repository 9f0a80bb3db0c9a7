// Package deque provides a fixed-capacity double-ended queue of fixed-size
// byte entries, stored in a single ring buffer.
//
// The backing store is allocated once by New and never grows. Its slot count
// is the smallest power of two not below the requested capacity, so a cursor
// maps to a physical slot with a bitwise AND instead of a modulo.
//
// # Views
//
// Front, Back, PopFront and PopBack return slices that alias the backing
// store. A view is valid only until the next mutating call (PushFront,
// PushBack, PopFront, PopBack) on the same Deque. Copy it if you need to keep
// it.
//
// # Concurrency
//
// A Deque is NOT safe for concurrent use. Callers sharing one across
// goroutines must serialize every call, including the read-only ones.
package deque

import (
	"fmt"
	"math/bits"
	"runtime"
)

// Deque is a bounded double-ended queue of entries that are each exactly
// EntrySize bytes long.
//
// Live entries occupy cursors [tail, head). The front entry sits at head-1,
// the back entry at tail. Both cursors wrap freely through the uint range;
// head-tail is the size either way because the slot count divides 2^N.
type Deque struct {
	capacity  uint
	entrySize uint
	mask      uint

	head uint
	tail uint

	slots []byte
}

// New creates a Deque holding at most capacity entries of entrySize bytes.
//
// It returns ErrInvalidArgument if either size is not positive, and
// ErrAllocation if the backing store size overflows or exceeds the runtime's
// slice length limit. Running out of physical memory is still fatal.
func New(capacity, entrySize int) (*Deque, error) {
	if capacity <= 0 || entrySize <= 0 {
		return nil, fmt.Errorf("%w: capacity=%d entrySize=%d", ErrInvalidArgument, capacity, entrySize)
	}

	nrSlots := nextPowerOfTwo(uint(capacity))
	if nrSlots == 0 {
		return nil, fmt.Errorf("%w: no power of two holds %d slots", ErrAllocation, capacity)
	}
	hi, size := bits.Mul(nrSlots, uint(entrySize))
	if hi != 0 || size > maxAlloc {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrAllocation, nrSlots, entrySize)
	}

	slots, err := allocate(size)
	if err != nil {
		return nil, err
	}

	return &Deque{
		capacity:  uint(capacity),
		entrySize: uint(entrySize),
		mask:      nrSlots - 1,
		slots:     slots,
	}, nil
}

// maxAlloc bounds the backing store to what a Go slice length can express.
const maxAlloc = uint(^uint(0) >> 1)

func allocate(size uint) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			b, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrAllocation, size, re)
		}
	}()
	return make([]byte, size), nil
}

// nextPowerOfTwo returns the smallest power of two >= n, with 1 mapping to 1.
// It returns 0 when the result does not fit in a uint.
func nextPowerOfTwo(n uint) uint {
	if n <= 1 {
		return 1
	}
	shift := bits.Len(n - 1)
	if shift >= bits.UintSize {
		return 0
	}
	return 1 << shift
}

// Empty reports whether d holds no entries.
func (d *Deque) Empty() bool {
	return d.head == d.tail
}

// Full reports whether d holds Cap entries.
func (d *Deque) Full() bool {
	return d.head-d.tail == d.capacity
}

// Len returns the number of live entries.
func (d *Deque) Len() int {
	return int(d.head - d.tail)
}

// Cap returns the capacity requested at construction, not the slot count.
func (d *Deque) Cap() int {
	return int(d.capacity)
}

// EntrySize returns the byte length of every entry.
func (d *Deque) EntrySize() int {
	return int(d.entrySize)
}

// slot returns the entry stored at cursor c. The view's capacity is clipped
// so appending to it reallocates instead of spilling into the next slot.
func (d *Deque) slot(c uint) []byte {
	off := (c & d.mask) * d.entrySize
	end := off + d.entrySize
	return d.slots[off:end:end]
}

func (d *Deque) mustFit(entry []byte) {
	if uint(len(entry)) != d.entrySize {
		panic(fmt.Sprintf("deque: entry is %d bytes, want %d", len(entry), d.entrySize))
	}
}

// Front returns a view of the front entry, or false if d is empty.
func (d *Deque) Front() ([]byte, bool) {
	if d.Empty() {
		return nil, false
	}
	return d.slot(d.head - 1), true
}

// Back returns a view of the back entry, or false if d is empty.
func (d *Deque) Back() ([]byte, bool) {
	if d.Empty() {
		return nil, false
	}
	return d.slot(d.tail), true
}

// PushFront copies entry to the front of d.
// Returns false, leaving d untouched, if d is full.
//
// Panics if len(entry) != EntrySize().
func (d *Deque) PushFront(entry []byte) bool {
	d.mustFit(entry)
	if d.Full() {
		return false
	}
	copy(d.slot(d.head), entry)
	d.head++
	return true
}

// PushBack copies entry to the back of d.
// Returns false, leaving d untouched, if d is full.
//
// Panics if len(entry) != EntrySize().
func (d *Deque) PushBack(entry []byte) bool {
	d.mustFit(entry)
	if d.Full() {
		return false
	}
	d.tail--
	copy(d.slot(d.tail), entry)
	return true
}

// PopFront removes the front entry and returns a view of it,
// or false if d is empty.
func (d *Deque) PopFront() ([]byte, bool) {
	if d.Empty() {
		return nil, false
	}
	d.head--
	return d.slot(d.head), true
}

// PopBack removes the back entry and returns a view of it,
// or false if d is empty.
func (d *Deque) PopBack() ([]byte, bool) {
	if d.Empty() {
		return nil, false
	}
	v := d.slot(d.tail)
	d.tail++
	return v, true
}
