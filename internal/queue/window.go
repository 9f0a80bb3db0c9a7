package queue

import "github.com/randomizedcoder/ringdeque/deque"

// Window keeps the most recent entries up to a fixed count. Pushing into a
// full window evicts the oldest entry.
type Window struct {
	d *deque.Deque
}

// NewWindow creates a Window over the last size entries of entrySize bytes.
func NewWindow(size, entrySize int) (*Window, error) {
	d, err := deque.New(size, entrySize)
	if err != nil {
		return nil, err
	}
	return &Window{d: d}, nil
}

// Push copies v in as the latest entry. It reports whether an older entry
// was evicted to make room.
func (w *Window) Push(v []byte) (evicted bool) {
	mustFit(v, w.d.EntrySize())
	if w.d.Full() {
		w.d.PopBack()
		evicted = true
	}
	w.d.PushFront(v)
	return evicted
}

// Latest returns a view of the newest entry.
func (w *Window) Latest() ([]byte, bool) { return w.d.Front() }

// Oldest returns a view of the oldest entry still in the window.
func (w *Window) Oldest() ([]byte, bool) { return w.d.Back() }

// Len returns the current number of entries in the window.
func (w *Window) Len() int { return w.d.Len() }

// Cap returns the maximum number of entries in the window.
func (w *Window) Cap() int { return w.d.Cap() }
