package queue

import (
	"bytes"

	eq "github.com/eapache/queue"
)

// Unbounded wraps github.com/eapache/queue, a growable ring buffer, as a
// Queue. The size bound is enforced by the wrapper; the underlying ring
// still reallocates as it grows and shrinks.
type Unbounded struct {
	q         *eq.Queue
	size      int
	entrySize int
}

// NewUnbounded creates an Unbounded queue capped at size entries.
func NewUnbounded(size, entrySize int) (*Unbounded, error) {
	if err := checkSizes(size, entrySize); err != nil {
		return nil, err
	}
	return &Unbounded{
		q:         eq.New(),
		size:      size,
		entrySize: entrySize,
	}, nil
}

// Push appends a copy of v. Returns false if size entries are queued.
func (u *Unbounded) Push(v []byte) bool {
	mustFit(v, u.entrySize)
	if u.q.Length() >= u.size {
		return false
	}
	u.q.Add(bytes.Clone(v))
	return true
}

// Pop removes the oldest entry.
func (u *Unbounded) Pop() ([]byte, bool) {
	if u.q.Length() == 0 {
		return nil, false
	}
	return u.q.Remove().([]byte), true
}

// Len returns the current number of entries in the queue.
func (u *Unbounded) Len() int { return u.q.Length() }

// Cap returns the maximum number of entries in the queue.
func (u *Unbounded) Cap() int { return u.size }
