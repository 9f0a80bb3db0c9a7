package queue

import "bytes"

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach. Each Push/Pop performs
// a non-blocking channel operation via select with default, and
// Push allocates a copy of the entry.
type ChannelQueue struct {
	ch        chan []byte
	entrySize int
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel(size, entrySize int) (*ChannelQueue, error) {
	if err := checkSizes(size, entrySize); err != nil {
		return nil, err
	}
	return &ChannelQueue{
		ch:        make(chan []byte, size),
		entrySize: entrySize,
	}, nil
}

// Push copies an entry into the queue.
// Returns false if the queue is full (non-blocking).
func (q *ChannelQueue) Push(v []byte) bool {
	mustFit(v, q.entrySize)
	select {
	case q.ch <- bytes.Clone(v):
		return true
	default:
		return false
	}
}

// Pop removes and returns an entry from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue) Pop() ([]byte, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		return nil, false
	}
}

// Len returns the current number of entries in the queue.
func (q *ChannelQueue) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue) Cap() int {
	return cap(q.ch)
}
