package queue

import "github.com/randomizedcoder/ringdeque/deque"

// FIFO is a Queue backed by a deque.Deque. Entries enter at the front and
// leave from the back.
type FIFO struct {
	d *deque.Deque
}

// NewFIFO creates a FIFO holding up to size entries of entrySize bytes.
func NewFIFO(size, entrySize int) (*FIFO, error) {
	d, err := deque.New(size, entrySize)
	if err != nil {
		return nil, err
	}
	return &FIFO{d: d}, nil
}

// Push copies v to the front. Returns false if the queue is full.
func (q *FIFO) Push(v []byte) bool { return q.d.PushFront(v) }

// Pop removes the oldest entry and returns a view of it.
func (q *FIFO) Pop() ([]byte, bool) { return q.d.PopBack() }

// Peek returns a view of the oldest entry without removing it.
func (q *FIFO) Peek() ([]byte, bool) { return q.d.Back() }

// Len returns the current number of entries in the queue.
func (q *FIFO) Len() int { return q.d.Len() }

// Cap returns the maximum number of entries in the queue.
func (q *FIFO) Cap() int { return q.d.Cap() }

// LIFO is a Queue with stack order backed by a deque.Deque.
type LIFO struct {
	d *deque.Deque
}

// NewLIFO creates a LIFO holding up to size entries of entrySize bytes.
func NewLIFO(size, entrySize int) (*LIFO, error) {
	d, err := deque.New(size, entrySize)
	if err != nil {
		return nil, err
	}
	return &LIFO{d: d}, nil
}

// Push copies v to the top. Returns false if the stack is full.
func (q *LIFO) Push(v []byte) bool { return q.d.PushFront(v) }

// Pop removes the newest entry and returns a view of it.
func (q *LIFO) Pop() ([]byte, bool) { return q.d.PopFront() }

// Peek returns a view of the newest entry without removing it.
func (q *LIFO) Peek() ([]byte, bool) { return q.d.Front() }

// Len returns the current number of entries in the stack.
func (q *LIFO) Len() int { return q.d.Len() }

// Cap returns the maximum number of entries in the stack.
func (q *LIFO) Cap() int { return q.d.Cap() }
