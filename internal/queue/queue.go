// Package queue adapts bounded containers of fixed-size byte entries to a
// common Queue interface so they can be benchmarked side by side.
//
// Implementations:
//   - FIFO: deque.Deque used as a queue (PushFront, PopBack)
//   - LIFO: deque.Deque used as a stack (PushFront, PopFront)
//   - ChannelQueue: standard library approach using a buffered channel
//   - Unbounded: github.com/eapache/queue with the bound enforced here
//
// Window is not a Queue: it never rejects, it evicts.
//
// # Views
//
// FIFO and LIFO return views into the deque's storage from Pop. A view is
// valid until the next Push or Pop on the same queue. ChannelQueue and
// Unbounded copy on Push, so their Pop results stay valid.
//
// None of the implementations are safe for concurrent Push and Pop except
// ChannelQueue.
package queue

import (
	"fmt"

	"github.com/randomizedcoder/ringdeque/deque"
)

// Queue is a bounded queue of fixed-size byte entries.
//
// Implementations are non-blocking: Push returns false if full,
// Pop returns false if empty.
type Queue interface {
	// Push copies an entry into the queue.
	// Returns false if the queue is full.
	Push([]byte) bool

	// Pop removes and returns an entry from the queue.
	// Returns false if the queue is empty.
	Pop() ([]byte, bool)

	// Len returns the current number of entries.
	Len() int

	// Cap returns the maximum number of entries.
	Cap() int
}

// checkSizes validates constructor arguments the same way deque.New does, so
// every implementation rejects the same inputs.
func checkSizes(size, entrySize int) error {
	if size <= 0 || entrySize <= 0 {
		return fmt.Errorf("%w: size=%d entrySize=%d", deque.ErrInvalidArgument, size, entrySize)
	}
	return nil
}

func mustFit(entry []byte, entrySize int) {
	if len(entry) != entrySize {
		panic(fmt.Sprintf("queue: entry is %d bytes, want %d", len(entry), entrySize))
	}
}
