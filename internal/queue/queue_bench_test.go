package queue_test

import (
	"testing"

	"github.com/randomizedcoder/ringdeque/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkBytes []byte
var sinkBool bool

func mustQueue(b *testing.B, ctor constructor, size int) queue.Queue {
	b.Helper()
	q, err := ctor(size, 8)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_FIFO_PushPop_Direct(b *testing.B) {
	q, err := queue.NewFIFO(1024, 8)
	if err != nil {
		b.Fatal(err)
	}
	e := make([]byte, 8)
	b.ReportAllocs()
	b.ResetTimer()

	var val []byte
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(e)
		val, ok = q.Pop()
	}
	sinkBytes = val
	sinkBool = ok
}

func BenchmarkQueue_Channel_PushPop_Direct(b *testing.B) {
	q, err := queue.NewChannel(1024, 8)
	if err != nil {
		b.Fatal(err)
	}
	e := make([]byte, 8)
	b.ReportAllocs()
	b.ResetTimer()

	var val []byte
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(e)
		val, ok = q.Pop()
	}
	sinkBytes = val
	sinkBool = ok
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_PushPop_Interface(b *testing.B) {
	for _, tc := range fifos {
		b.Run(tc.name, func(b *testing.B) {
			q := mustQueue(b, tc.ctor, 1024)
			e := make([]byte, 8)
			b.ReportAllocs()
			b.ResetTimer()

			var val []byte
			var ok bool
			for i := 0; i < b.N; i++ {
				q.Push(e)
				val, ok = q.Pop()
			}
			sinkBytes = val
			sinkBool = ok
		})
	}
}

// Burst benchmarks: fill to capacity, then drain.

func BenchmarkQueue_Burst_Size64(b *testing.B) {
	for _, tc := range fifos {
		b.Run(tc.name, func(b *testing.B) {
			q := mustQueue(b, tc.ctor, 64)
			e := make([]byte, 8)
			b.ReportAllocs()
			b.ResetTimer()

			var val []byte
			for i := 0; i < b.N; i++ {
				for q.Push(e) {
				}
				for q.Len() > 0 {
					val, _ = q.Pop()
				}
			}
			sinkBytes = val
		})
	}
}

func BenchmarkWindow_Push(b *testing.B) {
	w, err := queue.NewWindow(64, 8)
	if err != nil {
		b.Fatal(err)
	}
	e := make([]byte, 8)
	b.ReportAllocs()
	b.ResetTimer()

	var evicted bool
	for i := 0; i < b.N; i++ {
		evicted = w.Push(e)
	}
	sinkBool = evicted
}
