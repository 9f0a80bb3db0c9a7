// Package combined provides interaction benchmarks that exercise the deque
// inside realistic loops: recycling queues, producer/consumer pipelines
// with external locking, and comparisons against channels and
// go-lock-free-ring.
//
// These benchmarks are more representative of real-world performance
// than the isolated micro-benchmarks in the deque and queue packages.
package combined
