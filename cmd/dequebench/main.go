// Command dequebench benchmarks the deque against other bounded queues of
// fixed-size byte entries.
//
// Usage:
//
//	go run ./cmd/dequebench -n 10000000 -size 1024 -entry 8
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/randomizedcoder/ringdeque/internal/queue"
)

type config struct {
	iterations int
	size       int
	entrySize  int
}

type result struct {
	name string
	dur  time.Duration
}

func (r result) perOp(iterations int) float64 {
	return float64(r.dur.Nanoseconds()) / float64(iterations)
}

func main() {
	var cfg config
	flag.IntVar(&cfg.iterations, "n", 10_000_000, "number of iterations")
	flag.IntVar(&cfg.size, "size", 1024, "queue capacity in entries")
	flag.IntVar(&cfg.entrySize, "entry", 8, "entry size in bytes")
	verbose := flag.Bool("v", false, "development logging")
	flag.Parse()

	newLogger := zap.NewProduction
	if *verbose {
		newLogger = zap.NewDevelopment
	}
	log, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dequebench: building logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log, os.Stdout); err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}
}

func run(cfg config, log *zap.Logger, out io.Writer) error {
	if cfg.iterations <= 0 {
		return fmt.Errorf("iterations must be positive, got %d", cfg.iterations)
	}
	log.Info("starting",
		zap.Int("iterations", cfg.iterations),
		zap.Int("size", cfg.size),
		zap.Int("entry", cfg.entrySize),
	)

	type impl struct {
		name string
		ctor func(size, entrySize int) (queue.Queue, error)
	}
	impls := []impl{
		{"Deque FIFO", func(s, e int) (queue.Queue, error) { return queue.NewFIFO(s, e) }},
		{"Deque LIFO", func(s, e int) (queue.Queue, error) { return queue.NewLIFO(s, e) }},
		{"Channel", func(s, e int) (queue.Queue, error) { return queue.NewChannel(s, e) }},
		{"eapache/queue", func(s, e int) (queue.Queue, error) { return queue.NewUnbounded(s, e) }},
	}

	var entry []byte
	var results []result
	for _, im := range impls {
		q, err := im.ctor(cfg.size, cfg.entrySize)
		if err != nil {
			return fmt.Errorf("%s: %w", im.name, err)
		}
		if entry == nil {
			entry = make([]byte, cfg.entrySize)
		}
		start := time.Now()
		for i := 0; i < cfg.iterations; i++ {
			q.Push(entry)
			q.Pop()
		}
		results = append(results, result{im.name, time.Since(start)})
	}

	w, err := queue.NewWindow(cfg.size, cfg.entrySize)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	start := time.Now()
	for i := 0; i < cfg.iterations; i++ {
		w.Push(entry)
	}
	results = append(results, result{"Deque Window", time.Since(start)})

	report(out, cfg, results)
	for _, r := range results {
		log.Debug("result",
			zap.String("impl", r.name),
			zap.Duration("total", r.dur),
			zap.Float64("ns_per_op", r.perOp(cfg.iterations)),
		)
	}
	return nil
}

func report(out io.Writer, cfg config, results []result) {
	fmt.Fprintf(out, "Benchmarking bounded queues (%d iterations, size=%d, entry=%dB)\n",
		cfg.iterations, cfg.size, cfg.entrySize)
	fmt.Fprintln(out, "─────────────────────────────────────────────────")

	fmt.Fprintf(out, "\nResults (push + pop per iteration, push only for Window):\n")
	for _, r := range results {
		fmt.Fprintf(out, "  %-14s %v (%.2f ns/op)\n", r.name+":", r.dur, r.perOp(cfg.iterations))
	}

	fmt.Fprintf(out, "\nThroughput (theoretical max):\n")
	for _, r := range results {
		fmt.Fprintf(out, "  %-14s %.2f M ops/sec\n", r.name+":", 1000/r.perOp(cfg.iterations))
	}
}
