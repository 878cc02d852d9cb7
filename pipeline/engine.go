// SPDX-License-Identifier: EPL-2.0

package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
)

// Options configures an Engine. The zero value is usable: every field
// falls back to a sensible default in New.
type Options struct {
	// Workers is the number of goroutines executing transform chains.
	// Defaults to runtime.NumCPU().
	Workers int

	// QueueDepth bounds how many submissions may wait for a worker
	// before further callers block. Defaults to twice Workers.
	QueueDepth int

	// Logger receives warnings about effects skipped in best-effort
	// mode. Defaults to a warn-level logger writing to stderr.
	Logger *logrus.Logger
}

// Engine runs transform chains on a fixed pool of workers. A chain is
// executed by a single worker from start to finish, so the effects of
// one request always see the output of the previous one. The queue in
// front of the pool is bounded; when it fills, callers block until a
// worker frees up, which keeps a burst of uploads from ballooning
// memory.
type Engine struct {
	queue chan func()
	log   *logrus.Logger

	workers  sync.WaitGroup
	inflight sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// New starts the worker pool and returns the engine. Callers own the
// engine and must Close it to release the workers.
func New(opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	depth := opts.QueueDepth
	if depth <= 0 {
		depth = 2 * workers
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}

	e := &Engine{
		queue: make(chan func(), depth),
		log:   log,
	}
	for i := 0; i < workers; i++ {
		e.workers.Add(1)
		go e.run()
	}
	return e
}

func (e *Engine) run() {
	defer e.workers.Done()
	for job := range e.queue {
		job()
	}
}

// do queues fn and waits for a worker to finish it. Cancelling ctx
// before a worker picks the job up abandons it; once fn is running it
// is never interrupted from the outside.
func (e *Engine) do(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrEngineClosed
	}
	e.inflight.Add(1)
	e.mu.Unlock()
	defer e.inflight.Done()

	done := make(chan error, 1)
	job := func() {
		if err := ctx.Err(); err != nil {
			done <- err
			return
		}
		done <- fn()
	}

	select {
	case e.queue <- job:
	case <-ctx.Done():
		return ctx.Err()
	}
	return <-done
}

// Close waits for submitted work to finish and stops the workers.
// Calling Close more than once is harmless; engine methods called
// after Close return ErrEngineClosed.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	e.inflight.Wait()
	close(e.queue)
	e.workers.Wait()
}
