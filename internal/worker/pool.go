// Package worker runs fire-and-forget background jobs, such as audit log
// writes, off the request path.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/baharkarakas/marina-backend/internal/metrics"
)

// Job is a unit of background work. Its error is logged, never returned to a
// caller.
type Job func(ctx context.Context) error

type task struct {
	name string
	run  Job
}

const (
	DefaultQueueSize = 1024
	jobTimeout       = 5 * time.Second
)

type Pool struct {
	wg     sync.WaitGroup
	jobs   chan task
	log    *slog.Logger
	mu     sync.RWMutex
	closed bool
}

// NewPool starts n workers reading from a queue of the given capacity.
func NewPool(n, queue int, log *slog.Logger) *Pool {
	if n < 1 {
		n = 1
	}
	if queue < 1 {
		queue = DefaultQueueSize
	}
	p := &Pool{jobs: make(chan task, queue), log: log}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for t := range p.jobs {
				metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
				p.run(t)
			}
		}()
	}
	return p
}

// Submit enqueues f without blocking. It reports false when the pool is
// stopped or the queue is full; the job is then dropped.
func (p *Pool) Submit(name string, f Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.log.Warn("worker pool stopped, job dropped", slog.String("job", name))
		metrics.WorkerJobsFailed.Inc()
		return false
	}
	select {
	case p.jobs <- task{name: name, run: f}:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
		return true
	default:
		p.log.Warn("worker queue full, job dropped", slog.String("job", name))
		metrics.WorkerJobsFailed.Inc()
		return false
	}
}

// Stop rejects new jobs, drains the queue and waits for the workers.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
	metrics.WorkerQueueDepth.Set(0)
}

func (p *Pool) run(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return t.run(ctx)
	}()
	if err != nil {
		metrics.WorkerJobsFailed.Inc()
		p.log.Error("background job failed", slog.String("job", t.name), slog.Any("err", err))
	}
}
