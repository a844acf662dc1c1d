// Package worker provides a bounded pool for background jobs: effect
// expiry, auto income, bundle spawning, and snapshot flushing.
package worker

import (
	"context"
	"sync"

	"github.com/knedy989-code/Cookie-RNG/internal/logger"
)

// Job is a unit of background work.
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface, so service tick
// methods can be scheduled directly.
type JobFunc func(ctx context.Context) error

// Process calls the wrapped function.
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs jobs on a fixed set of workers over a bounded queue.
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
}

// NewPool creates a pool with the given worker count and queue size.
func NewPool(workers, queueSize int) *Pool {
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			ctx := context.Background()
			if err := job.Process(ctx); err != nil {
				// A failed tick must not take the worker down.
				logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "error", err)
			}
		case <-p.quit:
			return
		}
	}
}

// Enqueue submits a job. Blocks while the queue is full, which applies
// backpressure to the scheduler rather than dropping ticks.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop signals the workers and waits for in-flight jobs to finish.
// Queued but unstarted jobs are discarded.
func (p *Pool) Stop() {
	close(p.quit)
	p.wg.Wait()
}
