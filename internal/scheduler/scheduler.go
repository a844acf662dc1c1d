// Package scheduler ticks registered jobs onto the worker pool at fixed
// intervals. The game clock runs on it: buff expiry and auto income
// every second, bundle spawns every ten.
package scheduler

import (
	"sync"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/worker"
)

// Scheduler drives interval jobs.
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
}

// New creates a scheduler backed by the given pool.
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule enqueues the job on every tick of the interval. Ticking
// starts immediately.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.Enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// Stop halts all tickers and waits for the ticking goroutines to exit.
func (s *Scheduler) Stop() {
	close(s.quit)
	s.wg.Wait()
}
