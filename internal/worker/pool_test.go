package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPool_ProcessesJobs(t *testing.T) {
	pool := NewPool(2, 10)
	pool.Start()
	defer pool.Stop()

	var processed atomic.Int32
	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		pool.Enqueue(JobFunc(func(_ context.Context) error {
			processed.Add(1)
			wg.Done()
			return nil
		}))
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("jobs did not finish in time")
	}
	assert.Equal(t, int32(3), processed.Load())
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	pool := NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	ran := make(chan struct{})
	pool.Enqueue(JobFunc(func(_ context.Context) error {
		return errors.New("tick failed")
	}))
	pool.Enqueue(JobFunc(func(_ context.Context) error {
		close(ran)
		return nil
	}))

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped after a failing job")
	}
}
