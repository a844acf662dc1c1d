package state

import (
	"context"
	"sync"
	"time"

	"github.com/knedy989-code/Cookie-RNG/internal/logger"
)

// Saver debounces snapshot writes. Every state change marks it dirty;
// the actual write happens after the debounce window, or on the
// periodic flush tick, whichever comes first.
type Saver struct {
	store *Store
	repo  SnapshotRepository
	delay time.Duration

	mu    sync.Mutex
	dirty bool
	timer *time.Timer
}

// NewSaver creates a snapshot saver with the given debounce window.
func NewSaver(store *Store, repo SnapshotRepository, delay time.Duration) *Saver {
	return &Saver{
		store: store,
		repo:  repo,
		delay: delay,
	}
}

// MarkDirty schedules a flush after the debounce window. Repeated calls
// within the window collapse into one write.
func (s *Saver) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	if s.timer != nil {
		s.timer.Reset(s.delay)
		return
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if err := s.Flush(context.Background()); err != nil {
			logger.FromContext(context.Background()).Error(LogMsgSnapshotFlushFailed, "error", err)
		}
	})
}

// Flush writes the snapshot if there are unsaved changes.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	s.mu.Unlock()

	if err := s.repo.Save(ctx, s.store.Snapshot()); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}

// Process lets the saver run as a scheduled job for periodic flushes.
func (s *Saver) Process(ctx context.Context) error {
	return s.Flush(ctx)
}

// Close stops the debounce timer and performs a final flush.
func (s *Saver) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	return s.Flush(ctx)
}
