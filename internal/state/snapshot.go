package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
)

// SnapshotRepository persists the full aggregate as one document.
type SnapshotRepository interface {
	Load(ctx context.Context) (*domain.GameState, error)
	Save(ctx context.Context, gs *domain.GameState) error
}

// FileRepository stores the snapshot as a JSON file. Writes go through a
// temp file and rename so a crash mid-write never corrupts the save.
type FileRepository struct {
	path string
}

// NewFileRepository creates a file-backed snapshot repository.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load reads and migrates the saved aggregate. A missing file yields
// domain.ErrSnapshotNotFound.
func (r *FileRepository) Load(_ context.Context) (*domain.GameState, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return Migrate(raw)
}

// Save writes the aggregate atomically.
func (r *FileRepository) Save(_ context.Context, gs *domain.GameState) error {
	raw, err := json.MarshalIndent(gs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*.json")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// MemoryRepository keeps the snapshot in process memory. Used by tests
// and the "memory" backend.
type MemoryRepository struct {
	saved *domain.GameState
}

// NewMemoryRepository creates an in-memory snapshot repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Load returns the last saved aggregate.
func (r *MemoryRepository) Load(_ context.Context) (*domain.GameState, error) {
	if r.saved == nil {
		return nil, domain.ErrSnapshotNotFound
	}
	return r.saved.Clone(), nil
}

// Save retains a copy of the aggregate.
func (r *MemoryRepository) Save(_ context.Context, gs *domain.GameState) error {
	r.saved = gs.Clone()
	return nil
}
