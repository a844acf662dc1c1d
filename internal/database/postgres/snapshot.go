// Package postgres implements the snapshot repository against
// PostgreSQL. The whole aggregate lives in one JSONB row, matching the
// single-save-slot model of the game.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/knedy989-code/Cookie-RNG/internal/domain"
	"github.com/knedy989-code/Cookie-RNG/internal/state"
)

// DefaultSnapshotID is the single save slot.
const DefaultSnapshotID = "default"

// SnapshotRepository implements state.SnapshotRepository for PostgreSQL.
type SnapshotRepository struct {
	db *pgxpool.Pool
	id string
}

// NewSnapshotRepository creates a repository bound to the default slot.
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db, id: DefaultSnapshotID}
}

// Load reads and migrates the saved aggregate. An empty table yields
// domain.ErrSnapshotNotFound.
func (r *SnapshotRepository) Load(ctx context.Context) (*domain.GameState, error) {
	var raw []byte
	err := r.db.QueryRow(ctx,
		`SELECT state FROM game_snapshots WHERE snapshot_id = $1`, r.id,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return state.Migrate(raw)
}

// Save upserts the aggregate into the save slot.
func (r *SnapshotRepository) Save(ctx context.Context, gs *domain.GameState) error {
	raw, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO game_snapshots (snapshot_id, state, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (snapshot_id)
		 DO UPDATE SET state = EXCLUDED.state, updated_at = NOW()`,
		r.id, raw,
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
