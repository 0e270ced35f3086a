package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rafaelqm/dsdetective/internal/game"
)

// snapshotsToKeep bounds the on-disk save history. Only the latest
// snapshot is ever restored; the rest are a safety margin against a
// corrupt final write.
const snapshotsToKeep = 10

// Adapter bridges the game state to snapshot storage. Both directions
// are total: Load falls back to the given default on any failure and
// Save swallows errors after logging them, so a broken database
// degrades the session to in-memory play instead of crashing it.
type Adapter struct {
	repo SnapshotRepo
	seq  *sequenceCounter
}

// NewAdapter builds an Adapter on top of an open Store.
func NewAdapter(s *Store) (*Adapter, error) {
	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}
	return &Adapter{repo: s.SnapshotRepo(), seq: sc}, nil
}

// Load returns the most recently saved state, or fallback when nothing
// usable is stored. Corrupt or unreadable snapshots are reported on
// stderr and treated as absent.
func (a *Adapter) Load(ctx context.Context, fallback game.State) game.State {
	snap, err := a.repo.Latest(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load saved game: %v\n", err)
		return fallback
	}
	if snap == nil {
		return fallback
	}
	return snap.Data
}

// Save persists a state snapshot and prunes old ones. Failures are
// reported on stderr and otherwise ignored.
func (a *Adapter) Save(ctx context.Context, state game.State) {
	seq, err := a.seq.Next(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save game: %v\n", err)
		return
	}

	err = a.repo.Save(ctx, &Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      state,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not save game: %v\n", err)
		return
	}

	if err := a.repo.Prune(ctx, snapshotsToKeep); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not prune old saves: %v\n", err)
	}
}
