package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"royale-tracker/internal/db"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type SnapshotKind string

const (
	KindMembers      SnapshotKind = "members"
	KindCurrentWar   SnapshotKind = "currentriverrace"
	KindRiverRaceLog SnapshotKind = "riverracelog"
)

// Snapshot is a raw API payload kept so a clan report can be rebuilt without
// calling the API again.
type Snapshot struct {
	ID        string
	ClanTag   string
	Kind      SnapshotKind
	Payload   []byte
	FetchedAt time.Time
}

type SnapshotRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewSnapshotRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *SnapshotRepository) UpsertBatch(ctx context.Context, snapshots []Snapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	now := time.Now()

	for _, s := range snapshots {
		id := s.ID
		if id == "" {
			id, err = gonanoid.New()
			if err != nil {
				return fmt.Errorf("failed to generate nanoid: %w", err)
			}
		}

		err := qtx.UpsertPayloadSnapshot(ctx, db.UpsertPayloadSnapshotParams{
			ID:        id,
			ClanTag:   s.ClanTag,
			Kind:      string(s.Kind),
			Payload:   s.Payload,
			FetchedAt: s.FetchedAt,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to upsert %s snapshot: %w", s.Kind, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshots: %w", err)
	}

	r.logger.Debug().Int("count", len(snapshots)).Msg("snapshots stored")
	return nil
}

// Get returns the stored payload of kind for the clan, or sql.ErrNoRows.
func (r *SnapshotRepository) Get(ctx context.Context, clanTag string, kind SnapshotKind) (*Snapshot, error) {
	row, err := r.queries.GetPayloadSnapshot(ctx, db.GetPayloadSnapshotParams{
		ClanTag: clanTag,
		Kind:    string(kind),
	})
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ID:        row.ID,
		ClanTag:   row.ClanTag,
		Kind:      SnapshotKind(row.Kind),
		Payload:   row.Payload,
		FetchedAt: row.FetchedAt,
	}, nil
}
