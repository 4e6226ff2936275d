package db

import (
	"context"
	"time"
)

const upsertPayloadSnapshot = `INSERT INTO payload_snapshots (id, clan_tag, kind, payload, fetched_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (clan_tag, kind) DO UPDATE SET
    payload = excluded.payload,
    fetched_at = excluded.fetched_at,
    updated_at = excluded.updated_at`

type UpsertPayloadSnapshotParams struct {
	ID        string
	ClanTag   string
	Kind      string
	Payload   []byte
	FetchedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertPayloadSnapshot(ctx context.Context, arg UpsertPayloadSnapshotParams) error {
	_, err := q.db.ExecContext(ctx, upsertPayloadSnapshot,
		arg.ID,
		arg.ClanTag,
		arg.Kind,
		arg.Payload,
		arg.FetchedAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getPayloadSnapshot = `SELECT id, clan_tag, kind, payload, fetched_at, created_at, updated_at
FROM payload_snapshots
WHERE clan_tag = ? AND kind = ?`

type GetPayloadSnapshotParams struct {
	ClanTag string
	Kind    string
}

func (q *Queries) GetPayloadSnapshot(ctx context.Context, arg GetPayloadSnapshotParams) (PayloadSnapshot, error) {
	row := q.db.QueryRowContext(ctx, getPayloadSnapshot, arg.ClanTag, arg.Kind)
	var i PayloadSnapshot
	err := row.Scan(
		&i.ID,
		&i.ClanTag,
		&i.Kind,
		&i.Payload,
		&i.FetchedAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
