package db

import (
	"context"
	"time"
)

const clanColumns = `tag, name, description, type, location, clan_score, clan_war_trophies,
    required_trophies, donations_per_week, member_count, war_league, is_partial_fetch,
    last_fetch_at, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClan(row scanner) (Clan, error) {
	var i Clan
	err := row.Scan(
		&i.Tag,
		&i.Name,
		&i.Description,
		&i.Type,
		&i.Location,
		&i.ClanScore,
		&i.ClanWarTrophies,
		&i.RequiredTrophies,
		&i.DonationsPerWeek,
		&i.MemberCount,
		&i.WarLeague,
		&i.IsPartialFetch,
		&i.LastFetchAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getClanByTag = `SELECT ` + clanColumns + `
FROM clans
WHERE tag = ?`

func (q *Queries) GetClanByTag(ctx context.Context, tag string) (Clan, error) {
	row := q.db.QueryRowContext(ctx, getClanByTag, tag)
	return scanClan(row)
}

const getClanLastFetchAt = `SELECT last_fetch_at, is_partial_fetch
FROM clans
WHERE tag = ?`

type GetClanLastFetchAtRow struct {
	LastFetchAt    time.Time
	IsPartialFetch bool
}

func (q *Queries) GetClanLastFetchAt(ctx context.Context, tag string) (GetClanLastFetchAtRow, error) {
	row := q.db.QueryRowContext(ctx, getClanLastFetchAt, tag)
	var i GetClanLastFetchAtRow
	err := row.Scan(&i.LastFetchAt, &i.IsPartialFetch)
	return i, err
}

const upsertClan = `INSERT INTO clans (` + clanColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (tag) DO UPDATE SET
    name = excluded.name,
    description = excluded.description,
    type = excluded.type,
    location = excluded.location,
    clan_score = excluded.clan_score,
    clan_war_trophies = excluded.clan_war_trophies,
    required_trophies = excluded.required_trophies,
    donations_per_week = excluded.donations_per_week,
    member_count = excluded.member_count,
    war_league = excluded.war_league,
    is_partial_fetch = excluded.is_partial_fetch,
    last_fetch_at = excluded.last_fetch_at,
    updated_at = excluded.updated_at`

type UpsertClanParams struct {
	Tag              string
	Name             string
	Description      string
	Type             string
	Location         string
	ClanScore        int64
	ClanWarTrophies  int64
	RequiredTrophies int64
	DonationsPerWeek int64
	MemberCount      int64
	WarLeague        string
	IsPartialFetch   bool
	LastFetchAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (q *Queries) UpsertClan(ctx context.Context, arg UpsertClanParams) error {
	_, err := q.db.ExecContext(ctx, upsertClan,
		arg.Tag,
		arg.Name,
		arg.Description,
		arg.Type,
		arg.Location,
		arg.ClanScore,
		arg.ClanWarTrophies,
		arg.RequiredTrophies,
		arg.DonationsPerWeek,
		arg.MemberCount,
		arg.WarLeague,
		arg.IsPartialFetch,
		arg.LastFetchAt,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateClanLastFetchAt = `UPDATE clans
SET last_fetch_at = ?, updated_at = ?
WHERE tag = ?`

type UpdateClanLastFetchAtParams struct {
	LastFetchAt time.Time
	UpdatedAt   time.Time
	Tag         string
}

func (q *Queries) UpdateClanLastFetchAt(ctx context.Context, arg UpdateClanLastFetchAtParams) error {
	_, err := q.db.ExecContext(ctx, updateClanLastFetchAt, arg.LastFetchAt, arg.UpdatedAt, arg.Tag)
	return err
}

const searchClans = `SELECT ` + clanColumns + `
FROM clans
WHERE name LIKE ? OR tag LIKE ?
ORDER BY updated_at DESC
LIMIT ?`

type SearchClansParams struct {
	Name  string
	Tag   string
	Limit int64
}

func (q *Queries) SearchClans(ctx context.Context, arg SearchClansParams) ([]Clan, error) {
	rows, err := q.db.QueryContext(ctx, searchClans, arg.Name, arg.Tag, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Clan
	for rows.Next() {
		i, err := scanClan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
