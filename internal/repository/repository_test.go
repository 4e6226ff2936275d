package repository

import (
	"context"
	"database/sql"
	"io"
	"path/filepath"
	"testing"
	"time"

	"royale-tracker/internal/config"
	"royale-tracker/internal/database"
	"royale-tracker/internal/db"
	"royale-tracker/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*sql.DB, *db.Queries) {
	t.Helper()
	sqlDB, err := database.New(&config.Config{DBPath: filepath.Join(t.TempDir(), "test.db")}, zerolog.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return sqlDB, db.New(sqlDB)
}

func TestClanRepositoryUpsertAndGet(t *testing.T) {
	ctx := context.Background()
	sqlDB, queries := openTestDB(t)
	repo := NewClanRepository(sqlDB, queries, zerolog.New(io.Discard))

	clan := &domain.Clan{
		Tag:             "#ABC",
		Name:            "Royals",
		Type:            "open",
		ClanScore:       40000,
		ClanWarTrophies: 1500,
		MemberCount:     42,
		WarLeague:       "Silver League",
		LastFetchAt:     time.Now(),
	}
	require.NoError(t, repo.Upsert(ctx, clan))

	got, err := repo.Get(ctx, "#ABC")
	require.NoError(t, err)
	assert.Equal(t, "Royals", got.Name)
	assert.Equal(t, 42, got.MemberCount)
	assert.Equal(t, "Silver League", got.WarLeague)
	assert.False(t, got.CreatedAt.IsZero())

	clan.Name = "Royals II"
	clan.IsPartialFetch = true
	require.NoError(t, repo.Upsert(ctx, clan))

	got, err = repo.Get(ctx, "#ABC")
	require.NoError(t, err)
	assert.Equal(t, "Royals II", got.Name)
	assert.True(t, got.IsPartialFetch)

	_, err = repo.Get(ctx, "#NOPE")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestClanRepositoryShouldRefresh(t *testing.T) {
	ctx := context.Background()
	sqlDB, queries := openTestDB(t)
	repo := NewClanRepository(sqlDB, queries, zerolog.New(io.Discard))

	refresh, err := repo.ShouldRefresh(ctx, "#ABC", time.Minute)
	require.NoError(t, err)
	assert.True(t, refresh, "unknown clan")

	require.NoError(t, repo.Upsert(ctx, &domain.Clan{Tag: "#ABC", Name: "Royals", LastFetchAt: time.Now()}))
	refresh, err = repo.ShouldRefresh(ctx, "#ABC", time.Minute)
	require.NoError(t, err)
	assert.False(t, refresh, "fresh clan")

	require.NoError(t, repo.SetLastFetchAt(ctx, "#ABC", time.Now().Add(-2*time.Minute)))
	refresh, err = repo.ShouldRefresh(ctx, "#ABC", time.Minute)
	require.NoError(t, err)
	assert.True(t, refresh, "stale clan")

	require.NoError(t, repo.Upsert(ctx, &domain.Clan{Tag: "#ABC", Name: "Royals", LastFetchAt: time.Now(), IsPartialFetch: true}))
	refresh, err = repo.ShouldRefresh(ctx, "#ABC", time.Minute)
	require.NoError(t, err)
	assert.True(t, refresh, "partial clan")
}

func TestClanRepositorySearch(t *testing.T) {
	ctx := context.Background()
	sqlDB, queries := openTestDB(t)
	repo := NewClanRepository(sqlDB, queries, zerolog.New(io.Discard))

	for _, c := range []domain.Clan{
		{Tag: "#AAA", Name: "Royal Knights"},
		{Tag: "#BBB", Name: "Night Owls"},
		{Tag: "#KNI", Name: "Goblins"},
	} {
		c := c
		c.LastFetchAt = time.Now()
		require.NoError(t, repo.Upsert(ctx, &c))
	}

	found, err := repo.Search(ctx, "kni", 10)
	require.NoError(t, err)
	var tags []string
	for _, c := range found {
		tags = append(tags, c.Tag)
	}
	assert.ElementsMatch(t, []string{"#AAA", "#KNI"}, tags)

	found, err = repo.Search(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	sqlDB, queries := openTestDB(t)
	clans := NewClanRepository(sqlDB, queries, zerolog.New(io.Discard))
	repo := NewSnapshotRepository(sqlDB, queries, zerolog.New(io.Discard))

	require.NoError(t, clans.Upsert(ctx, &domain.Clan{Tag: "#ABC", Name: "Royals", LastFetchAt: time.Now()}))
	require.NoError(t, repo.UpsertBatch(ctx, nil))

	fetched := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpsertBatch(ctx, []Snapshot{
		{ClanTag: "#ABC", Kind: KindMembers, Payload: []byte(`{"items":[]}`), FetchedAt: fetched},
		{ClanTag: "#ABC", Kind: KindRiverRaceLog, Payload: []byte(`{"items":[{"seasonId":1}]}`), FetchedAt: fetched},
	}))

	got, err := repo.Get(ctx, "#ABC", KindMembers)
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.JSONEq(t, `{"items":[]}`, string(got.Payload))
	assert.True(t, fetched.Equal(got.FetchedAt))
	firstID := got.ID

	require.NoError(t, repo.UpsertBatch(ctx, []Snapshot{
		{ClanTag: "#ABC", Kind: KindMembers, Payload: []byte(`{"items":[{"tag":"#P"}]}`), FetchedAt: fetched.Add(time.Minute)},
	}))
	got, err = repo.Get(ctx, "#ABC", KindMembers)
	require.NoError(t, err)
	assert.Equal(t, firstID, got.ID, "upsert keeps the row")
	assert.JSONEq(t, `{"items":[{"tag":"#P"}]}`, string(got.Payload))

	_, err = repo.Get(ctx, "#ABC", KindCurrentWar)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSnapshotRepositoryRequiresClan(t *testing.T) {
	sqlDB, queries := openTestDB(t)
	repo := NewSnapshotRepository(sqlDB, queries, zerolog.New(io.Discard))

	err := repo.UpsertBatch(context.Background(), []Snapshot{
		{ClanTag: "#MISSING", Kind: KindMembers, Payload: []byte(`{}`), FetchedAt: time.Now()},
	})
	assert.Error(t, err)
}
