package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"royale-tracker/internal/db"
	"royale-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type ClanRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewClanRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *ClanRepository {
	return &ClanRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *ClanRepository) Get(ctx context.Context, tag string) (*domain.Clan, error) {
	clan, err := r.queries.GetClanByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	c := toDomainClan(clan)
	return &c, nil
}

func (r *ClanRepository) Upsert(ctx context.Context, clan *domain.Clan) error {
	now := time.Now()
	if clan.CreatedAt.IsZero() {
		clan.CreatedAt = now
	}
	clan.UpdatedAt = now

	return r.queries.UpsertClan(ctx, db.UpsertClanParams{
		Tag:              clan.Tag,
		Name:             clan.Name,
		Description:      clan.Description,
		Type:             clan.Type,
		Location:         clan.Location,
		ClanScore:        int64(clan.ClanScore),
		ClanWarTrophies:  int64(clan.ClanWarTrophies),
		RequiredTrophies: int64(clan.RequiredTrophies),
		DonationsPerWeek: int64(clan.DonationsPerWeek),
		MemberCount:      int64(clan.MemberCount),
		WarLeague:        clan.WarLeague,
		IsPartialFetch:   clan.IsPartialFetch,
		LastFetchAt:      clan.LastFetchAt,
		CreatedAt:        clan.CreatedAt,
		UpdatedAt:        clan.UpdatedAt,
	})
}

// ShouldRefresh reports whether the cached payloads for tag are missing, partial
// or older than ttl.
func (r *ClanRepository) ShouldRefresh(ctx context.Context, tag string, ttl time.Duration) (bool, error) {
	clan, err := r.queries.GetClanLastFetchAt(ctx, tag)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("clan_tag", tag).Msg("clan not found, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("clan_tag", tag).Msg("failed to get clan")
		return false, err
	}
	if clan.IsPartialFetch {
		r.logger.Debug().Str("clan_tag", tag).Msg("clan is partial fetch, should refresh")
		return true, nil
	}

	timeSince := time.Since(clan.LastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Str("clan_tag", tag).
		Time("last_fetch_at", clan.LastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if clan should refresh")

	return shouldRefresh, nil
}

func (r *ClanRepository) SetLastFetchAt(ctx context.Context, tag string, lastFetchAt time.Time) error {
	r.logger.Debug().
		Str("clan_tag", tag).
		Time("last_fetch_at", lastFetchAt).
		Msg("setting last fetch at")

	err := r.queries.UpdateClanLastFetchAt(ctx, db.UpdateClanLastFetchAtParams{
		LastFetchAt: lastFetchAt,
		UpdatedAt:   time.Now(),
		Tag:         tag,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("clan_tag", tag).Msg("failed to set last fetch at")
		return err
	}
	return nil
}

func (r *ClanRepository) Search(ctx context.Context, query string, limit int) ([]domain.Clan, error) {
	searchPattern := "%" + query + "%"
	clans, err := r.queries.SearchClans(ctx, db.SearchClansParams{
		Name:  searchPattern,
		Tag:   searchPattern,
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	result := make([]domain.Clan, len(clans))
	for i, c := range clans {
		result[i] = toDomainClan(c)
	}
	return result, nil
}

func toDomainClan(c db.Clan) domain.Clan {
	return domain.Clan{
		Tag:              c.Tag,
		Name:             c.Name,
		Description:      c.Description,
		Type:             c.Type,
		Location:         c.Location,
		ClanScore:        int(c.ClanScore),
		ClanWarTrophies:  int(c.ClanWarTrophies),
		RequiredTrophies: int(c.RequiredTrophies),
		DonationsPerWeek: int(c.DonationsPerWeek),
		MemberCount:      int(c.MemberCount),
		WarLeague:        c.WarLeague,
		IsPartialFetch:   c.IsPartialFetch,
		LastFetchAt:      c.LastFetchAt,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
