package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"royale-tracker/internal/api"
	"royale-tracker/internal/config"
	"royale-tracker/internal/constants"
	"royale-tracker/internal/domain"
	"royale-tracker/internal/metrics"
	"royale-tracker/internal/ranking"
	"royale-tracker/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrEmptyTag = errors.New("tag is required")

const (
	SourceCache = "cache"
	SourceLive  = "live"
)

// RoyaleAPI is the subset of the game API the services call.
type RoyaleAPI interface {
	GetClan(ctx context.Context, tag string) (*api.ClanResponse, error)
	GetClanMembers(ctx context.Context, tag string) (*api.MembersResponse, error)
	GetCurrentRiverRace(ctx context.Context, tag string) (*api.CurrentRiverRaceResponse, error)
	GetRiverRaceLog(ctx context.Context, tag string) (*api.RiverRaceLogResponse, error)
	GetPlayer(ctx context.Context, tag string) (*api.PlayerResponse, error)
	GetPlayerBattles(ctx context.Context, tag string) ([]api.BattleResponse, error)
	GetUpcomingChests(ctx context.Context, tag string) (*api.ChestsResponse, error)
}

type ClanReport struct {
	Clan      domain.Clan
	Report    ranking.Report
	Source    string
	FetchedAt time.Time
}

type ClanService struct {
	royale    RoyaleAPI
	clanRepo  *repository.ClanRepository
	snapshots *repository.SnapshotRepository
	metrics   *metrics.Metrics
	cacheTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewClanService(royale RoyaleAPI, clanRepo *repository.ClanRepository, snapshots *repository.SnapshotRepository, m *metrics.Metrics, cfg *config.Config, logger zerolog.Logger) *ClanService {
	return &ClanService{
		royale:    royale,
		clanRepo:  clanRepo,
		snapshots: snapshots,
		metrics:   m,
		cacheTTL:  cfg.CacheTTL,
		logger:    logger,
		now:       time.Now,
	}
}

// GetClanReport returns the clan with its ranked members. Payloads come from the
// cache while it is fresh, otherwise from the API; the ranking is recomputed
// either way.
func (s *ClanService) GetClanReport(ctx context.Context, tag string, refresh bool) (*ClanReport, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	tag = domain.NormalizeTag(tag)
	if tag == "#" {
		return nil, ErrEmptyTag
	}

	s.logger.Info().Str("clan_tag", tag).Bool("refresh", refresh).Msg("getting clan report")

	if refresh {
		s.logger.Debug().Str("clan_tag", tag).Msg("manual refresh requested")
	} else {
		shouldRefresh, err := s.clanRepo.ShouldRefresh(ctx, tag, s.cacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to check if clan should be refreshed: %w", err)
		}
		if !shouldRefresh {
			report, err := s.fromCache(ctx, tag)
			if err == nil {
				s.logger.Info().Str("clan_tag", tag).Msg("returning cached clan report")
				return report, nil
			}
			s.logger.Warn().Err(err).Str("clan_tag", tag).Msg("cached payloads unusable, fetching from API")
		}
	}

	return s.fromAPI(ctx, tag)
}

func (s *ClanService) SearchClans(ctx context.Context, query string) ([]domain.Clan, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	s.logger.Debug().Str("query", query).Msg("searching clans")

	clans, err := s.clanRepo.Search(ctx, query, constants.SearchSuggestionLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search clans")
		return nil, err
	}

	s.logger.Info().Int("count", len(clans)).Str("query", query).Msg("search completed")
	return clans, nil
}

func (s *ClanService) fromCache(ctx context.Context, tag string) (*ClanReport, error) {
	clan, err := s.clanRepo.Get(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("load clan: %w", err)
	}

	members, err := loadSnapshot[api.MembersResponse](ctx, s.snapshots, tag, repository.KindMembers)
	if err != nil {
		return nil, err
	}

	// the war payloads are optional, a missing one only empties its part of the report
	currentWar, err := loadSnapshot[api.CurrentRiverRaceResponse](ctx, s.snapshots, tag, repository.KindCurrentWar)
	if err != nil {
		s.logger.Warn().Err(err).Str("clan_tag", tag).Msg("no usable current war snapshot")
		currentWar = nil
	}
	warLog, err := loadSnapshot[api.RiverRaceLogResponse](ctx, s.snapshots, tag, repository.KindRiverRaceLog)
	if err != nil {
		s.logger.Warn().Err(err).Str("clan_tag", tag).Msg("no usable river race log snapshot")
		warLog = nil
	}

	s.metrics.ReportBuilt(SourceCache)
	return s.build(*clan, members, currentWar, warLog, SourceCache, clan.LastFetchAt), nil
}

func (s *ClanService) fromAPI(ctx context.Context, tag string) (*ClanReport, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	clanResp, err := s.royale.GetClan(apiCtx, tag)
	if err != nil {
		s.logger.Error().Err(err).Str("clan_tag", tag).Msg("failed to fetch clan")
		return nil, fmt.Errorf("failed to fetch clan: %w", err)
	}

	members, err := s.royale.GetClanMembers(apiCtx, tag)
	if err != nil {
		s.logger.Error().Err(err).Str("clan_tag", tag).Msg("failed to fetch clan members")
		return nil, fmt.Errorf("failed to fetch clan members: %w", err)
	}

	var currentWar *api.CurrentRiverRaceResponse
	var warLog *api.RiverRaceLogResponse

	g := new(errgroup.Group)
	g.Go(func() error {
		resp, err := s.royale.GetCurrentRiverRace(apiCtx, tag)
		if err != nil {
			s.logger.Warn().Err(err).Str("clan_tag", tag).Msg("current war not available")
			s.metrics.PayloadMissing(string(repository.KindCurrentWar))
			return nil
		}
		currentWar = resp
		return nil
	})
	g.Go(func() error {
		resp, err := s.royale.GetRiverRaceLog(apiCtx, tag)
		if err != nil {
			s.logger.Warn().Err(err).Str("clan_tag", tag).Msg("river race log not available")
			s.metrics.PayloadMissing(string(repository.KindRiverRaceLog))
			return nil
		}
		warLog = resp
		return nil
	})
	_ = g.Wait()

	fetchedAt := time.Now()
	clan := toDomainClan(clanResp)
	if clan.Tag == "" {
		clan.Tag = tag
	}
	clan.IsPartialFetch = currentWar == nil || warLog == nil
	clan.LastFetchAt = fetchedAt

	if err := s.clanRepo.Upsert(ctx, &clan); err != nil {
		s.logger.Error().Err(err).Str("clan_tag", tag).Msg("failed to upsert clan")
		return nil, fmt.Errorf("failed to upsert clan: %w", err)
	}

	snapshots, err := buildSnapshots(clan.Tag, fetchedAt, map[repository.SnapshotKind]any{
		repository.KindMembers:      members,
		repository.KindCurrentWar:   currentWar,
		repository.KindRiverRaceLog: warLog,
	})
	if err != nil {
		return nil, err
	}
	if err := s.snapshots.UpsertBatch(ctx, snapshots); err != nil {
		s.logger.Error().Err(err).Str("clan_tag", tag).Msg("failed to store snapshots")
		return nil, fmt.Errorf("failed to store snapshots: %w", err)
	}

	s.logger.Debug().
		Str("clan_tag", tag).
		Int("member_count", len(members.Items)).
		Bool("is_partial_fetch", clan.IsPartialFetch).
		Msg("clan payloads fetched")

	s.metrics.ReportBuilt(SourceLive)
	return s.build(clan, members, currentWar, warLog, SourceLive, fetchedAt), nil
}

func (s *ClanService) build(clan domain.Clan, members *api.MembersResponse, currentWar *api.CurrentRiverRaceResponse, warLog *api.RiverRaceLogResponse, source string, fetchedAt time.Time) *ClanReport {
	report := ranking.Build(ranking.Input{
		ClanTag:    clan.Tag,
		Members:    toDomainMembers(members),
		CurrentWar: toDomainCurrentWar(currentWar),
		WarLog:     toDomainWarLog(warLog),
		Now:        s.now(),
	})

	s.logger.Info().
		Str("clan_tag", clan.Tag).
		Str("source", source).
		Int("members", report.Summary.Members).
		Int("eligible", report.Summary.EligibleMembers).
		Int("wars_tracked", report.Summary.WarsTracked).
		Msg("clan report built")

	return &ClanReport{Clan: clan, Report: report, Source: source, FetchedAt: fetchedAt}
}

func buildSnapshots(tag string, fetchedAt time.Time, payloads map[repository.SnapshotKind]any) ([]repository.Snapshot, error) {
	var out []repository.Snapshot
	for _, kind := range []repository.SnapshotKind{repository.KindMembers, repository.KindCurrentWar, repository.KindRiverRaceLog} {
		payload := payloads[kind]
		if isNilPayload(payload) {
			continue
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode %s snapshot: %w", kind, err)
		}
		out = append(out, repository.Snapshot{ClanTag: tag, Kind: kind, Payload: data, FetchedAt: fetchedAt})
	}
	return out, nil
}

func isNilPayload(v any) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *api.MembersResponse:
		return p == nil
	case *api.CurrentRiverRaceResponse:
		return p == nil
	case *api.RiverRaceLogResponse:
		return p == nil
	default:
		return false
	}
}

func loadSnapshot[T any](ctx context.Context, repo *repository.SnapshotRepository, tag string, kind repository.SnapshotKind) (*T, error) {
	snap, err := repo.Get(ctx, tag, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s snapshot: %w", kind, err)
	}
	var v T
	if err := json.Unmarshal(snap.Payload, &v); err != nil {
		return nil, fmt.Errorf("decode %s snapshot: %w", kind, err)
	}
	return &v, nil
}
