package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"royale-tracker/internal/api"
	"royale-tracker/internal/domain"
	"royale-tracker/internal/rpc"
	"royale-tracker/internal/service"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

type TrackerServer struct {
	clanSvc   *service.ClanService
	playerSvc *service.PlayerService
}

var _ rpc.ClanTrackerHandler = (*TrackerServer)(nil)

func NewTrackerServer(clanSvc *service.ClanService, playerSvc *service.PlayerService) *TrackerServer {
	return &TrackerServer{clanSvc: clanSvc, playerSvc: playerSvc}
}

func (s *TrackerServer) GetClanReport(ctx context.Context, req *connect.Request[rpc.ClanReportRequest]) (*connect.Response[rpc.ClanReportResponse], error) {
	report, err := s.clanSvc.GetClanReport(ctx, req.Msg.Tag, req.Msg.Refresh)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	return connect.NewResponse(&rpc.ClanReportResponse{
		Clan:      toRPCClan(report.Clan),
		Members:   report.Report.Members,
		Summary:   report.Report.Summary,
		Source:    report.Source,
		FetchedAt: report.FetchedAt,
	}), nil
}

func (s *TrackerServer) SearchClans(ctx context.Context, req *connect.Request[rpc.SearchClansRequest]) (*connect.Response[rpc.SearchClansResponse], error) {
	query := strings.TrimSpace(req.Msg.Query)
	if query == "" {
		return connect.NewResponse(&rpc.SearchClansResponse{Clans: []rpc.Clan{}}), nil
	}

	clans, err := s.clanSvc.SearchClans(ctx, query)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]rpc.Clan, 0, len(clans))
	for _, c := range clans {
		out = append(out, toRPCClan(c))
	}
	return connect.NewResponse(&rpc.SearchClansResponse{Clans: out}), nil
}

func (s *TrackerServer) GetPlayer(ctx context.Context, req *connect.Request[rpc.PlayerRequest]) (*connect.Response[rpc.PlayerResponse], error) {
	p, err := s.playerSvc.GetPlayer(ctx, req.Msg.Tag)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	return connect.NewResponse(&rpc.PlayerResponse{
		Tag:            p.Tag,
		Name:           p.Name,
		ExpLevel:       p.ExpLevel,
		Trophies:       p.Trophies,
		BestTrophies:   p.BestTrophies,
		Wins:           p.Wins,
		Losses:         p.Losses,
		BattleCount:    p.BattleCount,
		ThreeCrownWins: p.ThreeCrownWins,
		ClanTag:        p.ClanTag,
		ClanName:       p.ClanName,
		Role:           string(p.Role),
		Donations:      p.Donations,
		Arena:          p.Arena,
		CurrentDeck:    toRPCCards(p.CurrentDeck),
		TopCards:       toRPCCards(p.TopCards),
	}), nil
}

func (s *TrackerServer) GetBattleLog(ctx context.Context, req *connect.Request[rpc.PlayerRequest]) (*connect.Response[rpc.BattleLogResponse], error) {
	battles, err := s.playerSvc.GetBattleLog(ctx, req.Msg.Tag)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	out := make([]rpc.Battle, 0, len(battles))
	for _, b := range battles {
		out = append(out, rpc.Battle{
			Type:             b.Type,
			BattleTime:       b.BattleTime,
			Arena:            b.Arena,
			GameMode:         b.GameMode,
			TeamCrowns:       b.TeamCrowns,
			OpponentCrowns:   b.OpponentCrowns,
			OpponentName:     b.OpponentName,
			OpponentTrophies: b.OpponentTrophies,
			TrophyChange:     b.TrophyChange,
			Result:           string(b.Result),
		})
	}
	return connect.NewResponse(&rpc.BattleLogResponse{Battles: out}), nil
}

func (s *TrackerServer) GetUpcomingChests(ctx context.Context, req *connect.Request[rpc.PlayerRequest]) (*connect.Response[rpc.UpcomingChestsResponse], error) {
	chests, err := s.playerSvc.GetUpcomingChests(ctx, req.Msg.Tag)
	if err != nil {
		return nil, toConnectError(ctx, err)
	}

	out := make([]rpc.Chest, 0, len(chests))
	for _, c := range chests {
		out = append(out, rpc.Chest{Index: c.Index, Name: c.Name})
	}
	return connect.NewResponse(&rpc.UpcomingChestsResponse{Chests: out}), nil
}

// toConnectError maps service failures onto connect codes. Anything other than a
// bad tag or an unknown one surfaces as Unavailable.
func toConnectError(ctx context.Context, err error) error {
	if errors.Is(err, service.ErrEmptyTag) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusNotFound:
			return connect.NewError(connect.CodeNotFound, err)
		case http.StatusForbidden:
			zerolog.Ctx(ctx).Error().Err(err).Msg("game API rejected the key")
		}
	}
	return connect.NewError(connect.CodeUnavailable, err)
}

func toRPCClan(c domain.Clan) rpc.Clan {
	return rpc.Clan{
		Tag:              c.Tag,
		Name:             c.Name,
		Description:      c.Description,
		Type:             c.Type,
		Location:         c.Location,
		ClanScore:        c.ClanScore,
		ClanWarTrophies:  c.ClanWarTrophies,
		RequiredTrophies: c.RequiredTrophies,
		DonationsPerWeek: c.DonationsPerWeek,
		MemberCount:      c.MemberCount,
		WarLeague:        c.WarLeague,
		IsPartialFetch:   c.IsPartialFetch,
		LastFetchAt:      c.LastFetchAt,
	}
}

func toRPCCards(cards []domain.Card) []rpc.Card {
	out := make([]rpc.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, rpc.Card{Name: c.Name, Level: c.Level, MaxLevel: c.MaxLevel})
	}
	return out
}
