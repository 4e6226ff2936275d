package rpc

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

type ClanTrackerClient struct {
	getClanReport     *connect.Client[ClanReportRequest, ClanReportResponse]
	searchClans       *connect.Client[SearchClansRequest, SearchClansResponse]
	getPlayer         *connect.Client[PlayerRequest, PlayerResponse]
	getBattleLog      *connect.Client[PlayerRequest, BattleLogResponse]
	getUpcomingChests *connect.Client[PlayerRequest, UpcomingChestsResponse]
}

// NewClanTrackerClient talks to a tracker server at baseURL, e.g. http://localhost:8080.
func NewClanTrackerClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ClanTrackerClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &ClanTrackerClient{
		getClanReport:     connect.NewClient[ClanReportRequest, ClanReportResponse](httpClient, baseURL+ClanTrackerGetClanReportProcedure, opts...),
		searchClans:       connect.NewClient[SearchClansRequest, SearchClansResponse](httpClient, baseURL+ClanTrackerSearchClansProcedure, opts...),
		getPlayer:         connect.NewClient[PlayerRequest, PlayerResponse](httpClient, baseURL+ClanTrackerGetPlayerProcedure, opts...),
		getBattleLog:      connect.NewClient[PlayerRequest, BattleLogResponse](httpClient, baseURL+ClanTrackerGetBattleLogProcedure, opts...),
		getUpcomingChests: connect.NewClient[PlayerRequest, UpcomingChestsResponse](httpClient, baseURL+ClanTrackerGetUpcomingChestsProcedure, opts...),
	}
}

func (c *ClanTrackerClient) GetClanReport(ctx context.Context, req *ClanReportRequest) (*ClanReportResponse, error) {
	return unary(ctx, c.getClanReport, req)
}

func (c *ClanTrackerClient) SearchClans(ctx context.Context, req *SearchClansRequest) (*SearchClansResponse, error) {
	return unary(ctx, c.searchClans, req)
}

func (c *ClanTrackerClient) GetPlayer(ctx context.Context, req *PlayerRequest) (*PlayerResponse, error) {
	return unary(ctx, c.getPlayer, req)
}

func (c *ClanTrackerClient) GetBattleLog(ctx context.Context, req *PlayerRequest) (*BattleLogResponse, error) {
	return unary(ctx, c.getBattleLog, req)
}

func (c *ClanTrackerClient) GetUpcomingChests(ctx context.Context, req *PlayerRequest) (*UpcomingChestsResponse, error) {
	return unary(ctx, c.getUpcomingChests, req)
}

func unary[Req, Res any](ctx context.Context, client *connect.Client[Req, Res], req *Req) (*Res, error) {
	resp, err := client.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}
