package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const ClanTrackerName = "royale.v1.ClanTracker"

const (
	ClanTrackerGetClanReportProcedure     = "/royale.v1.ClanTracker/GetClanReport"
	ClanTrackerSearchClansProcedure       = "/royale.v1.ClanTracker/SearchClans"
	ClanTrackerGetPlayerProcedure         = "/royale.v1.ClanTracker/GetPlayer"
	ClanTrackerGetBattleLogProcedure      = "/royale.v1.ClanTracker/GetBattleLog"
	ClanTrackerGetUpcomingChestsProcedure = "/royale.v1.ClanTracker/GetUpcomingChests"
)

type ClanTrackerHandler interface {
	GetClanReport(context.Context, *connect.Request[ClanReportRequest]) (*connect.Response[ClanReportResponse], error)
	SearchClans(context.Context, *connect.Request[SearchClansRequest]) (*connect.Response[SearchClansResponse], error)
	GetPlayer(context.Context, *connect.Request[PlayerRequest]) (*connect.Response[PlayerResponse], error)
	GetBattleLog(context.Context, *connect.Request[PlayerRequest]) (*connect.Response[BattleLogResponse], error)
	GetUpcomingChests(context.Context, *connect.Request[PlayerRequest]) (*connect.Response[UpcomingChestsResponse], error)
}

// NewClanTrackerHandler mounts every procedure of svc and returns the path
// prefix to register the handler under.
func NewClanTrackerHandler(svc ClanTrackerHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(ClanTrackerGetClanReportProcedure, connect.NewUnaryHandler(ClanTrackerGetClanReportProcedure, svc.GetClanReport, opts...))
	mux.Handle(ClanTrackerSearchClansProcedure, connect.NewUnaryHandler(ClanTrackerSearchClansProcedure, svc.SearchClans, opts...))
	mux.Handle(ClanTrackerGetPlayerProcedure, connect.NewUnaryHandler(ClanTrackerGetPlayerProcedure, svc.GetPlayer, opts...))
	mux.Handle(ClanTrackerGetBattleLogProcedure, connect.NewUnaryHandler(ClanTrackerGetBattleLogProcedure, svc.GetBattleLog, opts...))
	mux.Handle(ClanTrackerGetUpcomingChestsProcedure, connect.NewUnaryHandler(ClanTrackerGetUpcomingChestsProcedure, svc.GetUpcomingChests, opts...))

	return "/" + ClanTrackerName + "/", mux
}
