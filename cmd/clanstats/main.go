// Command clanstats prints a clan's war ranking, or a player's profile, from a
// running tracker server.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"

	"royale-tracker/internal/constants"
	"royale-tracker/internal/logger"
	"royale-tracker/internal/report"
	"royale-tracker/internal/rpc"

	"connectrpc.com/connect"
	"github.com/rs/zerolog"
)

func main() {
	var (
		addr    = flag.String("addr", "http://localhost:8080", "tracker server base URL")
		clan    = flag.String("clan", "", "clan tag to report on")
		player  = flag.String("player", "", "player tag to look up")
		search  = flag.String("search", "", "search known clans by name or tag")
		refresh = flag.Bool("refresh", false, "bypass the server cache")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsole(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := rpc.NewClanTrackerClient(&http.Client{Timeout: constants.RequestTimeout}, *addr)

	var err error
	switch {
	case *search != "":
		err = runSearch(ctx, client, *search)
	case *player != "":
		err = runPlayer(ctx, client, *player)
	case *clan != "":
		err = runClan(ctx, client, *clan, *refresh, log)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		log.Error().Err(err).Str("code", connect.CodeOf(err).String()).Msg("request failed")
		os.Exit(1)
	}
}

func runClan(ctx context.Context, client *rpc.ClanTrackerClient, tag string, refresh bool, log zerolog.Logger) error {
	log.Debug().Str("clan_tag", tag).Bool("refresh", refresh).Msg("requesting clan report")

	resp, err := client.GetClanReport(ctx, &rpc.ClanReportRequest{Tag: tag, Refresh: refresh})
	if err != nil {
		return err
	}

	log.Debug().
		Str("source", resp.Source).
		Time("fetched_at", resp.FetchedAt).
		Bool("partial", resp.Clan.IsPartialFetch).
		Msg("clan report received")

	if err := report.Clan(os.Stdout, resp.Clan); err != nil {
		return err
	}
	fmt.Println()
	if resp.Clan.IsPartialFetch {
		log.Warn().Msg("war data was unavailable, fame columns may be incomplete")
	}
	return report.Members(os.Stdout, resp)
}

func runSearch(ctx context.Context, client *rpc.ClanTrackerClient, query string) error {
	resp, err := client.SearchClans(ctx, &rpc.SearchClansRequest{Query: query})
	if err != nil {
		return err
	}
	return report.Clans(os.Stdout, resp.Clans)
}

func runPlayer(ctx context.Context, client *rpc.ClanTrackerClient, tag string) error {
	req := &rpc.PlayerRequest{Tag: tag}

	p, err := client.GetPlayer(ctx, req)
	if err != nil {
		return err
	}
	if err := report.Player(os.Stdout, p); err != nil {
		return err
	}

	battles, err := client.GetBattleLog(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println()
	if err := report.Battles(os.Stdout, battles.Battles); err != nil {
		return err
	}

	chests, err := client.GetUpcomingChests(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Upcoming chests:")
	return report.Chests(os.Stdout, chests.Chests)
}
