package rpc

import (
	"time"

	"royale-tracker/internal/ranking"
)

type ClanReportRequest struct {
	Tag     string `json:"tag"`
	Refresh bool   `json:"refresh,omitempty"`
}

type Clan struct {
	Tag              string    `json:"tag"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Type             string    `json:"type,omitempty"`
	Location         string    `json:"location,omitempty"`
	ClanScore        int       `json:"clan_score"`
	ClanWarTrophies  int       `json:"clan_war_trophies"`
	RequiredTrophies int       `json:"required_trophies"`
	DonationsPerWeek int       `json:"donations_per_week"`
	MemberCount      int       `json:"member_count"`
	WarLeague        string    `json:"war_league,omitempty"`
	IsPartialFetch   bool      `json:"is_partial_fetch"`
	LastFetchAt      time.Time `json:"last_fetch_at"`
}

type ClanReportResponse struct {
	Clan      Clan                   `json:"clan"`
	Members   []ranking.RankedMember `json:"members"`
	Summary   ranking.ClanSummary    `json:"summary"`
	Source    string                 `json:"source"`
	FetchedAt time.Time              `json:"fetched_at"`
}

type SearchClansRequest struct {
	Query string `json:"query"`
}

type SearchClansResponse struct {
	Clans []Clan `json:"clans"`
}

type PlayerRequest struct {
	Tag string `json:"tag"`
}

type Card struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"max_level"`
}

type PlayerResponse struct {
	Tag            string `json:"tag"`
	Name           string `json:"name"`
	ExpLevel       int    `json:"exp_level"`
	Trophies       int    `json:"trophies"`
	BestTrophies   int    `json:"best_trophies"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	BattleCount    int    `json:"battle_count"`
	ThreeCrownWins int    `json:"three_crown_wins"`
	ClanTag        string `json:"clan_tag,omitempty"`
	ClanName       string `json:"clan_name,omitempty"`
	Role           string `json:"role,omitempty"`
	Donations      int    `json:"donations"`
	Arena          string `json:"arena"`
	CurrentDeck    []Card `json:"current_deck"`
	TopCards       []Card `json:"top_cards"`
}

type Battle struct {
	Type             string `json:"type"`
	BattleTime       string `json:"battle_time"`
	Arena            string `json:"arena"`
	GameMode         string `json:"game_mode"`
	TeamCrowns       int    `json:"team_crowns"`
	OpponentCrowns   int    `json:"opponent_crowns"`
	OpponentName     string `json:"opponent_name"`
	OpponentTrophies int    `json:"opponent_trophies"`
	TrophyChange     int    `json:"trophy_change"`
	Result           string `json:"result"`
}

type BattleLogResponse struct {
	Battles []Battle `json:"battles"`
}

type Chest struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type UpcomingChestsResponse struct {
	Chests []Chest `json:"chests"`
}
