package domain

import (
	"time"
)

type Clan struct {
	Tag              string
	Name             string
	Description      string
	Type             string // "open", "inviteOnly", "closed"
	Location         string
	ClanScore        int
	ClanWarTrophies  int
	RequiredTrophies int
	DonationsPerWeek int
	MemberCount      int
	WarLeague        string
	IsPartialFetch   bool
	LastFetchAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Role string

const (
	RoleLeader   Role = "leader"
	RoleCoLeader Role = "coLeader"
	RoleElder    Role = "elder"
	RoleMember   Role = "member"
)

func (r Role) DisplayName() string {
	switch r {
	case RoleLeader:
		return "Leader"
	case RoleCoLeader:
		return "Co-Leader"
	case RoleElder:
		return "Elder"
	case RoleMember:
		return "Member"
	default:
		return string(r)
	}
}

// Member is one roster entry as returned by the members endpoint.
type Member struct {
	Tag       string
	Name      string
	Role      Role
	Trophies  int
	Donations int
	LastSeen  string // 20210101T120000.000Z
}

type Participant struct {
	Tag       string
	Name      string
	Fame      int
	DecksUsed int
}

// Standing is one competing clan's line in a river race.
type Standing struct {
	Rank         int
	TrophyChange int
	ClanTag      string
	ClanName     string
	Fame         int
	Participants []Participant
}

type RiverRace struct {
	SeasonID     int
	SectionIndex int
	CreatedDate  string
	Standings    []Standing
}

type CurrentWar struct {
	State  string
	Clan   Standing
	Clans  []Standing
	Period string
}

type Card struct {
	Name     string
	Level    int
	MaxLevel int
}

type Player struct {
	Tag            string
	Name           string
	ExpLevel       int
	Trophies       int
	BestTrophies   int
	Wins           int
	Losses         int
	BattleCount    int
	ThreeCrownWins int
	ClanTag        string
	ClanName       string
	Role           Role
	Donations      int
	Arena          string
	CurrentDeck    []Card
	TopCards       []Card
}

type BattleResult string

const (
	BattleWin  BattleResult = "WIN"
	BattleLoss BattleResult = "LOSS"
	BattleDraw BattleResult = "DRAW"
)

type Battle struct {
	Type             string
	BattleTime       string
	Arena            string
	GameMode         string
	TeamCrowns       int
	OpponentCrowns   int
	OpponentName     string
	OpponentTrophies int
	TrophyChange     int
	Result           BattleResult
}

func ResultFromCrowns(team, opponent int) BattleResult {
	switch {
	case team > opponent:
		return BattleWin
	case team < opponent:
		return BattleLoss
	default:
		return BattleDraw
	}
}

type Chest struct {
	Index int
	Name  string
}
