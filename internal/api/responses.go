package api

type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ClanResponse struct {
	Tag              string `json:"tag"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Description      string `json:"description"`
	BadgeID          int    `json:"badgeId"`
	ClanScore        int    `json:"clanScore"`
	ClanWarTrophies  int    `json:"clanWarTrophies"`
	Location         Named  `json:"location"`
	RequiredTrophies int    `json:"requiredTrophies"`
	DonationsPerWeek int    `json:"donationsPerWeek"`
	Members          int    `json:"members"`
	ClanWarLeague    *Named `json:"clanWarLeague,omitempty"`
}

type MembersResponse struct {
	Items  []ClanMember `json:"items"`
	Paging Paging       `json:"paging"`
}

type Paging struct {
	Cursors struct {
		After  string `json:"after,omitempty"`
		Before string `json:"before,omitempty"`
	} `json:"cursors"`
}

type ClanMember struct {
	Tag               string `json:"tag"`
	Name              string `json:"name"`
	Role              string `json:"role"`
	LastSeen          string `json:"lastSeen"`
	ExpLevel          int    `json:"expLevel"`
	Trophies          int    `json:"trophies"`
	Arena             Named  `json:"arena"`
	ClanRank          int    `json:"clanRank"`
	PreviousClanRank  int    `json:"previousClanRank"`
	Donations         int    `json:"donations"`
	DonationsReceived int    `json:"donationsReceived"`
}

type RiverParticipant struct {
	Tag            string `json:"tag"`
	Name           string `json:"name"`
	Fame           int    `json:"fame"`
	RepairPoints   int    `json:"repairPoints"`
	BoatAttacks    int    `json:"boatAttacks"`
	DecksUsed      int    `json:"decksUsed"`
	DecksUsedToday int    `json:"decksUsedToday"`
}

type RiverClan struct {
	Tag          string             `json:"tag"`
	Name         string             `json:"name"`
	Fame         int                `json:"fame"`
	RepairPoints int                `json:"repairPoints"`
	FinishTime   string             `json:"finishTime,omitempty"`
	Participants []RiverParticipant `json:"participants"`
}

type CurrentRiverRaceResponse struct {
	State        string      `json:"state"`
	Clan         RiverClan   `json:"clan"`
	Clans        []RiverClan `json:"clans"`
	SectionIndex int         `json:"sectionIndex"`
	PeriodIndex  int         `json:"periodIndex"`
	PeriodType   string      `json:"periodType"`
}

type RiverRaceLogResponse struct {
	Items []RiverRaceLogEntry `json:"items"`
}

type RiverRaceLogEntry struct {
	SeasonID     int                 `json:"seasonId"`
	SectionIndex int                 `json:"sectionIndex"`
	CreatedDate  string              `json:"createdDate"`
	Standings    []RiverRaceStanding `json:"standings"`
}

type RiverRaceStanding struct {
	Rank         int       `json:"rank"`
	TrophyChange int       `json:"trophyChange"`
	Clan         RiverClan `json:"clan"`
}

type PlayerCard struct {
	Name     string `json:"name"`
	ID       int    `json:"id"`
	Level    int    `json:"level"`
	MaxLevel int    `json:"maxLevel"`
	Count    int    `json:"count"`
}

type PlayerResponse struct {
	Tag            string       `json:"tag"`
	Name           string       `json:"name"`
	ExpLevel       int          `json:"expLevel"`
	Trophies       int          `json:"trophies"`
	BestTrophies   int          `json:"bestTrophies"`
	Wins           int          `json:"wins"`
	Losses         int          `json:"losses"`
	BattleCount    int          `json:"battleCount"`
	ThreeCrownWins int          `json:"threeCrownWins"`
	Role           string       `json:"role"`
	Donations      int          `json:"donations"`
	Arena          Named        `json:"arena"`
	Clan           *PlayerClan  `json:"clan,omitempty"`
	CurrentDeck    []PlayerCard `json:"currentDeck"`
	Cards          []PlayerCard `json:"cards"`
}

type PlayerClan struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

type BattleSide struct {
	Tag              string `json:"tag"`
	Name             string `json:"name"`
	Crowns           int    `json:"crowns"`
	StartingTrophies int    `json:"startingTrophies"`
	TrophyChange     int    `json:"trophyChange"`
}

type BattleResponse struct {
	Type       string       `json:"type"`
	BattleTime string       `json:"battleTime"`
	Arena      Named        `json:"arena"`
	GameMode   Named        `json:"gameMode"`
	Team       []BattleSide `json:"team"`
	Opponent   []BattleSide `json:"opponent"`
}

type ChestsResponse struct {
	Items []struct {
		Index int    `json:"index"`
		Name  string `json:"name"`
	} `json:"items"`
}
