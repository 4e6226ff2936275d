package db

import (
	"time"
)

type Clan struct {
	Tag              string
	Name             string
	Description      string
	Type             string
	Location         string
	ClanScore        int64
	ClanWarTrophies  int64
	RequiredTrophies int64
	DonationsPerWeek int64
	MemberCount      int64
	WarLeague        string
	IsPartialFetch   bool
	LastFetchAt      time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PayloadSnapshot struct {
	ID        string
	ClanTag   string
	Kind      string
	Payload   []byte
	FetchedAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
