// Package ranking reconciles a clan's roster with its river race history and
// ranks members by average war contribution.
//
// Everything here is a pure function of its arguments: nothing is cached
// between calls and missing inputs degrade to empty results rather than errors.
package ranking

import (
	"time"

	"royale-tracker/internal/domain"
)

type Input struct {
	ClanTag    string
	Members    []domain.Member
	CurrentWar *domain.CurrentWar
	WarLog     []domain.RiverRace // most recent first
	Now        time.Time
}

type Report struct {
	Members []RankedMember `json:"members"`
	Summary ClanSummary    `json:"summary"`
}

func Build(in Input) Report {
	roster := make([]string, len(in.Members))
	for i, m := range in.Members {
		roster[i] = m.Tag
	}

	timelines := Reconcile(in.ClanTag, roster, in.WarLog)
	current := CurrentContributions(in.ClanTag, in.CurrentWar)
	members := Rank(in.Members, timelines, current, in.Now)

	summary := Summarize(members)
	summary.WarsTracked = WarsTracked(in.ClanTag, in.WarLog)

	return Report{Members: members, Summary: summary}
}
