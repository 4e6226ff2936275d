package ranking

import (
	"sort"
	"time"

	"royale-tracker/internal/domain"
	"royale-tracker/internal/recency"
)

// MinEligibleWeeks is the number of tracked wars a member needs before its
// average is ranked ahead of members with thinner history.
const MinEligibleWeeks = 3

type RankedMember struct {
	Position      int          `json:"position"`
	Tag           string       `json:"tag"`
	Name          string       `json:"name"`
	Role          domain.Role  `json:"role"`
	Trophies      int          `json:"trophies"`
	Donations     int          `json:"donations"`
	LastSeen      string       `json:"last_seen"`
	LastSeenLabel string       `json:"last_seen_label"`
	Timeline      Timeline     `json:"timeline"`
	Current       Contribution `json:"current"`
	Average       *int         `json:"average"`
	WeeksEligible int          `json:"weeks_eligible"`
	Eligible      bool         `json:"eligible"`
}

// Rank joins roster snapshots with their timelines and current-war fame and
// orders them: eligible members first, then by average fame descending with
// undefined averages last. Equal keys keep roster order.
func Rank(members []domain.Member, timelines map[string]Timeline, current map[string]Contribution, now time.Time) []RankedMember {
	ranked := make([]RankedMember, 0, len(members))
	for _, m := range members {
		tl := timelines[m.Tag]
		weeks := tl.WeeksEligible()
		ranked = append(ranked, RankedMember{
			Tag:           m.Tag,
			Name:          m.Name,
			Role:          m.Role,
			Trophies:      m.Trophies,
			Donations:     m.Donations,
			LastSeen:      m.LastSeen,
			LastSeenLabel: recency.Label(m.LastSeen, now),
			Timeline:      tl,
			Current:       current[m.Tag],
			Average:       tl.Average(),
			WeeksEligible: weeks,
			Eligible:      weeks >= MinEligibleWeeks,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranksBefore(ranked[i], ranked[j])
	})

	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

func ranksBefore(a, b RankedMember) bool {
	if a.Eligible != b.Eligible {
		return a.Eligible
	}
	switch {
	case a.Average == nil:
		return false
	case b.Average == nil:
		return true
	default:
		return *a.Average > *b.Average
	}
}
