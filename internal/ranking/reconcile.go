package ranking

import (
	"royale-tracker/internal/domain"
)

// Reconcile builds a war timeline for every roster tag from the river race log.
// wars must be ordered most recent first; anything past WindowSize is dropped.
// A war only counts when the clan appears in its standings, and only the
// participants listed under that clan's standing are attributed.
func Reconcile(clanTag string, roster []string, wars []domain.RiverRace) map[string]Timeline {
	if len(wars) > WindowSize {
		wars = wars[:WindowSize]
	}

	timelines := make(map[string]Timeline, len(roster))
	for _, tag := range roster {
		timelines[tag] = Timeline{}
	}

	for slot, war := range wars {
		standing, ok := findStanding(clanTag, war.Standings)
		if !ok {
			continue
		}

		fame := participantFame(standing.Participants)
		for tag, tl := range timelines {
			if f, ok := fame[tag]; ok {
				tl[slot] = Fame(f)
				timelines[tag] = tl
			}
		}
	}

	return timelines
}

// CurrentContributions maps each participant of the clan's standing in the
// running war to its fame so far. Missing war data gives an empty map.
func CurrentContributions(clanTag string, war *domain.CurrentWar) map[string]Contribution {
	current := make(map[string]Contribution)
	if war == nil {
		return current
	}

	standing, ok := war.Clan, war.Clan.ClanTag == clanTag
	if !ok {
		standing, ok = findStanding(clanTag, war.Clans)
	}
	if !ok {
		return current
	}

	for tag, f := range participantFame(standing.Participants) {
		current[tag] = Fame(f)
	}
	return current
}

// WarsTracked counts the retained wars whose standings include the clan.
func WarsTracked(clanTag string, wars []domain.RiverRace) int {
	if len(wars) > WindowSize {
		wars = wars[:WindowSize]
	}
	n := 0
	for _, war := range wars {
		if _, ok := findStanding(clanTag, war.Standings); ok {
			n++
		}
	}
	return n
}

func findStanding(clanTag string, standings []domain.Standing) (domain.Standing, bool) {
	for _, s := range standings {
		if s.ClanTag == clanTag {
			return s, true
		}
	}
	return domain.Standing{}, false
}

// first entry wins when the API repeats a participant
func participantFame(participants []domain.Participant) map[string]int {
	fame := make(map[string]int, len(participants))
	for _, p := range participants {
		if _, seen := fame[p.Tag]; seen {
			continue
		}
		fame[p.Tag] = p.Fame
	}
	return fame
}
