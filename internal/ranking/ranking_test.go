package ranking

import (
	"encoding/json"
	"testing"
	"time"

	"royale-tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clanTag = "#CLAN"

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

// war builds a river race in which the target clan's participants have the
// given fame, alongside an unrelated clan.
func war(season int, fame map[string]int) domain.RiverRace {
	var participants []domain.Participant
	for tag, f := range fame {
		participants = append(participants, domain.Participant{Tag: tag, Fame: f})
	}
	return domain.RiverRace{
		SeasonID: season,
		Standings: []domain.Standing{
			{Rank: 2, ClanTag: "#OTHER", Participants: []domain.Participant{{Tag: "#A", Fame: 9999}}},
			{Rank: 1, ClanTag: clanTag, Participants: participants},
		},
	}
}

func foreignWar() domain.RiverRace {
	return domain.RiverRace{
		Standings: []domain.Standing{
			{ClanTag: "#OTHER", Participants: []domain.Participant{{Tag: "#A", Fame: 500}, {Tag: "#B", Fame: 700}}},
		},
	}
}

func TestContributionAbsentIsNotZero(t *testing.T) {
	var zero Contribution
	assert.False(t, zero.Present())
	assert.Equal(t, Absent(), zero)
	assert.NotEqual(t, Absent(), Fame(0))

	v, ok := Fame(0).Value()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 7, Absent().Or(7))
	assert.Equal(t, 3, Fame(3).Or(7))
}

func TestContributionJSON(t *testing.T) {
	data, err := json.Marshal(Timeline{Fame(10), Fame(0), Absent()})
	require.NoError(t, err)
	assert.JSONEq(t, `[10,0,null,null,null,null]`, string(data))

	var tl Timeline
	require.NoError(t, json.Unmarshal([]byte(`[5,null,0,null,null,null]`), &tl))
	assert.Equal(t, Timeline{Fame(5), Absent(), Fame(0)}, tl)

	var c Contribution
	assert.Error(t, json.Unmarshal([]byte(`"x"`), &c))
}

func TestTimelineAverage(t *testing.T) {
	assert.Nil(t, Timeline{}.Average())
	assert.Equal(t, 0, Timeline{}.WeeksEligible())

	tl := Timeline{Fame(10), Absent(), Fame(0), Fame(5)}
	require.NotNil(t, tl.Average())
	assert.Equal(t, 5, *tl.Average())
	assert.Equal(t, 3, tl.WeeksEligible())

	// integer division
	tl = Timeline{Fame(10), Fame(15)}
	assert.Equal(t, 12, *tl.Average())
}

func TestReconcile(t *testing.T) {
	wars := []domain.RiverRace{
		war(10, map[string]int{"#A": 100, "#B": 0}),
		foreignWar(),
		war(8, map[string]int{"#A": 200, "#GONE": 300}),
	}

	timelines := Reconcile(clanTag, []string{"#A", "#B", "#C"}, wars)

	require.Len(t, timelines, 3)
	assert.Equal(t, Timeline{Fame(100), Absent(), Fame(200)}, timelines["#A"])
	assert.Equal(t, Timeline{Fame(0)}, timelines["#B"])
	assert.Equal(t, Timeline{}, timelines["#C"])
	assert.NotContains(t, timelines, "#GONE")
}

func TestReconcileForeignWarIsAbsentForEveryone(t *testing.T) {
	wars := []domain.RiverRace{foreignWar(), foreignWar()}

	timelines := Reconcile(clanTag, []string{"#A", "#B"}, wars)

	for tag, tl := range timelines {
		assert.Equal(t, 0, tl.WeeksEligible(), tag)
		assert.False(t, tl[0].Present(), tag)
		assert.False(t, tl[1].Present(), tag)
	}
}

func TestReconcileTagMatchIsCaseSensitive(t *testing.T) {
	wars := []domain.RiverRace{war(1, map[string]int{"#A": 10})}

	timelines := Reconcile("#clan", []string{"#A"}, wars)
	assert.Equal(t, Timeline{}, timelines["#A"])
}

func TestReconcileKeepsOnlyWindow(t *testing.T) {
	var wars []domain.RiverRace
	for i := 0; i < 10; i++ {
		wars = append(wars, war(i, map[string]int{"#A": i + 1}))
	}

	timelines := Reconcile(clanTag, []string{"#A"}, wars)

	assert.Equal(t, Timeline{Fame(1), Fame(2), Fame(3), Fame(4), Fame(5), Fame(6)}, timelines["#A"])
	assert.Equal(t, 6, WarsTracked(clanTag, wars))
}

func TestReconcileDuplicateParticipantFirstWins(t *testing.T) {
	wars := []domain.RiverRace{{
		Standings: []domain.Standing{{
			ClanTag: clanTag,
			Participants: []domain.Participant{
				{Tag: "#A", Fame: 40},
				{Tag: "#A", Fame: 90},
			},
		}},
	}}

	timelines := Reconcile(clanTag, []string{"#A"}, wars)
	assert.Equal(t, Fame(40), timelines["#A"][0])
}

func TestReconcileEmptyInputs(t *testing.T) {
	assert.Empty(t, Reconcile(clanTag, nil, nil))

	timelines := Reconcile(clanTag, []string{"#A"}, nil)
	assert.Equal(t, Timeline{}, timelines["#A"])
}

func TestCurrentContributions(t *testing.T) {
	assert.Empty(t, CurrentContributions(clanTag, nil))

	cw := &domain.CurrentWar{
		Clan: domain.Standing{ClanTag: clanTag, Participants: []domain.Participant{{Tag: "#A", Fame: 1200}, {Tag: "#B", Fame: 0}}},
	}
	current := CurrentContributions(clanTag, cw)
	assert.Equal(t, Fame(1200), current["#A"])
	assert.Equal(t, Fame(0), current["#B"])
	assert.False(t, current["#C"].Present())

	// the clan entry can be missing while the competitors list still has it
	cw = &domain.CurrentWar{
		Clans: []domain.Standing{
			{ClanTag: "#OTHER", Participants: []domain.Participant{{Tag: "#A", Fame: 1}}},
			{ClanTag: clanTag, Participants: []domain.Participant{{Tag: "#A", Fame: 2}}},
		},
	}
	assert.Equal(t, Fame(2), CurrentContributions(clanTag, cw)["#A"])

	cw = &domain.CurrentWar{Clan: domain.Standing{ClanTag: "#OTHER", Participants: []domain.Participant{{Tag: "#A", Fame: 1}}}}
	assert.Empty(t, CurrentContributions(clanTag, cw))
}

func TestRankEligibleBeforeThinHistory(t *testing.T) {
	members := []domain.Member{
		{Tag: "#A", Name: "A"},
		{Tag: "#B", Name: "B"},
		{Tag: "#C", Name: "C"},
	}
	timelines := map[string]Timeline{
		"#A": {Fame(10), Fame(20)},
		"#B": {Fame(5), Fame(5), Fame(5)},
	}

	ranked := Rank(members, timelines, nil, now)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"#B", "#A", "#C"}, tags(ranked))
	assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Position, ranked[1].Position, ranked[2].Position})

	assert.True(t, ranked[0].Eligible)
	assert.Equal(t, 3, ranked[0].WeeksEligible)
	assert.Equal(t, 5, *ranked[0].Average)

	assert.False(t, ranked[1].Eligible)
	assert.Equal(t, 2, ranked[1].WeeksEligible)
	assert.Equal(t, 15, *ranked[1].Average)

	assert.Equal(t, 0, ranked[2].WeeksEligible)
	assert.Nil(t, ranked[2].Average)
}

func TestRankOrdersByAverageAndKeepsRosterOrderOnTies(t *testing.T) {
	three := func(f int) Timeline { return Timeline{Fame(f), Fame(f), Fame(f)} }
	members := []domain.Member{
		{Tag: "#1"}, {Tag: "#2"}, {Tag: "#3"}, {Tag: "#4"}, {Tag: "#5"}, {Tag: "#6"},
	}
	timelines := map[string]Timeline{
		"#1": three(100),
		"#2": three(300),
		"#3": three(100),
		"#4": {Fame(900)},
		"#5": {Fame(900)},
	}

	ranked := Rank(members, timelines, nil, now)

	assert.Equal(t, []string{"#2", "#1", "#3", "#4", "#5", "#6"}, tags(ranked))
}

func TestRankCarriesSnapshotAndCurrent(t *testing.T) {
	members := []domain.Member{{
		Tag:       "#A",
		Name:      "Alice",
		Role:      domain.RoleElder,
		Trophies:  6100,
		Donations: 340,
		LastSeen:  "20240314T120000.000Z",
	}}
	current := map[string]Contribution{"#A": Fame(800)}

	ranked := Rank(members, nil, current, now)

	require.Len(t, ranked, 1)
	m := ranked[0]
	assert.Equal(t, "Alice", m.Name)
	assert.Equal(t, domain.RoleElder, m.Role)
	assert.Equal(t, 6100, m.Trophies)
	assert.Equal(t, 340, m.Donations)
	assert.Equal(t, "1 day ago", m.LastSeenLabel)
	assert.Equal(t, Fame(800), m.Current)
	assert.Equal(t, Timeline{}, m.Timeline)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, ClanSummary{}, Summarize(nil))

	members := []RankedMember{
		{Trophies: 5000, Donations: 100, Current: Fame(1000), Eligible: true},
		{Trophies: 6001, Donations: 50, Current: Absent()},
		{Trophies: 4000, Donations: 0, Current: Fame(0)},
	}

	s := Summarize(members)
	assert.Equal(t, 3, s.Members)
	assert.Equal(t, 1, s.EligibleMembers)
	assert.Equal(t, 150, s.TotalDonations)
	assert.Equal(t, 5000, s.AverageTrophies)
	assert.Equal(t, 1000, s.TotalCurrentFame)
}

func TestBuild(t *testing.T) {
	in := Input{
		ClanTag: clanTag,
		Members: []domain.Member{
			{Tag: "#A", Name: "A", Trophies: 5000, Donations: 10},
			{Tag: "#B", Name: "B", Trophies: 6000, Donations: 20},
			{Tag: "#C", Name: "C", Trophies: 7000, Donations: 30},
		},
		CurrentWar: &domain.CurrentWar{
			Clan: domain.Standing{ClanTag: clanTag, Participants: []domain.Participant{{Tag: "#A", Fame: 300}, {Tag: "#C", Fame: 200}}},
		},
		WarLog: []domain.RiverRace{
			war(5, map[string]int{"#A": 10, "#B": 5}),
			war(4, map[string]int{"#A": 20, "#B": 5}),
			foreignWar(),
			war(3, map[string]int{"#B": 5}),
		},
		Now: now,
	}

	report := Build(in)

	assert.Equal(t, []string{"#B", "#A", "#C"}, tags(report.Members))
	assert.Equal(t, ClanSummary{
		Members:          3,
		EligibleMembers:  1,
		TotalDonations:   60,
		AverageTrophies:  6000,
		TotalCurrentFame: 500,
		WarsTracked:      3,
	}, report.Summary)

	for _, m := range report.Members {
		assert.Equal(t, m.Timeline.WeeksEligible(), m.WeeksEligible)
		assert.False(t, m.Timeline[2].Present(), "foreign war must stay absent for %s", m.Tag)
	}
}

func TestBuildIsTotalOnEmptyInput(t *testing.T) {
	report := Build(Input{})

	assert.Empty(t, report.Members)
	assert.Equal(t, ClanSummary{}, report.Summary)
}

func TestBuildIsIdempotent(t *testing.T) {
	in := Input{
		ClanTag: clanTag,
		Members: []domain.Member{{Tag: "#A"}, {Tag: "#B"}},
		WarLog:  []domain.RiverRace{war(1, map[string]int{"#A": 10, "#B": 10})},
		Now:     now,
	}

	assert.Equal(t, Build(in), Build(in))
}

func TestRankedListProperties(t *testing.T) {
	members := make([]domain.Member, 0, 12)
	timelines := make(map[string]Timeline)
	for i := 0; i < 12; i++ {
		tag := string(rune('A' + i))
		members = append(members, domain.Member{Tag: tag})
		var tl Timeline
		for slot := 0; slot < WindowSize; slot++ {
			if (i+slot)%(i%4+2) != 0 {
				tl[slot] = Fame((i * 37 * (slot + 1)) % 500)
			}
		}
		timelines[tag] = tl
	}

	ranked := Rank(members, timelines, nil, now)

	seenIneligible := false
	for i, m := range ranked {
		assert.GreaterOrEqual(t, m.WeeksEligible, 0)
		assert.LessOrEqual(t, m.WeeksEligible, WindowSize)
		if m.WeeksEligible == 0 {
			assert.Nil(t, m.Average)
		} else {
			require.NotNil(t, m.Average)
			sum := 0
			for _, c := range m.Timeline {
				sum += c.Or(0)
			}
			assert.Equal(t, sum/m.WeeksEligible, *m.Average)
		}

		if !m.Eligible {
			seenIneligible = true
		} else {
			assert.False(t, seenIneligible, "eligible member after ineligible one at %d", i)
		}

		if i > 0 && ranked[i-1].Eligible == m.Eligible && m.Average != nil {
			require.NotNil(t, ranked[i-1].Average, "defined average after undefined at %d", i)
			assert.GreaterOrEqual(t, *ranked[i-1].Average, *m.Average)
		}
	}
}

func tags(members []RankedMember) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Tag
	}
	return out
}
