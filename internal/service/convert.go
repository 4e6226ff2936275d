package service

import (
	"royale-tracker/internal/api"
	"royale-tracker/internal/domain"
)

func toDomainClan(c *api.ClanResponse) domain.Clan {
	clan := domain.Clan{
		Tag:              c.Tag,
		Name:             c.Name,
		Description:      c.Description,
		Type:             c.Type,
		Location:         c.Location.Name,
		ClanScore:        c.ClanScore,
		ClanWarTrophies:  c.ClanWarTrophies,
		RequiredTrophies: c.RequiredTrophies,
		DonationsPerWeek: c.DonationsPerWeek,
		MemberCount:      c.Members,
	}
	if c.ClanWarLeague != nil {
		clan.WarLeague = c.ClanWarLeague.Name
	}
	return clan
}

func toDomainMembers(resp *api.MembersResponse) []domain.Member {
	if resp == nil {
		return nil
	}
	members := make([]domain.Member, 0, len(resp.Items))
	for _, m := range resp.Items {
		members = append(members, domain.Member{
			Tag:       m.Tag,
			Name:      m.Name,
			Role:      domain.Role(m.Role),
			Trophies:  m.Trophies,
			Donations: m.Donations,
			LastSeen:  m.LastSeen,
		})
	}
	return members
}

func toDomainStanding(rank, trophyChange int, c api.RiverClan) domain.Standing {
	participants := make([]domain.Participant, 0, len(c.Participants))
	for _, p := range c.Participants {
		participants = append(participants, domain.Participant{
			Tag:       p.Tag,
			Name:      p.Name,
			Fame:      p.Fame,
			DecksUsed: p.DecksUsed,
		})
	}
	return domain.Standing{
		Rank:         rank,
		TrophyChange: trophyChange,
		ClanTag:      c.Tag,
		ClanName:     c.Name,
		Fame:         c.Fame,
		Participants: participants,
	}
}

func toDomainCurrentWar(resp *api.CurrentRiverRaceResponse) *domain.CurrentWar {
	if resp == nil {
		return nil
	}
	war := &domain.CurrentWar{
		State:  resp.State,
		Period: resp.PeriodType,
		Clan:   toDomainStanding(0, 0, resp.Clan),
	}
	for _, c := range resp.Clans {
		war.Clans = append(war.Clans, toDomainStanding(0, 0, c))
	}
	return war
}

// toDomainWarLog keeps the API order, which is most recent first.
func toDomainWarLog(resp *api.RiverRaceLogResponse) []domain.RiverRace {
	if resp == nil {
		return nil
	}
	wars := make([]domain.RiverRace, 0, len(resp.Items))
	for _, item := range resp.Items {
		race := domain.RiverRace{
			SeasonID:     item.SeasonID,
			SectionIndex: item.SectionIndex,
			CreatedDate:  item.CreatedDate,
		}
		for _, s := range item.Standings {
			race.Standings = append(race.Standings, toDomainStanding(s.Rank, s.TrophyChange, s.Clan))
		}
		wars = append(wars, race)
	}
	return wars
}

func toDomainCards(cards []api.PlayerCard) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, domain.Card{Name: c.Name, Level: c.Level, MaxLevel: c.MaxLevel})
	}
	return out
}

func toDomainBattle(b api.BattleResponse) domain.Battle {
	var team, opponent api.BattleSide
	if len(b.Team) > 0 {
		team = b.Team[0]
	}
	if len(b.Opponent) > 0 {
		opponent = b.Opponent[0]
	}
	return domain.Battle{
		Type:             b.Type,
		BattleTime:       b.BattleTime,
		Arena:            b.Arena.Name,
		GameMode:         b.GameMode.Name,
		TeamCrowns:       team.Crowns,
		OpponentCrowns:   opponent.Crowns,
		OpponentName:     opponent.Name,
		OpponentTrophies: opponent.StartingTrophies,
		TrophyChange:     team.TrophyChange,
		Result:           domain.ResultFromCrowns(team.Crowns, opponent.Crowns),
	}
}
