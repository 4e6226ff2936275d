package ranking

type ClanSummary struct {
	Members          int `json:"members"`
	EligibleMembers  int `json:"eligible_members"`
	TotalDonations   int `json:"total_donations"`
	AverageTrophies  int `json:"average_trophies"`
	TotalCurrentFame int `json:"total_current_fame"`
	WarsTracked      int `json:"wars_tracked"`
}

// Summarize rolls up the ranked member set. WarsTracked is filled in by Build,
// which still has the war log.
func Summarize(members []RankedMember) ClanSummary {
	var s ClanSummary
	trophies := 0
	for _, m := range members {
		s.Members++
		s.TotalDonations += m.Donations
		s.TotalCurrentFame += m.Current.Or(0)
		trophies += m.Trophies
		if m.Eligible {
			s.EligibleMembers++
		}
	}
	if s.Members > 0 {
		s.AverageTrophies = trophies / s.Members
	}
	return s
}
