// Package report renders tracker responses as plain-text tables for the terminal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"royale-tracker/internal/domain"
	"royale-tracker/internal/ranking"
	"royale-tracker/internal/rpc"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	nameWidth = 16
	missing   = "-"
)

var printer = message.NewPrinter(language.English)

// Clan writes the overview block for c.
func Clan(w io.Writer, c rpc.Clan) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printer.Fprintf(tw, "%s\t%s\n", c.Name, c.Tag)
	printer.Fprintf(tw, "Type:\t%s\n", orMissing(c.Type))
	printer.Fprintf(tw, "Location:\t%s\n", orMissing(c.Location))
	printer.Fprintf(tw, "War league:\t%s\n", orMissing(c.WarLeague))
	printer.Fprintf(tw, "Clan score:\t%d\n", c.ClanScore)
	printer.Fprintf(tw, "War trophies:\t%d\n", c.ClanWarTrophies)
	printer.Fprintf(tw, "Required trophies:\t%d\n", c.RequiredTrophies)
	printer.Fprintf(tw, "Donations/week:\t%d\n", c.DonationsPerWeek)
	printer.Fprintf(tw, "Members:\t%d/50\n", c.MemberCount)
	return tw.Flush()
}

// Members writes the ranked members table followed by the roll-up lines.
func Members(w io.Writer, r *rpc.ClanReportResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tName\tLast Seen\tCurrent\tAvg Fame\tWeeks\tRole\tTrophies\tDonations\t")
	for _, m := range r.Members {
		printer.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d/%d\t%s\t%d\t%d\t\n",
			m.Position,
			truncate(m.Name, nameWidth),
			m.LastSeenLabel,
			fame(m.Current),
			average(m.Average),
			m.WeeksEligible, ranking.WindowSize,
			m.Role.DisplayName(),
			m.Trophies,
			m.Donations,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := r.Summary
	fmt.Fprintln(w)
	printer.Fprintf(w, "Members: %d (%d ranked on %d+ wars)\n", s.Members, s.EligibleMembers, ranking.MinEligibleWeeks)
	printer.Fprintf(w, "Wars tracked: %d of last %d\n", s.WarsTracked, ranking.WindowSize)
	printer.Fprintf(w, "Current war fame: %d\n", s.TotalCurrentFame)
	printer.Fprintf(w, "Total donations: %d\n", s.TotalDonations)
	_, err := printer.Fprintf(w, "Average trophies: %d\n", s.AverageTrophies)
	return err
}

// Clans writes one line per search hit.
func Clans(w io.Writer, clans []rpc.Clan) error {
	if len(clans) == 0 {
		_, err := fmt.Fprintln(w, "No clans found.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range clans {
		printer.Fprintf(tw, "%s\t%s\t%d members\t%d war trophies\n", c.Tag, c.Name, c.MemberCount, c.ClanWarTrophies)
	}
	return tw.Flush()
}

func Player(w io.Writer, p *rpc.PlayerResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	printer.Fprintf(tw, "%s\t%s\n", p.Name, p.Tag)
	if p.ClanTag != "" {
		printer.Fprintf(tw, "Clan:\t%s (%s) %s\n", p.ClanName, p.ClanTag, domain.Role(p.Role).DisplayName())
	}
	printer.Fprintf(tw, "Level:\t%d\n", p.ExpLevel)
	printer.Fprintf(tw, "Trophies:\t%d (best %d)\n", p.Trophies, p.BestTrophies)
	printer.Fprintf(tw, "Arena:\t%s\n", orMissing(p.Arena))
	printer.Fprintf(tw, "Record:\t%d W / %d L in %d battles\n", p.Wins, p.Losses, p.BattleCount)
	printer.Fprintf(tw, "Three crown wins:\t%d\n", p.ThreeCrownWins)
	for i, c := range p.TopCards {
		label := ""
		if i == 0 {
			label = "Top cards:"
		}
		printer.Fprintf(tw, "%s\t%s (%d)\n", label, c.Name, c.Level)
	}
	return tw.Flush()
}

func Battles(w io.Writer, battles []rpc.Battle) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Result\tCrowns\tOpponent\tMode\tTrophies")
	for _, b := range battles {
		printer.Fprintf(tw, "%s\t%d-%d\t%s\t%s\t%+d\n",
			b.Result, b.TeamCrowns, b.OpponentCrowns, truncate(orMissing(b.OpponentName), nameWidth), orMissing(b.GameMode), b.TrophyChange)
	}
	return tw.Flush()
}

func Chests(w io.Writer, chests []rpc.Chest) error {
	for _, c := range chests {
		label := "Next"
		if c.Index > 0 {
			label = printer.Sprintf("+%d", c.Index)
		}
		if _, err := printer.Fprintf(w, "%5s  %s\n", label, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func fame(c ranking.Contribution) string {
	if v, ok := c.Value(); ok {
		return printer.Sprintf("%d", v)
	}
	return missing
}

func average(avg *int) string {
	if avg == nil {
		return missing
	}
	return printer.Sprintf("%d", *avg)
}

func orMissing(s string) string {
	if s == "" {
		return missing
	}
	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
