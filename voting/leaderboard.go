package voting

import "sort"

// TeamInfo shapes a leaderboard row; roster data comes from storage.
type TeamInfo struct {
	ID          int
	Name        string
	TableNumber int
}

// Weights blends the jury component against the investment component.
// They should sum to 1; the defaults are 0.7 jury / 0.3 investment.
type Weights struct {
	Jury       float64
	Investment float64
}

type LeaderboardEntry struct {
	Rank            int
	TeamID          int
	TeamName        string
	TableNumber     int
	JuryScore       float64
	JuryScored      bool
	TotalInvestment int
	FinalScore      float64
}

// ComputeLeaderboard recomputes the full standings from scratch. Both
// components are brought onto a 0-100 scale before blending: the jury total
// is divided by the rubric maximum, and investments are normalized against
// the highest team total observed in the event, so the top-earning team
// always contributes the full investment weight. Ordering is deterministic:
// final score desc, then jury score desc, then team id asc.
func ComputeLeaderboard(teams []TeamInfo, criteria []Criterion, juryRows map[int][]JuryRow, totals map[int]int, w Weights) []LeaderboardEntry {
	rubricMax := RubricMax(criteria)

	maxTotal := 0
	for _, total := range totals {
		if total > maxTotal {
			maxTotal = total
		}
	}

	entries := make([]LeaderboardEntry, 0, len(teams))
	for _, team := range teams {
		agg := AggregateJuryScores(criteria, juryRows[team.ID])
		total := totals[team.ID]

		juryComponent := 0.0
		if rubricMax > 0 {
			juryComponent = agg.Total / float64(rubricMax) * 100
		}
		investmentComponent := 0.0
		if maxTotal > 0 {
			investmentComponent = float64(total) / float64(maxTotal) * 100
		}

		entries = append(entries, LeaderboardEntry{
			TeamID:          team.ID,
			TeamName:        team.Name,
			TableNumber:     team.TableNumber,
			JuryScore:       agg.Total,
			JuryScored:      agg.Scored,
			TotalInvestment: total,
			FinalScore:      w.Jury*juryComponent + w.Investment*investmentComponent,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FinalScore != entries[j].FinalScore {
			return entries[i].FinalScore > entries[j].FinalScore
		}
		if entries[i].JuryScore != entries[j].JuryScore {
			return entries[i].JuryScore > entries[j].JuryScore
		}
		return entries[i].TeamID < entries[j].TeamID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
