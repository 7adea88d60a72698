package voting

import "sort"

// LedgerEntry is one voter->team transfer as read from the wallet ledger.
type LedgerEntry struct {
	VoterCode string
	TeamID    int
	Amount    int
}

// WinningInvestment is one transfer into a team that finished in the money.
type WinningInvestment struct {
	TeamID     int
	TeamName   string
	Rank       int
	Amount     int
	Multiplier int
	Weighted   int
}

type TopInvestorEntry struct {
	Rank          int
	VoterCode     string
	TeamID        int
	Winning       []WinningInvestment
	TotalInvested int
	ROIScore      int
}

// ComputeTopInvestors rewards voters who put stake on the teams that ended up
// on top: an investment into the rank-r team scores amount times the r-th
// multiplier. Losing investments still count toward the total invested but
// contribute nothing to the ROI score, and voters without a single winning
// investment are left out entirely. voterTeams maps voter code to own team id
// for display. Deterministic order: ROI desc, total invested desc, code asc.
func ComputeTopInvestors(leaderboard []LeaderboardEntry, ledger []LedgerEntry, voterTeams map[string]int, multipliers []int) ([]TopInvestorEntry, error) {
	if len(multipliers) == 0 {
		return nil, ErrInvalidMultipliers
	}
	for i, m := range multipliers {
		if m <= 0 || (i > 0 && m >= multipliers[i-1]) {
			return nil, ErrInvalidMultipliers
		}
	}

	type winner struct {
		rank       int
		multiplier int
		name       string
	}
	winners := make(map[int]winner)
	for _, entry := range leaderboard {
		if entry.Rank > len(multipliers) {
			break
		}
		winners[entry.TeamID] = winner{
			rank:       entry.Rank,
			multiplier: multipliers[entry.Rank-1],
			name:       entry.TeamName,
		}
	}

	byVoter := make(map[string]*TopInvestorEntry)
	for _, transfer := range ledger {
		investor, ok := byVoter[transfer.VoterCode]
		if !ok {
			investor = &TopInvestorEntry{
				VoterCode: transfer.VoterCode,
				TeamID:    voterTeams[transfer.VoterCode],
			}
			byVoter[transfer.VoterCode] = investor
		}
		investor.TotalInvested += transfer.Amount

		if w, won := winners[transfer.TeamID]; won {
			weighted := transfer.Amount * w.multiplier
			investor.Winning = append(investor.Winning, WinningInvestment{
				TeamID:     transfer.TeamID,
				TeamName:   w.name,
				Rank:       w.rank,
				Amount:     transfer.Amount,
				Multiplier: w.multiplier,
				Weighted:   weighted,
			})
			investor.ROIScore += weighted
		}
	}

	entries := make([]TopInvestorEntry, 0, len(byVoter))
	for _, investor := range byVoter {
		if investor.ROIScore == 0 {
			continue
		}
		sort.Slice(investor.Winning, func(i, j int) bool {
			return investor.Winning[i].Rank < investor.Winning[j].Rank
		})
		entries = append(entries, *investor)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ROIScore != entries[j].ROIScore {
			return entries[i].ROIScore > entries[j].ROIScore
		}
		if entries[i].TotalInvested != entries[j].TotalInvested {
			return entries[i].TotalInvested > entries[j].TotalInvested
		}
		return entries[i].VoterCode < entries[j].VoterCode
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
