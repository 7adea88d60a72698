package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedTeams() []LeaderboardEntry {
	return []LeaderboardEntry{
		{Rank: 1, TeamID: 1, TeamName: "Rocket"},
		{Rank: 2, TeamID: 2, TeamName: "Lizard"},
		{Rank: 3, TeamID: 3, TeamName: "Falcon"},
		{Rank: 4, TeamID: 4, TeamName: "Walrus"},
	}
}

func TestComputeTopInvestors(t *testing.T) {
	multipliers := []int{3, 2, 1}

	t.Run("Happy path - winning investments weighted by rank", func(t *testing.T) {
		ledger := []LedgerEntry{
			{VoterCode: "AAAAA", TeamID: 1, Amount: 500},
			{VoterCode: "AAAAA", TeamID: 3, Amount: 300},
			{VoterCode: "AAAAA", TeamID: 4, Amount: 200},
		}

		entries, err := ComputeTopInvestors(rankedTeams(), ledger, map[string]int{"AAAAA": 9}, multipliers)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		investor := entries[0]
		assert.Equal(t, 1, investor.Rank)
		assert.Equal(t, 9, investor.TeamID)
		// 500*3 + 300*1; the rank-4 investment earns nothing
		assert.Equal(t, 1800, investor.ROIScore)
		assert.Equal(t, 1000, investor.TotalInvested)
		require.Len(t, investor.Winning, 2)
		assert.Equal(t, 1, investor.Winning[0].Rank)
		assert.Equal(t, 1500, investor.Winning[0].Weighted)
		assert.Equal(t, 3, investor.Winning[1].Rank)
	})

	t.Run("Happy path - voters without a winning investment are excluded", func(t *testing.T) {
		ledger := []LedgerEntry{
			{VoterCode: "AAAAA", TeamID: 2, Amount: 100},
			{VoterCode: "BBBBB", TeamID: 4, Amount: 1000},
		}

		entries, err := ComputeTopInvestors(rankedTeams(), ledger, nil, multipliers)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "AAAAA", entries[0].VoterCode)
	})

	t.Run("Happy path - ties broken by total invested then code", func(t *testing.T) {
		ledger := []LedgerEntry{
			{VoterCode: "CCCCC", TeamID: 1, Amount: 100},
			{VoterCode: "AAAAA", TeamID: 1, Amount: 100},
			{VoterCode: "BBBBB", TeamID: 1, Amount: 100},
			{VoterCode: "BBBBB", TeamID: 4, Amount: 900},
		}

		entries, err := ComputeTopInvestors(rankedTeams(), ledger, nil, multipliers)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "BBBBB", entries[0].VoterCode)
		assert.Equal(t, "AAAAA", entries[1].VoterCode)
		assert.Equal(t, "CCCCC", entries[2].VoterCode)
	})

	t.Run("Happy path - fewer ranked teams than multipliers", func(t *testing.T) {
		leaderboard := []LeaderboardEntry{{Rank: 1, TeamID: 1, TeamName: "Rocket"}}
		ledger := []LedgerEntry{{VoterCode: "AAAAA", TeamID: 1, Amount: 200}}

		entries, err := ComputeTopInvestors(leaderboard, ledger, nil, multipliers)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 600, entries[0].ROIScore)
	})

	t.Run("Unhappy path - empty multipliers", func(t *testing.T) {
		_, err := ComputeTopInvestors(rankedTeams(), nil, nil, nil)

		assert.ErrorIs(t, err, ErrInvalidMultipliers)
	})

	t.Run("Unhappy path - multipliers not strictly decreasing", func(t *testing.T) {
		_, err := ComputeTopInvestors(rankedTeams(), nil, nil, []int{3, 3, 1})

		assert.ErrorIs(t, err, ErrInvalidMultipliers)
	})

	t.Run("Unhappy path - non-positive multiplier", func(t *testing.T) {
		_, err := ComputeTopInvestors(rankedTeams(), nil, nil, []int{2, 1, 0})

		assert.ErrorIs(t, err, ErrInvalidMultipliers)
	})
}
