package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLeaderboard(t *testing.T) {
	weights := Weights{Jury: 0.7, Investment: 0.3}

	t.Run("Happy path - blended score from jury and investments", func(t *testing.T) {
		teams := []TeamInfo{
			{ID: 1, Name: "Rocket", TableNumber: 1},
			{ID: 2, Name: "Lizard", TableNumber: 2},
		}
		juryRows := map[int][]JuryRow{
			// total 32 of a 40 rubric -> jury component 80
			1: {{JuryCode: "AAAAA", Scores: map[string]int{"innovation": 8, "execution": 8, "impact": 8, "presentation": 8}}},
			2: {{JuryCode: "AAAAA", Scores: map[string]int{"innovation": 10, "execution": 10, "impact": 10, "presentation": 10}}},
		}
		totals := map[int]int{1: 600, 2: 1000}

		entries := ComputeLeaderboard(teams, classicRubric(), juryRows, totals, weights)

		require.Len(t, entries, 2)
		assert.Equal(t, 2, entries[0].TeamID)
		assert.InDelta(t, 100.0, entries[0].FinalScore, 1e-9)

		// 0.7*80 + 0.3*(600/1000*100)
		assert.Equal(t, 1, entries[1].TeamID)
		assert.InDelta(t, 74.0, entries[1].FinalScore, 1e-9)
		assert.Equal(t, 2, entries[1].Rank)
		assert.Equal(t, 600, entries[1].TotalInvestment)
	})

	t.Run("Happy path - ties broken by jury score then team id", func(t *testing.T) {
		teams := []TeamInfo{{ID: 3, Name: "C"}, {ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

		entries := ComputeLeaderboard(teams, classicRubric(), nil, nil, weights)

		require.Len(t, entries, 3)
		assert.Equal(t, []int{1, 2, 3}, []int{entries[0].TeamID, entries[1].TeamID, entries[2].TeamID})
		assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
	})

	t.Run("Happy path - investment normalized against the top team", func(t *testing.T) {
		teams := []TeamInfo{{ID: 1}, {ID: 2}}
		totals := map[int]int{1: 500, 2: 250}

		entries := ComputeLeaderboard(teams, classicRubric(), nil, totals, weights)

		assert.InDelta(t, 30.0, entries[0].FinalScore, 1e-9)
		assert.InDelta(t, 15.0, entries[1].FinalScore, 1e-9)
	})

	t.Run("Edge case - unscored team reports scored flag false", func(t *testing.T) {
		teams := []TeamInfo{{ID: 1}, {ID: 2}}
		juryRows := map[int][]JuryRow{1: {{JuryCode: "AAAAA", Scores: map[string]int{"innovation": 5}}}}

		entries := ComputeLeaderboard(teams, classicRubric(), juryRows, nil, weights)

		assert.True(t, entries[0].JuryScored)
		assert.False(t, entries[1].JuryScored)
	})

	t.Run("Edge case - empty rubric and no investments yield zero scores", func(t *testing.T) {
		teams := []TeamInfo{{ID: 1}}

		entries := ComputeLeaderboard(teams, nil, nil, nil, weights)

		require.Len(t, entries, 1)
		assert.Zero(t, entries[0].FinalScore)
	})
}
