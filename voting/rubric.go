package voting

import "sort"

// Criterion is one named rubric line with its integer scale.
type Criterion struct {
	Name     string
	MinScore int
	MaxScore int
	Order    int
}

// JuryRow is one juror's latest evaluation of a team.
type JuryRow struct {
	JuryCode string
	Scores   map[string]int
}

type CriterionAverage struct {
	Name    string
	Average float64
}

// JuryAggregate is a team's jury component: each criterion averaged across
// jurors, then the averages summed. Scored distinguishes "no jury rows yet"
// from a genuine all-zero evaluation.
type JuryAggregate struct {
	Scored      bool
	Rows        int
	Total       float64
	ByCriterion []CriterionAverage
}

// RubricMax is the highest jury total a team can reach under this rubric.
func RubricMax(criteria []Criterion) int {
	max := 0
	for _, c := range criteria {
		max += c.MaxScore
	}
	return max
}

// AggregateJuryScores averages each criterion over the rows that scored it
// and sums the averages. Rubrics with different criteria sets or scales are
// not comparable, so the caller must pass the single criteria set active for
// the event.
func AggregateJuryScores(criteria []Criterion, rows []JuryRow) JuryAggregate {
	ordered := make([]Criterion, len(criteria))
	copy(ordered, criteria)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	agg := JuryAggregate{
		Rows:        len(rows),
		Scored:      len(rows) > 0,
		ByCriterion: make([]CriterionAverage, 0, len(ordered)),
	}

	for _, criterion := range ordered {
		sum := 0
		count := 0
		for _, row := range rows {
			if value, ok := row.Scores[criterion.Name]; ok {
				sum += value
				count++
			}
		}
		average := 0.0
		if count > 0 {
			average = float64(sum) / float64(count)
		}
		agg.ByCriterion = append(agg.ByCriterion, CriterionAverage{Name: criterion.Name, Average: average})
		agg.Total += average
	}

	return agg
}
