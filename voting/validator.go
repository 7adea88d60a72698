// Package voting holds the pure scoring core: portfolio validation, jury
// rubric aggregation, the blended leaderboard and the top-investor ranking.
// Nothing in here touches storage; callers feed it rows and get results.
package voting

import (
	"math"
	"sort"
)

// Allocation is one validated portfolio line.
type Allocation struct {
	TeamID int
	Amount int
}

// PortfolioInput carries everything needed to validate a draft ballot.
// Amounts arrive as float64 so fractional values coming off the wire can be
// rejected explicitly instead of being silently truncated.
type PortfolioInput struct {
	WalletBalance int
	OwnTeamID     int
	RequiredTeams int
	HasVoted      bool
	Amounts       map[int]float64
}

// maxAllocationAmount caps a single line. Amounts above it cannot be a legal
// spend from any wallet and would not survive the int conversion intact.
const maxAllocationAmount = math.MaxInt32

// ValidatePortfolio checks a draft allocation and returns the normalized
// ballot (zero amounts stripped, ordered by team id) or the first rule it
// breaks. It is side-effect free; the transactional submit re-applies the
// uniqueness guard under storage isolation.
func ValidatePortfolio(in PortfolioInput) ([]Allocation, error) {
	for _, amount := range in.Amounts {
		if amount < 0 || amount > maxAllocationAmount || amount != math.Trunc(amount) {
			return nil, ErrInvalidAmount
		}
	}

	if own, ok := in.Amounts[in.OwnTeamID]; ok && own > 0 {
		return nil, ErrSelfInvestment
	}

	allocations := make([]Allocation, 0, len(in.Amounts))
	total := 0
	for teamID, amount := range in.Amounts {
		if amount == 0 {
			continue
		}
		allocations = append(allocations, Allocation{TeamID: teamID, Amount: int(amount)})
		total += int(amount)
	}

	if len(allocations) != in.RequiredTeams {
		return nil, &WrongTeamCountError{Got: len(allocations), Want: in.RequiredTeams}
	}

	if total > in.WalletBalance {
		return nil, &BudgetExceededError{Allocated: total, Available: in.WalletBalance}
	}

	if in.HasVoted {
		return nil, ErrAlreadyVoted
	}

	sort.Slice(allocations, func(i, j int) bool {
		return allocations[i].TeamID < allocations[j].TeamID
	})
	return allocations, nil
}
