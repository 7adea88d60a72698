package voting

import (
	"errors"
	"fmt"
)

var ErrInvalidAmount = errors.New("amounts must be non-negative whole numbers")
var ErrSelfInvestment = errors.New("investing in your own team is not allowed")
var ErrAlreadyVoted = errors.New("portfolio was already submitted")
var ErrInvalidMultipliers = errors.New("rank multipliers must be strictly decreasing and positive")

// WrongTeamCountError reports how many teams were funded vs how many the
// event requires.
type WrongTeamCountError struct {
	Got  int
	Want int
}

func (e *WrongTeamCountError) Error() string {
	return fmt.Sprintf("portfolio must fund exactly %d teams, got %d", e.Want, e.Got)
}

// BudgetExceededError reports the allocated total against the wallet balance.
type BudgetExceededError struct {
	Allocated int
	Available int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("allocated %d exceeds wallet balance %d", e.Allocated, e.Available)
}
