package models

import "time"

// AllocationEntry carries the amount as a float so fractional values can be
// rejected with a proper validation error instead of a bind failure.
type AllocationEntry struct {
	TeamID int     `json:"teamId"`
	Amount float64 `json:"amount"`
}

type SubmitPortfolioRequest struct {
	Code        string            `json:"code"`
	Allocations []AllocationEntry `json:"allocations"`
}

type SubmitPortfolioResponse struct {
	Message   string `json:"message"`
	Submitted int    `json:"submitted"`
}

type PortfolioLine struct {
	TeamID    int       `json:"teamId"`
	TeamName  string    `json:"teamName"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

type PortfolioResponse struct {
	Code             string          `json:"code"`
	Investments      []PortfolioLine `json:"investments"`
	TotalInvested    int             `json:"totalInvested"`
	RemainingBalance int             `json:"remainingBalance"`
}
