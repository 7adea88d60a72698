package models

import "github.com/alex-pricope/ideathon-voting-system/storage"

type EventCreateRequest struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	RubricVersion   string `json:"rubricVersion"`
	PortfolioSize   int    `json:"portfolioSize"`
	StartingBalance int    `json:"startingBalance"`
}

type EventUpdateRequest struct {
	Name            string `json:"name"`
	RubricVersion   string `json:"rubricVersion"`
	PortfolioSize   int    `json:"portfolioSize"`
	StartingBalance int    `json:"startingBalance"`
}

type EventPhaseRequest struct {
	Phase string `json:"phase"`
}

type EventResponse struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Phase           string `json:"phase"`
	RubricVersion   string `json:"rubricVersion"`
	PortfolioSize   int    `json:"portfolioSize"`
	StartingBalance int    `json:"startingBalance"`
}

func TransformEventFromStorage(e *storage.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Name:            e.Name,
		Phase:           e.Phase,
		RubricVersion:   e.RubricVersion,
		PortfolioSize:   e.PortfolioSize,
		StartingBalance: e.StartingBalance,
	}
}
