package models

import (
	"github.com/alex-pricope/ideathon-voting-system/storage"
)

type TeamCreateRequest struct {
	ID          int      `json:"id"`
	EventID     int      `json:"eventId"`
	Name        string   `json:"name"`
	TableNumber int      `json:"tableNumber"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

type TeamUpdateRequest struct {
	EventID     int      `json:"eventId"`
	Name        string   `json:"name"`
	TableNumber int      `json:"tableNumber"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

type TeamResponse struct {
	ID          int      `json:"id"`
	EventID     int      `json:"eventId"`
	Name        string   `json:"name"`
	TableNumber int      `json:"tableNumber"`
	Members     []string `json:"members"`
	Description string   `json:"description"`
}

func TransformTeamFromStorage(t *storage.Team) TeamResponse {
	return TeamResponse{
		ID:          t.ID,
		EventID:     t.EventID,
		Name:        t.Name,
		TableNumber: t.TableNumber,
		Description: t.Description,
		Members:     t.Members,
	}
}
