package models

import (
	"time"

	"github.com/alex-pricope/ideathon-voting-system/storage"
)

type SubmitJuryScoreRequest struct {
	Code    string         `json:"code"`
	TeamID  int            `json:"teamId"`
	Scores  map[string]int `json:"scores"`
	Comment string         `json:"comment"`
}

type JuryScoreResponse struct {
	JuryCode  string         `json:"juryCode"`
	TeamID    int            `json:"teamId"`
	Scores    map[string]int `json:"scores"`
	Comment   string         `json:"comment,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func TransformJuryScoreFromStorage(s *storage.JuryScore) JuryScoreResponse {
	return JuryScoreResponse{
		JuryCode:  s.JuryCode,
		TeamID:    s.TeamID,
		Scores:    s.Scores,
		Comment:   s.Comment,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
