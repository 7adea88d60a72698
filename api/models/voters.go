package models

import (
	"time"

	"github.com/alex-pricope/ideathon-voting-system/storage"
)

type CreateCodeRequest struct {
	Count   int    `json:"count"`
	Role    string `json:"role"`
	EventID int    `json:"eventId"`
	TeamID  int    `json:"teamId"`
}

type CodeResponse struct {
	Code          string    `json:"code"`
	Role          string    `json:"role"`
	EventID       int       `json:"eventId"`
	TeamID        int       `json:"teamId,omitempty"`
	WalletBalance int       `json:"walletBalance,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CodeValidationResponse struct {
	Valid         bool   `json:"valid"`
	Code          string `json:"code"`
	Role          string `json:"role"`
	EventID       int    `json:"eventId"`
	TeamID        int    `json:"teamId,omitempty"`
	TeamName      string `json:"teamName,omitempty"`
	WalletBalance int    `json:"walletBalance,omitempty"`
	HasVoted      bool   `json:"hasVoted"`
}

func TransformVoterFromStorage(v *storage.Voter) CodeResponse {
	return CodeResponse{
		Code:          v.Code,
		Role:          v.Role,
		EventID:       v.EventID,
		TeamID:        v.TeamID,
		WalletBalance: v.WalletBalance,
		CreatedAt:     v.CreatedAt,
	}
}
