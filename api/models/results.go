package models

import "github.com/alex-pricope/ideathon-voting-system/voting"

type LeaderboardEntryResponse struct {
	Rank            int     `json:"rank"`
	TeamID          int     `json:"teamId"`
	TeamName        string  `json:"teamName"`
	TableNumber     int     `json:"tableNumber,omitempty"`
	JuryScore       float64 `json:"juryScore"`
	JuryScored      bool    `json:"juryScored"`
	TotalInvestment int     `json:"totalInvestment"`
	FinalScore      float64 `json:"finalScore"`
}

type LeaderboardResponse struct {
	EventID int                        `json:"eventId"`
	Results []LeaderboardEntryResponse `json:"results"`
}

type WinningInvestmentResponse struct {
	TeamID     int    `json:"teamId"`
	TeamName   string `json:"teamName"`
	Rank       int    `json:"rank"`
	Amount     int    `json:"amount"`
	Multiplier int    `json:"multiplier"`
	Weighted   int    `json:"weighted"`
}

type TopInvestorEntryResponse struct {
	Rank          int                         `json:"rank"`
	VoterCode     string                      `json:"voterCode"`
	TeamID        int                         `json:"teamId,omitempty"`
	TeamName      string                      `json:"teamName,omitempty"`
	Winning       []WinningInvestmentResponse `json:"winningInvestments"`
	TotalInvested int                         `json:"totalInvested"`
	ROIScore      int                         `json:"roiScore"`
}

type TopInvestorsResponse struct {
	EventID int                        `json:"eventId"`
	Results []TopInvestorEntryResponse `json:"results"`
}

func TransformLeaderboardEntry(e voting.LeaderboardEntry) LeaderboardEntryResponse {
	return LeaderboardEntryResponse{
		Rank:            e.Rank,
		TeamID:          e.TeamID,
		TeamName:        e.TeamName,
		TableNumber:     e.TableNumber,
		JuryScore:       e.JuryScore,
		JuryScored:      e.JuryScored,
		TotalInvestment: e.TotalInvestment,
		FinalScore:      e.FinalScore,
	}
}

func TransformTopInvestorEntry(e voting.TopInvestorEntry, teamNames map[int]string) TopInvestorEntryResponse {
	winning := make([]WinningInvestmentResponse, 0, len(e.Winning))
	for _, w := range e.Winning {
		winning = append(winning, WinningInvestmentResponse{
			TeamID:     w.TeamID,
			TeamName:   w.TeamName,
			Rank:       w.Rank,
			Amount:     w.Amount,
			Multiplier: w.Multiplier,
			Weighted:   w.Weighted,
		})
	}
	return TopInvestorEntryResponse{
		Rank:          e.Rank,
		VoterCode:     e.VoterCode,
		TeamID:        e.TeamID,
		TeamName:      teamNames[e.TeamID],
		Winning:       winning,
		TotalInvested: e.TotalInvested,
		ROIScore:      e.ROIScore,
	}
}
