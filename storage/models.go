package storage

import "time"

type Voter struct {
	Code          string    `dynamodbav:"PK"`
	Role          string    `dynamodbav:"Role"`
	EventID       int       `dynamodbav:"EventID"`
	TeamID        int       `dynamodbav:"TeamID"`
	WalletBalance int       `dynamodbav:"WalletBalance"`
	CreatedAt     time.Time `dynamodbav:"CreatedAt"`
}

type Team struct {
	ID          int      `dynamodbav:"PK"`
	EventID     int      `dynamodbav:"EventID"`
	Name        string   `dynamodbav:"Name"`
	TableNumber int      `dynamodbav:"TableNumber"`
	Members     []string `dynamodbav:"Members"`
	Description string   `dynamodbav:"Description"`
}

type Event struct {
	ID              int    `dynamodbav:"PK"`
	Name            string `dynamodbav:"Name"`
	Phase           string `dynamodbav:"Phase"`
	RubricVersion   string `dynamodbav:"RubricVersion"`
	PortfolioSize   int    `dynamodbav:"PortfolioSize"`
	StartingBalance int    `dynamodbav:"StartingBalance"`
}

// Transaction is one append-only ledger row: voter -> team, positive amount.
// A ballot also writes a marker row (SK=BALLOT, no amount) under the same PK;
// the marker is the uniqueness guard for concurrent double-submits.
type Transaction struct {
	VoterCode string    `dynamodbav:"PK" json:"voterCode"`
	SortKey   string    `dynamodbav:"SK" json:"-"`
	EventID   int       `dynamodbav:"EventID" json:"eventId"`
	TeamID    int       `dynamodbav:"TeamID" json:"teamId"`
	Amount    int       `dynamodbav:"Amount" json:"amount"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

// JuryScore holds one juror's latest rubric evaluation of one team.
// Keyed (team, juror) so re-scoring overwrites instead of appending.
type JuryScore struct {
	TeamID    int            `dynamodbav:"PK"`
	SortKey   string         `dynamodbav:"SK"`
	JuryCode  string         `dynamodbav:"JuryCode"`
	EventID   int            `dynamodbav:"EventID"`
	Scores    map[string]int `dynamodbav:"Scores"`
	Comment   string         `dynamodbav:"Comment"`
	CreatedAt time.Time      `dynamodbav:"CreatedAt"`
	UpdatedAt time.Time      `dynamodbav:"UpdatedAt"`
}

type RubricCriterion struct {
	ID            string `dynamodbav:"PK"`
	RubricVersion string `dynamodbav:"RubricVersion"`
	Name          string `dynamodbav:"Name"`
	Description   string `dynamodbav:"Description"`
	MinScore      int    `dynamodbav:"MinScore"`
	MaxScore      int    `dynamodbav:"MaxScore"`
	Order         int    `dynamodbav:"DisplayOrder"`
}
