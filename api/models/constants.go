package models

var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type VoterRole string

const (
	RoleStudent VoterRole = "student"
	RoleJury    VoterRole = "jury"
)

var ValidRoles = map[VoterRole]string{
	RoleStudent: "student",
	RoleJury:    "jury",
}

type EventPhase string

const (
	PhaseRegistration EventPhase = "registration"
	PhaseHacking      EventPhase = "hacking"
	PhaseVoting       EventPhase = "voting"
	PhaseJudging      EventPhase = "judging"
	PhaseResults      EventPhase = "results"
)

var ValidPhases = map[EventPhase]string{
	PhaseRegistration: "registration",
	PhaseHacking:      "hacking",
	PhaseVoting:       "voting",
	PhaseJudging:      "judging",
	PhaseResults:      "results",
}

// Error kinds returned in ErrorResponse.Kind so clients can tell validation
// failures apart without parsing message strings.
const (
	KindInvalidAmount     = "invalid_amount"
	KindSelfInvestment    = "self_investment_not_allowed"
	KindWrongTeamCount    = "wrong_team_count"
	KindBudgetExceeded    = "budget_exceeded"
	KindAlreadyVoted      = "already_voted"
	KindVotingClosed      = "voting_closed"
	KindSubmissionFailed  = "submission_failed"
	KindComputationFailed = "computation_failed"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
