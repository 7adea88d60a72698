package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/alex-pricope/ideathon-voting-system/voting"
	"github.com/gin-gonic/gin"
)

// VotingRules carries the configured voting defaults into the controller.
type VotingRules struct {
	PortfolioSize    int
	JuryWeight       float64
	InvestmentWeight float64
	RankMultipliers  []int
}

type VotingController struct {
	votersStorage       storage.VoterStorage
	transactionsStorage storage.TransactionStorage
	teamsStorage        storage.TeamStorage
	eventsStorage       storage.EventStorage
	rules               VotingRules
}

func NewVotingController(voterStorage storage.VoterStorage, transactionStorage storage.TransactionStorage,
	teamStorage storage.TeamStorage, eventStorage storage.EventStorage, rules VotingRules) *VotingController {
	return &VotingController{
		votersStorage:       voterStorage,
		transactionsStorage: transactionStorage,
		teamsStorage:        teamStorage,
		eventsStorage:       eventStorage,
		rules:               rules,
	}
}

func (c *VotingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/verify/:code", c.verifyCode)
	group.POST("/portfolio", c.submitPortfolio)
	group.GET("/portfolio/:code", c.getPortfolio)
}

// verifyCode godoc
// @Summary Verify an activation code
// @Description Checks if an activation code exists and returns its role, team, wallet and voting status
// @Tags voting
// @Produce json
// @Param code path string true "Activation code"
// @Success 200 {object} models.CodeValidationResponse
// @Failure 400 {object} models.ErrorResponse "Missing code from request"
// @Failure 404 {object} models.ErrorResponse "Code not found in storage"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/verify/{code} [get]
func (c *VotingController) verifyCode(g *gin.Context) {
	code := g.Param("code")
	if code == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "code is required"})
		return
	}

	voter, err := c.votersStorage.Get(g.Request.Context(), code)
	if err != nil {
		if errors.Is(err, storage.ErrCodeNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("code not found in storage: %s", code)})
			return
		}
		logging.Log.Errorf("error trying to get code from storage: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify code"})
		return
	}

	hasVoted := false
	if voter.Role == string(models.RoleStudent) {
		hasVoted, err = c.transactionsStorage.HasVoted(g.Request.Context(), code)
		if err != nil {
			logging.Log.Errorf("failed to check ballot for code %s: %v", code, err)
			g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not verify code"})
			return
		}
	}

	response := models.CodeValidationResponse{
		Valid:         true,
		Code:          voter.Code,
		Role:          voter.Role,
		EventID:       voter.EventID,
		TeamID:        voter.TeamID,
		WalletBalance: voter.WalletBalance,
		HasVoted:      hasVoted,
	}
	if voter.TeamID != 0 {
		team, err := c.teamsStorage.Get(g.Request.Context(), voter.TeamID)
		if err == nil && team != nil {
			response.TeamName = team.Name
		}
	}

	g.JSON(http.StatusOK, response)
}

// submitPortfolio godoc
// @Summary Submit an investment portfolio
// @Description Validates and atomically commits a student's full allocation across teams
// @Tags voting
// @Accept json
// @Produce json
// @Param portfolio body models.SubmitPortfolioRequest true "Portfolio submission"
// @Success 200 {object} models.SubmitPortfolioResponse
// @Failure 400 {object} models.ErrorResponse "Allocation breaks a validation rule"
// @Failure 404 {object} models.ErrorResponse "Unknown activation code"
// @Failure 409 {object} models.ErrorResponse "Already voted or voting closed"
// @Failure 500 {object} models.ErrorResponse "Submission failed, safe to retry"
// @Router /api/portfolio [post]
func (c *VotingController) submitPortfolio(g *gin.Context) {
	var req models.SubmitPortfolioRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	ctx := g.Request.Context()

	voter, err := c.votersStorage.Get(ctx, req.Code)
	if err != nil {
		if errors.Is(err, storage.ErrCodeNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "code not found"})
			return
		}
		logging.Log.Errorf("failed to load voter %s: %v", req.Code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load voter"})
		return
	}
	if voter.Role != string(models.RoleStudent) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "only student codes can submit a portfolio"})
		return
	}

	event, err := c.eventsStorage.Get(ctx, voter.EventID)
	if err != nil {
		logging.Log.Errorf("failed to load event %d: %v", voter.EventID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load event"})
		return
	}
	if event == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "event not found"})
		return
	}
	if event.Phase != string(models.PhaseVoting) {
		g.JSON(http.StatusConflict, &models.ErrorResponse{
			Error: fmt.Sprintf("voting is not open, event is in phase %s", event.Phase),
			Kind:  models.KindVotingClosed,
		})
		return
	}

	// Receivers have to be real teams of this event.
	teams, err := c.teamsStorage.GetByEvent(ctx, voter.EventID)
	if err != nil {
		logging.Log.Errorf("failed to load teams for event %d: %v", voter.EventID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}
	eventTeams := make(map[int]bool, len(teams))
	for _, team := range teams {
		eventTeams[team.ID] = true
	}

	amounts := make(map[int]float64, len(req.Allocations))
	for _, a := range req.Allocations {
		if !eventTeams[a.TeamID] {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: fmt.Sprintf("unknown team %d", a.TeamID)})
			return
		}
		amounts[a.TeamID] += a.Amount
	}

	// Client-side drafts are never trusted; everything is re-checked here
	// against fresh storage reads before the transactional write.
	hasVoted, err := c.transactionsStorage.HasVoted(ctx, voter.Code)
	if err != nil {
		logging.Log.Errorf("failed to check ballot for code %s: %v", voter.Code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not check voting status"})
		return
	}

	requiredTeams := c.rules.PortfolioSize
	if event.PortfolioSize > 0 {
		requiredTeams = event.PortfolioSize
	}

	allocations, err := voting.ValidatePortfolio(voting.PortfolioInput{
		WalletBalance: voter.WalletBalance,
		OwnTeamID:     voter.TeamID,
		RequiredTeams: requiredTeams,
		HasVoted:      hasVoted,
		Amounts:       amounts,
	})
	if err != nil {
		c.rejectPortfolio(g, voter.Code, err)
		return
	}

	entries := make([]storage.PortfolioEntry, 0, len(allocations))
	for _, a := range allocations {
		entries = append(entries, storage.PortfolioEntry{TeamID: a.TeamID, Amount: a.Amount})
	}

	if err := c.transactionsStorage.SubmitPortfolio(ctx, voter.Code, voter.EventID, entries); err != nil {
		if errors.Is(err, storage.ErrAlreadyVoted) {
			// A concurrent submit won the race; the ballot exists, so this is
			// the same terminal outcome as the validation-time check.
			g.JSON(http.StatusConflict, &models.ErrorResponse{Error: voting.ErrAlreadyVoted.Error(), Kind: models.KindAlreadyVoted})
			return
		}
		logging.Log.Errorf("portfolio submission failed for voter %s: %v", voter.Code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "submission failed, no investments were recorded", Kind: models.KindSubmissionFailed})
		return
	}

	g.JSON(http.StatusOK, &models.SubmitPortfolioResponse{Message: "portfolio submitted", Submitted: len(entries)})
}

// rejectPortfolio maps validation errors to responses. These are expected
// user mistakes, not system failures, so nothing is logged above warn.
func (c *VotingController) rejectPortfolio(g *gin.Context, code string, err error) {
	var wrongCount *voting.WrongTeamCountError
	var budget *voting.BudgetExceededError

	switch {
	case errors.Is(err, voting.ErrInvalidAmount):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error(), Kind: models.KindInvalidAmount})
	case errors.Is(err, voting.ErrSelfInvestment):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error(), Kind: models.KindSelfInvestment})
	case errors.As(err, &wrongCount):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error(), Kind: models.KindWrongTeamCount})
	case errors.As(err, &budget):
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error(), Kind: models.KindBudgetExceeded})
	case errors.Is(err, voting.ErrAlreadyVoted):
		logging.Log.Warnf("duplicate portfolio rejected for voter %s", code)
		g.JSON(http.StatusConflict, &models.ErrorResponse{Error: err.Error(), Kind: models.KindAlreadyVoted})
	default:
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
	}
}

// getPortfolio godoc
// @Summary Get a voter's committed portfolio
// @Description Retrieves all investments for an activation code with team names and remaining balance
// @Tags voting
// @Produce json
// @Param code path string true "Activation code"
// @Success 200 {object} models.PortfolioResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/portfolio/{code} [get]
func (c *VotingController) getPortfolio(g *gin.Context) {
	code := g.Param("code")
	if code == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "code is required"})
		return
	}

	ctx := g.Request.Context()

	voter, err := c.votersStorage.Get(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrCodeNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "code not found"})
			return
		}
		logging.Log.Errorf("failed to load voter %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load voter"})
		return
	}

	transactions, err := c.transactionsStorage.GetByVoter(ctx, code)
	if err != nil {
		logging.Log.Errorf("failed to retrieve investments for code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not retrieve investments"})
		return
	}
	if len(transactions) == 0 {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "no portfolio found for the given code"})
		return
	}

	teams, err := c.teamsStorage.GetAll(ctx)
	if err != nil {
		logging.Log.Errorf("failed to load teams: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load teams"})
		return
	}
	teamNames := make(map[int]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	response := models.PortfolioResponse{
		Code:        code,
		Investments: make([]models.PortfolioLine, 0, len(transactions)),
	}
	for _, t := range transactions {
		response.Investments = append(response.Investments, models.PortfolioLine{
			TeamID:    t.TeamID,
			TeamName:  teamNames[t.TeamID],
			Amount:    t.Amount,
			CreatedAt: t.CreatedAt,
		})
		response.TotalInvested += t.Amount
	}
	response.RemainingBalance = voter.WalletBalance - response.TotalInvested

	g.JSON(http.StatusOK, response)
}
