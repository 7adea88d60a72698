package controllers

import (
	"net/http"
	"strconv"

	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/alex-pricope/ideathon-voting-system/voting"
	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	votersStorage       storage.VoterStorage
	transactionsStorage storage.TransactionStorage
	teamsStorage        storage.TeamStorage
	eventsStorage       storage.EventStorage
	juryScoresStorage   storage.JuryScoreStorage
	criteriaStorage     storage.RubricCriterionStorage
	rules               VotingRules
}

func NewResultsController(voterStorage storage.VoterStorage, transactionStorage storage.TransactionStorage,
	teamStorage storage.TeamStorage, eventStorage storage.EventStorage,
	juryScoreStorage storage.JuryScoreStorage, criteriaStorage storage.RubricCriterionStorage,
	rules VotingRules) *ResultsController {
	return &ResultsController{
		votersStorage:       voterStorage,
		transactionsStorage: transactionStorage,
		teamsStorage:        teamStorage,
		eventsStorage:       eventStorage,
		juryScoresStorage:   juryScoreStorage,
		criteriaStorage:     criteriaStorage,
		rules:               rules,
	}
}

func (c *ResultsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/results")

	group.GET("/leaderboard/:eventId", c.getLeaderboard)
	group.GET("/investors/:eventId", c.getTopInvestors)
}

// getLeaderboard godoc
// @Summary Get the event leaderboard
// @Description Ranked standings blending jury rubric averages with normalized investment totals, recomputed on every call
// @Tags results
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {object} models.LeaderboardResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse "Computation failed"
// @Router /api/results/leaderboard/{eventId} [get]
func (c *ResultsController) getLeaderboard(g *gin.Context) {
	eventID, err := strconv.Atoi(g.Param("eventId"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid event id"})
		return
	}

	entries, _, err := c.computeLeaderboard(g, eventID)
	if err != nil {
		return
	}

	response := models.LeaderboardResponse{
		EventID: eventID,
		Results: make([]models.LeaderboardEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		response.Results = append(response.Results, models.TransformLeaderboardEntry(e))
	}
	g.JSON(http.StatusOK, response)
}

// getTopInvestors godoc
// @Summary Get the top-investor ranking
// @Description Voters ranked by rank-multiplier-weighted stake in the teams that finished on top
// @Tags results
// @Produce json
// @Param eventId path int true "Event ID"
// @Success 200 {object} models.TopInvestorsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse "Computation failed"
// @Router /api/results/investors/{eventId} [get]
func (c *ResultsController) getTopInvestors(g *gin.Context) {
	eventID, err := strconv.Atoi(g.Param("eventId"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid event id"})
		return
	}

	entries, teamNames, err := c.computeLeaderboard(g, eventID)
	if err != nil {
		return
	}

	ctx := g.Request.Context()

	transactions, err := c.transactionsStorage.GetByEvent(ctx, eventID)
	if err != nil {
		c.computationFailed(g, "failed to read ledger", err)
		return
	}
	ledger := make([]voting.LedgerEntry, 0, len(transactions))
	for _, t := range transactions {
		ledger = append(ledger, voting.LedgerEntry{VoterCode: t.VoterCode, TeamID: t.TeamID, Amount: t.Amount})
	}

	voters, err := c.votersStorage.GetByEvent(ctx, eventID)
	if err != nil {
		c.computationFailed(g, "failed to read voters", err)
		return
	}
	voterTeams := make(map[string]int, len(voters))
	for _, v := range voters {
		voterTeams[v.Code] = v.TeamID
	}

	investors, err := voting.ComputeTopInvestors(entries, ledger, voterTeams, c.rules.RankMultipliers)
	if err != nil {
		c.computationFailed(g, "invalid rank multipliers", err)
		return
	}

	response := models.TopInvestorsResponse{
		EventID: eventID,
		Results: make([]models.TopInvestorEntryResponse, 0, len(investors)),
	}
	for _, investor := range investors {
		response.Results = append(response.Results, models.TransformTopInvestorEntry(investor, teamNames))
	}
	g.JSON(http.StatusOK, response)
}

// computeLeaderboard pulls all source rows and recomputes the standings. On
// failure it writes the error response itself and returns a non-nil error so
// callers just bail out. There is never a partial leaderboard.
func (c *ResultsController) computeLeaderboard(g *gin.Context, eventID int) ([]voting.LeaderboardEntry, map[int]string, error) {
	ctx := g.Request.Context()

	event, err := c.eventsStorage.Get(ctx, eventID)
	if err != nil {
		c.computationFailed(g, "failed to read event", err)
		return nil, nil, err
	}
	if event == nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "event not found"})
		return nil, nil, storage.ErrCodeNotFound
	}

	teams, err := c.teamsStorage.GetByEvent(ctx, eventID)
	if err != nil {
		c.computationFailed(g, "failed to read teams", err)
		return nil, nil, err
	}

	criteriaRows, err := c.criteriaStorage.GetByVersion(ctx, event.RubricVersion)
	if err != nil {
		c.computationFailed(g, "failed to read rubric criteria", err)
		return nil, nil, err
	}
	criteria := make([]voting.Criterion, 0, len(criteriaRows))
	for _, row := range criteriaRows {
		criteria = append(criteria, voting.Criterion{
			Name:     row.Name,
			MinScore: row.MinScore,
			MaxScore: row.MaxScore,
			Order:    row.Order,
		})
	}

	scoreRows, err := c.juryScoresStorage.GetByEvent(ctx, eventID)
	if err != nil {
		c.computationFailed(g, "failed to read jury scores", err)
		return nil, nil, err
	}
	juryRows := make(map[int][]voting.JuryRow)
	for _, row := range scoreRows {
		juryRows[row.TeamID] = append(juryRows[row.TeamID], voting.JuryRow{JuryCode: row.JuryCode, Scores: row.Scores})
	}

	totals, err := c.transactionsStorage.TeamTotals(ctx, eventID)
	if err != nil {
		c.computationFailed(g, "failed to read investment totals", err)
		return nil, nil, err
	}

	teamInfos := make([]voting.TeamInfo, 0, len(teams))
	teamNames := make(map[int]string, len(teams))
	for _, team := range teams {
		teamInfos = append(teamInfos, voting.TeamInfo{ID: team.ID, Name: team.Name, TableNumber: team.TableNumber})
		teamNames[team.ID] = team.Name
	}

	weights := voting.Weights{Jury: c.rules.JuryWeight, Investment: c.rules.InvestmentWeight}
	return voting.ComputeLeaderboard(teamInfos, criteria, juryRows, totals, weights), teamNames, nil
}

func (c *ResultsController) computationFailed(g *gin.Context, message string, err error) {
	logging.Log.Errorf("RESULTS: %s: %v", message, err)
	g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not compute results", Kind: models.KindComputationFailed})
}
