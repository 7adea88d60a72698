package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/gin-gonic/gin"
)

type JuryController struct {
	votersStorage     storage.VoterStorage
	teamsStorage      storage.TeamStorage
	eventsStorage     storage.EventStorage
	criteriaStorage   storage.RubricCriterionStorage
	juryScoresStorage storage.JuryScoreStorage
}

func NewJuryController(voterStorage storage.VoterStorage, teamStorage storage.TeamStorage,
	eventStorage storage.EventStorage, criteriaStorage storage.RubricCriterionStorage,
	juryScoreStorage storage.JuryScoreStorage) *JuryController {
	return &JuryController{
		votersStorage:     voterStorage,
		teamsStorage:      teamStorage,
		eventsStorage:     eventStorage,
		criteriaStorage:   criteriaStorage,
		juryScoresStorage: juryScoreStorage,
	}
}

func (c *JuryController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/jury")

	group.POST("/score", c.submitScore)
	group.GET("/scores/:teamId", c.getScores)
}

// submitScore godoc
// @Summary Submit or update a jury rubric evaluation
// @Description Upserts the juror's scores for a team; re-scoring replaces the previous evaluation
// @Tags jury
// @Accept json
// @Produce json
// @Param score body models.SubmitJuryScoreRequest true "Rubric evaluation"
// @Success 200 {object} models.JuryScoreResponse
// @Failure 400 {object} models.ErrorResponse "Unknown criterion or score out of scale"
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Scoring not open in current phase"
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/score [post]
func (c *JuryController) submitScore(g *gin.Context) {
	var req models.SubmitJuryScoreRequest
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
		logging.Log.Errorf("JURY: failed to load voter %s: %v", req.Code, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load voter"})
		return
	}
	if voter.Role != string(models.RoleJury) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "only jury codes can score teams"})
		return
	}

	event, err := c.eventsStorage.Get(ctx, voter.EventID)
	if err != nil || event == nil {
		logging.Log.Errorf("JURY: failed to load event %d: %v", voter.EventID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load event"})
		return
	}
	if event.Phase != string(models.PhaseVoting) && event.Phase != string(models.PhaseJudging) {
		g.JSON(http.StatusConflict, &models.ErrorResponse{
			Error: fmt.Sprintf("scoring is not open, event is in phase %s", event.Phase),
			Kind:  models.KindVotingClosed,
		})
		return
	}

	team, err := c.teamsStorage.Get(ctx, req.TeamID)
	if err != nil {
		logging.Log.Errorf("JURY: failed to load team %d: %v", req.TeamID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load team"})
		return
	}
	if team == nil || team.EventID != voter.EventID {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "team not found in this event"})
		return
	}

	criteria, err := c.criteriaStorage.GetByVersion(ctx, event.RubricVersion)
	if err != nil {
		logging.Log.Errorf("JURY: failed to load criteria for rubric %s: %v", event.RubricVersion, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not load rubric"})
		return
	}

	byName := make(map[string]*storage.RubricCriterion, len(criteria))
	for _, criterion := range criteria {
		byName[criterion.Name] = criterion
	}
	for name, value := range req.Scores {
		criterion, ok := byName[name]
		if !ok {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: fmt.Sprintf("unknown criterion %q for rubric %s", name, event.RubricVersion)})
			return
		}
		if value < criterion.MinScore || value > criterion.MaxScore {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{
				Error: fmt.Sprintf("score %d for %q outside scale %d-%d", value, name, criterion.MinScore, criterion.MaxScore),
			})
			return
		}
	}
	if len(req.Scores) != len(criteria) {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: fmt.Sprintf("rubric %s requires all %d criteria to be scored", event.RubricVersion, len(criteria))})
		return
	}

	score := &storage.JuryScore{
		TeamID:   req.TeamID,
		JuryCode: voter.Code,
		EventID:  voter.EventID,
		Scores:   req.Scores,
		Comment:  req.Comment,
	}
	if err := c.juryScoresStorage.Upsert(ctx, score); err != nil {
		logging.Log.Errorf("JURY: failed to store score: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save score"})
		return
	}

	logging.Log.Infof("JURY: juror %s scored team %d", voter.Code, req.TeamID)
	g.JSON(http.StatusOK, models.TransformJuryScoreFromStorage(score))
}

// getScores godoc
// @Summary Get all jury evaluations for a team
// @Tags jury
// @Produce json
// @Param teamId path int true "Team ID"
// @Success 200 {array} models.JuryScoreResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/jury/scores/{teamId} [get]
func (c *JuryController) getScores(g *gin.Context) {
	teamID, err := strconv.Atoi(g.Param("teamId"))
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid team id"})
		return
	}

	scores, err := c.juryScoresStorage.GetByTeam(g.Request.Context(), teamID)
	if err != nil {
		logging.Log.Errorf("JURY: failed to retrieve scores for team %d: %v", teamID, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not retrieve scores"})
		return
	}

	responses := make([]models.JuryScoreResponse, 0, len(scores))
	for _, s := range scores {
		responses = append(responses, models.TransformJuryScoreFromStorage(s))
	}
	g.JSON(http.StatusOK, responses)
}
