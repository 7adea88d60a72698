package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/alex-pricope/ideathon-voting-system/api/transport"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type AdminController struct {
	votersStorage       storage.VoterStorage
	eventsStorage       storage.EventStorage
	transactionsStorage storage.TransactionStorage
	juryScoresStorage   storage.JuryScoreStorage
}

func NewAdminController(voterStorage storage.VoterStorage, eventStorage storage.EventStorage,
	transactionStorage storage.TransactionStorage, juryScoreStorage storage.JuryScoreStorage) *AdminController {
	return &AdminController{
		votersStorage:       voterStorage,
		eventsStorage:       eventStorage,
		transactionsStorage: transactionStorage,
		juryScoresStorage:   juryScoreStorage,
	}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/codes", c.listCodes)
	group.POST("/codes", c.createCodes)
	group.DELETE("/codes/:code", c.deleteCode)
	group.GET("/codes/team/:teamId", c.getCodesByTeam)
	group.POST("/reset", c.resetEventData)
	group.PUT("/events/:id/phase", c.setEventPhase)
}

// @Security AdminToken
// listCodes godoc
// @Summary List all activation codes
// @Tags admin
// @Produce json
// @Success 200 {array} models.CodeResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes [get]
func (c *AdminController) listCodes(g *gin.Context) {
	voters, err := c.votersStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to list codes: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.CodeResponse, 0, len(voters))
	for _, v := range voters {
		responses = append(responses, models.TransformVoterFromStorage(v))
	}

	logging.Log.Infof("ADMIN: listed %d codes", len(responses))
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// createCodes godoc
// @Summary Create one or more activation codes
// @Description Student codes carry a team affiliation and the event's starting wallet balance
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateCodeRequest true "Create Code Request"
// @Success 200 {array} models.CodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes [post]
func (c *AdminController) createCodes(g *gin.Context) {
	var req models.CreateCodeRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Role == "" || req.Count < 1 {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request, missing role or count"})
		return
	}

	if _, ok := models.ValidRoles[models.VoterRole(req.Role)]; !ok {
		logging.Log.Warnf("ADMIN: attempted to create code with invalid role: %s", req.Role)
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	event, err := c.eventsStorage.Get(g.Request.Context(), req.EventID)
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to load event %d: %v", req.EventID, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if event == nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "event not found"})
		return
	}
	if req.Role == string(models.RoleStudent) && req.TeamID == 0 {
		g.JSON(http.StatusBadRequest, gin.H{"error": "student codes need a team"})
		return
	}

	created := make([]models.CodeResponse, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		voter := &storage.Voter{
			Code:      c.generateShortCode(),
			Role:      req.Role,
			EventID:   req.EventID,
			CreatedAt: time.Now().UTC(),
		}
		if req.Role == string(models.RoleStudent) {
			voter.TeamID = req.TeamID
			voter.WalletBalance = event.StartingBalance
		}
		if err := c.votersStorage.Put(g.Request.Context(), voter); err == nil {
			logging.Log.Infof("ADMIN: created %s code %s for event %d", voter.Role, voter.Code, voter.EventID)
			created = append(created, models.TransformVoterFromStorage(voter))
		} else {
			logging.Log.Errorf("ADMIN: failed to store code: %v", err)
		}
	}

	g.JSON(http.StatusOK, created)
}

// @Security AdminToken
// deleteCode godoc
// @Summary Delete an activation code by its value
// @Tags admin
// @Produce json
// @Param code path string true "Activation code"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes/{code} [delete]
func (c *AdminController) deleteCode(g *gin.Context) {
	code := g.Param("code")
	if code == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "missing code"})
		return
	}
	if err := c.votersStorage.Delete(g.Request.Context(), code); err != nil {
		logging.Log.Errorf("ADMIN: failed to delete code %s: %v", code, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logging.Log.Infof("ADMIN: deleted code: %s", code)
	g.JSON(http.StatusOK, gin.H{"deleted": code})
}

// @Security AdminToken
// getCodesByTeam godoc
// @Summary List activation codes for a team
// @Tags admin
// @Produce json
// @Param teamId path int true "Team ID"
// @Success 200 {array} models.CodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/codes/team/{teamId} [get]
func (c *AdminController) getCodesByTeam(g *gin.Context) {
	teamID, err := strconv.Atoi(g.Param("teamId"))
	if err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid team id"})
		return
	}

	all, err := c.votersStorage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to get codes: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filtered := make([]models.CodeResponse, 0)
	for _, voter := range all {
		if voter.TeamID == teamID {
			filtered = append(filtered, models.TransformVoterFromStorage(voter))
		}
	}

	logging.Log.Infof("ADMIN: listed %d codes for team %d", len(filtered), teamID)
	g.JSON(http.StatusOK, filtered)
}

// @Security AdminToken
// resetEventData godoc
// @Summary Wipe the investment ledger and all jury scores
// @Description Used between event reruns; activation codes and teams survive
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/reset [post]
func (c *AdminController) resetEventData(g *gin.Context) {
	if err := c.transactionsStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset ledger: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := c.juryScoresStorage.DeleteAll(g.Request.Context()); err != nil {
		logging.Log.Errorf("ADMIN: failed to reset jury scores: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Info("ADMIN: ledger and jury scores wiped")
	g.JSON(http.StatusOK, gin.H{"message": "All votes and scores reset"})
}

// @Security AdminToken
// setEventPhase godoc
// @Summary Move an event to another phase
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body models.EventPhaseRequest true "Target phase"
// @Success 200 {object} models.EventResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/admin/events/{id}/phase [put]
func (c *AdminController) setEventPhase(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req models.EventPhaseRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if _, ok := models.ValidPhases[models.EventPhase(req.Phase)]; !ok {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase"})
		return
	}

	event, err := c.eventsStorage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to load event %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if event == nil {
		g.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	event.Phase = req.Phase
	if err := c.eventsStorage.Update(g.Request.Context(), event); err != nil {
		logging.Log.Errorf("ADMIN: failed to update event %d: %v", id, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logging.Log.Infof("ADMIN: event %d moved to phase %s", id, req.Phase)
	g.JSON(http.StatusOK, models.TransformEventFromStorage(event))
}

func (c *AdminController) generateShortCode() string {
	code, err := gonanoid.Generate(models.Alphabet, 5)
	if err != nil {
		logging.Log.Errorf("ADMIN: failed to generate code: %v", err)
		return "ERROR"
	}
	return code
}
