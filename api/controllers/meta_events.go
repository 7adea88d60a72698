package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/alex-pricope/ideathon-voting-system/api/transport"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/gin-gonic/gin"
)

type EventMetaController struct {
	storage storage.EventStorage
}

func NewEventMetaController(s storage.EventStorage) *EventMetaController {
	return &EventMetaController{storage: s}
}

func (c *EventMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/events")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all events
// @Tags Meta/Events
// @Produce json
// @Success 200 {array} models.EventResponse
// @Failure 500 {object} map[string]string
// @Router /api/meta/events [get]
func (c *EventMetaController) getAll(g *gin.Context) {
	events, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all events: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, models.TransformEventFromStorage(e))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get an event by ID
// @Tags Meta/Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} models.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/events/{id} [get]
func (c *EventMetaController) get(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}
	event, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("META: failed to get event: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if event == nil {
		g.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}
	g.JSON(http.StatusOK, models.TransformEventFromStorage(event))
}

// @Security AdminToken
// @Summary Create an event
// @Description New events start in the registration phase
// @Tags Meta/Events
// @Accept json
// @Produce json
// @Param event body models.EventCreateRequest true "Event object"
// @Success 200 {object} models.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/events [post]
func (c *EventMetaController) create(g *gin.Context) {
	var req models.EventCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		logging.Log.Errorf("META: invalid create event request: %v", err)
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Name == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request empty name"})
		return
	}
	if _, ok := models.StockRubrics[req.RubricVersion]; !ok && req.RubricVersion == "" {
		g.JSON(http.StatusBadRequest, gin.H{"error": "missing rubric version"})
		return
	}

	event := &storage.Event{
		ID:              req.ID,
		Name:            req.Name,
		Phase:           string(models.PhaseRegistration),
		RubricVersion:   req.RubricVersion,
		PortfolioSize:   req.PortfolioSize,
		StartingBalance: req.StartingBalance,
	}

	if err := c.storage.Create(g.Request.Context(), event); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, gin.H{"error": "event with this id already exists"})
			return
		}
		logging.Log.Errorf("META: failed to create event: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.TransformEventFromStorage(event))
}

// @Security AdminToken
// @Summary Update an event
// @Tags Meta/Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body models.EventUpdateRequest true "Event object"
// @Success 200 {object} models.EventResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/events/{id} [put]
func (c *EventMetaController) update(g *gin.Context) {
	id, err := strconv.Atoi(g.Param("id"))
	if err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req models.EventUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" {
		logging.Log.Errorf("META: invalid update event request: %v", err)
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	existing, err := c.storage.Get(g.Request.Context(), id)
	if err != nil {
		logging.Log.Errorf("META: failed to get event: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing == nil {
		g.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	existing.Name = req.Name
	existing.RubricVersion = req.RubricVersion
	existing.PortfolioSize = req.PortfolioSize
	existing.StartingBalance = req.StartingBalance
	if err := c.storage.Update(g.Request.Context(), existing); err != nil {
		logging.Log.Errorf("META: failed to update event: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.TransformEventFromStorage(existing))
}

// @Security AdminToken
// @Summary Delete an event
// @Tags Meta/Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/events/{id} [delete]
func (c *EventMetaController) delete(g *gin.Context) {
	idStr := g.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := c.storage.Delete(g.Request.Context(), id); err != nil {
		logging.Log.Errorf("META: failed to delete event: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	g.JSON(http.StatusOK, gin.H{"deleted": idStr})
}
