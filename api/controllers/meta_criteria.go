package controllers

import (
	"errors"
	"net/http"

	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/alex-pricope/ideathon-voting-system/api/transport"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/gin-gonic/gin"
)

type CriteriaMetaController struct {
	storage storage.RubricCriterionStorage
}

func NewCriteriaMetaController(s storage.RubricCriterionStorage) *CriteriaMetaController {
	return &CriteriaMetaController{storage: s}
}

func (c *CriteriaMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/criteria")

	group.GET("", c.getAll)
	group.GET("/:version", c.getByVersion)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.POST("/seed/:version", transport.AdminAuthMiddleware(), c.seed)
	group.PUT("/:version/:name", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:version/:name", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all rubric criteria
// @Tags Meta/Criteria
// @Produce json
// @Success 200 {array} models.CriterionResponse
// @Failure 500 {object} map[string]string
// @Router /api/meta/criteria [get]
func (c *CriteriaMetaController) getAll(g *gin.Context) {
	criteria, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all criteria: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.CriterionResponse, 0, len(criteria))
	for _, criterion := range criteria {
		responses = append(responses, models.TransformCriterionFromStorage(criterion))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get the criteria of one rubric version
// @Tags Meta/Criteria
// @Produce json
// @Param version path string true "Rubric version"
// @Success 200 {array} models.CriterionResponse
// @Failure 500 {object} map[string]string
// @Router /api/meta/criteria/{version} [get]
func (c *CriteriaMetaController) getByVersion(g *gin.Context) {
	version := g.Param("version")
	criteria, err := c.storage.GetByVersion(g.Request.Context(), version)
	if err != nil {
		logging.Log.Errorf("META: failed to get criteria for rubric %s: %v", version, err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := make([]models.CriterionResponse, 0, len(criteria))
	for _, criterion := range criteria {
		responses = append(responses, models.TransformCriterionFromStorage(criterion))
	}
	g.JSON(http.StatusOK, responses)
}

// @Security AdminToken
// @Summary Create a rubric criterion
// @Tags Meta/Criteria
// @Accept json
// @Produce json
// @Param criterion body models.CriterionCreateRequest true "Criterion object"
// @Success 200 {object} models.CriterionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/criteria [post]
func (c *CriteriaMetaController) create(g *gin.Context) {
	var req models.CriterionCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" || req.RubricVersion == "" {
		logging.Log.Errorf("META: invalid create criterion request: %v", err)
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.MaxScore <= req.MinScore {
		g.JSON(http.StatusBadRequest, gin.H{"error": "max score must be above min score"})
		return
	}

	criterion := &storage.RubricCriterion{
		RubricVersion: req.RubricVersion,
		Name:          req.Name,
		Description:   req.Description,
		MinScore:      req.MinScore,
		MaxScore:      req.MaxScore,
		Order:         req.Order,
	}

	if err := c.storage.Create(g.Request.Context(), criterion); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, gin.H{"error": "criterion already exists for this rubric"})
			return
		}
		logging.Log.Errorf("META: failed to create criterion: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.TransformCriterionFromStorage(criterion))
}

// @Security AdminToken
// @Summary Seed a stock rubric version
// @Description Creates the built-in criteria set for the given version (classic or extended)
// @Tags Meta/Criteria
// @Produce json
// @Param version path string true "Rubric version"
// @Success 200 {array} models.CriterionResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/criteria/seed/{version} [post]
func (c *CriteriaMetaController) seed(g *gin.Context) {
	version := g.Param("version")
	stock, ok := models.StockRubrics[version]
	if !ok {
		g.JSON(http.StatusBadRequest, gin.H{"error": "unknown stock rubric version"})
		return
	}

	seeded := make([]models.CriterionResponse, 0, len(stock))
	for _, req := range stock {
		criterion := &storage.RubricCriterion{
			RubricVersion: req.RubricVersion,
			Name:          req.Name,
			Description:   req.Description,
			MinScore:      req.MinScore,
			MaxScore:      req.MaxScore,
			Order:         req.Order,
		}
		if err := c.storage.Create(g.Request.Context(), criterion); err != nil {
			if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
				continue
			}
			logging.Log.Errorf("META: failed to seed criterion %s: %v", criterion.Name, err)
			g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		seeded = append(seeded, models.TransformCriterionFromStorage(criterion))
	}

	logging.Log.Infof("META: seeded %d criteria for rubric %s", len(seeded), version)
	g.JSON(http.StatusOK, seeded)
}

// @Security AdminToken
// @Summary Update a rubric criterion
// @Tags Meta/Criteria
// @Accept json
// @Produce json
// @Param version path string true "Rubric version"
// @Param name path string true "Criterion name"
// @Param criterion body models.CriterionUpdateRequest true "Criterion object"
// @Success 200 {object} models.CriterionResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/criteria/{version}/{name} [put]
func (c *CriteriaMetaController) update(g *gin.Context) {
	version := g.Param("version")
	name := g.Param("name")

	var req models.CriterionUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.MaxScore <= req.MinScore {
		g.JSON(http.StatusBadRequest, gin.H{"error": "max score must be above min score"})
		return
	}

	criterion := &storage.RubricCriterion{
		RubricVersion: version,
		Name:          name,
		Description:   req.Description,
		MinScore:      req.MinScore,
		MaxScore:      req.MaxScore,
		Order:         req.Order,
	}
	if err := c.storage.Update(g.Request.Context(), criterion); err != nil {
		logging.Log.Errorf("META: failed to update criterion: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	g.JSON(http.StatusOK, models.TransformCriterionFromStorage(criterion))
}

// @Security AdminToken
// @Summary Delete a rubric criterion
// @Tags Meta/Criteria
// @Produce json
// @Param version path string true "Rubric version"
// @Param name path string true "Criterion name"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/meta/criteria/{version}/{name} [delete]
func (c *CriteriaMetaController) delete(g *gin.Context) {
	version := g.Param("version")
	name := g.Param("name")

	if err := c.storage.Delete(g.Request.Context(), version, name); err != nil {
		logging.Log.Errorf("META: failed to delete criterion: %v", err)
		g.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	g.JSON(http.StatusOK, gin.H{"deleted": storage.CriterionID(version, name)})
}
