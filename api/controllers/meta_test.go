package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/ideathon-voting-system/api/controllers/testing"
	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMeta(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("Happy path - create, update and list teams", func(t *testing.T) {
		team := models.TeamCreateRequest{
			ID: 1, EventID: 1, Name: "Rocket", TableNumber: 4, Members: []string{"Alice", "Bob"},
		}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/teams", team, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		update := models.TeamUpdateRequest{EventID: 1, Name: "Rocket v2", TableNumber: 5}
		res = testutils.PerformRequest(router, http.MethodPut, "/api/meta/teams/1", update, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/meta/teams", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)
		var teams []models.TeamResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &teams))
		require.Len(t, teams, 1)
		assert.Equal(t, "Rocket v2", teams[0].Name)
		assert.Equal(t, 5, teams[0].TableNumber)
	})

	t.Run("Unhappy path - duplicate team id", func(t *testing.T) {
		team := models.TeamCreateRequest{ID: 2, EventID: 1, Name: "Lizard"}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/teams", team, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		res = testutils.PerformRequest(router, http.MethodPost, "/api/meta/teams", team, testutils.AdminHeaders())
		assert.Equal(t, http.StatusConflict, res.Code)
	})

	t.Run("Unhappy path - create without admin token", func(t *testing.T) {
		team := models.TeamCreateRequest{ID: 3, EventID: 1, Name: "Falcon"}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/teams", team, nil)

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})
}

func TestEventMeta(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("Happy path - new events start in registration", func(t *testing.T) {
		event := models.EventCreateRequest{
			ID: 1, Name: "Spring Ideathon", RubricVersion: "classic", PortfolioSize: 3, StartingBalance: 1000,
		}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/events", event, testutils.AdminHeaders())

		require.Equal(t, http.StatusOK, res.Code)
		var created models.EventResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
		assert.Equal(t, "registration", created.Phase)
		assert.Equal(t, 1000, created.StartingBalance)
	})

	t.Run("Unhappy path - missing rubric version", func(t *testing.T) {
		event := models.EventCreateRequest{ID: 2, Name: "No Rubric"}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/events", event, testutils.AdminHeaders())

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - unknown event", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/meta/events/99", nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestCriteriaMeta(t *testing.T) {
	router := setupTestRouter(t)

	t.Run("Happy path - seed the classic rubric", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/criteria/seed/classic", nil, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/meta/criteria/classic", nil, nil)
		require.Equal(t, http.StatusOK, res.Code)

		var criteria []models.CriterionResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &criteria))
		require.Len(t, criteria, 4)

		names := make(map[string]bool)
		for _, criterion := range criteria {
			names[criterion.Name] = true
			assert.Equal(t, "classic", criterion.RubricVersion)
			assert.Equal(t, 1, criterion.MinScore)
			assert.Equal(t, 10, criterion.MaxScore)
		}
		assert.True(t, names["innovation"])
		assert.True(t, names["presentation"])
	})

	t.Run("Happy path - seeding twice is idempotent", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/criteria/seed/classic", nil, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, res.Code)

		res = testutils.PerformRequest(router, http.MethodGet, "/api/meta/criteria/classic", nil, nil)
		var criteria []models.CriterionResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &criteria))
		assert.Len(t, criteria, 4)
	})

	t.Run("Unhappy path - unknown stock rubric", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/criteria/seed/bogus", nil, testutils.AdminHeaders())

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - max score below min score", func(t *testing.T) {
		criterion := models.CriterionCreateRequest{
			RubricVersion: "custom", Name: "weird", MinScore: 10, MaxScore: 1,
		}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/criteria", criterion, testutils.AdminHeaders())

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}
