package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/ideathon-voting-system/api/controllers/testing"
	"github.com/alex-pricope/ideathon-voting-system/api/models"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:staticcheck
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	logging.Log = logrus.New()
	t.Setenv("ADMIN_TOKEN", "secret")

	// Load localstack config
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion("us-east-1"),
		config.WithEndpointResolverWithOptions(
			aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: "http://localhost:4566", HostnameImmutable: true}, nil
			}),
		),
	)
	if err != nil {
		t.Fatalf("failed to load AWS config: %v", err)
	}

	db := dynamodb.NewFromConfig(cfg)
	voterStorage := &storage.DynamoVoterStorage{Client: db, TableName: "Voters"}
	teamStorage := &storage.DynamoTeamStorage{Client: db, TableName: "Teams"}
	eventStorage := &storage.DynamoEventStorage{Client: db, TableName: "Events"}
	transactionStorage := &storage.DynamoTransactionStorage{Client: db, TableName: "Transactions"}
	juryScoreStorage := &storage.DynamoJuryScoreStorage{Client: db, TableName: "JuryScores"}
	criteriaStorage := &storage.DynamoRubricCriterionStorage{Client: db, TableName: "RubricCriteria"}

	t.Cleanup(func() {
		cleanupTable(t, db, "Voters")
		cleanupTable(t, db, "Teams")
		cleanupTable(t, db, "Events")
		cleanupTable(t, db, "Transactions")
		cleanupTable(t, db, "JuryScores")
		cleanupTable(t, db, "RubricCriteria")
	})

	rules := VotingRules{
		PortfolioSize:    3,
		JuryWeight:       0.7,
		InvestmentWeight: 0.3,
		RankMultipliers:  []int{3, 2, 1},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewVotingController(voterStorage, transactionStorage, teamStorage, eventStorage, rules).RegisterRoutes(r)
	NewResultsController(voterStorage, transactionStorage, teamStorage, eventStorage, juryScoreStorage, criteriaStorage, rules).RegisterRoutes(r)
	NewJuryController(voterStorage, teamStorage, eventStorage, criteriaStorage, juryScoreStorage).RegisterRoutes(r)
	NewAdminController(voterStorage, eventStorage, transactionStorage, juryScoreStorage).RegisterRoutes(r)
	NewTeamMetaController(teamStorage).RegisterRoutes(r)
	NewEventMetaController(eventStorage).RegisterRoutes(r)
	NewCriteriaMetaController(criteriaStorage).RegisterRoutes(r)

	return r
}

func cleanupTable(t *testing.T, client *dynamodb.Client, tableName string) {
	t.Helper()

	out, err := client.Scan(context.TODO(), &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		t.Fatalf("cleanup failed to scan %s: %v", tableName, err)
	}

	for _, item := range out.Items {
		key := make(map[string]types.AttributeValue)

		if pk, ok := item["PK"]; ok {
			key["PK"] = pk
		}
		if sk, ok := item["SK"]; ok {
			key["SK"] = sk
		}

		_, err := client.DeleteItem(context.TODO(), &dynamodb.DeleteItemInput{
			TableName: aws.String(tableName),
			Key:       key,
		})
		if err != nil {
			t.Fatalf("cleanup failed to delete item from %s: %v", tableName, err)
		}
	}
}

// seedEvent creates an event with its teams and the classic rubric, then
// moves it straight to the voting phase.
func seedEvent(t *testing.T, router *gin.Engine, eventID, portfolioSize, startingBalance, teamCount int) {
	t.Helper()

	event := models.EventCreateRequest{
		ID:              eventID,
		Name:            fmt.Sprintf("Event %d", eventID),
		RubricVersion:   "classic",
		PortfolioSize:   portfolioSize,
		StartingBalance: startingBalance,
	}
	res := testutils.PerformRequest(router, http.MethodPost, "/api/meta/events", event, testutils.AdminHeaders())
	require.Equal(t, http.StatusOK, res.Code, "Should create event")

	res = testutils.PerformRequest(router, http.MethodPost, "/api/meta/criteria/seed/classic", nil, testutils.AdminHeaders())
	require.Equal(t, http.StatusOK, res.Code, "Should seed classic rubric")

	for i := 1; i <= teamCount; i++ {
		team := models.TeamCreateRequest{
			ID:          i,
			EventID:     eventID,
			Name:        fmt.Sprintf("Team %d", i),
			TableNumber: i,
			Members:     []string{fmt.Sprintf("Member%d", i)},
		}
		res = testutils.PerformRequest(router, http.MethodPost, "/api/meta/teams", team, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, res.Code, "Should create team")
	}

	setPhase(t, router, eventID, "voting")
}

func setPhase(t *testing.T, router *gin.Engine, eventID int, phase string) {
	t.Helper()
	res := testutils.PerformRequest(router, http.MethodPut,
		fmt.Sprintf("/api/admin/events/%d/phase", eventID), models.EventPhaseRequest{Phase: phase}, testutils.AdminHeaders())
	require.Equal(t, http.StatusOK, res.Code, "Should move event to phase "+phase)
}

func createCode(t *testing.T, router *gin.Engine, role string, eventID, teamID int) string {
	t.Helper()
	payload := models.CreateCodeRequest{Count: 1, Role: role, EventID: eventID, TeamID: teamID}
	res := testutils.PerformRequest(router, http.MethodPost, "/api/admin/codes", payload, testutils.AdminHeaders())
	require.Equal(t, http.StatusOK, res.Code, "Should create code")

	var created []models.CodeResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &created))
	require.Len(t, created, 1)
	return created[0].Code
}

func TestVerifyCode(t *testing.T) {
	router := setupTestRouter(t)
	seedEvent(t, router, 1, 2, 1000, 3)

	t.Run("Happy path - verify a fresh student code", func(t *testing.T) {
		code := createCode(t, router, "student", 1, 1)

		res := testutils.PerformRequest(router, http.MethodGet, "/api/verify/"+code, nil, nil)

		assert.Equal(t, http.StatusOK, res.Code, "Expected 200 from verify")

		var response models.CodeValidationResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "student", response.Role)
		assert.Equal(t, 1, response.TeamID)
		assert.Equal(t, "Team 1", response.TeamName)
		assert.Equal(t, 1000, response.WalletBalance)
		assert.False(t, response.HasVoted)
	})

	t.Run("Happy path - jury code has no wallet", func(t *testing.T) {
		code := createCode(t, router, "jury", 1, 0)

		res := testutils.PerformRequest(router, http.MethodGet, "/api/verify/"+code, nil, nil)

		require.Equal(t, http.StatusOK, res.Code)
		var response models.CodeValidationResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &response))
		assert.Equal(t, "jury", response.Role)
		assert.Zero(t, response.WalletBalance)
	})

	t.Run("Unhappy path - non-existent code", func(t *testing.T) {
		res := testutils.PerformRequest(router, http.MethodGet, "/api/verify/NOTEX", nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code, "Expected 404 for non-existent code")
	})
}

func TestSubmitAndGetPortfolio(t *testing.T) {
	router := setupTestRouter(t)
	seedEvent(t, router, 1, 2, 1000, 3)
	code := createCode(t, router, "student", 1, 1)

	t.Run("Happy path - submit full wallet and read it back", func(t *testing.T) {
		payload := models.SubmitPortfolioRequest{
			Code: code,
			Allocations: []models.AllocationEntry{
				{TeamID: 2, Amount: 600},
				{TeamID: 3, Amount: 400},
			},
		}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/portfolio", payload, nil)

		require.Equal(t, http.StatusOK, res.Code, "Portfolio POST should return 200, body: %s", res.Body.String())
		var submitted models.SubmitPortfolioResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &submitted))
		assert.Equal(t, 2, submitted.Submitted)

		// Verify reflects the committed ballot
		verifyRes := testutils.PerformRequest(router, http.MethodGet, "/api/verify/"+code, nil, nil)
		require.Equal(t, http.StatusOK, verifyRes.Code)
		var validation models.CodeValidationResponse
		require.NoError(t, json.Unmarshal(verifyRes.Body.Bytes(), &validation))
		assert.True(t, validation.HasVoted)

		// Read the portfolio back
		getRes := testutils.PerformRequest(router, http.MethodGet, "/api/portfolio/"+code, nil, nil)
		require.Equal(t, http.StatusOK, getRes.Code)

		var portfolio models.PortfolioResponse
		require.NoError(t, json.Unmarshal(getRes.Body.Bytes(), &portfolio))
		assert.Equal(t, code, portfolio.Code)
		assert.Len(t, portfolio.Investments, 2)
		assert.Equal(t, 1000, portfolio.TotalInvested)
		assert.Equal(t, 0, portfolio.RemainingBalance)

		names := make(map[int]string)
		for _, line := range portfolio.Investments {
			names[line.TeamID] = line.TeamName
		}
		assert.Equal(t, "Team 2", names[2])
		assert.Equal(t, "Team 3", names[3])
	})

	t.Run("Unhappy path - second submission is rejected and ledger untouched", func(t *testing.T) {
		payload := models.SubmitPortfolioRequest{
			Code: code,
			Allocations: []models.AllocationEntry{
				{TeamID: 2, Amount: 100},
				{TeamID: 3, Amount: 100},
			},
		}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/portfolio", payload, nil)

		assert.Equal(t, http.StatusConflict, res.Code)
		var errRes models.ErrorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errRes))
		assert.Equal(t, models.KindAlreadyVoted, errRes.Kind)

		// The original portfolio survives unchanged
		getRes := testutils.PerformRequest(router, http.MethodGet, "/api/portfolio/"+code, nil, nil)
		require.Equal(t, http.StatusOK, getRes.Code)
		var portfolio models.PortfolioResponse
		require.NoError(t, json.Unmarshal(getRes.Body.Bytes(), &portfolio))
		assert.Equal(t, 1000, portfolio.TotalInvested)
	})

	t.Run("Unhappy path - no portfolio for a fresh code", func(t *testing.T) {
		freshCode := createCode(t, router, "student", 1, 2)

		res := testutils.PerformRequest(router, http.MethodGet, "/api/portfolio/"+freshCode, nil, nil)

		assert.Equal(t, http.StatusNotFound, res.Code)
	})
}

func TestSubmitPortfolioValidation(t *testing.T) {
	router := setupTestRouter(t)
	seedEvent(t, router, 1, 2, 1000, 3)

	submit := func(code string, allocations []models.AllocationEntry) *models.ErrorResponse {
		payload := models.SubmitPortfolioRequest{Code: code, Allocations: allocations}
		res := testutils.PerformRequest(router, http.MethodPost, "/api/portfolio", payload, nil)
		require.NotEqual(t, http.StatusOK, res.Code, "Submission should be rejected, body: %s", res.Body.String())

		var errRes models.ErrorResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &errRes))
		return &errRes
	}

	t.Run("Unhappy path - wrong team count", func(t *testing.T) {
		code := createCode(t, router, "student", 1, 1)

		errRes := submit(code, []models.AllocationEntry{{TeamID: 2, Amount: 1000}})

		assert.Equal(t, models.KindWrongTeamCount, errRes.Kind)
	})

	t.Run("Unhappy path - allocation over wallet balance", func(t *testing.T) {
		code := createCode(t, router, "student", 1, 1)

		errRes := submit(code, []models.AllocationEntry{
			{TeamID: 2, Amount: 700},
			{TeamID: 3, Amount: 400},
		})

		assert.Equal(t, models.KindBudgetExceeded, errRes.Kind)
	})

	t.Run("Unhappy path - investing in own team", func(t *testing.T) {
		code := createCode(t, router, "student", 1, 1)

		errRes := submit(code, []models.AllocationEntry{
			{TeamID: 1, Amount: 500},
			{TeamID: 2, Amount: 500},
		})

		assert.Equal(t, models.KindSelfInvestment, errRes.Kind)
	})

	t.Run("Unhappy path - fractional amount", func(t *testing.T) {
		code := createCode(t, router, "student", 1, 1)

		errRes := submit(code, []models.AllocationEntry{
			{TeamID: 2, Amount: 500.5},
			{TeamID: 3, Amount: 499.5},
		})

		assert.Equal(t, models.KindInvalidAmount, errRes.Kind)
	})

	t.Run("Unhappy path - unknown receiving team", func(t *testing.T) {
		code := createCode(t, router, "student", 1, 1)
		payload := models.SubmitPortfolioRequest{
			Code:        code,
			Allocations: []models.AllocationEntry{{TeamID: 99, Amount: 1000}},
		}

		res := testutils.PerformRequest(router, http.MethodPost, "/api/portfolio", payload, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - jury code cannot submit a portfolio", func(t *testing.T) {
		code := createCode(t, router, "jury", 1, 0)
		payload := models.SubmitPortfolioRequest{
			Code: code,
			Allocations: []models.AllocationEntry{
				{TeamID: 2, Amount: 500},
				{TeamID: 3, Amount: 500},
			},
		}

		res := testutils.PerformRequest(router, http.MethodPost, "/api/portfolio", payload, nil)

		assert.Equal(t, http.StatusBadRequest, res.Code)
	})

	t.Run("Unhappy path - voting closed outside the voting phase", func(t *testing.T) {
		code := createCode(t, router, "student", 1, 1)
		setPhase(t, router, 1, "judging")
		t.Cleanup(func() { setPhase(t, router, 1, "voting") })

		errRes := submit(code, []models.AllocationEntry{
			{TeamID: 2, Amount: 500},
			{TeamID: 3, Amount: 500},
		})

		assert.Equal(t, models.KindVotingClosed, errRes.Kind)
	})
}
