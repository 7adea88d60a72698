package api

import (
	"context"
	"fmt"
	"os"

	"github.com/alex-pricope/ideathon-voting-system/api/controllers"
	"github.com/alex-pricope/ideathon-voting-system/api/transport"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/alex-pricope/ideathon-voting-system/storage"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)

	// Create storage
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logging.Log.Errorf("failed to load AWS config: %v", err)
		panic("failed to load AWS config")
	}

	dynamoClient := dynamodb.NewFromConfig(cfg)

	voterStorage := &storage.DynamoVoterStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameVoters,
	}
	teamStorage := &storage.DynamoTeamStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameTeams,
	}
	eventStorage := &storage.DynamoEventStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameEvents,
	}
	transactionStorage := &storage.DynamoTransactionStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameTransactions,
	}
	juryScoreStorage := &storage.DynamoJuryScoreStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameJuryScores,
	}
	criteriaStorage := &storage.DynamoRubricCriterionStorage{
		Client:    dynamoClient,
		TableName: s.config.TableNameCriteria,
	}

	rules := controllers.VotingRules{
		PortfolioSize:    s.config.PortfolioSize,
		JuryWeight:       s.config.JuryWeight,
		InvestmentWeight: s.config.InvestmentWeight,
		RankMultipliers:  s.config.RankMultipliers,
	}

	//Register controllers
	votingController := controllers.NewVotingController(voterStorage, transactionStorage, teamStorage, eventStorage, rules)
	votingController.RegisterRoutes(r)
	resultsController := controllers.NewResultsController(voterStorage, transactionStorage, teamStorage, eventStorage, juryScoreStorage, criteriaStorage, rules)
	resultsController.RegisterRoutes(r)
	juryController := controllers.NewJuryController(voterStorage, teamStorage, eventStorage, criteriaStorage, juryScoreStorage)
	juryController.RegisterRoutes(r)
	adminController := controllers.NewAdminController(voterStorage, eventStorage, transactionStorage, juryScoreStorage)
	adminController.RegisterRoutes(r)
	metaTeamController := controllers.NewTeamMetaController(teamStorage)
	metaTeamController.RegisterRoutes(r)
	metaEventController := controllers.NewEventMetaController(eventStorage)
	metaEventController.RegisterRoutes(r)
	metaCriteriaController := controllers.NewCriteriaMetaController(criteriaStorage)
	metaCriteriaController.RegisterRoutes(r)

	//Do not run lambda helper locally
	if os.Getenv("APP_ENV") == "local" {
		startLocal(r, s.config.Port)
	} else {
		startLambda(r)
	}
}

// StartLambda sets up for AWS Lambda
func startLambda(engine *gin.Engine) {
	ginLambda := ginadapter.NewV2(engine)

	handler := func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
		logging.Log.Infof("Lambda handler triggered on path: %s", req.RawPath)
		return ginLambda.ProxyWithContext(ctx, req)
	}

	logging.Log.Info("Starting lambda")
	lambda.Start(handler)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
