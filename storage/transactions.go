package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ballotMarkerSortKey = "BALLOT"
const teamSortKeyPrefix = "TEAM#"

// PortfolioEntry is one validated line of a ballot, ready to persist.
type PortfolioEntry struct {
	TeamID int
	Amount int
}

type TransactionStorage interface {
	// SubmitPortfolio writes the whole ballot (marker + one row per team) in a
	// single atomic call. Either every row lands or none does. A voter that
	// already holds a ballot gets ErrAlreadyVoted, any other failure is wrapped
	// in ErrSubmissionFailed and is safe to retry.
	SubmitPortfolio(ctx context.Context, voterCode string, eventID int, entries []PortfolioEntry) error
	GetByVoter(ctx context.Context, voterCode string) ([]*Transaction, error)
	GetByEvent(ctx context.Context, eventID int) ([]*Transaction, error)
	TeamTotals(ctx context.Context, eventID int) (map[int]int, error)
	HasVoted(ctx context.Context, voterCode string) (bool, error)
	DeleteAll(ctx context.Context) error
}

// TransactionClient is the slice of the DynamoDB API the ledger talks to.
// *dynamodb.Client satisfies it.
type TransactionClient interface {
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type DynamoTransactionStorage struct {
	Client    TransactionClient
	TableName string
}

func (s *DynamoTransactionStorage) SubmitPortfolio(ctx context.Context, voterCode string, eventID int, entries []PortfolioEntry) error {
	now := time.Now().UTC()

	rows := make([]*Transaction, 0, len(entries)+1)
	rows = append(rows, &Transaction{
		VoterCode: voterCode,
		SortKey:   ballotMarkerSortKey,
		EventID:   eventID,
		CreatedAt: now,
	})
	for _, e := range entries {
		rows = append(rows, &Transaction{
			VoterCode: voterCode,
			SortKey:   fmt.Sprintf("%s%d", teamSortKeyPrefix, e.TeamID),
			EventID:   eventID,
			TeamID:    e.TeamID,
			Amount:    e.Amount,
			CreatedAt: now,
		})
	}

	items := make([]types.TransactWriteItem, 0, len(rows))
	for _, row := range rows {
		item, err := attributevalue.MarshalMap(row)
		if err != nil {
			logging.Log.Errorf("LEDGER: failed to marshal transaction: %v", err)
			return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           &s.TableName,
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(PK) AND attribute_not_exists(SK)"),
			},
		})
	}

	_, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					logging.Log.Warnf("LEDGER: duplicate ballot rejected for voter %s", voterCode)
					return ErrAlreadyVoted
				}
			}
		}
		logging.Log.Errorf("LEDGER: transactional write failed for voter %s: %v", voterCode, err)
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	logging.Log.Infof("LEDGER: committed ballot of %d transactions for voter %s", len(entries), voterCode)
	return nil
}

func (s *DynamoTransactionStorage) GetByVoter(ctx context.Context, voterCode string) ([]*Transaction, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :code AND begins_with(SK, :team)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: voterCode},
			":team": &types.AttributeValueMemberS{Value: teamSortKeyPrefix},
		},
	})
	if err != nil {
		logging.Log.Errorf("LEDGER: failed to query transactions for voter %s: %v", voterCode, err)
		return nil, err
	}

	var transactions []*Transaction
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &transactions); err != nil {
		logging.Log.Errorf("LEDGER: failed to unmarshal transactions for voter %s: %v", voterCode, err)
		return nil, err
	}
	return transactions, nil
}

func (s *DynamoTransactionStorage) GetByEvent(ctx context.Context, eventID int) ([]*Transaction, error) {
	var transactions []*Transaction
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &s.TableName,
			ExclusiveStartKey: lastEvaluatedKey,
			FilterExpression:  aws.String("EventID = :e AND begins_with(SK, :team)"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":e":    &types.AttributeValueMemberN{Value: strconv.Itoa(eventID)},
				":team": &types.AttributeValueMemberS{Value: teamSortKeyPrefix},
			},
		})
		if err != nil {
			logging.Log.Errorf("LEDGER: scan by event failed: %v", err)
			return nil, err
		}

		var page []*Transaction
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			logging.Log.Errorf("LEDGER: failed to unmarshal transaction list: %v", err)
			return nil, err
		}
		transactions = append(transactions, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	return transactions, nil
}

// TeamTotals sums received investments per team at read time. Totals are
// never cached so the ledger stays the single source of truth.
func (s *DynamoTransactionStorage) TeamTotals(ctx context.Context, eventID int) (map[int]int, error) {
	transactions, err := s.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]int)
	for _, t := range transactions {
		totals[t.TeamID] += t.Amount
	}
	return totals, nil
}

func (s *DynamoTransactionStorage) HasVoted(ctx context.Context, voterCode string) (bool, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :code AND begins_with(SK, :team)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: voterCode},
			":team": &types.AttributeValueMemberS{Value: teamSortKeyPrefix},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		logging.Log.Errorf("LEDGER: failed to check ballot existence for voter %s: %v", voterCode, err)
		return false, err
	}
	return out.Count > 0, nil
}

func (s *DynamoTransactionStorage) DeleteAll(ctx context.Context) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &s.TableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK, SK"),
		})
		if err != nil {
			logging.Log.Errorf("LEDGER: scan for delete failed: %v", err)
			return err
		}

		var writeRequests []types.WriteRequest
		for _, item := range scanOutput.Items {
			writeRequests = append(writeRequests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}

		for i := 0; i < len(writeRequests); i += 25 {
			end := i + 25
			if end > len(writeRequests) {
				end = len(writeRequests)
			}
			_, err := s.Client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					s.TableName: writeRequests[i:end],
				},
			})
			if err != nil {
				logging.Log.Errorf("LEDGER: batch delete failed: %v", err)
				return err
			}
			logging.Log.Infof("LEDGER: deleted batch of %d items", end-i)
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}
