package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const jurySortKeyPrefix = "JURY#"

type JuryScoreStorage interface {
	// Upsert stores the juror's evaluation, replacing any previous one for the
	// same (team, juror) pair. Only the latest evaluation counts.
	Upsert(ctx context.Context, score *JuryScore) error
	GetByTeam(ctx context.Context, teamID int) ([]*JuryScore, error)
	GetByEvent(ctx context.Context, eventID int) ([]*JuryScore, error)
	DeleteAll(ctx context.Context) error
}

type DynamoJuryScoreStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoJuryScoreStorage) Upsert(ctx context.Context, score *JuryScore) error {
	score.SortKey = fmt.Sprintf("%s%s", jurySortKeyPrefix, score.JuryCode)
	score.UpdatedAt = time.Now().UTC()
	if score.CreatedAt.IsZero() {
		// A re-score replaces the row but keeps the first evaluation's
		// creation timestamp.
		existing, err := s.get(ctx, score.TeamID, score.SortKey)
		if err != nil {
			return err
		}
		if existing != nil {
			score.CreatedAt = existing.CreatedAt
		} else {
			score.CreatedAt = score.UpdatedAt
		}
	}

	item, err := attributevalue.MarshalMap(score)
	if err != nil {
		logging.Log.Errorf("JURY: failed to marshal score: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("JURY: failed to store score for team %d: %v", score.TeamID, err)
		return err
	}
	return nil
}

func (s *DynamoJuryScoreStorage) get(ctx context.Context, teamID int, sortKey string) (*JuryScore, error) {
	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberN{Value: strconv.Itoa(teamID)},
			"SK": &types.AttributeValueMemberS{Value: sortKey},
		},
	})
	if err != nil {
		logging.Log.Errorf("JURY: failed to read score for team %d: %v", teamID, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var score JuryScore
	if err := attributevalue.UnmarshalMap(out.Item, &score); err != nil {
		logging.Log.Errorf("JURY: failed to unmarshal score for team %d: %v", teamID, err)
		return nil, err
	}
	return &score, nil
}

func (s *DynamoJuryScoreStorage) GetByTeam(ctx context.Context, teamID int) ([]*JuryScore, error) {
	out, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              &s.TableName,
		KeyConditionExpression: aws.String("PK = :team"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":team": &types.AttributeValueMemberN{Value: strconv.Itoa(teamID)},
		},
	})
	if err != nil {
		logging.Log.Errorf("JURY: failed to query scores for team %d: %v", teamID, err)
		return nil, err
	}

	var scores []*JuryScore
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &scores); err != nil {
		logging.Log.Errorf("JURY: failed to unmarshal scores for team %d: %v", teamID, err)
		return nil, err
	}
	return scores, nil
}

func (s *DynamoJuryScoreStorage) GetByEvent(ctx context.Context, eventID int) ([]*JuryScore, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("EventID = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberN{Value: strconv.Itoa(eventID)},
		},
	})
	if err != nil {
		logging.Log.Errorf("JURY: scan by event failed: %v", err)
		return nil, err
	}

	var scores []*JuryScore
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &scores); err != nil {
		logging.Log.Errorf("JURY: failed to unmarshal score list: %v", err)
		return nil, err
	}
	return scores, nil
}

func (s *DynamoJuryScoreStorage) DeleteAll(ctx context.Context) error {
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		scanOutput, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:            &s.TableName,
			ExclusiveStartKey:    lastEvaluatedKey,
			ProjectionExpression: aws.String("PK, SK"),
		})
		if err != nil {
			logging.Log.Errorf("JURY: scan for delete failed: %v", err)
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
				logging.Log.Errorf("JURY: batch delete failed: %v", err)
				return err
			}
		}

		if scanOutput.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = scanOutput.LastEvaluatedKey
	}

	return nil
}
