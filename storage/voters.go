package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type VoterStorage interface {
	Get(ctx context.Context, code string) (*Voter, error)
	GetAll(ctx context.Context) ([]*Voter, error)
	GetByEvent(ctx context.Context, eventID int) ([]*Voter, error)
	Put(ctx context.Context, voter *Voter) error
	Delete(ctx context.Context, code string) error
}

type DynamoVoterStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoVoterStorage) Get(ctx context.Context, code string) (*Voter, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("VOTER: failed to marshal key: %v", err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("VOTER: GetItem failed: %v", err)
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrCodeNotFound
	}

	var voter *Voter
	if err := attributevalue.UnmarshalMap(out.Item, &voter); err != nil {
		logging.Log.Errorf("VOTER: failed to unmarshal result: %v", err)
		return nil, err
	}
	return voter, nil
}

func (s *DynamoVoterStorage) GetAll(ctx context.Context) ([]*Voter, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("VOTER: scan failed: %v", err)
		return nil, err
	}

	var voters []*Voter
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &voters); err != nil {
		logging.Log.Errorf("VOTER: failed to unmarshal voter list: %v", err)
		return nil, err
	}
	return voters, nil
}

func (s *DynamoVoterStorage) GetByEvent(ctx context.Context, eventID int) ([]*Voter, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("EventID = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberN{Value: strconv.Itoa(eventID)},
		},
	})
	if err != nil {
		logging.Log.Errorf("VOTER: scan by event failed: %v", err)
		return nil, err
	}

	var voters []*Voter
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &voters); err != nil {
		logging.Log.Errorf("VOTER: failed to unmarshal voter list: %v", err)
		return nil, err
	}
	return voters, nil
}

func (s *DynamoVoterStorage) Put(ctx context.Context, voter *Voter) error {
	if voter.CreatedAt.IsZero() {
		voter.CreatedAt = time.Now().UTC()
	}
	item, err := attributevalue.MarshalMap(voter)
	if err != nil {
		logging.Log.Errorf("VOTER: failed to marshal voter: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("VOTER: code %s already exists", voter.Code)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("VOTER: failed to create voter: %v", err)
		return err
	}
	return nil
}

func (s *DynamoVoterStorage) Delete(ctx context.Context, code string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": code})
	if err != nil {
		logging.Log.Errorf("VOTER: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("VOTER: failed to delete code %s: %v", code, err)
		return err
	}
	return nil
}
