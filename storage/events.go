package storage

import (
	"context"
	"errors"

	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type EventStorage interface {
	Get(ctx context.Context, id int) (*Event, error)
	GetAll(ctx context.Context) ([]*Event, error)
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int) error
}

type DynamoEventStorage struct {
	Client    *dynamodb.Client
	TableName string
}

func (s *DynamoEventStorage) Get(ctx context.Context, id int) (*Event, error) {
	key, err := attributevalue.MarshalMap(map[string]int{"PK": id})
	if err != nil {
		logging.Log.Errorf("EVENT: failed to marshal key for ID %d: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("EVENT: GetItem for ID %d failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var event Event
	if err := attributevalue.UnmarshalMap(out.Item, &event); err != nil {
		logging.Log.Errorf("EVENT: failed to unmarshal event: %v", err)
		return nil, err
	}
	return &event, nil
}

func (s *DynamoEventStorage) GetAll(ctx context.Context) ([]*Event, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("EVENT: scan failed: %v", err)
		return nil, err
	}

	var events []*Event
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &events); err != nil {
		logging.Log.Errorf("EVENT: failed to unmarshal event list: %v", err)
		return nil, err
	}
	return events, nil
}

func (s *DynamoEventStorage) Create(ctx context.Context, event *Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		logging.Log.Errorf("EVENT: failed to marshal event: %v", err)
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
			logging.Log.Warnf("EVENT: item with ID %d already exists", event.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("EVENT: failed to create event: %v", err)
		return err
	}
	return nil
}

func (s *DynamoEventStorage) Update(ctx context.Context, event *Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		logging.Log.Errorf("EVENT: failed to marshal updated event: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("EVENT: failed to update event: %v", err)
		return err
	}
	return nil
}

func (s *DynamoEventStorage) Delete(ctx context.Context, id int) error {
	key, err := attributevalue.MarshalMap(map[string]int{"PK": id})
	if err != nil {
		logging.Log.Errorf("EVENT: failed to marshal delete key for ID %d: %v", id, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("EVENT: failed to delete event with ID %d: %v", id, err)
		return err
	}
	return nil
}
