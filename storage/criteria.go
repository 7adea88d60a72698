package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type RubricCriterionStorage interface {
	GetAll(ctx context.Context) ([]*RubricCriterion, error)
	GetByVersion(ctx context.Context, version string) ([]*RubricCriterion, error)
	Create(ctx context.Context, criterion *RubricCriterion) error
	Update(ctx context.Context, criterion *RubricCriterion) error
	Delete(ctx context.Context, version, name string) error
}

type DynamoRubricCriterionStorage struct {
	Client    *dynamodb.Client
	TableName string
}

// CriterionID builds the table key from rubric version and criterion name.
func CriterionID(version, name string) string {
	return fmt.Sprintf("%s#%s", version, name)
}

func (s *DynamoRubricCriterionStorage) GetAll(ctx context.Context) ([]*RubricCriterion, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: &s.TableName,
	})
	if err != nil {
		logging.Log.Errorf("CRITERIA: scan failed: %v", err)
		return nil, err
	}

	var criteria []*RubricCriterion
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &criteria); err != nil {
		logging.Log.Errorf("CRITERIA: failed to unmarshal criteria list: %v", err)
		return nil, err
	}
	return criteria, nil
}

func (s *DynamoRubricCriterionStorage) GetByVersion(ctx context.Context, version string) ([]*RubricCriterion, error) {
	out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        &s.TableName,
		FilterExpression: aws.String("RubricVersion = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: version},
		},
	})
	if err != nil {
		logging.Log.Errorf("CRITERIA: scan by version failed: %v", err)
		return nil, err
	}

	var criteria []*RubricCriterion
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &criteria); err != nil {
		logging.Log.Errorf("CRITERIA: failed to unmarshal criteria list: %v", err)
		return nil, err
	}
	return criteria, nil
}

func (s *DynamoRubricCriterionStorage) Create(ctx context.Context, criterion *RubricCriterion) error {
	criterion.ID = CriterionID(criterion.RubricVersion, criterion.Name)
	item, err := attributevalue.MarshalMap(criterion)
	if err != nil {
		logging.Log.Errorf("CRITERIA: failed to marshal criterion: %v", err)
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
			logging.Log.Warnf("CRITERIA: criterion %s already exists", criterion.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("CRITERIA: failed to create criterion: %v", err)
		return err
	}
	return nil
}

func (s *DynamoRubricCriterionStorage) Update(ctx context.Context, criterion *RubricCriterion) error {
	criterion.ID = CriterionID(criterion.RubricVersion, criterion.Name)
	item, err := attributevalue.MarshalMap(criterion)
	if err != nil {
		logging.Log.Errorf("CRITERIA: failed to marshal updated criterion: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.TableName,
		Item:      item,
	})
	if err != nil {
		logging.Log.Errorf("CRITERIA: failed to update criterion: %v", err)
		return err
	}
	return nil
}

func (s *DynamoRubricCriterionStorage) Delete(ctx context.Context, version, name string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": CriterionID(version, name)})
	if err != nil {
		logging.Log.Errorf("CRITERIA: failed to marshal delete key: %v", err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("CRITERIA: failed to delete criterion %s: %v", CriterionID(version, name), err)
		return err
	}
	return nil
}
