package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerClient commits items only when the whole transact call succeeds,
// mirroring the TransactWriteItems contract.
type fakeLedgerClient struct {
	transactErr   error
	transactCalls int
	items         []map[string]types.AttributeValue
}

func (f *fakeLedgerClient) TransactWriteItems(_ context.Context, params *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transactCalls++
	if f.transactErr != nil {
		return nil, f.transactErr
	}
	for _, item := range params.TransactItems {
		f.items = append(f.items, item.Put.Item)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeLedgerClient) Query(_ context.Context, _ *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if sk, ok := item["SK"].(*types.AttributeValueMemberS); ok && strings.HasPrefix(sk.Value, teamSortKeyPrefix) {
			matched = append(matched, item)
		}
	}
	return &dynamodb.QueryOutput{Items: matched, Count: int32(len(matched))}, nil
}

func (f *fakeLedgerClient) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{}, nil
}

func (f *fakeLedgerClient) BatchWriteItem(_ context.Context, _ *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	return &dynamodb.BatchWriteItemOutput{}, nil
}

func TestSubmitPortfolioAtomicity(t *testing.T) {
	logging.Log = logrus.New()

	entries := []PortfolioEntry{
		{TeamID: 1, Amount: 400},
		{TeamID: 2, Amount: 400},
		{TeamID: 3, Amount: 200},
	}

	t.Run("Happy path - whole ballot lands in a single call", func(t *testing.T) {
		client := &fakeLedgerClient{}
		ledger := &DynamoTransactionStorage{Client: client, TableName: "Transactions"}

		err := ledger.SubmitPortfolio(context.TODO(), "AAAAA", 1, entries)

		require.NoError(t, err)
		assert.Equal(t, 1, client.transactCalls, "All rows must travel in one transact call")
		assert.Len(t, client.items, 4, "Marker plus one row per team")

		transactions, err := ledger.GetByVoter(context.TODO(), "AAAAA")
		require.NoError(t, err)
		assert.Len(t, transactions, 3)

		voted, err := ledger.HasVoted(context.TODO(), "AAAAA")
		require.NoError(t, err)
		assert.True(t, voted)
	})

	t.Run("Unhappy path - mid-commit failure leaves zero rows", func(t *testing.T) {
		client := &fakeLedgerClient{transactErr: errors.New("connection reset")}
		ledger := &DynamoTransactionStorage{Client: client, TableName: "Transactions"}

		err := ledger.SubmitPortfolio(context.TODO(), "AAAAA", 1, entries)

		assert.ErrorIs(t, err, ErrSubmissionFailed)

		transactions, err := ledger.GetByVoter(context.TODO(), "AAAAA")
		require.NoError(t, err)
		assert.Empty(t, transactions, "A failed commit must not leave partial rows")

		voted, err := ledger.HasVoted(context.TODO(), "AAAAA")
		require.NoError(t, err)
		assert.False(t, voted)
	})

	t.Run("Unhappy path - canceled transaction without condition failure is retryable", func(t *testing.T) {
		client := &fakeLedgerClient{transactErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("TransactionConflict")}},
		}}
		ledger := &DynamoTransactionStorage{Client: client, TableName: "Transactions"}

		err := ledger.SubmitPortfolio(context.TODO(), "AAAAA", 1, entries)

		assert.ErrorIs(t, err, ErrSubmissionFailed)
	})

	t.Run("Unhappy path - condition failure maps to already voted", func(t *testing.T) {
		client := &fakeLedgerClient{transactErr: &types.TransactionCanceledException{
			CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}},
		}}
		ledger := &DynamoTransactionStorage{Client: client, TableName: "Transactions"}

		err := ledger.SubmitPortfolio(context.TODO(), "AAAAA", 1, entries)

		assert.ErrorIs(t, err, ErrAlreadyVoted)

		transactions, err := ledger.GetByVoter(context.TODO(), "AAAAA")
		require.NoError(t, err)
		assert.Empty(t, transactions)
	})
}
