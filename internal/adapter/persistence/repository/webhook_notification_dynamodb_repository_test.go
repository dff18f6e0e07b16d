package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecertidoes/internal/domain/entities"
)

type fakeDynamo struct {
	puts    []*dynamodb.PutItemInput
	queries []*dynamodb.QueryInput
	pages   []*dynamodb.QueryOutput
	putErr  error
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func notificationItem(t *testing.T, n entities.WebhookNotification) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toWebhookNotificationItem(n))
	require.NoError(t, err)
	return av
}

func TestWebhookNotificationDynamoRepository_Create(t *testing.T) {
	ddb := &fakeDynamo{}
	repo := NewWebhookNotificationDynamoRepository(ddb, "")

	received := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	err := repo.Create(context.Background(), entities.WebhookNotification{
		ID:               "n-1",
		Kind:             "payment",
		GatewayPaymentID: "987",
		OrderID:          "42",
		Outcome:          entities.WebhookOutcomeReconciled,
		PayloadRaw:       []byte(`{"type":"payment"}`),
		ReceivedAt:       received,
		ProcessedAt:      received.Add(time.Second),
	})
	require.NoError(t, err)
	require.Len(t, ddb.puts, 1)

	in := ddb.puts[0]
	assert.Equal(t, DefaultWebhookLogTableName, aws.ToString(in.TableName))
	assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))

	var it webhookNotificationItem
	require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
	assert.Equal(t, "42", it.OrderID)
	assert.Equal(t, "reconciled", it.Outcome)
	assert.Equal(t, "2024-01-15T10:00:00Z", it.ReceivedAt)
}

func TestWebhookNotificationDynamoRepository_CreateError(t *testing.T) {
	ddb := &fakeDynamo{putErr: errors.New("throttled")}
	repo := NewWebhookNotificationDynamoRepository(ddb, "audit")

	err := repo.Create(context.Background(), entities.WebhookNotification{ID: "n-1"})
	assert.EqualError(t, err, "throttled")
}

func TestWebhookNotificationDynamoRepository_ListByOrderID(t *testing.T) {
	base := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	later := entities.WebhookNotification{ID: "n-2", OrderID: "42", Outcome: entities.WebhookOutcomeUnchanged, ReceivedAt: base.Add(time.Minute)}
	earlier := entities.WebhookNotification{ID: "n-1", OrderID: "42", Outcome: entities.WebhookOutcomeReconciled, ReceivedAt: base}

	ddb := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{notificationItem(t, later)},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "n-2"}},
		},
		{Items: []map[string]types.AttributeValue{notificationItem(t, earlier)}},
	}}
	repo := NewWebhookNotificationDynamoRepository(ddb, "audit")

	got, err := repo.ListByOrderID(context.Background(), "42")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "n-1", got[0].ID)
	assert.Equal(t, "n-2", got[1].ID)

	require.Len(t, ddb.queries, 2)
	assert.Equal(t, WebhookLogOrderIDIndex, aws.ToString(ddb.queries[0].IndexName))
	assert.Nil(t, ddb.queries[0].ExclusiveStartKey)
	assert.NotNil(t, ddb.queries[1].ExclusiveStartKey)
}
