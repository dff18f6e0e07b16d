package repository

import (
	"context"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

const (
	DefaultWebhookLogTableName = "webhook_notifications"
	WebhookLogOrderIDIndex     = "order_id-index"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the repositories.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

type webhookNotificationItem struct {
	ID               string `dynamodbav:"id"`
	Kind             string `dynamodbav:"kind"`
	GatewayPaymentID string `dynamodbav:"gateway_payment_id,omitempty"`
	OrderID          string `dynamodbav:"order_id,omitempty"`
	GatewayStatus    string `dynamodbav:"gateway_status,omitempty"`
	PaymentStatus    string `dynamodbav:"payment_status,omitempty"`
	Outcome          string `dynamodbav:"outcome"`
	Detail           string `dynamodbav:"detail,omitempty"`
	PayloadRaw       string `dynamodbav:"payload_raw,omitempty"`
	ReceivedAt       string `dynamodbav:"received_at"`
	ProcessedAt      string `dynamodbav:"processed_at"`
}

// WebhookNotificationDynamoRepository appends gateway notifications to DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// Items without order_id (ignored or aborted notifications) are not projected
// into the index.
type WebhookNotificationDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IWebhookNotificationRepository = (*WebhookNotificationDynamoRepository)(nil)

func NewWebhookNotificationDynamoRepository(ddb DynamoDBAPI, tableName string) *WebhookNotificationDynamoRepository {
	if tableName == "" {
		tableName = DefaultWebhookLogTableName
	}
	return &WebhookNotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WebhookNotificationDynamoRepository) Create(ctx context.Context, n entities.WebhookNotification) error {
	av, err := attributevalue.MarshalMap(toWebhookNotificationItem(n))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// ListByOrderID returns the notifications of an order, oldest first.
func (r *WebhookNotificationDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.WebhookNotification, error) {
	items := make([]entities.WebhookNotification, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(WebhookLogOrderIDIndex),
			KeyConditionExpression: aws.String("order_id = :oid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":oid": &types.AttributeValueMemberS{Value: orderID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		for _, raw := range out.Items {
			var it webhookNotificationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromWebhookNotificationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ReceivedAt.Before(items[j].ReceivedAt)
	})
	return items, nil
}

func toWebhookNotificationItem(n entities.WebhookNotification) webhookNotificationItem {
	return webhookNotificationItem{
		ID:               n.ID,
		Kind:             n.Kind,
		GatewayPaymentID: n.GatewayPaymentID,
		OrderID:          n.OrderID,
		GatewayStatus:    n.GatewayStatus,
		PaymentStatus:    string(n.PaymentStatus),
		Outcome:          string(n.Outcome),
		Detail:           n.Detail,
		PayloadRaw:       string(n.PayloadRaw),
		ReceivedAt:       n.ReceivedAt.UTC().Format(time.RFC3339Nano),
		ProcessedAt:      n.ProcessedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWebhookNotificationItem(it webhookNotificationItem) entities.WebhookNotification {
	received, _ := time.Parse(time.RFC3339Nano, it.ReceivedAt)
	processed, _ := time.Parse(time.RFC3339Nano, it.ProcessedAt)
	n := entities.WebhookNotification{
		ID:               it.ID,
		Kind:             it.Kind,
		GatewayPaymentID: it.GatewayPaymentID,
		OrderID:          it.OrderID,
		GatewayStatus:    it.GatewayStatus,
		PaymentStatus:    entities.PaymentStatus(it.PaymentStatus),
		Outcome:          entities.WebhookOutcome(it.Outcome),
		Detail:           it.Detail,
		ReceivedAt:       received,
		ProcessedAt:      processed,
	}
	if it.PayloadRaw != "" {
		n.PayloadRaw = []byte(it.PayloadRaw)
	}
	return n
}
