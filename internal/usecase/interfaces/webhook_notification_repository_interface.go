package interfaces

import (
	"context"

	"ecertidoes/internal/domain/entities"
)

// IWebhookNotificationRepository abstracts the DynamoDB audit log of gateway notifications.
type IWebhookNotificationRepository interface {
	Create(ctx context.Context, n entities.WebhookNotification) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.WebhookNotification, error)
}
