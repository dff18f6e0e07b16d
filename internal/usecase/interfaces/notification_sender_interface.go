package interfaces

import (
	"context"

	"ecertidoes/internal/domain/entities"
)

// INotificationSender delivers transactional e-mails to the customer of an order.
type INotificationSender interface {
	SendOrderConfirmation(ctx context.Context, o entities.Order) error
	SendStatusUpdate(ctx context.Context, o entities.Order) error
	SendDocumentAvailable(ctx context.Context, o entities.Order, f entities.AttachedFile) error
	SendRefundConfirmation(ctx context.Context, o entities.Order) error
}
