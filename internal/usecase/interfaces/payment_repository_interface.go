package interfaces

import (
	"context"
	"errors"

	"ecertidoes/internal/domain/entities"
)

// ErrDuplicateKey is returned by repositories when a unique constraint is violated.
var ErrDuplicateKey = errors.New("duplicate key")

// IPaymentRepository abstracts persistence for the payment record (1:1 with an order).
type IPaymentRepository interface {
	// Create fails with ErrDuplicateKey when the order already has a payment record.
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID uint64) (entities.Payment, error)
	UpdateReconciliation(ctx context.Context, p entities.Payment) error
	// MarkRefunded sets the payment to estornado and the order to Cancelado atomically.
	MarkRefunded(ctx context.Context, paymentID, orderID uint64) error
}
