package interfaces

import (
	"context"

	"ecertidoes/internal/domain/entities"
)

// IOrderRepository abstracts relational persistence for the order aggregate.
//
// Getters return a zero-value Order (ID == 0) and a nil error when nothing matches.
type IOrderRepository interface {
	// Create inserts the order, its items and files in one transaction and
	// assigns the protocol from the generated id.
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id uint64) (entities.Order, error)
	ListByUserID(ctx context.Context, userID uint64) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status entities.OrderStatus) error
	ApplyAdminUpdate(ctx context.Context, id uint64, upd entities.OrderAdminUpdate) error
	// AttachFile appends the file and sets the order status in one transaction.
	AttachFile(ctx context.Context, f entities.AttachedFile, status entities.OrderStatus) (entities.AttachedFile, error)
}
