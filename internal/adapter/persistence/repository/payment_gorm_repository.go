package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

type PaymentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentGormRepository)(nil)

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	rec := toPaymentRecord(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return entities.Payment{}, translateError(err)
	}
	return fromPaymentRecord(rec), nil
}

func (r *PaymentGormRepository) GetByOrderID(ctx context.Context, orderID uint64) (entities.Payment, error) {
	var rec paymentRecord
	err := r.db.WithContext(ctx).First(&rec, "pedido_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentRecord(rec), nil
}

// UpdateReconciliation stores the gateway id, status and method reported by a notification.
func (r *PaymentGormRepository) UpdateReconciliation(ctx context.Context, p entities.Payment) error {
	return r.db.WithContext(ctx).
		Model(&paymentRecord{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"gateway_id": p.GatewayID,
			"status":     string(p.Status),
			"metodo":     string(p.Method),
		}).Error
}

func (r *PaymentGormRepository) MarkRefunded(ctx context.Context, paymentID, orderID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&paymentRecord{}).
			Where("id = ?", paymentID).
			Update("status", string(entities.PaymentStatusEstornado)).Error; err != nil {
			return err
		}
		return tx.Model(&orderRecord{}).
			Where("id = ?", orderID).
			Update("status", string(entities.OrderStatusCancelado)).Error
	})
}
