package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

// OrderGormRepository persists the order aggregate in the relational store.
type OrderGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderGormRepository)(nil)

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// Create inserts the header first and derives the protocol from the generated
// id, so both writes share one transaction.
func (r *OrderGormRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	rec, err := toOrderRecord(o)
	if err != nil {
		return entities.Order{}, err
	}
	rec.Protocolo = nil

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return translateError(err)
		}
		protocolo := entities.FormatProtocol(rec.CreatedAt, rec.ID)
		if err := tx.Model(&orderRecord{}).Where("id = ?", rec.ID).Update("protocolo", protocolo).Error; err != nil {
			return translateError(err)
		}
		rec.Protocolo = &protocolo
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec)
}

func (r *OrderGormRepository) GetByID(ctx context.Context, id uint64) (entities.Order, error) {
	var rec orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Payment").
		Preload("User").
		First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	return fromOrderRecord(rec)
}

// ListByUserID returns the customer's orders, newest first, with items and payment.
func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID uint64) ([]entities.Order, error) {
	var recs []orderRecord
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(recs))
	for _, rec := range recs {
		o, err := fromOrderRecord(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderGormRepository) UpdateStatus(ctx context.Context, id uint64, status entities.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *OrderGormRepository) ApplyAdminUpdate(ctx context.Context, id uint64, upd entities.OrderAdminUpdate) error {
	fields := map[string]any{}
	if upd.Status != nil {
		fields["status"] = string(*upd.Status)
	}
	if upd.CodigoRastreio.Set {
		fields["codigo_rastreio"] = upd.CodigoRastreio.Value
	}
	if upd.ObservacoesAdmin.Set {
		fields["observacoes_admin"] = upd.ObservacoesAdmin.Value
	}
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&orderRecord{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *OrderGormRepository) AttachFile(ctx context.Context, f entities.AttachedFile, status entities.OrderStatus) (entities.AttachedFile, error) {
	rec := toFileRecord(f)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		return tx.Model(&orderRecord{}).
			Where("id = ?", f.OrderID).
			Update("status", string(status)).Error
	})
	if err != nil {
		return entities.AttachedFile{}, err
	}
	return fromFileRecord(rec), nil
}
