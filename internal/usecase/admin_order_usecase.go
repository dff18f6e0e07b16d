package usecase

import (
	"context"
	"strconv"
	"time"

	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

// UploadResult is returned after a certificate file is attached.
type UploadResult struct {
	File        entities.AttachedFile
	OrderStatus entities.OrderStatus
}

// IAdminOrderUseCase groups the administrative fulfillment operations.
type IAdminOrderUseCase interface {
	GetDetails(ctx context.Context, orderID uint64) (entities.Order, error)
	Update(ctx context.Context, orderID uint64, upd entities.OrderAdminUpdate) (entities.Order, error)
	UploadCertificate(ctx context.Context, orderID uint64, up FileUpload) (UploadResult, error)
	Refund(ctx context.Context, orderID uint64) error
	ListNotifications(ctx context.Context, orderID uint64) ([]entities.WebhookNotification, error)
}

type AdminOrderUseCase struct {
	orders        interfaces.IOrderRepository
	payments      interfaces.IPaymentRepository
	gateway       interfaces.IPaymentGateway
	notifier      interfaces.INotificationSender
	storage       interfaces.IFileStorage
	notifications interfaces.IWebhookNotificationRepository
	metrics       interfaces.IPaymentMetrics
	log           *zap.Logger
}

var _ IAdminOrderUseCase = (*AdminOrderUseCase)(nil)

func NewAdminOrderUseCase(
	orders interfaces.IOrderRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotificationSender,
	storage interfaces.IFileStorage,
	notifications interfaces.IWebhookNotificationRepository,
	metrics interfaces.IPaymentMetrics,
	log *zap.Logger,
) *AdminOrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &AdminOrderUseCase{
		orders:        orders,
		payments:      payments,
		gateway:       gateway,
		notifier:      notifier,
		storage:       storage,
		notifications: notifications,
		metrics:       metricsOrNop(metrics),
		log:           log.Named("admin.usecase"),
	}
}

func (u *AdminOrderUseCase) load(ctx context.Context, orderID uint64) (entities.Order, error) {
	if orderID == 0 {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 {
		return entities.Order{}, ErrAdminOrderNotFound
	}
	return o, nil
}

func (u *AdminOrderUseCase) GetDetails(ctx context.Context, orderID uint64) (entities.Order, error) {
	return u.load(ctx, orderID)
}

func (u *AdminOrderUseCase) Update(ctx context.Context, orderID uint64, upd entities.OrderAdminUpdate) (entities.Order, error) {
	log := u.log.With(zap.Uint64("order_id", orderID))
	log.Info("admin update start")

	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Order{}, ErrInvalidStatus
	}
	if _, err := u.load(ctx, orderID); err != nil {
		return entities.Order{}, err
	}

	if !upd.IsEmpty() {
		if err := u.orders.ApplyAdminUpdate(ctx, orderID, upd); err != nil {
			log.Error("admin update persist failed", zap.Error(err))
			return entities.Order{}, err
		}
	}

	o, err := u.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	u.notify(log, "status update", func() error { return u.notifier.SendStatusUpdate(ctx, o) })

	log.Info("admin update success", zap.String("status", string(o.Status)))
	return o, nil
}

func (u *AdminOrderUseCase) UploadCertificate(ctx context.Context, orderID uint64, up FileUpload) (UploadResult, error) {
	log := u.log.With(zap.Uint64("order_id", orderID), zap.String("file_name", up.OriginalName))
	log.Info("admin upload start")

	r, err := sniffUpload(up, MaxUploadBytes, pdfOnly, ErrInvalidFile)
	if err != nil {
		return UploadResult{}, err
	}
	o, err := u.load(ctx, orderID)
	if err != nil {
		return UploadResult{}, err
	}

	path, err := u.storage.Save(ctx, up.OriginalName, r)
	if err != nil {
		log.Error("admin upload store failed", zap.Error(err))
		return UploadResult{}, err
	}

	f := entities.AttachedFile{
		OrderID:      o.ID,
		OriginalName: up.OriginalName,
		Path:         path,
		Kind:         entities.FileKindCertidao,
	}
	o.AttachCertificate(f)

	saved, err := u.orders.AttachFile(ctx, f, o.Status)
	if err != nil {
		log.Error("admin upload persist failed", zap.Error(err))
		if delErr := u.storage.Delete(ctx, path); delErr != nil {
			log.Warn("admin upload blob cleanup failed", zap.Error(delErr))
		}
		return UploadResult{}, err
	}

	u.notify(log, "document available", func() error { return u.notifier.SendDocumentAvailable(ctx, o, saved) })

	log.Info("admin upload success", zap.Uint64("file_id", saved.ID), zap.String("status", string(o.Status)))
	return UploadResult{File: saved, OrderStatus: o.Status}, nil
}

func (u *AdminOrderUseCase) Refund(ctx context.Context, orderID uint64) error {
	log := u.log.With(zap.Uint64("order_id", orderID))
	log.Info("admin refund start")

	o, err := u.load(ctx, orderID)
	if err != nil {
		return err
	}
	p, err := u.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if p.ID == 0 || p.GatewayID == "" {
		u.metrics.RefundOutcome("rejected")
		return ErrPaymentNotRefundable
	}
	if !p.CanRefund() {
		log.Info("admin refund rejected", zap.String("payment_status", string(p.Status)))
		u.metrics.RefundOutcome("rejected")
		return ErrPaymentNotApproved
	}
	if u.gateway == nil {
		return wrap(ErrRefundGateway, errGatewayNotConfigured)
	}

	start := time.Now()
	err = u.gateway.RefundPayment(ctx, p.GatewayID)
	u.metrics.GatewayCall("refund", time.Since(start), err)
	if err != nil {
		log.Error("admin refund gateway failed", zap.String("gateway_id", p.GatewayID), zap.Error(err))
		u.metrics.RefundOutcome("gateway_error")
		return wrap(ErrRefundGateway, err)
	}

	if err := u.payments.MarkRefunded(ctx, p.ID, o.ID); err != nil {
		log.Error("admin refund persist failed after gateway refund", zap.String("gateway_id", p.GatewayID), zap.Error(err))
		u.metrics.RefundOutcome("persist_error")
		return err
	}
	o.Status = entities.OrderStatusCancelado
	u.metrics.RefundOutcome("refunded")

	u.notify(log, "refund", func() error { return u.notifier.SendRefundConfirmation(ctx, o) })
	log.Info("admin refund success", zap.String("gateway_id", p.GatewayID))
	return nil
}

func (u *AdminOrderUseCase) ListNotifications(ctx context.Context, orderID uint64) ([]entities.WebhookNotification, error) {
	if _, err := u.load(ctx, orderID); err != nil {
		return nil, err
	}
	if u.notifications == nil {
		return []entities.WebhookNotification{}, nil
	}
	return u.notifications.ListByOrderID(ctx, strconv.FormatUint(orderID, 10))
}

// notify sends a best-effort e-mail; failures never fail the operation.
func (u *AdminOrderUseCase) notify(log *zap.Logger, kind string, send func() error) {
	if u.notifier == nil {
		return
	}
	if err := send(); err != nil {
		log.Warn("admin email failed", zap.String("email", kind), zap.Error(err))
	}
}
