package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

const WebhookKindPayment = "payment"

// WebhookEvent is a gateway notification already reduced to its kind and payment id.
type WebhookEvent struct {
	Kind       string
	PaymentID  string
	Raw        json.RawMessage
	ReceivedAt time.Time
}

// IWebhookUseCase reconciles gateway notifications with local state.
// Process never returns an error: failures are logged and recorded.
type IWebhookUseCase interface {
	Process(ctx context.Context, ev WebhookEvent) entities.WebhookOutcome
}

type WebhookUseCase struct {
	orders        interfaces.IOrderRepository
	payments      interfaces.IPaymentRepository
	gateway       interfaces.IPaymentGateway
	notifier      interfaces.INotificationSender
	notifications interfaces.IWebhookNotificationRepository
	metrics       interfaces.IPaymentMetrics
	log           *zap.Logger
	now           func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	orders interfaces.IOrderRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotificationSender,
	notifications interfaces.IWebhookNotificationRepository,
	metrics interfaces.IPaymentMetrics,
	log *zap.Logger,
) *WebhookUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &WebhookUseCase{
		orders:        orders,
		payments:      payments,
		gateway:       gateway,
		notifier:      notifier,
		notifications: notifications,
		metrics:       metricsOrNop(metrics),
		log:           log.Named("payment.webhook"),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (u *WebhookUseCase) Process(ctx context.Context, ev WebhookEvent) (outcome entities.WebhookOutcome) {
	log := u.log.With(zap.String("kind", ev.Kind), zap.String("payment_id", ev.PaymentID))
	rec := entities.WebhookNotification{
		ID:               uuid.NewString(),
		Kind:             ev.Kind,
		GatewayPaymentID: ev.PaymentID,
		PayloadRaw:       ev.Raw,
		ReceivedAt:       ev.ReceivedAt,
	}
	if rec.ReceivedAt.IsZero() {
		rec.ReceivedAt = u.now()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("webhook processing panicked", zap.Any("panic", r), zap.Stack("stack"))
			outcome = entities.WebhookOutcomeFailed
			rec.Detail = fmt.Sprintf("panic: %v", r)
		}
		rec.Outcome = outcome
		rec.ProcessedAt = u.now()
		u.metrics.WebhookOutcome(string(outcome))
		u.record(ctx, log, rec)
	}()

	if ev.Kind != WebhookKindPayment {
		log.Debug("webhook ignored")
		return entities.WebhookOutcomeIgnored
	}

	outcome, err := u.reconcile(ctx, log, ev, &rec)
	if err != nil {
		rec.Detail = err.Error()
		if outcome == entities.WebhookOutcomeFailed {
			log.Error("webhook processing failed", zap.Error(err))
		} else {
			log.Warn("webhook processing aborted", zap.Error(err))
		}
	}
	return outcome
}

func (u *WebhookUseCase) reconcile(ctx context.Context, log *zap.Logger, ev WebhookEvent, rec *entities.WebhookNotification) (entities.WebhookOutcome, error) {
	paymentID := strings.TrimSpace(ev.PaymentID)
	if paymentID == "" {
		return entities.WebhookOutcomeAborted, errors.New("notification without payment id")
	}
	if u.gateway == nil {
		return entities.WebhookOutcomeFailed, errGatewayNotConfigured
	}

	start := time.Now()
	gp, err := u.gateway.GetPayment(ctx, paymentID)
	u.metrics.GatewayCall("get_payment", time.Since(start), err)
	if err != nil {
		return entities.WebhookOutcomeFailed, fmt.Errorf("fetching payment: %w", err)
	}
	rec.GatewayStatus = gp.Status

	ref := strings.TrimSpace(gp.ExternalReference)
	if ref == "" {
		return entities.WebhookOutcomeAborted, errors.New("payment without external reference")
	}
	rec.OrderID = ref
	orderID, err := strconv.ParseUint(ref, 10, 64)
	if err != nil || orderID == 0 {
		return entities.WebhookOutcomeAborted, fmt.Errorf("invalid external reference %q", ref)
	}
	log = log.With(zap.Uint64("order_id", orderID), zap.String("gateway_status", gp.Status))

	p, err := u.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		return entities.WebhookOutcomeFailed, fmt.Errorf("loading payment record: %w", err)
	}
	if p.ID == 0 {
		return entities.WebhookOutcomeAborted, errors.New("no payment record for order")
	}

	if gp.ID != "" {
		p.GatewayID = gp.ID
	} else {
		p.GatewayID = paymentID
	}

	newStatus, known := entities.MapGatewayStatus(gp.Status)
	if !known {
		newStatus = p.Status
	}
	changed := newStatus != p.Status
	if changed {
		p.Status = newStatus
		if method, ok := entities.InferPaymentMethod(gp.PaymentMethodID); ok {
			p.Method = method
		}
	}
	rec.PaymentStatus = p.Status

	if err := u.payments.UpdateReconciliation(ctx, p); err != nil {
		return entities.WebhookOutcomeFailed, fmt.Errorf("saving payment record: %w", err)
	}
	log.Info("webhook payment reconciled", zap.String("payment_status", string(p.Status)), zap.Bool("changed", changed))

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.WebhookOutcomeFailed, fmt.Errorf("loading order: %w", err)
	}
	if o.ID == 0 {
		return entities.WebhookOutcomeAborted, errors.New("order not found")
	}

	transitioned := o.ApplyPaymentStatus(p.Status)
	if transitioned {
		if err := u.orders.UpdateStatus(ctx, o.ID, o.Status); err != nil {
			return entities.WebhookOutcomeFailed, fmt.Errorf("saving order status: %w", err)
		}
		log.Info("webhook order status updated", zap.String("order_status", string(o.Status)))

		if o.Status == entities.OrderStatusProcessando && u.notifier != nil {
			if err := u.notifier.SendOrderConfirmation(ctx, o); err != nil {
				log.Warn("webhook confirmation email failed", zap.Error(err))
			}
		}
	}

	if changed || transitioned {
		return entities.WebhookOutcomeReconciled, nil
	}
	return entities.WebhookOutcomeUnchanged, nil
}

func (u *WebhookUseCase) record(ctx context.Context, log *zap.Logger, rec entities.WebhookNotification) {
	if u.notifications == nil {
		return
	}
	if err := u.notifications.Create(ctx, rec); err != nil {
		log.Warn("webhook audit record failed", zap.Error(err))
	}
}
