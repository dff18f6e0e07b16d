package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

// CheckoutConfig holds the public URLs used to build gateway callbacks.
type CheckoutConfig struct {
	FrontendURL     string
	BackendURL      string
	MaxInstallments int
}

type CheckoutResult struct {
	CheckoutURL  string
	PreferenceID string
}

// ICheckoutUseCase starts the hosted payment flow for an order.
//
// A second call while the payment record is still pending returns the stored
// checkout instead of creating a new gateway preference.
type ICheckoutUseCase interface {
	CreateCheckout(ctx context.Context, userID, orderID uint64) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
	metrics  interfaces.IPaymentMetrics
	cfg      CheckoutConfig
	log      *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	orders interfaces.IOrderRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	metrics interfaces.IPaymentMetrics,
	cfg CheckoutConfig,
	log *zap.Logger,
) *CheckoutUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")
	return &CheckoutUseCase{
		orders:   orders,
		payments: payments,
		gateway:  gateway,
		metrics:  metricsOrNop(metrics),
		cfg:      cfg,
		log:      log.Named("payment.checkout"),
	}
}

func (u *CheckoutUseCase) CreateCheckout(ctx context.Context, userID, orderID uint64) (CheckoutResult, error) {
	log := u.log.With(zap.Uint64("order_id", orderID), zap.Uint64("user_id", userID))
	log.Info("create checkout start")

	if orderID == 0 {
		return CheckoutResult{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Error("create checkout failed loading order", zap.Error(err))
		return CheckoutResult{}, err
	}
	if o.ID == 0 || !o.IsOwnedBy(userID) {
		log.Info("create checkout order not found")
		return CheckoutResult{}, ErrOrderNotFound
	}
	if o.Status != entities.OrderStatusAguardandoPagamento {
		log.Info("create checkout order already processed", zap.String("status", string(o.Status)))
		u.metrics.CheckoutOutcome("conflict")
		return CheckoutResult{}, ErrOrderAlreadyProcessed
	}

	existing, err := u.payments.GetByOrderID(ctx, orderID)
	if err != nil {
		log.Error("create checkout failed loading payment", zap.Error(err))
		return CheckoutResult{}, err
	}
	if existing.ID != 0 {
		return u.reuse(log, existing)
	}

	if u.gateway == nil {
		log.Error("create checkout gateway not configured")
		return CheckoutResult{}, wrap(ErrCheckoutGateway, errGatewayNotConfigured)
	}

	start := time.Now()
	pref, err := u.gateway.CreatePreference(ctx, u.preferenceRequest(o))
	u.metrics.GatewayCall("create_preference", time.Since(start), err)
	if err != nil {
		log.Error("create checkout gateway failed", zap.Error(err))
		u.metrics.CheckoutOutcome("gateway_error")
		return CheckoutResult{}, wrap(ErrCheckoutGateway, err)
	}

	p := entities.Payment{
		OrderID:      o.ID,
		GatewayID:    pref.ID,
		PreferenceID: pref.ID,
		CheckoutURL:  pref.CheckoutURL,
		Status:       entities.PaymentStatusPendente,
		Method:       entities.PaymentMethodMercadoPago,
		Amount:       o.Total,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			// A concurrent request won the insert.
			current, getErr := u.payments.GetByOrderID(ctx, orderID)
			if getErr != nil {
				return CheckoutResult{}, getErr
			}
			return u.reuse(log, current)
		}
		log.Error("create checkout failed persisting payment", zap.Error(err))
		return CheckoutResult{}, err
	}

	u.metrics.CheckoutOutcome("created")
	log.Info("create checkout success", zap.String("preference_id", created.PreferenceID))
	return CheckoutResult{CheckoutURL: created.CheckoutURL, PreferenceID: created.PreferenceID}, nil
}

func (u *CheckoutUseCase) reuse(log *zap.Logger, p entities.Payment) (CheckoutResult, error) {
	if p.Status != entities.PaymentStatusPendente || p.CheckoutURL == "" {
		log.Info("create checkout payment already exists", zap.String("payment_status", string(p.Status)))
		u.metrics.CheckoutOutcome("conflict")
		return CheckoutResult{}, ErrOrderAlreadyProcessed
	}
	log.Info("create checkout reusing pending preference", zap.String("preference_id", p.PreferenceID))
	u.metrics.CheckoutOutcome("reused")
	return CheckoutResult{CheckoutURL: p.CheckoutURL, PreferenceID: p.PreferenceID}, nil
}

func (u *CheckoutUseCase) preferenceRequest(o entities.Order) interfaces.CheckoutPreferenceRequest {
	back := fmt.Sprintf("%s/meus-pedidos/%d?status=", u.cfg.FrontendURL, o.ID)
	return interfaces.CheckoutPreferenceRequest{
		OrderID:         o.ID,
		Title:           fmt.Sprintf("Pedido de Certidões - Protocolo #%s", o.Protocolo),
		Amount:          o.Total,
		PayerName:       o.Customer.Nome,
		PayerEmail:      o.Customer.Email,
		SuccessURL:      back + "sucesso",
		FailureURL:      back + "falha",
		PendingURL:      back + "pendente",
		NotificationURL: u.cfg.BackendURL + "/api/pagamentos/webhook",
		MaxInstallments: u.cfg.MaxInstallments,
	}
}
