package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"go.uber.org/zap"

	"ecertidoes/internal/infrastructure/config"
	"ecertidoes/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidPaymentID = errors.New("invalid mercado pago payment id")

const (
	statementDescriptor = "E-CERTIDOES"
	currencyBRL         = "BRL"
	mockPaymentPrefix   = "mock-"
)

type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	refunds     refund.Client
	mockMode    bool
	log         *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("payment.gateway")

	if cfg.Mock {
		log.Warn("mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, log: log}, nil
	}

	if strings.TrimSpace(cfg.AccessToken) == "" {
		log.Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
		refunds:     refund.NewClient(sdkCfg),
		log:         log,
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.CheckoutPreferenceRequest) (interfaces.CheckoutPreference, error) {
	externalRef := strconv.FormatUint(req.OrderID, 10)
	log := g.log.With(zap.String("external_reference", externalRef))

	if g.mockMode {
		pref := interfaces.CheckoutPreference{
			ID:          "mock-pref-" + externalRef,
			CheckoutURL: fmt.Sprintf("%s?payment_id=%s%s&external_reference=%s", req.SuccessURL, mockPaymentPrefix, externalRef, externalRef),
		}
		log.Info("mock preference created", zap.String("preference_id", pref.ID))
		return pref, nil
	}
	if g.preferences == nil {
		return interfaces.CheckoutPreference{}, ErrMercadoPagoGatewayNotConfigured
	}

	sdkReq := preference.Request{
		Items: []preference.ItemRequest{{
			ID:         externalRef,
			Title:      req.Title,
			CategoryID: "services",
			Quantity:   1,
			CurrencyID: currencyBRL,
			UnitPrice:  req.Amount.Round(2).InexactFloat64(),
		}},
		Payer: &preference.PayerRequest{
			Name:  req.PayerName,
			Email: req.PayerEmail,
		},
		BackURLs: &preference.BackURLsRequest{
			Success: req.SuccessURL,
			Failure: req.FailureURL,
			Pending: req.PendingURL,
		},
		AutoReturn:          "approved",
		ExternalReference:   externalRef,
		NotificationURL:     req.NotificationURL,
		StatementDescriptor: statementDescriptor,
	}
	if req.MaxInstallments > 0 {
		sdkReq.PaymentMethods = &preference.PaymentMethodsRequest{Installments: req.MaxInstallments}
	}

	resp, err := g.preferences.Create(ctx, sdkReq)
	if err != nil {
		log.Error("sdk create preference failed", zap.Error(err))
		return interfaces.CheckoutPreference{}, err
	}
	log.Info("create preference success", zap.String("preference_id", resp.ID))

	return interfaces.CheckoutPreference{ID: resp.ID, CheckoutURL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, paymentID string) (interfaces.GatewayPayment, error) {
	log := g.log.With(zap.String("payment_id", paymentID))

	if g.mockMode {
		ref, ok := strings.CutPrefix(paymentID, mockPaymentPrefix)
		if !ok || ref == "" {
			return interfaces.GatewayPayment{}, ErrInvalidPaymentID
		}
		log.Info("mock payment fetched")
		return interfaces.GatewayPayment{ID: paymentID, Status: "approved", ExternalReference: ref, PaymentMethodID: "pix"}, nil
	}
	if g.payments == nil {
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := parsePaymentID(paymentID)
	if err != nil {
		return interfaces.GatewayPayment{}, err
	}
	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Error("sdk get payment failed", zap.Error(err))
		return interfaces.GatewayPayment{}, err
	}
	log.Info("get payment success", zap.String("status", resp.Status), zap.String("external_reference", resp.ExternalReference))

	return interfaces.GatewayPayment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		PaymentMethodID:   resp.PaymentMethodID,
	}, nil
}

func (g *MercadoPagoGateway) RefundPayment(ctx context.Context, paymentID string) error {
	log := g.log.With(zap.String("payment_id", paymentID))

	if g.mockMode {
		if !strings.HasPrefix(paymentID, mockPaymentPrefix) {
			return ErrInvalidPaymentID
		}
		log.Info("mock refund accepted")
		return nil
	}
	if g.refunds == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := parsePaymentID(paymentID)
	if err != nil {
		return err
	}
	resp, err := g.refunds.Create(ctx, id)
	if err != nil {
		log.Error("sdk refund failed", zap.Error(err))
		return err
	}
	log.Info("refund success", zap.Int("refund_id", resp.ID), zap.String("status", resp.Status))
	return nil
}

func parsePaymentID(paymentID string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaymentID, paymentID)
	}
	return id, nil
}
