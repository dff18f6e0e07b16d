package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
	mock_interfaces "ecertidoes/internal/usecase/interfaces/mocks"
)

func ownedOrder(id, userID uint64, status entities.OrderStatus) entities.Order {
	uid := userID
	return entities.Order{
		ID:        id,
		Protocolo: entities.FormatProtocol(fixedTime, id),
		UserID:    &uid,
		Customer:  entities.CustomerSnapshot{Nome: "Ana Souza", Email: "ana@test.com", CPF: "12345678900"},
		Total:     decimal.RequireFromString("150.00"),
		Status:    status,
	}
}

type checkoutDeps struct {
	orders   *mock_interfaces.MockIOrderRepository
	payments *mock_interfaces.MockIPaymentRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	uc       *CheckoutUseCase
}

func newCheckoutDeps(t *testing.T) checkoutDeps {
	ctrl := gomock.NewController(t)
	d := checkoutDeps{
		orders:   mock_interfaces.NewMockIOrderRepository(ctrl),
		payments: mock_interfaces.NewMockIPaymentRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	d.uc = NewCheckoutUseCase(d.orders, d.payments, d.gateway, nil, CheckoutConfig{
		FrontendURL:     "https://e-certidoes.net.br/",
		BackendURL:      "https://api.e-certidoes.net.br",
		MaxInstallments: 3,
	}, nil)
	return d
}

func TestCheckoutUseCase_CreateCheckout(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		d := newCheckoutDeps(t)
		_, err := d.uc.CreateCheckout(context.Background(), 7, 0)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order of another customer", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 99, entities.OrderStatusAguardandoPagamento), nil)

		_, err := d.uc.CreateCheckout(context.Background(), 7, 42)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order already processed", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 7, entities.OrderStatusProcessando), nil)

		_, err := d.uc.CreateCheckout(context.Background(), 7, 42)
		if !errors.Is(err, ErrOrderAlreadyProcessed) {
			t.Fatalf("expected ErrOrderAlreadyProcessed, got %v", err)
		}
	})

	t.Run("gateway failure leaves no payment record", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 7, entities.OrderStatusAguardandoPagamento), nil)
		d.payments.EXPECT().GetByOrderID(gomock.Any(), uint64(42)).Return(entities.Payment{}, nil)
		d.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutPreference{}, errors.New("mp: unauthorized"))
		d.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := d.uc.CreateCheckout(context.Background(), 7, 42)
		if !errors.Is(err, ErrCheckoutGateway) || KindOf(err) != KindGateway {
			t.Fatalf("expected ErrCheckoutGateway, got %v", err)
		}
	})

	t.Run("creates preference and pending payment", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 7, entities.OrderStatusAguardandoPagamento), nil)
		d.payments.EXPECT().GetByOrderID(gomock.Any(), uint64(42)).Return(entities.Payment{}, nil)
		d.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutPreferenceRequest) (interfaces.CheckoutPreference, error) {
				if req.OrderID != 42 || !req.Amount.Equal(decimal.RequireFromString("150")) {
					t.Fatalf("unexpected request: %+v", req)
				}
				if req.Title != "Pedido de Certidões - Protocolo #EC20240115-42" {
					t.Fatalf("unexpected title: %s", req.Title)
				}
				if req.SuccessURL != "https://e-certidoes.net.br/meus-pedidos/42?status=sucesso" ||
					req.FailureURL != "https://e-certidoes.net.br/meus-pedidos/42?status=falha" ||
					req.PendingURL != "https://e-certidoes.net.br/meus-pedidos/42?status=pendente" {
					t.Fatalf("unexpected back urls: %+v", req)
				}
				if req.NotificationURL != "https://api.e-certidoes.net.br/api/pagamentos/webhook" {
					t.Fatalf("unexpected notification url: %s", req.NotificationURL)
				}
				if req.PayerEmail != "ana@test.com" || req.MaxInstallments != 3 {
					t.Fatalf("unexpected payer/installments: %+v", req)
				}
				return interfaces.CheckoutPreference{ID: "pref-1", CheckoutURL: "https://mp/checkout/pref-1"}, nil
			},
		)
		d.payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.OrderID != 42 || p.GatewayID != "pref-1" || p.Status != entities.PaymentStatusPendente {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if !p.Amount.Equal(decimal.RequireFromString("150.00")) {
					t.Fatalf("payment amount must equal order total, got %s", p.Amount)
				}
				p.ID = 1
				return p, nil
			},
		)

		res, err := d.uc.CreateCheckout(context.Background(), 7, 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PreferenceID != "pref-1" || res.CheckoutURL != "https://mp/checkout/pref-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("second call reuses pending payment", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 7, entities.OrderStatusAguardandoPagamento), nil)
		d.payments.EXPECT().GetByOrderID(gomock.Any(), uint64(42)).Return(entities.Payment{
			ID: 1, OrderID: 42, PreferenceID: "pref-1", CheckoutURL: "https://mp/checkout/pref-1", Status: entities.PaymentStatusPendente,
		}, nil)
		d.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Times(0)

		res, err := d.uc.CreateCheckout(context.Background(), 7, 42)
		if err != nil || res.PreferenceID != "pref-1" {
			t.Fatalf("expected reuse, got %+v %v", res, err)
		}
	})

	t.Run("existing non pending payment conflicts", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 7, entities.OrderStatusAguardandoPagamento), nil)
		d.payments.EXPECT().GetByOrderID(gomock.Any(), uint64(42)).Return(entities.Payment{
			ID: 1, OrderID: 42, PreferenceID: "pref-1", CheckoutURL: "https://mp/checkout/pref-1", Status: entities.PaymentStatusRecusado,
		}, nil)

		_, err := d.uc.CreateCheckout(context.Background(), 7, 42)
		if !errors.Is(err, ErrOrderAlreadyProcessed) {
			t.Fatalf("expected ErrOrderAlreadyProcessed, got %v", err)
		}
	})

	t.Run("concurrent insert reuses winner", func(t *testing.T) {
		d := newCheckoutDeps(t)
		d.orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 7, entities.OrderStatusAguardandoPagamento), nil)
		gomock.InOrder(
			d.payments.EXPECT().GetByOrderID(gomock.Any(), uint64(42)).Return(entities.Payment{}, nil),
			d.payments.EXPECT().GetByOrderID(gomock.Any(), uint64(42)).Return(entities.Payment{
				ID: 9, OrderID: 42, PreferenceID: "pref-winner", CheckoutURL: "https://mp/checkout/pref-winner", Status: entities.PaymentStatusPendente,
			}, nil),
		)
		d.gateway.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutPreference{ID: "pref-2", CheckoutURL: "u"}, nil)
		d.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrDuplicateKey)

		res, err := d.uc.CreateCheckout(context.Background(), 7, 42)
		if err != nil || res.PreferenceID != "pref-winner" {
			t.Fatalf("expected winner preference, got %+v %v", res, err)
		}
	})
}
