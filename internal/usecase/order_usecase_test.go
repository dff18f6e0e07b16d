package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
	mock_interfaces "ecertidoes/internal/usecase/interfaces/mocks"
)

func validCustomer() entities.CustomerSnapshot {
	return entities.CustomerSnapshot{Nome: "Ana Souza", Email: "ana@test.com", CPF: "12345678900"}
}

func TestOrderUseCase_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("empty items", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.PlaceOrder(ctx, 7, PlaceOrderInput{Customer: validCustomer()})
		if !errors.Is(err, ErrEmptyOrderItems) {
			t.Fatalf("expected ErrEmptyOrderItems, got %v", err)
		}
	})

	t.Run("missing customer fields", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil)
		_, err := uc.PlaceOrder(ctx, 7, PlaceOrderInput{
			Items:    []LineItemInput{{Name: "Certidão de Nascimento", Price: decimal.NewFromInt(60)}},
			Customer: entities.CustomerSnapshot{Nome: "Ana", Email: "ana@test.com"},
		})
		if !errors.Is(err, ErrMissingCustomerData) || KindOf(err) != KindValidation {
			t.Fatalf("expected ErrMissingCustomerData, got %v", err)
		}
	})

	t.Run("total is the sum of item prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if !o.Total.Equal(decimal.RequireFromString("150.00")) {
					t.Fatalf("expected total 150.00, got %s", o.Total)
				}
				if o.Status != entities.OrderStatusAguardandoPagamento || o.UserID == nil || *o.UserID != 7 {
					t.Fatalf("unexpected order: %+v", o)
				}
				if len(o.Items) != 2 || o.Items[0].Slug != "nascimento" {
					t.Fatalf("unexpected items: %+v", o.Items)
				}
				o.ID = 42
				o.Protocolo = entities.FormatProtocol(fixedTime, 42)
				return o, nil
			},
		)

		got, err := uc.PlaceOrder(ctx, 7, PlaceOrderInput{
			Items: []LineItemInput{
				{Name: "Certidão de Nascimento", Slug: "nascimento", Price: decimal.RequireFromString("60.00")},
				{Name: "Certidão de Casamento", Slug: "casamento", Price: decimal.RequireFromString("90.00")},
			},
			Customer: validCustomer(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 42 || got.Protocolo != "EC20240115-42" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("stores attachments as proof files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewOrderUseCase(orders, storage, nil)

		storage.EXPECT().Save(gomock.Any(), "rg.pdf", gomock.Any()).Return("u1.pdf", nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if len(o.Files) != 1 || o.Files[0].Kind != entities.FileKindComprovante || o.Files[0].Path != "u1.pdf" {
					t.Fatalf("unexpected files: %+v", o.Files)
				}
				o.ID = 1
				return o, nil
			},
		)

		_, err := uc.PlaceOrder(ctx, 7, PlaceOrderInput{
			Items:       []LineItemInput{{Name: "Certidão", Price: decimal.NewFromInt(60)}},
			Customer:    validCustomer(),
			Attachments: []FileUpload{pdfUpload("rg.pdf")},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("persist failure discards stored attachments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewOrderUseCase(orders, storage, nil)

		storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("u1.pdf", nil)
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))
		storage.EXPECT().Delete(gomock.Any(), "u1.pdf").Return(nil)

		_, err := uc.PlaceOrder(ctx, 7, PlaceOrderInput{
			Items:       []LineItemInput{{Name: "Certidão", Price: decimal.NewFromInt(60)}},
			Customer:    validCustomer(),
			Attachments: []FileUpload{pdfUpload("rg.pdf")},
		})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("too many attachments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewOrderUseCase(orders, storage, nil)

		uploads := make([]FileUpload, 0, MaxCustomerUploads+1)
		for i := 0; i <= MaxCustomerUploads; i++ {
			uploads = append(uploads, pdfUpload("rg.pdf"))
		}
		_, err := uc.PlaceOrder(ctx, 7, PlaceOrderInput{
			Items:       []LineItemInput{{Name: "Certidão", Price: decimal.NewFromInt(60)}},
			Customer:    validCustomer(),
			Attachments: uploads,
		})
		if !errors.Is(err, ErrTooManyAttachments) || KindOf(err) != KindValidation {
			t.Fatalf("expected ErrTooManyAttachments, got %v", err)
		}
	})

	t.Run("unsupported attachment type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewOrderUseCase(orders, storage, nil)

		text := []byte("apenas texto")
		_, err := uc.PlaceOrder(ctx, 7, PlaceOrderInput{
			Items:       []LineItemInput{{Name: "Certidão", Price: decimal.NewFromInt(60)}},
			Customer:    validCustomer(),
			Attachments: []FileUpload{{OriginalName: "rg.txt", Size: int64(len(text)), Content: bytes.NewReader(text)}},
		})
		if !errors.Is(err, ErrInvalidAttachment) {
			t.Fatalf("expected ErrInvalidAttachment, got %v", err)
		}
	})
}

func TestOrderUseCase_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(orders, nil, nil)

	orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 8, entities.OrderStatusProcessando), nil)
	if _, err := uc.GetMine(context.Background(), 7, 42); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(ownedOrder(42, 7, entities.OrderStatusProcessando), nil)
	if o, err := uc.GetMine(context.Background(), 7, 42); err != nil || o.ID != 42 {
		t.Fatalf("unexpected result: %+v %v", o, err)
	}
}

func TestOrderUseCase_OpenFile(t *testing.T) {
	withFile := func() entities.Order {
		o := ownedOrder(42, 7, entities.OrderStatusConcluido)
		o.Files = []entities.AttachedFile{{ID: 3, OrderID: 42, OriginalName: "certidao.pdf", Path: "abc.pdf", Kind: entities.FileKindCertidao}}
		return o
	}

	t.Run("file of another customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil)
		orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(withFile(), nil)

		_, _, err := uc.OpenFile(context.Background(), 8, 42, 3)
		if !errors.Is(err, ErrFileNotFound) || KindOf(err) != KindNotFound {
			t.Fatalf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("file not in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil, nil)
		orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(withFile(), nil)

		if _, _, err := uc.OpenFile(context.Background(), 7, 42, 99); !errors.Is(err, ErrFileNotFound) {
			t.Fatalf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("blob missing from storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewOrderUseCase(orders, storage, nil)
		orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(withFile(), nil)
		storage.EXPECT().Open(gomock.Any(), "abc.pdf").Return(nil, interfaces.ErrBlobNotFound)

		_, _, err := uc.OpenFile(context.Background(), 7, 42, 3)
		if !errors.Is(err, ErrFileMissingInStorage) || KindOf(err) != KindInternal {
			t.Fatalf("expected ErrFileMissingInStorage, got %v", err)
		}
	})

	t.Run("streams blob", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		uc := NewOrderUseCase(orders, storage, nil)
		orders.EXPECT().GetByID(gomock.Any(), uint64(42)).Return(withFile(), nil)
		storage.EXPECT().Open(gomock.Any(), "abc.pdf").Return(io.NopCloser(strings.NewReader("pdf")), nil)

		f, rc, err := uc.OpenFile(context.Background(), 7, 42, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close()
		if f.OriginalName != "certidao.pdf" {
			t.Fatalf("unexpected file: %+v", f)
		}
	})
}
