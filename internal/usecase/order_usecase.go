package usecase

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

// LineItemInput is one requested certificate in a new order.
type LineItemInput struct {
	Name     string
	Slug     string
	Price    decimal.Decimal
	FormData map[string]any
}

type PlaceOrderInput struct {
	Items       []LineItemInput
	Customer    entities.CustomerSnapshot
	Attachments []FileUpload
}

// IOrderUseCase groups the customer-facing order operations.
type IOrderUseCase interface {
	PlaceOrder(ctx context.Context, userID uint64, in PlaceOrderInput) (entities.Order, error)
	ListMine(ctx context.Context, userID uint64) ([]entities.Order, error)
	GetMine(ctx context.Context, userID, orderID uint64) (entities.Order, error)
	OpenFile(ctx context.Context, userID, orderID, fileID uint64) (entities.AttachedFile, io.ReadCloser, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	storage interfaces.IFileStorage
	log     *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, storage interfaces.IFileStorage, log *zap.Logger) *OrderUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderUseCase{orders: orders, storage: storage, log: log.Named("order.usecase")}
}

func (u *OrderUseCase) PlaceOrder(ctx context.Context, userID uint64, in PlaceOrderInput) (entities.Order, error) {
	log := u.log.With(zap.Uint64("user_id", userID), zap.Int("items", len(in.Items)))
	log.Info("place order start")

	if len(in.Items) == 0 {
		return entities.Order{}, ErrEmptyOrderItems
	}
	if !in.Customer.HasRequiredFields() {
		return entities.Order{}, ErrMissingCustomerData
	}
	if len(in.Attachments) > MaxCustomerUploads {
		return entities.Order{}, ErrTooManyAttachments
	}

	items := make([]entities.LineItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Price.IsNegative() || strings.TrimSpace(it.Name) == "" {
			return entities.Order{}, ErrInvalidOrderItem
		}
		items = append(items, entities.LineItem{
			Name:     strings.TrimSpace(it.Name),
			Slug:     strings.TrimSpace(it.Slug),
			Price:    it.Price.Round(2),
			FormData: it.FormData,
		})
	}

	files, err := u.storeAttachments(ctx, in.Attachments)
	if err != nil {
		log.Warn("place order attachments rejected", zap.Error(err))
		return entities.Order{}, err
	}

	o := entities.Order{
		UserID:   &userID,
		Customer: in.Customer,
		Total:    entities.SumItems(items),
		Status:   entities.OrderStatusAguardandoPagamento,
		Items:    items,
		Files:    files,
	}

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		log.Error("place order persist failed", zap.Error(err))
		u.discardBlobs(ctx, files)
		return entities.Order{}, err
	}

	log.Info("place order success",
		zap.Uint64("order_id", created.ID),
		zap.String("protocolo", created.Protocolo),
		zap.String("total", created.Total.StringFixed(2)),
	)
	return created, nil
}

func (u *OrderUseCase) storeAttachments(ctx context.Context, uploads []FileUpload) ([]entities.AttachedFile, error) {
	files := make([]entities.AttachedFile, 0, len(uploads))
	for _, up := range uploads {
		r, err := sniffUpload(up, MaxUploadBytes, proofMIMETypes, ErrInvalidAttachment)
		if err != nil {
			u.discardBlobs(ctx, files)
			return nil, err
		}
		path, err := u.storage.Save(ctx, up.OriginalName, r)
		if err != nil {
			u.discardBlobs(ctx, files)
			return nil, err
		}
		files = append(files, entities.AttachedFile{
			OriginalName: up.OriginalName,
			Path:         path,
			Kind:         entities.FileKindComprovante,
		})
	}
	return files, nil
}

func (u *OrderUseCase) discardBlobs(ctx context.Context, files []entities.AttachedFile) {
	var errs error
	for _, f := range files {
		errs = multierr.Append(errs, u.storage.Delete(ctx, f.Path))
	}
	if errs != nil {
		u.log.Warn("discard blobs failed", zap.Errors("errors", multierr.Errors(errs)))
	}
}

func (u *OrderUseCase) ListMine(ctx context.Context, userID uint64) ([]entities.Order, error) {
	return u.orders.ListByUserID(ctx, userID)
}

func (u *OrderUseCase) GetMine(ctx context.Context, userID, orderID uint64) (entities.Order, error) {
	if orderID == 0 {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 || !o.IsOwnedBy(userID) {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) OpenFile(ctx context.Context, userID, orderID, fileID uint64) (entities.AttachedFile, io.ReadCloser, error) {
	log := u.log.With(zap.Uint64("order_id", orderID), zap.Uint64("file_id", fileID))

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.AttachedFile{}, nil, err
	}
	if o.ID == 0 || !o.IsOwnedBy(userID) {
		return entities.AttachedFile{}, nil, ErrFileNotFound
	}
	f, ok := o.FileByID(fileID)
	if !ok {
		return entities.AttachedFile{}, nil, ErrFileNotFound
	}

	rc, err := u.storage.Open(ctx, f.Path)
	if err != nil {
		if errors.Is(err, interfaces.ErrBlobNotFound) {
			log.Error("download blob missing", zap.String("path", f.Path))
			return entities.AttachedFile{}, nil, wrap(ErrFileMissingInStorage, err)
		}
		return entities.AttachedFile{}, nil, err
	}
	return f, rc, nil
}
