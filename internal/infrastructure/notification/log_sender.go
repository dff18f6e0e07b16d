package notification

import (
	"context"

	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

// LogSender only logs. It is used when no e-mail provider is configured.
type LogSender struct {
	log *zap.Logger
}

var _ interfaces.INotificationSender = (*LogSender)(nil)

func NewLogSender(log *zap.Logger) *LogSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogSender{log: log.Named("notification")}
}

func (s *LogSender) SendOrderConfirmation(_ context.Context, o entities.Order) error {
	s.skip(o, "order_confirmation")
	return nil
}

func (s *LogSender) SendStatusUpdate(_ context.Context, o entities.Order) error {
	s.skip(o, "status_update")
	return nil
}

func (s *LogSender) SendDocumentAvailable(_ context.Context, o entities.Order, _ entities.AttachedFile) error {
	s.skip(o, "document_available")
	return nil
}

func (s *LogSender) SendRefundConfirmation(_ context.Context, o entities.Order) error {
	s.skip(o, "refund_confirmation")
	return nil
}

func (s *LogSender) skip(o entities.Order, kind string) {
	s.log.Info("e-mail disabled, skipping", zap.Uint64("order_id", o.ID), zap.String("kind", kind))
}
