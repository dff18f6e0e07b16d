package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"ecertidoes/internal/domain/entities"
	"ecertidoes/internal/usecase/interfaces"
)

type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendSender delivers transactional e-mails through the Resend API.
type ResendSender struct {
	emails     emailsAPI
	from       string
	backendURL string
	log        *zap.Logger
}

var _ interfaces.INotificationSender = (*ResendSender)(nil)

func NewResendSender(apiKey, from, backendURL string, log *zap.Logger) *ResendSender {
	if log == nil {
		log = zap.NewNop()
	}
	client := resend.NewClient(apiKey)
	return &ResendSender{emails: client.Emails, from: from, backendURL: backendURL, log: log.Named("notification")}
}

func (s *ResendSender) SendOrderConfirmation(ctx context.Context, o entities.Order) error {
	msg, err := orderConfirmation(o)
	if err != nil {
		return err
	}
	return s.send(ctx, o, "order_confirmation", msg)
}

func (s *ResendSender) SendStatusUpdate(ctx context.Context, o entities.Order) error {
	msg, err := statusUpdate(o)
	if err != nil {
		return err
	}
	return s.send(ctx, o, "status_update", msg)
}

func (s *ResendSender) SendDocumentAvailable(ctx context.Context, o entities.Order, f entities.AttachedFile) error {
	msg, err := documentAvailable(o, f, s.backendURL)
	if err != nil {
		return err
	}
	return s.send(ctx, o, "document_available", msg)
}

func (s *ResendSender) SendRefundConfirmation(ctx context.Context, o entities.Order) error {
	msg, err := refundConfirmation(o)
	if err != nil {
		return err
	}
	return s.send(ctx, o, "refund_confirmation", msg)
}

func (s *ResendSender) send(ctx context.Context, o entities.Order, kind string, msg message) error {
	log := s.log.With(zap.Uint64("order_id", o.ID), zap.String("kind", kind))

	to := recipient(o)
	if to == "" {
		log.Warn("send skipped: order has no recipient")
		return fmt.Errorf("order %d has no recipient e-mail", o.ID)
	}

	resp, err := s.emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		log.Error("send failed", zap.Error(err))
		return err
	}
	log.Info("send success", zap.String("email_id", resp.Id))
	return nil
}

func recipient(o entities.Order) string {
	if email := strings.TrimSpace(o.Customer.Email); email != "" {
		return email
	}
	if o.User != nil {
		return strings.TrimSpace(o.User.Email)
	}
	return ""
}
