package enquiry

import (
	"context"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"sungraze_backend/internal/model"
)

// Mailer is the part of the email service the sink uses.
type Mailer interface {
	SendLeadNotificationEmail(ctx context.Context, salesEmail, projectName, leadName, leadEmail, leadPhone, leadMessage, reference string) error
	SendEnquiryAcknowledgement(ctx context.Context, customerEmail, customerName, projectName, reference string) error
}

// EmailSink notifies the sales inbox of each enquiry and, when Acknowledge is
// set, thanks the customer. Only the sales notification can fail a delivery.
type EmailSink struct {
	mailer      Mailer
	salesEmail  string
	acknowledge bool
	logger      *zap.Logger
	policy      *bluemonday.Policy
}

func NewEmailSink(mailer Mailer, salesEmail string, acknowledge bool, logger *zap.Logger) *EmailSink {
	if logger == nil {
		logger = zap.L()
	}
	return &EmailSink{
		mailer:      mailer,
		salesEmail:  salesEmail,
		acknowledge: acknowledge,
		logger:      logger,
		policy:      bluemonday.StrictPolicy(),
	}
}

func (s *EmailSink) Deliver(ctx context.Context, p model.EnquiryPayload) error {
	name := s.policy.Sanitize(p.Name)
	message := s.policy.Sanitize(p.Message)

	err := s.mailer.SendLeadNotificationEmail(ctx, s.salesEmail, p.ProjectName, name, p.Email, p.Phone, message, p.Reference)
	if err != nil {
		return fmt.Errorf("send lead notification: %w", err)
	}

	if s.acknowledge {
		if err := s.mailer.SendEnquiryAcknowledgement(ctx, p.Email, name, p.ProjectName, p.Reference); err != nil {
			s.logger.Warn("could not send enquiry acknowledgement",
				zap.String("reference", p.Reference),
				zap.Error(err),
			)
		}
	}
	return nil
}
