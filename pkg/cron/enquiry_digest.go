// pkg/cron/enquiry_digest.go
package cron

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sungraze_backend/internal/enquiry"
	"sungraze_backend/pkg/email"
)

// DigestMailer is satisfied by *email.EmailService.
type DigestMailer interface {
	SendDailyEnquiryDigest(ctx context.Context, to string, data email.EnquiryDigestData) error
}

// AddEnquiryDigest mails the sales inbox a summary of the enquiries counted
// since the previous run.
func (s *Scheduler) AddEnquiryDigest(schedule string, stats *enquiry.Stats, mailer DigestMailer, to string) error {
	_, err := s.c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := SendEnquiryDigest(ctx, stats, mailer, to, s.logger); err != nil {
			s.logger.Error("enquiry digest failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule enquiry digest: %w", err)
	}
	return nil
}

// SendEnquiryDigest drains stats and mails them. Quiet days send nothing. A
// failed send loses that period's counts; they are informational only.
func SendEnquiryDigest(ctx context.Context, stats *enquiry.Stats, mailer DigestMailer, to string, logger *zap.Logger) error {
	d := stats.Drain()
	if d.Total == 0 {
		logger.Info("no enquiries since last digest, skipping")
		return nil
	}

	data := email.EnquiryDigestData{
		Since: d.Since,
		Until: d.Until,
		Total: d.Total,
		Rows:  make([]email.DigestRow, 0, len(d.ByProject)),
	}
	for _, pc := range d.ByProject {
		data.Rows = append(data.Rows, email.DigestRow{ProjectName: pc.Project, Count: pc.Count})
	}

	if err := mailer.SendDailyEnquiryDigest(ctx, to, data); err != nil {
		return err
	}
	logger.Info("enquiry digest sent", zap.String("to", to), zap.Int64("total", d.Total))
	return nil
}
