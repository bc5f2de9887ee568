package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sungraze_backend/internal/enquiry"
	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/email"
)

type fakeDigestMailer struct {
	to   string
	sent []email.EnquiryDigestData
	err  error
}

func (m *fakeDigestMailer) SendDailyEnquiryDigest(_ context.Context, to string, data email.EnquiryDigestData) error {
	m.to = to
	m.sent = append(m.sent, data)
	return m.err
}

func TestSendEnquiryDigest(t *testing.T) {
	stats := enquiry.NewStats()
	stats.Record("Kaveri Farms")
	stats.Record("")
	stats.Record("Kaveri Farms")
	mailer := &fakeDigestMailer{}

	require.NoError(t, SendEnquiryDigest(context.Background(), stats, mailer, "sales@example.com", zap.NewNop()))
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "sales@example.com", mailer.to)
	assert.Equal(t, int64(3), mailer.sent[0].Total)
	assert.Equal(t, []email.DigestRow{{ProjectName: "Kaveri Farms", Count: 2}, {ProjectName: "", Count: 1}}, mailer.sent[0].Rows)

	// counts were drained, so the next run has nothing to send
	require.NoError(t, SendEnquiryDigest(context.Background(), stats, mailer, "sales@example.com", zap.NewNop()))
	assert.Len(t, mailer.sent, 1)
}

func TestSendEnquiryDigestError(t *testing.T) {
	stats := enquiry.NewStats()
	stats.Record("Chola Farms")
	mailer := &fakeDigestMailer{err: errors.New("resend down")}

	err := SendEnquiryDigest(context.Background(), stats, mailer, "sales@example.com", zap.NewNop())
	assert.ErrorContains(t, err, "resend down")
}

func TestSweepForms(t *testing.T) {
	reg := enquiry.NewRegistry(enquiry.SinkFunc(func(context.Context, model.EnquiryPayload) error { return nil }))
	reg.Open("")
	reg.Open("Kaveri Farms")

	assert.Zero(t, SweepForms(reg, time.Hour, zap.NewNop()))
	assert.Equal(t, 2, SweepForms(reg, -time.Minute, zap.NewNop()))
	assert.Zero(t, reg.Len())
}

func TestSchedulerRejectsBadSchedule(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	err := s.AddFormSweep("every now and then", enquiry.NewRegistry(nil), time.Hour)
	assert.ErrorContains(t, err, "schedule form sweep")

	require.NoError(t, s.AddFormSweep("@every 10m", enquiry.NewRegistry(nil), time.Hour))
	require.NoError(t, s.AddEnquiryDigest("0 19 * * *", enquiry.NewStats(), &fakeDigestMailer{}, "sales@example.com"))
	s.Start()
	s.Stop()
}
