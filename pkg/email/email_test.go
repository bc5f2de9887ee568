package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	auth string
	data EmailData
}

func newTestService(t *testing.T, status int) (*EmailService, *capture) {
	t.Helper()
	got := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got.data))
		w.WriteHeader(status)
		w.Write([]byte(`{"id":"test"}`))
	}))
	t.Cleanup(srv.Close)

	s, err := NewEmailService("re_test", "Sungraze <noreply@sungraze.in>", WithEndpoint(srv.URL))
	require.NoError(t, err)
	return s, got
}

func TestNewEmailServiceRequiresKey(t *testing.T) {
	_, err := NewEmailService("", "from@example.com")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSendLeadNotificationEmail(t *testing.T) {
	s, got := newTestService(t, http.StatusOK)

	err := s.SendLeadNotificationEmail(context.Background(),
		"sales@sungraze.in", "Kaveri Farms", "Jane Doe", "jane@example.com", "+91 98765 43210",
		"Is <the> road paved?", "ref-42")
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test", got.auth)
	assert.Equal(t, "sales@sungraze.in", got.data.To)
	assert.Equal(t, "Sungraze <noreply@sungraze.in>", got.data.From)
	assert.Equal(t, "New enquiry for Kaveri Farms from Jane Doe", got.data.Subject)
	assert.Contains(t, got.data.Html, "ref-42")
	assert.Contains(t, got.data.Html, "Is &lt;the&gt; road paved?")
}

func TestSendEnquiryAcknowledgement(t *testing.T) {
	s, got := newTestService(t, http.StatusCreated)

	require.NoError(t, s.SendEnquiryAcknowledgement(context.Background(), "jane@example.com", "Jane", "", "ref-1"))
	assert.Equal(t, "jane@example.com", got.data.To)
	assert.Contains(t, got.data.Html, "Thank you, Jane!")
	assert.NotContains(t, got.data.Html, " about ")
}

func TestSendDailyEnquiryDigest(t *testing.T) {
	s, got := newTestService(t, http.StatusOK)

	until := time.Date(2024, 3, 2, 19, 0, 0, 0, time.UTC)
	err := s.SendDailyEnquiryDigest(context.Background(), "sales@sungraze.in", EnquiryDigestData{
		Since: until.Add(-24 * time.Hour),
		Until: until,
		Total: 3,
		Rows:  []DigestRow{{"Chola Farms", 2}, {"", 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Enquiries for 02 Mar 2024: 3", got.data.Subject)
	assert.Contains(t, got.data.Html, "Chola Farms")
	assert.Contains(t, got.data.Html, "General enquiry")
}

func TestSendReportsAPIErrors(t *testing.T) {
	s, _ := newTestService(t, http.StatusUnprocessableEntity)

	err := s.SendEnquiryAcknowledgement(context.Background(), "jane@example.com", "Jane", "", "ref-1")
	assert.ErrorContains(t, err, "resend API error: 422")
}
