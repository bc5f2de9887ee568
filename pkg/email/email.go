// pkg/email/email.go
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

var ErrMissingAPIKey = errors.New("resend API key is required")

type EmailService struct {
	apiKey    string
	from      string
	endpoint  string
	client    *http.Client
	templates *template.Template
	logger    *zap.Logger
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type LeadNotificationData struct {
	ProjectName string
	LeadName    string
	LeadEmail   string
	LeadPhone   string
	LeadMessage string
	Reference   string
}

type EnquiryAckData struct {
	Name        string
	ProjectName string
	Reference   string
}

type DigestRow struct {
	ProjectName string
	Count       int64
}

type EnquiryDigestData struct {
	Since time.Time
	Until time.Time
	Total int64
	Rows  []DigestRow
}

type Option func(*EmailService)

// WithEndpoint points the service at a different Resend-compatible URL.
func WithEndpoint(url string) Option {
	return func(s *EmailService) { s.endpoint = url }
}

func WithHTTPClient(c *http.Client) Option {
	return func(s *EmailService) { s.client = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *EmailService) { s.logger = l }
}

func NewEmailService(apiKey, from string, opts ...Option) (*EmailService, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %w", err)
	}

	s := &EmailService{
		apiKey:    apiKey,
		from:      from,
		endpoint:  resendEndpoint,
		client:    &http.Client{Timeout: 15 * time.Second},
		templates: templates,
		logger:    zap.L(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *EmailService) sendTemplateEmail(ctx context.Context, to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	jsonData, err := json.Marshal(EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling email data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %w", err)
	}

	s.logger.Debug("resend API response",
		zap.String("template", templateName),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %d %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (s *EmailService) SendLeadNotificationEmail(
	ctx context.Context,
	salesEmail, projectName, leadName, leadEmail, leadPhone, leadMessage, reference string,
) error {
	data := LeadNotificationData{
		ProjectName: projectName,
		LeadName:    leadName,
		LeadEmail:   leadEmail,
		LeadPhone:   leadPhone,
		LeadMessage: leadMessage,
		Reference:   reference,
	}
	subject := "New enquiry from " + leadName
	if projectName != "" {
		subject = fmt.Sprintf("New enquiry for %s from %s", projectName, leadName)
	}
	return s.sendTemplateEmail(ctx, salesEmail, subject, "lead_notification.html", data)
}

func (s *EmailService) SendEnquiryAcknowledgement(ctx context.Context, customerEmail, customerName, projectName, reference string) error {
	data := EnquiryAckData{
		Name:        customerName,
		ProjectName: projectName,
		Reference:   reference,
	}
	return s.sendTemplateEmail(ctx, customerEmail, "We received your enquiry", "enquiry_ack.html", data)
}

func (s *EmailService) SendDailyEnquiryDigest(ctx context.Context, to string, data EnquiryDigestData) error {
	subject := fmt.Sprintf("Enquiries for %s: %d", data.Until.Format("02 Jan 2006"), data.Total)
	return s.sendTemplateEmail(ctx, to, subject, "enquiry_digest.html", data)
}
