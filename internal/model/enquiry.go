package model

import "time"

// EnquiryInput holds the raw values typed into the contact form.
type EnquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// EnquiryPayload is a validated enquiry handed to a lead sink. It is never
// stored by this service.
type EnquiryPayload struct {
	Reference   string    `json:"reference"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	ProjectName string    `json:"project_name,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
