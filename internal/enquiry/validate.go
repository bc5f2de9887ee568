package enquiry

import (
	"sort"
	"strings"

	"sungraze_backend/internal/model"
	"sungraze_backend/pkg/utils/validation"
)

// Field names used as keys in ValidationErrors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"

	// FieldForm carries errors that belong to the whole form.
	FieldForm = "form"
)

const (
	nameMin, nameMax       = 2, 100
	emailMax               = 255
	phoneMin, phoneMax     = 10, 15
	messageMin, messageMax = 10, 1000
)

// ValidationErrors maps a field name to the message shown under it.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + v[k]
	}
	return "invalid enquiry: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) clone() ValidationErrors {
	if v == nil {
		return nil
	}
	out := make(ValidationErrors, len(v))
	for k, msg := range v {
		out[k] = msg
	}
	return out
}

// Validate trims every field and checks it. On success the trimmed input is
// returned with nil errors. Each field reports only its first failing rule.
func Validate(in model.EnquiryInput) (model.EnquiryInput, ValidationErrors) {
	out := model.EnquiryInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}

	errs := ValidationErrors{}
	if msg := checkName(out.Name); msg != "" {
		errs[FieldName] = msg
	}
	if msg := checkEmail(out.Email); msg != "" {
		errs[FieldEmail] = msg
	}
	if msg := checkPhone(out.Phone); msg != "" {
		errs[FieldPhone] = msg
	}
	if msg := checkMessage(out.Message); msg != "" {
		errs[FieldMessage] = msg
	}

	if len(errs) > 0 {
		return out, errs
	}
	return out, nil
}

func checkName(name string) string {
	switch n := validation.Length(name); {
	case n < nameMin:
		return "Name must be at least 2 characters"
	case n > nameMax:
		return "Name is too long"
	}
	return ""
}

func checkEmail(email string) string {
	if !validation.IsValidEmail(email) {
		return "Please enter a valid email address"
	}
	if validation.Length(email) > emailMax {
		return "Email is too long"
	}
	return ""
}

func checkPhone(phone string) string {
	switch n := validation.Length(phone); {
	case n < phoneMin:
		return "Please enter a valid phone number"
	case n > phoneMax:
		return "Phone number is too long"
	}
	if !validation.IsValidPhone(phone) {
		return "Please enter a valid phone number"
	}
	return ""
}

func checkMessage(message string) string {
	switch n := validation.Length(message); {
	case n < messageMin:
		return "Message must be at least 10 characters"
	case n > messageMax:
		return "Message is too long"
	}
	return ""
}
