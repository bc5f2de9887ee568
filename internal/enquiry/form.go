// Package enquiry implements the lead-capture form workflow and the sinks
// that deliver accepted enquiries.
package enquiry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"sungraze_backend/internal/model"
)

// State is the position of a form in its workflow.
type State string

const (
	StateEditing           State = "editing"
	StateSubmitting        State = "submitting"
	StateSubmitted         State = "submitted"
	StateEditingWithErrors State = "editing_with_errors"
)

const (
	// SubmitFailedMessage is shown when the lead sink rejects a valid enquiry.
	SubmitFailedMessage = "We could not submit your enquiry. Please try again."
	// ConfirmationMessage is shown once an enquiry has been accepted.
	ConfirmationMessage = "Your enquiry has been submitted successfully. Our team will contact you within 24 hours."
)

var (
	ErrSubmissionInProgress = errors.New("enquiry submission already in progress")
	ErrAlreadySubmitted     = errors.New("enquiry already submitted")
	ErrSubmitFailed         = errors.New("enquiry could not be delivered")
)

// PrefillMessage is the default message for a form opened from a project page.
func PrefillMessage(projectName string) string {
	if projectName == "" {
		return ""
	}
	return fmt.Sprintf("I'm interested in %s. Please share more details.", projectName)
}

// Form is one enquiry form instance. All methods are safe for concurrent
// use; at most one submission is in flight at a time.
type Form struct {
	mu sync.Mutex

	id          string
	sink        LeadSink
	projectName string
	now         func() time.Time

	state     State
	values    model.EnquiryInput
	errors    ValidationErrors
	reference string
	touched   time.Time
}

// Snapshot is a copy of the form's state for rendering.
type Snapshot struct {
	ID          string             `json:"id"`
	State       State              `json:"state"`
	ProjectName string             `json:"project_name,omitempty"`
	Values      model.EnquiryInput `json:"values"`
	Errors      ValidationErrors   `json:"errors,omitempty"`
	Reference   string             `json:"reference,omitempty"`
}

// NewForm opens a form in the Editing state. projectName may be empty.
func NewForm(sink LeadSink, projectName string) *Form {
	f := &Form{
		id:          uuid.NewString(),
		sink:        sink,
		projectName: projectName,
		now:         time.Now,
	}
	f.clear()
	return f
}

func (f *Form) ID() string {
	return f.id
}

func (f *Form) ProjectName() string {
	return f.projectName
}

// clear puts the form back to a fresh Editing state. Callers hold mu.
func (f *Form) clear() {
	f.state = StateEditing
	f.values = model.EnquiryInput{Message: PrefillMessage(f.projectName)}
	f.errors = nil
	f.reference = ""
	f.touched = f.now()
}

// Submit validates in and, if it passes, hands the payload to the lead sink.
//
// A validation failure returns ValidationErrors and leaves the form in
// EditingWithErrors with the entered values intact. A sink failure does the
// same with a form-level message and an error wrapping ErrSubmitFailed. The
// sink runs without the lock held and is not cancelled with ctx.
func (f *Form) Submit(ctx context.Context, in model.EnquiryInput) (model.EnquiryPayload, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return model.EnquiryPayload{}, ErrSubmissionInProgress
	case StateSubmitted:
		f.mu.Unlock()
		return model.EnquiryPayload{}, ErrAlreadySubmitted
	}

	f.values = in
	f.touched = f.now()
	clean, verrs := Validate(in)
	if verrs != nil {
		f.state = StateEditingWithErrors
		f.errors = verrs
		f.mu.Unlock()
		return model.EnquiryPayload{}, verrs.clone()
	}

	f.state = StateSubmitting
	f.errors = nil
	payload := model.EnquiryPayload{
		Reference:   uuid.NewString(),
		Name:        clean.Name,
		Email:       clean.Email,
		Phone:       clean.Phone,
		Message:     clean.Message,
		ProjectName: f.projectName,
		SubmittedAt: f.now().UTC(),
	}
	sink := f.sink
	f.mu.Unlock()

	err := sink.Deliver(context.WithoutCancel(ctx), payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = f.now()
	if err != nil {
		f.state = StateEditingWithErrors
		f.errors = ValidationErrors{FieldForm: SubmitFailedMessage}
		return model.EnquiryPayload{}, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	f.clear()
	f.state = StateSubmitted
	f.reference = payload.Reference
	return payload, nil
}

// Reset starts a new enquiry on the same form ("send another"). It is refused
// while a submission is in flight.
func (f *Form) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return ErrSubmissionInProgress
	}
	f.clear()
	return nil
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		ID:          f.id,
		State:       f.state,
		ProjectName: f.projectName,
		Values:      f.values,
		Errors:      f.errors.clone(),
		Reference:   f.reference,
	}
}

// LastTouched reports when the form was opened or last changed.
func (f *Form) LastTouched() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.touched
}
