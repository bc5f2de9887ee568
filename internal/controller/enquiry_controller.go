package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sungraze_backend/internal/catalog"
	"sungraze_backend/internal/enquiry"
	"sungraze_backend/internal/model"
)

type OpenFormInput struct {
	ProjectSlug string `json:"project_slug"`
}

type EnquiryInput struct {
	ProjectSlug string `json:"project_slug"`
	model.EnquiryInput
}

type EnquiryController struct {
	registry *enquiry.Registry
	sink     enquiry.LeadSink
	store    *catalog.Store
	logger   *zap.Logger
}

func NewEnquiryController(registry *enquiry.Registry, sink enquiry.LeadSink, store *catalog.Store, logger *zap.Logger) *EnquiryController {
	return &EnquiryController{registry: registry, sink: sink, store: store, logger: logger}
}

// projectName resolves an optional project slug. ok is false only when a
// slug was given and is unknown.
func (ec *EnquiryController) projectName(slug string) (string, bool) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", true
	}
	p, ok := ec.store.GetBySlug(slug)
	if !ok {
		return "", false
	}
	return p.Name, true
}

func projectNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Project not found",
	})
}

// OpenForm starts a new form, pre-filled when opened from a project page.
func (ec *EnquiryController) OpenForm(c *fiber.Ctx) error {
	input := new(OpenFormInput)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid input",
			})
		}
	}

	name, ok := ec.projectName(input.ProjectSlug)
	if !ok {
		return projectNotFound(c)
	}

	form := ec.registry.Open(name)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"form": form.Snapshot(),
	})
}

func formNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Form not found",
	})
}

func (ec *EnquiryController) GetForm(c *fiber.Ctx) error {
	form, ok := ec.registry.Get(c.Params("id"))
	if !ok {
		return formNotFound(c)
	}
	return c.JSON(fiber.Map{
		"form": form.Snapshot(),
	})
}

func (ec *EnquiryController) SubmitForm(c *fiber.Ctx) error {
	form, ok := ec.registry.Get(c.Params("id"))
	if !ok {
		return formNotFound(c)
	}

	input := new(model.EnquiryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	return ec.submit(c, form, *input)
}

// ResetForm is "send another enquiry".
func (ec *EnquiryController) ResetForm(c *fiber.Ctx) error {
	form, ok := ec.registry.Get(c.Params("id"))
	if !ok {
		return formNotFound(c)
	}
	if err := form.Reset(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Your enquiry is still being submitted",
		})
	}
	return c.JSON(fiber.Map{
		"form": form.Snapshot(),
	})
}

// CreateEnquiry validates and submits in one request, for clients that keep
// the form state themselves.
func (ec *EnquiryController) CreateEnquiry(c *fiber.Ctx) error {
	input := new(EnquiryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	name, ok := ec.projectName(input.ProjectSlug)
	if !ok {
		return projectNotFound(c)
	}
	return ec.submit(c, enquiry.NewForm(ec.sink, name), input.EnquiryInput)
}

func (ec *EnquiryController) submit(c *fiber.Ctx, form *enquiry.Form, input model.EnquiryInput) error {
	payload, err := form.Submit(c.UserContext(), input)

	var verrs enquiry.ValidationErrors
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":   enquiry.ConfirmationMessage,
			"reference": payload.Reference,
			"form":      form.Snapshot(),
		})
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"errors": verrs,
			"form":   form.Snapshot(),
		})
	case errors.Is(err, enquiry.ErrSubmissionInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Your enquiry is already being submitted",
		})
	case errors.Is(err, enquiry.ErrAlreadySubmitted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "This enquiry was already submitted. Reset the form to send another.",
		})
	case errors.Is(err, enquiry.ErrSubmitFailed):
		ec.logger.Error("enquiry delivery failed", zap.String("form", form.ID()), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  enquiry.SubmitFailedMessage,
			"errors": enquiry.ValidationErrors{enquiry.FieldForm: enquiry.SubmitFailedMessage},
			"form":   form.Snapshot(),
		})
	default:
		return err
	}
}
