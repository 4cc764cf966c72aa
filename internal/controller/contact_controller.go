package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gabriel1997castro/open-source-economy/internal/apperr"
	"github.com/gabriel1997castro/open-source-economy/internal/model"
	"github.com/gabriel1997castro/open-source-economy/internal/service"
	"github.com/gabriel1997castro/open-source-economy/pkg/response"
	"github.com/gabriel1997castro/open-source-economy/pkg/validation"
)

const DefaultListLimit = 50

type ContactController struct {
	contacts service.ContactService
}

func NewContactController(contacts service.ContactService) *ContactController {
	return &ContactController{contacts: contacts}
}

// Create handles POST /api/contact.
func (ctl *ContactController) Create(c *fiber.Ctx) error {
	var input validation.ContactForm
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid input format", nil)
	}

	if fieldErrs := input.Validate(); fieldErrs != nil {
		return apperr.Validation("Validation failed", fieldErrs)
	}

	sub := &model.ContactSubmission{
		Name:     input.Name,
		Email:    input.Email,
		Linkedin: input.Linkedin,
		Message:  input.Message,
	}
	if err := ctl.contacts.Create(c.Context(), sub); err != nil {
		return err
	}

	return response.Success(c, fiber.StatusCreated,
		fiber.Map{"id": sub.ID},
		"Thank you for your message! We'll get back to you soon!")
}

// List handles GET /api/contact.
func (ctl *ContactController) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", DefaultListLimit)
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	subs, pagination, err := ctl.contacts.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"submissions": subs,
		"pagination":  pagination,
	}, "")
}

// GetByID handles GET /api/contact/:id.
func (ctl *ContactController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.Validation("Invalid submission ID", nil)
	}

	sub, err := ctl.contacts.GetByID(c.Context(), uint(id))
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{"submission": sub}, "")
}

// DeleteByID handles DELETE /api/contact/:id.
func (ctl *ContactController) DeleteByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.Validation("Invalid submission ID", nil)
	}

	if err := ctl.contacts.DeleteByID(c.Context(), uint(id)); err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK,
		fiber.Map{"id": id, "deleted": true},
		"Contact submission deleted successfully")
}

// CleanupTest handles POST /api/contact/cleanup/test.
func (ctl *ContactController) CleanupTest(c *fiber.Ctx) error {
	count, err := ctl.contacts.DeleteTestRows(c.Context())
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK,
		fiber.Map{"deletedCount": count},
		fmt.Sprintf("Deleted %d test contact submissions", count))
}

// CleanupEmails handles POST /api/contact/cleanup/emails.
func (ctl *ContactController) CleanupEmails(c *fiber.Ctx) error {
	var input struct {
		Emails []string `json:"emails"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid input format", nil)
	}
	if len(input.Emails) == 0 {
		return apperr.Validation("Emails array is required", nil)
	}

	count, err := ctl.contacts.DeleteByEmails(c.Context(), input.Emails)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK,
		fiber.Map{"deletedCount": count},
		fmt.Sprintf("Deleted %d contact submissions", count))
}
