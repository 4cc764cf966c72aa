package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gabriel1997castro/open-source-economy/internal/apperr"
	"github.com/gabriel1997castro/open-source-economy/internal/service"
	"github.com/gabriel1997castro/open-source-economy/pkg/response"
	"github.com/gabriel1997castro/open-source-economy/pkg/validation"
)

type NewsletterController struct {
	newsletters service.NewsletterService
}

func NewNewsletterController(newsletters service.NewsletterService) *NewsletterController {
	return &NewsletterController{newsletters: newsletters}
}

// Subscribe handles POST /api/newsletter.
func (ctl *NewsletterController) Subscribe(c *fiber.Ctx) error {
	var input validation.NewsletterForm
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid input format", nil)
	}

	if fieldErrs := input.Validate(); fieldErrs != nil {
		return apperr.Validation("Validation failed", fieldErrs)
	}

	sub, err := ctl.newsletters.Subscribe(c.Context(), input.Email)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusCreated,
		fiber.Map{"id": sub.ID},
		"Thank you for subscribing to our newsletter!")
}

// List handles GET /api/newsletter. Only active subscriptions are
// returned.
func (ctl *NewsletterController) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", DefaultListLimit)
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	subs, pagination, err := ctl.newsletters.List(c.Context(), limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK, fiber.Map{
		"subscriptions": subs,
		"pagination":    pagination,
	}, "")
}

// DeleteByID handles DELETE /api/newsletter/:id.
func (ctl *NewsletterController) DeleteByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return apperr.Validation("Invalid subscription ID", nil)
	}

	if err := ctl.newsletters.DeleteByID(c.Context(), uint(id)); err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK,
		fiber.Map{"id": id, "deleted": true},
		"Newsletter subscription deleted successfully")
}

// Unsubscribe handles POST /api/newsletter/unsubscribe.
func (ctl *NewsletterController) Unsubscribe(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid input format", nil)
	}
	if input.Email == "" {
		return apperr.Validation("Email is required", nil)
	}

	if err := ctl.newsletters.Unsubscribe(c.Context(), input.Email); err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK,
		fiber.Map{"email": input.Email, "unsubscribed": true},
		"Successfully unsubscribed from newsletter")
}

// CleanupTest handles POST /api/newsletter/cleanup/test.
func (ctl *NewsletterController) CleanupTest(c *fiber.Ctx) error {
	count, err := ctl.newsletters.DeleteTestRows(c.Context())
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK,
		fiber.Map{"deletedCount": count},
		fmt.Sprintf("Deleted %d test newsletter subscriptions", count))
}

// CleanupEmails handles POST /api/newsletter/cleanup/emails.
func (ctl *NewsletterController) CleanupEmails(c *fiber.Ctx) error {
	var input struct {
		Emails []string `json:"emails"`
	}
	if err := c.BodyParser(&input); err != nil {
		return apperr.Validation("Invalid input format", nil)
	}
	if input.Emails == nil {
		return apperr.Validation("Emails array is required", nil)
	}

	count, err := ctl.newsletters.DeleteByEmails(c.Context(), input.Emails)
	if err != nil {
		return err
	}

	return response.Success(c, fiber.StatusOK,
		fiber.Map{"deletedCount": count},
		fmt.Sprintf("Deleted %d newsletter subscriptions", count))
}
