// Package response implements the JSON envelope every endpoint returns:
// {success, data?, message?, error?, details?}.
package response

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/gabriel1997castro/open-source-economy/internal/apperr"
)

// Success writes a success envelope with the given status code. Empty
// message and nil data are left out of the body.
func Success(c *fiber.Ctx, status int, data interface{}, message string) error {
	payload := fiber.Map{"success": true}
	if message != "" {
		payload["message"] = message
	}
	if data != nil {
		payload["data"] = data
	}
	return c.Status(status).JSON(payload)
}

// ErrorHandler builds the app-wide Fiber error handler. Tagged errors
// map to their kind's status; anything unrecognized is logged and
// returned as a generic 500. Outside production the 500 body carries
// the internal message in details.
func ErrorHandler(env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			payload := fiber.Map{
				"success": false,
				"error":   appErr.Message,
			}
			if appErr.Details != nil {
				payload["details"] = appErr.Details
			}
			return c.Status(appErr.Kind.Status()).JSON(payload)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"error":   fiberErr.Message,
			})
		}

		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)

		payload := fiber.Map{
			"success": false,
			"error":   "Internal server error",
		}
		if env != "production" {
			payload["details"] = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(payload)
	}
}
