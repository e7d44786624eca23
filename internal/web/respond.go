// Package web defines the JSON envelope every endpoint responds with.
package web

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform response body: exactly one of Data and Error is set.
type Envelope struct {
	Data  any     `json:"data"`
	Error *string `json:"error"`
}

// JSON writes a success envelope with the given status.
func JSON(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Envelope{Data: data})
}

// ErrorHandler renders every error as a `{data: null, error: msg}` envelope.
// Anything that is not an explicit fiber.Error is treated as an internal
// failure and surfaces no detail to the caller.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
		if code >= http.StatusInternalServerError {
			message = "Internal server error"
		}
	}

	return c.Status(code).JSON(Envelope{Error: &message})
}
