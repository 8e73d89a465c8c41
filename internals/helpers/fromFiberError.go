package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError renders an error (usually a *fiber.Error bubbled out of
// a handler or middleware) through the standard JSON envelope. Non-fiber
// errors fall back to 500 with the original message.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
