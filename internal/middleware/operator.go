// Package middleware provides HTTP middleware components for the fee service.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	OperatorHeader = "X-Operator-ID"
	OperatorKey    = "operator"
)

// Operator stores the caller supplied operator id in the request locals so
// write endpoints can attribute changes. Authentication happens upstream.
func Operator(c *fiber.Ctx) error {
	if op := strings.TrimSpace(c.Get(OperatorHeader)); op != "" {
		c.Locals(OperatorKey, op)
	}
	return c.Next()
}

// OperatorFrom returns the operator id set by Operator, if any.
func OperatorFrom(c *fiber.Ctx) string {
	op, _ := c.Locals(OperatorKey).(string)
	return op
}
