package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// QueryScope reads the (domainId, courseId) pair from the query string.
// Absent or unparseable values default to 0, the landing/global scope.
func QueryScope(c *fiber.Ctx) (domainID, courseID uint) {
	d := c.QueryInt("domainId", 0)
	if d < 0 {
		d = 0
	}
	cc := c.QueryInt("courseId", 0)
	if cc < 0 {
		cc = 0
	}
	return uint(d), uint(cc)
}

// FormUint reads a non-negative integer form field, falling back on absence
// or parse failure
func FormUint(c *fiber.Ctx, key string, fallback uint) uint {
	v := c.FormValue(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return uint(n)
}

// FormInt reads an integer form field with a fallback
func FormInt(c *fiber.Ctx, key string, fallback int) int {
	v := c.FormValue(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// FormBool reads a boolean form field ("true"/"false") with a fallback
func FormBool(c *fiber.Ctx, key string, fallback bool) bool {
	switch c.FormValue(key) {
	case "true":
		return true
	case "false":
		return false
	}
	return fallback
}
