package middleware

import (
	"strconv"

	"consult-hub/internal/domain"
	"consult-hub/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPageSize = 20

	ValidatedLimitKey  = "validated_limit"
	ValidatedOffsetKey = "validated_offset"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam rejects requests whose ULID path parameter is malformed.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateID(param, c.Params(param)); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}

// ValidateSlugParam rejects malformed catalog ids in the path.
func (vm *ValidationMiddleware) ValidateSlugParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateSlug(param, c.Params(param)); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}

// ValidateCatalogQuery checks the q and sort query parameters.
func (vm *ValidationMiddleware) ValidateCatalogQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateCatalogQuery(c.Query("q"), c.Query("sort")); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}

// ValidatePagination parses limit/offset and stores them in locals.
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := parseIntQuery(c, "limit", DefaultPageSize)
		if err != nil {
			return err
		}
		offset, err := parseIntQuery(c, "offset", 0)
		if err != nil {
			return err
		}
		if errs := vm.validator.ValidatePagination(limit, offset); len(errs) > 0 {
			return errs
		}

		c.Locals(ValidatedLimitKey, limit)
		c.Locals(ValidatedOffsetKey, offset)
		return c.Next()
	}
}

func parseIntQuery(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(name, raw)}
	}
	return n, nil
}
