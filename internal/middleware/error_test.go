package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"consult-hub/internal/config"
	"consult-hub/internal/domain"
	"consult-hub/internal/logger"
	"consult-hub/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "test"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	app.Get("/boom", func(c *fiber.Ctx) error { return err })
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{"session not found", domain.NewSessionNotFoundError("s1"), fiber.StatusNotFound, "SESSION_NOT_FOUND"},
		{"product not found", domain.NewProductNotFoundError("p1"), fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"unknown option", domain.NewUnknownOptionError("i1", "o1"), fiber.StatusBadRequest, "UNKNOWN_OPTION"},
		{"invalid sort key", domain.NewInvalidSortKeyError("x"), fiber.StatusBadRequest, "INVALID_SORT_KEY"},
		{"unauthorized", domain.NewUnauthorizedError("no"), fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"advisor down", domain.NewAdvisorUnavailableError(errors.New("timeout")), fiber.StatusServiceUnavailable, "ADVISOR_UNAVAILABLE"},
		{"client gone", domain.NewRequestCanceledError(context.Canceled), middleware.StatusClientClosedRequest, "REQUEST_CANCELED"},
		{"internal", domain.NewInternalError("db", errors.New("ORA-12541")), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), fiber.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"plain error", errors.New("oops"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newErrorApp(tt.err).Test(httptest.NewRequest("GET", "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.StatusCode)

			var body middleware.ErrorResponse
			raw, _ := io.ReadAll(resp.Body)
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.expectedBody, body.Code)
			assert.Equal(t, tt.expectedCode, body.Status)
		})
	}
}

func TestErrorHandler_DomainContextDetails(t *testing.T) {
	err := domain.NewUnknownOptionError("i9", "o2")
	resp, reqErr := newErrorApp(err).Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, reqErr)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "i9", body.Details["item_id"])
	assert.Equal(t, "o2", body.Details["option_id"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	err := domain.ValidationErrors{domain.NewMissingFieldError("email"), domain.NewMissingFieldError("name")}
	resp, reqErr := newErrorApp(err).Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, reqErr)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeValidation), body.Code)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "email", body.Errors[0].Field)
}

func TestRequestLogger_RequestID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestLogger())
	app.Get("/id", func(c *fiber.Ctx) error { return c.SendString(middleware.RequestID(c)) })

	resp, err := app.Test(httptest.NewRequest("GET", "/id", nil))
	require.NoError(t, err)
	generated := resp.Header.Get(middleware.RequestIDHeader)
	assert.Len(t, generated, 36)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, generated, string(body))

	req := httptest.NewRequest("GET", "/id", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(middleware.RequestIDHeader))
}
