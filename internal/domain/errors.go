package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Questionnaire errors
	CodeQuestionnaireNotFound ErrorCode = "QUESTIONNAIRE_NOT_FOUND"
	CodeSessionNotFound       ErrorCode = "SESSION_NOT_FOUND"
	CodeUnknownCategory       ErrorCode = "UNKNOWN_CATEGORY"
	CodeUnknownItem           ErrorCode = "UNKNOWN_ITEM"
	CodeUnknownOption         ErrorCode = "UNKNOWN_OPTION"
	CodeActionMismatch        ErrorCode = "ACTION_MISMATCH"
	CodeInvalidCatalog        ErrorCode = "INVALID_CATALOG"

	// Catalog and cart errors
	CodeInvalidSortKey  ErrorCode = "INVALID_SORT_KEY"
	CodeProductNotFound ErrorCode = "PRODUCT_NOT_FOUND"
	CodePageNotFound    ErrorCode = "PAGE_NOT_FOUND"
	CodeCartNotFound    ErrorCode = "CART_NOT_FOUND"

	// External collaborators
	CodeAdvisorUnavailable ErrorCode = "ADVISOR_UNAVAILABLE"
	CodeCacheUnavailable   ErrorCode = "CACHE_UNAVAILABLE"

	// The client went away before the request finished
	CodeRequestCanceled ErrorCode = "REQUEST_CANCELED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail entry that the error handler echoes back to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is a DomainError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	de, ok := AsDomainError(err)
	return ok && de.Code == code
}

// AsDomainError unwraps err into a *DomainError when possible.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewQuestionnaireNotFoundError(id string) *DomainError {
	return NewError(CodeQuestionnaireNotFound, fmt.Sprintf("Questionnaire not found with ID: %s", id), nil)
}

func NewSessionNotFoundError(id string) *DomainError {
	return NewError(CodeSessionNotFound, fmt.Sprintf("Session not found with ID: %s", id), nil)
}

func NewUnknownCategoryError(id string) *DomainError {
	return NewError(CodeUnknownCategory, fmt.Sprintf("Unknown category: %s", id), nil).
		WithContext("category_id", id)
}

func NewUnknownItemError(id string) *DomainError {
	return NewError(CodeUnknownItem, fmt.Sprintf("Unknown item: %s", id), nil).
		WithContext("item_id", id)
}

func NewUnknownOptionError(itemID, optionID string) *DomainError {
	return NewError(CodeUnknownOption, fmt.Sprintf("Unknown option %s for item %s", optionID, itemID), nil).
		WithContext("item_id", itemID).
		WithContext("option_id", optionID)
}

func NewActionMismatchError(itemID string, kind ItemKind) *DomainError {
	return NewError(CodeActionMismatch, fmt.Sprintf("Action does not apply to %s item %s", kind, itemID), nil)
}

func NewInvalidCatalogError(message string) *DomainError {
	return NewError(CodeInvalidCatalog, message, nil)
}

func NewInvalidSortKeyError(key string) *DomainError {
	return NewError(CodeInvalidSortKey, fmt.Sprintf("Invalid sort key: %s", key), nil)
}

func NewProductNotFoundError(id string) *DomainError {
	return NewError(CodeProductNotFound, fmt.Sprintf("Product not found with ID: %s", id), nil)
}

func NewPageNotFoundError(route string) *DomainError {
	return NewError(CodePageNotFound, fmt.Sprintf("Page not found for route: %s", route), nil)
}

func NewCartNotFoundError(id string) *DomainError {
	return NewError(CodeCartNotFound, fmt.Sprintf("Cart not found with ID: %s", id), nil)
}

func NewAdvisorUnavailableError(err error) *DomainError {
	return NewError(CodeAdvisorUnavailable, "Advisor service is unavailable", err)
}

func NewCacheUnavailableError(err error) *DomainError {
	return NewError(CodeCacheUnavailable, "Session storage is unavailable", err)
}

func NewLineQuantityError(productID string, quantity, max int) *DomainError {
	return NewError(CodeOutOfRange, fmt.Sprintf("Quantity %d for product %s exceeds the limit of %d", quantity, productID, max), nil).
		WithContext("product_id", productID).
		WithContext("max", max)
}

func NewRequestCanceledError(err error) *DomainError {
	return NewError(CodeRequestCanceled, "Request was canceled", err)
}

// ValidationError describes a single invalid request field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field problem of one request.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format", field),
		Value:   value,
	}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d", field, min, max),
		Value:   value,
	}
}

func NewNotAllowedError(field string, value interface{}, allowed []string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")),
		Value:   value,
	}
}
