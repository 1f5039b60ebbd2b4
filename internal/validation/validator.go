package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"consult-hub/internal/domain"

	"github.com/oklog/ulid/v2"
)

const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxSubjectLength = 200
	MaxMessageLength = 5000
	MaxQueryLength   = 100
	MaxQuantity      = domain.MaxLineQuantity
	MaxPageSize      = 100
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// TicketInput is the raw contact-form payload.
type TicketInput struct {
	Name     string
	Email    string
	Subject  string
	Category string
	Priority string
	Message  string
}

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateTicket checks every contact-form field and reports all problems at once.
func (v *Validator) ValidateTicket(in TicketInput) domain.ValidationErrors {
	var errors domain.ValidationErrors

	errors = appendText(errors, "name", in.Name, MaxNameLength)

	if strings.TrimSpace(in.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if len(in.Email) > MaxEmailLength || !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		errors = append(errors, domain.NewInvalidFormatError("email", in.Email))
	}

	errors = appendText(errors, "subject", in.Subject, MaxSubjectLength)

	if in.Category == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	} else if !contains(domain.TicketCategories, in.Category) {
		errors = append(errors, domain.NewNotAllowedError("category", in.Category, domain.TicketCategories))
	}

	if in.Priority == "" {
		errors = append(errors, domain.NewMissingFieldError("priority"))
	} else if !contains(domain.TicketPriorities, in.Priority) {
		errors = append(errors, domain.NewNotAllowedError("priority", in.Priority, domain.TicketPriorities))
	}

	errors = appendText(errors, "message", in.Message, MaxMessageLength)

	return errors
}

// ValidateID validates a ULID path parameter such as a session or cart id.
func (v *Validator) ValidateID(field, id string) domain.ValidationErrors {
	if strings.TrimSpace(id) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !isValidULID(id) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, id)}
	}
	return nil
}

// ValidateSlug validates a catalog identifier (questionnaire id, product id, route).
func (v *Validator) ValidateSlug(field, s string) domain.ValidationErrors {
	if s == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if len(s) > 64 || !slugPattern.MatchString(s) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, s)}
	}
	return nil
}

// ValidateCatalogQuery validates the search query and sort key of a listing.
func (v *Validator) ValidateCatalogQuery(query, sortKey string) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if utf8.RuneCountInString(query) > MaxQueryLength {
		errors = append(errors, domain.NewOutOfRangeError("q", utf8.RuneCountInString(query), 0, MaxQueryLength))
	}
	if _, err := domain.ParseSortKey(sortKey); err != nil {
		allowed := make([]string, len(domain.SortKeys))
		for i, k := range domain.SortKeys {
			allowed[i] = string(k)
		}
		errors = append(errors, domain.NewNotAllowedError("sort", sortKey, allowed))
	}
	return errors
}

// ValidateQuantity bounds a cart quantity. Zero is allowed and removes the line.
func (v *Validator) ValidateQuantity(qty int) domain.ValidationErrors {
	if qty < 0 || qty > MaxQuantity {
		return domain.ValidationErrors{domain.NewOutOfRangeError("quantity", qty, 0, MaxQuantity)}
	}
	return nil
}

// ValidatePagination validates limit/offset query parameters.
func (v *Validator) ValidatePagination(limit, offset int) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if limit < 1 || limit > MaxPageSize {
		errors = append(errors, domain.NewOutOfRangeError("limit", limit, 1, MaxPageSize))
	}
	if offset < 0 {
		errors = append(errors, domain.NewInvalidFormatError("offset", offset))
	}
	return errors
}

func appendText(errors domain.ValidationErrors, field, value string, max int) domain.ValidationErrors {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return append(errors, domain.NewMissingFieldError(field))
	}
	if n := utf8.RuneCountInString(trimmed); n > max {
		return append(errors, domain.NewOutOfRangeError(field, n, 1, max))
	}
	return errors
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// isValidULID checks the Crockford base32 form strictly.
func isValidULID(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
