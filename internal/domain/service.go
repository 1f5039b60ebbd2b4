package domain

import (
	"context"
	"time"
)

// AssessmentSession ties a Selection to the questionnaire it answers.
// Sessions live only in the cache and expire with it.
type AssessmentSession struct {
	ID              string    `json:"id"`
	QuestionnaireID string    `json:"questionnaire_id"`
	Selection       Selection `json:"selection"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ContentStore serves the static content loaded at startup.
type ContentStore interface {
	// Questionnaires returns every questionnaire in display order.
	Questionnaires() []*Questionnaire

	// Questionnaire returns the questionnaire with the given id.
	Questionnaire(id string) (*Questionnaire, bool)

	// Products returns the merchandise catalog in catalog order.
	Products() []Product

	// Product returns the product with the given id.
	Product(id string) (Product, bool)

	// Pages returns the sitemap in catalog order.
	Pages() []SitePage

	// Page returns the page for a route id.
	Page(route string) (SitePage, bool)
}

// TicketRepository defines the interface for support ticket persistence
type TicketRepository interface {
	// SaveTicket persists a new ticket
	SaveTicket(ctx context.Context, ticket *SupportTicket) error

	// AddTicketEvent appends an audit event to a ticket's history. detail may be empty.
	AddTicketEvent(ctx context.Context, ticketID, event, detail string, at time.Time) error

	// GetTicketByNumber retrieves a ticket by its user-facing number
	GetTicketByNumber(ctx context.Context, number string) (*SupportTicket, error)

	// ListTickets returns tickets newest first
	ListTickets(ctx context.Context, limit, offset int) ([]*SupportTicket, error)

	// CountTickets returns the number of stored tickets
	CountTickets(ctx context.Context) (int, error)
}

// TransactionManager runs fn inside a database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdvisorInput is what the advisor sees of a scored assessment.
type AdvisorInput struct {
	QuestionnaireTitle string
	OverallScore       int
	Breakdown          []CategoryResult
	Recommendations    []Recommendation
}

// Advisor writes a short narrative on top of the static recommendations.
type Advisor interface {
	Narrate(ctx context.Context, input AdvisorInput) (string, error)
}
