package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CreateTicketRequest is the contact-form payload
// @Description Request body for submitting a support ticket
type CreateTicketRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
}

// CreateTicketResponse confirms a submission
// @Description Support ticket confirmation
type CreateTicketResponse struct {
	TicketNumber string    `json:"ticket_number"`
	Status       string    `json:"status"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

// TicketResponse is the full ticket as seen by staff
type TicketResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Category  string    `json:"category"`
	Priority  string    `json:"priority"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Limit  int `query:"limit"`  // Number of items per page
	Offset int `query:"offset"` // Number of items to skip
}

// PaginationInfo defines pagination details for responses.
type PaginationInfo struct {
	TotalItems int `json:"total_items"`
	Limit      int `json:"limit"`
	Offset     int `json:"offset"`
}

// TicketListResponse is a page of tickets, newest first
type TicketListResponse struct {
	Tickets        []TicketResponse `json:"tickets"`
	PaginationInfo PaginationInfo   `json:"pagination_info"`
}

// AuthClaims defines the custom claims of a staff JWT.
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports liveness and dependency state
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
