package models

import (
	"database/sql"
	"time"
)

// SupportTicket is a row of support_tickets.
type SupportTicket struct {
	ID           string    `db:"ID"`            // ULID
	TicketNumber string    `db:"TICKET_NUMBER"` // SUP-xxxxxx, wraps every 1e6 ms so not unique
	Name         string    `db:"NAME"`
	Email        string    `db:"EMAIL"`
	Subject      string    `db:"SUBJECT"`
	Category     string    `db:"CATEGORY"`
	Priority     string    `db:"PRIORITY"`
	Message      string    `db:"MESSAGE"` // CLOB
	Status       string    `db:"STATUS"`
	CreatedAt    time.Time `db:"CREATED_AT"`
	UpdatedAt    time.Time `db:"UPDATED_AT"`
}

// TicketEvent is a row of support_ticket_events, the audit trail of a ticket.
type TicketEvent struct {
	ID        string         `db:"ID"` // ULID
	TicketID  string         `db:"TICKET_ID"`
	Event     string         `db:"EVENT"`
	Detail    sql.NullString `db:"DETAIL"`
	CreatedAt time.Time      `db:"CREATED_AT"`
}
