package domain

import (
	"fmt"
	"time"
)

// TicketCategory classifies a support request.
type TicketCategory string

const (
	TicketGeneral     TicketCategory = "general"
	TicketTechnical   TicketCategory = "technical"
	TicketBilling     TicketCategory = "billing"
	TicketPartnership TicketCategory = "partnership"
)

// TicketPriority is the urgency chosen by the submitter.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// TicketStatus tracks a ticket after submission.
type TicketStatus string

const (
	TicketOpen TicketStatus = "open"
)

var (
	TicketCategories = []string{string(TicketGeneral), string(TicketTechnical), string(TicketBilling), string(TicketPartnership)}
	TicketPriorities = []string{string(TicketPriorityLow), string(TicketPriorityMedium), string(TicketPriorityHigh), string(TicketPriorityUrgent)}
)

// SupportTicket is a contact-form submission.
type SupportTicket struct {
	ID        string
	Number    string // SUP-xxxxxx, shown to the user
	Name      string
	Email     string
	Subject   string
	Category  TicketCategory
	Priority  TicketPriority
	Message   string
	Status    TicketStatus
	CreatedAt time.Time
}

// NewTicketNumber derives the user-facing number from the last six digits
// of the submission time in Unix milliseconds.
func NewTicketNumber(now time.Time) string {
	return fmt.Sprintf("SUP-%06d", now.UnixMilli()%1_000_000)
}

// NewSupportTicket creates an open ticket stamped at now.
func NewSupportTicket(id, name, email, subject string, category TicketCategory, priority TicketPriority, message string, now time.Time) *SupportTicket {
	return &SupportTicket{
		ID:        id,
		Number:    NewTicketNumber(now),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Category:  category,
		Priority:  priority,
		Message:   message,
		Status:    TicketOpen,
		CreatedAt: now,
	}
}
