package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"consult-hub/internal/domain"
	"consult-hub/internal/repository/models"
	"consult-hub/internal/util"

	"github.com/jmoiron/sqlx"
)

const ticketColumns = `id, ticket_number, name, email, subject, category, priority, message, status, created_at, updated_at`

// sqlxTicketRepository implements domain.TicketRepository using sqlx.
type sqlxTicketRepository struct {
	db *sqlx.DB
}

// NewSQLXTicketRepository creates a new ticket repository.
func NewSQLXTicketRepository(db *sqlx.DB) domain.TicketRepository {
	return &sqlxTicketRepository{db: db}
}

func toModelTicket(t *domain.SupportTicket) *models.SupportTicket {
	if t == nil {
		return nil
	}
	return &models.SupportTicket{
		ID:           t.ID,
		TicketNumber: t.Number,
		Name:         t.Name,
		Email:        t.Email,
		Subject:      t.Subject,
		Category:     string(t.Category),
		Priority:     string(t.Priority),
		Message:      t.Message,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.CreatedAt,
	}
}

func toDomainTicket(m *models.SupportTicket) *domain.SupportTicket {
	if m == nil {
		return nil
	}
	return &domain.SupportTicket{
		ID:        m.ID,
		Number:    m.TicketNumber,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Category:  domain.TicketCategory(m.Category),
		Priority:  domain.TicketPriority(m.Priority),
		Message:   m.Message,
		Status:    domain.TicketStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// SaveTicket inserts a new ticket.
func (r *sqlxTicketRepository) SaveTicket(ctx context.Context, ticket *domain.SupportTicket) error {
	if ticket == nil {
		return domain.NewInvalidInputError("ticket is required")
	}
	query := `INSERT INTO support_tickets (` + ticketColumns + `)
	          VALUES (:ID, :TICKET_NUMBER, :NAME, :EMAIL, :SUBJECT, :CATEGORY, :PRIORITY, :MESSAGE, :STATUS, :CREATED_AT, :UPDATED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, toModelTicket(ticket)); err != nil {
		return fmt.Errorf("failed to save ticket %s: %w", ticket.Number, err)
	}
	return nil
}

// AddTicketEvent appends an audit row for ticketID.
func (r *sqlxTicketRepository) AddTicketEvent(ctx context.Context, ticketID, event, detail string, at time.Time) error {
	row := &models.TicketEvent{
		ID:        util.NewULID(),
		TicketID:  ticketID,
		Event:     event,
		Detail:    util.StringToNullString(detail),
		CreatedAt: at,
	}
	query := `INSERT INTO support_ticket_events (id, ticket_id, event, detail, created_at)
	          VALUES (:ID, :TICKET_ID, :EVENT, :DETAIL, :CREATED_AT)`

	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to add %s event to ticket %s: %w", event, ticketID, err)
	}
	return nil
}

// GetTicketByNumber returns the newest ticket with number, or nil when there is none.
func (r *sqlxTicketRepository) GetTicketByNumber(ctx context.Context, number string) (*domain.SupportTicket, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ` + ticketColumns + ` FROM support_tickets
	          WHERE ticket_number = ? ORDER BY created_at DESC FETCH FIRST 1 ROWS ONLY`)

	var m models.SupportTicket
	if err := exec.GetContext(ctx, &m, query, number); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ticket %s: %w", number, err)
	}
	return toDomainTicket(&m), nil
}

// ListTickets returns a page of tickets, newest first.
func (r *sqlxTicketRepository) ListTickets(ctx context.Context, limit, offset int) ([]*domain.SupportTicket, error) {
	exec := GetExecutor(ctx, r.db)
	query := exec.Rebind(`SELECT ` + ticketColumns + ` FROM support_tickets
	          ORDER BY created_at DESC OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`)

	var rows []models.SupportTicket
	if err := exec.SelectContext(ctx, &rows, query, offset, limit); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*domain.SupportTicket, 0, len(rows))
	for i := range rows {
		tickets = append(tickets, toDomainTicket(&rows[i]))
	}
	return tickets, nil
}

// CountTickets returns the number of stored tickets.
func (r *sqlxTicketRepository) CountTickets(ctx context.Context) (int, error) {
	var count int
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM support_tickets`); err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}
