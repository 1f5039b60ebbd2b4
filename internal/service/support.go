package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"consult-hub/internal/domain"
	"consult-hub/internal/dto"
	"consult-hub/internal/logger"
	"consult-hub/internal/util"
	"consult-hub/internal/validation"

	"go.uber.org/zap"
)

// TicketCreatedEvent is the audit event written with every new ticket.
const TicketCreatedEvent = "created"

// SupportService handles contact-form tickets.
type SupportService interface {
	SubmitTicket(ctx context.Context, req dto.CreateTicketRequest) (*dto.CreateTicketResponse, error)
	ListTickets(ctx context.Context, limit, offset int) (*dto.TicketListResponse, error)
}

type supportService struct {
	repo        domain.TicketRepository
	txManager   domain.TransactionManager
	validator   *validation.Validator
	submitDelay time.Duration
	now         func() time.Time
}

// NewSupportService creates the ticket intake service. submitDelay holds the
// confirmation back for a fixed time, as the contact page expects.
func NewSupportService(repo domain.TicketRepository, txManager domain.TransactionManager, submitDelay time.Duration) SupportService {
	return &supportService{
		repo:        repo,
		txManager:   txManager,
		validator:   validation.NewValidator(),
		submitDelay: submitDelay,
		now:         time.Now,
	}
}

// SubmitTicket validates and stores a ticket together with its "created" event.
func (s *supportService) SubmitTicket(ctx context.Context, req dto.CreateTicketRequest) (*dto.CreateTicketResponse, error) {
	in := validation.TicketInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Subject:  strings.TrimSpace(req.Subject),
		Category: strings.TrimSpace(req.Category),
		Priority: strings.TrimSpace(req.Priority),
		Message:  strings.TrimSpace(req.Message),
	}
	if errs := s.validator.ValidateTicket(in); len(errs) > 0 {
		return nil, errs
	}

	if s.submitDelay > 0 {
		select {
		case <-time.After(s.submitDelay):
		case <-ctx.Done():
			logger.Get().Info("Ticket submission abandoned", zap.Error(ctx.Err()))
			return nil, domain.NewRequestCanceledError(ctx.Err())
		}
	}

	now := s.now()
	ticket := domain.NewSupportTicket(util.NewULIDAt(now), in.Name, in.Email, in.Subject,
		domain.TicketCategory(in.Category), domain.TicketPriority(in.Priority), in.Message, now)

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.SaveTicket(txCtx, ticket); err != nil {
			return err
		}
		return s.repo.AddTicketEvent(txCtx, ticket.ID, TicketCreatedEvent,
			fmt.Sprintf("priority=%s category=%s", ticket.Priority, ticket.Category), now)
	})
	if err != nil {
		logger.Get().Error("Failed to save support ticket", zap.String("ticket_number", ticket.Number), zap.Error(err))
		return nil, domain.NewInternalError("Failed to submit support ticket", err)
	}

	logger.Get().Info("Support ticket submitted",
		zap.String("ticket_number", ticket.Number),
		zap.String("category", string(ticket.Category)),
		zap.String("priority", string(ticket.Priority)))

	return &dto.CreateTicketResponse{
		TicketNumber: ticket.Number,
		Status:       string(ticket.Status),
		Message:      fmt.Sprintf("Thank you, %s. Your ticket %s has been received.", ticket.Name, ticket.Number),
		CreatedAt:    ticket.CreatedAt,
	}, nil
}

// ListTickets returns one page of tickets, newest first, with the total count.
func (s *supportService) ListTickets(ctx context.Context, limit, offset int) (*dto.TicketListResponse, error) {
	tickets, err := s.repo.ListTickets(ctx, limit, offset)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list support tickets", err)
	}
	total, err := s.repo.CountTickets(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to count support tickets", err)
	}

	resp := &dto.TicketListResponse{
		Tickets:        make([]dto.TicketResponse, 0, len(tickets)),
		PaginationInfo: dto.PaginationInfo{TotalItems: total, Limit: limit, Offset: offset},
	}
	for _, t := range tickets {
		resp.Tickets = append(resp.Tickets, dto.TicketResponse{
			ID:        t.ID,
			Number:    t.Number,
			Name:      t.Name,
			Email:     t.Email,
			Subject:   t.Subject,
			Category:  string(t.Category),
			Priority:  string(t.Priority),
			Message:   t.Message,
			Status:    string(t.Status),
			CreatedAt: t.CreatedAt,
		})
	}
	return resp, nil
}
