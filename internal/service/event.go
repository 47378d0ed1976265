package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository"
)

var ErrNotEventCreator = errors.New("only the event creator or an admin can do this")

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id string) (domain.Event, error)
	FindAll(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	Update(ctx context.Context, id string, fields map[string]any) (domain.Event, error)
	Delete(ctx context.Context, id string) error
	CountRegistrations(ctx context.Context, eventID string) (int64, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	event.ID = uuid.NewString()

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.Event{}, ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	events, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

type UpdateEventInput struct {
	Name            *string
	Description     *string
	StartDate       *time.Time
	EndDate         *time.Time
	Location        *string
	TicketPrice     *int64
	Capacity        *int
	ImageURL        *string
	RequireApproval *bool
	IsPublished     *bool
}

// UpdateEvent applies a partial update after checking the caller owns the
// event. Admins may update any event.
func (s *EventService) UpdateEvent(ctx context.Context, id string, actor domain.User, input UpdateEventInput) (domain.Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return domain.Event{}, err
	}

	if err = canManageEvent(actor, event); err != nil {
		return domain.Event{}, err
	}

	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.StartDate != nil {
		fields["start_date"] = *input.StartDate
	}
	if input.EndDate != nil {
		fields["end_date"] = *input.EndDate
	}
	if input.Location != nil {
		fields["location"] = *input.Location
	}
	if input.TicketPrice != nil {
		fields["ticket_price"] = *input.TicketPrice
	}
	if input.Capacity != nil {
		fields["capacity"] = *input.Capacity
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}
	if input.RequireApproval != nil {
		fields["require_approval"] = *input.RequireApproval
	}
	if input.IsPublished != nil {
		fields["is_published"] = *input.IsPublished
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// DeleteEvent removes the event along with its registrations and payment
// records in one transaction.
func (s *EventService) DeleteEvent(ctx context.Context, id string, actor domain.User) error {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return err
	}

	if err = canManageEvent(actor, event); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func canManageEvent(actor domain.User, event domain.Event) error {
	if actor.Role == domain.RoleAdmin || actor.ID == event.CreatorID {
		return nil
	}

	return ErrNotEventCreator
}
