package repository

import (
	"context"
	"fmt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id string) (dao.Event, error)
	FindAll(ctx context.Context, filter dao.EventFilter) ([]dao.Event, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (dao.Event, error)
	Delete(ctx context.Context, id string) error
	CountParticipants(ctx context.Context, eventID string) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, dao.Event{
		ID:              event.ID,
		Name:            event.Name,
		Description:     event.Description,
		StartDate:       event.StartDate,
		EndDate:         event.EndDate,
		Location:        event.Location,
		TicketPrice:     event.TicketPrice,
		Capacity:        event.Capacity,
		RequireApproval: event.RequireApproval,
		IsPublished:     event.IsPublished,
		ImageURL:        event.ImageURL,
		CreatorID:       event.CreatorID,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return eventDAOToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	event := eventDAOToDomain(found)

	event.ParticipantCount = int64(len(found.Participants))
	event.Participants = make([]domain.Participant, 0, len(found.Participants))
	for _, p := range found.Participants {
		event.Participants = append(event.Participants, domain.Participant{
			ID:        p.ID,
			Status:    domain.ReviewStatus(p.Status),
			User:      userDAOToSummary(p.User),
			CreatedAt: p.CreatedAt,
		})
	}

	return event, nil
}

func (r *EventRepository) FindAll(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx, dao.EventFilter{
		CreatorID:   filter.CreatorID,
		IsPublished: filter.IsPublished,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, eventDAOToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, fields map[string]any) (domain.Event, error) {
	updated, err := r.dao.UpdateFields(ctx, id, fields)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.UpdateFields -> %w", err)
	}

	return eventDAOToDomain(updated), nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *EventRepository) CountRegistrations(ctx context.Context, eventID string) (int64, error) {
	count, err := r.dao.CountParticipants(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountParticipants -> %w", err)
	}

	return count, nil
}

func eventDAOToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:              e.ID,
		Name:            e.Name,
		Description:     e.Description,
		StartDate:       e.StartDate,
		EndDate:         e.EndDate,
		Location:        e.Location,
		TicketPrice:     e.TicketPrice,
		Capacity:        e.Capacity,
		ImageURL:        e.ImageURL,
		RequireApproval: e.RequireApproval,
		IsPublished:     e.IsPublished,
		CreatorID:       e.CreatorID,
		Creator:         userDAOToSummary(e.Creator),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
