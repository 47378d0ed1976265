package repository

import (
	"context"
	"fmt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository/dao"
)

var (
	ErrRegistrationNotFound = dao.ErrRegistrationNotFound
	ErrAlreadyRegistered    = dao.ErrAlreadyRegistered
)

type RegistrationDAO interface {
	Insert(ctx context.Context, participant dao.EventParticipant) (dao.EventParticipant, error)
	FindByID(ctx context.Context, id string) (dao.EventParticipant, error)
	FindByUserAndEvent(ctx context.Context, userID, eventID string) (dao.EventParticipant, error)
	FindAll(ctx context.Context, filter dao.RegistrationFilter) ([]dao.EventParticipant, error)
	UpdateStatus(ctx context.Context, id, status, notes string) error
	Delete(ctx context.Context, id string) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, registration domain.Registration) (domain.Registration, error) {
	record := dao.EventParticipant{
		ID:      registration.ID,
		UserID:  registration.UserID,
		EventID: registration.EventID,
		Status:  string(registration.Status),
		Notes:   registration.Notes,
	}
	if registration.PaymentID != "" {
		paymentID := registration.PaymentID
		record.PaymentID = &paymentID
	}

	created, err := r.dao.Insert(ctx, record)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	// Re-read for the event and user projections.
	full, err := r.dao.FindByID(ctx, created.ID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return registrationDAOToDomain(full), nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id string) (domain.Registration, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return registrationDAOToDomain(found), nil
}

func (r *RegistrationRepository) FindByUserAndEvent(ctx context.Context, userID, eventID string) (domain.Registration, error) {
	found, err := r.dao.FindByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByUserAndEvent -> %w", err)
	}

	return registrationDAOToDomain(found), nil
}

func (r *RegistrationRepository) FindAll(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	found, err := r.dao.FindAll(ctx, dao.RegistrationFilter{
		EventID: filter.EventID,
		UserID:  filter.UserID,
		Status:  filter.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	registrations := make([]domain.Registration, 0, len(found))
	for _, p := range found {
		registrations = append(registrations, registrationDAOToDomain(p))
	}

	return registrations, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus, notes string) (domain.Registration, error) {
	if err := r.dao.UpdateStatus(ctx, id, string(status), notes); err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	updated, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return registrationDAOToDomain(updated), nil
}

func (r *RegistrationRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func registrationDAOToDomain(p dao.EventParticipant) domain.Registration {
	registration := domain.Registration{
		ID:        p.ID,
		UserID:    p.UserID,
		EventID:   p.EventID,
		Status:    domain.ReviewStatus(p.Status),
		Notes:     p.Notes,
		Event:     eventDAOToDomain(p.Event),
		User:      userDAOToSummary(p.User),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.PaymentID != nil {
		registration.PaymentID = *p.PaymentID
	}

	return registration
}
