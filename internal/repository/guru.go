package repository

import (
	"context"
	"fmt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository/dao"
)

var (
	ErrApplicationNotFound = dao.ErrApplicationNotFound
	ErrApplicationExists   = dao.ErrApplicationExists
)

type GuruApplicationDAO interface {
	Insert(ctx context.Context, application dao.GuruApplication) (dao.GuruApplication, error)
	FindByID(ctx context.Context, id string) (dao.GuruApplication, error)
	FindByUserID(ctx context.Context, userID string) (dao.GuruApplication, error)
	FindAll(ctx context.Context) ([]dao.GuruApplication, error)
	UpdateStatus(ctx context.Context, id, status, notes, reviewedBy string) (dao.GuruApplication, error)
}

type GuruApplicationRepository struct {
	dao GuruApplicationDAO
}

func NewGuruApplicationRepository(dao GuruApplicationDAO) *GuruApplicationRepository {
	return &GuruApplicationRepository{
		dao: dao,
	}
}

func (r *GuruApplicationRepository) Create(ctx context.Context, application domain.GuruApplication) (domain.GuruApplication, error) {
	created, err := r.dao.Insert(ctx, dao.GuruApplication{
		ID:              application.ID,
		UserID:          application.UserID,
		FullName:        application.FullName,
		Email:           application.Email,
		Phone:           application.Phone,
		Expertise:       application.Expertise,
		Experience:      application.Experience,
		LinkedIn:        application.LinkedIn,
		Website:         application.Website,
		Bio:             application.Bio,
		Motivation:      application.Motivation,
		ResumeURL:       application.ResumeURL,
		ProfileImageURL: application.ProfileImageURL,
		Status:          string(application.Status),
		Notes:           application.Notes,
	})
	if err != nil {
		return domain.GuruApplication{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return applicationDAOToDomain(created), nil
}

func (r *GuruApplicationRepository) FindByID(ctx context.Context, id string) (domain.GuruApplication, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.GuruApplication{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return applicationDAOToDomain(found), nil
}

func (r *GuruApplicationRepository) FindByUserID(ctx context.Context, userID string) (domain.GuruApplication, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return domain.GuruApplication{}, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	return applicationDAOToDomain(found), nil
}

func (r *GuruApplicationRepository) FindAll(ctx context.Context) ([]domain.GuruApplication, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	applications := make([]domain.GuruApplication, 0, len(found))
	for _, a := range found {
		applications = append(applications, applicationDAOToDomain(a))
	}

	return applications, nil
}

func (r *GuruApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus, notes, reviewedBy string) (domain.GuruApplication, error) {
	updated, err := r.dao.UpdateStatus(ctx, id, string(status), notes, reviewedBy)
	if err != nil {
		return domain.GuruApplication{}, fmt.Errorf("r.dao.UpdateStatus -> %w", err)
	}

	return applicationDAOToDomain(updated), nil
}

func applicationDAOToDomain(a dao.GuruApplication) domain.GuruApplication {
	return domain.GuruApplication{
		ID:              a.ID,
		UserID:          a.UserID,
		FullName:        a.FullName,
		Email:           a.Email,
		Phone:           a.Phone,
		Expertise:       a.Expertise,
		Experience:      a.Experience,
		LinkedIn:        a.LinkedIn,
		Website:         a.Website,
		Bio:             a.Bio,
		Motivation:      a.Motivation,
		ResumeURL:       a.ResumeURL,
		ProfileImageURL: a.ProfileImageURL,
		Status:          domain.ReviewStatus(a.Status),
		Notes:           a.Notes,
		ReviewedBy:      a.ReviewedBy,
		ReviewedAt:      a.ReviewedAt,
		User:            userDAOToSummary(a.User),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
