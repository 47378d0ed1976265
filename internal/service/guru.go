package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository"
)

var (
	ErrApplicationNotFound = repository.ErrApplicationNotFound
	ErrApplicationExists   = repository.ErrApplicationExists
)

type GuruApplicationRepository interface {
	Create(ctx context.Context, application domain.GuruApplication) (domain.GuruApplication, error)
	FindByID(ctx context.Context, id string) (domain.GuruApplication, error)
	FindByUserID(ctx context.Context, userID string) (domain.GuruApplication, error)
	FindAll(ctx context.Context) ([]domain.GuruApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus, notes, reviewedBy string) (domain.GuruApplication, error)
}

type GuruUserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
	PromoteToGuru(ctx context.Context, id string) error
}

type GuruNotifier interface {
	SendGuruApproved(to, userName string) bool
	SendGuruRejected(to, userName, reason string) bool
}

type GuruService struct {
	repo     GuruApplicationRepository
	userRepo GuruUserRepository
	notifier GuruNotifier
}

func NewGuruService(repo GuruApplicationRepository, userRepo GuruUserRepository, notifier GuruNotifier) *GuruService {
	return &GuruService{
		repo:     repo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

// SubmitApplication creates a pending application. The unique index on
// user_id enforces one application per user.
func (s *GuruService) SubmitApplication(ctx context.Context, application domain.GuruApplication) (domain.GuruApplication, error) {
	if _, err := s.userRepo.FindByID(ctx, application.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.GuruApplication{}, ErrUserNotFound
		}

		return domain.GuruApplication{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	application.ID = uuid.NewString()
	application.Status = domain.StatusPending

	created, err := s.repo.Create(ctx, application)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationExists) {
			return domain.GuruApplication{}, ErrApplicationExists
		}

		return domain.GuruApplication{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *GuruService) GetApplication(ctx context.Context, id string) (domain.GuruApplication, error) {
	application, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domain.GuruApplication{}, ErrApplicationNotFound
		}

		return domain.GuruApplication{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return application, nil
}

func (s *GuruService) GetApplicationByUser(ctx context.Context, userID string) (domain.GuruApplication, error) {
	application, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return domain.GuruApplication{}, ErrApplicationNotFound
		}

		return domain.GuruApplication{}, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return application, nil
}

func (s *GuruService) ListApplications(ctx context.Context) ([]domain.GuruApplication, error) {
	applications, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return applications, nil
}

// DecideApplication records the review outcome. Approval also promotes the
// applicant to the guru role; promotion failure fails the whole operation,
// email delivery does not.
func (s *GuruService) DecideApplication(ctx context.Context, id, status, notes, reviewedBy string) (domain.GuruApplication, error) {
	parsed, err := domain.ParseReviewStatus(status)
	if err != nil {
		return domain.GuruApplication{}, ErrUnknownStatus
	}

	application, err := s.GetApplication(ctx, id)
	if err != nil {
		return domain.GuruApplication{}, err
	}

	applicant, err := s.userRepo.FindByID(ctx, application.UserID)
	if err != nil {
		return domain.GuruApplication{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, parsed, notes, reviewedBy)
	if err != nil {
		return domain.GuruApplication{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	switch parsed {
	case domain.StatusApproved:
		if err = s.userRepo.PromoteToGuru(ctx, applicant.ID); err != nil {
			return domain.GuruApplication{}, fmt.Errorf("s.userRepo.PromoteToGuru -> %w", err)
		}
		if !s.notifier.SendGuruApproved(applicant.Email, applicant.Name) {
			zap.L().Warn("guru approval email not delivered", zap.String("application_id", updated.ID))
		}
	case domain.StatusRejected:
		reason := notes
		if reason == "" {
			reason = "No specific reason provided."
		}
		if !s.notifier.SendGuruRejected(applicant.Email, applicant.Name, reason) {
			zap.L().Warn("guru rejection email not delivered", zap.String("application_id", updated.ID))
		}
	}

	return updated, nil
}
