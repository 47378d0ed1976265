package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (domain.User, error)
	Counts(ctx context.Context, id string) (domain.UserCounts, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

// GetProfile returns the user together with activity counters.
func (s *UserService) GetProfile(ctx context.Context, id string) (domain.User, domain.UserCounts, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return domain.User{}, domain.UserCounts{}, err
	}

	counts, err := s.repo.Counts(ctx, id)
	if err != nil {
		return domain.User{}, domain.UserCounts{}, fmt.Errorf("s.repo.Counts -> %w", err)
	}

	return user, counts, nil
}

type UpdateProfileInput struct {
	Name          *string
	Qualification *string
	Description   *string
	Phone         *string
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (domain.User, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Qualification != nil {
		fields["qualification"] = *input.Qualification
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}

	updated, err := s.repo.UpdateProfile(ctx, id, fields)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return updated, nil
}
