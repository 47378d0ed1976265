package repository

import (
	"context"
	"fmt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id string) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (dao.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	CountRelated(ctx context.Context, id string) (events, registrations, payments int64, err error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		ID:            user.ID,
		Email:         user.Email,
		Password:      user.Password,
		Name:          user.Name,
		Qualification: user.Qualification,
		Description:   user.Description,
		Phone:         user.Phone,
		Role:          user.Role,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return userDAOToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return userDAOToDomain(found), nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashedPassword string) error {
	if _, err := r.dao.UpdateFields(ctx, id, map[string]any{"password": hashedPassword}); err != nil {
		return fmt.Errorf("r.dao.UpdateFields -> %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, fields map[string]any) (domain.User, error) {
	updated, err := r.dao.UpdateFields(ctx, id, fields)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.UpdateFields -> %w", err)
	}

	return userDAOToDomain(updated), nil
}

func (r *UserRepository) PromoteToGuru(ctx context.Context, id string) error {
	if err := r.dao.UpdateRole(ctx, id, domain.RoleGuru); err != nil {
		return fmt.Errorf("r.dao.UpdateRole -> %w", err)
	}

	return nil
}

func (r *UserRepository) Counts(ctx context.Context, id string) (domain.UserCounts, error) {
	events, registrations, payments, err := r.dao.CountRelated(ctx, id)
	if err != nil {
		return domain.UserCounts{}, fmt.Errorf("r.dao.CountRelated -> %w", err)
	}

	return domain.UserCounts{
		Events:        events,
		Registrations: registrations,
		Payments:      payments,
	}, nil
}

func userDAOToDomain(u dao.User) domain.User {
	return domain.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Password:      u.Password,
		Qualification: u.Qualification,
		Description:   u.Description,
		Phone:         u.Phone,
		Role:          u.Role,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func userDAOToSummary(u dao.User) domain.UserSummary {
	return domain.UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
