package repository

import (
	"context"
	"fmt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository/dao"
)

var ErrStoryNotFound = dao.ErrStoryNotFound

type SuccessStoryDAO interface {
	Insert(ctx context.Context, story dao.SuccessStory) (dao.SuccessStory, error)
	FindByID(ctx context.Context, id string) (dao.SuccessStory, error)
	FindAll(ctx context.Context, publishedOnly bool) ([]dao.SuccessStory, error)
	FindByUserID(ctx context.Context, userID string) ([]dao.SuccessStory, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (dao.SuccessStory, error)
	CountByUser(ctx context.Context, userID string, published *bool) (int64, error)
}

type SuccessStoryRepository struct {
	dao SuccessStoryDAO
}

func NewSuccessStoryRepository(dao SuccessStoryDAO) *SuccessStoryRepository {
	return &SuccessStoryRepository{
		dao: dao,
	}
}

func (r *SuccessStoryRepository) Create(ctx context.Context, story domain.SuccessStory) (domain.SuccessStory, error) {
	created, err := r.dao.Insert(ctx, dao.SuccessStory{
		ID:               story.ID,
		UserID:           story.UserID,
		FounderName:      story.FounderName,
		CompanyName:      story.CompanyName,
		Industry:         story.Industry,
		ImageURL:         story.ImageURL,
		ShortDescription: story.ShortDescription,
		FullStory:        story.FullStory,
		Achievements:     story.Achievements,
		Testimonial:      story.Testimonial,
		IsPublished:      story.IsPublished,
	})
	if err != nil {
		return domain.SuccessStory{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return storyDAOToDomain(created), nil
}

func (r *SuccessStoryRepository) FindByID(ctx context.Context, id string) (domain.SuccessStory, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.SuccessStory{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return storyDAOToDomain(found), nil
}

func (r *SuccessStoryRepository) FindAll(ctx context.Context, publishedOnly bool) ([]domain.SuccessStory, error) {
	found, err := r.dao.FindAll(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	stories := make([]domain.SuccessStory, 0, len(found))
	for _, s := range found {
		stories = append(stories, storyDAOToDomain(s))
	}

	return stories, nil
}

func (r *SuccessStoryRepository) FindByUserID(ctx context.Context, userID string) ([]domain.SuccessStory, error) {
	found, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByUserID -> %w", err)
	}

	stories := make([]domain.SuccessStory, 0, len(found))
	for _, s := range found {
		stories = append(stories, storyDAOToDomain(s))
	}

	return stories, nil
}

func (r *SuccessStoryRepository) Update(ctx context.Context, id string, fields map[string]any) (domain.SuccessStory, error) {
	updated, err := r.dao.UpdateFields(ctx, id, fields)
	if err != nil {
		return domain.SuccessStory{}, fmt.Errorf("r.dao.UpdateFields -> %w", err)
	}

	return storyDAOToDomain(updated), nil
}

func (r *SuccessStoryRepository) SetPublished(ctx context.Context, id string, published bool) (domain.SuccessStory, error) {
	updated, err := r.dao.UpdateFields(ctx, id, map[string]any{"is_published": published})
	if err != nil {
		return domain.SuccessStory{}, fmt.Errorf("r.dao.UpdateFields -> %w", err)
	}

	return storyDAOToDomain(updated), nil
}

func (r *SuccessStoryRepository) Stats(ctx context.Context, userID string) (domain.StoryStats, error) {
	total, err := r.dao.CountByUser(ctx, userID, nil)
	if err != nil {
		return domain.StoryStats{}, fmt.Errorf("r.dao.CountByUser -> %w", err)
	}

	published := true
	publishedCount, err := r.dao.CountByUser(ctx, userID, &published)
	if err != nil {
		return domain.StoryStats{}, fmt.Errorf("r.dao.CountByUser -> %w", err)
	}

	return domain.StoryStats{
		Total:     total,
		Published: publishedCount,
		Pending:   total - publishedCount,
	}, nil
}

func storyDAOToDomain(s dao.SuccessStory) domain.SuccessStory {
	return domain.SuccessStory{
		ID:               s.ID,
		UserID:           s.UserID,
		FounderName:      s.FounderName,
		CompanyName:      s.CompanyName,
		Industry:         s.Industry,
		ImageURL:         s.ImageURL,
		ShortDescription: s.ShortDescription,
		FullStory:        s.FullStory,
		Achievements:     s.Achievements,
		Testimonial:      s.Testimonial,
		IsPublished:      s.IsPublished,
		User:             userDAOToSummary(s.User),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
