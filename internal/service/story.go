package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository"
)

var (
	ErrStoryNotFound     = repository.ErrStoryNotFound
	ErrNotStoryOwner     = errors.New("only the story author or an admin can do this")
	ErrStoryNotPublished = errors.New("this story has not been published")
)

type SuccessStoryRepository interface {
	Create(ctx context.Context, story domain.SuccessStory) (domain.SuccessStory, error)
	FindByID(ctx context.Context, id string) (domain.SuccessStory, error)
	FindAll(ctx context.Context, publishedOnly bool) ([]domain.SuccessStory, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.SuccessStory, error)
	Update(ctx context.Context, id string, fields map[string]any) (domain.SuccessStory, error)
	SetPublished(ctx context.Context, id string, published bool) (domain.SuccessStory, error)
	Stats(ctx context.Context, userID string) (domain.StoryStats, error)
}

type StoryService struct {
	repo SuccessStoryRepository
}

func NewStoryService(repo SuccessStoryRepository) *StoryService {
	return &StoryService{
		repo: repo,
	}
}

// CreateStory saves a new story. Guru-authored stories start unpublished
// and wait for an admin; admin-authored ones go live immediately.
func (s *StoryService) CreateStory(ctx context.Context, actor domain.User, story domain.SuccessStory) (domain.SuccessStory, error) {
	story.ID = uuid.NewString()
	story.UserID = actor.ID
	story.IsPublished = actor.Role == domain.RoleAdmin

	created, err := s.repo.Create(ctx, story)
	if err != nil {
		return domain.SuccessStory{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// GetStory hides unpublished stories from everyone but the author and admins.
func (s *StoryService) GetStory(ctx context.Context, id string, actor domain.User) (domain.SuccessStory, error) {
	story, err := s.getStory(ctx, id)
	if err != nil {
		return domain.SuccessStory{}, err
	}

	if !story.IsPublished && actor.Role != domain.RoleAdmin && actor.ID != story.UserID {
		return domain.SuccessStory{}, ErrStoryNotPublished
	}

	return story, nil
}

func (s *StoryService) getStory(ctx context.Context, id string) (domain.SuccessStory, error) {
	story, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return domain.SuccessStory{}, ErrStoryNotFound
		}

		return domain.SuccessStory{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return story, nil
}

// ListStories hides unpublished stories from everyone but admins.
func (s *StoryService) ListStories(ctx context.Context, actor domain.User) ([]domain.SuccessStory, error) {
	publishedOnly := actor.Role != domain.RoleAdmin

	stories, err := s.repo.FindAll(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return stories, nil
}

func (s *StoryService) ListStoriesByUser(ctx context.Context, userID string) ([]domain.SuccessStory, error) {
	stories, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}

	return stories, nil
}

type UpdateStoryInput struct {
	FounderName      *string
	CompanyName      *string
	Industry         *string
	ShortDescription *string
	FullStory        *string
	Achievements     *[]string
	Testimonial      *string
	ImageURL         *string
}

func (s *StoryService) UpdateStory(ctx context.Context, id string, actor domain.User, input UpdateStoryInput) (domain.SuccessStory, error) {
	story, err := s.getStory(ctx, id)
	if err != nil {
		return domain.SuccessStory{}, err
	}

	if actor.Role != domain.RoleAdmin && actor.ID != story.UserID {
		return domain.SuccessStory{}, ErrNotStoryOwner
	}

	fields := map[string]any{}
	if input.FounderName != nil {
		fields["founder_name"] = *input.FounderName
	}
	if input.CompanyName != nil {
		fields["company_name"] = *input.CompanyName
	}
	if input.Industry != nil {
		fields["industry"] = *input.Industry
	}
	if input.ShortDescription != nil {
		fields["short_description"] = *input.ShortDescription
	}
	if input.FullStory != nil {
		fields["full_story"] = *input.FullStory
	}
	if input.Achievements != nil {
		fields["achievements"] = *input.Achievements
	}
	if input.Testimonial != nil {
		fields["testimonial"] = *input.Testimonial
	}
	if input.ImageURL != nil {
		fields["image_url"] = *input.ImageURL
	}

	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return domain.SuccessStory{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// SetPublished flips a story's visibility. Admin only, enforced at the route.
func (s *StoryService) SetPublished(ctx context.Context, id string, published bool) (domain.SuccessStory, error) {
	if _, err := s.getStory(ctx, id); err != nil {
		return domain.SuccessStory{}, err
	}

	updated, err := s.repo.SetPublished(ctx, id, published)
	if err != nil {
		return domain.SuccessStory{}, fmt.Errorf("s.repo.SetPublished -> %w", err)
	}

	return updated, nil
}

func (s *StoryService) Stats(ctx context.Context, userID string) (domain.StoryStats, error) {
	stats, err := s.repo.Stats(ctx, userID)
	if err != nil {
		return domain.StoryStats{}, fmt.Errorf("s.repo.Stats -> %w", err)
	}

	return stats, nil
}
