package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrStoryNotFound = errors.New("success story not found")

type SuccessStory struct {
	ID string `gorm:"primaryKey;size:36"`

	UserID string `gorm:"size:36;not null;index"`
	User   User   `gorm:"foreignKey:UserID"`

	FounderName      string `gorm:"not null"`
	CompanyName      string `gorm:"not null"`
	Industry         string `gorm:"not null"`
	ImageURL         string
	ShortDescription string   `gorm:"not null"`
	FullStory        string   `gorm:"not null"`
	Achievements     []string `gorm:"serializer:json"`
	Testimonial      string

	IsPublished bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SuccessStoryDAO struct {
	db *gorm.DB
}

func NewSuccessStoryDAO(db *gorm.DB) *SuccessStoryDAO {
	return &SuccessStoryDAO{
		db: db,
	}
}

func (d *SuccessStoryDAO) Insert(ctx context.Context, story SuccessStory) (SuccessStory, error) {
	result := d.db.WithContext(ctx).Create(&story)
	if result.Error != nil {
		return SuccessStory{}, result.Error
	}

	return story, nil
}

func (d *SuccessStoryDAO) FindByID(ctx context.Context, id string) (SuccessStory, error) {
	var story SuccessStory

	result := d.db.WithContext(ctx).Preload("User").First(&story, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SuccessStory{}, ErrStoryNotFound
		}

		return SuccessStory{}, result.Error
	}

	return story, nil
}

func (d *SuccessStoryDAO) FindAll(ctx context.Context, publishedOnly bool) ([]SuccessStory, error) {
	query := d.db.WithContext(ctx).Preload("User").Order("created_at desc")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var stories []SuccessStory
	if err := query.Find(&stories).Error; err != nil {
		return nil, err
	}

	return stories, nil
}

func (d *SuccessStoryDAO) FindByUserID(ctx context.Context, userID string) ([]SuccessStory, error) {
	var stories []SuccessStory

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&stories)
	if result.Error != nil {
		return nil, result.Error
	}

	return stories, nil
}

func (d *SuccessStoryDAO) UpdateFields(ctx context.Context, id string, fields map[string]any) (SuccessStory, error) {
	fields["updated_at"] = time.Now()

	result := d.db.WithContext(ctx).Model(&SuccessStory{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return SuccessStory{}, result.Error
	}
	if result.RowsAffected == 0 {
		return SuccessStory{}, ErrStoryNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *SuccessStoryDAO) CountByUser(ctx context.Context, userID string, published *bool) (int64, error) {
	query := d.db.WithContext(ctx).Model(&SuccessStory{}).Where("user_id = ?", userID)
	if published != nil {
		query = query.Where("is_published = ?", *published)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
