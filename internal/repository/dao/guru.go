package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already submitted")
)

type GuruApplication struct {
	ID string `gorm:"primaryKey;size:36"`

	UserID string `gorm:"size:36;unique;not null"`
	User   User   `gorm:"foreignKey:UserID"`

	FullName   string   `gorm:"not null"`
	Email      string   `gorm:"not null"`
	Phone      string   `gorm:"not null"`
	Expertise  []string `gorm:"serializer:json"`
	Experience string   `gorm:"not null"`
	LinkedIn   string
	Website    string
	Bio        string `gorm:"not null"`
	Motivation string `gorm:"not null"`

	ResumeURL       string
	ProfileImageURL string

	Status     string `gorm:"not null"`
	Notes      string
	ReviewedBy string `gorm:"size:36"`
	ReviewedAt *time.Time

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GuruApplicationDAO struct {
	db *gorm.DB
}

func NewGuruApplicationDAO(db *gorm.DB) *GuruApplicationDAO {
	return &GuruApplicationDAO{
		db: db,
	}
}

func (d *GuruApplicationDAO) Insert(ctx context.Context, application GuruApplication) (GuruApplication, error) {
	result := d.db.WithContext(ctx).Create(&application)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return GuruApplication{}, ErrApplicationExists
		}

		return GuruApplication{}, result.Error
	}

	return application, nil
}

func (d *GuruApplicationDAO) FindByID(ctx context.Context, id string) (GuruApplication, error) {
	var application GuruApplication

	result := d.db.WithContext(ctx).Preload("User").First(&application, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GuruApplication{}, ErrApplicationNotFound
		}

		return GuruApplication{}, result.Error
	}

	return application, nil
}

func (d *GuruApplicationDAO) FindByUserID(ctx context.Context, userID string) (GuruApplication, error) {
	var application GuruApplication

	result := d.db.WithContext(ctx).First(&application, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return GuruApplication{}, ErrApplicationNotFound
		}

		return GuruApplication{}, result.Error
	}

	return application, nil
}

func (d *GuruApplicationDAO) FindAll(ctx context.Context) ([]GuruApplication, error) {
	var applications []GuruApplication

	result := d.db.WithContext(ctx).Preload("User").Order("created_at desc").Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}

	return applications, nil
}

func (d *GuruApplicationDAO) UpdateStatus(ctx context.Context, id, status, notes, reviewedBy string) (GuruApplication, error) {
	now := time.Now()

	result := d.db.WithContext(ctx).Model(&GuruApplication{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"notes":       notes,
			"reviewed_by": reviewedBy,
			"reviewed_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return GuruApplication{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GuruApplication{}, ErrApplicationNotFound
	}

	return d.FindByID(ctx, id)
}
