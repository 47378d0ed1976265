package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID string `gorm:"primaryKey;size:36"`

	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Location    string    `gorm:"not null"`

	TicketPrice     int64 `gorm:"not null;default:0"`
	Capacity        int   `gorm:"not null;default:0"`
	RequireApproval bool  `gorm:"not null;default:false"`
	IsPublished     bool  `gorm:"not null;default:false"`

	ImageURL string

	CreatorID string `gorm:"size:36;not null;index"`
	Creator   User   `gorm:"foreignKey:CreatorID"`

	Participants []EventParticipant `gorm:"foreignKey:EventID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id string) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).
		Preload("Creator").
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Participants.User").
		First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

type EventFilter struct {
	CreatorID   string
	IsPublished *bool
}

func (d *EventDAO) FindAll(ctx context.Context, filter EventFilter) ([]Event, error) {
	query := d.db.WithContext(ctx).Preload("Creator").Order("start_date asc")

	if filter.CreatorID != "" {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}

	var events []Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (d *EventDAO) UpdateFields(ctx context.Context, id string, fields map[string]any) (Event, error) {
	fields["updated_at"] = time.Now()

	result := d.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return Event{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Event{}, ErrEventNotFound
	}

	return d.FindByID(ctx, id)
}

// Delete removes the event along with its registrations and payments, in
// one transaction so a failure leaves everything in place.
func (d *EventDAO) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&EventParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&Payment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Event{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}

		return nil
	})
}

func (d *EventDAO) CountParticipants(ctx context.Context, eventID string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&EventParticipant{}).Where("event_id = ?", eventID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
