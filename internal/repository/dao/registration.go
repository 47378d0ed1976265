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
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrAlreadyRegistered    = errors.New("user is already registered for this event")
)

type EventParticipant struct {
	ID string `gorm:"primaryKey;size:36"`

	UserID  string `gorm:"size:36;not null;uniqueIndex:uni_event_participants_user_event"`
	EventID string `gorm:"size:36;not null;uniqueIndex:uni_event_participants_user_event"`

	Status string `gorm:"not null"`
	Notes  string

	PaymentID *string `gorm:"size:36"`

	User  User  `gorm:"foreignKey:UserID"`
	Event Event `gorm:"foreignKey:EventID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// Insert writes the registration row. The (user_id, event_id) unique index
// is the authoritative duplicate guard; a concurrent insert that slipped
// past the pre-check comes back as ErrAlreadyRegistered, not a raw pg error.
func (d *RegistrationDAO) Insert(ctx context.Context, participant EventParticipant) (EventParticipant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return EventParticipant{}, ErrAlreadyRegistered
		}

		return EventParticipant{}, result.Error
	}

	return participant, nil
}

func (d *RegistrationDAO) FindByID(ctx context.Context, id string) (EventParticipant, error) {
	var participant EventParticipant

	result := d.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Preload("Event.Creator").
		First(&participant, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventParticipant{}, ErrRegistrationNotFound
		}

		return EventParticipant{}, result.Error
	}

	return participant, nil
}

func (d *RegistrationDAO) FindByUserAndEvent(ctx context.Context, userID, eventID string) (EventParticipant, error) {
	var participant EventParticipant

	result := d.db.WithContext(ctx).
		First(&participant, "user_id = ? AND event_id = ?", userID, eventID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return EventParticipant{}, ErrRegistrationNotFound
		}

		return EventParticipant{}, result.Error
	}

	return participant, nil
}

type RegistrationFilter struct {
	EventID string
	UserID  string
	Status  string
}

func (d *RegistrationDAO) FindAll(ctx context.Context, filter RegistrationFilter) ([]EventParticipant, error) {
	query := d.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Preload("Event.Creator").
		Order("created_at desc")

	if filter.EventID != "" {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var participants []EventParticipant
	if err := query.Find(&participants).Error; err != nil {
		return nil, err
	}

	return participants, nil
}

func (d *RegistrationDAO) UpdateStatus(ctx context.Context, id, status, notes string) error {
	fields := map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	}
	if notes != "" {
		fields["notes"] = notes
	}

	result := d.db.WithContext(ctx).Model(&EventParticipant{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}

func (d *RegistrationDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&EventParticipant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}
