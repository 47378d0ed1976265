package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID string `gorm:"primaryKey;size:36"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Name          string `gorm:"not null"`
	Qualification string
	Description   string
	Phone         string
	Role          string `gorm:"not null"` // "ARMY_MEMBER", "GURU", or "ADMIN"

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_users_email"`) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

// UpdateFields writes only the given columns, plus updated_at.
func (d *UserDAO) UpdateFields(ctx context.Context, id string, fields map[string]any) (User, error) {
	fields["updated_at"] = time.Now()

	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return User{}, result.Error
	}
	if result.RowsAffected == 0 {
		return User{}, ErrUserNotFound
	}

	return d.FindByID(ctx, id)
}

func (d *UserDAO) UpdateRole(ctx context.Context, id, role string) error {
	result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		Updates(map[string]any{"role": role, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountRelated returns the number of events created by, registrations held
// by and payments made by the user.
func (d *UserDAO) CountRelated(ctx context.Context, id string) (events, registrations, payments int64, err error) {
	db := d.db.WithContext(ctx)

	if err = db.Model(&Event{}).Where("creator_id = ?", id).Count(&events).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&EventParticipant{}).Where("user_id = ?", id).Count(&registrations).Error; err != nil {
		return 0, 0, 0, err
	}
	if err = db.Model(&Payment{}).Where("user_id = ?", id).Count(&payments).Error; err != nil {
		return 0, 0, 0, err
	}

	return events, registrations, payments, nil
}
