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
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentExists   = errors.New("payment already recorded")
)

type Payment struct {
	ID string `gorm:"primaryKey;size:36"`

	Amount   int64  `gorm:"not null"`
	Currency string `gorm:"not null"`
	Status   string `gorm:"not null"`

	// Gateway-side payment identifier; unique so recording is idempotent.
	GatewayPaymentID string `gorm:"column:payment_id;unique;not null"`

	UserID  string `gorm:"size:36;not null;index"`
	EventID string `gorm:"size:36;not null;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Payment{}, ErrPaymentExists
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByGatewayID(ctx context.Context, gatewayPaymentID string) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, "payment_id = ?", gatewayPaymentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}
