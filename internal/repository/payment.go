package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByGatewayID(ctx context.Context, gatewayPaymentID string) (dao.Payment, error)
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

// FindOrCreate resolves a payment by its gateway identifier, creating the
// record on first sight. A retry with the same gateway id always lands on
// the one existing row, even if two requests race the insert.
func (r *PaymentRepository) FindOrCreate(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	existing, err := r.dao.FindByGatewayID(ctx, payment.GatewayPaymentID)
	if err == nil {
		return paymentDAOToDomain(existing), nil
	}
	if !errors.Is(err, dao.ErrPaymentNotFound) {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByGatewayID -> %w", err)
	}

	created, err := r.dao.Insert(ctx, dao.Payment{
		ID:               payment.ID,
		Amount:           payment.Amount,
		Currency:         payment.Currency,
		Status:           payment.Status,
		GatewayPaymentID: payment.GatewayPaymentID,
		UserID:           payment.UserID,
		EventID:          payment.EventID,
	})
	if err != nil {
		if errors.Is(err, dao.ErrPaymentExists) {
			// Lost the insert race; the winner's row is the record.
			winner, findErr := r.dao.FindByGatewayID(ctx, payment.GatewayPaymentID)
			if findErr != nil {
				return domain.Payment{}, fmt.Errorf("r.dao.FindByGatewayID -> %w", findErr)
			}

			return paymentDAOToDomain(winner), nil
		}

		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return paymentDAOToDomain(created), nil
}

func paymentDAOToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:               p.ID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Status:           p.Status,
		GatewayPaymentID: p.GatewayPaymentID,
		UserID:           p.UserID,
		EventID:          p.EventID,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
