package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/pkg/payment"
	"github.com/zuper-events/zuper-api/internal/repository"
)

var (
	ErrEventNotFound        = repository.ErrEventNotFound
	ErrRegistrationNotFound = repository.ErrRegistrationNotFound
	ErrAlreadyRegistered    = repository.ErrAlreadyRegistered
	ErrEventFull            = errors.New("event is at full capacity")
	ErrUnknownStatus        = domain.ErrUnknownStatus
	ErrPaymentGateway       = errors.New("failed to create payment order, please try again")
)

// Locations matching none of these keywords are treated as physical venues
// and get a QR entry pass in the approval email.
var onlineLocationPattern = regexp.MustCompile(`(?i)online|virtual|zoom|teams|meet|webinar|remote`)

const approvalDateLayout = "Monday, January 2, 2006 at 3:04 PM"

type RegistrationRepository interface {
	Create(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	FindByID(ctx context.Context, id string) (domain.Registration, error)
	FindByUserAndEvent(ctx context.Context, userID, eventID string) (domain.Registration, error)
	FindAll(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReviewStatus, notes string) (domain.Registration, error)
	Delete(ctx context.Context, id string) error
}

type RegistrationEventRepository interface {
	FindByID(ctx context.Context, id string) (domain.Event, error)
	CountRegistrations(ctx context.Context, eventID string) (int64, error)
}

type RegistrationPaymentRepository interface {
	FindOrCreate(ctx context.Context, payment domain.Payment) (domain.Payment, error)
}

// PaymentGateway creates gateway-side orders for paid registrations.
type PaymentGateway interface {
	CreateOrder(amount int64, currency, receipt string, notes map[string]string) (payment.Order, error)
	KeyID() string
}

// RegistrationNotifier is the best-effort email surface; methods report
// delivery with a bool and never fail the calling operation.
type RegistrationNotifier interface {
	SendRegistrationPending(to, userName, eventName string) bool
	SendRegistrationApproved(to, userName, eventName, eventDate, eventLocation string, offline bool, registrationID string) bool
	SendRegistrationRejected(to, userName, eventName, reason string) bool
}

type RegisterInput struct {
	UserID    string
	EventID   string
	Notes     string
	PaymentID string
}

// RegisterResult is either a created registration, or — when payment is
// still owed — the gateway order the caller has to settle first.
type RegisterResult struct {
	RequiresPayment bool
	Order           payment.Order
	GatewayKeyID    string
	Registration    domain.Registration
}

type RegistrationService struct {
	repo        RegistrationRepository
	eventRepo   RegistrationEventRepository
	userRepo    UserRepository
	paymentRepo RegistrationPaymentRepository
	gateway     PaymentGateway
	notifier    RegistrationNotifier
}

func NewRegistrationService(
	repo RegistrationRepository,
	eventRepo RegistrationEventRepository,
	userRepo UserRepository,
	paymentRepo RegistrationPaymentRepository,
	gateway PaymentGateway,
	notifier RegistrationNotifier,
) *RegistrationService {
	return &RegistrationService{
		repo:        repo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		notifier:    notifier,
	}
}

// RegisterForEvent takes a registration request through validation,
// capacity and duplicate checks, then either returns a payment order
// (paid event, nothing persisted yet) or writes the registration.
func (s *RegistrationService) RegisterForEvent(ctx context.Context, input RegisterInput) (RegisterResult, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return RegisterResult{}, ErrUserNotFound
		}

		return RegisterResult{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	event, err := s.eventRepo.FindByID(ctx, input.EventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return RegisterResult{}, ErrEventNotFound
		}

		return RegisterResult{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	registered, err := s.eventRepo.CountRegistrations(ctx, event.ID)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("s.eventRepo.CountRegistrations -> %w", err)
	}
	if registered >= int64(event.Capacity) {
		return RegisterResult{}, ErrEventFull
	}

	// Pre-check only; the unique index on (user_id, event_id) is the
	// authoritative guard when two requests race.
	if _, err = s.repo.FindByUserAndEvent(ctx, input.UserID, input.EventID); err == nil {
		return RegisterResult{}, ErrAlreadyRegistered
	} else if !errors.Is(err, repository.ErrRegistrationNotFound) {
		return RegisterResult{}, fmt.Errorf("s.repo.FindByUserAndEvent -> %w", err)
	}

	if !event.IsFree() && input.PaymentID == "" {
		return s.createPaymentOrder(event, user)
	}

	return s.createRegistration(ctx, input, event, user)
}

// createPaymentOrder asks the gateway for an order covering the ticket
// price. No registration is written; the caller retries with the settled
// payment id.
func (s *RegistrationService) createPaymentOrder(event domain.Event, user domain.User) (RegisterResult, error) {
	receipt := buildReceipt(event.ID, user.ID, time.Now())

	order, err := s.gateway.CreateOrder(
		event.TicketPrice*100, // minor units (paise)
		domain.PaymentCurrency,
		receipt,
		map[string]string{
			"eventId": event.ID,
			"userId":  user.ID,
		},
	)
	if err != nil {
		zap.L().Error("payment order creation failed",
			zap.String("event_id", event.ID),
			zap.String("user_id", user.ID),
			zap.Error(err))

		return RegisterResult{}, ErrPaymentGateway
	}

	return RegisterResult{
		RequiresPayment: true,
		Order:           order,
		GatewayKeyID:    s.gateway.KeyID(),
	}, nil
}

func (s *RegistrationService) createRegistration(ctx context.Context, input RegisterInput, event domain.Event, user domain.User) (RegisterResult, error) {
	registration := domain.Registration{
		ID:      uuid.NewString(),
		UserID:  user.ID,
		EventID: event.ID,
		Notes:   input.Notes,
		Status:  domain.StatusApproved,
	}
	if event.RequireApproval {
		registration.Status = domain.StatusPending
	}

	if input.PaymentID != "" {
		record, err := s.paymentRepo.FindOrCreate(ctx, domain.Payment{
			ID:               uuid.NewString(),
			Amount:           event.TicketPrice,
			Currency:         domain.PaymentCurrency,
			Status:           domain.PaymentCompleted,
			GatewayPaymentID: input.PaymentID,
			UserID:           user.ID,
			EventID:          event.ID,
		})
		if err != nil {
			return RegisterResult{}, fmt.Errorf("s.paymentRepo.FindOrCreate -> %w", err)
		}
		registration.PaymentID = record.ID
	}

	created, err := s.repo.Create(ctx, registration)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyRegistered) {
			return RegisterResult{}, ErrAlreadyRegistered
		}

		return RegisterResult{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	if created.Status == domain.StatusPending {
		if !s.notifier.SendRegistrationPending(user.Email, user.Name, event.Name) {
			zap.L().Warn("pending notification email not delivered",
				zap.String("registration_id", created.ID),
				zap.String("to", user.Email))
		}
	}

	return RegisterResult{Registration: created}, nil
}

// UpdateStatus writes the new status, then sends the matching notification.
// The write is committed before any email goes out; a failed send never
// rolls it back.
func (s *RegistrationService) UpdateStatus(ctx context.Context, id, status, notes string) (domain.Registration, error) {
	parsed, err := domain.ParseReviewStatus(status)
	if err != nil {
		return domain.Registration{}, ErrUnknownStatus
	}

	if _, err = s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domain.Registration{}, ErrRegistrationNotFound
		}

		return domain.Registration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.UpdateStatus(ctx, id, parsed, notes)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.UpdateStatus -> %w", err)
	}

	switch parsed {
	case domain.StatusApproved:
		s.sendApprovalEmail(updated)
	case domain.StatusRejected:
		reason := notes
		if reason == "" {
			reason = "No specific reason provided."
		}
		if !s.notifier.SendRegistrationRejected(updated.User.Email, updated.User.Name, updated.Event.Name, reason) {
			zap.L().Warn("rejection email not delivered", zap.String("registration_id", updated.ID))
		}
	}

	return updated, nil
}

func (s *RegistrationService) sendApprovalEmail(registration domain.Registration) {
	event := registration.Event
	eventDate := event.StartDate.Format(approvalDateLayout)
	offline := IsOfflineEvent(event.Location)

	delivered := s.notifier.SendRegistrationApproved(
		registration.User.Email,
		registration.User.Name,
		event.Name,
		eventDate,
		event.Location,
		offline,
		registration.ID,
	)
	if !delivered {
		zap.L().Warn("approval email not delivered", zap.String("registration_id", registration.ID))
	}
}

func (s *RegistrationService) GetRegistration(ctx context.Context, id string) (domain.Registration, error) {
	registration, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domain.Registration{}, ErrRegistrationNotFound
		}

		return domain.Registration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return registration, nil
}

func (s *RegistrationService) ListRegistrations(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	registrations, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return registrations, nil
}

func (s *RegistrationService) DeleteRegistration(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}

		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// IsOfflineEvent classifies a free-text location: anything that does not
// look like an online meeting gets a venue entry pass.
func IsOfflineEvent(location string) bool {
	return !onlineLocationPattern.MatchString(location)
}

// buildReceipt derives the order receipt from truncated identifiers and a
// millisecond timestamp. Stays well under the gateway's 40-char limit.
func buildReceipt(eventID, userID string, now time.Time) string {
	shortEvent := eventID
	if len(shortEvent) > 4 {
		shortEvent = shortEvent[:4]
	}
	shortUser := userID
	if len(shortUser) > 4 {
		shortUser = shortUser[:4]
	}
	timestamp := strconv.FormatInt(now.UnixMilli(), 10)
	if len(timestamp) > 8 {
		timestamp = timestamp[:8]
	}

	return "r_" + shortEvent + shortUser + timestamp
}
