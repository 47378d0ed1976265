package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/pkg/payment"
	"github.com/zuper-events/zuper-api/internal/repository"
)

type fakeRegistrationRepo struct {
	stored    map[string]domain.Registration
	createErr error
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{stored: map[string]domain.Registration{}}
}

func (f *fakeRegistrationRepo) Create(_ context.Context, registration domain.Registration) (domain.Registration, error) {
	if f.createErr != nil {
		return domain.Registration{}, f.createErr
	}
	for _, existing := range f.stored {
		if existing.UserID == registration.UserID && existing.EventID == registration.EventID {
			return domain.Registration{}, repository.ErrAlreadyRegistered
		}
	}
	f.stored[registration.ID] = registration

	return registration, nil
}

func (f *fakeRegistrationRepo) FindByID(_ context.Context, id string) (domain.Registration, error) {
	registration, ok := f.stored[id]
	if !ok {
		return domain.Registration{}, repository.ErrRegistrationNotFound
	}

	return registration, nil
}

func (f *fakeRegistrationRepo) FindByUserAndEvent(_ context.Context, userID, eventID string) (domain.Registration, error) {
	for _, registration := range f.stored {
		if registration.UserID == userID && registration.EventID == eventID {
			return registration, nil
		}
	}

	return domain.Registration{}, repository.ErrRegistrationNotFound
}

func (f *fakeRegistrationRepo) FindAll(_ context.Context, _ domain.RegistrationFilter) ([]domain.Registration, error) {
	all := make([]domain.Registration, 0, len(f.stored))
	for _, registration := range f.stored {
		all = append(all, registration)
	}

	return all, nil
}

func (f *fakeRegistrationRepo) UpdateStatus(_ context.Context, id string, status domain.ReviewStatus, notes string) (domain.Registration, error) {
	registration, ok := f.stored[id]
	if !ok {
		return domain.Registration{}, repository.ErrRegistrationNotFound
	}
	registration.Status = status
	if notes != "" {
		registration.Notes = notes
	}
	f.stored[id] = registration

	return registration, nil
}

func (f *fakeRegistrationRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.stored[id]; !ok {
		return repository.ErrRegistrationNotFound
	}
	delete(f.stored, id)

	return nil
}

type fakeUserRepo struct {
	users map[string]domain.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id string, _ map[string]any) (domain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) Counts(_ context.Context, _ string) (domain.UserCounts, error) {
	return domain.UserCounts{}, nil
}

type fakeEventRepo struct {
	events     map[string]domain.Event
	registered int64
}

func (f *fakeEventRepo) FindByID(_ context.Context, id string) (domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return domain.Event{}, repository.ErrEventNotFound
	}

	return event, nil
}

func (f *fakeEventRepo) CountRegistrations(_ context.Context, _ string) (int64, error) {
	return f.registered, nil
}

type fakePaymentRepo struct {
	created []domain.Payment
}

func (f *fakePaymentRepo) FindOrCreate(_ context.Context, p domain.Payment) (domain.Payment, error) {
	for _, existing := range f.created {
		if existing.GatewayPaymentID == p.GatewayPaymentID {
			return existing, nil
		}
	}
	f.created = append(f.created, p)

	return p, nil
}

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
	lastNotes    map[string]string
	err          error
}

func (f *fakeGateway) CreateOrder(amount int64, currency, receipt string, notes map[string]string) (payment.Order, error) {
	if f.err != nil {
		return payment.Order{}, f.err
	}
	f.lastAmount = amount
	f.lastCurrency = currency
	f.lastReceipt = receipt
	f.lastNotes = notes

	return payment.Order{
		ID:       "order_test_1",
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
		Status:   "created",
	}, nil
}

func (f *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

type approvedEmail struct {
	to       string
	date     string
	location string
	offline  bool
}

type fakeNotifier struct {
	deliver  bool
	pending  []string
	approved []approvedEmail
	rejected []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{deliver: true}
}

func (f *fakeNotifier) SendRegistrationPending(to, _, _ string) bool {
	f.pending = append(f.pending, to)

	return f.deliver
}

func (f *fakeNotifier) SendRegistrationApproved(to, _, _, eventDate, eventLocation string, offline bool, _ string) bool {
	f.approved = append(f.approved, approvedEmail{
		to:       to,
		date:     eventDate,
		location: eventLocation,
		offline:  offline,
	})

	return f.deliver
}

func (f *fakeNotifier) SendRegistrationRejected(to, _, _, reason string) bool {
	f.rejected = append(f.rejected, reason)

	return f.deliver
}

func (f *fakeNotifier) SendGuruApproved(to, _ string) bool {
	f.pending = append(f.pending, to)

	return f.deliver
}

func (f *fakeNotifier) SendGuruRejected(_, _, reason string) bool {
	f.rejected = append(f.rejected, reason)

	return f.deliver
}

type registrationFixture struct {
	svc      *RegistrationService
	repo     *fakeRegistrationRepo
	events   *fakeEventRepo
	users    *fakeUserRepo
	payments *fakePaymentRepo
	gateway  *fakeGateway
	notifier *fakeNotifier
}

func newRegistrationFixture(event domain.Event) *registrationFixture {
	f := &registrationFixture{
		repo: newFakeRegistrationRepo(),
		events: &fakeEventRepo{
			events: map[string]domain.Event{event.ID: event},
		},
		users: &fakeUserRepo{
			users: map[string]domain.User{
				"user-1234": {ID: "user-1234", Email: "army@example.com", Name: "Member One", Role: domain.RoleMember},
			},
		},
		payments: &fakePaymentRepo{},
		gateway:  &fakeGateway{},
		notifier: newFakeNotifier(),
	}
	f.svc = NewRegistrationService(f.repo, f.events, f.users, f.payments, f.gateway, f.notifier)

	return f
}

func freeEvent() domain.Event {
	return domain.Event{
		ID:        "event-5678",
		Name:      "Community Meetup",
		StartDate: time.Date(2026, 9, 12, 15, 4, 0, 0, time.UTC),
		Location:  "Community Hall, Mumbai",
		Capacity:  100,
	}
}

func paidEvent() domain.Event {
	event := freeEvent()
	event.TicketPrice = 499

	return event
}

func TestRegisterForEvent_FreeEvent_AutoApproved(t *testing.T) {
	f := newRegistrationFixture(freeEvent())

	result, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.NoError(t, err)
	require.False(t, result.RequiresPayment)
	require.Equal(t, domain.StatusApproved, result.Registration.Status)
	require.NotEmpty(t, result.Registration.ID)
	require.Empty(t, f.notifier.pending, "auto-approved registrations send no pending email")
}

func TestRegisterForEvent_RequireApproval_PendingWithEmail(t *testing.T) {
	event := freeEvent()
	event.RequireApproval = true
	f := newRegistrationFixture(event)

	result, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusPending, result.Registration.Status)
	require.Equal(t, []string{"army@example.com"}, f.notifier.pending)
}

func TestRegisterForEvent_PaidEvent_ReturnsPaymentOrder(t *testing.T) {
	f := newRegistrationFixture(paidEvent())

	result, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.NoError(t, err)
	require.True(t, result.RequiresPayment)
	require.Equal(t, "order_test_1", result.Order.ID)
	require.Equal(t, "rzp_test_key", result.GatewayKeyID)

	require.Equal(t, int64(49900), f.gateway.lastAmount, "amount is in minor units")
	require.Equal(t, domain.PaymentCurrency, f.gateway.lastCurrency)
	require.Equal(t, "event-5678", f.gateway.lastNotes["eventId"])
	require.Equal(t, "user-1234", f.gateway.lastNotes["userId"])

	require.Empty(t, f.repo.stored, "no registration is written until payment settles")
	require.Empty(t, f.payments.created)
}

func TestRegisterForEvent_ReceiptShape(t *testing.T) {
	f := newRegistrationFixture(paidEvent())

	_, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.NoError(t, err)

	receipt := f.gateway.lastReceipt
	require.True(t, strings.HasPrefix(receipt, "r_even"), "receipt starts with r_ and the truncated event id")
	require.LessOrEqual(t, len(receipt), payment.MaxReceiptLen)
}

func TestRegisterForEvent_PaidEvent_WithPaymentID(t *testing.T) {
	f := newRegistrationFixture(paidEvent())

	result, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:    "user-1234",
		EventID:   "event-5678",
		PaymentID: "pay_abc123",
	})
	require.NoError(t, err)
	require.False(t, result.RequiresPayment)
	require.Equal(t, domain.StatusApproved, result.Registration.Status)

	require.Len(t, f.payments.created, 1)
	record := f.payments.created[0]
	require.Equal(t, "pay_abc123", record.GatewayPaymentID)
	require.Equal(t, int64(499), record.Amount)
	require.Equal(t, domain.PaymentCompleted, record.Status)
	require.Equal(t, record.ID, result.Registration.PaymentID)
}

func TestRegisterForEvent_PaymentResolutionIsIdempotent(t *testing.T) {
	f := newRegistrationFixture(paidEvent())

	first, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:    "user-1234",
		EventID:   "event-5678",
		PaymentID: "pay_abc123",
	})
	require.NoError(t, err)

	// A retry with the same gateway payment must not mint a second record.
	require.NoError(t, f.repo.Delete(context.Background(), first.Registration.ID))
	second, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:    "user-1234",
		EventID:   "event-5678",
		PaymentID: "pay_abc123",
	})
	require.NoError(t, err)
	require.Len(t, f.payments.created, 1)
	require.Equal(t, first.Registration.PaymentID, second.Registration.PaymentID)
}

func TestRegisterForEvent_EventFull(t *testing.T) {
	event := freeEvent()
	event.Capacity = 2
	f := newRegistrationFixture(event)
	f.events.registered = 2

	_, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.ErrorIs(t, err, ErrEventFull)
}

func TestRegisterForEvent_AlreadyRegistered(t *testing.T) {
	f := newRegistrationFixture(freeEvent())

	_, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.NoError(t, err)

	_, err = f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterForEvent_DuplicateRaceSurfacesAlreadyRegistered(t *testing.T) {
	f := newRegistrationFixture(freeEvent())
	// Pre-check passes but the unique index rejects the insert.
	f.repo.createErr = repository.ErrAlreadyRegistered

	_, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterForEvent_UnknownUserAndEvent(t *testing.T) {
	f := newRegistrationFixture(freeEvent())

	_, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "no-such-user",
		EventID: "event-5678",
	})
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "no-such-event",
	})
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestRegisterForEvent_GatewayFailure(t *testing.T) {
	f := newRegistrationFixture(paidEvent())
	f.gateway.err = errors.New("gateway down")

	_, err := f.svc.RegisterForEvent(context.Background(), RegisterInput{
		UserID:  "user-1234",
		EventID: "event-5678",
	})
	require.ErrorIs(t, err, ErrPaymentGateway)
	require.Empty(t, f.repo.stored)
}

func seedRegistration(f *registrationFixture, status domain.ReviewStatus, location string) domain.Registration {
	registration := domain.Registration{
		ID:      "reg-1",
		UserID:  "user-1234",
		EventID: "event-5678",
		Status:  status,
		User: domain.UserSummary{
			ID:    "user-1234",
			Email: "army@example.com",
			Name:  "Member One",
		},
		Event: domain.Event{
			ID:        "event-5678",
			Name:      "Community Meetup",
			StartDate: time.Date(2026, 9, 12, 15, 4, 0, 0, time.UTC),
			Location:  location,
		},
	}
	f.repo.stored[registration.ID] = registration

	return registration
}

func TestUpdateStatus_UnknownStatusRejected(t *testing.T) {
	f := newRegistrationFixture(freeEvent())
	seedRegistration(f, domain.StatusPending, "Community Hall, Mumbai")

	_, err := f.svc.UpdateStatus(context.Background(), "reg-1", "WAITLISTED", "")
	require.ErrorIs(t, err, ErrUnknownStatus)

	_, err = f.svc.UpdateStatus(context.Background(), "reg-1", "approved", "")
	require.ErrorIs(t, err, ErrUnknownStatus, "status values are case sensitive")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newRegistrationFixture(freeEvent())

	_, err := f.svc.UpdateStatus(context.Background(), "missing", string(domain.StatusApproved), "")
	require.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestUpdateStatus_Approved_OfflineEventGetsEntryPass(t *testing.T) {
	f := newRegistrationFixture(freeEvent())
	seedRegistration(f, domain.StatusPending, "Community Hall, Mumbai")

	updated, err := f.svc.UpdateStatus(context.Background(), "reg-1", string(domain.StatusApproved), "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, updated.Status)

	require.Len(t, f.notifier.approved, 1)
	email := f.notifier.approved[0]
	require.Equal(t, "army@example.com", email.to)
	require.True(t, email.offline)
	require.Equal(t, "Saturday, September 12, 2026 at 3:04 PM", email.date)
}

func TestUpdateStatus_Approved_OnlineEventSkipsEntryPass(t *testing.T) {
	f := newRegistrationFixture(freeEvent())
	seedRegistration(f, domain.StatusPending, "Zoom (link to follow)")

	_, err := f.svc.UpdateStatus(context.Background(), "reg-1", string(domain.StatusApproved), "")
	require.NoError(t, err)
	require.Len(t, f.notifier.approved, 1)
	require.False(t, f.notifier.approved[0].offline)
}

func TestUpdateStatus_Rejected_DefaultReason(t *testing.T) {
	f := newRegistrationFixture(freeEvent())
	seedRegistration(f, domain.StatusPending, "Community Hall, Mumbai")

	_, err := f.svc.UpdateStatus(context.Background(), "reg-1", string(domain.StatusRejected), "")
	require.NoError(t, err)
	require.Equal(t, []string{"No specific reason provided."}, f.notifier.rejected)
}

func TestUpdateStatus_EmailFailureDoesNotFailOperation(t *testing.T) {
	f := newRegistrationFixture(freeEvent())
	f.notifier.deliver = false
	seedRegistration(f, domain.StatusPending, "Community Hall, Mumbai")

	updated, err := f.svc.UpdateStatus(context.Background(), "reg-1", string(domain.StatusApproved), "")
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, updated.Status)
}

func TestIsOfflineEvent(t *testing.T) {
	tests := []struct {
		location string
		offline  bool
	}{
		{"Community Hall, Mumbai", true},
		{"Marine Drive Amphitheatre", true},
		{"Online", false},
		{"ONLINE event", false},
		{"Virtual meetup", false},
		{"Zoom (link to follow)", false},
		{"Microsoft Teams", false},
		{"Google Meet", false},
		{"Webinar series", false},
		{"Remote session", false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.offline, IsOfflineEvent(tt.location), "location %q", tt.location)
	}
}

func TestBuildReceipt(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	receipt := buildReceipt("event-5678", "user-1234", now)
	require.True(t, strings.HasPrefix(receipt, "r_evenuser"))
	require.Len(t, receipt, 2+4+4+8)
	require.LessOrEqual(t, len(receipt), payment.MaxReceiptLen)

	// Short identifiers are kept whole.
	short := buildReceipt("ab", "cd", now)
	require.True(t, strings.HasPrefix(short, "r_abcd"))
}
