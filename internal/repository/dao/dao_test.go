package dao

import (
	"context"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB starts a throwaway postgres container, migrates the schema
// and returns the connection. Skipped with -short.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=zuper_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if purgeErr := pool.Purge(resource); purgeErr != nil {
			log.Printf("could not purge resource: %v", purgeErr)
		}
	})

	dsn := fmt.Sprintf("host=localhost port=%v user=test password=test dbname=zuper_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})

		return openErr
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func insertTestUser(t *testing.T, userDAO *UserDAO, email string) User {
	t.Helper()
	user, err := userDAO.Insert(context.Background(), User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: "hashed",
		Name:     "Test User",
		Role:     "ARMY_MEMBER",
	})
	require.NoError(t, err)

	return user
}

func insertTestEvent(t *testing.T, eventDAO *EventDAO, creatorID string) Event {
	t.Helper()
	event, err := eventDAO.Insert(context.Background(), Event{
		ID:        uuid.NewString(),
		Name:      "Integration Meetup",
		StartDate: time.Now().Add(24 * time.Hour),
		EndDate:   time.Now().Add(28 * time.Hour),
		Location:  "Community Hall",
		Capacity:  10,
		CreatorID: creatorID,
	})
	require.NoError(t, err)

	return event
}

func TestUserDAO_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	userDAO := NewUserDAO(db)
	ctx := context.Background()

	user := insertTestUser(t, userDAO, "army@example.com")

	found, err := userDAO.FindByEmail(ctx, "army@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)

	_, err = userDAO.Insert(ctx, User{
		ID:       uuid.NewString(),
		Email:    "army@example.com",
		Password: "hashed",
		Name:     "Duplicate",
		Role:     "ARMY_MEMBER",
	})
	require.ErrorIs(t, err, ErrUserEmailExists)

	_, err = userDAO.FindByID(ctx, "missing")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegistrationDAO_UniqueUserEvent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := insertTestUser(t, NewUserDAO(db), "army@example.com")
	event := insertTestEvent(t, NewEventDAO(db), user.ID)
	registrationDAO := NewRegistrationDAO(db)

	first, err := registrationDAO.Insert(ctx, EventParticipant{
		ID:      uuid.NewString(),
		UserID:  user.ID,
		EventID: event.ID,
		Status:  "APPROVED",
	})
	require.NoError(t, err)

	_, err = registrationDAO.Insert(ctx, EventParticipant{
		ID:      uuid.NewString(),
		UserID:  user.ID,
		EventID: event.ID,
		Status:  "APPROVED",
	})
	require.ErrorIs(t, err, ErrAlreadyRegistered)

	found, err := registrationDAO.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, event.ID, found.EventID)
	require.Equal(t, user.Email, found.User.Email)
}

func TestPaymentDAO_GatewayIDUnique(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := insertTestUser(t, NewUserDAO(db), "army@example.com")
	event := insertTestEvent(t, NewEventDAO(db), user.ID)
	paymentDAO := NewPaymentDAO(db)

	first, err := paymentDAO.Insert(ctx, Payment{
		ID:               uuid.NewString(),
		Amount:           499,
		Currency:         "INR",
		Status:           "COMPLETED",
		GatewayPaymentID: "pay_abc123",
		UserID:           user.ID,
		EventID:          event.ID,
	})
	require.NoError(t, err)

	_, err = paymentDAO.Insert(ctx, Payment{
		ID:               uuid.NewString(),
		Amount:           499,
		Currency:         "INR",
		Status:           "COMPLETED",
		GatewayPaymentID: "pay_abc123",
		UserID:           user.ID,
		EventID:          event.ID,
	})
	require.ErrorIs(t, err, ErrPaymentExists)

	found, err := paymentDAO.FindByGatewayID(ctx, "pay_abc123")
	require.NoError(t, err)
	require.Equal(t, first.ID, found.ID)
}

func TestEventDAO_FindByIDEmbedsParticipants(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	creator := insertTestUser(t, NewUserDAO(db), "creator@example.com")
	attendee := insertTestUser(t, NewUserDAO(db), "attendee@example.com")
	eventDAO := NewEventDAO(db)
	event := insertTestEvent(t, eventDAO, creator.ID)

	_, err := NewRegistrationDAO(db).Insert(ctx, EventParticipant{
		ID:      uuid.NewString(),
		UserID:  attendee.ID,
		EventID: event.ID,
		Status:  "APPROVED",
	})
	require.NoError(t, err)

	found, err := eventDAO.FindByID(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, creator.Email, found.Creator.Email)
	require.Len(t, found.Participants, 1)
	require.Equal(t, "APPROVED", found.Participants[0].Status)
	require.Equal(t, attendee.Email, found.Participants[0].User.Email)
}

func TestEventDAO_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := insertTestUser(t, NewUserDAO(db), "army@example.com")
	eventDAO := NewEventDAO(db)
	event := insertTestEvent(t, eventDAO, user.ID)

	registrationDAO := NewRegistrationDAO(db)
	_, err := registrationDAO.Insert(ctx, EventParticipant{
		ID:      uuid.NewString(),
		UserID:  user.ID,
		EventID: event.ID,
		Status:  "APPROVED",
	})
	require.NoError(t, err)

	count, err := eventDAO.CountParticipants(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, eventDAO.Delete(ctx, event.ID))

	_, err = eventDAO.FindByID(ctx, event.ID)
	require.ErrorIs(t, err, ErrEventNotFound)

	count, err = eventDAO.CountParticipants(ctx, event.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}
