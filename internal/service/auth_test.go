package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zuper-events/zuper-api/internal/domain"
	"github.com/zuper-events/zuper-api/internal/repository"
)

type fakeAuthUserRepo struct {
	byID    map[string]domain.User
	byEmail map[string]domain.User
}

func newFakeAuthUserRepo() *fakeAuthUserRepo {
	return &fakeAuthUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeAuthUserRepo) Create(_ context.Context, user domain.User) (domain.User, error) {
	if _, exists := f.byEmail[user.Email]; exists {
		return domain.User{}, repository.ErrUserEmailExists
	}
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user

	return user, nil
}

func (f *fakeAuthUserRepo) FindByID(_ context.Context, id string) (domain.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeAuthUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}

	return user, nil
}

func (f *fakeAuthUserRepo) UpdatePassword(_ context.Context, id, hashedPassword string) error {
	user := f.byID[id]
	user.Password = hashedPassword
	f.byID[id] = user
	f.byEmail[user.Email] = user

	return nil
}

func TestSignup_HashesPasswordAndAssignsMemberRole(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{
		Name:     "Member One",
		Email:    "army@example.com",
		Password: "secret1234",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, domain.RoleMember, created.Role)
	require.NotEqual(t, "secret1234", created.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret1234")))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.User{Email: "army@example.com", Password: "secret1234"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.User{Email: "army@example.com", Password: "secret1234"})
	require.ErrorIs(t, err, ErrUserEmailExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{Email: "army@example.com", Password: "secret1234"})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), "army@example.com", "secret1234")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	_, err = svc.Login(context.Background(), "army@example.com", "wrong-pass")
	require.ErrorIs(t, err, ErrWrongPassword)

	// Unknown emails produce the same error as a bad password.
	_, err = svc.Login(context.Background(), "nobody@example.com", "secret1234")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := NewAuthService(repo)

	created, err := svc.Signup(context.Background(), domain.User{Email: "army@example.com", Password: "secret1234"})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), created.ID, "wrong-pass", "newsecret1")
	require.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), created.ID, "secret1234", "newsecret1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "army@example.com", "newsecret1")
	require.NoError(t, err)
}
