package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmsuite/facility-admin/internal/auth"
	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/store"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	authService, err := auth.NewService()
	require.NoError(t, err)
	return NewUserService(store.NewMemoryStore(), authService)
}

func TestUserService_RegisterHashesPassword(t *testing.T) {
	s := newUserService(t)

	user, err := s.Register(context.Background(), "kwame", "kwame@example.com", "secretpass1", models.RoleManager, "Kwame", "Mensah")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secretpass1", user.PasswordHash)
	assert.True(t, user.IsActive)
}

func TestUserService_RegisterValidation(t *testing.T) {
	s := newUserService(t)
	var vErr *ValidationError

	_, err := s.Register(context.Background(), "ab", "a@b.com", "secretpass1", models.RoleViewer, "", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "username", vErr.Field)

	_, err = s.Register(context.Background(), "kwame", "bad-email", "secretpass1", models.RoleViewer, "", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)

	_, err = s.Register(context.Background(), "kwame", "a@b.com", "short", models.RoleViewer, "", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "password", vErr.Field)

	_, err = s.Register(context.Background(), "kwame", "a@b.com", "secretpass1", "superuser", "", "")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "role", vErr.Field)
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	s := newUserService(t)

	_, err := s.Register(context.Background(), "kwame", "kwame@example.com", "secretpass1", models.RoleViewer, "", "")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "kwame", "other@example.com", "secretpass1", models.RoleViewer, "", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "username", vErr.Field)
}

func TestUserService_LoginSuccess(t *testing.T) {
	s := newUserService(t)

	_, err := s.Register(context.Background(), "adwoa", "adwoa@example.com", "secretpass1", models.RoleAdmin, "Adwoa", "Safo")
	require.NoError(t, err)

	session, err := s.Login(context.Background(), models.Credentials{Username: "adwoa", Password: "secretpass1"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.RefreshToken)
	assert.NotNil(t, session.User.LastLogin)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	s := newUserService(t)

	_, err := s.Register(context.Background(), "adwoa", "adwoa@example.com", "secretpass1", models.RoleAdmin, "", "")
	require.NoError(t, err)

	_, err = s.Login(context.Background(), models.Credentials{Username: "adwoa", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUserService_LoginInactiveUser(t *testing.T) {
	s := newUserService(t)

	user, err := s.Register(context.Background(), "adwoa", "adwoa@example.com", "secretpass1", models.RoleAdmin, "", "")
	require.NoError(t, err)
	require.NoError(t, s.Deactivate(context.Background(), user.ID))

	_, err = s.Login(context.Background(), models.Credentials{Username: "adwoa", Password: "secretpass1"})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestUserService_LoginUnknownUser(t *testing.T) {
	s := newUserService(t)
	_, err := s.Login(context.Background(), models.Credentials{Username: "ghost", Password: "whatever1"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestUserService_Delete(t *testing.T) {
	s := newUserService(t)

	user, err := s.Register(context.Background(), "adwoa", "adwoa@example.com", "secretpass1", models.RoleViewer, "", "")
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), user.ID))
	_, err = s.FindByUsername(context.Background(), "adwoa")
	assert.ErrorIs(t, err, ErrNotFound)
}
