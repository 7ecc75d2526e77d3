package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fmsuite/facility-admin/internal/auth"
	"github.com/fmsuite/facility-admin/internal/models"
	"github.com/fmsuite/facility-admin/internal/repo"
	"github.com/fmsuite/facility-admin/internal/store"
)

// UserService manages the user collection and login sessions.
type UserService struct {
	users       *repo.Collection[models.User]
	authService *auth.Service
}

// NewUserService creates a user service over a store.
func NewUserService(s store.Store, authService *auth.Service) *UserService {
	return &UserService{
		users:       repo.NewCollection[models.User](s, store.KeyUsers),
		authService: authService,
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.Load(ctx)
}

// FindByUsername returns one user by username.
func (s *UserService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// Register validates and creates a new user with a hashed password.
func (s *UserService) Register(ctx context.Context, username, email, password string, role models.Role, firstName, lastName string) (*models.User, error) {
	if err := s.authService.ValidateUsername(username); err != nil {
		return nil, &ValidationError{Field: "username", Message: err.Error()}
	}
	if err := s.authService.ValidateEmail(email); err != nil {
		return nil, &ValidationError{Field: "email", Message: err.Error()}
	}
	if err := s.authService.ValidatePassword(password); err != nil {
		return nil, &ValidationError{Field: "password", Message: err.Error()}
	}
	if !models.IsValidRole(role) {
		return nil, &ValidationError{Field: "role", Message: "is not a valid role"}
	}

	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return nil, &ValidationError{Field: "username", Message: "is already taken"}
		}
		if users[i].Email == email {
			return nil, &ValidationError{Field: "email", Message: "is already registered"}
		}
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	users = append(users, user)
	if err := s.users.Save(ctx, users); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"user_id": user.ID, "username": username, "role": role}).Info("Registered user")
	return &user, nil
}

// Login checks credentials and returns a session with tokens. The last
// login timestamp is updated on success.
func (s *UserService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range users {
		if users[i].Username == creds.Username {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, auth.ErrInvalidCredentials
	}

	user := users[idx]
	if !user.IsActive {
		return nil, auth.ErrUserInactive
	}
	if !s.authService.CheckPassword(creds.Password, user.PasswordHash) {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.authService.GenerateToken(&user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.authService.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	users[idx].LastLogin = &now
	users[idx].UpdatedAt = now
	if err := s.users.Save(ctx, users); err != nil {
		// Login still succeeds; the timestamp is best effort.
		log.WithError(err).Warn("Failed to update last login")
	}

	log.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("User logged in")
	return &models.Session{Token: token, RefreshToken: refreshToken, User: users[idx]}, nil
}

// Deactivate flags a user inactive without deleting the record.
func (s *UserService) Deactivate(ctx context.Context, id string) error {
	users, err := s.users.Load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].IsActive = false
			users[i].UpdatedAt = time.Now()
			if err := s.users.Save(ctx, users); err != nil {
				return err
			}
			log.WithFields(log.Fields{"user_id": id}).Info("Deactivated user")
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes a user by ID.
func (s *UserService) Delete(ctx context.Context, id string) error {
	users, err := s.users.Load(ctx)
	if err != nil {
		return err
	}

	filtered := users[:0]
	found := false
	for i := range users {
		if users[i].ID == id {
			found = true
			continue
		}
		filtered = append(filtered, users[i])
	}
	if !found {
		return ErrNotFound
	}
	if err := s.users.Save(ctx, filtered); err != nil {
		return err
	}
	log.WithFields(log.Fields{"user_id": id}).Info("Deleted user")
	return nil
}
