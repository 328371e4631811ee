package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/financehelper/internal/auth"
	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/internal/storage"
)

// ErrPasswordMismatch is returned when the confirmation differs from the password.
var ErrPasswordMismatch = errors.New("passwords do not match")

// RegisterInput is the registration form.
type RegisterInput struct {
	Email           string `json:"email"`
	DisplayName     string `json:"displayName"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Session is returned after a successful registration or login.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthService handles account registration, login and profile lookup.
type AuthService struct {
	authenticator auth.Authenticator
	users         storage.UserStorage
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, users storage.UserStorage, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account and opens a session.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	s.logger.Info("Register request", "email", in.Email)

	// Validate input
	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.DisplayName) == "" {
		return nil, invalidInput(errors.New("email and display name are required"))
	}
	if in.Password != in.ConfirmPassword {
		return nil, invalidInput(ErrPasswordMismatch)
	}

	user, err := s.authenticator.Register(ctx, in.Email, strings.TrimSpace(in.DisplayName), in.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", in.Email, "error", err)
		if errors.Is(err, auth.ErrWeakPassword) {
			return nil, invalidInput(err)
		}
		return nil, err
	}

	session, err := s.session(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User registered successfully", "user_id", user.ID, "email", user.Email)
	return session, nil
}

// Login authenticates a user and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	s.logger.Info("Login request", "email", email)

	if email == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return nil, auth.ErrInvalidCredentials
	}

	session, err := s.session(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in successfully", "user_id", user.ID, "email", user.Email)
	return session, nil
}

// Me returns the profile of the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, auth.ErrMissingToken
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, notFound("user", userID)
	}
	return user, nil
}

func (s *AuthService) session(user *models.User) (*Session, error) {
	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}
