package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"todo/internal/auth"
	"todo/internal/models"
	"todo/internal/repositories"
	"todo/internal/validation"
)

// TokenTTL is the lifetime of a session token issued at login.
const TokenTTL = 2 * time.Hour

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	Issue(identity auth.Identity, ttl time.Duration) (string, error)
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// AuthService handles business logic for signup and login.
type AuthService struct {
	userRepo  repositories.UserRepository
	hasher    PasswordHasher
	tokens    TokenIssuer
	publisher EventPublisher
}

// NewAuthService creates a new AuthService. publisher may be nil.
func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens TokenIssuer, publisher EventPublisher) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
	}
}

// NormalizeEmail trims and lower-cases an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new user and returns its public fields.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	switch {
	case name == "":
		return nil, validation.Errorf("name", "name is required")
	case email == "":
		return nil, validation.Errorf("email", "email is required")
	case password == "":
		return nil, validation.Errorf("password", "password is required")
	}

	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, validation.Errorf("password", "%s", err.Error())
	}
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	publishEvent(s.publisher, EventUserRegistered, user.ID, "")

	pub := user.Public()
	return &pub, nil
}

// Login authenticates a user and issues a session token. Unknown email and
// wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(auth.Identity{UserID: user.ID, Email: user.Email}, TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}
