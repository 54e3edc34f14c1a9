package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviehub/movies-api/internal/core/domain"
	"github.com/moviehub/movies-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account with the USER role. The email must be
// unused; the password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// email and wrong password fail with the same error kind so the two cases
// cannot be told apart by status code.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrWrongEmail
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return "", domain.ErrWrongPassword
	}

	token, err := s.tokens.Issue(domain.Claims{Email: user.Email, Role: user.Role})
	if err != nil {
		return "", fmt.Errorf("login: issue token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("user logged in")
	return token, nil
}
