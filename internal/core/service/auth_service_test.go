package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/moviehub/movies-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = "id-" + user.Email
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newAuthService(repo *stubUserRepo) (*AuthService, *TokenService) {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, NewBcryptHasher(), tokens, zerolog.Nop()), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Name != "Test User" || user.Email != "test@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %s, got %s", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "password123" {
		t.Fatalf("expected password to be hashed")
	}
	if !NewBcryptHasher().Check("password123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Test User", "test@example.com", "password123"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Other Name", "test@example.com", "different"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthService(repo)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Email != "carol@example.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	_, err := svc.Login(context.Background(), "ghost@example.com", "password123")
	if !errors.Is(err, domain.ErrWrongEmail) {
		t.Fatalf("expected ErrWrongEmail, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials kind, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), "dave@example.com", "badpass")
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials kind, got %v", err)
	}
}

// Unknown email and wrong password must fail with the same error kind so a
// caller cannot probe which accounts exist.
func TestAuthService_Login_FailuresShareKind(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "Eve", "eve@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, unknownErr := svc.Login(context.Background(), "nobody@example.com", "goodpass")
	_, wrongErr := svc.Login(context.Background(), "eve@example.com", "badpass")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected both failures to share ErrInvalidCredentials: %v / %v", unknownErr, wrongErr)
	}
}
