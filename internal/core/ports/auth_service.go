package ports

import (
	"context"

	"github.com/moviehub/movies-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// PasswordHasher abstracts one-way credential hashing so the service layer
// never touches the bcrypt API directly.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenIssuer creates signed access tokens from identity claims.
type TokenIssuer interface {
	Issue(claims domain.Claims) (string, error)
}

// TokenVerifier validates an access token and returns its embedded claims.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}
