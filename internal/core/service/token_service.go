package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/moviehub/movies-api/internal/core/domain"
)

const defaultTokenTTL = 48 * time.Hour

// TokenService issues and verifies signed access tokens. It is stateless:
// every token is a pure function of (claims, secret, clock).
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token embedding the claims with expiry now + TTL.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	tc := &tokenClaims{
		Email: claims.Email,
		Role:  claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(s.secret)
}

// Verify parses the token and returns the embedded claims. Expiry maps to
// domain.ErrExpiredToken; every other parse or signature failure maps to
// domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	tc := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, tc, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{Email: tc.Email, Role: tc.Role}, nil
}
