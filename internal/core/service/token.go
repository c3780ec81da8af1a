package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// Claims is the verified JWT payload: subject id, email, role, issued-at.
// Claims are trusted only after signature and expiry verification succeed.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs access and refresh tokens. The two use distinct secrets
// and lifetimes; refresh tokens additionally carry a jti so they can be
// denylisted individually on logout.
type TokenIssuer struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenIssuer applies the 1-day / 7-day defaults when the TTLs are unset.
func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenIssuer{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// IssuePair signs a fresh access/refresh pair for the user.
func (t *TokenIssuer) IssuePair(user *domain.User) (*ports.TokenPair, error) {
	now := t.now().UTC()

	access, err := t.sign(user, t.accessSecret, now, t.accessTTL, "")
	if err != nil {
		return nil, err
	}
	refresh, err := t.sign(user, t.refreshSecret, now, t.refreshTTL, uuid.NewString())
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (t *TokenIssuer) sign(user *domain.User, secret string, now time.Time, ttl time.Duration, jti string) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseRefresh verifies a refresh token against the refresh secret.
func (t *TokenIssuer) ParseRefresh(token string) (*Claims, error) {
	return parseToken(token, t.refreshSecret)
}

// parseToken verifies signature and expiry with the HS256 algorithm pinned;
// any failure collapses into ErrInvalidCredential.
func parseToken(token, secret string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredential
	}
	return claims, nil
}
