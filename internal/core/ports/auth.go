package ports

import (
	"context"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// TokenPair is the credential pair issued on login and refresh. The two
// tokens are signed with distinct secrets and lifetimes (1d access, 7d
// refresh by default).
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterInput carries the public registration payload.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// AuthService implements registration, login, and credential lifecycle.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
	// Refresh exchanges a valid refresh token for a fresh pair. Refresh
	// tokens are rejected after logout (denylist) or a password change.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout denylists the refresh token for its remaining lifetime.
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID, current, next string) error
	// ForgotPassword issues a reset token and hands it to the mailer. It
	// reports success even for unknown emails so the endpoint cannot be
	// used to enumerate accounts.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Mailer is the outbound email boundary. Delivery itself is an external
// collaborator; the core only hands it fully-formed messages.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, resetToken string) error
}

// TokenDenylist records revoked refresh tokens until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
