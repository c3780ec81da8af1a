package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

const resetTokenTTL = 30 * time.Minute

// AuthService implements registration, login, and credential lifecycle.
type AuthService struct {
	repo       ports.UserRepository
	issuer     *TokenIssuer
	denylist   ports.TokenDenylist
	mailer     ports.Mailer
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	issuer *TokenIssuer,
	denylist ports.TokenDenylist,
	mailer ports.Mailer,
	bcryptCost int,
	logger zerolog.Logger,
) *AuthService {
	if bcryptCost <= 0 {
		bcryptCost = 12
	}
	return &AuthService{
		repo:       repo,
		issuer:     issuer,
		denylist:   denylist,
		mailer:     mailer,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a pending account with the default user role. Role
// escalation is an admin operation, never part of self-registration.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         domain.RoleUser,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the password and issues a token pair. Blocked and deleted
// accounts cannot log in even with a correct password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.User, error) {
	user, err := s.repo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidLogin
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidLogin
	}
	if user.Status == domain.StatusBlocked {
		return nil, nil, domain.ErrAccountBlocked
	}

	pair, err := s.issuer.IssuePair(user)
	if err != nil {
		return nil, nil, err
	}

	if err := s.repo.RecordLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.logger.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record login time")
	}

	return pair, user, nil
}

// Refresh exchanges a valid refresh token for a fresh pair, rotating the
// old token onto the denylist. A refresh token dies with logout, account
// deletion or blocking, and any password change after its issuance.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrInvalidCredential
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownSubject
		}
		return nil, err
	}
	if user.IsDeleted {
		return nil, domain.ErrAccountDeleted
	}
	if user.Status == domain.StatusBlocked {
		return nil, domain.ErrAccountBlocked
	}
	if claims.IssuedAt != nil && user.PasswordChangedAfter(claims.IssuedAt.Time) {
		return nil, domain.ErrPasswordChanged
	}

	pair, err := s.issuer.IssuePair(user)
	if err != nil {
		return nil, err
	}

	s.revokeClaims(ctx, claims)
	return pair, nil
}

// Logout denylists the refresh token for its remaining lifetime. An already
// invalid token is a no-op: logout never fails the client for a credential
// that could not be used anyway.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.issuer.ParseRefresh(refreshToken)
	if err != nil {
		return nil
	}
	s.revokeClaims(ctx, claims)
	return nil
}

func (s *AuthService) revokeClaims(ctx context.Context, claims *Claims) {
	if claims.ID == "" || claims.ExpiresAt == nil {
		return
	}
	ttl := int64(time.Until(claims.ExpiresAt.Time).Seconds())
	if ttl <= 0 {
		return
	}
	if err := s.denylist.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Warn().Err(err).Str("jti", claims.ID).Msg("failed to denylist refresh token")
	}
}

// ChangePassword verifies the current password before storing a new hash.
// The password-changed timestamp invalidates outstanding refresh tokens.
func (s *AuthService) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := s.repo.FindActiveByID(ctx, userID)
	if err != nil {
		return err
	}

	withHash, err := s.repo.FindByEmailWithPassword(ctx, user.Email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(withHash.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidLogin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, string(hash), time.Now().UTC())
}

// ForgotPassword issues a single-use reset token and mails it out. Unknown
// emails report success so the endpoint cannot enumerate accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmailWithPassword(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	expires := time.Now().UTC().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, hashResetToken(token), expires); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.FirstName, token); err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to send reset email")
		return err
	}
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.repo.FindByResetToken(ctx, hashResetToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenBad
		}
		return err
	}
	if user.PasswordResetExpires == nil || user.PasswordResetExpires.Before(time.Now().UTC()) {
		return domain.ErrResetTokenBad
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash), time.Now().UTC()); err != nil {
		return err
	}
	return s.repo.ClearResetToken(ctx, user.ID)
}

// hashResetToken stores reset tokens hashed at rest so a database leak does
// not expose live reset links.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
