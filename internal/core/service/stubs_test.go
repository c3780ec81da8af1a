package service

import (
	"context"
	"time"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// stubUserRepo is a map-backed ports.UserRepository for service tests.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	m := make(map[string]*domain.User, len(users))
	for _, u := range users {
		m[u.ID] = u
	}
	return &stubUserRepo{users: m}
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) FindActiveByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.FindByID(ctx, id)
	if err != nil || u.IsDeleted {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByResetToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	for _, u := range s.users {
		if u.PasswordResetToken == tokenHash && !u.IsDeleted {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	cp := *u
	return &cp, nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.PasswordChangedAt = &changedAt
	return nil
}

func (s *stubUserRepo) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordResetToken = tokenHash
	u.PasswordResetExpires = &expires
	return nil
}

func (s *stubUserRepo) ClearResetToken(ctx context.Context, id string) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordResetToken = ""
	u.PasswordResetExpires = nil
	return nil
}

func (s *stubUserRepo) SetStatus(ctx context.Context, id string, status domain.UserStatus) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (s *stubUserRepo) SetRole(ctx context.Context, id string, role domain.Role) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (s *stubUserRepo) SoftDelete(ctx context.Context, id string) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsDeleted = true
	return nil
}

func (s *stubUserRepo) RecordLogin(ctx context.Context, id string, at time.Time) error {
	u, ok := s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.LastLoginAt = &at
	return nil
}

func (s *stubUserRepo) List(ctx context.Context, filters ports.UserFilters, opts ports.ListOptions) ([]domain.User, int64, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if u.IsDeleted {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

// stubDenylist is an in-memory ports.TokenDenylist.
type stubDenylist struct {
	revoked map[string]bool
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]bool)}
}

func (s *stubDenylist) Revoke(ctx context.Context, tokenID string, ttlSeconds int64) error {
	s.revoked[tokenID] = true
	return nil
}

func (s *stubDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.revoked[tokenID], nil
}

// stubMailer records password reset sends.
type stubMailer struct {
	sentTo []string
	tokens []string
}

func (s *stubMailer) SendPasswordReset(ctx context.Context, to, name, resetToken string) error {
	s.sentTo = append(s.sentTo, to)
	s.tokens = append(s.tokens, resetToken)
	return nil
}
