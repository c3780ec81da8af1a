package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// UserServiceImpl implements ports.UserService: profile access for the
// account owner, and account administration for admins.
type UserServiceImpl struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserServiceImpl {
	return &UserServiceImpl{repo: repo, logger: logger}
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindActiveByID(ctx, userID)
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, upd ports.ProfileUpdate) (*domain.User, error) {
	if upd.FirstName != nil {
		v := sanitizePlain(*upd.FirstName)
		upd.FirstName = &v
	}
	if upd.LastName != nil {
		v := sanitizePlain(*upd.LastName)
		upd.LastName = &v
	}
	return s.repo.UpdateProfile(ctx, userID, upd)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context, filters ports.UserFilters, opts ports.ListOptions) ([]domain.User, ports.ListMeta, error) {
	opts = opts.Normalized("createdAt", defaultListLimit, maxListLimit)
	users, total, err := s.repo.List(ctx, filters, opts)
	if err != nil {
		return nil, ports.ListMeta{}, err
	}
	return users, ports.NewListMeta(opts, total), nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindActiveByID(ctx, id)
}

func (s *UserServiceImpl) ChangeStatus(ctx context.Context, id string, status domain.UserStatus) error {
	if _, err := s.repo.FindActiveByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("status", string(status)).Msg("user status changed")
	return s.repo.SetStatus(ctx, id, status)
}

// ChangeRole assigns a new role. The change only takes effect for tokens
// issued afterwards; outstanding sessions keep their claimed role.
func (s *UserServiceImpl) ChangeRole(ctx context.Context, id string, role domain.Role) error {
	if _, err := s.repo.FindActiveByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("role", string(role)).Msg("user role changed")
	return s.repo.SetRole(ctx, id, role)
}

// DeleteUser soft-deletes: the record stays for audit but the account can
// no longer authenticate.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.repo.FindActiveByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user soft-deleted")
	return s.repo.SoftDelete(ctx, id)
}
