package ports

import (
	"context"
	"time"

	"github.com/visapro/visapro-api/internal/core/domain"
)

// UserRepository is the persistence interface for accounts.
//
// The soft-delete rule is explicit in the method set rather than hidden in a
// query hook: FindByID returns soft-deleted records (the auth gate needs to
// tell "deleted" apart from "gone"), every other read excludes them.
type UserRepository interface {
	// FindByID returns the record regardless of its soft-delete flag.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindActiveByID excludes soft-deleted records.
	FindActiveByID(ctx context.Context, id string) (*domain.User, error)
	// FindByEmailWithPassword excludes soft-deleted records and includes the
	// password hash, which other reads never populate.
	FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)
	// FindByResetToken looks up the account holding the given reset token hash.
	FindByResetToken(ctx context.Context, tokenHash string) (*domain.User, error)

	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string, changedAt time.Time) error
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	ClearResetToken(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.UserStatus) error
	SetRole(ctx context.Context, id string, role domain.Role) error
	SoftDelete(ctx context.Context, id string) error
	RecordLogin(ctx context.Context, id string, at time.Time) error

	List(ctx context.Context, filters UserFilters, opts ListOptions) ([]domain.User, int64, error)
}

// ProfileUpdate carries the user-editable profile fields. Nil means "leave
// unchanged".
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Avatar    *string
}

// UserFilters narrows the admin user listing.
type UserFilters struct {
	SearchTerm string
	Role       string
	Status     string
}

// UserService covers profile access and admin account management.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error)

	ListUsers(ctx context.Context, filters UserFilters, opts ListOptions) ([]domain.User, ListMeta, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ChangeStatus(ctx context.Context, id string, status domain.UserStatus) error
	ChangeRole(ctx context.Context, id string, role domain.Role) error
	DeleteUser(ctx context.Context, id string) error
}
