package service

import (
	"context"
	"errors"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// AuthGate establishes request identity from a bearer credential and
// enforces role membership. It is read-only against the user store and
// stateless per invocation; every failure is terminal for the request and
// carries a distinct error kind for the HTTP layer to map.
type AuthGate struct {
	users        ports.UserRepository
	accessSecret string
	superAdminID string
}

// NewAuthGate wires the gate with its verification secret and the reserved
// super-administrator subject id. All three are injected so tests can run
// with fake stores and per-test secrets.
func NewAuthGate(users ports.UserRepository, accessSecret, superAdminID string) *AuthGate {
	return &AuthGate{users: users, accessSecret: accessSecret, superAdminID: superAdminID}
}

// Authenticate verifies the credential and resolves it to an Identity.
//
// The super-administrator bypass: when the verified subject equals the
// reserved id AND the claimed role is superadmin, the claims are treated as
// authoritative without a store lookup; that account is provisioned
// out-of-band and need not exist as a persisted record. No other identifier
// skips the database check.
func (g *AuthGate) Authenticate(ctx context.Context, credential string) (domain.Identity, error) {
	if credential == "" {
		return domain.Identity{}, domain.ErrMissingCredential
	}

	claims, err := parseToken(credential, g.accessSecret)
	if err != nil {
		return domain.Identity{}, err
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidCredential
	}

	ident := domain.Identity{UserID: claims.UserID, Email: claims.Email, Role: role}

	if claims.UserID == g.superAdminID && role == domain.RoleSuperAdmin {
		return ident, nil
	}

	user, err := g.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Identity{}, domain.ErrUnknownSubject
		}
		return domain.Identity{}, err
	}
	if user.IsDeleted {
		return domain.Identity{}, domain.ErrAccountDeleted
	}
	if user.Status == domain.StatusBlocked {
		return domain.Identity{}, domain.ErrAccountBlocked
	}

	// Role comes from the verified claims, not the record: a role change
	// takes effect on the next token issuance, not retroactively.
	return ident, nil
}

// Authorize fails with ErrForbidden when allowed is non-empty and the
// identity's role is not a member. An empty allowed set means
// "authenticated only".
func (g *AuthGate) Authorize(ident domain.Identity, allowed ...domain.Role) error {
	if len(allowed) == 0 {
		return nil
	}
	for _, r := range allowed {
		if ident.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}

// TryAuthenticate is Authenticate with every failure converted into "no
// identity", for routes that serve both guests and known users.
func (g *AuthGate) TryAuthenticate(ctx context.Context, credential string) (domain.Identity, bool) {
	ident, err := g.Authenticate(ctx, credential)
	if err != nil {
		return domain.Identity{}, false
	}
	return ident, true
}
