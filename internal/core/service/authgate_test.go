package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/visapro/visapro-api/internal/core/domain"
)

const (
	testAccessSecret  = "access-secret"
	testRefreshSecret = "refresh-secret"
	testSuperAdminID  = "000000000000000000000001"
)

func mintAccessToken(t *testing.T, user *domain.User) string {
	t.Helper()
	issuer := NewTokenIssuer(testAccessSecret, testRefreshSecret, 0, 0)
	pair, err := issuer.IssuePair(user)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	return pair.AccessToken
}

func TestAuthGate_MissingCredential(t *testing.T) {
	gate := NewAuthGate(newStubUserRepo(), testAccessSecret, testSuperAdminID)

	_, err := gate.Authenticate(context.Background(), "")
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestAuthGate_InvalidToken(t *testing.T) {
	gate := NewAuthGate(newStubUserRepo(), testAccessSecret, testSuperAdminID)

	for _, credential := range []string{
		"not-a-jwt",
		mintAccessTokenWithSecret(t, "wrong-secret"),
	} {
		_, err := gate.Authenticate(context.Background(), credential)
		if !errors.Is(err, domain.ErrInvalidCredential) {
			t.Fatalf("credential %q: expected ErrInvalidCredential, got %v", credential, err)
		}
	}
}

func mintAccessTokenWithSecret(t *testing.T, secret string) string {
	t.Helper()
	issuer := NewTokenIssuer(secret, testRefreshSecret, 0, 0)
	pair, err := issuer.IssuePair(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	return pair.AccessToken
}

func TestAuthGate_ExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer(testAccessSecret, testRefreshSecret, time.Nanosecond, 0)
	pair, err := issuer.IssuePair(&domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	time.Sleep(time.Millisecond)

	gate := NewAuthGate(newStubUserRepo(), testAccessSecret, testSuperAdminID)
	_, err = gate.Authenticate(context.Background(), pair.AccessToken)
	if !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential for expired token, got %v", err)
	}
}

func TestAuthGate_UnknownSubject(t *testing.T) {
	token := mintAccessToken(t, &domain.User{ID: "ghost", Email: "g@x.y", Role: domain.RoleUser})

	gate := NewAuthGate(newStubUserRepo(), testAccessSecret, testSuperAdminID)
	_, err := gate.Authenticate(context.Background(), token)
	if !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestAuthGate_DeletedAccount(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusActive, IsDeleted: true}
	gate := NewAuthGate(newStubUserRepo(user), testAccessSecret, testSuperAdminID)

	_, err := gate.Authenticate(context.Background(), mintAccessToken(t, user))
	if !errors.Is(err, domain.ErrAccountDeleted) {
		t.Fatalf("expected ErrAccountDeleted, got %v", err)
	}
}

func TestAuthGate_BlockedAccount(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusBlocked}
	gate := NewAuthGate(newStubUserRepo(user), testAccessSecret, testSuperAdminID)

	_, err := gate.Authenticate(context.Background(), mintAccessToken(t, user))
	if !errors.Is(err, domain.ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}
}

func TestAuthGate_ValidUser(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusActive}
	gate := NewAuthGate(newStubUserRepo(user), testAccessSecret, testSuperAdminID)

	ident, err := gate.Authenticate(context.Background(), mintAccessToken(t, user))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if ident.UserID != "u1" || ident.Email != "a@b.c" || ident.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

// The role carried in the verified claims wins over the stored record: a
// role change only applies once a new token is issued.
func TestAuthGate_RoleFromClaims(t *testing.T) {
	stored := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusActive}
	gate := NewAuthGate(newStubUserRepo(stored), testAccessSecret, testSuperAdminID)

	claimed := *stored
	claimed.Role = domain.RoleAdmin
	ident, err := gate.Authenticate(context.Background(), mintAccessToken(t, &claimed))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if ident.Role != domain.RoleAdmin {
		t.Fatalf("expected role from claims (admin), got %q", ident.Role)
	}
}

// The reserved super-admin subject authenticates without a store lookup:
// the account is provisioned out-of-band and need not exist as a record.
func TestAuthGate_SuperAdminBypass(t *testing.T) {
	superAdmin := &domain.User{ID: testSuperAdminID, Email: "root@visapro.io", Role: domain.RoleSuperAdmin}
	gate := NewAuthGate(newStubUserRepo(), testAccessSecret, testSuperAdminID)

	ident, err := gate.Authenticate(context.Background(), mintAccessToken(t, superAdmin))
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if ident.Role != domain.RoleSuperAdmin {
		t.Fatalf("expected superadmin role, got %q", ident.Role)
	}
}

// The bypass requires both the reserved id and the superadmin role claim;
// the reserved id with a lesser role goes through the normal store lookup.
func TestAuthGate_SuperAdminIDWithoutRole(t *testing.T) {
	impostor := &domain.User{ID: testSuperAdminID, Email: "x@y.z", Role: domain.RoleUser}
	gate := NewAuthGate(newStubUserRepo(), testAccessSecret, testSuperAdminID)

	_, err := gate.Authenticate(context.Background(), mintAccessToken(t, impostor))
	if !errors.Is(err, domain.ErrUnknownSubject) {
		t.Fatalf("expected ErrUnknownSubject, got %v", err)
	}
}

func TestAuthGate_Authorize(t *testing.T) {
	gate := NewAuthGate(newStubUserRepo(), testAccessSecret, testSuperAdminID)
	admin := domain.Identity{UserID: "a", Role: domain.RoleAdmin}
	user := domain.Identity{UserID: "u", Role: domain.RoleUser}

	if err := gate.Authorize(admin, domain.RoleAdmin, domain.RoleSuperAdmin); err != nil {
		t.Fatalf("admin should pass admin gate: %v", err)
	}
	if err := gate.Authorize(user, domain.RoleAdmin, domain.RoleSuperAdmin); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("user at admin gate: expected ErrForbidden, got %v", err)
	}
	// Empty allowed set means "authenticated only".
	if err := gate.Authorize(user); err != nil {
		t.Fatalf("empty allowed set should pass: %v", err)
	}
}

func TestAuthGate_TryAuthenticate(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusActive}
	gate := NewAuthGate(newStubUserRepo(user), testAccessSecret, testSuperAdminID)

	if _, ok := gate.TryAuthenticate(context.Background(), "garbage"); ok {
		t.Fatal("garbage credential should not authenticate")
	}
	if _, ok := gate.TryAuthenticate(context.Background(), ""); ok {
		t.Fatal("empty credential should not authenticate")
	}
	ident, ok := gate.TryAuthenticate(context.Background(), mintAccessToken(t, user))
	if !ok || ident.UserID != "u1" {
		t.Fatalf("valid credential should authenticate, got ok=%v ident=%+v", ok, ident)
	}
}
