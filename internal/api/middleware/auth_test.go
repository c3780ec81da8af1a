package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
	"github.com/visapro/visapro-api/internal/core/service"
)

const (
	testSecret       = "middleware-test-secret"
	testSuperAdminID = "000000000000000000000001"
)

// userStore is a minimal ports.UserRepository: only FindByID matters to the
// auth gate, everything else is unreachable from these tests.
type userStore struct {
	users map[string]*domain.User
}

func (s *userStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *userStore) FindActiveByID(ctx context.Context, id string) (*domain.User, error) {
	return s.FindByID(ctx, id)
}

func (s *userStore) FindByEmailWithPassword(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *userStore) FindByResetToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *userStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return user, nil
}

func (s *userStore) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *userStore) UpdatePassword(ctx context.Context, id, hash string, at time.Time) error {
	return nil
}
func (s *userStore) SetResetToken(ctx context.Context, id, hash string, exp time.Time) error {
	return nil
}
func (s *userStore) ClearResetToken(ctx context.Context, id string) error                { return nil }
func (s *userStore) SetStatus(ctx context.Context, id string, st domain.UserStatus) error { return nil }
func (s *userStore) SetRole(ctx context.Context, id string, role domain.Role) error      { return nil }
func (s *userStore) SoftDelete(ctx context.Context, id string) error                     { return nil }
func (s *userStore) RecordLogin(ctx context.Context, id string, at time.Time) error      { return nil }

func (s *userStore) List(ctx context.Context, f ports.UserFilters, o ports.ListOptions) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func newTestGate(users ...*domain.User) *service.AuthGate {
	store := &userStore{users: make(map[string]*domain.User)}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return service.NewAuthGate(store, testSecret, testSuperAdminID)
}

func mintToken(t *testing.T, user *domain.User) string {
	t.Helper()
	issuer := service.NewTokenIssuer(testSecret, "other-secret", 0, 0)
	pair, err := issuer.IssuePair(user)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	return pair.AccessToken
}

func doRequest(gate *service.AuthGate, authHeader string, mws ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return rec, h(c)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	gate := newTestGate()

	_, err := doRequest(gate, "", Authenticate(gate))
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	gate := newTestGate()

	for _, header := range []string{"Basic abc", "Bearer", "bearer-token"} {
		_, err := doRequest(gate, header, Authenticate(gate))
		if !errors.Is(err, domain.ErrMissingCredential) {
			t.Fatalf("header %q: expected ErrMissingCredential, got %v", header, err)
		}
	}
}

func TestAuthenticate_InjectsIdentity(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusActive}
	gate := newTestGate(user)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, user))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got domain.Identity
	h := Authenticate(gate)(func(c echo.Context) error {
		ident, ok := Identity(c)
		if !ok {
			t.Fatal("identity missing from context")
		}
		got = ident
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if got.UserID != "u1" || got.Role != domain.RoleUser {
		t.Fatalf("unexpected identity: %+v", got)
	}
}

func TestAuthenticate_BlockedUser(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusBlocked}
	gate := newTestGate(user)

	_, err := doRequest(gate, "Bearer "+mintToken(t, user), Authenticate(gate))
	if !errors.Is(err, domain.ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}
}

func TestRequireRoles(t *testing.T) {
	admin := &domain.User{ID: "a1", Email: "adm@b.c", Role: domain.RoleAdmin, Status: domain.StatusActive}
	user := &domain.User{ID: "u1", Email: "usr@b.c", Role: domain.RoleUser, Status: domain.StatusActive}
	gate := newTestGate(admin, user)

	adminGate := []echo.MiddlewareFunc{Authenticate(gate), RequireRoles(gate, domain.RoleAdmin, domain.RoleSuperAdmin)}

	rec, err := doRequest(gate, "Bearer "+mintToken(t, admin), adminGate...)
	if err != nil {
		t.Fatalf("admin should pass: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	_, err = doRequest(gate, "Bearer "+mintToken(t, user), adminGate...)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("user at admin gate: expected ErrForbidden, got %v", err)
	}
}

// The super-admin subject passes the admin gate with no record in the store.
func TestRequireRoles_SuperAdminBypass(t *testing.T) {
	gate := newTestGate()
	superAdmin := &domain.User{ID: testSuperAdminID, Email: "root@b.c", Role: domain.RoleSuperAdmin}

	rec, err := doRequest(gate, "Bearer "+mintToken(t, superAdmin),
		Authenticate(gate), RequireRoles(gate, domain.RoleAdmin, domain.RoleSuperAdmin))
	if err != nil {
		t.Fatalf("superadmin should pass: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOptionalAuth(t *testing.T) {
	user := &domain.User{ID: "u1", Email: "a@b.c", Role: domain.RoleUser, Status: domain.StatusActive}
	gate := newTestGate(user)

	// Anonymous request passes with no identity.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := OptionalAuth(gate)(func(c echo.Context) error {
		if _, ok := Identity(c); ok {
			t.Fatal("anonymous request must not carry an identity")
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("anonymous: %v", err)
	}

	// Invalid token is treated as anonymous, not rejected.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	c = e.NewContext(req, httptest.NewRecorder())
	if err := h(c); err != nil {
		t.Fatalf("invalid token on optional route: %v", err)
	}

	// Valid token attaches the identity.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, user))
	c = e.NewContext(req, httptest.NewRecorder())
	h = OptionalAuth(gate)(func(c echo.Context) error {
		ident, ok := Identity(c)
		if !ok || ident.UserID != "u1" {
			t.Fatalf("expected identity for valid token, got ok=%v ident=%+v", ok, ident)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("valid token: %v", err)
	}
}
