package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/visapro/visapro-api/internal/core/domain"
	"github.com/visapro/visapro-api/internal/core/ports"
)

// bcrypt cost 4 keeps the tests fast; production uses the configured cost.
const testBcryptCost = bcrypt.MinCost

func newTestAuthService(repo *stubUserRepo) (*AuthService, *stubDenylist, *stubMailer) {
	issuer := NewTokenIssuer(testAccessSecret, testRefreshSecret, 0, 0)
	denylist := newStubDenylist()
	mailer := &stubMailer{}
	svc := NewAuthService(repo, issuer, denylist, mailer, testBcryptCost, zerolog.Nop())
	return svc, denylist, mailer
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), testBcryptCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	repo := newStubUserRepo()
	svc, _, _ := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:     "new@visapro.io",
		Password:  "s3cret-pass",
		FirstName: "Nadia",
		LastName:  "Rahman",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default user role, got %q", user.Role)
	}
	if user.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %q", user.Status)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")) != nil {
		t.Fatal("stored hash does not match the password")
	}

	_, err = svc.Register(context.Background(), ports.RegisterInput{Email: "new@visapro.io", Password: "other"})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("duplicate email: expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	user := &domain.User{
		ID:           "u1",
		Email:        "a@visapro.io",
		PasswordHash: hashPassword(t, "correct-horse"),
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
	repo := newStubUserRepo(user)
	svc, _, _ := newTestAuthService(repo)

	pair, got, err := svc.Login(context.Background(), "a@visapro.io", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected a full token pair")
	}
	if got.ID != "u1" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if repo.users["u1"].LastLoginAt == nil {
		t.Fatal("expected login time to be recorded")
	}

	if _, _, err := svc.Login(context.Background(), "a@visapro.io", "wrong"); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Fatalf("wrong password: expected ErrInvalidLogin, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@visapro.io", "x"); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Fatalf("unknown email: expected ErrInvalidLogin, got %v", err)
	}
}

func TestAuthService_Login_Blocked(t *testing.T) {
	user := &domain.User{
		ID:           "u1",
		Email:        "a@visapro.io",
		PasswordHash: hashPassword(t, "correct-horse"),
		Status:       domain.StatusBlocked,
	}
	svc, _, _ := newTestAuthService(newStubUserRepo(user))

	_, _, err := svc.Login(context.Background(), "a@visapro.io", "correct-horse")
	if !errors.Is(err, domain.ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}
}

func TestAuthService_RefreshRotation(t *testing.T) {
	user := &domain.User{
		ID:           "u1",
		Email:        "a@visapro.io",
		PasswordHash: hashPassword(t, "pw"),
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
	svc, _, _ := newTestAuthService(newStubUserRepo(user))

	pair, _, err := svc.Login(context.Background(), "a@visapro.io", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if fresh.RefreshToken == pair.RefreshToken {
		t.Fatal("refresh must rotate the token")
	}

	// The consumed token is denylisted and cannot be replayed.
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("replayed token: expected ErrInvalidCredential, got %v", err)
	}
}

func TestAuthService_RefreshAfterLogout(t *testing.T) {
	user := &domain.User{
		ID:           "u1",
		Email:        "a@visapro.io",
		PasswordHash: hashPassword(t, "pw"),
		Status:       domain.StatusActive,
	}
	svc, _, _ := newTestAuthService(newStubUserRepo(user))

	pair, _, err := svc.Login(context.Background(), "a@visapro.io", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(context.Background(), pair.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential after logout, got %v", err)
	}

	// Logout with a garbage token is a silent no-op.
	if err := svc.Logout(context.Background(), "garbage"); err != nil {
		t.Fatalf("logout with invalid token should be a no-op, got %v", err)
	}
}

func TestAuthService_RefreshAfterPasswordChange(t *testing.T) {
	user := &domain.User{
		ID:           "u1",
		Email:        "a@visapro.io",
		PasswordHash: hashPassword(t, "old-pw"),
		Status:       domain.StatusActive,
	}
	repo := newStubUserRepo(user)
	svc, _, _ := newTestAuthService(repo)

	pair, _, err := svc.Login(context.Background(), "a@visapro.io", "old-pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// The issued-at second must be strictly before the change timestamp.
	time.Sleep(1100 * time.Millisecond)
	if err := svc.ChangePassword(context.Background(), "u1", "old-pw", "new-pw"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrPasswordChanged) {
		t.Fatalf("expected ErrPasswordChanged, got %v", err)
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	user := &domain.User{
		ID:           "u1",
		Email:        "a@visapro.io",
		PasswordHash: hashPassword(t, "old-pw"),
		Status:       domain.StatusActive,
	}
	svc, _, _ := newTestAuthService(newStubUserRepo(user))

	if err := svc.ChangePassword(context.Background(), "u1", "not-the-password", "new-pw"); !errors.Is(err, domain.ErrInvalidLogin) {
		t.Fatalf("expected ErrInvalidLogin, got %v", err)
	}
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	user := &domain.User{
		ID:           "u1",
		Email:        "a@visapro.io",
		FirstName:    "Nadia",
		PasswordHash: hashPassword(t, "old-pw"),
		Status:       domain.StatusActive,
	}
	repo := newStubUserRepo(user)
	svc, _, mailer := newTestAuthService(repo)

	if err := svc.ForgotPassword(context.Background(), "a@visapro.io"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if len(mailer.tokens) != 1 {
		t.Fatalf("expected one reset email, got %d", len(mailer.tokens))
	}
	// The raw token is mailed; only its hash is stored.
	if repo.users["u1"].PasswordResetToken == mailer.tokens[0] {
		t.Fatal("reset token must be stored hashed")
	}

	if err := svc.ResetPassword(context.Background(), mailer.tokens[0], "brand-new-pw"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.users["u1"].PasswordHash), []byte("brand-new-pw")) != nil {
		t.Fatal("new password not stored")
	}

	// The token is single-use.
	if err := svc.ResetPassword(context.Background(), mailer.tokens[0], "again"); !errors.Is(err, domain.ErrResetTokenBad) {
		t.Fatalf("reused token: expected ErrResetTokenBad, got %v", err)
	}
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	svc, _, mailer := newTestAuthService(newStubUserRepo())

	if err := svc.ForgotPassword(context.Background(), "nobody@visapro.io"); err != nil {
		t.Fatalf("unknown email must not error, got %v", err)
	}
	if len(mailer.sentTo) != 0 {
		t.Fatal("no email should be sent for an unknown address")
	}
}

func TestAuthService_ResetPassword_BadToken(t *testing.T) {
	svc, _, _ := newTestAuthService(newStubUserRepo())

	if err := svc.ResetPassword(context.Background(), "never-issued", "pw"); !errors.Is(err, domain.ErrResetTokenBad) {
		t.Fatalf("expected ErrResetTokenBad, got %v", err)
	}
}
