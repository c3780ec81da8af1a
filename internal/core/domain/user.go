package domain

import "time"

// Role is a closed enumeration. Free-form role strings are rejected at
// construction time via ParseRole so an unknown value can never silently
// fail a membership check at authorisation time.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// UserStatus is the moderation state of an account.
type UserStatus string

const (
	StatusActive  UserStatus = "active"
	StatusBlocked UserStatus = "blocked"
	StatusPending UserStatus = "pending"
)

// User models a persisted account. The password hash is stored under the
// "password" field for compatibility with the existing collection but is
// never serialised outward.
type User struct {
	ID              string     `json:"id" bson:"_id,omitempty"`
	Email           string     `json:"email" bson:"email"`
	PasswordHash    string     `json:"-" bson:"password"`
	FirstName       string     `json:"first_name" bson:"firstName"`
	LastName        string     `json:"last_name" bson:"lastName"`
	Phone           string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Avatar          string     `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Role            Role       `json:"role" bson:"role"`
	Status          UserStatus `json:"status" bson:"status"`
	IsEmailVerified bool       `json:"is_email_verified" bson:"isEmailVerified"`
	IsDeleted       bool       `json:"-" bson:"isDeleted"`

	// Password reset: the token stored here is a hash of the one mailed out.
	PasswordResetToken   string     `json:"-" bson:"passwordResetToken,omitempty"`
	PasswordResetExpires *time.Time `json:"-" bson:"passwordResetExpires,omitempty"`
	PasswordChangedAt    *time.Time `json:"-" bson:"passwordChangedAt,omitempty"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty" bson:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" bson:"updatedAt"`
}

// FullName joins the name parts for display.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// PasswordChangedAfter reports whether the password was changed after the
// given token issue time. Used to invalidate long-lived refresh credentials
// once a password rotates.
func (u *User) PasswordChangedAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return u.PasswordChangedAt.After(issuedAt)
}

// Identity is the verified result of authentication. Role comes from the
// token claims, not from the user record: role changes take effect on the
// next token issuance, never retroactively mid-session.
type Identity struct {
	UserID string
	Email  string
	Role   Role
}
