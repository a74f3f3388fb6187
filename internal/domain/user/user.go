package user

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"crest/internal/shared/constants"
)

// User is a platform account. Staff roles (admin, moderator, staff) form
// the back-office audience; everyone else is a regular user. Moderation
// account actions land here: suspension with expiry, an open-ended
// read-only flag, and soft deactivation.
type User struct {
	id             uint
	email          string
	displayName    string
	passwordHash   string
	role           string
	active         bool
	readonly       bool
	suspendedUntil *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewUser(email, displayName, password, role string) (*User, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(displayName) == 0 {
		return nil, fmt.Errorf("display name is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	return &User{
		email:        email,
		displayName:  displayName,
		passwordHash: string(hash),
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	email string,
	displayName string,
	passwordHash string,
	role string,
	active bool,
	readonly bool,
	suspendedUntil *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:             id,
		email:          email,
		displayName:    displayName,
		passwordHash:   passwordHash,
		role:           role,
		active:         active,
		readonly:       readonly,
		suspendedUntil: suspendedUntil,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func isValidRole(role string) bool {
	switch role {
	case constants.RoleAdmin, constants.RoleModerator, constants.RoleStaff, constants.RoleUser:
		return true
	}
	return false
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() string {
	return u.role
}

func (u *User) Active() bool {
	return u.active
}

func (u *User) Readonly() bool {
	return u.readonly
}

func (u *User) SuspendedUntil() *time.Time {
	return u.suspendedUntil
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) IsAdmin() bool {
	return u.role == constants.RoleAdmin
}

// IsStaff reports whether the user belongs to the back-office audience.
func (u *User) IsStaff() bool {
	switch u.role {
	case constants.RoleAdmin, constants.RoleModerator, constants.RoleStaff:
		return true
	}
	return false
}

// IsSuspended checks the suspension lazily; an elapsed suspension no
// longer counts even if the stored field has not been cleared.
func (u *User) IsSuspended() bool {
	return u.suspendedUntil != nil && u.suspendedUntil.After(time.Now().UTC())
}

func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

// Suspend deactivates the account until the given time.
func (u *User) Suspend(until time.Time) error {
	if !until.After(time.Now().UTC()) {
		return fmt.Errorf("suspension end must be in the future")
	}

	u.suspendedUntil = &until
	u.active = false
	u.updatedAt = time.Now().UTC()
	return nil
}

// LiftSuspension clears a suspension and reactivates the account,
// typically after an accepted appeal.
func (u *User) LiftSuspension() {
	u.suspendedUntil = nil
	u.active = true
	u.updatedAt = time.Now().UTC()
}

// MakeReadonly sets the open-ended read-only flag. There is no automatic
// expiry; only staff intervention clears it.
func (u *User) MakeReadonly() {
	u.readonly = true
	u.updatedAt = time.Now().UTC()
}

func (u *User) ClearReadonly() {
	u.readonly = false
	u.updatedAt = time.Now().UTC()
}

// Deactivate soft-deletes the account. The row survives for audit
// purposes; actual data removal is an out-of-band process.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now().UTC()
}
