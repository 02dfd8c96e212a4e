// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/locagram/locagram-api/internal/core"
)

// User is a Locagram account: either a démarcheur (broker allowed to
// publish listings) or an administrator. Categories holds the category
// slugs the démarcheur is authorized to publish under.
type User struct {
	ID            string          `db:"id"`
	Email         string          `db:"email"`
	PasswordHash  string          `db:"password_hash"`
	Name          string          `db:"name"`
	Phone         string          `db:"phone"`
	Role          string          `db:"role"`
	Status        string          `db:"status"`
	Subscription  string          `db:"subscription"`
	Categories    core.StringList `db:"categories"`
	ListingsCount int             `db:"listings_count"`
	TokenVersion  int             `db:"token_version"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
	DeletedAt     *time.Time      `db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

const (
	RoleDemarcheur = "demarcheur"
	RoleAdmin      = "admin"
)

const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusPending   = "pending"
	StatusSuspended = "suspended"
)
