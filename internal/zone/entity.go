// AngelaMos | 2026
// entity.go

package zone

import (
	"time"
)

// Zone is a geographic area listings can be attached to, typically a
// city or district grouped under a department.
type Zone struct {
	ID         string    `db:"id"         json:"id"`
	Name       string    `db:"name"       json:"name"`
	Department string    `db:"department" json:"department"`
	IsActive   bool      `db:"is_active"  json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
