// AngelaMos | 2026
// entity.go

package category

import (
	"time"
)

// Category groups listings under a browsable heading. Slug is derived
// from Name at creation and doubles as the value stored in a
// démarcheur's authorized category set.
type Category struct {
	ID        string    `db:"id"         json:"id"`
	Slug      string    `db:"slug"       json:"slug"`
	Name      string    `db:"name"       json:"name"`
	Icon      string    `db:"icon"       json:"icon"`
	IsActive  bool      `db:"is_active"  json:"is_active"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
