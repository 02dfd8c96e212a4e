// AngelaMos | 2026
// entity.go

package content

import (
	"time"
)

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	ID        string    `db:"id"         json:"id"`
	Name      string    `db:"name"       json:"name"`
	Email     string    `db:"email"      json:"email"`
	Phone     string    `db:"phone"      json:"phone"`
	Message   string    `db:"message"    json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type NewsletterSubscription struct {
	ID        string    `db:"id"         json:"id"`
	Email     string    `db:"email"      json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Testimonial and Benefit back the marketing sections of the site.
// They are served from a seeded set rather than a database table.
type Testimonial struct {
	ID     int    `json:"id"`
	Author string `json:"author"`
	Role   string `json:"role"`
	City   string `json:"city"`
	Quote  string `json:"quote"`
	Rating int    `json:"rating"`
	Avatar string `json:"avatar"`
}

type Benefit struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
