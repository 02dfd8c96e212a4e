// AngelaMos | 2026
// entity.go

package listing

import (
	"time"

	"github.com/locagram/locagram-api/internal/core"
)

// Listing is a unit of real estate published by a démarcheur. Prices are
// in FCFA. Category holds the slug of the category the listing was
// published under; UserID is never empty after creation.
type Listing struct {
	ID           string          `db:"id"           json:"id"`
	Title        string          `db:"title"        json:"title"`
	Description  string          `db:"description"  json:"description"`
	Price        int64           `db:"price"        json:"price"`
	Location     string          `db:"location"     json:"location"`
	City         string          `db:"city"         json:"city"`
	Category     string          `db:"category"     json:"category"`
	Images       core.StringList `db:"images"       json:"images"`
	Status       string          `db:"status"       json:"status"`
	Availability string          `db:"availability" json:"availability"`
	Negotiable   bool            `db:"negotiable"   json:"negotiable"`
	ContactPhone string          `db:"contact_phone" json:"contact_phone"`
	ContactEmail string          `db:"contact_email" json:"contact_email"`
	UserID       string          `db:"user_id"      json:"user_id"`
	LandArea     *float64        `db:"land_area"    json:"land_area,omitempty"`
	IsFurnished  bool            `db:"is_furnished" json:"is_furnished"`
	IsFeatured   bool            `db:"is_featured"  json:"is_featured"`
	Capacity     int             `db:"capacity"     json:"capacity"`
	Views        int             `db:"views"        json:"views"`
	Contacts     int             `db:"contacts"     json:"contacts"`
	CreatedAt    time.Time       `db:"created_at"   json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"   json:"updated_at"`

	Equipment
	Rooms
}

// Equipment flags a listing's amenities.
type Equipment struct {
	Wifi            bool `db:"wifi"             json:"wifi"`
	Balcony         bool `db:"balcony"          json:"balcony"`
	Pool            bool `db:"pool"             json:"pool"`
	Parking         bool `db:"parking"          json:"parking"`
	Security        bool `db:"security"         json:"security"`
	AirConditioning bool `db:"air_conditioning" json:"air_conditioning"`
}

// Rooms counts the rooms of a listing. Zero means unspecified.
type Rooms struct {
	Bedrooms    int `db:"bedrooms"     json:"bedrooms"`
	Bathrooms   int `db:"bathrooms"    json:"bathrooms"`
	LivingRooms int `db:"living_rooms" json:"living_rooms"`
	Kitchens    int `db:"kitchens"     json:"kitchens"`
}

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
	StatusSold     = "sold"
)

const (
	AvailabilityImmediate   = "immediate"
	AvailabilityFuture      = "future"
	AvailabilityNegotiable  = "negotiable"
	AvailabilityUnavailable = "unavailable"
)

func (l *Listing) IsActive() bool {
	return l.Status == StatusActive
}

// validTransitions lists the allowed status moves. Pending listings are
// released by moderation; active, inactive and sold move freely between
// each other so a sold listing can be relisted.
var validTransitions = map[string][]string{
	StatusPending:  {StatusActive, StatusInactive},
	StatusActive:   {StatusInactive, StatusSold},
	StatusInactive: {StatusActive, StatusSold},
	StatusSold:     {StatusActive, StatusInactive},
}

func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
