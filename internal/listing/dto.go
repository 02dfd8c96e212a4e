// AngelaMos | 2026
// dto.go

package listing

type CreateListingRequest struct {
	Title        string   `json:"title"        validate:"required,min=3,max=200"`
	Description  string   `json:"description"  validate:"required,min=10,max=5000"`
	Price        int64    `json:"price"        validate:"required,gte=0"`
	Location     string   `json:"location"     validate:"required,min=2,max=200"`
	City         string   `json:"city"         validate:"required,min=2,max=100"`
	Category     string   `json:"category"     validate:"required,min=1,max=60"`
	Images       []string `json:"images"       validate:"max=6,dive,url"`
	Availability string   `json:"availability" validate:"required,oneof=immediate future negotiable unavailable"`
	Negotiable   bool     `json:"negotiable"`
	ContactPhone string   `json:"contact_phone" validate:"required,min=8,max=20"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email,max=255"`
	LandArea     *float64 `json:"land_area"    validate:"omitempty,gte=0"`
	IsFurnished  bool     `json:"is_furnished"`
	Capacity     int      `json:"capacity"     validate:"gte=0"`

	Equipment Equipment `json:"equipment"`
	Rooms     Rooms     `json:"rooms"`
}

type UpdateListingRequest struct {
	Title        *string  `json:"title,omitempty"        validate:"omitempty,min=3,max=200"`
	Description  *string  `json:"description,omitempty"  validate:"omitempty,min=10,max=5000"`
	Price        *int64   `json:"price,omitempty"        validate:"omitempty,gte=0"`
	Location     *string  `json:"location,omitempty"     validate:"omitempty,min=2,max=200"`
	City         *string  `json:"city,omitempty"         validate:"omitempty,min=2,max=100"`
	Images       []string `json:"images,omitempty"       validate:"omitempty,max=6,dive,url"`
	Availability *string  `json:"availability,omitempty" validate:"omitempty,oneof=immediate future negotiable unavailable"`
	Negotiable   *bool    `json:"negotiable,omitempty"`
	ContactPhone *string  `json:"contact_phone,omitempty" validate:"omitempty,min=8,max=20"`
	ContactEmail *string  `json:"contact_email,omitempty" validate:"omitempty,email,max=255"`
	LandArea     *float64 `json:"land_area,omitempty"    validate:"omitempty,gte=0"`
	IsFurnished  *bool    `json:"is_furnished,omitempty"`
	Capacity     *int     `json:"capacity,omitempty"     validate:"omitempty,gte=0"`

	Equipment *Equipment `json:"equipment,omitempty"`
	Rooms     *Rooms     `json:"rooms,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive pending sold"`
}

type SetFeaturedRequest struct {
	Featured bool `json:"featured"`
}
