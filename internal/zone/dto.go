// AngelaMos | 2026
// dto.go

package zone

type CreateZoneRequest struct {
	Name       string `json:"name"       validate:"required,min=2,max=100"`
	Department string `json:"department" validate:"required,min=2,max=100"`
}

type UpdateZoneRequest struct {
	Name       *string `json:"name,omitempty"       validate:"omitempty,min=2,max=100"`
	Department *string `json:"department,omitempty" validate:"omitempty,min=2,max=100"`
	IsActive   *bool   `json:"is_active,omitempty"`
}
