// AngelaMos | 2026
// dto.go

package category

type CreateCategoryRequest struct {
	Name      string `json:"name"       validate:"required,min=2,max=60"`
	Icon      string `json:"icon"       validate:"omitempty,max=100"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
}

type UpdateCategoryRequest struct {
	Name      *string `json:"name,omitempty"       validate:"omitempty,min=2,max=60"`
	Icon      *string `json:"icon,omitempty"       validate:"omitempty,max=100"`
	IsActive  *bool   `json:"is_active,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,gte=0"`
}
