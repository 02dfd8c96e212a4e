// AngelaMos | 2026
// dto.go

package content

type ContactRequest struct {
	Name    string `json:"name"    validate:"required,min=2,max=100"`
	Email   string `json:"email"   validate:"required,email,max=255"`
	Phone   string `json:"phone"   validate:"required,min=8,max=20"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}
