package businesses

// CreateRequest mirrors the onboarding form.
type CreateRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	Industry     string `json:"industry" binding:"required"`
}
