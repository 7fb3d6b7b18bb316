package leads

// CreateRequest is the public lead-capture payload; widgets post it
// without authentication.
type CreateRequest struct {
	BusinessID string `json:"businessId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	Message    string `json:"message"`
	Source     string `json:"source"`
}

// UpdateRequest carries optional field updates from the CRM; nil fields
// are left untouched.
type UpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
	Status  *string `json:"status" binding:"omitempty,oneof=new contacted hot warm cold converted"`
}
