package request

type CreateLeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Company string `json:"company" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// UpdateLeadRequest is a partial update: absent fields are untouched,
// while an explicit empty notes string clears the notes.
type UpdateLeadRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}
