package collectors

// ---------- requests

type CreateCollectorRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	UserID string `json:"userId" binding:"required,uuid"`
}

// UpdateCollectorRequest carries the only mutable fields. Identity and user
// linkage are fixed at creation; omitted fields are left untouched.
type UpdateCollectorRequest struct {
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
}
