package users

type CreateUserRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Phone     string   `json:"phone"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Avatar    string   `json:"avatar"`
	Roles     []string `json:"roles" binding:"omitempty,dive,oneof=USER ARTIST GALLERY COLLECTOR ADMIN"`
}

type UpdateUserRequest struct {
	Phone     *string `json:"phone"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Avatar    *string `json:"avatar"`
}
