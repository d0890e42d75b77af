package galleries

type CreateGalleryRequest struct {
	Name     string  `json:"name" binding:"required"`
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Location string  `json:"location"`
	UserID   string  `json:"userId" binding:"required,uuid"`
}

type UpdateGalleryRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
}
