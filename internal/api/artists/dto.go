package artists

type CreateArtistRequest struct {
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
	UserID  string  `json:"userId" binding:"required,uuid"`
}

type UpdateArtistRequest struct {
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
}
