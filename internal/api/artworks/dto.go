package artworks

type CreateArtworkRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Type        []string `json:"type" binding:"omitempty,dive,oneof=DIGITAL PHYSICAL"`
	Location    string   `json:"location"`

	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`

	ArtistID  string `json:"artistId" binding:"required,uuid"`
	GalleryID string `json:"galleryId" binding:"required,uuid"`
}

type UpdateArtworkRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
	Location    *string  `json:"location"`

	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
	Width  *float64 `json:"width"`
	Depth  *float64 `json:"depth"`
}
