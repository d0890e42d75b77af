package works

import (
	"time"

	"github.com/lib/pq"
)

const (
	TypeDigital  = "DIGITAL"
	TypePhysical = "PHYSICAL"
)

type Artwork struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`
	Type pq.StringArray `gorm:"type:text[]" json:"type"`

	Location string  `json:"location,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Depth    float64 `json:"depth,omitempty"`

	ArtistID  string `gorm:"type:uuid;not null;index" json:"artistId"`
	GalleryID string `gorm:"type:uuid;not null;index" json:"galleryId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
