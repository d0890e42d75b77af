package auctions

import (
	"time"

	"artmarket-api/internal/domain/works"
)

const (
	StatusUpcoming = "UPCOMING"
	StatusActive   = "ACTIVE"
	StatusEnded    = "ENDED"
)

type Auction struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ArtworkID string       `gorm:"type:uuid;not null;index" json:"artworkId"`
	Artwork   works.Artwork `gorm:"constraint:OnUpdate:CASCADE;" json:"artwork,omitempty"`

	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	StartingBid float64   `gorm:"not null" json:"startingBid"`

	Status string `gorm:"type:text;not null;default:'UPCOMING'" json:"status"`

	Bids []Bid `gorm:"constraint:OnDelete:CASCADE;" json:"bids,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
