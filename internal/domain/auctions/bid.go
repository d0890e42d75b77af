package auctions

import "time"

type Bid struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Amount float64 `gorm:"not null" json:"amount"`

	// BidderID references a collector profile.
	BidderID  string `gorm:"type:uuid;not null;index" json:"bidderId"`
	AuctionID string `gorm:"type:uuid;not null;index" json:"auctionId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
