package auctions

import "time"

type CreateAuctionRequest struct {
	ArtworkID   string    `json:"artworkId" binding:"required,uuid"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	StartingBid float64   `json:"startingBid" binding:"required,gt=0"`
	Status      string    `json:"status" binding:"omitempty,oneof=UPCOMING ACTIVE ENDED"`
}

type UpdateAuctionRequest struct {
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	StartingBid *float64   `json:"startingBid" binding:"omitempty,gt=0"`
	Status      *string    `json:"status" binding:"omitempty,oneof=UPCOMING ACTIVE ENDED"`
}
