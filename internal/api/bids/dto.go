package bids

type CreateBidRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	BidderID  string  `json:"bidderId" binding:"required,uuid"`
	AuctionID string  `json:"auctionId" binding:"required,uuid"`
}

type UpdateBidRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
}
