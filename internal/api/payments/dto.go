package payments

type CreatePaymentRequest struct {
	Status            string  `json:"status" binding:"omitempty,oneof=PENDING PAID FAILED"`
	RefID             string  `json:"refId" binding:"required"`
	IsSuccessful      bool    `json:"isSuccessful"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	CommissionAmount  float64 `json:"commissionAmount" binding:"omitempty,gt=0"`
	CuratorCommission float64 `json:"curatorCommission" binding:"omitempty,gt=0"`
	ArtworkID         string  `json:"artworkId" binding:"required,uuid"`
	CollectorID       string  `json:"collectorId" binding:"required,uuid"`
}

type UpdatePaymentRequest struct {
	Status       *string `json:"status" binding:"omitempty,oneof=PENDING PAID FAILED"`
	IsSuccessful *bool   `json:"isSuccessful"`
}
