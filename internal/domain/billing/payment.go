package billing

import (
	"time"

	"artmarket-api/internal/domain/works"
)

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
	StatusFailed  = "FAILED"
)

type Payment struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Status string `gorm:"type:text;not null;default:'PENDING'" json:"status"`

	// RefID is the payment-provider reference (Stripe session id for
	// checkout payments, synthetic for seeded rows).
	RefID        string `gorm:"uniqueIndex:idx_payments_ref_id" json:"refId"`
	IsSuccessful bool   `gorm:"not null;default:false" json:"isSuccessful"`

	Amount            float64 `gorm:"not null" json:"amount"`
	CommissionAmount  float64 `json:"commissionAmount"`
	CuratorCommission float64 `json:"curatorCommission"`

	ArtworkID string        `gorm:"type:uuid;not null;index" json:"artworkId"`
	Artwork   works.Artwork `gorm:"constraint:OnUpdate:CASCADE;" json:"artwork,omitempty"`

	// CollectorID references a collector profile; the profile side owns the
	// association to avoid a model import cycle.
	CollectorID string `gorm:"type:uuid;not null;index" json:"collectorId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
