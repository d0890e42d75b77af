package profiles

import (
	"time"

	"artmarket-api/internal/domain/billing"
	"artmarket-api/internal/domain/users"
)

// CollectorProfile is a marketplace participant who purchases artworks.
// The identifier is generated by the store and immutable; only Bio and
// Website may change after creation.
type CollectorProfile struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`

	Bio     *string `json:"bio,omitempty"`
	Website *string `json:"website,omitempty"`

	IsVerified bool `gorm:"not null;default:false" json:"isVerified"`

	UserID string     `gorm:"type:uuid;not null;index" json:"userId"`
	User   users.User `gorm:"constraint:OnUpdate:CASCADE;" json:"user,omitempty"`

	// Deleting a collector leaves its payments in place.
	Purchases []billing.Payment `gorm:"foreignKey:CollectorID" json:"purchases"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
