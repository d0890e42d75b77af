package profiles

import (
	"time"

	"artmarket-api/internal/domain/users"
)

type GalleryProfile struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Name     string  `gorm:"not null" json:"name"`
	Bio      *string `json:"bio,omitempty"`
	Website  *string `json:"website,omitempty"`
	Location string  `json:"location,omitempty"`

	IsVerified bool `gorm:"not null;default:false" json:"isVerified"`

	UserID string     `gorm:"type:uuid;not null;index" json:"userId"`
	User   users.User `gorm:"constraint:OnUpdate:CASCADE;" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
