package users

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Email    string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password *string `gorm:"" json:"-"`

	Phone     string `json:"phone,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Avatar    string `json:"avatar,omitempty"`

	Roles pq.StringArray `gorm:"type:text[]" json:"roles"`

	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
