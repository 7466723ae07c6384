package models

import (
	"time"
)

// Roles a user account can hold.
const (
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	Role      string    `gorm:"size:20;not null;default:merchant" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Hotels []Hotel `gorm:"foreignKey:MerchantID" json:"-"`
}

func ValidRole(role string) bool {
	return role == RoleMerchant || role == RoleAdmin
}
