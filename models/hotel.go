package models

import (
	"time"

	"gorm.io/datatypes"
)

// Hotel listing lifecycle. Review moves pending to approved or rejected,
// toggle flips approved and offline.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusOffline  = "offline"
)

// RoomType is owned by its hotel and stored inside the hotel row as JSON.
// It has no identity of its own.
type RoomType struct {
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Facilities  []string `json:"facilities,omitempty"`
	Description string   `json:"description,omitempty"`
}

type Hotel struct {
	ID                  uint                          `gorm:"primaryKey" json:"id"`
	Name                string                        `gorm:"size:200;not null" json:"name"`
	NameEn              *string                       `gorm:"size:200" json:"name_en"`
	Address             string                        `gorm:"size:500;not null" json:"address"`
	Star                int                           `json:"star"`
	RoomTypes           datatypes.JSONSlice[RoomType] `gorm:"column:room_type" json:"room_type"`
	Price               float64                       `json:"price"`
	OpenDate            string                        `gorm:"size:10" json:"open_date"`
	Images              datatypes.JSONSlice[string]   `json:"images"`
	Tags                datatypes.JSONSlice[string]   `json:"tags"`
	Facilities          datatypes.JSONSlice[string]   `json:"facilities"`
	NearbyAttractions   *string                       `gorm:"type:text" json:"nearby_attractions"`
	Discount            *float64                      `json:"discount"`
	DiscountDescription *string                       `gorm:"size:500" json:"discount_description"`
	Status              string                        `gorm:"size:20;index;default:pending" json:"status"`
	RejectReason        *string                       `gorm:"size:500" json:"reject_reason"`
	MerchantID          uint                          `gorm:"index;not null" json:"merchant_id"`
	CreatedAt           time.Time                     `json:"created_at"`
	UpdatedAt           time.Time                     `json:"updated_at"`

	Merchant *User `gorm:"foreignKey:MerchantID" json:"merchant,omitempty"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected, StatusOffline:
		return true
	}
	return false
}

// MinRoomPrice returns the cheapest room type price. The boolean is false
// when the hotel has no room types.
func MinRoomPrice(rooms []RoomType) (float64, bool) {
	if len(rooms) == 0 {
		return 0, false
	}
	min := rooms[0].Price
	for _, r := range rooms[1:] {
		if r.Price < min {
			min = r.Price
		}
	}
	return min, true
}

// CanReview reports whether a review transition (approve/reject) applies.
func (h *Hotel) CanReview() bool {
	return h.Status == StatusPending
}

// CanToggle reports whether a publish/unpublish transition applies.
func (h *Hotel) CanToggle() bool {
	return h.Status == StatusApproved || h.Status == StatusOffline
}
