package client

import "net/url"

// Roles a session user can hold.
const (
	RoleMerchant = "merchant"
	RoleAdmin    = "admin"
)

// ---- requests ----

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,passwd"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=merchant admin"`
}

type RoomTypeInput struct {
	Type        string   `json:"type" validate:"required"`
	Price       float64  `json:"price" validate:"min=0"`
	Facilities  []string `json:"facilities,omitempty"`
	Description string   `json:"description,omitempty"`
}

type CreateHotelRequest struct {
	Name                string          `json:"name" validate:"required,max=200"`
	NameEn              string          `json:"name_en,omitempty"`
	Address             string          `json:"address" validate:"required"`
	Star                int             `json:"star" validate:"required,min=1,max=5"`
	RoomTypes           []RoomTypeInput `json:"room_type" validate:"required,min=1,dive"`
	Price               float64         `json:"price" validate:"min=0"`
	OpenDate            string          `json:"open_date" validate:"required,datetime=2006-01-02"`
	Images              []string        `json:"images"`
	Tags                []string        `json:"tags,omitempty"`
	Facilities          []string        `json:"facilities,omitempty"`
	NearbyAttractions   string          `json:"nearby_attractions,omitempty"`
	Discount            *float64        `json:"discount,omitempty" validate:"omitempty,min=0,max=1"`
	DiscountDescription string          `json:"discount_description,omitempty"`
}

// UpdateHotelRequest is the partial edit body. Nil fields are omitted from
// the request and keep their server-side values.
type UpdateHotelRequest struct {
	Name                *string         `json:"name,omitempty" validate:"omitempty,max=200"`
	NameEn              *string         `json:"name_en,omitempty"`
	Address             *string         `json:"address,omitempty"`
	Star                *int            `json:"star,omitempty" validate:"omitempty,min=1,max=5"`
	RoomTypes           []RoomTypeInput `json:"room_type,omitempty" validate:"omitempty,min=1,dive"`
	Price               *float64        `json:"price,omitempty" validate:"omitempty,min=0"`
	OpenDate            *string         `json:"open_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Images              []string        `json:"images,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	Facilities          []string        `json:"facilities,omitempty"`
	NearbyAttractions   *string         `json:"nearby_attractions,omitempty"`
	Discount            *float64        `json:"discount,omitempty" validate:"omitempty,min=0,max=1"`
	DiscountDescription *string         `json:"discount_description,omitempty"`
}

// HotelQuery is the shared list filter. Zero page/limit are defaulted
// before validation, matching how callers usually omit them.
type HotelQuery struct {
	Page       int    `validate:"min=1"`
	Limit      int    `validate:"min=1,max=100"`
	Status     string `validate:"omitempty,oneof=pending approved rejected offline"`
	MerchantID uint
	StartDate  string `validate:"omitempty,datetime=2006-01-02"`
	EndDate    string `validate:"omitempty,datetime=2006-01-02"`
}

func (q *HotelQuery) applyDefaults() {
	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = 10
	}
}

func (q HotelQuery) values() url.Values {
	v := url.Values{}
	v.Set("page", itoa(q.Page))
	v.Set("limit", itoa(q.Limit))
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.MerchantID != 0 {
		v.Set("merchant_id", utoa(q.MerchantID))
	}
	if q.StartDate != "" {
		v.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		v.Set("end_date", q.EndDate)
	}
	return v
}

type ReviewHotelRequest struct {
	Action       string `json:"action" validate:"required,oneof=approve reject"`
	RejectReason string `json:"reject_reason,omitempty"`
}

type ToggleHotelRequest struct {
	Action string `json:"action" validate:"required,oneof=publish unpublish"`
}

// ---- responses ----

type User struct {
	ID        uint   `json:"id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=merchant admin"`
	CreatedAt string `json:"created_at"`
}

type AuthData struct {
	User  User   `json:"user" validate:"required"`
	Token string `json:"token" validate:"required"`
}

type ProfileData struct {
	User User `json:"user" validate:"required"`
}

type RoomType struct {
	Type        string   `json:"type"`
	Price       float64  `json:"price"`
	Facilities  []string `json:"facilities,omitempty"`
	Description string   `json:"description,omitempty"`
}

type Hotel struct {
	ID                  uint       `json:"id" validate:"required"`
	Name                string     `json:"name" validate:"required"`
	NameEn              *string    `json:"name_en"`
	Address             string     `json:"address"`
	Star                int        `json:"star"`
	RoomTypes           []RoomType `json:"room_type"`
	Price               float64    `json:"price"`
	OpenDate            string     `json:"open_date"`
	Images              []string   `json:"images"`
	Tags                []string   `json:"tags"`
	Facilities          []string   `json:"facilities"`
	NearbyAttractions   *string    `json:"nearby_attractions"`
	Discount            *float64   `json:"discount"`
	DiscountDescription *string    `json:"discount_description"`
	Status              string     `json:"status" validate:"required,oneof=pending approved rejected offline"`
	RejectReason        *string    `json:"reject_reason"`
	MerchantID          uint       `json:"merchant_id"`
	CreatedAt           string     `json:"created_at"`
	UpdatedAt           string     `json:"updated_at"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type HotelList struct {
	Hotels     []Hotel    `json:"hotels" validate:"dive"`
	Pagination Pagination `json:"pagination"`
}

type HotelData struct {
	Hotel Hotel `json:"hotel" validate:"required"`
}

type Statistics struct {
	TotalHotels    int64 `json:"total_hotels"`
	PendingHotels  int64 `json:"pending_hotels"`
	ApprovedHotels int64 `json:"approved_hotels"`
	TotalMerchants int64 `json:"total_merchants"`
}

type UploadResult struct {
	Filename string `json:"filename" validate:"required"`
	URL      string `json:"url" validate:"required"`
}

type UploadBatchResult struct {
	Filenames []string `json:"filenames" validate:"required,min=1"`
	URLs      []string `json:"urls" validate:"required,min=1"`
}

type HotelImages struct {
	Images []string `json:"images"`
}
