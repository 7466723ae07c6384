package services

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayhub-backend/models"
)

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrNotOwner      = errors.New("hotel belongs to another merchant")
	ErrNoRoomTypes   = errors.New("at least one room type is required")
	ErrPriceMismatch = errors.New("price must equal the cheapest room type price")
)

// HotelService covers the merchant side of the hotel lifecycle.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// normalize recomputes the listing price from the room types. Submitted
// prices that disagree with the cheapest room are rejected rather than
// silently corrected.
func normalize(h *models.Hotel) error {
	min, ok := models.MinRoomPrice(h.RoomTypes)
	if !ok {
		return ErrNoRoomTypes
	}
	if h.Price != 0 && h.Price != min {
		return ErrPriceMismatch
	}
	h.Price = min
	return nil
}

// Create stores a new listing for the merchant. New listings always start
// out pending review.
func (s *HotelService) Create(merchantID uint, hotel *models.Hotel) error {
	if err := normalize(hotel); err != nil {
		return err
	}
	hotel.ID = 0
	hotel.MerchantID = merchantID
	hotel.Status = models.StatusPending
	hotel.RejectReason = nil
	return s.DB.Create(hotel).Error
}

func (s *HotelService) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.Preload("Merchant").First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return &hotel, nil
}

// ListByMerchant pages through one merchant's listings, newest first.
func (s *HotelService) ListByMerchant(merchantID uint, status string, page, limit int) ([]models.Hotel, int64, error) {
	q := s.DB.Model(&models.Hotel{}).Where("merchant_id = ?", merchantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	err := q.Order("id DESC").Offset((page - 1) * limit).Limit(limit).Find(&hotels).Error
	return hotels, total, err
}

// HotelUpdate is a partial merchant edit. Nil fields are left unchanged.
type HotelUpdate struct {
	Name                *string
	NameEn              *string
	Address             *string
	Star                *int
	RoomTypes           *[]models.RoomType
	Price               *float64
	OpenDate            *string
	Images              *[]string
	Tags                *[]string
	Facilities          *[]string
	NearbyAttractions   *string
	Discount            *float64
	DiscountDescription *string
}

func (u *HotelUpdate) apply(h *models.Hotel) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.NameEn != nil {
		h.NameEn = u.NameEn
	}
	if u.Address != nil {
		h.Address = *u.Address
	}
	if u.Star != nil {
		h.Star = *u.Star
	}
	if u.RoomTypes != nil {
		h.RoomTypes = datatypes.NewJSONSlice(*u.RoomTypes)
		if u.Price == nil {
			// Rooms changed without an explicit price, recompute it.
			h.Price = 0
		}
	}
	if u.Price != nil {
		h.Price = *u.Price
	}
	if u.OpenDate != nil {
		h.OpenDate = *u.OpenDate
	}
	if u.Images != nil {
		h.Images = datatypes.NewJSONSlice(*u.Images)
	}
	if u.Tags != nil {
		h.Tags = datatypes.NewJSONSlice(*u.Tags)
	}
	if u.Facilities != nil {
		h.Facilities = datatypes.NewJSONSlice(*u.Facilities)
	}
	if u.NearbyAttractions != nil {
		h.NearbyAttractions = u.NearbyAttractions
	}
	if u.Discount != nil {
		h.Discount = u.Discount
	}
	if u.DiscountDescription != nil {
		h.DiscountDescription = u.DiscountDescription
	}
}

// applyUpdate merges the edit into the stored listing and sends it back
// through review: status reverts to pending and the old reject reason is
// cleared, no matter which fields changed.
func applyUpdate(hotel *models.Hotel, u HotelUpdate) error {
	u.apply(hotel)
	if err := normalize(hotel); err != nil {
		return err
	}
	hotel.Status = models.StatusPending
	hotel.RejectReason = nil
	return nil
}

// Update applies a partial merchant edit. Omitted fields keep their stored
// values.
func (s *HotelService) Update(id, merchantID uint, input HotelUpdate) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if hotel.MerchantID != merchantID {
		return nil, ErrNotOwner
	}

	if err := applyUpdate(&hotel, input); err != nil {
		return nil, err
	}

	if err := s.DB.Save(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelService) Delete(id, merchantID uint) error {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	if hotel.MerchantID != merchantID {
		return ErrNotOwner
	}
	return s.DB.Delete(&hotel).Error
}
