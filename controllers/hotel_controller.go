package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type RoomTypePayload struct {
	Type        string   `json:"type" binding:"required"`
	Price       float64  `json:"price" binding:"min=0"`
	Facilities  []string `json:"facilities"`
	Description string   `json:"description"`
}

type HotelPayload struct {
	Name                string            `json:"name" binding:"required,max=200"`
	NameEn              *string           `json:"name_en"`
	Address             string            `json:"address" binding:"required"`
	Star                int               `json:"star" binding:"required,min=1,max=5"`
	RoomTypes           []RoomTypePayload `json:"room_type" binding:"required,min=1,dive"`
	Price               float64           `json:"price" binding:"min=0"`
	OpenDate            string            `json:"open_date" binding:"required,datetime=2006-01-02"`
	Images              []string          `json:"images"`
	Tags                []string          `json:"tags"`
	Facilities          []string          `json:"facilities"`
	NearbyAttractions   *string           `json:"nearby_attractions"`
	Discount            *float64          `json:"discount" binding:"omitempty,min=0,max=1"`
	DiscountDescription *string           `json:"discount_description"`
}

func (p *HotelPayload) toModel() *models.Hotel {
	rooms := make([]models.RoomType, 0, len(p.RoomTypes))
	for _, r := range p.RoomTypes {
		rooms = append(rooms, models.RoomType{
			Type:        r.Type,
			Price:       r.Price,
			Facilities:  r.Facilities,
			Description: r.Description,
		})
	}
	return &models.Hotel{
		Name:                p.Name,
		NameEn:              p.NameEn,
		Address:             p.Address,
		Star:                p.Star,
		RoomTypes:           datatypes.NewJSONSlice(rooms),
		Price:               p.Price,
		OpenDate:            p.OpenDate,
		Images:              datatypes.NewJSONSlice(p.Images),
		Tags:                datatypes.NewJSONSlice(p.Tags),
		Facilities:          datatypes.NewJSONSlice(p.Facilities),
		NearbyAttractions:   p.NearbyAttractions,
		Discount:            p.Discount,
		DiscountDescription: p.DiscountDescription,
	}
}

// HotelUpdatePayload is the partial edit body. Omitted fields keep their
// stored values.
type HotelUpdatePayload struct {
	Name                *string            `json:"name" binding:"omitempty,max=200"`
	NameEn              *string            `json:"name_en"`
	Address             *string            `json:"address"`
	Star                *int               `json:"star" binding:"omitempty,min=1,max=5"`
	RoomTypes           *[]RoomTypePayload `json:"room_type" binding:"omitempty,min=1,dive"`
	Price               *float64           `json:"price" binding:"omitempty,min=0"`
	OpenDate            *string            `json:"open_date" binding:"omitempty,datetime=2006-01-02"`
	Images              *[]string          `json:"images"`
	Tags                *[]string          `json:"tags"`
	Facilities          *[]string          `json:"facilities"`
	NearbyAttractions   *string            `json:"nearby_attractions"`
	Discount            *float64           `json:"discount" binding:"omitempty,min=0,max=1"`
	DiscountDescription *string            `json:"discount_description"`
}

func (p *HotelUpdatePayload) toUpdate() services.HotelUpdate {
	u := services.HotelUpdate{
		Name:                p.Name,
		NameEn:              p.NameEn,
		Address:             p.Address,
		Star:                p.Star,
		Price:               p.Price,
		OpenDate:            p.OpenDate,
		Images:              p.Images,
		Tags:                p.Tags,
		Facilities:          p.Facilities,
		NearbyAttractions:   p.NearbyAttractions,
		Discount:            p.Discount,
		DiscountDescription: p.DiscountDescription,
	}
	if p.RoomTypes != nil {
		rooms := make([]models.RoomType, 0, len(*p.RoomTypes))
		for _, r := range *p.RoomTypes {
			rooms = append(rooms, models.RoomType{
				Type:        r.Type,
				Price:       r.Price,
				Facilities:  r.Facilities,
				Description: r.Description,
			})
		}
		u.RoomTypes = &rooms
	}
	return u
}

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

func hotelIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return 0, false
	}
	return uint(id), true
}

func hotelErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrHotelNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNoRoomTypes), errors.Is(err, services.ErrPriceMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// POST /api/hotels
func (h *HotelController) Create(c *gin.Context) {
	var payload HotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hotel := payload.toModel()
	if err := h.Hotels.Create(utils.CurrentUserID(c), hotel); err != nil {
		utils.JSONError(c, hotelErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccessMessage(c, http.StatusCreated, "hotel created, pending review", gin.H{"hotel": hotel})
}

// GET /api/hotels/my-hotels
func (h *HotelController) MyHotels(c *gin.Context) {
	page, limit := utils.ParsePageQuery(c)
	status := c.Query("status")
	if status != "" && !models.ValidStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "invalid status filter")
		return
	}

	hotels, total, err := h.Hotels.ListByMerchant(utils.CurrentUserID(c), status, page, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list hotels")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotels":     hotels,
		"pagination": utils.NewPagination(total, page, limit),
	})
}

// GET /api/hotels/:id
// Merchants can only see their own listings; admins can see any.
func (h *HotelController) GetByID(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	hotel, err := h.Hotels.GetByID(id)
	if err != nil {
		utils.JSONError(c, hotelErrorStatus(err), err.Error())
		return
	}
	if utils.CurrentRole(c) != models.RoleAdmin && hotel.MerchantID != utils.CurrentUserID(c) {
		utils.JSONError(c, http.StatusForbidden, "hotel belongs to another merchant")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"hotel": hotel})
}

// PUT /api/hotels/:id
// Accepts a partial body; only the provided fields change.
func (h *HotelController) Update(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	var payload HotelUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hotel, err := h.Hotels.Update(id, utils.CurrentUserID(c), payload.toUpdate())
	if err != nil {
		utils.JSONError(c, hotelErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "hotel updated, pending review", gin.H{"hotel": hotel})
}

// DELETE /api/hotels/:id
func (h *HotelController) Delete(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}
	if err := h.Hotels.Delete(id, utils.CurrentUserID(c)); err != nil {
		utils.JSONError(c, hotelErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "hotel deleted", nil)
}
