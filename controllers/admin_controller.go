package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type ReviewRequest struct {
	Action       string `json:"action" binding:"required,oneof=approve reject"`
	RejectReason string `json:"reject_reason"`
}

type ToggleRequest struct {
	Action string `json:"action" binding:"required,oneof=publish unpublish"`
}

type AdminController struct {
	Admin *services.AdminService
}

func NewAdminController(admin *services.AdminService) *AdminController {
	return &AdminController{Admin: admin}
}

func adminErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrHotelNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNotReviewable),
		errors.Is(err, services.ErrNotToggleable),
		errors.Is(err, services.ErrReasonNeeded),
		errors.Is(err, services.ErrBadAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GET /api/admin/hotels/pending
func (a *AdminController) PendingHotels(c *gin.Context) {
	page, limit := utils.ParsePageQuery(c)
	hotels, total, err := a.Admin.ListPending(page, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list pending hotels")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotels":     hotels,
		"pagination": utils.NewPagination(total, page, limit),
	})
}

// GET /api/admin/hotels
func (a *AdminController) AllHotels(c *gin.Context) {
	page, limit := utils.ParsePageQuery(c)

	status := c.Query("status")
	if status != "" && !models.ValidStatus(status) {
		utils.JSONError(c, http.StatusBadRequest, "invalid status filter")
		return
	}
	merchantID, _ := strconv.ParseUint(c.Query("merchant_id"), 10, 32)

	hotels, total, err := a.Admin.ListAll(services.HotelFilter{
		Status:     status,
		MerchantID: uint(merchantID),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list hotels")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"hotels":     hotels,
		"pagination": utils.NewPagination(total, page, limit),
	})
}

// POST /api/admin/hotels/:id/review
func (a *AdminController) Review(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.Admin.Review(c.Request.Context(), id, req.Action, req.RejectReason); err != nil {
		utils.JSONError(c, adminErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "review recorded", nil)
}

// POST /api/admin/hotels/:id/toggle
func (a *AdminController) Toggle(c *gin.Context) {
	id, ok := hotelIDParam(c)
	if !ok {
		return
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.Admin.Toggle(c.Request.Context(), id, req.Action); err != nil {
		utils.JSONError(c, adminErrorStatus(err), err.Error())
		return
	}
	utils.JSONSuccessMessage(c, http.StatusOK, "hotel status updated", nil)
}

// GET /api/admin/statistics
func (a *AdminController) Statistics(c *gin.Context) {
	stats, err := a.Admin.Statistics(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load statistics")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}
