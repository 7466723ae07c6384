package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"stayhub-backend/cache"
	"stayhub-backend/models"
)

var (
	ErrNotReviewable = errors.New("only pending hotels can be reviewed")
	ErrNotToggleable = errors.New("only approved or offline hotels can be toggled")
	ErrReasonNeeded  = errors.New("reject_reason is required when rejecting")
	ErrBadAction     = errors.New("unknown action")
)

// Review actions.
const (
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
)

const statsCacheKey = "admin:statistics"

// HotelFilter narrows the admin listing views.
type HotelFilter struct {
	Status     string
	MerchantID uint
	StartDate  string // created_at lower bound, YYYY-MM-DD
	EndDate    string // created_at upper bound, YYYY-MM-DD
	Page       int
	Limit      int
}

// Statistics is the admin dashboard summary.
type Statistics struct {
	TotalHotels    int64 `json:"total_hotels"`
	PendingHotels  int64 `json:"pending_hotels"`
	ApprovedHotels int64 `json:"approved_hotels"`
	TotalMerchants int64 `json:"total_merchants"`
}

// AdminService covers review, publish toggling and platform statistics.
type AdminService struct {
	DB       *gorm.DB
	Cache    *cache.Cache
	CacheTTL int // seconds
}

func NewAdminService(db *gorm.DB, c *cache.Cache, ttlSeconds int) *AdminService {
	return &AdminService{DB: db, Cache: c, CacheTTL: ttlSeconds}
}

// ListPending pages through hotels waiting for review, oldest first so the
// queue drains in submission order.
func (s *AdminService) ListPending(page, limit int) ([]models.Hotel, int64, error) {
	q := s.DB.Model(&models.Hotel{}).Where("status = ?", models.StatusPending)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	err := s.DB.Preload("Merchant").
		Where("status = ?", models.StatusPending).
		Order("id ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&hotels).Error
	return hotels, total, err
}

// ListAll pages through every hotel on the platform with optional filters.
func (s *AdminService) ListAll(f HotelFilter) ([]models.Hotel, int64, error) {
	q := s.DB.Model(&models.Hotel{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.MerchantID != 0 {
		q = q.Where("merchant_id = ?", f.MerchantID)
	}
	if f.StartDate != "" {
		q = q.Where("created_at >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("created_at < DATE_ADD(?, INTERVAL 1 DAY)", f.EndDate)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	err := q.Preload("Merchant").
		Order("id DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Find(&hotels).Error
	return hotels, total, err
}

// Review applies an approve/reject decision to a pending hotel. The
// action and reason are checked before any lookup; a whitespace-only
// reason counts as missing.
func (s *AdminService) Review(ctx context.Context, id uint, action, reason string) error {
	reason = strings.TrimSpace(reason)

	updates := map[string]any{}
	switch action {
	case ActionApprove:
		updates["status"] = models.StatusApproved
		updates["reject_reason"] = nil
	case ActionReject:
		if reason == "" {
			return ErrReasonNeeded
		}
		updates["status"] = models.StatusRejected
		updates["reject_reason"] = reason
	default:
		return ErrBadAction
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	if !hotel.CanReview() {
		return ErrNotReviewable
	}

	if err := s.DB.Model(&hotel).Updates(updates).Error; err != nil {
		return err
	}
	// Counts changed, drop the cached dashboard numbers.
	_ = s.Cache.Del(ctx, statsCacheKey)
	return nil
}

// Toggle publishes or unpublishes an approved hotel.
func (s *AdminService) Toggle(ctx context.Context, id uint, action string) error {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	if !hotel.CanToggle() {
		return ErrNotToggleable
	}

	var next string
	switch action {
	case ActionPublish:
		next = models.StatusApproved
	case ActionUnpublish:
		next = models.StatusOffline
	default:
		return ErrBadAction
	}

	if err := s.DB.Model(&hotel).Update("status", next).Error; err != nil {
		return err
	}
	_ = s.Cache.Del(ctx, statsCacheKey)
	return nil
}

// Statistics returns the dashboard counters, served from Redis when a
// fresh copy is cached. The four counts run concurrently.
func (s *AdminService) Statistics(ctx context.Context) (Statistics, error) {
	var stats Statistics
	if hit, err := s.Cache.Get(ctx, statsCacheKey, &stats); err == nil && hit {
		return stats, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int64, scope func(*gorm.DB) *gorm.DB) {
		g.Go(func() error {
			return scope(s.DB.WithContext(gctx)).Count(dst).Error
		})
	}

	count(&stats.TotalHotels, func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.Hotel{})
	})
	count(&stats.PendingHotels, func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.Hotel{}).Where("status = ?", models.StatusPending)
	})
	count(&stats.ApprovedHotels, func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.Hotel{}).Where("status = ?", models.StatusApproved)
	})
	count(&stats.TotalMerchants, func(db *gorm.DB) *gorm.DB {
		return db.Model(&models.User{}).Where("role = ?", models.RoleMerchant)
	})

	if err := g.Wait(); err != nil {
		return Statistics{}, err
	}

	_ = s.Cache.Set(ctx, statsCacheKey, stats, time.Duration(s.CacheTTL)*time.Second)
	return stats, nil
}
