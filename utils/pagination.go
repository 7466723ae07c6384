package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Pagination is the list metadata block every paginated response carries.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

// ParsePageQuery reads page/limit query params, clamping to sane bounds.
func ParsePageQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
