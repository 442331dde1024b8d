// Package pagination is the shared page/limit plumbing used by every
// relation listing (comments, subscribers, liked videos, listings).
// Limits are clamped uniformly to [1,50] regardless of endpoint.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const MaxLimit = 50

// Params is a normalized page request.
type Params struct {
	Page  int
	Limit int
}

// Meta describes the full result set a page was cut from.
type Meta struct {
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// New normalizes raw page/limit values: page defaults to 1, limit defaults
// to defLimit and is clamped to [1, MaxLimit].
func New(page, limit, defLimit int) Params {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// FromQuery reads page/limit from the request query string.
func FromQuery(c *gin.Context, defLimit int) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defLimit)))
	return New(page, limit, defLimit)
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// MetaFor computes the listing meta for a total count.
func (p Params) MetaFor(total int64) Meta {
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{
		TotalCount: total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
		HasMore:    p.Page < totalPages,
	}
}
