package pagination

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const MaxLimit = 100

type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int
}

type Meta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// ParseFromRequest reads page and limit query parameters, falling back to
// page 1 and defaultLimit. Limits are capped at MaxLimit and pages at the
// last one whose offset fits in an int.
func ParseFromRequest(c *fiber.Ctx, defaultLimit int) Pagination {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 {
		limit = max(defaultLimit, 1)
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Apply records len(items) as the total and returns the requested page.
func Apply[T any](p *Pagination, items []T) []T {
	p.Total = len(items)
	if p.Offset < 0 || p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

func (p Pagination) Meta() Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = p.Total / p.Limit
		if p.Total%p.Limit > 0 {
			totalPages++
		}
	}
	return Meta{
		CurrentPage: p.Page,
		PerPage:     p.Limit,
		TotalItems:  p.Total,
		TotalPages:  totalPages,
	}
}
