// Package gorm provides GORM-based database operations for stockroom.
package gorm

import (
	"net/http"
	"strconv"
)

// MaxPaginationLimit is the fallback maximum for the limit query parameter.
// This protects against resource exhaustion from excessively large requests.
const MaxPaginationLimit = 1000

// ParseListCriteria parses list query parameters from an HTTP request.
// Missing or invalid values degrade to their defaults: skip 0, limit
// defaultLimit. An explicit limit=0 is honored and yields an empty result.
// Price bounds are set only when the parameter is present, so filter_price_min=0
// constrains to price >= 0 rather than meaning "unset".
func ParseListCriteria(r *http.Request, defaultLimit, maxLimit int) ListCriteria {
	if maxLimit <= 0 {
		maxLimit = MaxPaginationLimit
	}

	query := r.URL.Query()

	c := ListCriteria{
		Brand:     query.Get("filter_brand"),
		Search:    query.Get("search"),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
		Limit:     defaultLimit,
	}

	if v := query.Get("skip"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Skip = parsed
		}
	}
	if v := query.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Limit = parsed
		}
	}
	if c.Limit > maxLimit {
		c.Limit = maxLimit
	}

	if v := query.Get("filter_price_min"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.PriceMin = &parsed
		}
	}
	if v := query.Get("filter_price_max"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.PriceMax = &parsed
		}
	}

	return c
}
