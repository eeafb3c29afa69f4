// Package gorm provides GORM-based database operations for stockroom.
package gorm

import (
	"strings"

	"gorm.io/gorm"
)

// ListCriteria holds the combined filter/search/sort/pagination parameters
// for a list query. All fields are optional; nil price bounds mean "no
// bound", so an explicit zero is a valid inclusive bound.
type ListCriteria struct {
	Brand     string
	PriceMin  *float64
	PriceMax  *float64
	Search    string
	SortBy    string
	SortOrder string
	Skip      int
	Limit     int
}

// applyListCriteria composes the criteria onto a base query without
// executing it. Constraints are AND-combined, except the search sub-terms
// which are OR-combined. Unknown sort fields skip sorting; there are no
// error conditions.
func applyListCriteria(q *gorm.DB, sc Schema, c ListCriteria) *gorm.DB {
	if c.Brand != "" {
		q = q.Where(sc.BrandCol+" = ?", c.Brand)
	}
	if c.PriceMin != nil {
		q = q.Where(sc.PriceCol+" >= ?", *c.PriceMin)
	}
	if c.PriceMax != nil {
		q = q.Where(sc.PriceCol+" <= ?", *c.PriceMax)
	}

	if c.Search != "" {
		// instr() keeps the match case-sensitive; LIKE is not for ASCII.
		conds := make([]string, 0, len(sc.SearchCols))
		args := make([]interface{}, 0, len(sc.SearchCols))
		for _, col := range sc.SearchCols {
			conds = append(conds, "instr("+col+", ?) > 0")
			args = append(args, c.Search)
		}
		q = q.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	if col, ok := sc.Sortable[c.SortBy]; ok {
		dir := "ASC"
		if strings.EqualFold(c.SortOrder, "desc") {
			dir = "DESC"
		}
		q = q.Order(col + " " + dir)
	}

	return q.Offset(c.Skip).Limit(c.Limit)
}
