package persistence

import (
	"fmt"
	"strings"

	"github.com/bizos/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// allowedOrderColumns guards ORDER BY against injection; only known column
// names pass through.
var allowedOrderColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"title":      true,
	"date":       true,
	"status":     true,
	"amount":     true,
	"due_date":   true,
}

// allowedFilterColumns guards WHERE equality filters the same way.
var allowedFilterColumns = map[string]bool{
	"status":   true,
	"category": true,
	"type":     true,
}

// applyEqualityFilters applies whitelisted equality filters. List and
// count queries share it so pagination totals match the rows returned.
func applyEqualityFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for column, value := range filter.Filters {
		if allowedFilterColumns[column] {
			query = query.Where(fmt.Sprintf("%s = ?", column), value)
		}
	}
	return query
}

// applyFilter applies ordering, equality filters and pagination to a query
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = applyEqualityFilters(query, filter)

	orderBy := filter.OrderBy
	if !allowedOrderColumns[orderBy] {
		orderBy = "created_at"
	}
	dir := "desc"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "asc"
	}
	query = query.Order(fmt.Sprintf("%s %s", orderBy, dir))

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return query
}

// applySearch adds a case-insensitive LIKE across the given columns
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + strings.ToLower(search) + "%"
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clauses[i] = fmt.Sprintf("lower(%s) LIKE ?", col)
		args[i] = pattern
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}
