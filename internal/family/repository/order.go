package repository

import (
	familyDomain "github.com/hearthside/hearth/internal/family/domain"
)

// Plain sortable member columns. Encrypted columns are never sortable.
var memberSortColumns = map[string]bool{"birth_date": true, "created_at": true}

const defaultListLimit = 50

// memberOrderBy builds the ORDER BY expression for a member list query.
func memberOrderBy(opts familyDomain.ListOptions) string {
	if !memberSortColumns[opts.SortBy] {
		return "created_at"
	}
	if opts.SortDesc {
		return opts.SortBy + " DESC"
	}
	return opts.SortBy + " ASC"
}

// memberLimit bounds a member list query when the caller did not set a limit.
func memberLimit(opts familyDomain.ListOptions) int {
	if opts.Limit <= 0 {
		return defaultListLimit
	}
	return opts.Limit
}
