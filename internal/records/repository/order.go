package repository

import (
	recordsDomain "github.com/hearthside/hearth/internal/records/domain"
)

// Plain sortable columns per entity. Encrypted columns are never sortable.
var (
	appointmentSortColumns = map[string]bool{"date": true, "created_at": true}
	medicationSortColumns  = map[string]bool{"start_date": true, "end_date": true, "created_at": true}
	allergySortColumns     = map[string]bool{"severity": true, "created_at": true}
	conditionSortColumns   = map[string]bool{"status": true, "diagnosed_date": true, "created_at": true}
	vaccinationSortColumns = map[string]bool{"date": true, "created_at": true}
)

const defaultListLimit = 50

// orderBy builds the ORDER BY expression for a list query from the caller's
// sort selection, restricted to the entity's plain sortable columns.
func orderBy(opts recordsDomain.ListOptions, allowed map[string]bool, fallback string) string {
	if !allowed[opts.SortBy] {
		return fallback
	}
	if opts.SortDesc {
		return opts.SortBy + " DESC"
	}
	return opts.SortBy + " ASC"
}

// limitOrDefault bounds a list query when the caller did not set a limit.
func limitOrDefault(opts recordsDomain.ListOptions) int {
	if opts.Limit <= 0 {
		return defaultListLimit
	}
	return opts.Limit
}
