package query

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

type SortKey struct {
	Field     string
	Direction Direction
}

// TaskFilter holds the exact-match and range clauses for a task
// listing. Empty fields mean "no constraint".
type TaskFilter struct {
	Status     string
	Priority   string
	DueDateMax string
	AssignedTo string
}

// TaskQuery is a store-agnostic query descriptor: filter clauses, an
// ordered list of sort keys (first key highest precedence) and a page
// window. It performs no database access itself.
type TaskQuery struct {
	Filter TaskFilter
	Sort   []SortKey
	Skip   int
	Limit  int
}

const defaultSort = "-due_date"

// BuildTask translates request query parameters into a TaskQuery.
//
// Malformed pagination input silently falls back to page=1 and the
// default limit, and a malformed assigned_to clause is silently
// dropped; both are deliberate leniencies, not errors. due_date_max
// is compared lexically with no date validation.
func BuildTask(params map[string]string, defaultLimit, maxLimit int) TaskQuery {
	skip, limit := pageWindow(params, defaultLimit, maxLimit)

	filter := TaskFilter{
		Status:     params["status"],
		Priority:   params["priority"],
		DueDateMax: params["due_date_max"],
	}
	if assignedTo := params["assigned_to"]; assignedTo != "" {
		if _, err := uuid.Parse(assignedTo); err == nil {
			filter.AssignedTo = assignedTo
		}
	}

	return TaskQuery{
		Filter: filter,
		Sort:   sortKeys(params),
		Skip:   skip,
		Limit:  limit,
	}
}

func pageWindow(params map[string]string, defaultLimit, maxLimit int) (skip, limit int) {
	page := 1
	limit = defaultLimit

	// One malformed value resets both, matching the documented
	// fallback behavior.
	if raw, ok := params["page"]; ok {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return 0, clampLimit(defaultLimit, maxLimit)
		}
		page = p
	}
	if raw, ok := params["limit"]; ok {
		l, err := strconv.Atoi(raw)
		if err != nil {
			return 0, clampLimit(defaultLimit, maxLimit)
		}
		limit = l
	}

	if page > 0 {
		skip = (page - 1) * limit
	}
	if skip < 0 {
		skip = 0
	}

	return skip, clampLimit(limit, maxLimit)
}

func clampLimit(limit, maxLimit int) int {
	if limit < 1 {
		limit = 1
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	return limit
}

func sortKeys(params map[string]string) []SortKey {
	sortParam, ok := params["sort"]
	if !ok {
		sortParam = defaultSort
	}

	var keys []SortKey
	for _, field := range strings.Split(sortParam, ",") {
		field = strings.TrimSpace(field)
		switch {
		case strings.HasPrefix(field, "-"):
			keys = append(keys, SortKey{Field: field[1:], Direction: Descending})
		case field != "":
			keys = append(keys, SortKey{Field: field, Direction: Ascending})
		}
	}

	return keys
}
