package query

import (
	"testing"
)

const (
	testDefaultLimit = 10
	testMaxLimit     = 100
)

func build(params map[string]string) TaskQuery {
	return BuildTask(params, testDefaultLimit, testMaxLimit)
}

func TestBuildTask_Defaults(t *testing.T) {
	q := build(map[string]string{})

	if q.Skip != 0 {
		t.Errorf("expected skip 0, got %d", q.Skip)
	}
	if q.Limit != testDefaultLimit {
		t.Errorf("expected limit %d, got %d", testDefaultLimit, q.Limit)
	}
	if len(q.Sort) != 1 || q.Sort[0].Field != "due_date" || q.Sort[0].Direction != Descending {
		t.Errorf("expected default sort [-due_date], got %+v", q.Sort)
	}
	if q.Filter != (TaskFilter{}) {
		t.Errorf("expected empty filter, got %+v", q.Filter)
	}
}

func TestBuildTask_PaginationAndMultiKeySort(t *testing.T) {
	q := build(map[string]string{
		"sort":  "-due_date,status",
		"page":  "2",
		"limit": "5",
	})

	if q.Skip != 5 {
		t.Errorf("expected skip 5, got %d", q.Skip)
	}
	if q.Limit != 5 {
		t.Errorf("expected limit 5, got %d", q.Limit)
	}

	want := []SortKey{
		{Field: "due_date", Direction: Descending},
		{Field: "status", Direction: Ascending},
	}
	if len(q.Sort) != len(want) {
		t.Fatalf("expected %d sort keys, got %d", len(want), len(q.Sort))
	}
	for i, key := range want {
		if q.Sort[i] != key {
			t.Errorf("sort key %d: expected %+v, got %+v", i, key, q.Sort[i])
		}
	}
}

func TestBuildTask_MalformedLimitFallsBack(t *testing.T) {
	q := build(map[string]string{"page": "3", "limit": "abc"})

	if q.Skip != 0 {
		t.Errorf("expected skip 0 after fallback, got %d", q.Skip)
	}
	if q.Limit != testDefaultLimit {
		t.Errorf("expected default limit %d, got %d", testDefaultLimit, q.Limit)
	}
}

func TestBuildTask_MalformedPageFallsBack(t *testing.T) {
	q := build(map[string]string{"page": "two", "limit": "5"})

	if q.Skip != 0 || q.Limit != testDefaultLimit {
		t.Errorf("expected skip=0 limit=%d, got skip=%d limit=%d",
			testDefaultLimit, q.Skip, q.Limit)
	}
}

func TestBuildTask_NonPositivePage(t *testing.T) {
	q := build(map[string]string{"page": "0", "limit": "5"})

	if q.Skip != 0 {
		t.Errorf("expected skip 0 for page 0, got %d", q.Skip)
	}
	if q.Limit != 5 {
		t.Errorf("expected limit 5, got %d", q.Limit)
	}
}

func TestBuildTask_LimitClamps(t *testing.T) {
	q := build(map[string]string{"limit": "0"})
	if q.Limit != 1 {
		t.Errorf("expected limit clamped up to 1, got %d", q.Limit)
	}

	q = build(map[string]string{"limit": "5000"})
	if q.Limit != testMaxLimit {
		t.Errorf("expected limit clamped down to %d, got %d", testMaxLimit, q.Limit)
	}
}

func TestBuildTask_Filters(t *testing.T) {
	q := build(map[string]string{
		"status":       "pending",
		"priority":     "high",
		"due_date_max": "2026-12-31",
	})

	if q.Filter.Status != "pending" {
		t.Errorf("expected status filter, got %q", q.Filter.Status)
	}
	if q.Filter.Priority != "high" {
		t.Errorf("expected priority filter, got %q", q.Filter.Priority)
	}
	if q.Filter.DueDateMax != "2026-12-31" {
		t.Errorf("expected due_date_max filter, got %q", q.Filter.DueDateMax)
	}
}

func TestBuildTask_AssignedTo(t *testing.T) {
	id := "3e0a2a9e-1a36-4e4f-9a40-abc123abc123"
	q := build(map[string]string{"assigned_to": id})
	if q.Filter.AssignedTo != id {
		t.Errorf("expected assigned_to %q, got %q", id, q.Filter.AssignedTo)
	}

	// A malformed reference is silently dropped, not an error.
	q = build(map[string]string{"assigned_to": "not-a-uuid"})
	if q.Filter.AssignedTo != "" {
		t.Errorf("expected malformed assigned_to to be dropped, got %q", q.Filter.AssignedTo)
	}
}

func TestBuildTask_SortWhitespaceAndEmptyFields(t *testing.T) {
	q := build(map[string]string{"sort": " priority , -created_at ,,"})

	want := []SortKey{
		{Field: "priority", Direction: Ascending},
		{Field: "created_at", Direction: Descending},
	}
	if len(q.Sort) != len(want) {
		t.Fatalf("expected %d sort keys, got %d: %+v", len(want), len(q.Sort), q.Sort)
	}
	for i, key := range want {
		if q.Sort[i] != key {
			t.Errorf("sort key %d: expected %+v, got %+v", i, key, q.Sort[i])
		}
	}
}
