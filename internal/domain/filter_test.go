package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterFixture() []Correspondence {
	return []Correspondence{
		{ID: 1, Subject: "Pump station handover", ReferenceNumber: "IN-2024-001", ResponsibleEngineer: "Sara Adel"},
		{ID: 2, Subject: "Budget request", ReferenceNumber: "OUT-2024-017", ResponsibleEngineer: "Omar Nabil"},
		{ID: 3, Subject: "Road maintenance PLAN", ReferenceNumber: "GEN-0042"},
		{ID: 4, Subject: "Pipeline inspection", ReferenceNumber: "in-2024-009", ResponsibleEngineer: "sara adel"},
	}
}

func TestFilterCorrespondencesMatchesAnyFieldIgnoringCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantIDs []int64
	}{
		{name: "empty query keeps everything", query: "", wantIDs: []int64{1, 2, 3, 4}},
		{name: "subject", query: "budget", wantIDs: []int64{2}},
		{name: "subject upper query", query: "PLAN", wantIDs: []int64{3}},
		{name: "reference number mixed case", query: "In-2024", wantIDs: []int64{1, 4}},
		{name: "engineer", query: "SARA", wantIDs: []int64{1, 4}},
		{name: "no match", query: "zzz", wantIDs: []int64{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FilterCorrespondences(filterFixture(), tc.query)
			ids := make([]int64, 0, len(got))
			for _, item := range got {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestFilterCorrespondencesIsSoundCompleteAndOrderPreserving(t *testing.T) {
	t.Parallel()

	items := filterFixture()
	for _, query := range []string{"", "a", "IN", "2024", "adel", "pump", "x"} {
		got := FilterCorrespondences(items, query)
		needle := strings.ToLower(query)

		// Every returned item satisfies the predicate and order follows the input.
		lastIndex := -1
		for _, item := range got {
			idx := indexOfID(items, item.ID)
			require.Greater(t, idx, lastIndex, "query %q broke input order", query)
			lastIndex = idx
			assert.True(t, containsFold(item, needle), "query %q returned non-matching item %d", query, item.ID)
		}

		// Every matching input item is returned.
		for _, item := range items {
			if containsFold(item, needle) {
				assert.NotEqual(t, -1, indexOfID(got, item.ID), "query %q dropped item %d", query, item.ID)
			}
		}
	}
}

func TestFilterCorrespondencesIsIdempotent(t *testing.T) {
	t.Parallel()

	once := FilterCorrespondences(filterFixture(), "sara")
	twice := FilterCorrespondences(once, "sara")
	assert.Equal(t, once, twice)
}

func TestFilterCorrespondencesHandlesNilInput(t *testing.T) {
	t.Parallel()

	got := FilterCorrespondences(nil, "anything")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func indexOfID(items []Correspondence, id int64) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func containsFold(item Correspondence, needle string) bool {
	for _, field := range []string{item.Subject, item.ReferenceNumber, item.ResponsibleEngineer} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
