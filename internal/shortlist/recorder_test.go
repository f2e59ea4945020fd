package shortlist

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func newTestRecorder(t *testing.T) *Recorder {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "shortlist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	rec := NewRecorder(store)
	rec.now = func() time.Time {
		return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
	return rec
}

func TestRecordPersistsNormalizedRecord(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	experiences := []types.Experience{{Duration: "2 years 3 months"}}
	ok, err := rec.Record(ctx, "  Alice  ", experiences,
		[]string{"SQL", "python", "  ", "Python"},
		[]string{"Chat App", "chat app", "Crawler"})
	require.NoError(t, err)
	assert.True(t, ok)

	records, err := rec.store.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "Alice", got.CandidateName)
	assert.InDelta(t, 2.3, got.WorkExperienceYears, 0.001)
	assert.Equal(t, "python, sql", got.Skills)
	assert.Equal(t, "chat app, crawler", got.Projects)
}

func TestRecordIsIdempotent(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	exps := []types.Experience{{Duration: "1 year"}}
	for i := 0; i < 2; i++ {
		ok, err := rec.Record(ctx, "Alice", exps, []string{"Python", "SQL"}, nil)
		require.NoError(t, err)
		assert.True(t, ok, "duplicate record is still a success")
	}

	records, err := rec.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRecordDistinguishesTuples(t *testing.T) {
	rec := newTestRecorder(t)
	ctx := context.Background()

	_, err := rec.Record(ctx, "Alice", nil, []string{"Python"}, nil)
	require.NoError(t, err)
	_, err = rec.Record(ctx, "Alice", nil, []string{"Python", "SQL"}, nil)
	require.NoError(t, err)
	_, err = rec.Record(ctx, "Alice", nil, []string{"Python"}, []string{"Crawler"})
	require.NoError(t, err)

	records, err := rec.store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestRecordRejectsBlankName(t *testing.T) {
	rec := newTestRecorder(t)

	ok, err := rec.Record(context.Background(), "   ", nil, []string{"Python"}, nil)
	require.NoError(t, err)
	assert.False(t, ok)

	records, err := rec.store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecordBatchCountsSuccesses(t *testing.T) {
	rec := newTestRecorder(t)

	stored := rec.RecordBatch(context.Background(), []Candidate{
		{Name: "Alice", Skills: []string{"Python"}},
		{Name: "Bob", Skills: []string{"Go"}},
		{Name: "", Skills: []string{"SQL"}},      // skipped, blank name
		{Name: "Alice", Skills: []string{"Python"}}, // duplicate, still counted
	})
	assert.Equal(t, 3, stored)

	records, err := rec.store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestNormalizeList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected string
	}{
		{"sorted and deduplicated", []string{"SQL", "python", "sql"}, "python, sql"},
		{"blank entries dropped", []string{" ", "", "Go"}, "go"},
		{"empty list", nil, ""},
		{"single", []string{"Docker"}, "docker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeList(tt.input))
		})
	}
}
