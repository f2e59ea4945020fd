package shortlist

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/experience"
	"github.com/jonathan/resume-screener/internal/types"
)

// Recorder turns a qualifying candidate into a persisted shortlist record:
// it derives total work-experience years and normalizes the skill and project
// lists before handing the record to the store.
type Recorder struct {
	store *Store
	now   func() time.Time
}

// NewRecorder creates a recorder backed by store.
func NewRecorder(store *Store) *Recorder {
	return &Recorder{store: store, now: time.Now}
}

// Candidate is one item of a batch shortlisting request.
type Candidate struct {
	Name        string             `json:"name"`
	Experiences []types.Experience `json:"experiences"`
	Skills      []string           `json:"skills"`
	Projects    []string           `json:"projects"`
}

// Record persists a shortlist entry for the named candidate. A blank name is
// rejected. Recording the same (name, skills, projects) tuple again is a
// silent success: the operation is idempotent and never writes a duplicate
// row. The returned bool reports whether the operation completed, not
// whether a new row was written.
func (r *Recorder) Record(ctx context.Context, name string, experiences []types.Experience, skillNames, projects []string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	rec := types.ShortlistRecord{
		CandidateName:       name,
		WorkExperienceYears: experience.TotalYears(experiences, r.now()),
		Skills:              normalizeList(skillNames),
		Projects:            normalizeList(projects),
	}

	if _, err := r.store.InsertIfAbsent(ctx, rec); err != nil {
		return false, err
	}
	return true, nil
}

// RecordBatch records each candidate in turn and returns how many completed
// without error. Duplicates count as successes: the insert finished and the
// dedup contract held.
func (r *Recorder) RecordBatch(ctx context.Context, candidates []Candidate) int {
	stored := 0
	for _, c := range candidates {
		ok, err := r.Record(ctx, c.Name, c.Experiences, c.Skills, c.Projects)
		if err == nil && ok {
			stored++
		}
	}
	return stored
}

// normalizeList lowercases, trims, deduplicates and sorts the entries, then
// joins them with ", ". Blank entries are dropped; an empty list yields "".
func normalizeList(items []string) string {
	seen := make(map[string]struct{}, len(items))
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		normalized = append(normalized, item)
	}
	sort.Strings(normalized)
	return strings.Join(normalized, ", ")
}
