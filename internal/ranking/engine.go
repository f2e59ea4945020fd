// Package ranking provides the candidate ranking engine: free-text skill
// search and job-role matching with percentage scoring.
package ranking

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/roles"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// ShortlistThreshold is the match percentage below which a candidate is
// excluded from ranked results and ineligible for shortlisting.
const ShortlistThreshold = 70

// skillFetchConcurrency bounds parallel skill lookups against the store.
const skillFetchConcurrency = 8

// CandidateSource is the read-only view of the candidate store the engine
// needs. Implementations return plain value snapshots; the engine never
// mutates candidate data.
type CandidateSource interface {
	ListCandidates(ctx context.Context) ([]types.Candidate, error)
	GetCandidateSkills(ctx context.Context, id uuid.UUID) ([]types.Skill, error)
}

// Engine ranks candidates against free-text queries or predefined job roles.
// The role catalog is passed in explicitly at construction; matching never
// reads ambient global state.
type Engine struct {
	source  CandidateSource
	catalog *roles.Catalog
}

// New creates a ranking engine over a candidate source and role catalog.
func New(source CandidateSource, catalog *roles.Catalog) *Engine {
	return &Engine{source: source, catalog: catalog}
}

// Filters restricts free-text search results.
type Filters struct {
	// Education keeps only candidates with at least one education entry whose
	// degree contains this text (case-insensitive). Empty means no filter.
	Education string
}

// RoleMatches is the result of a job-role search.
type RoleMatches struct {
	Role       types.JobRole       `json:"role"`
	Candidates []types.MatchResult `json:"candidates"`
}

// RoleNotFoundError reports an unknown role key along with the valid keys.
type RoleNotFoundError struct {
	Key       string
	Available []string
}

func (e *RoleNotFoundError) Error() string {
	return fmt.Sprintf("job role %q not found; available roles: %s", e.Key, strings.Join(e.Available, ", "))
}

// termSplitter separates a query into terms on runs of commas, plus signs and
// whitespace.
var termSplitter = regexp.MustCompile(`[,+\s]+`)

// splitQuery parses a free-text query into lowercase terms, dropping empties.
func splitQuery(query string) []string {
	parts := termSplitter.Split(strings.ToLower(query), -1)
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

// Search ranks all candidates against a free-text skill query. A candidate's
// percentage is the rounded share of query terms contained in any of its
// normalized skill names; this path deliberately uses plain substring
// containment, not the fuzzy matcher used for role search. Results under the
// threshold are dropped and the rest sorted by percentage descending, ties in
// retrieval order.
func (e *Engine) Search(ctx context.Context, query string, filters Filters) ([]types.MatchResult, error) {
	terms := splitQuery(query)

	candidates, candidateSkills, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]types.MatchResult, 0, len(candidates))
	for i, candidate := range candidates {
		if !educationMatches(candidate, filters.Education) {
			continue
		}

		skillSet := candidateSkills[i]
		matched := 0
		for _, term := range terms {
			if anySkillContains(skillSet, term) {
				matched++
			}
		}

		result := types.MatchResult{
			CandidateID:     candidate.ID,
			Name:            candidate.Name,
			Email:           candidate.Email,
			KeySkills:       keySkills(skillSet),
			MatchPercentage: percentage(matched, len(terms)),
			MatchedCount:    matched,
			TotalRequired:   len(terms),
		}
		if result.MatchPercentage < ShortlistThreshold {
			continue
		}
		results = append(results, result)
	}

	sortByPercentage(results)
	return results, nil
}

// SearchByRole ranks all candidates against a predefined job role's required
// skill set using the fuzzy skill matcher. An unknown role key returns a
// RoleNotFoundError listing the valid keys.
func (e *Engine) SearchByRole(ctx context.Context, roleKey string) (*RoleMatches, error) {
	role, ok := e.catalog.Get(roleKey)
	if !ok {
		return nil, &RoleNotFoundError{Key: roles.NormalizeKey(roleKey), Available: e.catalog.Keys()}
	}

	candidates, candidateSkills, err := e.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]types.MatchResult, 0, len(candidates))
	for i, candidate := range candidates {
		skillSet := candidateSkills[i]

		matchedSkills := make([]string, 0, len(role.Skills))
		missingSkills := make([]string, 0, len(role.Skills))
		for _, required := range role.Skills {
			if firstMatch(required, skillSet) {
				matchedSkills = append(matchedSkills, required)
			} else {
				missingSkills = append(missingSkills, required)
			}
		}

		result := types.MatchResult{
			CandidateID:     candidate.ID,
			Name:            candidate.Name,
			Email:           candidate.Email,
			KeySkills:       keySkills(skillSet),
			MatchPercentage: percentage(len(matchedSkills), len(role.Skills)),
			MatchedSkills:   matchedSkills,
			MissingSkills:   missingSkills,
			MatchedCount:    len(matchedSkills),
			TotalRequired:   len(role.Skills),
		}
		if result.MatchPercentage < ShortlistThreshold {
			continue
		}
		results = append(results, result)
	}

	sortByPercentage(results)
	return &RoleMatches{Role: role, Candidates: results}, nil
}

// snapshot loads all candidates and their skills. Skill lookups fan out with
// bounded concurrency; the returned slice is index-aligned with candidates.
func (e *Engine) snapshot(ctx context.Context) ([]types.Candidate, [][]types.Skill, error) {
	candidates, err := e.source.ListCandidates(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	candidateSkills := make([][]types.Skill, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(skillFetchConcurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			skillSet, err := e.source.GetCandidateSkills(gCtx, candidate.ID)
			if err != nil {
				return fmt.Errorf("failed to get skills for candidate %s: %w", candidate.ID, err)
			}
			candidateSkills[i] = skillSet
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return candidates, candidateSkills, nil
}

// firstMatch reports whether any candidate skill matches the required skill,
// short-circuiting on the first hit.
func firstMatch(required string, skillSet []types.Skill) bool {
	for _, skill := range skillSet {
		if skills.Match(required, skill.Name) {
			return true
		}
	}
	return false
}

// anySkillContains reports whether any normalized skill name contains term.
func anySkillContains(skillSet []types.Skill, term string) bool {
	for _, skill := range skillSet {
		name := skill.NameNormalized
		if name == "" {
			name = skills.Normalize(skill.Name)
		}
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}

// educationMatches applies the optional education filter.
func educationMatches(candidate types.Candidate, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, edu := range candidate.Education {
		if strings.Contains(strings.ToLower(edu.Degree), needle) {
			return true
		}
	}
	return false
}

// keySkills returns up to the first ten skill display names.
func keySkills(skillSet []types.Skill) []string {
	limit := len(skillSet)
	if limit > 10 {
		limit = 10
	}
	names := make([]string, 0, limit)
	for _, skill := range skillSet[:limit] {
		names = append(names, skill.Name)
	}
	return names
}

// percentage computes round(100 * matched / total), or 0 when total is 0.
func percentage(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matched) / float64(total) * 100))
}

// sortByPercentage orders results by match percentage descending, preserving
// retrieval order for ties.
func sortByPercentage(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})
}
