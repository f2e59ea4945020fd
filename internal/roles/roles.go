// Package roles provides the predefined job-role catalog used for role-based
// candidate ranking.
package roles

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-screener/internal/types"
)

// Catalog is an immutable collection of job roles keyed by normalized role
// key. Load it once and pass it into the ranking engine; lookups are
// read-only and safe for concurrent use.
type Catalog struct {
	roles map[string]types.JobRole
}

// NormalizeKey canonicalizes a role key: lowercase with spaces and hyphens
// collapsed to underscores, so "Backend Developer" and "backend-developer"
// both resolve to "backend_developer".
func NormalizeKey(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	k = strings.ReplaceAll(k, " ", "_")
	k = strings.ReplaceAll(k, "-", "_")
	return k
}

// NewCatalog builds a catalog from a list of roles. Role keys are normalized;
// a duplicate normalized key is an error.
func NewCatalog(list []types.JobRole) (*Catalog, error) {
	validate := validator.New()
	roles := make(map[string]types.JobRole, len(list))

	for _, role := range list {
		if err := validate.Struct(role); err != nil {
			return nil, fmt.Errorf("invalid job role %q: %w", role.Key, err)
		}
		key := NormalizeKey(role.Key)
		if _, exists := roles[key]; exists {
			return nil, fmt.Errorf("duplicate job role key %q", key)
		}
		role.Key = key
		roles[key] = role
	}

	return &Catalog{roles: roles}, nil
}

// LoadCatalog reads a role catalog from a JSON file of the form
// {"<key>": {"title": ..., "skills": [...]}, ...}.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roles file %s: %w", path, err)
	}

	var raw map[string]struct {
		Title  string   `json:"title"`
		Skills []string `json:"skills"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse roles file %s: %w", path, err)
	}

	list := make([]types.JobRole, 0, len(raw))
	for key, entry := range raw {
		list = append(list, types.JobRole{
			Key:    key,
			Title:  entry.Title,
			Skills: entry.Skills,
		})
	}

	return NewCatalog(list)
}

// Get returns the role for a key (normalized before lookup).
func (c *Catalog) Get(key string) (types.JobRole, bool) {
	role, ok := c.roles[NormalizeKey(key)]
	return role, ok
}

// Keys returns the sorted normalized keys of all roles.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.roles))
	for key := range c.roles {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// List returns all roles sorted by key.
func (c *Catalog) List() []types.JobRole {
	list := make([]types.JobRole, 0, len(c.roles))
	for _, key := range c.Keys() {
		list = append(list, c.roles[key])
	}
	return list
}

// Default returns the built-in role catalog used when no roles file is
// configured.
func Default() *Catalog {
	catalog, err := NewCatalog(defaultRoles)
	if err != nil {
		// The built-in list is static; a failure here is a programming error.
		panic(err)
	}
	return catalog
}

var defaultRoles = []types.JobRole{
	{
		Key:    "backend_developer",
		Title:  "Backend Developer",
		Skills: []string{"Python", "SQL", "REST API", "Docker", "Git"},
	},
	{
		Key:    "frontend_developer",
		Title:  "Frontend Developer",
		Skills: []string{"JavaScript", "React", "HTML", "CSS", "Git"},
	},
	{
		Key:    "fullstack_developer",
		Title:  "Full Stack Developer",
		Skills: []string{"JavaScript", "React", "Node.js", "SQL", "Git"},
	},
	{
		Key:    "data_scientist",
		Title:  "Data Scientist",
		Skills: []string{"Python", "Machine Learning", "SQL", "Pandas", "Statistics"},
	},
	{
		Key:    "devops_engineer",
		Title:  "DevOps Engineer",
		Skills: []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Linux"},
	},
	{
		Key:    "mobile_developer",
		Title:  "Mobile Developer",
		Skills: []string{"Kotlin", "Swift", "React Native", "REST API", "Git"},
	},
}
