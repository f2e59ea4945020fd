package types

// ParsedResume is the structured record extracted from raw resume text.
// Every field has a defined zero default; extraction failures surface as an
// error from the parser, never as a partially trusted map.
type ParsedResume struct {
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	Location          string       `json:"location"`
	Skills            []string     `json:"skills"`
	Education         []Education  `json:"education"`
	Experience        []Experience `json:"experience"`
	Projects          []Project    `json:"projects"`
	ExperienceSummary string       `json:"experience_summary"`
}

// EnsureDefaults replaces nil collections with empty ones so downstream code
// can range without nil checks.
func (p *ParsedResume) EnsureDefaults() {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
}
