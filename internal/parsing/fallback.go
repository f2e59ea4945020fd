package parsing

import (
	"regexp"

	"github.com/jonathan/resume-screener/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// commonSkills is the keyword list for regex-based skill extraction when the
// LLM is unavailable
var commonSkills = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue",
	"node.js", "express", "django", "flask", "spring", "fastapi",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"mysql", "postgresql", "mongodb", "redis", "sql",
	"git", "jenkins", "github", "gitlab", "ci/cd",
	"linux", "unix", "bash", "shell", "powershell",
	"html", "css", "sass", "bootstrap", "tailwind",
	"machine learning", "ai", "data science", "pytorch", "tensorflow",
}

var skillPatterns = compileSkillPatterns()

func compileSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(commonSkills))
	for _, skill := range commonSkills {
		patterns[skill] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// Fallback does regex-based extraction when the LLM call or its output
// cannot be used. It recovers contact details and a keyword-matched skill
// list; structured education and experience entries are beyond its reach.
func Fallback(text string) *types.ParsedResume {
	resume := &types.ParsedResume{}
	resume.EnsureDefaults()

	if match := emailPattern.FindString(text); match != "" {
		resume.Email = match
	}
	if match := phonePattern.FindString(text); match != "" {
		resume.Phone = match
	}

	for _, skill := range commonSkills {
		if skillPatterns[skill].MatchString(text) {
			resume.Skills = append(resume.Skills, skill)
		}
	}

	return resume
}
