package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace  = regexp.MustCompile(`[ \t]+`)
	multiBlank  = regexp.MustCompile(`\n{3,}`)
	bulletChars = []string{"•", "·", "▪", "◦", "‣", "* "}
)

// CleanText normalizes extracted resume text. Line structure is preserved
// because the duration parser and the LLM prompt both rely on it, but
// converter artifacts (stray form feeds, odd bullets, runs of spaces) are
// smoothed out.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\f", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = multiBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses whitespace within a line and normalizes bullet markers
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}

	for _, b := range bulletChars {
		if strings.HasPrefix(line, b) {
			line = "- " + strings.TrimSpace(strings.TrimPrefix(line, b))
			break
		}
	}

	return multiSpace.ReplaceAllString(line, " ")
}
