// Package experience infers total work-experience duration from the free-text
// duration and date strings found on resumes.
package experience

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-screener/internal/types"
)

// monthNames maps month-name tokens (full and abbreviated forms) to month
// numbers. Fixed configuration: duration output parity depends on these
// exact entries.
var monthNames = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sept": 9, "sep": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var (
	yearsPattern     = regexp.MustCompile(`(?i)(\d+)\s*(?:year|yr)s?`)
	monthsPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:month|mo)s?`)
	calendarYear     = regexp.MustCompile(`(\d{4})`)
	numericMonthLead = regexp.MustCompile(`\b(\d{1,2})[/-]`)
	presentToken     = regexp.MustCompile(`\b(?:present|current|now)\b`)
)

// TotalYears computes the total work experience across entries, in years
// rounded to one decimal. Per entry an explicit "<N> years <M> months"
// duration phrase wins; otherwise the start/end dates are parsed. Entries
// with no usable duration or date contribute zero, and a negative date range
// contributes zero, so the total is never negative.
//
// now supplies the moment "present" resolves to, keeping the calculation
// pure and testable.
func TotalYears(entries []types.Experience, now time.Time) float64 {
	totalMonths := 0

	for _, entry := range entries {
		if m := durationMonths(entry.Duration); m > 0 {
			totalMonths += m
			continue
		}

		if entry.StartDate == "" {
			continue
		}
		startYear, startMonth := parseDate(entry.StartDate, now)
		if startYear == 0 {
			continue
		}

		endYear, endMonth := now.Year(), int(now.Month())
		if entry.EndDate != "" {
			endYear, endMonth = parseDate(entry.EndDate, now)
		}
		if endYear == 0 {
			continue
		}

		if diff := (endYear-startYear)*12 + (endMonth - startMonth); diff > 0 {
			totalMonths += diff
		}
	}

	if totalMonths == 0 {
		return 0.0
	}
	return math.Round(float64(totalMonths)/12*10) / 10
}

// durationMonths extracts months from an explicit duration phrase like
// "2 years 3 months" or "18 mos". Returns 0 when no phrase is present.
func durationMonths(duration string) int {
	if duration == "" {
		return 0
	}

	years := 0
	if m := yearsPattern.FindStringSubmatch(duration); m != nil {
		years, _ = strconv.Atoi(m[1])
	}
	months := 0
	if m := monthsPattern.FindStringSubmatch(duration); m != nil {
		months, _ = strconv.Atoi(m[1])
	}

	return years*12 + months
}

// parseDate extracts a (year, month) pair from a human-written date string.
// "present", "current" and "now" resolve to the supplied now. A missing year
// yields (0, 0), meaning the date is not usable; a missing month defaults
// to January.
func parseDate(dateStr string, now time.Time) (int, int) {
	s := strings.ToLower(strings.TrimSpace(dateStr))
	if s == "" {
		return 0, 0
	}

	if presentToken.MatchString(s) {
		return now.Year(), int(now.Month())
	}

	year := 0
	if m := calendarYear.FindStringSubmatch(s); m != nil {
		year, _ = strconv.Atoi(m[1])
	}
	if year == 0 {
		return 0, 0
	}

	month := 1
	if found, num := monthNameIn(s); found {
		month = num
	} else if m := numericMonthLead.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 12 {
			month = n
		}
	}

	return year, month
}

// monthNameIn scans for the first month-name token contained in s, longest
// names first so "september" is not shadowed by "sep".
func monthNameIn(s string) (bool, int) {
	best := ""
	num := 0
	for name, n := range monthNames {
		if strings.Contains(s, name) && len(name) > len(best) {
			best = name
			num = n
		}
	}
	return best != "", num
}
