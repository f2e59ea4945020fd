package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/types"
)

// testNow pins "present" to June 2024 so date arithmetic is deterministic.
var testNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func TestTotalYearsFromDurationText(t *testing.T) {
	tests := []struct {
		name     string
		entries  []types.Experience
		expected float64
	}{
		{
			name:     "years and months combined",
			entries:  []types.Experience{{Duration: "2 years 3 months"}},
			expected: 2.3, // 27 months
		},
		{
			name: "two explicit durations sum",
			entries: []types.Experience{
				{Duration: "2 years 3 months"},
				{Duration: "2 years 3 months"},
			},
			expected: 4.5, // 54 months
		},
		{
			name:     "abbreviated units",
			entries:  []types.Experience{{Duration: "3 yrs 6 mos"}},
			expected: 3.5,
		},
		{
			name:     "months only",
			entries:  []types.Experience{{Duration: "18 months"}},
			expected: 1.5,
		},
		{
			name:     "case insensitive",
			entries:  []types.Experience{{Duration: "1 Year 6 Months"}},
			expected: 1.5,
		},
		{
			name: "duration text wins over dates",
			entries: []types.Experience{{
				Duration:  "1 year",
				StartDate: "Jan 2010",
				EndDate:   "Jan 2020",
			}},
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TotalYears(tt.entries, testNow), 0.001)
		})
	}
}

func TestTotalYearsFromDates(t *testing.T) {
	tests := []struct {
		name     string
		entries  []types.Experience
		expected float64
	}{
		{
			name:     "month name to present",
			entries:  []types.Experience{{StartDate: "Jan 2020", EndDate: "present"}},
			expected: 4.4, // 53 months, Jan 2020 -> Jun 2024
		},
		{
			name:     "missing end date uses now",
			entries:  []types.Experience{{StartDate: "Jan 2020"}},
			expected: 4.4,
		},
		{
			name:     "full month names",
			entries:  []types.Experience{{StartDate: "January 2020", EndDate: "January 2022"}},
			expected: 2.0,
		},
		{
			name:     "sept abbreviation",
			entries:  []types.Experience{{StartDate: "Sept 2021", EndDate: "Sept 2022"}},
			expected: 1.0,
		},
		{
			name:     "numeric month prefix",
			entries:  []types.Experience{{StartDate: "03/2020", EndDate: "03/2021"}},
			expected: 1.0,
		},
		{
			name:     "numeric month with dash",
			entries:  []types.Experience{{StartDate: "6-2020", EndDate: "6-2023"}},
			expected: 3.0,
		},
		{
			name:     "year only defaults to January",
			entries:  []types.Experience{{StartDate: "2020", EndDate: "2021"}},
			expected: 1.0,
		},
		{
			name:     "current sentinel",
			entries:  []types.Experience{{StartDate: "Jun 2023", EndDate: "Current"}},
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, TotalYears(tt.entries, testNow), 0.001)
		})
	}
}

func TestTotalYearsDegradesToZero(t *testing.T) {
	tests := []struct {
		name    string
		entries []types.Experience
	}{
		{"no entries", nil},
		{"empty entry", []types.Experience{{}}},
		{"unparsable dates", []types.Experience{{StartDate: "sometime", EndDate: "later"}}},
		{"end before start", []types.Experience{{StartDate: "Jan 2022", EndDate: "Jan 2020"}}},
		{"end date unusable", []types.Experience{{StartDate: "Jan 2020", EndDate: "unknown"}}},
		{"garbage duration", []types.Experience{{Duration: "a while"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, TotalYears(tt.entries, testNow))
		})
	}
}

func TestTotalYearsMixedEntries(t *testing.T) {
	entries := []types.Experience{
		{Duration: "2 years"},                             // 24 months
		{StartDate: "Jan 2020", EndDate: "Jan 2021"},      // 12 months
		{StartDate: "garbage"},                            // 0
		{StartDate: "Mar 2022", EndDate: "February 2020"}, // negative, clamps to 0
	}
	assert.InDelta(t, 3.0, TotalYears(entries, testNow), 0.001)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth int
	}{
		{"month name and year", "March 2019", 2019, 3},
		{"abbreviated month", "mar 2019", 2019, 3},
		{"september not shadowed", "September 2019", 2019, 9},
		{"numeric prefix", "11/2019", 2019, 11},
		{"numeric out of range ignored", "13/2019", 2019, 1},
		{"bare year", "2019", 2019, 1},
		{"present", "Present", testNow.Year(), int(testNow.Month())},
		{"now", "now", testNow.Year(), int(testNow.Month())},
		{"no year", "March", 0, 0},
		{"empty", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := parseDate(tt.input, testNow)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}
