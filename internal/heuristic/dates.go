package heuristic

import (
	"regexp"
	"strings"
)

// DateRange is the parsed form of a date span found in a CV line.
// Start and End use the "YYYY-MM" format; Current means the range is
// open-ended (End is left empty).
type DateRange struct {
	Start   string
	End     string
	Current bool
}

const monthPattern = `(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?`

var (
	reMonthYearRange = regexp.MustCompile(`(?i)\b(` + monthPattern + `)\s+(\d{4})\s*(?:[-–—]+|to)\s*(?:(` + monthPattern + `)\s+(\d{4})|(present|current|now))`)
	reYearRange      = regexp.MustCompile(`\b(\d{4})\s*(?:[-–—]+|to)\s*(\d{4})\b`)
	reYearPresent    = regexp.MustCompile(`(?i)\b(\d{4})\s*(?:[-–—]+|to)\s*(present|current|now)\b`)
	reSinceYear      = regexp.MustCompile(`(?i)\bsince\s+(\d{4})\b`)
	reMonthYear      = regexp.MustCompile(`(?i)\b(` + monthPattern + `)\s+(\d{4})\b`)
	reBareYear       = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
)

// monthNumber resolves an English month name or abbreviation to "01".."12".
func monthNumber(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSuffix(name, "."))
	if len(key) > 3 {
		key = key[:3]
	}
	num, ok := monthNumbers[key]
	return num, ok
}

// extractDateRange finds the first date span in line, trying patterns from the
// most specific (month-year ranges) to the least (a bare year). It returns the
// parsed range and the matched substring so the caller can strip it before
// splitting role and company. academic controls how a bare year expands: work
// entries get the calendar year (Jan-Dec), education entries get the academic
// year (Sep-May).
//
// A single month-year is tried before a bare year: the bare-year pattern would
// otherwise always shadow it, since every month-year contains a year.
func extractDateRange(line string, academic bool) (*DateRange, string) {
	if m := reMonthYearRange.FindStringSubmatch(line); m != nil {
		startMonth, ok := monthNumber(m[1])
		if ok {
			dr := &DateRange{Start: m[2] + "-" + startMonth}
			if m[5] != "" {
				dr.Current = true
			} else if endMonth, ok := monthNumber(m[3]); ok {
				dr.End = m[4] + "-" + endMonth
			}
			return dr, m[0]
		}
	}

	if m := reYearRange.FindStringSubmatch(line); m != nil {
		return &DateRange{Start: m[1] + "-01", End: m[2] + "-12"}, m[0]
	}

	if m := reYearPresent.FindStringSubmatch(line); m != nil {
		return &DateRange{Start: m[1] + "-01", Current: true}, m[0]
	}

	if m := reSinceYear.FindStringSubmatch(line); m != nil {
		return &DateRange{Start: m[1] + "-01", Current: true}, m[0]
	}

	if m := reMonthYear.FindStringSubmatch(line); m != nil {
		if month, ok := monthNumber(m[1]); ok {
			return &DateRange{Start: m[2] + "-" + month}, m[0]
		}
	}

	if m := reBareYear.FindStringSubmatch(line); m != nil {
		if academic {
			return &DateRange{Start: m[1] + "-09", End: m[1] + "-05"}, m[0]
		}
		return &DateRange{Start: m[1] + "-01", End: m[1] + "-12"}, m[0]
	}

	return nil, ""
}

// stripDateSpan removes the matched date substring from the line and tidies
// the leftover separators and whitespace around the gap.
func stripDateSpan(line, span string) string {
	if span == "" {
		return line
	}
	rest := strings.Replace(line, span, " ", 1)
	rest = strings.Trim(rest, " \t,;|•-–—()")
	return strings.Join(strings.Fields(rest), " ")
}
