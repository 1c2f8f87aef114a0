// Package normalize provides pure display normalization for CV fields:
// date formatting, date ranges, and proficiency capitalization.
package normalize

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// PresentLabel is substituted for the end date of any current engagement.
const PresentLabel = "Present"

// isoDateLayout is the only date layout given special display treatment.
const isoDateLayout = "2006-01-02"

// displayDateLayout renders as abbreviated month plus year, e.g. "Mar 2023".
const displayDateLayout = "Jan 2006"

// Date converts a raw date value into its display form.
//
// Current engagements always display as PresentLabel regardless of the raw
// value. Blank input displays as empty. ISO calendar dates (YYYY-MM-DD)
// display as "Mar 2023". Anything else passes through trimmed; Date never
// fails on malformed input.
func Date(raw string, isCurrent bool) string {
	if isCurrent {
		return PresentLabel
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if t, err := time.Parse(isoDateLayout, trimmed); err == nil {
		return t.Format(displayDateLayout)
	}
	return trimmed
}

// DateRange formats a start/end pair as "start - end", applying Date to
// both sides. isCurrent applies to the end side only.
func DateRange(start, end string, isCurrent bool) string {
	return Date(start, false) + " - " + Date(end, isCurrent)
}

// Capitalize upper-cases the first rune and lower-cases the remainder,
// so "intermediate", "INTERMEDIATE" and "Intermediate" all display the
// same way.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
