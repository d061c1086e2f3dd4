package core

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "20060102"

// Today returns the current date in YYYYMMDD form.
func Today() string {
	return time.Now().Format(dateLayout)
}

// ValidDate reports whether s is a real calendar date in YYYYMMDD form
// within the plausible gazette range.
func ValidDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	year := t.Year()
	return year >= 1900 && year <= 2100
}

// DisplayDate formats a YYYYMMDD date as DD/MM/YYYY for presentation.
// Strings that are not eight characters long are returned unchanged.
func DisplayDate(s string) string {
	if len(s) != 8 {
		return s
	}
	return fmt.Sprintf("%s/%s/%s", s[6:8], s[4:6], s[0:4])
}

// ParseDisplayDate converts a DD/MM/YYYY date back to YYYYMMDD.
// Inputs not in display form are returned unchanged.
func ParseDisplayDate(s string) string {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return s
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(year) != 4 {
		return s
	}
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return year + month + day
}

// ValidMonthKey reports whether s is a YYYYMM month bucket.
func ValidMonthKey(s string) bool {
	if len(s) != 6 {
		return false
	}
	_, err := time.Parse("200601", s)
	return err == nil
}

// ValidYearKey reports whether s is a YYYY year bucket.
func ValidYearKey(s string) bool {
	if len(s) != 4 {
		return false
	}
	t, err := time.Parse("2006", s)
	if err != nil {
		return false
	}
	return t.Year() >= 1900 && t.Year() <= 2100
}
