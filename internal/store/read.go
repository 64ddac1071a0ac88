package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateFormat = "2006-01-02"

// ReleaseDate is a normalized album release date. The zero value is
// MissingDate.
type ReleaseDate struct {
	t     time.Time
	valid bool
}

// MissingDate marks a release date that could not be parsed. It never equals
// a valid calendar date.
var MissingDate = ReleaseDate{}

// Valid reports whether d holds a calendar date.
func (d ReleaseDate) Valid() bool {
	return d.valid
}

// Time returns the date at midnight UTC, or the zero time for MissingDate.
func (d ReleaseDate) Time() time.Time {
	return d.t
}

// Year returns the calendar year. ok is false for MissingDate.
func (d ReleaseDate) Year() (year int, ok bool) {
	if !d.valid {
		return 0, false
	}
	return d.t.Year(), true
}

func (d ReleaseDate) String() string {
	if !d.valid {
		return "missing"
	}
	return d.t.Format(dateFormat)
}

// Before orders dates chronologically with MissingDate after every valid date.
func (d ReleaseDate) Before(o ReleaseDate) bool {
	switch {
	case !d.valid:
		return false
	case !o.valid:
		return true
	}
	return d.t.Before(o.t)
}

// NormalizeReleaseDate converts a raw release date into a calendar date.
// Values containing '-' are parsed as yyyy-mm-dd (or yyyy-mm). Anything else
// is treated as a year, keeping the text before the first '.', and becomes
// January 1st of that year. Values that still fail to parse yield MissingDate.
func NormalizeReleaseDate(raw string) ReleaseDate {
	s := strings.TrimSpace(raw)

	if !strings.Contains(s, "-") {
		year, _, _ := strings.Cut(s, ".")
		s = year + "-01-01"
	}

	for _, layout := range []string{dateFormat, "2006-01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ReleaseDate{t: t, valid: true}
		}
	}
	return MissingDate
}

func parseDuration(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing duration %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}

// Absent popularity is 0, not an error.
func parsePopularity(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, fmt.Errorf("parsing popularity %q: %w", raw, err)
		}
		p = int(f)
	}
	if p < 0 {
		return 0, fmt.Errorf("negative popularity %q", raw)
	}
	return p, nil
}

func parseExplicit(raw string) (bool, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("parsing explicit flag %q: %w", raw, err)
	}
	return b, nil
}
