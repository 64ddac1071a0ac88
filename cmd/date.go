package cmd

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

var (
	yearPattern      = regexp.MustCompile(`^\d{4}$`)
	yearRangePattern = regexp.MustCompile(`^(\d{4})-(\d{4})$`)
)

// parseYearRangeFromArgs turns zero, one or two year arguments into an
// inclusive range. With no arguments the full range of the table is used.
func parseYearRangeFromArgs(args []string, full analysis.YearRange) (years analysis.YearRange, err error) {
	switch len(args) {
	case 0:
		years = full

	case 1:
		years, err = getImplicitYearRange(args[0])

	case 2:
		years, err = getExplicitYearRange(args[0], args[1])

	default:
		err = fmt.Errorf("Expected at most two year arguments")
	}
	return
}

// getImplicitYearRange accepts "yyyy" or "yyyy-yyyy".
func getImplicitYearRange(ys string) (years analysis.YearRange, err error) {
	if m := yearRangePattern.FindStringSubmatch(ys); m != nil {
		return getExplicitYearRange(m[1], m[2])
	}

	year, err := parseSingleYearstring(ys)
	if err != nil {
		return
	}
	years = analysis.YearRange{Min: year, Max: year}
	return
}

func getExplicitYearRange(fromString, toString string) (years analysis.YearRange, err error) {
	from, err := parseSingleYearstring(fromString)
	if err != nil {
		return
	}
	to, err := parseSingleYearstring(toString)
	if err != nil {
		return
	}
	if from > to {
		err = fmt.Errorf("Invalid range: %d is after %d", from, to)
		return
	}
	years = analysis.YearRange{Min: from, Max: to}
	return
}

func parseSingleYearstring(ys string) (int, error) {
	if !yearPattern.MatchString(ys) {
		return 0, fmt.Errorf("Invalid format: %q", ys)
	}
	year, err := strconv.Atoi(ys)
	if err != nil {
		return 0, fmt.Errorf("Parsing year: %w", err)
	}
	return year, nil
}

// isYearArg reports whether s looks like a year argument rather than a name.
func isYearArg(s string) bool {
	return yearPattern.MatchString(s) || yearRangePattern.MatchString(s)
}

// splitYearArgs peels up to two trailing year arguments off args.
func splitYearArgs(args []string) (rest []string, yearArgs []string) {
	rest = args
	for i := 0; i < 2 && len(rest) > 0 && isYearArg(rest[len(rest)-1]); i++ {
		yearArgs = append([]string{rest[len(rest)-1]}, yearArgs...)
		rest = rest[:len(rest)-1]
	}
	return
}
