package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// letters/digits of any script plus a few joiners; the catalog and
	// queries are Arabic-heavy so ASCII-only classes would reject them
	reQ = regexp.MustCompile(`^[\p{L}\p{N} _'\-]{1,50}$`)

	reSheetID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	sortPolicies = map[string]bool{
		"name": true, "name-desc": true,
		"price-asc": true, "price-desc": true,
		"newest": true, "popular": true,
	}
)

// ProductID parses a catalog id: positive integer.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Qty parses an add/update quantity, defaulting to 1 and clamping to 50
// to avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Q validates a search query: trims, caps the length, enforces allowed
// characters. The cap counts runes, not bytes — Arabic queries are two
// bytes per rune and a byte slice could cut one in half.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if utf8.RuneCountInString(s) > 50 {
		s = string([]rune(s)[:50])
	}
	return s, reQ.MatchString(s)
}

// Price parses an inclusive price bound; empty means unset (0).
func Price(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Sort validates a sort policy name; empty keeps the current policy.
func Sort(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	return s, sortPolicies[s]
}

// Page parses a 1-based page number, defaulting to 1.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// SheetID validates a spreadsheet id.
func SheetID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 128 {
		return "", false
	}
	return s, reSheetID.MatchString(s)
}
