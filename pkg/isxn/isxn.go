package isxn

import (
	"strconv"
	"strings"
)

// tokenEnd returns the index of the first character that cannot appear in an
// ISBN or ISSN: anything outside [0-9a-zA-Z-].
func tokenEnd(s string) int {
	return strings.IndexFunc(s, func(r rune) bool {
		switch {
		case r >= '0' && r <= '9':
			return false
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			return false
		case r == '-':
			return false
		}
		return true
	})
}

// Clean strips catalog noise from raw ISBN/ISSN values. Each value is cut at
// the first character outside [0-9a-zA-Z-], which drops trailing annotations
// like "(pbk.)" or "v. 2". Clean never fails on malformed input; the worst
// case is an empty token. A nil or empty input returns nil so callers can
// tell "record has no identifiers" apart from an empty extraction.
func Clean(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if end := tokenEnd(v); end >= 0 {
			v = v[:end]
		}
		cleaned = append(cleaned, v)
	}
	return cleaned
}

// To13 converts an ISBN-10 to ISBN-13 by prepending 978 and computing the check digit.
// Returns an empty string if the input is not a valid ISBN-10.
func To13(isbn10 string) string {
	if len(isbn10) != 10 {
		return ""
	}
	base := "978" + isbn10[:9]
	sum := 0
	for i, c := range base {
		d, err := strconv.Atoi(string(c))
		if err != nil {
			return ""
		}
		if i%2 == 0 {
			sum += d
		} else {
			sum += d * 3
		}
	}
	check := (10 - sum%10) % 10
	return base + strconv.Itoa(check)
}

// To10 converts a 978-prefixed ISBN-13 to ISBN-10.
// Returns an empty string if the input is not a convertible ISBN-13.
func To10(isbn13 string) string {
	if len(isbn13) != 13 || !strings.HasPrefix(isbn13, "978") {
		return ""
	}
	base := isbn13[3:12]
	sum := 0
	for i, c := range base {
		d, err := strconv.Atoi(string(c))
		if err != nil {
			return ""
		}
		sum += d * (10 - i)
	}
	check := (11 - sum%11) % 11
	if check == 10 {
		return base + "X"
	}
	return base + strconv.Itoa(check)
}
