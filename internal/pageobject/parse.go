package pageobject

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseLeadingInt parses the optionally signed integer at the start of s,
// ignoring leading whitespace and anything after the digits ("3 items" is 3).
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntOrDefault reads a counter from UI text. Empty, unparsable and zero
// readings yield fallback instead of an error.
func IntOrDefault(s string, fallback int) int {
	n, ok := ParseLeadingInt(s)
	if !ok || n == 0 {
		return fallback
	}
	return n
}
