package browser

import (
	"regexp"
	"strings"
)

// URLPattern compiles a URL template into a regular expression matched against the full URL.
//
// "**" matches any run of characters, "*" matches within one path segment and every other
// character is literal. A template starting with "/" is resolved against baseURL; any
// other template without a scheme may appear anywhere in the URL.
func URLPattern(baseURL, template string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")

	floating := false
	switch {
	case strings.HasPrefix(template, "/"):
		b.WriteString(regexp.QuoteMeta(strings.TrimRight(baseURL, "/")))
	case strings.HasPrefix(template, "*"), strings.Contains(template, "://"):
	default:
		floating = true
		b.WriteString(".*")
	}

	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '*' {
			b.WriteString(regexp.QuoteMeta(string(c)))
			continue
		}
		if i+1 < len(template) && template[i+1] == '*' {
			b.WriteString(".*")
			i++
			continue
		}
		b.WriteString("[^/]*")
	}

	if floating {
		b.WriteString(".*")
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

// URLContains matches any URL holding fragment as a substring
func URLContains(fragment string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(fragment))
}

// IsGlob reports whether a URL template contains wildcards
func IsGlob(template string) bool {
	return strings.Contains(template, "*")
}
