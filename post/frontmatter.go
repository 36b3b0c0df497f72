package post

import (
	"regexp"
	"strings"
)

// frontmatterPattern matches an optional leading block delimited by
// lines of three hyphens. The block body is non-greedy so the first
// closing delimiter ends it; everything after belongs to the body.
var frontmatterPattern = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n(.*)$`)

// ParseFrontmatter splits content into a flat key/value metadata map
// and the remaining Markdown body. Only `key: value` lines are
// recognized; lines without a colon are ignored and later duplicate
// keys overwrite earlier ones. When no frontmatter block is present
// the original content is returned unchanged with an empty map. It
// never fails: a malformed block simply does not match.
func ParseFrontmatter(content string) (map[string]string, string) {
	metadata := make(map[string]string)

	m := frontmatterPattern.FindStringSubmatch(content)
	if m == nil {
		return metadata, content
	}

	for _, line := range strings.Split(m[1], "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		key := strings.TrimSpace(parts[0])
		value := stripQuotes(strings.TrimSpace(parts[1]))
		metadata[key] = value
	}

	return metadata, m[2]
}

// stripQuotes removes one layer of surrounding single or double
// quotes, if present.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
