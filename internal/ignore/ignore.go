// Package ignore implements the reduced ignore-pattern matching used by
// the build-artifact hygiene check.
//
// The matcher is deliberately a small subset of real gitignore syntax:
// exact matches, trailing-slash and leading-slash matches, and '*'
// wildcards translated to an unanchored regular expression. There is no
// negation, no '**', and no nested-directory semantics.
package ignore

import (
	"regexp"
	"strings"
)

// Filename is the well-known ignore-file location relative to the project
// root.
const Filename = ".gitignore"

// PatternSet holds the ordered, non-empty, non-comment lines of an
// ignore file.
type PatternSet struct {
	patterns []string
}

// Parse extracts the pattern set from ignore-file contents. Lines are
// trimmed; empty lines and lines whose first non-whitespace character is
// '#' are discarded.
func Parse(content string) *PatternSet {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return &PatternSet{patterns: patterns}
}

// Patterns returns the patterns in file order.
func (s *PatternSet) Patterns() []string {
	return append([]string(nil), s.patterns...)
}

// Len returns the number of patterns.
func (s *PatternSet) Len() int {
	return len(s.patterns)
}

// Matches reports whether any pattern covers the artifact name.
func (s *PatternSet) Matches(artifact string) bool {
	for _, pattern := range s.patterns {
		if matchPattern(pattern, artifact) {
			return true
		}
	}
	return false
}

// matchPattern tests one pattern against an artifact name, in precedence
// order: exact equality, equality with a trailing slash appended to the
// artifact, equality with a leading slash prepended to the artifact, and
// finally '*' wildcard translation.
func matchPattern(pattern, artifact string) bool {
	if pattern == artifact {
		return true
	}
	if pattern == artifact+"/" {
		return true
	}
	if pattern == "/"+artifact {
		return true
	}
	if strings.Contains(pattern, "*") {
		// Escape path separators and translate '*' to '.*'; other regex
		// metacharacters pass through, matching the reduced sublanguage.
		expr := strings.ReplaceAll(pattern, "/", `\/`)
		expr = strings.ReplaceAll(expr, "*", ".*")
		re, err := regexp.Compile(expr)
		if err != nil {
			return false
		}
		return re.MatchString(artifact)
	}
	return false
}
