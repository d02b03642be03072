package ignore

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestParse verifies comment and blank-line handling.
func TestParse(t *testing.T) {
	content := "# deps\nnode_modules\n\n  # indented comment\n  *.log  \n/dist\n"
	set := Parse(content)

	want := []string{"node_modules", "*.log", "/dist"}
	if diff := cmp.Diff(want, set.Patterns()); diff != "" {
		t.Errorf("Patterns mismatch (-want +got):\n%s", diff)
	}
}

// TestParse_Empty verifies an empty file yields an empty set.
func TestParse_Empty(t *testing.T) {
	if got := Parse("").Len(); got != 0 {
		t.Errorf("Parse(\"\").Len() = %d, want 0", got)
	}
}

// TestMatches covers the reduced matching sublanguage: exact,
// trailing-slash, leading-slash, and '*' wildcard forms.
func TestMatches(t *testing.T) {
	tests := []struct {
		pattern  string
		artifact string
		want     bool
	}{
		{"node_modules", "node_modules", true},
		{"node_modules/", "node_modules", true},
		{"/node_modules", "node_modules", true},
		{"*.log", "debug.log", true},
		{"*.log", "debug.txt", false},
		{".DS_Store", ".DS_Store", true},
		{"node_modules", "node_modules2", false},
		{"dist", "node_modules", false},
		{"build/*", "build/main.js", true},
		{"*", "anything", true},
	}

	for _, tt := range tests {
		set := Parse(tt.pattern)
		if got := set.Matches(tt.artifact); got != tt.want {
			t.Errorf("Matches(%q) with pattern %q = %v, want %v", tt.artifact, tt.pattern, got, tt.want)
		}
	}
}

// TestMatches_AnyPattern verifies any pattern in the set is enough.
func TestMatches_AnyPattern(t *testing.T) {
	set := Parse("dist\n*.log\nnode_modules/\n")

	for _, artifact := range []string{"dist", "error.log", "node_modules"} {
		if !set.Matches(artifact) {
			t.Errorf("Matches(%q) = false, want true", artifact)
		}
	}
	if set.Matches(".DS_Store") {
		t.Error("Matches(.DS_Store) = true, want false")
	}
}

// TestMatches_NoNegation pins the reduced semantics: negation is not
// understood and a '!' pattern is treated literally.
func TestMatches_NoNegation(t *testing.T) {
	set := Parse("!node_modules")
	if set.Matches("node_modules") {
		t.Error("negated pattern matched; reduced matcher must treat '!' literally")
	}
}
