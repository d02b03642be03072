// Package testutil provides small helpers shared by tests.
package testutil

import "github.com/pmezard/go-difflib/difflib"

// Diff returns a unified diff between want and got, for readable failure
// output when comparing multi-line strings such as reporter output.
func Diff(want, got string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "diff failed: " + err.Error()
	}
	return text
}
