// Package cmdtest provides a testscript-based test harness for the
// plugincheck CLI.
//
// It uses txtar format test files to specify input project trees and
// expected outputs, making it easy to write end-to-end CLI tests.
//
// Example test file (testdata/plugincheck/missing_license.txtar):
//
//	# Validation fails when no LICENSE is present
//	! exec plugincheck .
//	stdout 'LICENSE file not found'
//
//	-- manifest.json --
//	{"id": "sample", ...}
package cmdtest

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/vaultkit/plugincheck/internal/cmd/plugincheck"
)

// Run executes the testscript tests in the given directory.
func Run(t *testing.T, dir string) {
	testscript.Run(t, testscript.Params{
		Dir: dir,
	})
}

// Main is the TestMain function that should be called from test files.
// It sets up the CLI as a testscript command.
func Main(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"plugincheck": wrapRun(plugincheck.Run),
	}))
}

// wrapRun wraps a Run(args []string) int function to func() int for testscript.
// The args are taken from os.Args[1:].
func wrapRun(run func(args []string) int) func() int {
	return func() int {
		return run(os.Args[1:])
	}
}
