package checks

import (
	"path/filepath"

	"github.com/vaultkit/plugincheck/internal/manifest"
	"github.com/vaultkit/plugincheck/internal/validate"
)

// Naming returns the check that cross-checks the manifest id against the
// project directory name.
//
// The check reads the manifest independently of the manifest check and
// assumes that one owns all read and parse reporting: any failure to load
// the manifest is silently skipped here so the problem is not reported
// twice.
func Naming() *validate.Check {
	return &validate.Check{
		Name: "naming",
		Doc:  "cross-checks the manifest id against the project directory name",
		Run:  runNaming,
	}
}

func runNaming(ctx *validate.Context) error {
	m, err := manifest.Load(ctx.Root)
	if err != nil {
		return nil
	}
	if !m.Has("id") {
		return nil
	}

	dir := baseName(ctx.Root)
	if m.ID != dir {
		ctx.Warningf(manifest.Filename, "manifest id %q does not match the project directory name %q", m.ID, dir)
	}

	return nil
}

// baseName returns the final path segment of the project root, resolving
// relative roots like "." against the working directory first.
func baseName(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		return filepath.Base(filepath.Clean(root))
	}
	return filepath.Base(abs)
}
