// Package checks defines the marketplace submission checks run against a
// plugin project.
package checks

import (
	"os"

	"github.com/vaultkit/plugincheck/internal/validate"
)

// All returns the project checks in their required run order: manifest,
// structure, naming, license, gitignore.
func All() []*validate.Check {
	return []*validate.Check{
		Manifest(),
		Structure(),
		Naming(),
		License(),
		Gitignore(),
	}
}

// exists reports whether a file or directory is present at path.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
