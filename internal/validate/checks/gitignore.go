package checks

import (
	"os"
	"path/filepath"

	"github.com/vaultkit/plugincheck/internal/ignore"
	"github.com/vaultkit/plugincheck/internal/validate"
)

// trackedArtifacts are files and directories that commonly end up in a
// plugin repository by accident: the dependency cache and OS metadata
// files. Each one found on disk must be covered by the ignore file.
var trackedArtifacts = []string{
	"node_modules",
	".DS_Store",
	"Thumbs.db",
}

// Gitignore returns the check that verifies known build artifacts are
// covered by the project's ignore file.
func Gitignore() *validate.Check {
	return &validate.Check{
		Name: "gitignore",
		Doc:  "checks that known build artifacts are covered by .gitignore",
		Run:  runGitignore,
	}
}

func runGitignore(ctx *validate.Context) error {
	patterns := ignore.Parse("")

	data, err := os.ReadFile(filepath.Join(ctx.Root, ignore.Filename))
	switch {
	case err == nil:
		patterns = ignore.Parse(string(data))
	case os.IsNotExist(err):
		ctx.Warning(ignore.Filename, ".gitignore not found at project root")
	default:
		// Unreadable ignore file downgrades to an empty pattern set so the
		// artifact scan still completes.
		ctx.Warningf(ignore.Filename, "Could not read .gitignore: %v", err)
	}

	for _, artifact := range trackedArtifacts {
		if !exists(filepath.Join(ctx.Root, artifact)) {
			continue
		}
		if !patterns.Matches(artifact) {
			ctx.Warningf(ignore.Filename, "Build artifact found but not in .gitignore: %s", artifact)
		}
	}

	return nil
}
