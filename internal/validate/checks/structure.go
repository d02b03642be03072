package checks

import (
	"path/filepath"

	"github.com/vaultkit/plugincheck/internal/validate"
)

const (
	// entryPointFile is the plugin source entry point.
	entryPointFile = "main.ts"

	// buildOutputFile is the compiled bundle loaded by the host.
	buildOutputFile = "main.js"
)

// requiredFiles must be present for a submission to pass.
var requiredFiles = []string{"package.json"}

// recommendedFiles are advisory; their absence is a warning.
var recommendedFiles = []string{"README.md", "styles.css"}

// Structure returns the check that verifies presence of required and
// recommended project files. Only existence is checked, nothing is
// parsed.
func Structure() *validate.Check {
	return &validate.Check{
		Name: "structure",
		Doc:  "checks that required and recommended project files are present",
		Run:  runStructure,
	}
}

func runStructure(ctx *validate.Context) error {
	if !exists(filepath.Join(ctx.Root, entryPointFile)) {
		ctx.Errorf(entryPointFile, "%s not found: the plugin source entry point is required", entryPointFile)
	}

	for _, name := range requiredFiles {
		if !exists(filepath.Join(ctx.Root, name)) {
			ctx.Errorf(name, "%s not found at project root", name)
		}
	}

	for _, name := range recommendedFiles {
		if !exists(filepath.Join(ctx.Root, name)) {
			ctx.Warningf(name, "%s not found; recommended for marketplace submission", name)
		}
	}

	if !exists(filepath.Join(ctx.Root, buildOutputFile)) {
		ctx.Warningf(buildOutputFile, "%s not found; build the plugin before packaging", buildOutputFile)
	}

	return nil
}
