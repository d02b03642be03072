package checks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/vaultkit/plugincheck/internal/validate"
)

// licenseFile is the expected license location at the project root.
const licenseFile = "LICENSE"

// License returns the check that requires a non-empty license file. The
// license type and format are not inspected.
func License() *validate.Check {
	return &validate.Check{
		Name: "license",
		Doc:  "checks for a non-empty LICENSE file at the project root",
		Run:  runLicense,
	}
}

func runLicense(ctx *validate.Context) error {
	data, err := os.ReadFile(filepath.Join(ctx.Root, licenseFile))
	if err != nil {
		if os.IsNotExist(err) {
			ctx.Error(licenseFile, "LICENSE file not found at project root")
			return nil
		}
		return err
	}

	if strings.TrimSpace(string(data)) == "" {
		ctx.Error(licenseFile, "LICENSE file is empty")
	}

	return nil
}
