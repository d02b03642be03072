package checks

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vaultkit/plugincheck/internal/manifest"
	"github.com/vaultkit/plugincheck/internal/validate"
)

const (
	// obsidianSiteURL is the host's marketing site; authorUrl must not
	// point back to it.
	obsidianSiteURL = "https://obsidian.md"

	// obsidianPricingURL is the host's pricing page; fundingUrl must not
	// point to it.
	obsidianPricingURL = "https://obsidian.md/pricing"

	// maxDescriptionLength is the longest allowed description. Exactly
	// this length is still allowed.
	maxDescriptionLength = 250
)

var (
	idPattern      = regexp.MustCompile(`^[a-z0-9-_]+$`)
	versionPattern = regexp.MustCompile(`^[0-9.]+$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// discouragedPhrases are self-referential description openers that read
// poorly in the marketplace listing.
var discouragedPhrases = []string{
	"this plugin",
	"this is a plugin",
	"this plugin allows",
}

// Manifest returns the check that validates manifest.json fields against
// marketplace submission rules.
func Manifest() *validate.Check {
	return &validate.Check{
		Name: "manifest",
		Doc:  "validates manifest.json fields against marketplace submission rules",
		Run:  runManifest,
	}
}

func runManifest(ctx *validate.Context) error {
	data, err := os.ReadFile(filepath.Join(ctx.Root, manifest.Filename))
	if err != nil {
		if os.IsNotExist(err) {
			ctx.Error(manifest.Filename, "manifest.json not found at project root")
			return nil
		}
		return err
	}

	m, err := manifest.Parse(data)
	if err != nil {
		ctx.Errorf(manifest.Filename, "Could not parse manifest.json: %v", err)
		return nil
	}

	for _, field := range manifest.RequiredFields {
		if !m.Has(field) {
			ctx.Errorf(manifest.Filename, "manifest.json is missing required field: %s", field)
		}
	}

	for _, key := range m.Keys() {
		if !manifest.AllowedField(key) {
			ctx.Errorf(manifest.Filename, "manifest.json has invalid field: %s", key)
		}
	}

	checkID(ctx, m)
	checkName(ctx, m)
	checkAuthor(ctx, m)
	checkDescription(ctx, m)
	checkURLs(ctx, m)
	checkVersion(ctx, m)

	return nil
}

func checkID(ctx *validate.Context, m *manifest.Manifest) {
	if !m.Has("id") {
		return
	}

	lower := strings.ToLower(m.ID)
	if strings.Contains(lower, "obsidian") {
		ctx.Error(manifest.Filename, `Plugin id must not contain the word "obsidian"`)
	}
	if strings.HasSuffix(lower, "plugin") {
		ctx.Error(manifest.Filename, `Plugin id must not end with "plugin"`)
	}
	if !idPattern.MatchString(m.ID) {
		ctx.Error(manifest.Filename, "Plugin id must contain only lowercase alphanumeric characters, dashes, and underscores")
	}
}

func checkName(ctx *validate.Context, m *manifest.Manifest) {
	if !m.Has("name") {
		return
	}

	lower := strings.ToLower(m.Name)
	if strings.Contains(lower, "obsidian") {
		ctx.Error(manifest.Filename, `Plugin name must not contain the word "obsidian"`)
	}
	if strings.HasSuffix(lower, "plugin") {
		ctx.Error(manifest.Filename, `Plugin name must not end with "plugin"`)
	}
	// Catches partial brand-name leakage like "Obsi Notes" or "My Dian".
	if strings.HasPrefix(lower, "obsi") || strings.HasSuffix(lower, "dian") {
		ctx.Error(manifest.Filename, `Plugin name must not resemble the word "obsidian"`)
	}
}

func checkAuthor(ctx *validate.Context, m *manifest.Manifest) {
	if !m.Has("author") {
		return
	}

	if emailPattern.MatchString(m.Author) {
		ctx.Warning(manifest.Filename, "Author field appears to be an email address; consider using a name instead")
	}
}

func checkDescription(ctx *validate.Context, m *manifest.Manifest) {
	if !m.Has("description") {
		return
	}

	lower := strings.ToLower(m.Description)
	if strings.Contains(lower, "obsidian") {
		ctx.Error(manifest.Filename, `Description must not contain the word "obsidian"`)
	}

	for _, phrase := range discouragedPhrases {
		if strings.Contains(lower, phrase) {
			ctx.Warning(manifest.Filename, `Avoid describing the plugin as "this plugin" in the description`)
			break
		}
	}

	if length := len([]rune(m.Description)); length > maxDescriptionLength {
		ctx.Errorf(manifest.Filename, "Description is too long (%d characters); must be at most %d", length, maxDescriptionLength)
	}
}

func checkURLs(ctx *validate.Context, m *manifest.Manifest) {
	if m.Has("authorUrl") && m.AuthorURL == obsidianSiteURL {
		ctx.Error(manifest.Filename, "authorUrl should not point to the Obsidian website")
	}

	if m.Has("fundingUrl") {
		switch m.FundingURL {
		case obsidianPricingURL:
			ctx.Error(manifest.Filename, "fundingUrl should not point to the Obsidian pricing page")
		case "":
			ctx.Error(manifest.Filename, "fundingUrl should be removed if empty, or contain a valid funding link")
		}
	}
}

func checkVersion(ctx *validate.Context, m *manifest.Manifest) {
	if !m.Has("version") {
		return
	}

	if !versionPattern.MatchString(m.Version) {
		ctx.Error(manifest.Filename, "Version must contain only digits and dots, with no pre-release or build suffix")
	}
}
