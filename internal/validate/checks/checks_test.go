package checks

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vaultkit/plugincheck/internal/validate"
)

// runCheck executes a single check against root and returns its findings.
func runCheck(t *testing.T, check *validate.Check, root string) []validate.Finding {
	t.Helper()

	var findings []validate.Finding
	ctx := &validate.Context{Root: root}
	ctx.Report = func(f validate.Finding) {
		f.Check = check.Name
		findings = append(findings, f)
	}

	if err := check.Run(ctx); err != nil {
		t.Fatalf("check %s failed: %v", check.Name, err)
	}
	return findings
}

// errorMessages extracts error-severity messages in order.
func errorMessages(findings []validate.Finding) []string {
	var msgs []string
	for _, f := range findings {
		if f.Severity == validate.SeverityError {
			msgs = append(msgs, f.Message)
		}
	}
	return msgs
}

// warningMessages extracts warning-severity messages in order.
func warningMessages(findings []validate.Finding) []string {
	var msgs []string
	for _, f := range findings {
		if f.Severity == validate.SeverityWarning {
			msgs = append(msgs, f.Message)
		}
	}
	return msgs
}

// writeProject materializes a project tree under a fresh temp root.
// A key ending in "/" creates a directory.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	writeProjectAt(t, root, files)
	return root
}

func writeProjectAt(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(root, name)
		if name[len(name)-1] == '/' {
			if err := os.MkdirAll(path, 0o755); err != nil {
				t.Fatalf("failed to create dir %s: %v", name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// validManifest is a manifest that passes every manifest rule.
const validManifest = `{
	"id": "sample-notes",
	"name": "Sample Notes",
	"description": "Take sample notes.",
	"author": "Jane Doe",
	"version": "1.0.0",
	"minAppVersion": "0.15.0",
	"isDesktopOnly": false
}`

// compliantProject returns the file set of a fully compliant project.
func compliantProject() map[string]string {
	return map[string]string{
		"manifest.json": validManifest,
		"main.ts":       "export default class SampleNotes {}\n",
		"main.js":       "module.exports = {};\n",
		"package.json":  `{"name": "sample-notes"}`,
		"README.md":     "# Sample Notes\n",
		"styles.css":    ".sample-notes {}\n",
		"LICENSE":       "MIT License\n",
		".gitignore":    "node_modules\n.DS_Store\nThumbs.db\n",
	}
}

// newRunner builds a runner over all checks in their fixed order.
func newRunner(t *testing.T) *validate.Runner {
	t.Helper()

	registry := validate.NewRegistry()
	if err := registry.Register(All()...); err != nil {
		t.Fatalf("failed to register checks: %v", err)
	}
	return validate.NewRunner(registry)
}

// TestAll_Order pins the fixed check order.
func TestAll_Order(t *testing.T) {
	want := []string{"manifest", "structure", "naming", "license", "gitignore"}
	all := All()

	if len(all) != len(want) {
		t.Fatalf("All() returned %d checks, want %d", len(all), len(want))
	}
	for i, check := range all {
		if check.Name != want[i] {
			t.Errorf("check %d: got %q, want %q", i, check.Name, want[i])
		}
	}
}

// TestEndToEnd_CompliantProject verifies a fully well-formed project
// passes with no findings at all.
func TestEndToEnd_CompliantProject(t *testing.T) {
	// The root directory name must match the manifest id for the naming
	// check to stay quiet.
	root := filepath.Join(t.TempDir(), "sample-notes")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create root: %v", err)
	}
	writeProjectAt(t, root, compliantProject())

	result := newRunner(t).Run(context.Background(), root)

	if !result.Passed() {
		t.Errorf("Passed() = false, want true; errors: %v", result.Errors())
	}
	if len(result.Findings) != 0 {
		t.Errorf("expected no findings, got %v", result.Findings)
	}
}

// TestEndToEnd_EmptyProject verifies an empty root fails with all the
// missing-file errors present simultaneously.
func TestEndToEnd_EmptyProject(t *testing.T) {
	result := newRunner(t).Run(context.Background(), t.TempDir())

	if result.Passed() {
		t.Error("Passed() = true, want false")
	}

	errs := result.Errors()
	wantPresent := []string{
		"manifest.json not found at project root",
		"main.ts not found: the plugin source entry point is required",
		"package.json not found at project root",
		"LICENSE file not found at project root",
	}
	for _, want := range wantPresent {
		if !containsMessage(errs, want) {
			t.Errorf("errors missing %q; got %v", want, errs)
		}
	}
}

func containsMessage(msgs []string, want string) bool {
	for _, msg := range msgs {
		if msg == want {
			return true
		}
	}
	return false
}
