package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func noop(*Context) error { return nil }

func testChecks() []*Check {
	return []*Check{
		{Name: "manifest", Doc: "a", Run: noop},
		{Name: "structure", Doc: "b", Run: noop},
		{Name: "naming", Doc: "c", Run: noop},
	}
}

func names(checks []*Check) []string {
	var out []string
	for _, c := range checks {
		out = append(out, c.Name)
	}
	return out
}

// TestRegistry_OrderPreserved verifies checks run in registration order.
func TestRegistry_OrderPreserved(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testChecks()...); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	want := []string{"manifest", "structure", "naming"}
	if diff := cmp.Diff(want, names(registry.EnabledChecks())); diff != "" {
		t.Errorf("EnabledChecks mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, names(registry.AllChecks())); diff != "" {
		t.Errorf("AllChecks mismatch (-want +got):\n%s", diff)
	}
}

// TestRegistry_EnableDisable verifies name, "all", and glob handling.
func TestRegistry_EnableDisable(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(testChecks()...); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	registry.Disable("naming")
	want := []string{"manifest", "structure"}
	if diff := cmp.Diff(want, names(registry.EnabledChecks())); diff != "" {
		t.Errorf("after Disable(naming) (-want +got):\n%s", diff)
	}

	registry.Disable("all")
	if got := registry.EnabledChecks(); len(got) != 0 {
		t.Errorf("after Disable(all): got %v, want none", names(got))
	}

	registry.Enable("man*")
	if diff := cmp.Diff([]string{"manifest"}, names(registry.EnabledChecks())); diff != "" {
		t.Errorf("after Enable(man*) (-want +got):\n%s", diff)
	}

	registry.Enable("all")
	if got := len(registry.EnabledChecks()); got != 3 {
		t.Errorf("after Enable(all): got %d checks, want 3", got)
	}

	// Unknown names without wildcards are ignored.
	registry.Disable("nonexistent")
	if got := len(registry.EnabledChecks()); got != 3 {
		t.Errorf("after Disable(nonexistent): got %d checks, want 3", got)
	}
}

// TestRegistry_RegisterErrors verifies registration validation.
func TestRegistry_RegisterErrors(t *testing.T) {
	tests := []struct {
		name  string
		check *Check
	}{
		{"empty name", &Check{Name: "", Run: noop}},
		{"uppercase name", &Check{Name: "Manifest", Run: noop}},
		{"leading hyphen", &Check{Name: "-manifest", Run: noop}},
		{"missing run", &Check{Name: "manifest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry()
			if err := registry.Register(tt.check); err == nil {
				t.Errorf("Register(%q) succeeded, want error", tt.check.Name)
			}
		})
	}
}

// TestRegistry_DuplicateName verifies duplicates are rejected.
func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(&Check{Name: "manifest", Run: noop}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := registry.Register(&Check{Name: "manifest", Run: noop}); err == nil {
		t.Error("duplicate Register succeeded, want error")
	}
}

// TestMatchGlob verifies the simple wildcard matcher.
func TestMatchGlob(t *testing.T) {
	tests := []struct {
		pattern string
		str     string
		want    bool
	}{
		{"manifest", "manifest", true},
		{"man*", "manifest", true},
		{"*fest", "manifest", true},
		{"man*st", "manifest", true},
		{"man*", "naming", false},
		{"*", "anything", true},
	}

	for _, tt := range tests {
		if got := matchGlob(tt.pattern, tt.str); got != tt.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.pattern, tt.str, got, tt.want)
		}
	}
}
