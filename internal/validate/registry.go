package validate

import (
	"fmt"
	"strings"
)

// Registry manages the set of checks with enable/disable controls.
//
// Unlike a map-backed registry, registration order is preserved: the
// checks run in exactly the order they were registered.
type Registry struct {
	// checks holds all registered checks in registration order.
	checks []*Check

	// index maps check names to their definitions.
	index map[string]*Check

	// enabled tracks which checks are currently enabled.
	enabled map[string]bool
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index:   make(map[string]*Check),
		enabled: make(map[string]bool),
	}
}

// Register adds checks to the registry and validates them.
// Returns an error if any check has an invalid name or duplicates an
// existing check. Checks are enabled by default.
func (r *Registry) Register(checks ...*Check) error {
	for _, check := range checks {
		if check.Name == "" {
			return fmt.Errorf("check has empty name")
		}

		if _, exists := r.index[check.Name]; exists {
			return fmt.Errorf("duplicate check name: %s", check.Name)
		}

		if !isValidCheckName(check.Name) {
			return fmt.Errorf("invalid check name %q: must be kebab-case (lowercase with hyphens)", check.Name)
		}

		if check.Run == nil {
			return fmt.Errorf("check %s has no Run function", check.Name)
		}

		r.checks = append(r.checks, check)
		r.index[check.Name] = check
		r.enabled[check.Name] = true
	}

	return nil
}

// Enable enables the specified checks. Names can be exact check names,
// "all", or a glob pattern like "man*".
func (r *Registry) Enable(names ...string) {
	r.set(names, true)
}

// Disable disables the specified checks. Names can be exact check names,
// "all", or a glob pattern like "man*".
func (r *Registry) Disable(names ...string) {
	r.set(names, false)
}

func (r *Registry) set(names []string, enabled bool) {
	for _, name := range names {
		if name == "all" {
			for checkName := range r.index {
				r.enabled[checkName] = enabled
			}
			continue
		}

		if _, exists := r.index[name]; exists {
			r.enabled[name] = enabled
			continue
		}

		if strings.Contains(name, "*") {
			for checkName := range r.index {
				if matchGlob(name, checkName) {
					r.enabled[checkName] = enabled
				}
			}
		}
	}
}

// EnabledChecks returns the enabled checks in registration order.
func (r *Registry) EnabledChecks() []*Check {
	var enabled []*Check
	for _, check := range r.checks {
		if r.enabled[check.Name] {
			enabled = append(enabled, check)
		}
	}
	return enabled
}

// AllChecks returns all registered checks in registration order.
func (r *Registry) AllChecks() []*Check {
	return append([]*Check(nil), r.checks...)
}

// isValidCheckName checks if a check name follows kebab-case convention.
// Allows lowercase letters, digits, hyphens, and underscores.
func isValidCheckName(name string) bool {
	if name == "" {
		return false
	}

	for i, ch := range name {
		if ch >= 'a' && ch <= 'z' {
			continue
		}
		if ch >= '0' && ch <= '9' && i > 0 {
			continue
		}
		if (ch == '-' || ch == '_') && i > 0 && i < len(name)-1 {
			continue
		}
		return false
	}

	return true
}

// matchGlob is a simple glob pattern matcher supporting only '*' wildcard.
func matchGlob(pattern, str string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == str
	}

	parts := strings.Split(pattern, "*")
	if len(parts) == 2 {
		prefix, suffix := parts[0], parts[1]
		return strings.HasPrefix(str, prefix) && strings.HasSuffix(str, suffix) &&
			len(str) >= len(prefix)+len(suffix)
	}

	if strings.HasPrefix(pattern, "*") {
		return strings.HasSuffix(str, strings.TrimPrefix(pattern, "*"))
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(str, strings.TrimSuffix(pattern, "*"))
	}

	return false
}
