// Package validate implements the plugin project validation engine: a set
// of checks run in a fixed order against a project root, accumulating
// errors and warnings into a single result.
package validate

import "fmt"

// Severity represents the severity of a finding.
type Severity int

const (
	// SeverityError indicates a blocking issue that fails the validation.
	SeverityError Severity = iota
	// SeverityWarning indicates an advisory issue that never fails the
	// validation on its own.
	SeverityWarning
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Finding represents a single validation message.
type Finding struct {
	// Check is the name of the check that produced this finding.
	Check string

	// Severity indicates how serious this issue is.
	Severity Severity

	// Path is the project-relative file the finding concerns, if any.
	Path string

	// Message is a human-readable description of the issue.
	Message string
}

// IsError returns true if this finding blocks a passing result.
func (f Finding) IsError() bool {
	return f.Severity == SeverityError
}

// Check defines a single project check.
type Check struct {
	// Name is the unique kebab-case identifier (e.g., "manifest").
	Name string

	// Doc is a one-line description of what this check inspects.
	Doc string

	// Run is the function that executes this check. Expected problems in
	// the project are reported via the Context; the returned error is
	// reserved for failures of the check itself.
	Run func(*Context) error
}

// Context provides a running check with the project under validation and
// a way to record findings.
type Context struct {
	// Root is the path to the project root being validated.
	Root string

	// Report records a finding. The runner stamps the check name onto
	// each finding before it reaches the result.
	Report func(Finding)
}

// Error records an error-severity finding against path.
func (c *Context) Error(path, message string) {
	c.Report(Finding{Severity: SeverityError, Path: path, Message: message})
}

// Errorf records a formatted error-severity finding against path.
func (c *Context) Errorf(path, format string, args ...any) {
	c.Error(path, fmt.Sprintf(format, args...))
}

// Warning records a warning-severity finding against path.
func (c *Context) Warning(path, message string) {
	c.Report(Finding{Severity: SeverityWarning, Path: path, Message: message})
}

// Warningf records a formatted warning-severity finding against path.
func (c *Context) Warningf(path, format string, args ...any) {
	c.Warning(path, fmt.Sprintf(format, args...))
}
