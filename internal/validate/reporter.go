package validate

import (
	"fmt"
	"io"
	"strings"
)

// Reporter formats and outputs validation results.
type Reporter interface {
	// Report writes the validation result to the writer.
	Report(w io.Writer, result *Result) error
}

// TextReporter outputs findings in human-readable text format.
type TextReporter struct {
	// ShowCheck includes the check name in the output
	ShowCheck bool

	// ColorOutput enables colored output (for terminals)
	ColorOutput bool
}

// NewTextReporter creates a new text reporter with default settings.
func NewTextReporter() *TextReporter {
	return &TextReporter{
		ShowCheck:   true,
		ColorOutput: false,
	}
}

// Report implements the Reporter interface for text output.
// Findings are printed in the order the checks reported them.
func (r *TextReporter) Report(w io.Writer, result *Result) error {
	if len(result.Findings) == 0 {
		return nil
	}

	for _, finding := range result.Findings {
		if err := r.reportFinding(w, finding); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	r.reportSummary(w, result)

	return nil
}

// reportFinding outputs a single finding.
func (r *TextReporter) reportFinding(w io.Writer, f Finding) error {
	var parts []string

	if f.Path != "" {
		parts = append(parts, f.Path+":")
	}

	parts = append(parts, r.formatSeverity(f.Severity))
	parts = append(parts, f.Message)

	if r.ShowCheck && f.Check != "" {
		parts = append(parts, fmt.Sprintf("(%s)", f.Check))
	}

	if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
		return err
	}

	return nil
}

// formatSeverity formats the severity for display.
func (r *TextReporter) formatSeverity(s Severity) string {
	switch s {
	case SeverityError:
		if r.ColorOutput {
			return "\033[31merror:\033[0m" // Red
		}
		return "error:"
	case SeverityWarning:
		if r.ColorOutput {
			return "\033[33mwarning:\033[0m" // Yellow
		}
		return "warning:"
	default:
		return "unknown:"
	}
}

// reportSummary outputs a summary of the result.
func (r *TextReporter) reportSummary(w io.Writer, result *Result) {
	errors := result.ErrorCount()
	warnings := result.WarningCount()

	var parts []string

	if errors > 0 {
		word := "error"
		if errors > 1 {
			word = "errors"
		}
		parts = append(parts, fmt.Sprintf("%d %s", errors, word))
	}

	if warnings > 0 {
		word := "warning"
		if warnings > 1 {
			word = "warnings"
		}
		parts = append(parts, fmt.Sprintf("%d %s", warnings, word))
	}

	if len(parts) > 0 {
		_, _ = fmt.Fprintf(w, "Found %s in %s\n", strings.Join(parts, ", "), result.Root)
	}
}

// CompactReporter outputs findings in a compact, single-line format.
// Format: root/path: severity: message (check)
type CompactReporter struct{}

// NewCompactReporter creates a new compact reporter.
func NewCompactReporter() *CompactReporter {
	return &CompactReporter{}
}

// Report implements the Reporter interface for compact output.
func (r *CompactReporter) Report(w io.Writer, result *Result) error {
	for _, f := range result.Findings {
		location := result.Root
		if f.Path != "" {
			location = location + "/" + f.Path
		}
		var line string
		if f.Check != "" {
			line = fmt.Sprintf("%s: %s: %s (%s)\n", location, f.Severity, f.Message, f.Check)
		} else {
			line = fmt.Sprintf("%s: %s: %s\n", location, f.Severity, f.Message)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
