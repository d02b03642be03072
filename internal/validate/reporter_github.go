package validate

import (
	"fmt"
	"io"
)

// GitHubReporter outputs findings in GitHub Actions annotation format.
// Format: ::warning file={file},title={title}::{message}
// See: https://docs.github.com/en/actions/using-workflows/workflow-commands-for-github-actions
type GitHubReporter struct{}

// NewGitHubReporter creates a new GitHub Actions reporter.
func NewGitHubReporter() *GitHubReporter {
	return &GitHubReporter{}
}

// Report implements the Reporter interface for GitHub Actions output.
func (r *GitHubReporter) Report(w io.Writer, result *Result) error {
	for _, finding := range result.Findings {
		if err := r.reportFinding(w, finding); err != nil {
			return err
		}
	}
	return nil
}

// reportFinding outputs a single finding as a GitHub Actions annotation.
func (r *GitHubReporter) reportFinding(w io.Writer, f Finding) error {
	level := r.severityToLevel(f.Severity)

	title := f.Check
	if title == "" {
		title = "plugincheck"
	}

	if f.Path == "" {
		_, err := fmt.Fprintf(w, "::%s title=%s::%s\n", level, title, f.Message)
		return err
	}

	_, err := fmt.Fprintf(w, "::%s file=%s,title=%s::%s\n", level, f.Path, title, f.Message)
	return err
}

// severityToLevel converts a Severity to a GitHub Actions annotation level.
func (r *GitHubReporter) severityToLevel(s Severity) string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "notice"
	}
}
