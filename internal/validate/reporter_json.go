package validate

import (
	"encoding/json"
	"io"
)

// JSONReporter outputs findings in JSON format for CI integration.
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// jsonOutput represents the root JSON structure.
type jsonOutput struct {
	Root     string        `json:"root"`
	Findings []jsonFinding `json:"findings"`
	Summary  jsonSummary   `json:"summary"`
}

// jsonFinding represents a single validation finding.
type jsonFinding struct {
	Check    string `json:"check"`
	Severity string `json:"severity"`
	Path     string `json:"path,omitempty"`
	Message  string `json:"message"`
}

// jsonSummary represents summary statistics.
type jsonSummary struct {
	Passed   bool           `json:"passed"`
	Errors   int            `json:"errors"`
	Warnings int            `json:"warnings"`
	ByCheck  map[string]int `json:"by_check"`
}

// Report implements the Reporter interface for JSON output.
func (r *JSONReporter) Report(w io.Writer, result *Result) error {
	output := jsonOutput{
		Root:     result.Root,
		Findings: make([]jsonFinding, 0, len(result.Findings)),
		Summary: jsonSummary{
			Passed:   result.Passed(),
			Errors:   result.ErrorCount(),
			Warnings: result.WarningCount(),
			ByCheck:  make(map[string]int),
		},
	}

	for _, f := range result.Findings {
		output.Findings = append(output.Findings, jsonFinding{
			Check:    f.Check,
			Severity: f.Severity.String(),
			Path:     f.Path,
			Message:  f.Message,
		})
		if f.Check != "" {
			output.Summary.ByCheck[f.Check]++
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
