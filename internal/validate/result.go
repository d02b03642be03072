package validate

// Result represents the outcome of validating one project root.
//
// A Result is created fresh per run and only appended to while the run is
// in progress. Findings keep the order in which checks reported them.
type Result struct {
	// Root is the project root this result was produced for.
	Root string

	// Findings is the ordered list of all findings.
	Findings []Finding
}

func (r *Result) append(f Finding) {
	r.Findings = append(r.Findings, f)
}

// Passed reports whether the run produced no errors. Warnings never fail
// a run.
func (r *Result) Passed() bool {
	return r.ErrorCount() == 0
}

// Errors returns the messages of all error findings, in report order.
func (r *Result) Errors() []string {
	var msgs []string
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			msgs = append(msgs, f.Message)
		}
	}
	return msgs
}

// Warnings returns the messages of all warning findings, in report order.
func (r *Result) Warnings() []string {
	var msgs []string
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			msgs = append(msgs, f.Message)
		}
	}
	return msgs
}

// ErrorCount returns the number of error findings.
func (r *Result) ErrorCount() int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning findings.
func (r *Result) WarningCount() int {
	count := 0
	for _, f := range r.Findings {
		if f.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// HasWarnings returns true if any finding has warning severity.
func (r *Result) HasWarnings() bool {
	return r.WarningCount() > 0
}

// WithoutWarnings returns a copy of the result with warning findings
// removed. Used by quiet output modes; the original result is unchanged.
func (r *Result) WithoutWarnings() *Result {
	filtered := &Result{Root: r.Root}
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			filtered.Findings = append(filtered.Findings, f)
		}
	}
	return filtered
}
