package validate

import (
	"context"
	"fmt"
)

// Runner executes the enabled checks of a registry against project roots.
type Runner struct {
	registry *Registry
}

// NewRunner creates a new runner backed by the given registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// Run validates one project root and returns its result.
//
// Checks run sequentially in registration order against a fresh Result.
// A panic or error from a check does not escape: it is recorded as a
// single "Validation failed" error and ends the sequence, so the caller
// always receives a definite result. Concurrent Run calls are safe as
// long as the registry is not mutated while runs are in flight.
func (r *Runner) Run(ctx context.Context, root string) *Result {
	result := &Result{Root: root}
	r.runChecks(ctx, root, result)
	return result
}

func (r *Runner) runChecks(ctx context.Context, root string, result *Result) {
	defer func() {
		if p := recover(); p != nil {
			result.append(Finding{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Validation failed with error: %v", p),
			})
		}
	}()

	for _, check := range r.registry.EnabledChecks() {
		select {
		case <-ctx.Done():
			result.append(Finding{
				Severity: SeverityError,
				Message:  fmt.Sprintf("Validation failed with error: %v", ctx.Err()),
			})
			return
		default:
		}

		name := check.Name
		cctx := &Context{Root: root}
		cctx.Report = func(f Finding) {
			if f.Check == "" {
				f.Check = name
			}
			result.append(f)
		}

		if err := check.Run(cctx); err != nil {
			result.append(Finding{
				Check:    name,
				Severity: SeverityError,
				Message:  fmt.Sprintf("Validation failed with error: %v", err),
			})
			return
		}
	}
}
