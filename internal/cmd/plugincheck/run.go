// Package plugincheck implements the plugincheck command.
package plugincheck

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vaultkit/plugincheck/internal/validate"
	"github.com/vaultkit/plugincheck/internal/validate/checks"
	"github.com/vaultkit/plugincheck/internal/version"
	"github.com/vaultkit/plugincheck/internal/watch"
)

// Exit codes
const (
	exitOK      = 0
	exitError   = 1
	exitWarning = 2
)

// Run executes plugincheck with the given arguments.
// Returns exit code.
func Run(args []string) int {
	return RunWithIO(context.Background(), args, os.Stdin, os.Stdout, os.Stderr)
}

// RunWithIO allows custom IO for embedding/testing.
func RunWithIO(ctx context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) int {
	var (
		formatFlag           string
		colorFlag            string
		quietFlag            bool
		enableFlag           string
		disableFlag          string
		listChecksFlag       bool
		warningsAsErrorsFlag bool
		configFlag           string
		watchFlag            bool
		versionFlag          bool
	)

	fs := flag.NewFlagSet("plugincheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&formatFlag, "format", "text", "output format: text, compact, json, github")
	fs.StringVar(&colorFlag, "color", "auto", "colorize output: auto, always, never")
	fs.BoolVar(&quietFlag, "quiet", false, "only output errors, suppress warnings")
	fs.StringVar(&enableFlag, "enable", "", "enable checks (comma-separated, supports 'all' and patterns like 'man*')")
	fs.StringVar(&disableFlag, "disable", "", "disable checks (comma-separated, supports 'all' and patterns)")
	fs.BoolVar(&listChecksFlag, "list-checks", false, "list all available checks")
	fs.BoolVar(&warningsAsErrorsFlag, "warnings-as-errors", false, "exit non-zero when warnings are present")
	fs.StringVar(&configFlag, "config", "", "path to config file (default: search for .plugincheck.json)")
	fs.BoolVar(&watchFlag, "watch", false, "watch project roots and re-run validation on changes")
	fs.BoolVar(&versionFlag, "version", false, "print version and exit")

	fs.Usage = func() {
		writeln(stderr, "Usage: plugincheck [flags] [project-root ...]")
		writeln(stderr)
		writeln(stderr, "Validates a plugin project against marketplace submission rules.")
		writeln(stderr, "With no roots, validates the current directory.")
		writeln(stderr)
		writeln(stderr, "Checks:")
		writeln(stderr, "  - manifest.json fields, ids, and URLs")
		writeln(stderr, "  - required and recommended project files")
		writeln(stderr, "  - manifest id vs. directory name")
		writeln(stderr, "  - LICENSE presence")
		writeln(stderr, "  - build artifacts covered by .gitignore")
		writeln(stderr)
		writeln(stderr, "Flags:")
		fs.PrintDefaults()
		writeln(stderr)
		writeln(stderr, "Examples:")
		writeln(stderr, "  plugincheck .                    # Validate the current directory")
		writeln(stderr, "  plugincheck --format=json .      # Output as JSON")
		writeln(stderr, "  plugincheck --disable=gitignore  # Skip the artifact hygiene check")
		writeln(stderr, "  plugincheck --watch .            # Re-validate on file changes")
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitError
	}

	if versionFlag {
		writef(stdout, "plugincheck %s\n", version.String())
		return exitOK
	}

	registry := validate.NewRegistry()
	if err := registry.Register(checks.All()...); err != nil {
		writef(stderr, "plugincheck: failed to register checks: %v\n", err)
		return exitError
	}

	if listChecksFlag {
		return listChecks(stdout, registry)
	}

	config, err := validate.LoadConfig(configFlag)
	if err != nil {
		writef(stderr, "plugincheck: %v\n", err)
		return exitError
	}
	config.ApplyToRegistry(registry)

	// Flags override the config file.
	if enableFlag != "" {
		registry.Enable(splitList(enableFlag)...)
	}
	if disableFlag != "" {
		registry.Disable(splitList(disableFlag)...)
	}

	warningsAsErrors := warningsAsErrorsFlag || config.WarningsAsErrors

	reporter, err := newReporter(formatFlag, colorFlag, stdout)
	if err != nil {
		writef(stderr, "plugincheck: %v\n", err)
		return exitError
	}

	roots := fs.Args()
	if len(roots) == 0 {
		roots = []string{"."}
	}

	runner := validate.NewRunner(registry)

	if watchFlag {
		return runWatch(ctx, runner, reporter, roots, quietFlag, warningsAsErrors, stdout, stderr)
	}

	code := exitOK
	for _, root := range roots {
		result := runner.Run(ctx, root)
		if err := report(reporter, stdout, result, quietFlag); err != nil {
			writef(stderr, "plugincheck: %v\n", err)
			return exitError
		}
		if c := exitCode(result, warningsAsErrors); c > code {
			code = c
		}
	}

	return code
}

// runWatch validates all roots once, then re-validates a root whenever
// its files change, until the context is cancelled.
func runWatch(ctx context.Context, runner *validate.Runner, reporter validate.Reporter, roots []string, quiet, warningsAsErrors bool, stdout, stderr io.Writer) int {
	watcher, err := watch.New(roots)
	if err != nil {
		writef(stderr, "plugincheck: %v\n", err)
		return exitError
	}
	defer watcher.Close()

	runOne := func(root string) {
		result := runner.Run(ctx, root)
		if err := report(reporter, stdout, result, quiet); err != nil {
			writef(stderr, "plugincheck: %v\n", err)
			return
		}
		switch exitCode(result, warningsAsErrors) {
		case exitOK:
			writef(stdout, "plugincheck: %s: ok\n", root)
		case exitWarning:
			writef(stdout, "plugincheck: %s: warnings\n", root)
		default:
			writef(stdout, "plugincheck: %s: failed\n", root)
		}
	}

	for _, root := range roots {
		runOne(root)
	}

	for {
		select {
		case <-ctx.Done():
			return exitOK
		case root := <-watcher.Events:
			runOne(root)
		case err := <-watcher.Errors:
			writef(stderr, "plugincheck: watch: %v\n", err)
		}
	}
}

// report writes a result through the reporter, stripping warnings first
// in quiet mode.
func report(reporter validate.Reporter, w io.Writer, result *validate.Result, quiet bool) error {
	if quiet {
		result = result.WithoutWarnings()
	}
	return reporter.Report(w, result)
}

// exitCode derives the process exit code from a result.
func exitCode(result *validate.Result, warningsAsErrors bool) int {
	if !result.Passed() {
		return exitError
	}
	if warningsAsErrors && result.HasWarnings() {
		return exitWarning
	}
	return exitOK
}

// newReporter builds the reporter for the requested format.
func newReporter(format, color string, stdout io.Writer) (validate.Reporter, error) {
	switch format {
	case "text":
		reporter := validate.NewTextReporter()
		reporter.ColorOutput = colorEnabled(color, stdout)
		return reporter, nil
	case "compact":
		return validate.NewCompactReporter(), nil
	case "json":
		return validate.NewJSONReporter(), nil
	case "github":
		return validate.NewGitHubReporter(), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// colorEnabled resolves the -color flag against the output destination.
func colorEnabled(color string, stdout io.Writer) bool {
	switch color {
	case "always":
		return true
	case "never":
		return false
	default:
		if f, ok := stdout.(*os.File); ok {
			return term.IsTerminal(int(f.Fd()))
		}
		return false
	}
}

// listChecks prints all registered checks.
func listChecks(stdout io.Writer, registry *validate.Registry) int {
	writeln(stdout, "Available checks:")
	writeln(stdout)
	for _, check := range registry.AllChecks() {
		writef(stdout, "  %-12s %s\n", check.Name, check.Doc)
	}
	return exitOK
}

// splitList parses a comma-separated flag value.
func splitList(s string) []string {
	if s == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}

func writeln(w io.Writer, args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}
