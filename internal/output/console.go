package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dotcommander/themelint/internal/types"
	"github.com/dotcommander/themelint/internal/validate"
)

// ConsoleFormatter formats a report for console display.
type ConsoleFormatter struct {
	quiet     bool
	verbose   bool
	colorize  bool
	startTime time.Time
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:     quiet,
		verbose:   verbose,
		colorize:  true,
		startTime: time.Now(),
	}
}

// Format writes the report to stdout.
func (f *ConsoleFormatter) Format(report *validate.Report) error {
	if f.quiet {
		// Only the exit code speaks in quiet mode
		return nil
	}

	f.printFindings(report)
	f.printSummary(report)
	f.printRecommendations(report)
	f.printConclusion(report)

	return nil
}

func (f *ConsoleFormatter) printFindings(report *validate.Report) {
	for _, r := range report.Results {
		f.printResult(r)
	}
}

// printResult prints a single finding with appropriate styling.
func (f *ConsoleFormatter) printResult(r types.ValidationResult) {
	var style lipgloss.Style
	if !f.colorize {
		style = lipgloss.NewStyle()
	} else {
		switch r.Level {
		case types.LevelError:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
		case types.LevelWarning:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
		default:
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
		}
	}

	fmt.Printf("  %s %s %s\n", style.Render(severityGlyph(r.Level)), style.Render("["+r.Category+"]"), r.Message)
	if f.verbose && r.Details != "" {
		fmt.Printf("      %s\n", r.Details)
	}
	if r.Suggestion != "" {
		fmt.Printf("      suggestion: %s\n", r.Suggestion)
	}
}

// printSummary prints the summary statistics.
func (f *ConsoleFormatter) printSummary(report *validate.Report) {
	s := report.Summary
	if s.TotalChecks == 0 {
		return
	}

	duration := time.Since(f.startTime)
	fmt.Printf("\n%d checks, %d errors, %d warnings, %d infos — pass rate %.2f%% (%v)\n",
		s.TotalChecks, s.Errors, s.Warnings, s.Infos, s.PassRate,
		duration.Round(time.Millisecond))
}

// printRecommendations prints the remediation guidance.
func (f *ConsoleFormatter) printRecommendations(report *validate.Report) {
	if len(report.Recommendations) == 0 {
		return
	}
	fmt.Println("\nRecommendations:")
	for _, rec := range report.Recommendations {
		fmt.Printf("  • %s\n", rec)
	}
}

// printConclusion prints the conclusion message.
func (f *ConsoleFormatter) printConclusion(report *validate.Report) {
	if report.Summary.Errors > 0 {
		return
	}

	if len(report.Results) > 0 {
		fmt.Println()
	}
	if f.colorize {
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
		fmt.Printf("%s\n", style.Render("✓ API surfaces consistent"))
	} else {
		fmt.Println("✓ API surfaces consistent")
	}
}
