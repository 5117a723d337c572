package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/themelint/internal/validate"
)

// MarkdownFormatter formats a report as Markdown.
type MarkdownFormatter struct {
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter. An empty outputFile
// writes to stdout.
func NewMarkdownFormatter(outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{outputFile: outputFile}
}

// Format renders the report as Markdown and writes it out.
func (f *MarkdownFormatter) Format(report *validate.Report) error {
	var builder strings.Builder

	builder.WriteString("# Themelint Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	s := report.Summary
	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Checks | %d |\n", s.TotalChecks))
	builder.WriteString(fmt.Sprintf("| Errors | %d |\n", s.Errors))
	builder.WriteString(fmt.Sprintf("| Warnings | %d |\n", s.Warnings))
	builder.WriteString(fmt.Sprintf("| Infos | %d |\n", s.Infos))
	builder.WriteString(fmt.Sprintf("| Pass rate | %.2f%% |\n", s.PassRate))
	builder.WriteString("\n")

	builder.WriteString("## Findings\n\n")
	if len(report.Results) == 0 {
		builder.WriteString("*No findings — API surfaces are consistent.*\n\n")
	} else {
		builder.WriteString("```\n")
		builder.WriteString(GenerateDetailedReport(report.Results))
		builder.WriteString("```\n\n")
	}

	if len(report.Recommendations) > 0 {
		builder.WriteString("## Recommendations\n\n")
		for _, rec := range report.Recommendations {
			builder.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		builder.WriteString("\n")
	}

	content := builder.String()
	if f.outputFile == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(f.outputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	return nil
}
