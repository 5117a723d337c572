// Package output renders validation reports for console, JSON, and
// markdown consumers. It is purely a formatting layer over already-computed
// results; no analysis happens here.
package output

import (
	"fmt"
	"strings"

	"github.com/dotcommander/themelint/internal/types"
)

// severityGlyph maps finding levels to their report glyphs.
func severityGlyph(level string) string {
	switch level {
	case types.LevelError:
		return "✘"
	case types.LevelWarning:
		return "⚠"
	default:
		return "💡"
	}
}

// GenerateDetailedReport renders findings grouped by category, in the
// insertion order of each category's first occurrence. Each finding gets a
// severity glyph, its message, an optional suggestion line, and the list of
// affected theme ids.
func GenerateDetailedReport(results []types.ValidationResult) string {
	if len(results) == 0 {
		return "No findings.\n"
	}

	var categoryOrder []string
	grouped := make(map[string][]types.ValidationResult)
	for _, r := range results {
		if _, seen := grouped[r.Category]; !seen {
			categoryOrder = append(categoryOrder, r.Category)
		}
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	var b strings.Builder
	for _, category := range categoryOrder {
		fmt.Fprintf(&b, "[%s]\n", category)
		for _, r := range grouped[category] {
			fmt.Fprintf(&b, "  %s %s\n", severityGlyph(r.Level), r.Message)
			if r.Details != "" {
				fmt.Fprintf(&b, "      %s\n", r.Details)
			}
			if r.Suggestion != "" {
				fmt.Fprintf(&b, "      suggestion: %s\n", r.Suggestion)
			}
			if len(r.AffectedThemes) > 0 {
				fmt.Fprintf(&b, "      themes: %s\n", strings.Join(r.AffectedThemes, ", "))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
