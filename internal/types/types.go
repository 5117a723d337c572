// Package types provides shared types used across the themelint codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

// ValidationResult represents one consistency finding produced by a rule.
type ValidationResult struct {
	Level          string   `json:"level"` // error, warning, info
	Category       string   `json:"category"`
	Message        string   `json:"message"`
	Details        string   `json:"details,omitempty"`
	Suggestion     string   `json:"suggestion,omitempty"`
	AffectedThemes []string `json:"affectedThemes"`
}

// Severity level constants.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelInfo    = "info"
)

// Finding category constants. Rules attach exactly one category per finding;
// severity overrides in configuration are keyed by these tags.
const (
	CategoryMissingProp       = "missing-prop"
	CategoryMissingVariant    = "missing-variant"
	CategoryNoButtonComponent = "no-button-component"
	CategoryHookMismatch      = "hook-signature-mismatch"
	CategoryMissingThemeProp  = "missing-theme-prop"
	CategoryColorsMismatch    = "colors-structure-mismatch"
	CategoryMissingStyleUtil  = "missing-style-util"
	CategoryMissingEvent      = "missing-event"
	CategoryValidationError   = "validation-error"
)

// ValidLevel reports whether s is a recognized severity level.
func ValidLevel(s string) bool {
	return s == LevelError || s == LevelWarning || s == LevelInfo
}
