// Package rules defines the ValidationRule contract and the built-in
// cross-theme consistency rules.
//
// A rule is a pure comparison: it inspects one theme (optionally against
// every other registered theme) and yields zero or more findings. Rules are
// stateless and must never mutate the theme data they read. Built-in and
// custom rules implement the same interface and run through one ordered
// collection in the engine.
package rules

import (
	"fmt"
	"strings"

	"github.com/dotcommander/themelint/internal/diff"
	"github.com/dotcommander/themelint/internal/theme"
	"github.com/dotcommander/themelint/internal/types"
)

// Rule is one named, pluggable consistency check.
type Rule interface {
	// Name returns the rule's unique identifier, used by ignoreChecks.
	Name() string

	// Description returns a human-readable summary of what the rule checks.
	Description() string

	// Validate inspects one theme, optionally against all registered
	// themes, and returns findings. It must not mutate its inputs and must
	// not assume any ordering among allThemes.
	Validate(t *theme.Info, allThemes []*theme.Info) []types.ValidationResult
}

// Builtin returns the default rule set in fixed declaration order. The
// engine relies on this order for reproducible output.
func Builtin() []Rule {
	return []Rule{
		ButtonPropsRule{},
		HookSignatureRule{},
		ThemeDefinitionRule{},
		StyleAPIRule{},
		EventHandlingRule{},
	}
}

// DefaultLevels maps finding categories to their rule-assigned severities.
// Configuration overrides apply only to categories a caller explicitly
// lists; everything else keeps these defaults.
var DefaultLevels = map[string]string{
	types.CategoryMissingProp:       types.LevelError,
	types.CategoryMissingVariant:    types.LevelWarning,
	types.CategoryNoButtonComponent: types.LevelWarning,
	types.CategoryHookMismatch:      types.LevelError,
	types.CategoryMissingThemeProp:  types.LevelError,
	types.CategoryColorsMismatch:    types.LevelWarning,
	types.CategoryMissingStyleUtil:  types.LevelWarning,
	types.CategoryMissingEvent:      types.LevelWarning,
	types.CategoryValidationError:   types.LevelError,
}

// Fixed expectations shared across themes. These mirror the button
// component contract every theme implements in parallel.
var (
	// RequiredButtonProps is the prop surface every button component must declare.
	RequiredButtonProps = []string{"variant", "size", "fill", "shape", "disabled", "loading"}

	// CanonicalVariants must be representable in each theme's declared variant type.
	CanonicalVariants = []string{"primary", "secondary", "danger", "success"}

	// ExpectedHooks are the hook names compared signature-wise across themes.
	ExpectedHooks = []string{"useButtonState", "useButtonFocus", "useButtonKeyboard", "useDebounce"}

	// RequiredDefinitionKeys are the mandatory top-level theme-definition keys.
	RequiredDefinitionKeys = []string{"name", "colors", "typography", "spacing", "animation"}

	// ExpectedStyleUtils are name fragments a theme's utility surface must cover.
	ExpectedStyleUtils = []string{"computeButtonStyles", "getButtonDimensions"}

	// ExpectedEvents are the events every button component must declare.
	ExpectedEvents = []string{"onClick", "onFocus", "onBlur", "onKeyDown"}
)

// ButtonPropsRule checks that a theme's button component declares the
// required prop surface and can represent the canonical variant values.
type ButtonPropsRule struct{}

var _ Rule = ButtonPropsRule{}

func (ButtonPropsRule) Name() string { return "button-props-consistency" }

func (ButtonPropsRule) Description() string {
	return "Checks required button props and canonical variant values"
}

func (ButtonPropsRule) Validate(t *theme.Info, allThemes []*theme.Info) []types.ValidationResult {
	btn := t.ButtonComponent()
	if btn == nil {
		return []types.ValidationResult{{
			Level:          DefaultLevels[types.CategoryNoButtonComponent],
			Category:       types.CategoryNoButtonComponent,
			Message:        fmt.Sprintf("Theme %q exports no button-like component", t.ID),
			Suggestion:     "Export a component whose name contains \"Button\"",
			AffectedThemes: []string{t.ID},
		}}
	}

	var results []types.ValidationResult
	for _, prop := range RequiredButtonProps {
		if _, ok := btn.Props[prop]; ok {
			continue
		}
		results = append(results, types.ValidationResult{
			Level:          DefaultLevels[types.CategoryMissingProp],
			Category:       types.CategoryMissingProp,
			Message:        fmt.Sprintf("Component %s in theme %q is missing required prop %q", btn.Name, t.ID, prop),
			Suggestion:     fmt.Sprintf("Declare the %q prop on %s", prop, btn.Name),
			AffectedThemes: []string{t.ID},
		})
	}

	// Variant representability is only decidable for literal union types.
	// A bare "string" admits everything, so it is not audited here.
	declared := btn.Props["variant"]
	if strings.Contains(declared, "'") {
		for _, variant := range CanonicalVariants {
			if strings.Contains(declared, "'"+variant+"'") {
				continue
			}
			results = append(results, types.ValidationResult{
				Level:          DefaultLevels[types.CategoryMissingVariant],
				Category:       types.CategoryMissingVariant,
				Message:        fmt.Sprintf("Theme %q variant type does not include canonical value %q", t.ID, variant),
				Details:        fmt.Sprintf("declared type: %s", declared),
				Suggestion:     fmt.Sprintf("Add %q to the variant union", variant),
				AffectedThemes: []string{t.ID},
			})
		}
	}

	return results
}

// HookSignatureRule compares the signatures of the shared hooks against the
// same-named hook in every other registered theme. A pair where either side
// does not define the hook is skipped; only present-vs-present mismatches
// are findings.
type HookSignatureRule struct{}

var _ Rule = HookSignatureRule{}

func (HookSignatureRule) Name() string { return "hook-signature-consistency" }

func (HookSignatureRule) Description() string {
	return "Compares shared hook signatures across themes"
}

func (HookSignatureRule) Validate(t *theme.Info, allThemes []*theme.Info) []types.ValidationResult {
	var results []types.ValidationResult
	for _, hookName := range ExpectedHooks {
		mine := t.HookByName(hookName)
		if mine == nil {
			continue
		}
		for _, other := range allThemes {
			if other.ID == t.ID {
				continue
			}
			theirs := other.HookByName(hookName)
			if theirs == nil {
				continue
			}
			diffs := diff.CompareHookSignatures(mine, theirs)
			if len(diffs) == 0 {
				continue
			}
			results = append(results, types.ValidationResult{
				Level:          DefaultLevels[types.CategoryHookMismatch],
				Category:       types.CategoryHookMismatch,
				Message:        fmt.Sprintf("Hook %s differs between themes %q and %q", hookName, t.ID, other.ID),
				Details:        strings.Join(diffs, "; "),
				Suggestion:     fmt.Sprintf("Align the %s parameter list across themes", hookName),
				AffectedThemes: []string{t.ID, other.ID},
			})
		}
	}
	return results
}

// ThemeDefinitionRule checks the required top-level definition keys and
// compares the flattened colors structure against every other theme.
type ThemeDefinitionRule struct{}

var _ Rule = ThemeDefinitionRule{}

func (ThemeDefinitionRule) Name() string { return "theme-definition-consistency" }

func (ThemeDefinitionRule) Description() string {
	return "Checks theme definition shape and colors structure parity"
}

func (ThemeDefinitionRule) Validate(t *theme.Info, allThemes []*theme.Info) []types.ValidationResult {
	var results []types.ValidationResult

	for _, key := range RequiredDefinitionKeys {
		if _, ok := t.Definition[key]; ok {
			continue
		}
		results = append(results, types.ValidationResult{
			Level:          DefaultLevels[types.CategoryMissingThemeProp],
			Category:       types.CategoryMissingThemeProp,
			Message:        fmt.Sprintf("Theme %q definition is missing required key %q", t.ID, key),
			Suggestion:     fmt.Sprintf("Add %q to the theme definition", key),
			AffectedThemes: []string{t.ID},
		})
	}

	colors, ok := t.Definition["colors"].(map[string]any)
	if !ok {
		return results
	}
	mine := diff.ColorStructure(colors)

	for _, other := range allThemes {
		if other.ID == t.ID {
			continue
		}
		otherColors, ok := other.Definition["colors"].(map[string]any)
		if !ok {
			continue
		}
		diffs := diff.CompareStructures(mine, diff.ColorStructure(otherColors))
		if len(diffs) == 0 {
			continue
		}
		results = append(results, types.ValidationResult{
			Level:          DefaultLevels[types.CategoryColorsMismatch],
			Category:       types.CategoryColorsMismatch,
			Message:        fmt.Sprintf("Colors structure differs between themes %q and %q", t.ID, other.ID),
			Details:        strings.Join(diffs, "; "),
			Suggestion:     "Mirror the colors structure across all themes",
			AffectedThemes: []string{t.ID, other.ID},
		})
	}

	return results
}

// StyleAPIRule checks that a theme's utility surface covers the expected
// style helpers.
type StyleAPIRule struct{}

var _ Rule = StyleAPIRule{}

func (StyleAPIRule) Name() string { return "style-api-consistency" }

func (StyleAPIRule) Description() string {
	return "Checks the expected style utility functions are exported"
}

func (StyleAPIRule) Validate(t *theme.Info, allThemes []*theme.Info) []types.ValidationResult {
	var results []types.ValidationResult
	for _, fragment := range ExpectedStyleUtils {
		if hasUtilMatching(t, fragment) {
			continue
		}
		results = append(results, types.ValidationResult{
			Level:          DefaultLevels[types.CategoryMissingStyleUtil],
			Category:       types.CategoryMissingStyleUtil,
			Message:        fmt.Sprintf("Theme %q exports no utility matching %q", t.ID, fragment),
			Suggestion:     fmt.Sprintf("Export a %s utility", fragment),
			AffectedThemes: []string{t.ID},
		})
	}
	return results
}

func hasUtilMatching(t *theme.Info, fragment string) bool {
	for _, u := range t.Utils {
		if strings.Contains(u.Name, fragment) {
			return true
		}
	}
	return false
}

// EventHandlingRule checks that the button component declares the expected
// event set. Themes without a button component are skipped; ButtonPropsRule
// already reports that condition.
type EventHandlingRule struct{}

var _ Rule = EventHandlingRule{}

func (EventHandlingRule) Name() string { return "event-handling-consistency" }

func (EventHandlingRule) Description() string {
	return "Checks the button component declares the expected events"
}

func (EventHandlingRule) Validate(t *theme.Info, allThemes []*theme.Info) []types.ValidationResult {
	btn := t.ButtonComponent()
	if btn == nil {
		return nil
	}

	var results []types.ValidationResult
	for _, event := range ExpectedEvents {
		if _, ok := btn.Events[event]; ok {
			continue
		}
		results = append(results, types.ValidationResult{
			Level:          DefaultLevels[types.CategoryMissingEvent],
			Category:       types.CategoryMissingEvent,
			Message:        fmt.Sprintf("Component %s in theme %q does not declare event %q", btn.Name, t.ID, event),
			Suggestion:     fmt.Sprintf("Declare the %q event on %s", event, btn.Name),
			AffectedThemes: []string{t.ID},
		})
	}
	return results
}
