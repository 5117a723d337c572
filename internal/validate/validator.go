// Package validate provides the cross-theme consistency engine: a registry
// of themes and rules, the rule execution loop, summary statistics, and
// remediation recommendations.
package validate

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/dotcommander/themelint/internal/config"
	"github.com/dotcommander/themelint/internal/rules"
	"github.com/dotcommander/themelint/internal/theme"
	"github.com/dotcommander/themelint/internal/types"
)

// Validator holds the theme and rule registries for one audit. Registries
// persist across ValidateConsistency calls, so a caller can re-run the
// audit without re-registering. The Validator is not safe for concurrent
// registration; callers must serialize access.
type Validator struct {
	strict       bool
	ignore       map[string]bool
	levels       map[string]string // category → configured severity override
	themes       map[string]*theme.Info
	themeOrder   []string
	rules        []rules.Rule
	builtinRules int
	logger       *log.Logger
}

// New creates a Validator seeded with the built-in rules and the severity
// overrides and ignore list from cfg.
func New(cfg *config.Config) *Validator {
	v := &Validator{
		ignore: make(map[string]bool),
		levels: make(map[string]string),
		themes: make(map[string]*theme.Info),
		logger: log.New(io.Discard),
	}
	if cfg != nil {
		v.strict = cfg.Strict
		for _, name := range cfg.IgnoreChecks {
			v.ignore[name] = true
		}
		for category, level := range cfg.ErrorLevels {
			v.levels[category] = level
		}
	}
	v.rules = rules.Builtin()
	v.builtinRules = len(v.rules)
	return v
}

// WithLogger sets the phase logger used during rule execution.
func (v *Validator) WithLogger(logger *log.Logger) *Validator {
	if logger != nil {
		v.logger = logger
	}
	return v
}

// RegisterTheme upserts a theme into the registry. Re-registering an ID
// replaces the stored Info but keeps the original registration position, so
// iteration order stays deterministic.
func (v *Validator) RegisterTheme(info *theme.Info) {
	if info == nil || info.ID == "" {
		return
	}
	if _, exists := v.themes[info.ID]; !exists {
		v.themeOrder = append(v.themeOrder, info.ID)
	}
	v.themes[info.ID] = info
}

// AddRule appends a custom rule after the built-ins. Duplicate names are
// allowed; all registered rules run.
func (v *Validator) AddRule(r rules.Rule) {
	if r == nil {
		return
	}
	v.rules = append(v.rules, r)
}

// Themes returns the registered themes in registration order.
func (v *Validator) Themes() []*theme.Info {
	out := make([]*theme.Info, 0, len(v.themeOrder))
	for _, id := range v.themeOrder {
		out = append(out, v.themes[id])
	}
	return out
}

// Rules returns the active rule list: built-ins first, then custom rules in
// registration order.
func (v *Validator) Rules() []rules.Rule {
	return v.rules
}

// Summary aggregates the counts of one validation run.
type Summary struct {
	TotalChecks int     `json:"totalChecks"`
	Errors      int     `json:"errors"`
	Warnings    int     `json:"warnings"`
	Infos       int     `json:"infos"`
	PassRate    float64 `json:"passRate"`
}

// Report is the outcome of one ValidateConsistency run.
type Report struct {
	Results         []types.ValidationResult `json:"results"`
	Summary         Summary                  `json:"summary"`
	Recommendations []string                 `json:"recommendations"`
}

// ValidateConsistency runs every non-ignored rule against every registered
// theme and aggregates the findings. It never fails: a panicking rule is
// converted into a single error-level validation-error finding and the run
// continues, so one broken rule cannot abort the audit.
//
// Result order is deterministic: built-in rules in declaration order, then
// custom rules in registration order; within a rule, themes in registration
// order. The ordering exists for reproducible, diffable reports, not for
// semantic priority.
func (v *Validator) ValidateConsistency() *Report {
	all := v.Themes()
	results := []types.ValidationResult{}

	for _, r := range v.rules {
		if v.ignore[r.Name()] {
			v.logger.Debug("skipping ignored rule", "rule", r.Name())
			continue
		}
		for _, t := range all {
			v.logger.Debug("running rule", "rule", r.Name(), "theme", t.ID)
			findings := v.runRule(r, t, all)
			for i := range findings {
				v.resolveSeverity(&findings[i])
			}
			results = append(results, findings...)
		}
	}

	report := &Report{
		Results:         results,
		Summary:         Summarize(results),
		Recommendations: Recommendations(results),
	}
	v.logger.Info("validation complete",
		"checks", report.Summary.TotalChecks,
		"errors", report.Summary.Errors,
		"warnings", report.Summary.Warnings)
	return report
}

// runRule invokes one rule for one theme, converting a panic into a single
// validation-error finding naming the failing rule and theme.
func (v *Validator) runRule(r rules.Rule, t *theme.Info, all []*theme.Info) (findings []types.ValidationResult) {
	defer func() {
		if rec := recover(); rec != nil {
			findings = []types.ValidationResult{{
				Level:          types.LevelError,
				Category:       types.CategoryValidationError,
				Message:        fmt.Sprintf("Rule %s failed while processing theme %q: %v", r.Name(), t.ID, rec),
				AffectedThemes: []string{t.ID},
			}}
		}
	}()
	return r.Validate(t, all)
}

// resolveSeverity applies configured severity overrides and strict-mode
// promotion. Overrides apply only to categories explicitly listed in the
// configuration; validation-error findings are always errors.
func (v *Validator) resolveSeverity(r *types.ValidationResult) {
	if r.Category == types.CategoryValidationError {
		r.Level = types.LevelError
		return
	}
	if level, ok := v.levels[r.Category]; ok {
		r.Level = level
	}
	if v.strict && r.Level == types.LevelWarning {
		r.Level = types.LevelError
	}
}

// Summarize computes run statistics from a result list. PassRate is 100
// when there are no checks at all; otherwise it is the share of non-error
// checks, rounded to two decimals.
func Summarize(results []types.ValidationResult) Summary {
	s := Summary{TotalChecks: len(results)}
	for _, r := range results {
		switch r.Level {
		case types.LevelError:
			s.Errors++
		case types.LevelWarning:
			s.Warnings++
		default:
			s.Infos++
		}
	}
	if s.TotalChecks == 0 {
		s.PassRate = 100
		return s
	}
	s.PassRate = round2(float64(s.TotalChecks-s.Errors) / float64(s.TotalChecks) * 100)
	return s
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// remediation maps error categories to fixed remediation strings. A lookup
// table keeps recommendations deterministic and testable.
var remediation = map[string]string{
	types.CategoryMissingProp:      "Align button prop surfaces: add the missing required props to every theme's button component.",
	types.CategoryHookMismatch:     "Unify shared hook signatures so every theme accepts the same parameters in the same order.",
	types.CategoryMissingThemeProp: "Complete theme definitions: every theme must declare name, colors, typography, spacing, and animation.",
}

// Recommendations derives remediation guidance from the error-level
// findings, in first-seen category order, plus a generic reminder when any
// warnings remain.
func Recommendations(results []types.ValidationResult) []string {
	recs := []string{}
	seen := make(map[string]bool)
	warnings := 0

	for _, r := range results {
		if r.Level == types.LevelWarning {
			warnings++
		}
		if r.Level != types.LevelError || seen[r.Category] {
			continue
		}
		seen[r.Category] = true
		if rec, ok := remediation[r.Category]; ok {
			recs = append(recs, rec)
		}
	}

	if warnings > 0 {
		recs = append(recs, fmt.Sprintf("Review %d warning(s) to tighten optional API alignment across themes.", warnings))
	}

	return recs
}
