package rules

import (
	"strings"
	"testing"

	"github.com/dotcommander/themelint/internal/theme"
	"github.com/dotcommander/themelint/internal/types"
)

func buttonTheme(id string, props map[string]string) *theme.Info {
	return &theme.Info{
		ID:   id,
		Name: id,
		Components: []theme.Component{{
			Name:   "Button",
			Props:  props,
			Events: map[string]theme.Event{},
		}},
		Definition: map[string]any{},
	}
}

func fullProps() map[string]string {
	return map[string]string{
		"variant":  "'primary' | 'secondary' | 'danger' | 'success'",
		"size":     "'small' | 'medium' | 'large'",
		"fill":     "'solid' | 'outline' | 'ghost'",
		"shape":    "'square' | 'rounded' | 'pill'",
		"disabled": "boolean",
		"loading":  "boolean",
	}
}

func TestButtonPropsRuleMissingShape(t *testing.T) {
	techProps := fullProps()
	minimalProps := fullProps()
	delete(minimalProps, "shape")

	tech := buttonTheme("tech", techProps)
	minimal := buttonTheme("minimal", minimalProps)
	all := []*theme.Info{tech, minimal}

	rule := ButtonPropsRule{}

	if results := rule.Validate(tech, all); len(results) != 0 {
		t.Errorf("tech theme should pass, got %v", results)
	}

	results := rule.Validate(minimal, all)
	if len(results) != 1 {
		t.Fatalf("minimal theme: got %d findings, want exactly 1: %v", len(results), results)
	}
	r := results[0]
	if r.Category != types.CategoryMissingProp {
		t.Errorf("category = %q, want %q", r.Category, types.CategoryMissingProp)
	}
	if !strings.Contains(r.Message, "shape") {
		t.Errorf("message should name the shape prop, got %q", r.Message)
	}
	if len(r.AffectedThemes) != 1 || r.AffectedThemes[0] != "minimal" {
		t.Errorf("affectedThemes = %v, want [minimal]", r.AffectedThemes)
	}
}

func TestButtonPropsRuleCanonicalVariants(t *testing.T) {
	props := fullProps()
	props["variant"] = "'primary' | 'secondary'"
	info := buttonTheme("partial", props)

	results := ButtonPropsRule{}.Validate(info, []*theme.Info{info})

	var missing []string
	for _, r := range results {
		if r.Category != types.CategoryMissingVariant {
			t.Errorf("unexpected category %q: %v", r.Category, r)
			continue
		}
		if r.Level != types.LevelWarning {
			t.Errorf("variant findings default to warning, got %q", r.Level)
		}
		missing = append(missing, r.Message)
	}
	if len(missing) != 2 {
		t.Fatalf("got %d variant findings, want 2 (danger, success): %v", len(missing), missing)
	}
	joined := strings.Join(missing, "\n")
	for _, want := range []string{"danger", "success"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing variant %q not reported: %v", want, missing)
		}
	}
}

func TestButtonPropsRuleBareStringVariantNotAudited(t *testing.T) {
	props := fullProps()
	props["variant"] = "string"
	info := buttonTheme("loose", props)

	for _, r := range (ButtonPropsRule{}).Validate(info, []*theme.Info{info}) {
		if r.Category == types.CategoryMissingVariant {
			t.Errorf("bare string variant type should not be audited for representability: %v", r)
		}
	}
}

func TestButtonPropsRuleNoButtonComponent(t *testing.T) {
	info := &theme.Info{ID: "empty", Definition: map[string]any{}}

	results := ButtonPropsRule{}.Validate(info, []*theme.Info{info})
	if len(results) != 1 || results[0].Category != types.CategoryNoButtonComponent {
		t.Fatalf("got %v, want one no-button-component finding", results)
	}
}

func TestHookSignatureRule(t *testing.T) {
	mk := func(id string, params ...theme.Parameter) *theme.Info {
		return &theme.Info{
			ID: id,
			Hooks: []theme.Hook{
				{Name: "useButtonState", Parameters: params},
			},
		}
	}

	a := mk("a", theme.Parameter{Name: "initial", Optional: true})
	b := mk("b", theme.Parameter{Name: "initialState", Optional: false})
	noHook := &theme.Info{ID: "bare"}
	all := []*theme.Info{a, b, noHook}

	results := HookSignatureRule{}.Validate(a, all)
	if len(results) != 1 {
		t.Fatalf("got %d findings, want 1 (one mismatching pair): %v", len(results), results)
	}
	r := results[0]
	if r.Category != types.CategoryHookMismatch {
		t.Errorf("category = %q, want %q", r.Category, types.CategoryHookMismatch)
	}
	if !strings.Contains(r.Details, "name differs") || !strings.Contains(r.Details, "optionality differs") {
		t.Errorf("details should bundle both differences, got %q", r.Details)
	}
	if len(r.AffectedThemes) != 2 {
		t.Errorf("affectedThemes = %v, want both pair members", r.AffectedThemes)
	}

	// A theme lacking the hook entirely produces no findings
	if results := (HookSignatureRule{}).Validate(noHook, all); len(results) != 0 {
		t.Errorf("absent hook should be skipped, got %v", results)
	}
}

func TestThemeDefinitionRuleMissingAnimation(t *testing.T) {
	info := &theme.Info{
		ID: "tech",
		Definition: map[string]any{
			"name":       "tech",
			"colors":     map[string]any{"primary": map[string]any{"background": "#001122"}},
			"typography": map[string]any{},
			"spacing":    map[string]any{},
		},
	}

	results := ThemeDefinitionRule{}.Validate(info, []*theme.Info{info})
	if len(results) != 1 {
		t.Fatalf("got %d findings, want exactly 1: %v", len(results), results)
	}
	r := results[0]
	if r.Category != types.CategoryMissingThemeProp {
		t.Errorf("category = %q, want %q", r.Category, types.CategoryMissingThemeProp)
	}
	if r.Level != types.LevelError {
		t.Errorf("level = %q, want error by default", r.Level)
	}
	if !strings.Contains(r.Message, "animation") {
		t.Errorf("message should name the missing key, got %q", r.Message)
	}
}

func TestThemeDefinitionRuleColorsParity(t *testing.T) {
	def := func(colors map[string]any) map[string]any {
		return map[string]any{
			"name":       "x",
			"colors":     colors,
			"typography": map[string]any{},
			"spacing":    map[string]any{},
			"animation":  map[string]any{},
		}
	}

	a := &theme.Info{ID: "a", Definition: def(map[string]any{
		"primary": map[string]any{"background": "#001122", "text": "#ffffff"},
	})}
	b := &theme.Info{ID: "b", Definition: def(map[string]any{
		"primary": map[string]any{"background": "#221100"},
	})}
	all := []*theme.Info{a, b}

	results := ThemeDefinitionRule{}.Validate(a, all)
	if len(results) != 1 {
		t.Fatalf("got %d findings, want 1 colors mismatch: %v", len(results), results)
	}
	if results[0].Category != types.CategoryColorsMismatch {
		t.Errorf("category = %q, want %q", results[0].Category, types.CategoryColorsMismatch)
	}
	if !strings.Contains(results[0].Details, "primary.text") {
		t.Errorf("details should name the divergent path, got %q", results[0].Details)
	}
}

func TestStyleAPIRule(t *testing.T) {
	withUtils := &theme.Info{
		ID: "styled",
		Utils: []theme.Util{
			{Name: "computeButtonStyles", Category: "style"},
			{Name: "getButtonDimensions", Category: "style"},
		},
	}
	if results := (StyleAPIRule{}).Validate(withUtils, nil); len(results) != 0 {
		t.Errorf("complete util surface should pass, got %v", results)
	}

	bare := &theme.Info{ID: "bare"}
	results := StyleAPIRule{}.Validate(bare, nil)
	if len(results) != len(ExpectedStyleUtils) {
		t.Fatalf("got %d findings, want %d", len(results), len(ExpectedStyleUtils))
	}
	for _, r := range results {
		if r.Category != types.CategoryMissingStyleUtil {
			t.Errorf("category = %q, want %q", r.Category, types.CategoryMissingStyleUtil)
		}
	}
}

func TestEventHandlingRule(t *testing.T) {
	info := buttonTheme("partial", fullProps())
	info.Components[0].Events = map[string]theme.Event{
		"onClick": {Parameters: []string{"event"}, Bubbles: true, Cancelable: true},
		"onFocus": {},
		"onBlur":  {},
	}

	results := EventHandlingRule{}.Validate(info, nil)
	if len(results) != 1 {
		t.Fatalf("got %d findings, want 1 (onKeyDown): %v", len(results), results)
	}
	if !strings.Contains(results[0].Message, "onKeyDown") {
		t.Errorf("message should name onKeyDown, got %q", results[0].Message)
	}

	// No button component: this rule stays silent, ButtonPropsRule reports it
	if results := (EventHandlingRule{}).Validate(&theme.Info{ID: "x"}, nil); len(results) != 0 {
		t.Errorf("themes without a button should be skipped, got %v", results)
	}
}
