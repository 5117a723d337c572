package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeInfoNilModule(t *testing.T) {
	info := ThemeInfo("tech", "Tech", nil)

	require.NotNil(t, info)
	assert.Equal(t, "tech", info.ID)
	assert.Equal(t, "Tech", info.Name)
	assert.Empty(t, info.Components)
	assert.Empty(t, info.Hooks)
	assert.Empty(t, info.Utils)
	assert.Empty(t, info.Types)
	assert.NotNil(t, info.Definition)
}

func TestThemeInfoFullModule(t *testing.T) {
	module := map[string]any{
		"version": "1.2.0",
		"definition": map[string]any{
			"name":   "tech",
			"colors": map[string]any{"primary": map[string]any{"background": "#001122"}},
		},
		"exports": map[string]any{
			"TechButton": map[string]any{
				"kind": "component",
				"props": map[string]any{
					"variant": "'primary' | 'secondary'",
					"size":    "string",
				},
				"events": map[string]any{
					"onClick": map[string]any{
						"parameters": []any{"event"},
						"bubbles":    true,
						"cancelable": true,
					},
				},
				"slots":        []any{"icon", "default"},
				"defaultProps": map[string]any{"variant": "primary"},
			},
			"useButtonState": map[string]any{
				"parameters": []any{
					map[string]any{"name": "initialState", "type": "object", "optional": true},
				},
				"returnType":   "ButtonState",
				"dependencies": []any{"react"},
			},
			"computeButtonStyles": map[string]any{
				"kind":     "function",
				"category": "style",
				"signature": map[string]any{
					"parameters": []any{
						map[string]any{"name": "theme", "type": "ThemeDefinition"},
						map[string]any{"name": "props", "type": "ButtonProps"},
					},
					"returnType": "StyleObject",
				},
			},
			"ButtonProps": map[string]any{
				"kind":       "type",
				"category":   "interface",
				"definition": "interface ButtonProps { ... }",
				"extends":    []any{"BaseProps"},
			},
		},
	}

	info := ThemeInfo("tech", "Tech Button Theme", module)

	assert.Equal(t, "1.2.0", info.Version)
	assert.Contains(t, info.Definition, "colors")

	require.Len(t, info.Components, 1)
	btn := info.Components[0]
	assert.Equal(t, "TechButton", btn.Name)
	assert.Equal(t, "'primary' | 'secondary'", btn.Props["variant"])
	require.Contains(t, btn.Events, "onClick")
	assert.True(t, btn.Events["onClick"].Bubbles)
	assert.Equal(t, []string{"event"}, btn.Events["onClick"].Parameters)
	assert.Equal(t, []string{"icon", "default"}, btn.Slots)
	assert.Equal(t, "primary", btn.DefaultProps["variant"])

	require.Len(t, info.Hooks, 1)
	hook := info.Hooks[0]
	assert.Equal(t, "useButtonState", hook.Name)
	require.Len(t, hook.Parameters, 1)
	assert.Equal(t, "initialState", hook.Parameters[0].Name)
	assert.True(t, hook.Parameters[0].Optional)
	assert.Equal(t, "ButtonState", hook.ReturnType)
	assert.Equal(t, []string{"react"}, hook.Dependencies)

	require.Len(t, info.Utils, 1)
	util := info.Utils[0]
	assert.Equal(t, "computeButtonStyles", util.Name)
	assert.Equal(t, "style", util.Category)
	require.Len(t, util.Signature.Parameters, 2)
	assert.Equal(t, "StyleObject", util.Signature.ReturnType)

	require.Len(t, info.Types, 1)
	assert.Equal(t, "interface", info.Types[0].Category)
	assert.Equal(t, []string{"BaseProps"}, info.Types[0].Extends)
}

func TestClassificationHeuristics(t *testing.T) {
	// No explicit kinds anywhere: classification falls back to shape and names
	module := map[string]any{
		"exports": map[string]any{
			"MinimalButton": map[string]any{
				"props": map[string]any{"variant": "string"},
			},
			"useDebounce": map[string]any{
				"arity": 2,
			},
			"mergeClassNames": map[string]any{
				"arity":    1,
				"category": "utility",
			},
			"ButtonSize": map[string]any{
				"category":   "enum",
				"definition": "small | medium | large",
			},
			"unrelatedExport": map[string]any{
				"note": "not classifiable",
			},
		},
	}

	info := ThemeInfo("minimal", "Minimal", module)

	require.Len(t, info.Components, 1)
	assert.Equal(t, "MinimalButton", info.Components[0].Name)

	require.Len(t, info.Hooks, 1)
	assert.Equal(t, "useDebounce", info.Hooks[0].Name)

	require.Len(t, info.Utils, 1)
	assert.Equal(t, "mergeClassNames", info.Utils[0].Name)

	require.Len(t, info.Types, 1)
	assert.Equal(t, "ButtonSize", info.Types[0].Name)
}

func TestArityFallbackSynthesizesPlaceholders(t *testing.T) {
	module := map[string]any{
		"exports": map[string]any{
			"useDebounce": map[string]any{"arity": 2},
		},
	}

	info := ThemeInfo("x", "X", module)

	require.Len(t, info.Hooks, 1)
	params := info.Hooks[0].Parameters
	require.Len(t, params, 2)
	assert.Equal(t, "arg0", params[0].Name)
	assert.Equal(t, "arg1", params[1].Name)
	assert.Equal(t, "any", params[0].Type)
	assert.False(t, params[0].Optional)
}

func TestParameterStringsAndPartialMaps(t *testing.T) {
	module := map[string]any{
		"exports": map[string]any{
			"useButtonFocus": map[string]any{
				"parameters": []any{
					"ref",
					map[string]any{"type": "number"}, // unnamed: placeholder name
				},
			},
		},
	}

	info := ThemeInfo("x", "X", module)

	require.Len(t, info.Hooks, 1)
	params := info.Hooks[0].Parameters
	require.Len(t, params, 2)
	assert.Equal(t, "ref", params[0].Name)
	assert.Equal(t, "arg1", params[1].Name)
	assert.Equal(t, "number", params[1].Type)
}

func TestButtonComponentResolution(t *testing.T) {
	module := map[string]any{
		"exports": map[string]any{
			"IconWrapper": map[string]any{
				"kind":  "component",
				"props": map[string]any{"name": "string"},
			},
		},
	}

	info := ThemeInfo("x", "X", module)

	require.Len(t, info.Components, 1)
	assert.Nil(t, info.ButtonComponent(), "non-button components must not resolve as the button")
}

func TestExtractionDegradesOnMalformedEntries(t *testing.T) {
	module := map[string]any{
		"version": 3, // wrong type, ignored
		"exports": map[string]any{
			"useBroken": "not a map",
			"GoodButton": map[string]any{
				"props": map[string]any{"variant": "string"},
			},
		},
	}

	info := ThemeInfo("x", "X", module)

	assert.Empty(t, info.Version)
	assert.Empty(t, info.Hooks)
	require.Len(t, info.Components, 1)
	require.NotNil(t, info.ButtonComponent())
}
