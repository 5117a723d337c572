// Package extract adapts an opaque theme module — a decoded manifest whose
// export set is not statically known — into a normalized theme.Info.
//
// The heuristics here are deliberately best-effort and isolated to this
// package: export classification falls back to naming conventions (a name
// containing "Button" marks a component, a "use" prefix marks a hook), and
// parameter lists fall back to an arity count with synthesized placeholder
// names when the manifest does not spell parameters out. Extraction never
// fails on a missing optional member; absence degrades to empty collections.
package extract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dotcommander/themelint/internal/theme"
)

// ThemeInfo builds a theme.Info from an opaque module map. The module is
// never mutated. A nil module yields an Info with empty collections.
func ThemeInfo(id, name string, module map[string]any) *theme.Info {
	info := &theme.Info{
		ID:         id,
		Name:       name,
		Definition: map[string]any{},
		Components: []theme.Component{},
		Hooks:      []theme.Hook{},
		Utils:      []theme.Util{},
		Types:      []theme.TypeDecl{},
	}
	if module == nil {
		return info
	}

	if v, ok := module["version"].(string); ok {
		info.Version = v
	}
	if def := asMap(module["definition"]); def != nil {
		info.Definition = def
	}

	exports := asMap(module["exports"])
	for _, exportName := range sortedKeys(exports) {
		decl := asMap(exports[exportName])
		if decl == nil {
			continue
		}
		switch classify(exportName, decl) {
		case kindComponent:
			info.Components = append(info.Components, extractComponent(exportName, decl))
		case kindHook:
			info.Hooks = append(info.Hooks, extractHook(exportName, decl))
		case kindType:
			info.Types = append(info.Types, extractType(exportName, decl))
		case kindUtil:
			info.Utils = append(info.Utils, extractUtil(exportName, decl))
		}
	}

	return info
}

type exportKind int

const (
	kindUnknown exportKind = iota
	kindComponent
	kindHook
	kindUtil
	kindType
)

var typeCategories = map[string]bool{
	"interface": true,
	"type":      true,
	"enum":      true,
	"class":     true,
}

// classify decides what an export is. Explicit `kind` wins; otherwise we
// fall back to shape probing and naming conventions, in that order.
func classify(name string, decl map[string]any) exportKind {
	switch asString(decl["kind"]) {
	case "component":
		return kindComponent
	case "hook":
		return kindHook
	case "function", "util", "utility":
		return kindUtil
	case "type":
		return kindType
	}

	if asMap(decl["props"]) != nil {
		return kindComponent
	}
	if strings.HasPrefix(name, "use") {
		return kindHook
	}
	if typeCategories[asString(decl["category"])] && decl["definition"] != nil {
		return kindType
	}
	if decl["signature"] != nil || decl["arity"] != nil {
		return kindUtil
	}
	if strings.Contains(name, "Button") {
		return kindComponent
	}
	return kindUnknown
}

func extractComponent(name string, decl map[string]any) theme.Component {
	c := theme.Component{
		Name:         name,
		Props:        map[string]string{},
		Methods:      []theme.MethodSignature{},
		Events:       map[string]theme.Event{},
		Slots:        asStringSlice(decl["slots"]),
		DefaultProps: map[string]any{},
	}

	props := asMap(decl["props"])
	for _, propName := range sortedKeys(props) {
		c.Props[propName] = asString(props[propName])
	}

	events := asMap(decl["events"])
	for _, eventName := range sortedKeys(events) {
		ev := asMap(events[eventName])
		c.Events[eventName] = theme.Event{
			Parameters: asStringSlice(ev["parameters"]),
			Bubbles:    asBool(ev["bubbles"]),
			Cancelable: asBool(ev["cancelable"]),
		}
	}

	if methods, ok := decl["methods"].([]any); ok {
		for _, m := range methods {
			md := asMap(m)
			if md == nil {
				continue
			}
			c.Methods = append(c.Methods, theme.MethodSignature{
				Name:       asString(md["name"]),
				Parameters: extractParameters(md),
				ReturnType: asString(md["returnType"]),
			})
		}
	}

	if defaults := asMap(decl["defaultProps"]); defaults != nil {
		c.DefaultProps = defaults
	}

	return c
}

func extractHook(name string, decl map[string]any) theme.Hook {
	return theme.Hook{
		Name:         name,
		Parameters:   extractParameters(decl),
		ReturnType:   asString(decl["returnType"]),
		Dependencies: asStringSlice(decl["dependencies"]),
	}
}

func extractUtil(name string, decl map[string]any) theme.Util {
	category := asString(decl["category"])
	if category == "" {
		category = "utility"
	}

	sig := theme.MethodSignature{Name: name}
	if sigDecl := asMap(decl["signature"]); sigDecl != nil {
		sig.Parameters = extractParameters(sigDecl)
		sig.ReturnType = asString(sigDecl["returnType"])
	} else {
		sig.Parameters = extractParameters(decl)
		sig.ReturnType = asString(decl["returnType"])
	}

	return theme.Util{Name: name, Signature: sig, Category: category}
}

func extractType(name string, decl map[string]any) theme.TypeDecl {
	category := asString(decl["category"])
	if category == "" {
		category = "type"
	}
	return theme.TypeDecl{
		Name:       name,
		Definition: asString(decl["definition"]),
		Category:   category,
		Extends:    asStringSlice(decl["extends"]),
	}
}

// extractParameters reads an explicit parameter list when present. When the
// declaration only carries an arity count, placeholder parameters named
// arg0..argN-1 are synthesized; callers must tolerate synthesized names.
func extractParameters(decl map[string]any) []theme.Parameter {
	if raw, ok := decl["parameters"].([]any); ok {
		params := make([]theme.Parameter, 0, len(raw))
		for i, entry := range raw {
			switch p := entry.(type) {
			case string:
				params = append(params, theme.Parameter{Name: p, Type: "any"})
			case map[string]any:
				param := theme.Parameter{
					Name:     asString(p["name"]),
					Type:     asString(p["type"]),
					Optional: asBool(p["optional"]),
					Default:  p["default"],
				}
				if param.Name == "" {
					param.Name = fmt.Sprintf("arg%d", i)
				}
				if param.Type == "" {
					param.Type = "any"
				}
				params = append(params, param)
			}
		}
		return params
	}

	if arity, ok := asInt(decl["arity"]); ok && arity > 0 {
		params := make([]theme.Parameter, arity)
		for i := range params {
			params[i] = theme.Parameter{Name: fmt.Sprintf("arg%d", i), Type: "any"}
		}
		return params
	}

	return []theme.Parameter{}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asStringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if s, ok := entry.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
