// Package theme defines the normalized description of one theme's public
// API surface. Instances are produced by the extractor and treated as
// immutable once registered with the validator.
package theme

import "strings"

// Info describes one registered theme implementation under audit.
type Info struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Version    string         `json:"version"`
	Definition map[string]any `json:"definition"`
	Components []Component    `json:"components"`
	Hooks      []Hook         `json:"hooks"`
	Utils      []Util         `json:"utils"`
	Types      []TypeDecl     `json:"types"`
}

// Component describes one UI component's declared surface.
type Component struct {
	Name         string            `json:"name"`
	Props        map[string]string `json:"props"`
	Methods      []MethodSignature `json:"methods"`
	Events       map[string]Event  `json:"events"`
	Slots        []string          `json:"slots"`
	DefaultProps map[string]any    `json:"defaultProps"`
}

// Event describes one declared component event.
type Event struct {
	Parameters []string `json:"parameters"`
	Bubbles    bool     `json:"bubbles"`
	Cancelable bool     `json:"cancelable"`
}

// Hook describes one exported hook's declared signature.
type Hook struct {
	Name         string      `json:"name"`
	Parameters   []Parameter `json:"parameters"`
	ReturnType   string      `json:"returnType"`
	Dependencies []string    `json:"dependencies"`
}

// Parameter is one position in an ordered parameter list.
type Parameter struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
	Default  any    `json:"default,omitempty"`
}

// MethodSignature is the ordered parameter list plus return type of a callable.
type MethodSignature struct {
	Name       string      `json:"name"`
	Parameters []Parameter `json:"parameters"`
	ReturnType string      `json:"returnType"`
}

// Util describes one exported utility function.
type Util struct {
	Name      string          `json:"name"`
	Signature MethodSignature `json:"signature"`
	Category  string          `json:"category"` // free-form grouping tag, e.g. "style"
}

// TypeDecl describes one exported type declaration.
type TypeDecl struct {
	Name       string   `json:"name"`
	Definition string   `json:"definition"`
	Category   string   `json:"category"` // interface, type, enum, class
	Extends    []string `json:"extends,omitempty"`
}

// ButtonComponent returns the theme's button-like component: the first
// component in extraction order whose name contains "Button". Returns nil
// when no component qualifies; reporting that is a rule's job, not ours.
func (i *Info) ButtonComponent() *Component {
	for idx := range i.Components {
		if strings.Contains(i.Components[idx].Name, "Button") {
			return &i.Components[idx]
		}
	}
	return nil
}

// HookByName returns the hook with the given name, or nil.
func (i *Info) HookByName(name string) *Hook {
	for idx := range i.Hooks {
		if i.Hooks[idx].Name == name {
			return &i.Hooks[idx]
		}
	}
	return nil
}
