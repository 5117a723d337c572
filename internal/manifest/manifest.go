// Package manifest loads theme manifest files and validates their shape
// against an embedded CUE schema before extraction sees them. A manifest
// that fails to decode or validate is a fatal loading error: a theme that
// cannot be loaded cannot be meaningfully compared.
package manifest

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// Manifest is one decoded theme manifest. Module holds the raw decoded
// document; the extractor introspects it as an opaque export map.
type Manifest struct {
	ID     string
	Name   string
	Path   string
	Module map[string]any
}

// Validator handles CUE schema validation of manifests.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
	loaded bool
}

// NewValidator creates a Validator with the embedded manifest schema.
func NewValidator() *Validator {
	v := &Validator{ctx: cuecontext.New()}

	content, err := schemaFS.ReadFile("schemas/manifest.cue")
	if err != nil {
		return v
	}
	inst := v.ctx.CompileBytes(content, cue.Filename("manifest.cue"))
	if inst.Err() != nil {
		return v
	}

	def := inst.Value().LookupPath(cue.ParsePath("#Manifest"))
	if def.Exists() {
		v.schema = def
		v.loaded = true
	}
	return v
}

// Validate checks decoded manifest data against the schema. A validator
// without a loaded schema accepts everything (mirrors the Go-validation
// fallback used elsewhere in this codebase).
func (v *Validator) Validate(data map[string]any) error {
	if !v.loaded {
		return nil
	}

	dataValue := v.ctx.Encode(data)
	if err := dataValue.Err(); err != nil {
		return fmt.Errorf("error encoding manifest data: %w", err)
	}

	unified := v.schema.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Load reads, decodes, and schema-checks one manifest file.
func Load(path string, v *Validator) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest %s: %w", path, err)
	}
	return Parse(path, raw, v)
}

// Parse decodes manifest bytes and schema-checks them. Split out of Load
// for testability with in-memory documents.
func Parse(path string, raw []byte, v *Validator) (*Manifest, error) {
	var data map[string]any
	if err := yamlv3.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("error parsing manifest %s: %w", path, err)
	}
	if data == nil {
		return nil, fmt.Errorf("manifest %s is empty", path)
	}

	if v != nil {
		if err := v.Validate(data); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", path, err)
		}
	}

	m := &Manifest{
		Path:   path,
		Module: data,
	}
	if name, ok := data["name"].(string); ok {
		m.Name = name
	}
	if id, ok := data["id"].(string); ok && id != "" {
		m.ID = id
	} else {
		m.ID = deriveID(path, m.Name)
	}
	return m, nil
}

// deriveID falls back to the manifest's directory name, then to a
// slugified display name.
func deriveID(path, name string) string {
	dir := filepath.Base(filepath.Dir(path))
	if dir != "." && dir != "/" && dir != "" {
		return dir
	}
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	if slug == "" {
		slug = "theme"
	}
	return slug
}
