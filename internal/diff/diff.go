// Package diff provides pure structural comparison helpers used by the
// consistency rules. It has no dependency on the validator or extractor.
package diff

import (
	"fmt"
	"sort"

	"github.com/dotcommander/themelint/internal/theme"
)

// ColorStructure flattens a nested plain-map structure into dotted leaf
// paths mapped to a runtime type name. Arrays are treated as leaves so that
// variable-length lists do not explode into per-index paths.
func ColorStructure(obj map[string]any) map[string]string {
	out := make(map[string]string)
	flatten(obj, "", out)
	return out
}

func flatten(obj map[string]any, prefix string, out map[string]string) {
	for key, value := range obj {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(nested, path, out)
			continue
		}
		out[path] = typeName(value)
	}
}

// typeName reports a stable primitive type name for a leaf value.
// YAML and JSON decoders disagree on number representations, so all
// numeric kinds collapse to "number".
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int64, float64, float32, uint64:
		return "number"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// CompareStructures computes the differences between two flattened
// structures: paths missing from a, paths extra in b, and type mismatches
// at shared paths. An empty slice means the structures are identical.
// Output is sorted by path for deterministic reports.
func CompareStructures(a, b map[string]string) []string {
	var diffs []string

	for _, path := range sortedKeys(a) {
		typeA := a[path]
		typeB, ok := b[path]
		if !ok {
			diffs = append(diffs, fmt.Sprintf("missing path %q", path))
			continue
		}
		if typeA != typeB {
			diffs = append(diffs, fmt.Sprintf("type mismatch at %q: %s vs %s", path, typeA, typeB))
		}
	}

	for _, path := range sortedKeys(b) {
		if _, ok := a[path]; !ok {
			diffs = append(diffs, fmt.Sprintf("extra path %q", path))
		}
	}

	return diffs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CompareHookSignatures compares two ordered parameter lists position-wise.
// A length difference is reported once; name and optionality mismatches are
// reported per position over the shared prefix.
func CompareHookSignatures(h1, h2 *theme.Hook) []string {
	var diffs []string

	if len(h1.Parameters) != len(h2.Parameters) {
		diffs = append(diffs, fmt.Sprintf("parameter count differs: %d vs %d",
			len(h1.Parameters), len(h2.Parameters)))
	}

	n := len(h1.Parameters)
	if len(h2.Parameters) < n {
		n = len(h2.Parameters)
	}
	for i := 0; i < n; i++ {
		p1, p2 := h1.Parameters[i], h2.Parameters[i]
		if p1.Name != p2.Name {
			diffs = append(diffs, fmt.Sprintf("parameter %d name differs: %q vs %q", i, p1.Name, p2.Name))
		}
		if p1.Optional != p2.Optional {
			diffs = append(diffs, fmt.Sprintf("parameter %d optionality differs: %v vs %v", i, p1.Optional, p2.Optional))
		}
	}

	return diffs
}
