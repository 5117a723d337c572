// Package discovery locates theme manifest files under a themes root.
package discovery

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ManifestPatterns defines the canonical glob patterns for locating theme
// manifests, matched relative to the themes root. Results are deduplicated
// and sorted, so pattern overlap is harmless.
var ManifestPatterns = []string{
	"**/theme.yaml",
	"**/theme.yml",
}

// Discovery finds theme manifests beneath a root directory.
type Discovery struct {
	root     string
	patterns []string
}

// New creates a Discovery rooted at the given directory using the
// canonical manifest patterns.
func New(root string) *Discovery {
	return &Discovery{root: root, patterns: ManifestPatterns}
}

// WithPatterns overrides the glob patterns (used by tests and custom setups).
func (d *Discovery) WithPatterns(patterns []string) *Discovery {
	d.patterns = patterns
	return d
}

// Manifests returns the sorted, deduplicated list of manifest paths
// relative to the discovery root. A missing root is an error; a root with
// no manifests returns an empty slice.
func (d *Discovery) Manifests() ([]string, error) {
	info, err := os.Stat(d.root)
	if err != nil {
		return nil, fmt.Errorf("themes root %s: %w", d.root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("themes root %s is not a directory", d.root)
	}

	seen := make(map[string]bool)
	fsys := os.DirFS(d.root)
	for _, pattern := range d.patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid manifest pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			seen[m] = true
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths, nil
}

// Root returns the discovery root directory.
func (d *Discovery) Root() string {
	return d.root
}
