package baseline

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dotcommander/themelint/internal/types"
)

// Baseline represents a snapshot of accepted findings that should be
// ignored on subsequent runs.
type Baseline struct {
	Version      string   `json:"version"`
	CreatedAt    string   `json:"created_at"`
	Fingerprints []string `json:"fingerprints"`
	index        map[string]bool // For fast lookup
}

// Create builds a new baseline from a list of findings.
func Create(results []types.ValidationResult) *Baseline {
	fingerprints := make([]string, 0, len(results))
	index := make(map[string]bool)

	for _, r := range results {
		fp := fingerprint(r)
		if !index[fp] {
			fingerprints = append(fingerprints, fp)
			index[fp] = true
		}
	}

	// Sort for deterministic output
	sort.Strings(fingerprints)

	return &Baseline{
		Version:      "1.0",
		Fingerprints: fingerprints,
		index:        index,
	}
}

// Load reads a baseline from a JSON file.
func Load(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline file: %w", err)
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse baseline file: %w", err)
	}

	b.index = make(map[string]bool, len(b.Fingerprints))
	for _, fp := range b.Fingerprints {
		b.index[fp] = true
	}

	return &b, nil
}

// Save writes the baseline to a JSON file.
func (b *Baseline) Save(path string) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline file: %w", err)
	}

	return nil
}

// IsKnown checks if a finding is in the baseline.
func (b *Baseline) IsKnown(r types.ValidationResult) bool {
	if b.index == nil {
		return false
	}
	return b.index[fingerprint(r)]
}

// Filter returns the findings not covered by the baseline, plus counts of
// what was ignored per severity level.
func (b *Baseline) Filter(results []types.ValidationResult) (kept []types.ValidationResult, ignored, errorsIgnored, warningsIgnored int) {
	kept = make([]types.ValidationResult, 0, len(results))
	for _, r := range results {
		if b.IsKnown(r) {
			ignored++
			switch r.Level {
			case types.LevelError:
				errorsIgnored++
			case types.LevelWarning:
				warningsIgnored++
			}
			continue
		}
		kept = append(kept, r)
	}
	return kept, ignored, errorsIgnored, warningsIgnored
}

// fingerprint creates a stable hash of a finding for comparison.
// Severity is excluded so that tuning errorLevels does not invalidate an
// accepted baseline; the category, message, and affected themes identify
// the finding.
func fingerprint(r types.ValidationResult) string {
	themes := strings.Join(r.AffectedThemes, ",")
	data := fmt.Sprintf("%s|%s|%s", r.Category, r.Message, themes)

	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
