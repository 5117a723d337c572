package baseline

import (
	"path/filepath"
	"testing"

	"github.com/dotcommander/themelint/internal/types"
)

func finding(category, message string, themes ...string) types.ValidationResult {
	return types.ValidationResult{
		Level:          types.LevelError,
		Category:       category,
		Message:        message,
		AffectedThemes: themes,
	}
}

func TestCreateDeduplicates(t *testing.T) {
	f := finding("missing-prop", "Button missing shape", "minimal")
	b := Create([]types.ValidationResult{f, f})

	if len(b.Fingerprints) != 1 {
		t.Errorf("got %d fingerprints, want 1", len(b.Fingerprints))
	}
	if !b.IsKnown(f) {
		t.Error("created finding should be known")
	}
}

func TestFilter(t *testing.T) {
	known := finding("missing-prop", "Button missing shape", "minimal")
	warn := finding("missing-event", "no onKeyDown", "minimal")
	warn.Level = types.LevelWarning
	fresh := finding("missing-theme-prop", "definition missing animation", "glass")

	b := Create([]types.ValidationResult{known, warn})

	kept, ignored, errorsIgnored, warningsIgnored := b.Filter([]types.ValidationResult{known, warn, fresh})

	if len(kept) != 1 || kept[0].Category != "missing-theme-prop" {
		t.Errorf("kept = %v, want only the fresh finding", kept)
	}
	if ignored != 2 || errorsIgnored != 1 || warningsIgnored != 1 {
		t.Errorf("ignored counts = %d/%d/%d, want 2/1/1", ignored, errorsIgnored, warningsIgnored)
	}
}

func TestFingerprintIgnoresSeverity(t *testing.T) {
	f := finding("missing-prop", "Button missing shape", "minimal")
	b := Create([]types.ValidationResult{f})

	demoted := f
	demoted.Level = types.LevelWarning
	if !b.IsKnown(demoted) {
		t.Error("severity changes must not invalidate the baseline")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	f1 := finding("missing-prop", "Button missing shape", "minimal")
	f2 := finding("missing-event", "no onBlur", "glass")
	b := Create([]types.ValidationResult{f1, f2})
	b.CreatedAt = "2026-01-01T00:00:00Z"

	path := filepath.Join(t.TempDir(), "baseline.json")
	if err := b.Save(path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !loaded.IsKnown(f1) || !loaded.IsKnown(f2) {
		t.Error("loaded baseline should know both findings")
	}
	if loaded.IsKnown(finding("missing-prop", "different message", "minimal")) {
		t.Error("unrelated finding should not be known")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}
