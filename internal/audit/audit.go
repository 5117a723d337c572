// Package audit wires the full validation workflow: manifest discovery,
// concurrent theme loading, extraction, registration, rule execution,
// baseline filtering, and report output. The exit-code decision lives here;
// everything below it only reports.
package audit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dotcommander/themelint/internal/baseline"
	"github.com/dotcommander/themelint/internal/config"
	"github.com/dotcommander/themelint/internal/discovery"
	"github.com/dotcommander/themelint/internal/extract"
	"github.com/dotcommander/themelint/internal/manifest"
	"github.com/dotcommander/themelint/internal/output"
	"github.com/dotcommander/themelint/internal/theme"
	"github.com/dotcommander/themelint/internal/validate"
)

// Options holds per-invocation settings not carried by the configuration.
type Options struct {
	UseBaseline    bool
	CreateBaseline bool
	BaselinePath   string
}

// Auditor coordinates one end-to-end consistency audit.
type Auditor struct {
	cfg    *config.Config
	opts   Options
	logger *log.Logger
}

// New creates an Auditor. The phase logger is derived from the quiet and
// verbose settings: quiet discards everything, verbose enables debug.
func New(cfg *config.Config, opts Options) *Auditor {
	return &Auditor{
		cfg:    cfg,
		opts:   opts,
		logger: newLogger(cfg),
	}
}

func newLogger(cfg *config.Config) *log.Logger {
	if cfg.Quiet {
		return log.New(io.Discard)
	}
	level := log.WarnLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "themelint",
	})
}

// Run executes the full audit and returns the (possibly baseline-filtered)
// report. The returned error is non-nil in exactly two cases: a theme could
// not be loaded (fatal, nothing to compare), or error-level findings remain
// after filtering — the error message carries the count so CI logs show it.
func (a *Auditor) Run() (*validate.Report, error) {
	themes, err := a.LoadThemes()
	if err != nil {
		return nil, err
	}

	v := validate.New(a.cfg).WithLogger(a.logger)
	for _, t := range themes {
		v.RegisterTheme(t)
	}

	a.logger.Debug("starting consistency validation", "themes", len(themes))
	report := v.ValidateConsistency()

	baselineFile := a.resolveBaselinePath()

	if a.opts.CreateBaseline {
		b := baseline.Create(report.Results)
		b.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		if err := b.Save(baselineFile); err != nil {
			return nil, fmt.Errorf("failed to save baseline: %w", err)
		}
		if !a.cfg.Quiet {
			fmt.Printf("Baseline created: %s (%d findings)\n", baselineFile, len(b.Fingerprints))
		}
		// Accept the current state; exit 0
		return report, nil
	}

	if a.opts.UseBaseline {
		report = a.applyBaseline(report, baselineFile)
	}

	formatter, err := output.NewFormatter(a.cfg)
	if err != nil {
		return nil, err
	}
	if err := formatter.Format(report); err != nil {
		return nil, fmt.Errorf("error formatting output: %w", err)
	}

	return report, a.failOn(report.Summary)
}

// LoadThemes discovers and loads every theme manifest under the configured
// root. Manifests load concurrently (loading is the only I/O-bound step),
// but registration order follows discovery order regardless of which load
// finishes first. Any load failure is fatal.
func (a *Auditor) LoadThemes() ([]*theme.Info, error) {
	paths, err := discovery.New(a.cfg.Root).Manifests()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("discovered theme manifests", "count", len(paths))

	validator := manifest.NewValidator()
	manifests := make([]*manifest.Manifest, len(paths))
	errs := make([]error, len(paths))

	sem := make(chan struct{}, a.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, rel := range paths {
		wg.Add(1)
		go func(i int, rel string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			manifests[i], errs[i] = manifest.Load(filepath.Join(a.cfg.Root, rel), validator)
		}(i, rel)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("theme loading failed: %w", err)
		}
	}

	themes := make([]*theme.Info, 0, len(manifests))
	for _, m := range manifests {
		info := extract.ThemeInfo(m.ID, m.Name, m.Module)
		a.logger.Debug("extracted theme",
			"id", info.ID,
			"components", len(info.Components),
			"hooks", len(info.Hooks),
			"utils", len(info.Utils))
		themes = append(themes, info)
	}
	return themes, nil
}

// applyBaseline filters previously accepted findings out of the report and
// recomputes the summary and recommendations over what remains.
func (a *Auditor) applyBaseline(report *validate.Report, baselineFile string) *validate.Report {
	if _, err := os.Stat(baselineFile); err != nil {
		return report // no baseline yet, nothing to filter
	}

	b, err := baseline.Load(baselineFile)
	if err != nil {
		if !a.cfg.Quiet {
			fmt.Fprintf(os.Stderr, "Warning: Failed to load baseline: %v\n", err)
		}
		return report
	}

	kept, ignored, errorsIgnored, warningsIgnored := b.Filter(report.Results)
	if ignored > 0 && !a.cfg.Quiet {
		fmt.Printf("%d baseline findings ignored (%d errors, %d warnings)\n",
			ignored, errorsIgnored, warningsIgnored)
	}

	return &validate.Report{
		Results:         kept,
		Summary:         validate.Summarize(kept),
		Recommendations: validate.Recommendations(kept),
	}
}

// resolveBaselinePath returns the baseline path, resolved against the
// themes root when relative.
func (a *Auditor) resolveBaselinePath() string {
	baselineFile := a.opts.BaselinePath
	if baselineFile == "" {
		baselineFile = ".themelint-baseline.json"
	}
	if !filepath.IsAbs(baselineFile) {
		baselineFile = filepath.Join(a.cfg.Root, baselineFile)
	}
	return baselineFile
}

// failOn maps the summary onto the configured failure threshold.
func (a *Auditor) failOn(s validate.Summary) error {
	switch a.cfg.FailOn {
	case "warning":
		if s.Errors+s.Warnings > 0 {
			return fmt.Errorf("api consistency validation failed: %d error(s), %d warning(s)", s.Errors, s.Warnings)
		}
	default:
		if s.Errors > 0 {
			return fmt.Errorf("api consistency validation failed: %d error(s)", s.Errors)
		}
	}
	return nil
}
