package output

import (
	"fmt"

	"github.com/dotcommander/themelint/internal/config"
	"github.com/dotcommander/themelint/internal/validate"
)

// Formatter renders one validation report.
type Formatter interface {
	Format(report *validate.Report) error
}

// NewFormatter creates the formatter matching the configured output format.
func NewFormatter(cfg *config.Config) (Formatter, error) {
	switch cfg.Format {
	case "console":
		return NewConsoleFormatter(cfg.Quiet, cfg.Verbose), nil
	case "json":
		return NewJSONFormatter(true, cfg.Output), nil
	case "markdown":
		return NewMarkdownFormatter(cfg.Output), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", cfg.Format)
	}
}
