package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/themelint/internal/types"
	"github.com/dotcommander/themelint/internal/validate"
)

// JSONFormatter formats a report as JSON.
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter. An empty outputFile writes
// to stdout.
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport is the serialized report envelope.
type JSONReport struct {
	Header          JSONHeader               `json:"header"`
	Summary         validate.Summary         `json:"summary"`
	Results         []types.ValidationResult `json:"results"`
	Recommendations []string                 `json:"recommendations"`
}

// JSONHeader identifies the producing tool.
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Format serializes the report and writes it to the output file or stdout.
func (f *JSONFormatter) Format(report *validate.Report) error {
	out := JSONReport{
		Header: JSONHeader{
			Tool:      "themelint",
			Version:   "1.0.0",
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Summary:         report.Summary,
		Results:         report.Results,
		Recommendations: report.Recommendations,
	}

	var data []byte
	var err error
	if f.indent {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("error marshaling report: %w", err)
	}

	if f.outputFile == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(f.outputFile, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing report file: %w", err)
	}
	return nil
}
