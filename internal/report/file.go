package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shoxxdj/lfd/internal/config"
	"github.com/shoxxdj/lfd/internal/executor"
)

// Record is the per-line entry of a run report.
type Record struct {
	Line       int                  `json:"line" yaml:"line"`
	Value      string               `json:"value,omitempty" yaml:"value,omitempty"`
	Command    []string             `json:"command,omitempty" yaml:"command,omitempty"`
	Outcome    executor.OutcomeKind `json:"outcome" yaml:"outcome"`
	ExitCode   *int                 `json:"exit_code,omitempty" yaml:"exit_code,omitempty"`
	Message    string               `json:"message,omitempty" yaml:"message,omitempty"`
	DurationMS int64                `json:"duration_ms,omitempty" yaml:"duration_ms,omitempty"`
}

// NewRecord builds a record from an outcome. value and argv are empty for
// lines that could not be read.
func NewRecord(lineNumber int, value string, argv []string, outcome executor.Outcome) Record {
	return Record{
		Line:       lineNumber,
		Value:      value,
		Command:    argv,
		Outcome:    outcome.Kind,
		ExitCode:   outcome.ExitCode,
		Message:    outcome.Message(),
		DurationMS: outcome.Duration.Milliseconds(),
	}
}

// Document is the run report written by --report.
type Document struct {
	File     string   `json:"file" yaml:"file"`
	Variable string   `json:"variable" yaml:"variable"`
	Command  []string `json:"command" yaml:"command"`
	Summary  `yaml:",inline"`
	Results  []Record `json:"results" yaml:"results"`
}

// NewDocument assembles a report for a finished run.
func NewDocument(cfg *config.RunConfig, summary Summary, records []Record) Document {
	if records == nil {
		records = []Record{}
	}
	return Document{
		File:     cfg.FilePath,
		Variable: cfg.Placeholder,
		Command:  cfg.Template,
		Summary:  summary,
		Results:  records,
	}
}

// Marshal encodes doc as JSON when format is "json" and as YAML otherwise.
func Marshal(doc Document, format string) ([]byte, error) {
	if format == "json" {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode report as JSON: %w", err)
		}
		return append(data, '\n'), nil
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	return data, nil
}

// FormatForPath derives the report format from the file extension.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

// WriteFile writes doc to path in the format its extension implies.
func WriteFile(path string, doc Document) error {
	data, err := Marshal(doc, FormatForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report '%s': %w", path, err)
	}
	return nil
}
