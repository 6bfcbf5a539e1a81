package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shoxxdj/lfd/internal/config"
	"github.com/shoxxdj/lfd/internal/executor"
)

func sampleDocument() Document {
	cfg := &config.RunConfig{
		FilePath:    "names.txt",
		Placeholder: "NAME",
		Template:    []string{"touch", "NAME"},
	}
	records := []Record{
		NewRecord(1, "a", []string{"touch", "a"}, executor.Succeeded(1500*time.Microsecond)),
		NewRecord(3, "b", []string{"touch", "b"}, executor.ExitedNonZero(intPtr(1), errors.New("exit status 1"), 0)),
	}
	return NewDocument(cfg, Summary{LinesProcessed: 2, Successes: 1, Errors: 1}, records)
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, "json", FormatForPath("out.json"))
	assert.Equal(t, "json", FormatForPath("OUT.JSON"))
	assert.Equal(t, "yaml", FormatForPath("out.yaml"))
	assert.Equal(t, "yaml", FormatForPath("out.yml"))
	assert.Equal(t, "yaml", FormatForPath("report"))
}

func TestWriteFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, WriteFile(path, sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "names.txt", decoded["file"])
	assert.Equal(t, 2, decoded["lines_processed"])
	assert.Equal(t, 1, decoded["errors"])

	results, ok := decoded["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 2)
	second := results[1].(map[string]any)
	assert.Equal(t, "non-zero-exit", second["outcome"])
	assert.Equal(t, 1, second["exit_code"])
}

func TestWriteFile_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, WriteFile(path, sampleDocument()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "NAME", decoded["variable"])
	assert.EqualValues(t, 1, decoded["successes"])

	results := decoded["results"].([]any)
	first := results[0].(map[string]any)
	assert.Equal(t, "success", first["outcome"])
	assert.EqualValues(t, 1, first["duration_ms"])
	assert.NotContains(t, first, "exit_code")
}

func TestWriteFile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "report.yaml")

	err := WriteFile(path, sampleDocument())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write report")
}

func TestNewDocument_EmptyRunHasEmptyResults(t *testing.T) {
	doc := NewDocument(&config.RunConfig{FilePath: "f", Template: []string{"true"}}, Summary{}, nil)

	data, err := Marshal(doc, "json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"results": []`)
}
