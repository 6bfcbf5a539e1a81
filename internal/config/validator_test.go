package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromArgs(t *testing.T) {
	cfg, err := FromArgs([]string{"urls.txt", "URL", "curl", "-s", "-o", "URL.html", "URL"}, true)

	require.NoError(t, err)
	assert.Equal(t, "urls.txt", cfg.FilePath)
	assert.Equal(t, "URL", cfg.Placeholder)
	assert.Equal(t, []string{"curl", "-s", "-o", "URL.html", "URL"}, cfg.Template)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "curl", cfg.Program())
	assert.Equal(t, "curl -s -o URL.html URL", cfg.CommandLine())
}

func TestFromArgs_CopiesTemplate(t *testing.T) {
	args := []string{"f.txt", "X", "echo", "X"}

	cfg, err := FromArgs(args, false)
	require.NoError(t, err)
	args[2] = "changed"

	assert.Equal(t, "echo", cfg.Program())
}

func TestFromArgs_MissingArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		missing []string
	}{
		{"none", nil, []string{"file", "variable", "command"}},
		{"file only", []string{"f.txt"}, []string{"variable", "command"}},
		{"no command", []string{"f.txt", "X"}, []string{"command"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromArgs(tt.args, false)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.missing, cfgErr.Missing)
			assert.Contains(t, err.Error(), "missing arguments")
		})
	}
}

func TestRunConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *RunConfig
		wantErr string
	}{
		{"nil", nil, "configuration cannot be nil"},
		{"empty file", &RunConfig{Template: []string{"echo"}}, "invalid file: path cannot be empty"},
		{"empty template", &RunConfig{FilePath: "f.txt"}, "invalid command: no command specified"},
		{"empty placeholder is allowed", &RunConfig{FilePath: "f.txt", Template: []string{"echo"}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
