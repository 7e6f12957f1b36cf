package config

import (
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/josephlewis42/hsh/core/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestBuiltinConfig(t *testing.T) {
	rawConfig := make(map[string]interface{})
	assert.Nil(t, yaml.Unmarshal(defaultConfigData, &rawConfig))

	knownFields := make(map[string]bool)
	rt := reflect.TypeOf(Configuration{})
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		assert.NotEmpty(t, jsonTag)
		jsonField := strings.Split(jsonTag, ",")[0]
		knownFields[jsonField] = true

		if _, ok := rawConfig[jsonField]; !ok {
			assert.False(t, true, "default config missing field: %q", jsonField)
		}
	}

	for k := range rawConfig {
		_, ok := knownFields[k]
		assert.True(t, ok, "default config contains invalid field: %q", k)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Will panic() on load failure because it should never happen at runtime.
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, shell.DefaultPrompt, cfg.Prompt)
	assert.Equal(t, ColorNever, cfg.PromptColor)
	assert.Equal(t, shell.SplitModeFields, cfg.WordSplitting)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Empty(t, cfg.EventLog)
	assert.Empty(t, cfg.HistoryFile)
}

func TestName(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "/bin/hsh", cfg.Name("/bin/hsh"))

	cfg.ShellName = "sh"
	assert.Equal(t, "sh", cfg.Name("/bin/hsh"))
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelWarn,
	}

	for level, want := range cases {
		t.Run(level, func(t *testing.T) {
			cfg := Default()
			cfg.LogLevel = level
			assert.Equal(t, want, cfg.SlogLevel())
		})
	}
}

func TestPromptRenderer(t *testing.T) {
	cases := map[string]struct {
		terminal bool
		want     bool
	}{
		"never/terminal":  {true, false},
		"auto/terminal":   {true, true},
		"auto/pipe":       {false, false},
		"always/pipe":     {false, true},
		"always/terminal": {true, true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := Default()
			cfg.PromptColor = strings.Split(tn, "/")[0]

			renderer := cfg.PromptRenderer(tc.terminal)
			assert.Equal(t, tc.want, renderer.Color)
			assert.Equal(t, cfg.Prompt, renderer.Template)
		})
	}
}

func TestSplitter(t *testing.T) {
	cfg := Default()
	cfg.WordSplitting = shell.SplitModeQuoted

	split, err := cfg.Splitter()
	require.NoError(t, err)

	argv, err := split(`echo 'a b'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "a b"}, argv)
}
