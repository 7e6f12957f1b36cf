package config

import (
	_ "embed"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephlewis42/hsh/core/shell"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	ConfigurationName = "config.yaml"
)

const (
	ColorNever  = "never"
	ColorAuto   = "auto"
	ColorAlways = "always"
)

// ErrNoEventLog is returned when the event log is disabled.
var ErrNoEventLog = errors.New("event_log is not configured")

type Configuration struct {
	configFs  afero.Fs
	configDir string

	ShellName     string `json:"shell_name"`
	Prompt        string `json:"prompt" validate:"required"`
	PromptColor   string `json:"prompt_color" validate:"oneof=never auto always"`
	WordSplitting string `json:"word_splitting" validate:"oneof=fields quoted"`
	HistoryFile   string `json:"history_file"`
	EventLog      string `json:"event_log"`
	LogLevel      string `json:"log_level" validate:"oneof=debug info warn error"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// Dir is the directory the configuration was loaded from.
func (c *Configuration) Dir() string {
	return c.configDir
}

// Name returns the shell name used in diagnostics, or fallback if unset.
func (c *Configuration) Name(fallback string) string {
	if c.ShellName != "" {
		return c.ShellName
	}
	return fallback
}

// SlogLevel is the minimum level of operator log records.
func (c *Configuration) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Splitter returns the configured word splitter.
func (c *Configuration) Splitter() (shell.Splitter, error) {
	return shell.SplitterFor(c.WordSplitting)
}

// PromptRenderer returns the prompt configuration. terminal reports whether
// the prompt is written to a terminal.
func (c *Configuration) PromptRenderer(terminal bool) shell.PromptRenderer {
	return shell.PromptRenderer{
		Template: c.Prompt,
		Color:    c.PromptColor == ColorAlways || (c.PromptColor == ColorAuto && terminal),
	}
}

// HistoryPath is the readline history file, empty if history is disabled.
func (c *Configuration) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}
	return filepath.Join(c.configDir, c.HistoryFile)
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, ErrNoEventLog
	}
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	out.configFs = afero.NewOsFs()
	out.configDir = "."
	return &out
}
