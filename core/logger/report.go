package logger

import (
	"encoding/json"
	"strconv"
)

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	Sessions       StrCounter `json:"sessions"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	RunCommand       RunCommandReport       `json:"run_command_report"`
	UnknownCommand   UnknownCommandReport   `json:"unknown_command_report"`
	PermissionDenied PermissionDeniedReport `json:"permission_denied_report"`
	SpawnError       SpawnErrorReport       `json:"spawn_error_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++
	r.Sessions.Increment(le.SessionID)

	switch le.Type {
	case EventRunCommand:
		r.RunCommand.update(le)
	case EventUnknownCommand:
		r.UnknownCommand.update(le)
	case EventPermissionDenied:
		r.PermissionDenied.update(le)
	case EventSpawnError:
		r.SpawnError.update(le)
	default:
		r.InvalidEntries.Increment(string(le.Type))
	}
}

type RunCommandReport struct {
	// Name of the resolved command
	ResolvedCommandPaths StrCounter `json:"resolved_command_paths"`
	// Name of the command
	CommandNames StrCounter `json:"command_names"`
	// Termination statuses
	Statuses StrCounter `json:"statuses"`
}

func (r *RunCommandReport) update(le *LogEntry) {
	r.ResolvedCommandPaths.Increment(le.ResolvedPath)
	if len(le.Command) > 0 {
		r.CommandNames.Increment(le.Command[0])
	}
	r.Statuses.Increment(strconv.Itoa(le.Status))
}

type UnknownCommandReport struct {
	CommandNames StrCounter `json:"command_names"`
}

func (r *UnknownCommandReport) update(le *LogEntry) {
	if len(le.Command) > 0 {
		r.CommandNames.Increment(le.Command[0])
	}
}

type PermissionDeniedReport struct {
	Paths StrCounter `json:"paths"`
}

func (r *PermissionDeniedReport) update(le *LogEntry) {
	r.Paths.Increment(le.ResolvedPath)
}

type SpawnErrorReport struct {
	Errors StrCounter `json:"errors"`
}

func (r *SpawnErrorReport) update(le *LogEntry) {
	r.Errors.Increment(le.Error)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Get returns the count for key.
func (s *StrCounter) Get(key string) int {
	return s.internal[key]
}

// MarshalJSON implements custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	if s.internal == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.internal)
}
