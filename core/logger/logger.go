package logger

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// EventType identifies what a LogEntry describes.
type EventType string

const (
	// EventRunCommand is logged after a child process exits.
	EventRunCommand EventType = "run_command"
	// EventUnknownCommand is logged when resolution failed.
	EventUnknownCommand EventType = "unknown_command"
	// EventPermissionDenied is logged when the file exists but can't be run.
	EventPermissionDenied EventType = "permission_denied"
	// EventSpawnError is logged when the OS refused to create a child.
	EventSpawnError EventType = "spawn_error"
)

// LogEntry is a single logged event.
type LogEntry struct {
	TimestampMicros int64
	SessionID       string
	Type            EventType
	// Command is the argv of the command.
	Command []string
	// ResolvedPath is the file that was (or would have been) executed.
	ResolvedPath string
	// Status is the termination status of the child.
	Status int
	Error  string
}

// MarshalJSON encodes the entry as a protobuf Struct in its JSON form.
func (le *LogEntry) MarshalJSON() ([]byte, error) {
	command := make([]interface{}, len(le.Command))
	for i, arg := range le.Command {
		command[i] = arg
	}

	fields := map[string]interface{}{
		"timestamp_micros": le.TimestampMicros,
		"session_id":       le.SessionID,
		"type":             string(le.Type),
		"command":          command,
		"status":           le.Status,
	}
	if le.ResolvedPath != "" {
		fields["resolved_path"] = le.ResolvedPath
	}
	if le.Error != "" {
		fields["error"] = le.Error
	}

	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(s)
}

// UnmarshalJSON decodes an entry written by MarshalJSON.
func (le *LogEntry) UnmarshalJSON(data []byte) error {
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return err
	}

	fields := s.GetFields()
	*le = LogEntry{
		TimestampMicros: int64(fields["timestamp_micros"].GetNumberValue()),
		SessionID:       fields["session_id"].GetStringValue(),
		Type:            EventType(fields["type"].GetStringValue()),
		ResolvedPath:    fields["resolved_path"].GetStringValue(),
		Status:          int(fields["status"].GetNumberValue()),
		Error:           fields["error"].GetStringValue(),
	}
	for _, arg := range fields["command"].GetListValue().GetValues() {
		le.Command = append(le.Command, arg.GetStringValue())
	}
	return nil
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures events for later analysis.
type Logger struct {
	Record LogRecorder
	// Now returns the current time, time.Now if nil.
	Now func() time.Time
}

// NewJSONLinesLogRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJSONLinesLogRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := le.MarshalJSON()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// NewNopLogger creates a Logger that drops every event.
func NewNopLogger() *Logger {
	return &Logger{
		Record: func(*LogEntry) error { return nil },
	}
}

func (l *Logger) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// NewSession creates a logger with a fresh random session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: uuid.NewString()}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// SessionID returns the ID stamped on every entry.
func (s *SessionLogger) SessionID() string {
	return s.sessionID
}

// Record stamps the entry with the session and time, then stores it.
func (s *SessionLogger) Record(le *LogEntry) error {
	le.SessionID = s.sessionID
	le.TimestampMicros = s.logger.now().UnixMicro()
	return s.logger.Record(le)
}

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var le LogEntry
		if err := le.UnmarshalJSON(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		handler(&le)
	}
	return scanner.Err()
}
