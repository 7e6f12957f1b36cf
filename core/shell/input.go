package shell

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/abiosoft/readline"
)

// ErrInterrupt is returned by a LineReader when the user interrupted the
// line being edited.
var ErrInterrupt = errors.New("interrupt")

// LineReader reads one line of input at a time. The returned line has its
// line terminator removed. io.EOF is returned once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// TrimLineTerminator removes a single trailing "\n" or "\r\n".
func TrimLineTerminator(line string) string {
	if strings.HasSuffix(line, "\n") {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
	}
	return line
}

// NewLineReader reads lines from in. If promptOut is non-nil the prompt is
// written to it before each read.
func NewLineReader(in io.Reader, promptOut io.Writer) LineReader {
	return &bufferedLineReader{
		in:        bufio.NewReader(in),
		promptOut: promptOut,
	}
}

type bufferedLineReader struct {
	in        *bufio.Reader
	promptOut io.Writer
}

func (b *bufferedLineReader) ReadLine(prompt string) (string, error) {
	if b.promptOut != nil && prompt != "" {
		if _, err := io.WriteString(b.promptOut, prompt); err != nil {
			return "", err
		}
	}

	line, err := b.in.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return "", io.EOF
	case err != nil && err != io.EOF:
		return "", err
	}
	// A final line without a terminator is still a line.
	return TrimLineTerminator(line), nil
}

// ReadlineReader reads lines from a terminal with line editing and history.
type ReadlineReader struct {
	rl *readline.Instance
}

var _ LineReader = (*ReadlineReader)(nil)

// NewReadlineReader sets up line editing on the given streams. History is
// persisted to historyFile when it is non-empty.
func NewReadlineReader(stdin io.Reader, stdout, stderr io.Writer, historyFile string) (*ReadlineReader, error) {
	cfg := &readline.Config{
		Stdin:       readline.NewCancelableStdin(stdin),
		Stdout:      stdout,
		Stderr:      stderr,
		HistoryFile: historyFile,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &ReadlineReader{rl: rl}, nil
}

// ReadLine implements LineReader.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()

	switch {
	case err == readline.ErrInterrupt:
		return "", ErrInterrupt
	case err != nil:
		return "", err
	}
	return line, nil
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return readline.IsTerminal(int(fd))
}
