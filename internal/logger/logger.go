package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// DefaultPath is the log file used when New is given an empty path, relative to the working directory.
const DefaultPath = "logs/periodictable.txt"

// maxLines caps the in-memory history shown by the console overlay.
const maxLines = 500

// Level orders log lines by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "LEVEL(" + fmt.Sprint(int(l)) + ")"
}

// ParseLevel reads "debug", "info", "warn" or "error". Empty means info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger keeps recent lines in memory for the console, appends every line to a file on disk,
// and mirrors it to a terminal colored by level.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	min   Level
	out   *termenv.Output
	now   func() time.Time
}

// New returns a Logger writing to path (DefaultPath when empty) and mirroring to stderr.
// The log directory is created if needed. A path of "-" disables the file.
func New(path string) *Logger {
	return NewWithWriter(path, os.Stderr)
}

// NewWithWriter is like New but mirrors to w. A nil w disables the mirror.
func NewWithWriter(path string, w io.Writer) *Logger {
	if path == "" {
		path = DefaultPath
	}
	if path != "-" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	l := &Logger{path: path, min: LevelInfo, now: time.Now}
	if w != nil {
		l.out = termenv.NewOutput(w)
	}
	return l
}

// SetLevel drops lines below min.
func (l *Logger) SetLevel(min Level) {
	l.mu.Lock()
	l.min = min
	l.mu.Unlock()
}

// Log records an info line. Kept for callers that log raw console input.
func (l *Logger) Log(line string) {
	l.write(LevelInfo, line)
}

func (l *Logger) Debugf(format string, args ...any) { l.write(LevelDebug, fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...any)  { l.write(LevelInfo, fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...any)  { l.write(LevelWarn, fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...any) { l.write(LevelError, fmt.Sprintf(format, args...)) }

// write prefixes the line with [timestamp] LEVEL, stores it, appends it to the file and mirrors it.
func (l *Logger) write(level Level, line string) {
	l.mu.Lock()
	if level < l.min {
		l.mu.Unlock()
		return
	}
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + level.String() + " " + line
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	out := l.out
	path := l.path
	l.mu.Unlock()

	if out != nil {
		fmt.Fprintln(out, out.String(stamped).Foreground(levelColor(level)).String())
	}
	if path == "-" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

func levelColor(level Level) termenv.Color {
	switch level {
	case LevelDebug:
		return termenv.ANSIBrightBlack
	case LevelWarn:
		return termenv.ANSIYellow
	case LevelError:
		return termenv.ANSIRed
	}
	return termenv.ANSIWhite
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
