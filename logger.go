package histrion

import (
	"fmt"
	"io"
	"os"
)

// LogLevel is the severity of a log message, mirroring the teacher's
// leveled/categorized logger design.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelWarn
	LevelError
)

// LogCategory is the subsystem that produced a message.
type LogCategory string

const (
	CatNone        LogCategory = ""
	CatScheduler   LogCategory = "scheduler"
	CatInterpreter LogCategory = "interpreter"
	CatSignal      LogCategory = "signal"
	CatTrajectory  LogCategory = "trajectory"
	CatTrace       LogCategory = "trace"
)

// Logger handles all diagnostic and trace output for a World. Trace lines
// (spec §6) are routed through it rather than printed directly, the way
// the teacher's Context.LogError/LogWarning route through *Logger instead
// of fmt.Println.
type Logger struct {
	debug             bool
	enabledCategories map[LogCategory]bool
	out               io.Writer
}

// NewLogger creates a logger writing trace/debug output to out. If out is
// nil, os.Stderr is used, matching the teacher's NewLogger default.
func NewLogger(debug bool, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		debug:             debug,
		enabledCategories: make(map[LogCategory]bool),
		out:               out,
	}
}

func (l *Logger) EnableCategory(cat LogCategory)  { l.enabledCategories[cat] = true }
func (l *Logger) DisableCategory(cat LogCategory) { delete(l.enabledCategories, cat) }

func (l *Logger) shouldLog(level LogLevel, cat LogCategory) bool {
	switch level {
	case LevelError:
		return true
	case LevelWarn:
		return l.debug || l.enabledCategories[cat]
	case LevelDebug:
		return l.debug || l.enabledCategories[cat]
	default:
		return false
	}
}

// Log writes message if the level/category combination is enabled.
func (l *Logger) Log(level LogLevel, cat LogCategory, format string, args ...interface{}) {
	if !l.shouldLog(level, cat) {
		return
	}
	fmt.Fprintf(l.out, format, args...)
	fmt.Fprintln(l.out)
}

// TraceStep writes the "<now padded>: <action>" line spec §6 requires for
// every dispatched action, regardless of whether it is a Trace action.
func (l *Logger) TraceStep(now Instant, action string) {
	fmt.Fprintf(l.out, "%-8s: %s\n", now.String(), action)
}

// TraceExpr writes the "\t> expr = value" line for a Trace action.
func (l *Logger) TraceExpr(expr, value string) {
	fmt.Fprintf(l.out, "\t> %s = %s\n", expr, value)
}
