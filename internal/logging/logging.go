package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes color-tagged messages. Info output is opt-in through the
// verbose flag, debug output through the debug flag; warnings and errors
// always print. Informational output goes to stdout, everything else to
// stderr so that shell pipelines only see config data.
type Logger struct {
	Verbose bool
	Debug   bool
}

func emit(w io.Writer, tag, msg string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", tag, fmt.Sprintf(msg, args...))
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		emit(os.Stdout, color.GreenString("info:"), msg, args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		emit(os.Stdout, color.CyanString("debug:"), msg, args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	emit(os.Stderr, color.YellowString("warning:"), msg, args...)
}

func (l Logger) Errorf(msg string, args ...any) {
	emit(os.Stderr, color.RedString("error:"), msg, args...)
}

// ErrorfAndReturn logs the message at error level and returns it as an error
// so commands can log and propagate in one step.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return fmt.Errorf(msg, args...)
}
